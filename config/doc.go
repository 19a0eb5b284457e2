// Package config loads logging configuration from files and the
// environment.
//
// It uses Viper to read config.yml, godotenv to load .env files, and
// binds LOGGING_* environment variables over file values:
//
//	settings, err := config.Load("my-service")
//	log := settings.NewLogger()
package config
