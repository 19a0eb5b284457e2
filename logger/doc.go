// Package logger provides a scoped structured logging façade over
// zerolog.
//
// It supports two output formats (JSON for machines, a colorized
// fixed-width console layout for humans), hierarchical scoping through
// child loggers that share their parent's sink, per-call metadata
// attachments, and debug-mode stack traces.
//
// # Usage
//
//	log := logger.New(logger.Config{Name: "svc", Format: "console"})
//	log.Info("listening", logger.Options{Metadata: logger.Fields("port", 8080)})
//
//	worker := log.Child("worker")
//	worker.Warn("queue is filling up")
//
// Logging calls never fail: invalid levels coerce to info at
// construction and malformed options are tolerated at call time.
package logger
