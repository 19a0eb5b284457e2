package logger

import (
	"sync"
)

// registry is the global named-logger registry.
var registry = &loggerRegistry{
	loggers: make(map[string]*Logger),
}

type loggerRegistry struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
}

// Register stores a named logger in the registry.
func Register(scope string, l *Logger) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.loggers[scope] = l
}

// Get retrieves a named logger. If the scope is not registered it returns
// a child of the global logger tagged with the requested scope.
func Get(scope string) *Logger {
	registry.mu.RLock()
	l, ok := registry.loggers[scope]
	registry.mu.RUnlock()
	if ok {
		return l
	}
	return GetGlobalLogger().childLogger(scope)
}

// RegisterDefaults registers a set of scoped children of the global
// logger. Call this after Init() to seed the registry with common
// subsystem loggers.
func RegisterDefaults(scopes ...string) {
	for _, scope := range scopes {
		Register(scope, GetGlobalLogger().childLogger(scope))
	}
}
