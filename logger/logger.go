package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

func init() {
	zerolog.TimestampFieldName = FieldTimestamp
	zerolog.TimeFieldFormat = time.RFC3339
}

// Interface is the logging contract shared by all backends: the four
// level methods plus child derivation. Alternate sinks can be swapped in
// without touching the formatting logic.
type Interface interface {
	Debug(msg string, opts ...Options)
	Info(msg string, opts ...Options)
	Warn(msg string, opts ...Options)
	Error(msg string, opts ...Options)
	Child(scope string) Interface
}

// Logger is a scoped logging façade over a zerolog sink. A Logger and
// every child derived from it share the same sink; only the scope label
// differs. The zero value is not usable, construct with New.
type Logger struct {
	zl    zerolog.Logger
	cfg   Config
	scope string
}

var _ Interface = (*Logger)(nil)

// New creates a logger from configuration. Missing fields are defaulted
// and an unrecognized level silently coerces to info; construction never
// fails.
func New(cfg Config) *Logger {
	cfg.ApplyDefaults()
	return newWithSink(cfg, outputWriter(cfg.Output))
}

// NewDefault creates a JSON logger at info level for the given name.
func NewDefault(name string) *Logger {
	return New(Config{Name: name})
}

// NewFromEnv creates a logger configured from LOG_* environment variables.
func NewFromEnv(name string) *Logger {
	return New(Config{
		Name:      name,
		Level:     os.Getenv("LOG_LEVEL"),
		Format:    os.Getenv("LOG_FORMAT"),
		Output:    os.Getenv("LOG_OUTPUT"),
		NoColor:   os.Getenv("LOG_NO_COLOR") == "true",
		DebugMode: os.Getenv("LOG_DEBUG_MODE") == "true",
	})
}

// newWithSink wires the configured format onto an output writer. Tests
// inject a buffer here; New always passes stdout or stderr.
func newWithSink(cfg Config, out io.Writer) *Logger {
	var w io.Writer = out
	if cfg.Format == FormatConsole {
		w = ConsoleWriter{Out: out, NoColor: cfg.NoColor || !isTerminal(out)}
	}
	zl := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
	return &Logger{zl: zl, cfg: cfg}
}

// Child returns a façade that shares this logger's sink but tags every
// record with the given scope. The parent's name is not inherited: the
// child's scope entirely replaces it for display.
func (l *Logger) Child(scope string) Interface {
	return l.childLogger(scope)
}

func (l *Logger) childLogger(scope string) *Logger {
	c := *l
	c.scope = scope
	return &c
}

// WithContext returns a logger enriched with trace and span IDs when the
// context carries an active span.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return l
	}
	c := *l
	c.zl = l.zl.With().
		Str(FieldTraceID, sc.TraceID().String()).
		Str(FieldSpanID, sc.SpanID().String()).
		Logger()
	return &c
}

// WithRequestID returns a logger tagged with a request identifier,
// generating one when id is empty.
func (l *Logger) WithRequestID(id string) *Logger {
	if id == "" {
		id = NewRequestID()
	}
	c := *l
	c.zl = l.zl.With().Str(FieldRequestID, id).Logger()
	return &c
}

// WithFields returns a logger with additional fields attached to every
// record.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	zc := l.zl.With()
	for k, v := range fields {
		zc = zc.Interface(k, v)
	}
	c := *l
	c.zl = zc.Logger()
	return &c
}

// WithError returns a logger with an error field attached to every record.
func (l *Logger) WithError(err error) *Logger {
	c := *l
	c.zl = l.zl.With().Err(err).Logger()
	return &c
}

// Name returns the configured logger name.
func (l *Logger) Name() string {
	return l.cfg.Name
}

// Scope returns the label rendered in the record's scope column: the
// child scope when set, otherwise the configured name.
func (l *Logger) Scope() string {
	if l.scope != "" {
		return l.scope
	}
	return l.cfg.Name
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, opts ...Options) {
	l.emit(l.zl.Debug(), msg, opts, false)
}

// Info logs an info message.
func (l *Logger) Info(msg string, opts ...Options) {
	l.emit(l.zl.Info(), msg, opts, false)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, opts ...Options) {
	l.emit(l.zl.Warn(), msg, opts, false)
}

// Error logs an error message.
func (l *Logger) Error(msg string, opts ...Options) {
	l.emit(l.zl.Error(), msg, opts, true)
}

// emit composes the side fields and performs exactly one sink write.
// Stack traces are an error-level concern: only Error passes
// errorLevel, so debug-mode records at other levels never pick up a
// trace or a fabricated metadata field.
func (l *Logger) emit(ev *zerolog.Event, msg string, opts []Options, errorLevel bool) {
	o := mergeOptions(opts)

	ev.Str(FieldScope, l.Scope())

	metadata, hasMetadata := composeMetadata(o)
	if errorLevel {
		if tr, ok := composeErrorTrace(o, l.cfg.DebugMode); ok {
			ev.Str(FieldStackTrace, tr.StackTrace)
			metadata, hasMetadata = tr.Metadata, true
		}
	}
	if hasMetadata {
		ev.Interface(FieldMetadata, metadata)
	}

	ev.Msg(msg)
}

// --- Global logger ---

var globalLogger *Logger

// Init initializes the global logger from config.
func Init(cfg Config) {
	globalLogger = New(cfg)
}

// SetGlobalLogger sets the global logger instance.
func SetGlobalLogger(l *Logger) { globalLogger = l }

// GetGlobalLogger returns the global logger, creating a default one if
// needed.
func GetGlobalLogger() *Logger {
	if globalLogger == nil {
		globalLogger = NewDefault("default")
	}
	return globalLogger
}

// Package-level convenience functions delegate to the global logger.

func Debug(msg string, opts ...Options) {
	GetGlobalLogger().Debug(msg, opts...)
}

func Info(msg string, opts ...Options) {
	GetGlobalLogger().Info(msg, opts...)
}

func Warn(msg string, opts ...Options) {
	GetGlobalLogger().Warn(msg, opts...)
}

func Error(msg string, opts ...Options) {
	GetGlobalLogger().Error(msg, opts...)
}

// WithContext returns a context-enriched logger from the global logger.
func WithContext(ctx context.Context) *Logger {
	return GetGlobalLogger().WithContext(ctx)
}

// --- internal helpers ---

func outputWriter(output string) *os.File {
	if output == "stderr" {
		return os.Stderr
	}
	return os.Stdout
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
