package logger

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Options carries the optional per-call attachments of a log record.
// Callers pass at most one; the zero value attaches nothing. Option
// values are never mutated: defaults are filled into fresh copies.
type Options struct {
	// Err is the error whose stack trace is attached when debug mode is on.
	Err error
	// Metadata is an arbitrary structured value rendered alongside the
	// message: a string, a slice, a map, or anything JSON-serializable.
	Metadata interface{}
}

// mergeOptions collapses the variadic options into a single fresh value.
// Later entries win per field.
func mergeOptions(opts []Options) Options {
	var merged Options
	for _, o := range opts {
		if o.Err != nil {
			merged.Err = o.Err
		}
		if o.Metadata != nil {
			merged.Metadata = o.Metadata
		}
	}
	return merged
}

// composeMetadata extracts the metadata attachment from options. The ok
// result distinguishes "no metadata supplied" from supplied-but-empty:
// an empty map or slice still reports ok=true and is wrapped into the
// record's metadata field unconditionally.
func composeMetadata(o Options) (interface{}, bool) {
	if o.Metadata == nil {
		return nil, false
	}
	return o.Metadata, true
}

// errorTrace is the debug-mode side channel: a captured stack plus the
// metadata that accompanies it (defaulted to an empty map when absent).
type errorTrace struct {
	StackTrace string
	Metadata   interface{}
}

// stackTracer is the stack-carrying contract of pkg/errors values.
type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// composeErrorTrace builds the stack-trace attachment. It returns
// ok=false whenever debugMode is off, regardless of whether an error was
// supplied: stack capture is a development-only feature. With debugMode
// on, a missing error is synthesized at the call site so the trace still
// points at the logging location, and a missing metadata value defaults
// to an empty map.
func composeErrorTrace(o Options, debugMode bool) (errorTrace, bool) {
	if !debugMode {
		return errorTrace{}, false
	}

	err := o.Err
	if err == nil {
		err = pkgerrors.New("log call site")
	} else if _, ok := err.(stackTracer); !ok {
		err = pkgerrors.WithStack(err)
	}

	metadata := o.Metadata
	if metadata == nil {
		metadata = map[string]interface{}{}
	}

	return errorTrace{
		StackTrace: fmt.Sprintf("%+v", err),
		Metadata:   metadata,
	}, true
}
