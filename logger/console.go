package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Fixed column widths of the console layout. Padding is computed against
// visible length only: color escapes are applied after padding so they
// count as zero-width.
const (
	levelFieldWidth = 15
	scopeFieldWidth = 18
)

// ANSI color codes by level.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// ConsoleWriter renders zerolog events as single colorized display lines
// with fixed-width level and scope columns:
//
//	[<timestamp>]      <level>:      <scope> | <message>
//	  > [metadata] {...}
//	  > [stackTrace] ...
//
// It plugs into zerolog the same way zerolog.ConsoleWriter does: the
// logger serializes the event as JSON and the writer re-renders it.
type ConsoleWriter struct {
	Out     io.Writer
	NoColor bool
}

func (w ConsoleWriter) Write(p []byte) (int, error) {
	var evt map[string]json.RawMessage
	if err := json.Unmarshal(p, &evt); err != nil {
		// Not a structured event; pass it through untouched.
		return w.Out.Write(p)
	}

	line := fmt.Sprintf("[%s] %s: %s | %s%s%s%s\n",
		stringField(evt, FieldTimestamp),
		w.formatLevel(stringField(evt, FieldLevel)),
		formatScope(stringField(evt, FieldScope)),
		stringField(evt, FieldMessage),
		formatExtraFields(evt),
		formatMetadata(evt[FieldMetadata]),
		formatStackTrace(stringField(evt, FieldStackTrace)),
	)

	if _, err := io.WriteString(w.Out, line); err != nil {
		return 0, err
	}
	return len(p), nil
}

// formatLevel right-justifies the level label in a fixed visible-width
// field, then colorizes it so the escapes never shift alignment.
func (w ConsoleWriter) formatLevel(level string) string {
	padding := levelFieldWidth - len(level)
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat(" ", padding) + w.colorize(level)
}

func (w ConsoleWriter) colorize(level string) string {
	if w.NoColor {
		return level
	}
	switch level {
	case "debug":
		return colorCyan + level + colorReset
	case "info":
		return colorGreen + level + colorReset
	case "warn":
		return colorYellow + level + colorReset
	case "error":
		return colorRed + level + colorReset
	default:
		return level
	}
}

// formatScope keeps the scope column exactly scopeFieldWidth characters
// wide: overflowing scopes truncate to the first 18 characters, shorter
// ones left-pad with spaces. Truncation takes priority over padding.
// Width is counted in runes so multi-byte scopes never split mid-rune.
func formatScope(scope string) string {
	runes := []rune(scope)
	if len(runes) > scopeFieldWidth {
		return string(runes[:scopeFieldWidth])
	}
	return strings.Repeat(" ", scopeFieldWidth-len(runes)) + scope
}

// formatMetadata renders the metadata suffix. The value is dispatched by
// its serialized tag: absent, string, sequence, or structured map. Empty
// maps and sequences render nothing; strings render bare; everything
// else renders as compact canonical JSON.
func formatMetadata(raw json.RawMessage) string {
	value := metadataValue(raw)
	if value == "" {
		return ""
	}
	return "\n  > [metadata] " + value
}

func metadataValue(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		// Malformed metadata is tolerated and rendered as empty.
		return ""
	}

	switch m := v.(type) {
	case nil:
		return ""
	case string:
		return m
	case map[string]interface{}:
		if len(m) == 0 {
			return ""
		}
	case []interface{}:
		if len(m) == 0 {
			return ""
		}
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return ""
	}
	return buf.String()
}

// formatStackTrace renders the stack-trace suffix when a trace is present.
func formatStackTrace(trace string) string {
	if trace == "" {
		return ""
	}
	return "\n  > [stackTrace] " + trace
}

// formatExtraFields appends contextual fields (trace IDs, WithFields
// attachments) as key=value pairs in stable order.
func formatExtraFields(evt map[string]json.RawMessage) string {
	keys := make([]string, 0, len(evt))
	for k := range evt {
		switch k {
		case FieldTimestamp, FieldLevel, FieldScope, FieldMessage, FieldMetadata, FieldStackTrace:
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(" ")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(rawValue(evt[k]))
	}
	return b.String()
}

func rawValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

func stringField(evt map[string]json.RawMessage, key string) string {
	raw, ok := evt[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return string(raw)
	}
	return s
}
