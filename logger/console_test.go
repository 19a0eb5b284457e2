package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestFormatScope(t *testing.T) {
	tests := []struct {
		name     string
		scope    string
		expected string
	}{
		{"short scope left-pads to 18", "abc", "               abc"},
		{"exact width unchanged", "exactly18chars-abc", "exactly18chars-abc"},
		{"long scope truncates to first 18", "a-very-long-scope-name121", "a-very-long-scope-"},
		{"empty scope is all padding", "", "                  "},
		{"accented scope pads by runes", "caché", "             caché"},
		{"wide runes truncate whole", "読読読読読読読読読読読読読読読読読読読読", "読読読読読読読読読読読読読読読読読読"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := formatScope(tc.scope)
			if got != tc.expected {
				t.Errorf("formatScope(%q) = %q, expected %q", tc.scope, got, tc.expected)
			}
			if n := utf8.RuneCountInString(got); n != scopeFieldWidth {
				t.Errorf("scope column width = %d runes, expected %d", n, scopeFieldWidth)
			}
		})
	}
}

func TestFormatLevelNoColor(t *testing.T) {
	w := ConsoleWriter{NoColor: true}
	got := w.formatLevel("info")
	if got != "           info" {
		t.Errorf("formatLevel(info) = %q, expected 15-wide right-justified label", got)
	}
	if len(got) != levelFieldWidth {
		t.Errorf("level field width = %d, expected %d", len(got), levelFieldWidth)
	}
}

func TestFormatLevelColorIsZeroWidth(t *testing.T) {
	w := ConsoleWriter{NoColor: false}
	got := w.formatLevel("info")

	if !strings.Contains(got, colorGreen) {
		t.Error("expected info label to carry the green escape")
	}

	visible := strings.ReplaceAll(got, colorGreen, "")
	visible = strings.ReplaceAll(visible, colorReset, "")
	if len(visible) != levelFieldWidth {
		t.Errorf("visible level width = %d, expected %d", len(visible), levelFieldWidth)
	}
}

func TestColorizeByLevel(t *testing.T) {
	w := ConsoleWriter{}
	tests := []struct {
		level string
		color string
	}{
		{"debug", colorCyan},
		{"info", colorGreen},
		{"warn", colorYellow},
		{"error", colorRed},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			got := w.colorize(tc.level)
			if !strings.HasPrefix(got, tc.color) || !strings.HasSuffix(got, colorReset) {
				t.Errorf("colorize(%q) = %q, expected %s wrapping", tc.level, got, tc.color)
			}
		})
	}
}

func TestFormatMetadata(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"absent", "", ""},
		{"null", "null", ""},
		{"empty object", "{}", ""},
		{"empty array", "[]", ""},
		{"object", `{"a":1}`, "\n  > [metadata] {\"a\":1}"},
		{"array", `[1,2]`, "\n  > [metadata] [1,2]"},
		{"string renders bare", `"hello"`, "\n  > [metadata] hello"},
		{"number", `42`, "\n  > [metadata] 42"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := formatMetadata(json.RawMessage(tc.raw))
			if got != tc.expected {
				t.Errorf("formatMetadata(%s) = %q, expected %q", tc.raw, got, tc.expected)
			}
		})
	}
}

func TestFormatStackTrace(t *testing.T) {
	if got := formatStackTrace(""); got != "" {
		t.Errorf("expected empty suffix, got %q", got)
	}
	got := formatStackTrace("boom\n\tmain.go:10")
	if got != "\n  > [stackTrace] boom\n\tmain.go:10" {
		t.Errorf("unexpected stack suffix %q", got)
	}
}

func TestConsoleWriterLine(t *testing.T) {
	var buf bytes.Buffer
	w := ConsoleWriter{Out: &buf, NoColor: true}

	evt := `{"level":"info","timestamp":"2026-01-02T15:04:05Z","scope":"svc","message":"hi"}`
	if _, err := w.Write([]byte(evt)); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	expected := "[2026-01-02T15:04:05Z]            info:                svc | hi\n"
	if buf.String() != expected {
		t.Errorf("line = %q, expected %q", buf.String(), expected)
	}
}

func TestConsoleWriterSuffixes(t *testing.T) {
	var buf bytes.Buffer
	w := ConsoleWriter{Out: &buf, NoColor: true}

	evt := `{"level":"error","timestamp":"2026-01-02T15:04:05Z","scope":"svc","message":"boom","metadata":{"code":5},"stackTrace":"trace-text"}`
	if _, err := w.Write([]byte(evt)); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "\n  > [metadata] {\"code\":5}") {
		t.Errorf("expected metadata suffix, got %q", out)
	}
	if !strings.Contains(out, "\n  > [stackTrace] trace-text") {
		t.Errorf("expected stack suffix, got %q", out)
	}
}

func TestConsoleWriterExtraFields(t *testing.T) {
	var buf bytes.Buffer
	w := ConsoleWriter{Out: &buf, NoColor: true}

	evt := `{"level":"info","timestamp":"2026-01-02T15:04:05Z","scope":"svc","message":"hi","trace_id":"abc","request_id":"r1"}`
	if _, err := w.Write([]byte(evt)); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "hi request_id=r1 trace_id=abc") {
		t.Errorf("expected sorted extra fields after the message, got %q", out)
	}
}

func TestConsoleWriterPassesThroughUnstructuredInput(t *testing.T) {
	var buf bytes.Buffer
	w := ConsoleWriter{Out: &buf, NoColor: true}

	if _, err := w.Write([]byte("not json\n")); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}
	if buf.String() != "not json\n" {
		t.Errorf("expected passthrough, got %q", buf.String())
	}
}
