package log

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestLoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelInfo, Component: ComponentReport, Output: &buf})
	l.Info("Monthly report built", FieldYear, 2024)
	l.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "component=report") || !strings.Contains(out, "year=2024") {
		t.Fatalf("unexpected output: %s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record should be filtered: %s", out)
	}

	buf.Reset()
	l.WithComponent(ComponentStorage).Warn("slow")
	if !strings.Contains(buf.String(), "component=storage") {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}

func TestLogFields(t *testing.T) {
	f := NewFields().
		WithComponent(ComponentCLI).
		WithOperation(OpReport).
		WithPeriod(2024, 0).
		WithError(errors.New("boom"))
	if f[FieldComponent] != ComponentCLI || f[FieldOperation] != OpReport || f[FieldError] != "boom" {
		t.Fatalf("unexpected fields: %v", f)
	}
	if _, ok := f[FieldMonth]; ok {
		t.Fatalf("month should be omitted when zero")
	}
	if got := len(f.ToSlice()); got != 2*len(f) {
		t.Fatalf("expected %d items, got %d", 2*len(f), got)
	}
}
