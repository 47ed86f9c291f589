package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"loud", slog.LevelWarn, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn, false)
	logger.Debug("hidden")
	logger.Warn("shown", "part", "ppt/slides/slide1.xml")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug record should be filtered at warn level")
	}
	if !strings.Contains(out, "part=ppt/slides/slide1.xml") {
		t.Errorf("expected structured attribute in %q", out)
	}
}

func TestNew_Verbose(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, slog.LevelError, true).Debug("skipping unknown element", "element", "future")

	if !strings.Contains(buf.String(), "element=future") {
		t.Errorf("verbose logger dropped debug record: %q", buf.String())
	}
}
