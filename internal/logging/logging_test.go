package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func noColor() *bool {
	b := false
	return &b
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Console: zapcore.AddSync(&buf), Color: noColor()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	l.Module("Window").Info("Window created", zap.Int("width", 800))
	l.Module("Window").Debug("hidden at info level")

	line := strings.TrimSpace(buf.String())
	want := regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\]: INFO \[Window\] Window created \{"width": 800\}$`)
	if !want.MatchString(line) {
		t.Errorf("console line = %q", line)
	}
}

func TestModuleLoggersAreCached(t *testing.T) {
	l, err := New(Config{Console: zapcore.AddSync(&bytes.Buffer{}), Color: noColor()})
	if err != nil {
		t.Fatal(err)
	}
	if l.Module("GL") != l.Module("GL") {
		t.Error("expected the same logger for the same module")
	}
}

func TestFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	l, err := New(Config{Dir: dir, Level: "debug", Files: true, Console: zapcore.AddSync(&bytes.Buffer{}), Color: noColor()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	l.Module("Window").Info("window message")
	l.Module("Engine").Debug("engine message")
	l.General().Warn("general message")

	if got := len(l.Files()); got != 3 {
		t.Errorf("Files() = %d entries, want 3", got)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	tests := []struct {
		file    string
		want    []string
		notWant []string
	}{
		{"Window.txt", []string{"window message"}, []string{"engine message", "general message"}},
		{"Engine.txt", []string{"engine message"}, []string{"window message"}},
		{"General.txt", []string{"window message", "engine message", "general message"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(dir, tt.file))
			if err != nil {
				t.Fatal(err)
			}
			for _, w := range tt.want {
				if !strings.Contains(string(data), w) {
					t.Errorf("%s missing %q", tt.file, w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(string(data), w) {
					t.Errorf("%s should not contain %q", tt.file, w)
				}
			}
		})
	}
}

func TestInvalidLevel(t *testing.T) {
	if _, err := New(Config{Level: "chatty"}); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "error", Console: zapcore.AddSync(&buf), Color: noColor()})
	if err != nil {
		t.Fatal(err)
	}
	log := l.Module("Input")
	log.Info("dropped")
	l.SetLevel(zapcore.InfoLevel)
	log.Info("kept")

	if strings.Contains(buf.String(), "dropped") || !strings.Contains(buf.String(), "kept") {
		t.Errorf("output = %q", buf.String())
	}
}
