package debug

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetOutput_CapturesRecords(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer Close()

	Logger().Warn("render failed", "component", "Item")
	Log("resolved %d styles", 3)

	out := buf.String()
	if !strings.Contains(out, "render failed") || !strings.Contains(out, "component=Item") {
		t.Errorf("warn record missing from output: %q", out)
	}
	if !strings.Contains(out, "resolved 3 styles") {
		t.Errorf("debug record missing from output: %q", out)
	}
}

func TestInit_EmptyPathDiscards(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("Init(\"\") error: %v", err)
	}
	defer Close()

	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("empty path should disable logging")
	}
}

func TestInit_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "shimmer.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init(%q) error: %v", path, err)
	}

	Log("hello %s", "file")
	if err := Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "hello file") {
		t.Errorf("log file = %q, want it to contain %q", data, "hello file")
	}
}

func TestLogger_HonoursEnv(t *testing.T) {
	Close()
	path := filepath.Join(t.TempDir(), "env.log")
	t.Setenv(EnvVar, path)
	defer Close()

	Logger().Info("from env")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "from env") {
		t.Errorf("log file = %q, want it to contain %q", data, "from env")
	}
}

func TestLogger_FollowsDestination(t *testing.T) {
	var first, second bytes.Buffer
	l := Logger().With("part", "synth")
	defer Close()

	SetOutput(&first)
	l.Warn("one")
	SetOutput(&second)
	l.Warn("two")

	if out := first.String(); !strings.Contains(out, "one") || strings.Contains(out, "two") {
		t.Errorf("first output = %q, want only the first record", out)
	}
	if out := second.String(); !strings.Contains(out, "two") || !strings.Contains(out, "part=synth") {
		t.Errorf("second output = %q, want the second record with bound attrs", out)
	}
}

func TestLogger_ReopenedFile(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")
	l := Logger()

	if err := Init(first); err != nil {
		t.Fatalf("Init(%q) error: %v", first, err)
	}
	l.Info("before close")
	if err := Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if err := Init(second); err != nil {
		t.Fatalf("Init(%q) error: %v", second, err)
	}
	l.Info("after reopen")
	if err := Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	data, err := os.ReadFile(second)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "after reopen") {
		t.Errorf("second log = %q, want it to contain %q", data, "after reopen")
	}
}
