package logging

import (
	"os"
	"strings"
	"sync"
	"testing"
)

// setupTestDir points the package at a temporary log directory and resets
// the session state so tests are isolated from each other.
func setupTestDir(t *testing.T) {
	t.Helper()

	logDir = t.TempDir()
	initErr = nil
	initOnce = sync.Once{}
	sessionID = ""
	sessionIDOnce = sync.Once{}

	t.Cleanup(func() {
		logDir = ""
		initErr = nil
		initOnce = sync.Once{}
		sessionID = ""
		sessionIDOnce = sync.Once{}
	})
}

func TestNewLogger(t *testing.T) {
	setupTestDir(t)

	logger, err := NewLogger("test-component")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	if logger.component != "test-component" {
		t.Errorf("Expected component 'test-component', got %q", logger.component)
	}

	if logger.SessionID() == "" {
		t.Error("Expected non-empty session ID")
	}

	if logger.LogPath() == "" {
		t.Error("Expected non-empty log path")
	}

	if _, err := os.Stat(logger.LogPath()); os.IsNotExist(err) {
		t.Errorf("Log file does not exist at %s", logger.LogPath())
	}
}

func TestLoggerFormatting(t *testing.T) {
	setupTestDir(t)

	logger, err := NewLogger("nav")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Debugf("pushed %s", "profile/123")
	logger.Infof("session started")
	logger.Warnf("slot %s already occupied", "sheet")
	logger.Errorf("bad pattern: %v", "profile/[")
	logger.Close()

	data, err := os.ReadFile(logger.LogPath())
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	content := string(data)

	for _, want := range []string{
		"[nav] [DEBUG] pushed profile/123",
		"[nav] [INFO] session started",
		"[nav] [WARN] slot sheet already occupied",
		"[nav] [ERROR] bad pattern: profile/[",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("Log file missing entry %q\ngot:\n%s", want, content)
		}
	}
}

func TestLoggersShareSessionFile(t *testing.T) {
	setupTestDir(t)

	a, err := NewLogger("tui")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer a.Close()

	b, err := NewLogger("navigation")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer b.Close()

	if a.SessionID() != b.SessionID() {
		t.Errorf("Loggers have different session IDs: %q vs %q", a.SessionID(), b.SessionID())
	}

	if a.LogPath() != b.LogPath() {
		t.Errorf("Loggers write to different files: %q vs %q", a.LogPath(), b.LogPath())
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	setupTestDir(t)

	logger, err := NewLogger("test")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	if err := logger.Close(); err != nil {
		t.Errorf("First close failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Second close failed: %v", err)
	}
}
