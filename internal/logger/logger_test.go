package logger

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// setupTestLogger creates a temp log file and initializes the logger with it.
func setupTestLogger(t *testing.T) string {
	t.Helper()
	Reset()

	logPath := filepath.Join(t.TempDir(), "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	t.Cleanup(Reset)
	return logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestLevels(t *testing.T) {
	logPath := setupTestLogger(t)

	Debug("hidden-debug")
	Info("visible-info %d", 1)
	Warn("visible-warn %s", "x")
	Error("visible-error")

	content := readLog(t, logPath)
	if strings.Contains(content, "hidden-debug") {
		t.Error("debug message should be filtered at info level")
	}
	for _, want := range []string{"visible-info 1", "visible-warn x", "visible-error"} {
		if !strings.Contains(content, want) {
			t.Errorf("log should contain %q", want)
		}
	}
}

func TestSetDebug(t *testing.T) {
	logPath := setupTestLogger(t)

	SetDebug(true)
	Debug("debug-enabled-marker")
	SetDebug(false)
	Debug("debug-disabled-marker")

	content := readLog(t, logPath)
	if !strings.Contains(content, "debug-enabled-marker") {
		t.Error("debug message should be written when debug is enabled")
	}
	if strings.Contains(content, "debug-disabled-marker") {
		t.Error("debug message should be filtered once debug is disabled")
	}
}

func TestWithComponent(t *testing.T) {
	logPath := setupTestLogger(t)

	WithComponent("chat").Info("component-marker", "conversationID", "conv1")
	WithConversation("conv9").Info("conversation-marker")

	content := readLog(t, logPath)
	if !strings.Contains(content, "component=chat") || !strings.Contains(content, "conversationID=conv1") {
		t.Errorf("expected component attributes in log, got:\n%s", content)
	}
	if !strings.Contains(content, "conversationID=conv9") {
		t.Error("expected conversation attribute in log")
	}
}

func TestConcurrentLogging(t *testing.T) {
	setupTestLogger(t)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := range 100 {
				Info("concurrent test %d-%d", n, j)
			}
		}(i)
	}
	wg.Wait()
}

func TestClose(t *testing.T) {
	setupTestLogger(t)

	Close()
	// Logging after Close must not panic.
	Info("after close")
}

func TestReset(t *testing.T) {
	tmpDir := t.TempDir()
	t.Cleanup(Reset)

	Reset()
	logPath1 := filepath.Join(tmpDir, "log1.log")
	if err := Init(logPath1); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	Info("message to log1")

	Reset()
	logPath2 := filepath.Join(tmpDir, "log2.log")
	if err := Init(logPath2); err != nil {
		t.Fatalf("Failed to reinit logger: %v", err)
	}
	Info("message to log2")

	if Path() != logPath2 {
		t.Errorf("Path() = %q, want %q", Path(), logPath2)
	}

	content1 := readLog(t, logPath1)
	content2 := readLog(t, logPath2)
	if !strings.Contains(content1, "message to log1") || strings.Contains(content1, "message to log2") {
		t.Error("log1 should only contain the first message")
	}
	if !strings.Contains(content2, "message to log2") || strings.Contains(content2, "message to log1") {
		t.Error("log2 should only contain the second message")
	}
}

func TestInit_BadPath(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if err := Init(filepath.Join(t.TempDir(), "missing", "dir", "x.log")); err == nil {
		t.Error("expected error for unwritable path")
	}
}

func TestLogFiles(t *testing.T) {
	path := filepath.Join(os.TempDir(), "wachat-logfiles-test.log")
	if filepath.Dir(path) != filepath.Dir(logGlob) {
		t.Skip("temp dir is not /tmp")
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Remove(path) })

	files, err := LogFiles()
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, f := range files {
		if f == path {
			found = true
		}
	}
	if !found {
		t.Errorf("LogFiles() = %v, want it to include %s", files, path)
	}
}
