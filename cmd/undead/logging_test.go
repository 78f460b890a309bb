package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// inTempDir runs the test from an empty directory and restores the standard logger
func inTempDir(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	out, flags := log.Writer(), log.Flags()
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	})
}

func TestLoggingDiscardedWithoutDebug(t *testing.T) {
	inTempDir(t)

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("Expected no log file without debug")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected io.Discard, got %T", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory without debug")
	}
}

func TestLoggingWritesSessionBanner(t *testing.T) {
	inTempDir(t)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected log file with debug")
	}
	log.Printf("Spawned zombie test")
	f.Close()

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "undead started") {
		t.Error("Expected session banner in log")
	}
	if !strings.Contains(text, "Spawned zombie test") {
		t.Error("Expected logged line in file")
	}
}

func TestLoggingRotatesOversizedFile(t *testing.T) {
	inTempDir(t)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to seed log: %v", err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected log file")
	}
	f.Close()

	matches, _ := filepath.Glob(filepath.Join(logDir, "undead-*.log"))
	if len(matches) != 1 {
		t.Errorf("Expected one rotated log, got %d", len(matches))
	}
	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat fresh log: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected fresh log under %d bytes, got %d", maxLogSize, info.Size())
	}
}

func TestLoggingSmallFileIsKept(t *testing.T) {
	inTempDir(t)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, []byte("previous run\n"), 0644); err != nil {
		t.Fatalf("Failed to seed log: %v", err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected log file")
	}
	f.Close()

	data, _ := os.ReadFile(logPath)
	if !strings.HasPrefix(string(data), "previous run") {
		t.Error("Expected existing log to be appended to")
	}
	matches, _ := filepath.Glob(filepath.Join(logDir, "undead-*.log"))
	if len(matches) != 0 {
		t.Errorf("Expected no rotation, got %v", matches)
	}
}
