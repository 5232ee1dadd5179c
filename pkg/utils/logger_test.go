package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitLoggerWritesRotatingFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, err := InitLogger(AppConfig{Name: "travel-test", LogPath: dir})
	if err != nil {
		t.Fatalf("InitLogger returned error: %v", err)
	}

	logger.Info("booking committed")
	logger.Debug("hidden at info level")
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(dir, "travel-test.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, `"msg":"booking committed"`) || !strings.Contains(content, `"app":"travel-test"`) {
		t.Fatalf("unexpected log content %q", content)
	}
	if strings.Contains(content, "hidden at info level") {
		t.Fatalf("debug record written at info level")
	}
}

func TestInitLoggerWithoutPath(t *testing.T) {
	logger, err := InitLogger(AppConfig{})
	if err != nil {
		t.Fatalf("InitLogger returned error: %v", err)
	}
	if logger == nil {
		t.Fatalf("expected a logger")
	}
}
