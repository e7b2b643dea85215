package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestForTUI_NoPathIsNop(t *testing.T) {
	logger, err := ForTUI("", true)
	if err != nil {
		t.Fatalf("ForTUI() error: %v", err)
	}
	if logger.Core().Enabled(zap.ErrorLevel) {
		t.Error("expected a no-op logger")
	}
}

func TestForTUI_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starfolio.log")

	logger, err := ForTUI(path, false)
	if err != nil {
		t.Fatalf("ForTUI() error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("navigated", zap.String("view", "projects"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, `"msg":"navigated"`) || !strings.Contains(out, `"view":"projects"`) {
		t.Errorf("unexpected log output: %s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug entries should be dropped without verbose")
	}
}

func TestNew_Verbose(t *testing.T) {
	logger, err := New(true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if !logger.Core().Enabled(zap.DebugLevel) {
		t.Error("verbose logger should enable debug")
	}

	quiet, err := New(false)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if quiet.Core().Enabled(zap.DebugLevel) {
		t.Error("default logger should not enable debug")
	}
}
