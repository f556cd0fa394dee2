package logx

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetupJSONHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(Config{Level: "warn", JSON: true, Output: &buf})

	logger.Info("should be filtered out")
	logger.Warn("should appear")

	out := buf.String()
	if strings.Contains(out, "should be filtered out") {
		t.Fatalf("info message leaked through warn-level logger: %q", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Fatalf("warn message missing: %q", out)
	}
}

func TestSetupTextHandlerDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(Config{Output: &buf})
	logger.Debug("hidden")
	logger.Info("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug message should be filtered at default info level: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("info message missing: %q", out)
	}
}
