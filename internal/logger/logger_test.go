package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestSetLevel_Filtering(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "WARN", "text")
	defer InitWithWriter(&buf, "INFO", "text")

	Debug("debug message")
	Info("info message")
	Warn("warn message")
	Error("error message")

	output := buf.String()
	if strings.Contains(output, "debug message") {
		t.Error("Expected debug message to be filtered at WARN level")
	}
	if strings.Contains(output, "info message") {
		t.Error("Expected info message to be filtered at WARN level")
	}
	if !strings.Contains(output, "warn message") {
		t.Error("Expected warn message to be logged")
	}
	if !strings.Contains(output, "error message") {
		t.Error("Expected error message to be logged")
	}
}

func TestSetLevel_CaseInsensitive(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "error", "text")
	defer InitWithWriter(&buf, "INFO", "text")

	Info("should not appear")
	Error("should appear")

	output := buf.String()
	if strings.Contains(output, "should not appear") {
		t.Error("Expected info message to be filtered")
	}
	if !strings.Contains(output, "should appear") {
		t.Error("Expected error message to be logged")
	}
}

func TestSetLevel_InvalidIgnored(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "INFO", "text")

	SetLevel("VERBOSE")

	Info("still info level")
	if !strings.Contains(buf.String(), "still info level") {
		t.Error("Expected invalid level to be ignored")
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "INFO", "json")
	defer InitWithWriter(&buf, "INFO", "text")

	Info("structured message", "user", "alice", "count", 3)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected valid JSON output, got: %v\n%s", err, buf.String())
	}

	if entry["msg"] != "structured message" {
		t.Errorf("Expected msg 'structured message', got %v", entry["msg"])
	}
	if entry["user"] != "alice" {
		t.Errorf("Expected user 'alice', got %v", entry["user"])
	}
	if entry["count"] != float64(3) {
		t.Errorf("Expected count 3, got %v", entry["count"])
	}
}

func TestTextFormat_Fields(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "INFO", "text")

	Info("request completed", "status", 200)

	output := buf.String()
	if !strings.Contains(output, "request completed") {
		t.Errorf("Expected message in output, got: %s", output)
	}
	if !strings.Contains(output, "status=200") {
		t.Errorf("Expected status field in output, got: %s", output)
	}
}

func TestInit_InvalidOutputPath(t *testing.T) {
	err := Init(Config{
		Level:  "INFO",
		Format: "text",
		Output: "/nonexistent-dir/definitely/not/writable.log",
	})
	if err == nil {
		t.Error("Expected error for unwritable log file path")
	}
}
