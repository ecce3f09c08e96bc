package logrus

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stevedylandev/wholenote-server/pkg/config"
)

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, "info", "json")

	logger.Info("Feed merged", map[string]interface{}{
		"count":  5,
		"cursor": "eyJwYWdlIjoyfQ",
	})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
	}

	if entry["msg"] != "Feed merged" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v", entry["level"])
	}
	if entry["count"] != float64(5) {
		t.Errorf("count = %v", entry["count"])
	}
	if entry["cursor"] != "eyJwYWdlIjoyfQ" {
		t.Errorf("cursor = %v", entry["cursor"])
	}
}

func TestLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, "debug", "text")

	logger.Warn("Spotify preview unavailable", map[string]interface{}{"reason": "upstream_status"})

	out := buf.String()
	if !strings.Contains(out, "level=warning") {
		t.Errorf("output missing level: %s", out)
	}
	if !strings.Contains(out, "reason=upstream_status") {
		t.Errorf("output missing field: %s", out)
	}
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
		wantError bool
	}{
		{"debug", true, true, true},
		{"info", false, true, true},
		{"error", false, false, true},
		{"bogus", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLoggerWithWriter(&buf, tt.level, "text")

			logger.Debug("debug-line", nil)
			logger.Info("info-line", nil)
			logger.Error("error-line", nil)

			out := buf.String()
			if got := strings.Contains(out, "debug-line"); got != tt.wantDebug {
				t.Errorf("debug logged = %v, want %v", got, tt.wantDebug)
			}
			if got := strings.Contains(out, "info-line"); got != tt.wantInfo {
				t.Errorf("info logged = %v, want %v", got, tt.wantInfo)
			}
			if got := strings.Contains(out, "error-line"); got != tt.wantError {
				t.Errorf("error logged = %v, want %v", got, tt.wantError)
			}
		})
	}
}

func TestLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")
	logger := NewLogger(config.LogConfig{Level: "info", Format: "json", File: path})

	logger.Error("Credential store write failed", map[string]interface{}{"key": "spotify_token"})
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "spotify_token") {
		t.Errorf("log file = %s", data)
	}
}

func TestLogger_StdoutCloseIsNoop(t *testing.T) {
	logger := NewLogger(config.LogConfig{Level: "info", Format: "text"})
	if err := logger.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
