package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Format: "json", Output: &buf})

	logger.Info().Str("name", "pikachu").Msg("lookup served")

	out := buf.String()
	if !strings.Contains(out, `"level":"info"`) {
		t.Errorf("missing level field: %s", out)
	}
	if !strings.Contains(out, `"name":"pikachu"`) {
		t.Errorf("missing name field: %s", out)
	}
	if !strings.Contains(out, "lookup served") {
		t.Errorf("missing message: %s", out)
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "warn", Format: "json", Output: &buf})

	logger.Info().Msg("suppressed")
	logger.Warn().Msg("emitted")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Errorf("info event should be filtered: %s", out)
	}
	if !strings.Contains(out, "emitted") {
		t.Errorf("warn event should pass: %s", out)
	}
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "bogus", Format: "json", Output: &buf})

	logger.Debug().Msg("below info")
	logger.Info().Msg("at info")

	out := buf.String()
	if strings.Contains(out, "below info") {
		t.Errorf("debug event should be filtered: %s", out)
	}
	if !strings.Contains(out, "at info") {
		t.Errorf("info event should pass: %s", out)
	}
}
