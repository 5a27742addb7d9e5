package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func setupStateDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func TestSetup_VerbosityLevels(t *testing.T) {
	setupStateDir(t)

	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{9, zerolog.TraceLevel},
	}
	for _, tt := range tests {
		Setup(tt.verbosity, false)
		if got := zerolog.GlobalLevel(); got != tt.want {
			t.Errorf("verbosity %d: level = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestSetup_CreatesStateFile(t *testing.T) {
	dir := setupStateDir(t)

	Setup(0, false)
	log.Warn().Msg("probe")

	path := filepath.Join(dir, "crest", "crest.log")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	if !strings.Contains(string(data), "probe") {
		t.Errorf("log file missing entry: %s", data)
	}
}

func TestComponent_TagsLogger(t *testing.T) {
	setupStateDir(t)
	Setup(0, false)

	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = prev }()

	clog := Component("registry")
	clog.Warn().Msg("tagged")
	if !strings.Contains(buf.String(), `"component":"registry"`) {
		t.Errorf("output missing component tag: %s", buf.String())
	}
}
