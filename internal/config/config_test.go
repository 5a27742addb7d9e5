package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/llehouerou/crest"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_NoFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Icons != "" || cfg.Verbosity != 0 || cfg.Notify.Enabled {
		t.Errorf("empty config = %+v, want zero values", cfg)
	}
	if cfg.Registry.KeepPosition != nil {
		t.Error("unset keep_position should stay nil")
	}
	if got := cfg.Options(); len(got) != 0 {
		t.Errorf("Options() on empty config = %d entries, want 0", len(got))
	}
}

func TestLoad_RegistrySection(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	writeConfig(t, dir, `
icons = "nerd"
verbosity = 2

[registry]
keep_position = false
additive_actions = true
consistent_appearance = false
appearance_delay_ms = 300

[[registry.slots]]
x = 0.1
y = 0.2

[[registry.slots]]
x = 0.3
y = 0.4

[notify]
enabled = true
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Icons != "nerd" || cfg.Verbosity != 2 {
		t.Errorf("config = %+v, want nerd/2", cfg)
	}
	if !cfg.Notify.Enabled {
		t.Error("notify.enabled = false, want true")
	}
	if cfg.Registry.KeepPosition == nil || *cfg.Registry.KeepPosition {
		t.Error("keep_position = nil or true, want false")
	}
	if cfg.Registry.AdditiveActions == nil || !*cfg.Registry.AdditiveActions {
		t.Error("additive_actions = nil or false, want true")
	}
	if cfg.Registry.AppearanceDelayMs != 300 {
		t.Errorf("appearance_delay_ms = %d, want 300", cfg.Registry.AppearanceDelayMs)
	}
	if len(cfg.Registry.Slots) != 2 || cfg.Registry.Slots[1].Y != 0.4 {
		t.Errorf("slots = %+v, want two entries ending at y 0.4", cfg.Registry.Slots)
	}
	if got := cfg.Options(); len(got) != 5 {
		t.Errorf("Options() = %d entries, want 5", len(got))
	}
}

func TestLoad_CwdOverridesHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homeCfg := filepath.Join(home, ".config", "crest")
	if err := os.MkdirAll(homeCfg, 0o755); err != nil {
		t.Fatal(err)
	}
	writeConfig(t, homeCfg, "icons = \"unicode\"\nverbosity = 1\n")

	cwd := t.TempDir()
	t.Chdir(cwd)
	writeConfig(t, cwd, "icons = \"nerd\"\n")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Icons != "nerd" {
		t.Errorf("icons = %q, want cwd value nerd", cfg.Icons)
	}
	if cfg.Verbosity != 1 {
		t.Errorf("verbosity = %d, want home value 1 to survive the merge", cfg.Verbosity)
	}
}

func TestLoadFile_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	if err := os.WriteFile(path, []byte("icons = \"none\"\nverbosity = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Icons != "none" || cfg.Verbosity != 3 {
		t.Errorf("config = %+v, want none/3", cfg)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("LoadFile on a missing path returned no error")
	}
}

func TestOptions_ApplyToRegistry(t *testing.T) {
	cfg := &Config{
		Registry: RegistryConfig{
			Slots: []SlotPosition{{X: 0.25, Y: 0.75}},
		},
	}

	host := crest.NewMockHost()
	r := crest.New(host, cfg.Options()...)
	r.Bind("probe", crest.Callbacks{crest.NewCallback(func(crest.Event) {})}, true, "p", "")

	btn, ok := host.Button("probe")
	if !ok {
		t.Fatal("no button for probe")
	}
	want := crest.Position{X: 0.25, Y: 0.75}
	if got := btn.(*crest.MockButton).Position(); got != want {
		t.Errorf("position = %v, want %v from configured slot table", got, want)
	}
}
