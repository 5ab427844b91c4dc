//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tilde expands to home", "~/hymns", filepath.Join(home, "hymns")},
		{"absolute path unchanged", "/usr/share/hymnchtv", "/usr/share/hymnchtv"},
		{"relative path unchanged", "content", "content"},
		{"empty string unchanged", "", ""},
		{"tilde only", "~", home},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("getConfigPaths() returned empty slice")
	}
	if last := paths[len(paths)-1]; last != "config.toml" {
		t.Errorf("last config path = %q, want %q", last, "config.toml")
	}
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFrom(t *testing.T) {
	dir := t.TempDir()
	base := writeConfig(t, dir, "base.toml", `
content_dir = "/srv/hymns"

[log]
level = "debug"

[player]
embedded = "vlc"
embedded_args = ["--play-and-exit"]

[update]
mirrors = ["https://mirror-a.example/ ", "https://mirror-b.example"]
debug = true
timeout_seconds = 3
`)
	override := writeConfig(t, dir, "override.toml", `
[player]
embedded = "mpv"
`)

	cfg, err := LoadFrom(base, override, filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.ContentDir != "/srv/hymns" {
		t.Errorf("ContentDir = %q", cfg.ContentDir)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
	if cfg.Player.Embedded != "mpv" {
		t.Errorf("Player.Embedded = %q, want override mpv", cfg.Player.Embedded)
	}
	if len(cfg.Player.EmbeddedArgs) != 1 || cfg.Player.EmbeddedArgs[0] != "--play-and-exit" {
		t.Errorf("Player.EmbeddedArgs = %v", cfg.Player.EmbeddedArgs)
	}
	if got := cfg.Update.Mirrors; len(got) != 2 || got[0] != "https://mirror-a.example" {
		t.Errorf("Update.Mirrors = %v", got)
	}

	u := cfg.GetUpdateConfig()
	if !u.Debug {
		t.Error("Update.Debug should be true")
	}
	if u.Timeout() != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", u.Timeout())
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "bad.toml", "content_dir = [")
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}

	if cfg.GetContentDir() != "content" {
		t.Errorf("GetContentDir() = %q", cfg.GetContentDir())
	}

	p := cfg.GetPlayerConfig()
	if p.Embedded != "mpv" || p.Opener != "xdg-open" || p.MimeQuery != "xdg-mime" || p.Launcher != "gtk-launch" || p.YtDlp != "yt-dlp" {
		t.Errorf("player defaults = %+v", p)
	}

	u := cfg.GetUpdateConfig()
	if len(u.Mirrors) != len(DefaultMirrors) {
		t.Errorf("mirrors = %v", u.Mirrors)
	}
	if u.TimeoutSeconds != 10 {
		t.Errorf("TimeoutSeconds = %d", u.TimeoutSeconds)
	}
	if u.CheckOnStart == nil || !*u.CheckOnStart {
		t.Error("CheckOnStart should default to true")
	}
}

func TestShouldCheckOnStart(t *testing.T) {
	off := false
	if (UpdateConfig{CheckOnStart: &off}).ShouldCheckOnStart() {
		t.Error("explicit false should disable the check")
	}
	if !(UpdateConfig{}).ShouldCheckOnStart() {
		t.Error("unset should enable the check")
	}
}
