package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	// Directory holding the lyrics_* score and text folders.
	ContentDir string `koanf:"content_dir"`

	Log    LogConfig    `koanf:"log"`
	Player PlayerConfig `koanf:"player"`
	Update UpdateConfig `koanf:"update"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `koanf:"level"` // debug, info, warn, error (default: info)
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/hymnchtv/hymnchtv.log
}

// PlayerConfig holds the external programs used for playback.
type PlayerConfig struct {
	Embedded     string   `koanf:"embedded"`      // video/stream player (default: "mpv")
	EmbeddedArgs []string `koanf:"embedded_args"` // extra args placed before the URL
	Opener       string   `koanf:"opener"`        // generic opener (default: "xdg-open")
	MimeQuery    string   `koanf:"mime_query"`    // handler lookup (default: "xdg-mime")
	Launcher     string   `koanf:"launcher"`      // starts a desktop entry (default: "gtk-launch")
	YtDlp        string   `koanf:"ytdlp"`         // YouTube link extractor (default: "yt-dlp")
}

// UpdateConfig holds the application update settings.
type UpdateConfig struct {
	Mirrors        []string `koanf:"mirrors"`         // base URLs tried in order
	Debug          bool     `koanf:"debug"`           // use download_link-debug
	TimeoutSeconds int      `koanf:"timeout_seconds"` // per mirror (default: 10)
	CheckOnStart   *bool    `koanf:"check_on_start"`  // default: true
}

// DefaultMirrors is used when no mirror is configured.
var DefaultMirrors = []string{"https://atalk.sytes.net"}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given TOML files in order; later files override
// earlier ones and missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.ContentDir = expandPath(cfg.ContentDir)
	cfg.Log.File = expandPath(cfg.Log.File)

	for i, m := range cfg.Update.Mirrors {
		cfg.Update.Mirrors[i] = strings.TrimSuffix(strings.TrimSpace(m), "/")
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/hymnchtv/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "hymnchtv", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetContentDir returns the content directory, defaulting to ./content.
func (c *Config) GetContentDir() string {
	if c.ContentDir == "" {
		return "content"
	}
	return c.ContentDir
}

// GetPlayerConfig returns the player configuration with defaults applied.
func (c *Config) GetPlayerConfig() PlayerConfig {
	cfg := c.Player

	if cfg.Embedded == "" {
		cfg.Embedded = "mpv"
	}
	if cfg.Opener == "" {
		cfg.Opener = "xdg-open"
	}
	if cfg.MimeQuery == "" {
		cfg.MimeQuery = "xdg-mime"
	}
	if cfg.Launcher == "" {
		cfg.Launcher = "gtk-launch"
	}
	if cfg.YtDlp == "" {
		cfg.YtDlp = "yt-dlp"
	}

	return cfg
}

// GetUpdateConfig returns the update configuration with defaults applied.
func (c *Config) GetUpdateConfig() UpdateConfig {
	cfg := c.Update

	if len(cfg.Mirrors) == 0 {
		cfg.Mirrors = append([]string(nil), DefaultMirrors...)
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 10
	}
	if cfg.CheckOnStart == nil {
		enabled := true
		cfg.CheckOnStart = &enabled
	}

	return cfg
}

// Timeout returns the per-mirror fetch timeout.
func (u UpdateConfig) Timeout() time.Duration {
	return time.Duration(u.TimeoutSeconds) * time.Second
}

// ShouldCheckOnStart reports whether mirrors are polled at start-up.
func (u UpdateConfig) ShouldCheckOnStart() bool {
	return u.CheckOnStart == nil || *u.CheckOnStart
}
