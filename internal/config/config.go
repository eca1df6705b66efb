// Package config loads the ideaboard configuration from a TOML file,
// creating it with defaults on first run.
package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const DefaultConfigFileName = "config.toml"

// Sidebar width limits in cells
const (
	MinSidebarWidth = 20
	MaxSidebarWidth = 60
)

// ServerConfig points the gateway at one project's board
type ServerConfig struct {
	URL         string `toml:"url"`
	Project     string `toml:"project"`
	AccessToken string `toml:"access_token"`
}

// UIConfig contains presentation settings
type UIConfig struct {
	SidebarWidth  int  `toml:"sidebar_width"`
	ShowHeadlines bool `toml:"show_headlines"`
}

// Config is the full ideaboard configuration
type Config struct {
	Server ServerConfig `toml:"server"`
	UI     UIConfig     `toml:"ui"`
}

// DefaultPath returns the per-user config file location
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ideaboard", DefaultConfigFileName), nil
}

// LoadOrCreate reads the config at path, writing a default one first if the
// file does not exist. The access token can always be overridden through the
// IDEABOARD_TOKEN environment variable so it never has to live on disk.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return applyEnv(cfg), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return applyEnv(normalize(cfg)), nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func normalize(cfg Config) Config {
	if cfg.Server.URL == "" {
		cfg.Server.URL = defaultConfig().Server.URL
	}
	if cfg.Server.Project == "" {
		cfg.Server.Project = defaultConfig().Server.Project
	}
	if cfg.UI.SidebarWidth < MinSidebarWidth {
		cfg.UI.SidebarWidth = MinSidebarWidth
	}
	if cfg.UI.SidebarWidth > MaxSidebarWidth {
		cfg.UI.SidebarWidth = MaxSidebarWidth
	}
	return cfg
}

func applyEnv(cfg Config) Config {
	if token := os.Getenv("IDEABOARD_TOKEN"); token != "" {
		cfg.Server.AccessToken = token
	}
	return cfg
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			URL:     "http://localhost:8000",
			Project: "default",
		},
		UI: UIConfig{
			SidebarWidth:  28,
			ShowHeadlines: true,
		},
	}
}
