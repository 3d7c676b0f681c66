// Package config assembles the dashboard's startup configuration from
// built-in defaults, an optional YAML file, and environment variables,
// in that precedence order (environment always wins).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Content roots
	MemoryBankDir string `yaml:"memory_bank_dir"`
	LessonsDir    string `yaml:"lessons_learned_dir"`
	ADRDir        string `yaml:"adr_dir"`
	FeaturesDir   string `yaml:"features_dir"`
	NotesDir      string `yaml:"notes_dir"`
	// HTTP bind
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// Behavior
	Debug bool `yaml:"debug"`
	// Version override; resolution happens in the version package.
	Version string `yaml:"-"`
}

func Load() (*Config, error) {
	root := InstallRoot()
	cfg := &Config{
		MemoryBankDir: filepath.Join(root, "memory-bank"),
		LessonsDir:    filepath.Join(root, "lessons-learned"),
		ADRDir:        filepath.Join(root, "adr"),
		FeaturesDir:   filepath.Join(root, "features"),
		NotesDir:      filepath.Join(root, "notes"),
		Host:          "127.0.0.1",
		Port:          5000,
	}

	if err := cfg.applyFile(); err != nil {
		return nil, err
	}
	cfg.applyEnv()

	if err := cfg.absolutize(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// Addr is the host:port the HTTP server binds.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// applyFile overlays values from the YAML config file. A missing file is
// only an error when DASHBOARD_CONFIG names it explicitly.
func (c *Config) applyFile() error {
	path := os.Getenv("DASHBOARD_CONFIG")
	explicit := path != ""
	if !explicit {
		path = "dashboard.yml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.MemoryBankDir = envStr("MEMORY_BANK_DIR", c.MemoryBankDir)
	c.LessonsDir = envStr("LESSONS_LEARNED_DIR", c.LessonsDir)
	c.ADRDir = envStr("ADR_DIR", c.ADRDir)
	c.FeaturesDir = envStr("FEATURES_DIR", c.FeaturesDir)
	c.NotesDir = envStr("NOTES_DIR", c.NotesDir)
	c.Host = envStr("DASHBOARD_HOST", c.Host)
	c.Port = envInt("DASHBOARD_PORT", c.Port)
	c.Debug = envBool("DASHBOARD_DEBUG", c.Debug)
	c.Version = envStr("DASHBOARD_VERSION", c.Version)
}

// absolutize pins each content root to an absolute path.
func (c *Config) absolutize() error {
	for _, dir := range []*string{&c.MemoryBankDir, &c.LessonsDir, &c.ADRDir, &c.FeaturesDir, &c.NotesDir} {
		abs, err := filepath.Abs(*dir)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", *dir, err)
		}
		*dir = abs
	}
	return nil
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("DASHBOARD_PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.Host == "" {
		return fmt.Errorf("DASHBOARD_HOST must not be empty")
	}
	if c.MemoryBankDir == "" {
		return fmt.Errorf("MEMORY_BANK_DIR must not be empty")
	}
	return nil
}

// InstallRoot is the directory the content-root defaults hang off: the
// parent of the directory holding the executable, falling back to the
// working directory when that cannot be determined.
func InstallRoot() string {
	exe, err := os.Executable()
	if err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		return filepath.Dir(filepath.Dir(exe))
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
