package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1"
)

type Config struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
	DataDir string `yaml:"data_dir"`
}

func Default() Config {
	return Config{
		Model:   DefaultModel,
		BaseURL: DefaultBaseURL,
		DataDir: defaultDataDir(),
	}
}

// Load reads config.yaml from the data directory if present, then applies
// GEMINI_API_KEY and GLEAN_MODEL environment overrides.
func Load() (Config, error) {
	cfg := Default()

	path := filepath.Join(cfg.DataDir, "config.yaml")
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("GLEAN_MODEL"); v != "" {
		cfg.Model = v
	}

	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir()
	}
	return cfg, nil
}

// WriteSkeleton writes a commented config.yaml, unless one already exists.
func WriteSkeleton(dataDir string) error {
	path := filepath.Join(dataDir, "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	skeleton := fmt.Sprintf(`# glean configuration
# api_key may also be supplied via the GEMINI_API_KEY environment variable.
api_key: ""
model: %s
base_url: %s
`, DefaultModel, DefaultBaseURL)

	return os.WriteFile(path, []byte(skeleton), 0644)
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".glean"
	}
	return filepath.Join(home, ".glean")
}
