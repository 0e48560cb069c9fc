package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application settings read from a YAML file.
type Config struct {
	Data DataConfig `yaml:"data"`
}

type DataConfig struct {
	// Folder containing customers.csv, foods.csv and orders.csv.
	Folder string `yaml:"folder"`
}

func Default() Config {
	return Config{Data: DataConfig{Folder: "data"}}
}

func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Data.Folder == "" {
		return Config{}, fmt.Errorf("invalid config %s: data.folder is empty", path)
	}
	return cfg, nil
}

// FindConfig returns the first config file present among the usual
// candidate paths.
func FindConfig() (string, error) {
	candidates := []string{"config.yaml", "deploy/config.example.yaml"}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fs.ErrNotExist
}
