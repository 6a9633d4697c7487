// Package config loads the service configuration from an optional YAML
// file with environment-variable fallbacks.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// AssistConfig defines the generative-AI API settings. An empty APIKey
// disables the assist endpoints.
type AssistConfig struct {
	BaseURL    string `yaml:"base_url"`
	APIKey     string `yaml:"api_key"`
	ImageModel string `yaml:"image_model"`
}

// Config defines the uniconvd configuration.
type Config struct {
	Addr   string       `yaml:"addr"`
	Assist AssistConfig `yaml:"assist"`
}

// Load reads config from the yaml file named by UNICONV_CONFIG, then
// fills gaps from env and defaults.
func Load() (Config, error) {
	cfg := Config{}

	if path := os.Getenv("UNICONV_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	if cfg.Addr == "" {
		cfg.Addr = getenvDefault("UNICONV_ADDR", ":8080")
	}
	if cfg.Assist.BaseURL == "" {
		cfg.Assist.BaseURL = getenvDefault("ASSIST_BASE_URL", "https://api.generative.example.com")
	}
	if cfg.Assist.APIKey == "" {
		cfg.Assist.APIKey = os.Getenv("ASSIST_API_KEY")
	}
	if cfg.Assist.ImageModel == "" {
		cfg.Assist.ImageModel = os.Getenv("ASSIST_IMAGE_MODEL")
	}
	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
