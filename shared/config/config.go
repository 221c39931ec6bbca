package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AI      AIConfig      `yaml:"ai"`
	YouTube YouTubeConfig `yaml:"youtube"`
	Player  PlayerConfig  `yaml:"player"`
	Clips   ClipsConfig   `yaml:"clips"`
	LogFile string        `yaml:"log_file"`
}

type AIConfig struct {
	GeminiAPIKey string `yaml:"gemini_api_key" env:"GEMINI_API_KEY"`
	Model        string `yaml:"model"`
	// SaveKeyToKeyring opts into persisting a prompted-for key in the OS
	// keyring. Off by default: the key lives only for the session.
	SaveKeyToKeyring bool `yaml:"save_key_to_keyring"`
}

type YouTubeConfig struct {
	// APIKey enables metadata lookups for URL submissions. Optional:
	// without it URL analysis runs on search grounding alone.
	APIKey string `yaml:"api_key" env:"YOUTUBE_API_KEY"`
}

type PlayerConfig struct {
	Command string `yaml:"command"`
}

type ClipsConfig struct {
	// Count is how many clip suggestions the model is asked for.
	Count int `yaml:"count"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}

	var cfg Config
	data, err := os.ReadFile(configFile)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	if cfg.AI.GeminiAPIKey == "" {
		cfg.AI.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.YouTube.APIKey == "" {
		cfg.YouTube.APIKey = os.Getenv("YOUTUBE_API_KEY")
	}

	if cfg.AI.Model == "" {
		cfg.AI.Model = "gemini-2.5-flash"
	}
	if cfg.Player.Command == "" {
		cfg.Player.Command = "mpv"
	}
	if cfg.Clips.Count == 0 {
		cfg.Clips.Count = 5
	}
	if cfg.LogFile == "" {
		cfg.LogFile = "clipper.log"
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Clips.Count < 1 || c.Clips.Count > 10 {
		return fmt.Errorf("clips.count must be between 1 and 10, got %d", c.Clips.Count)
	}
	if c.Player.Command == "" {
		return fmt.Errorf("player.command is required")
	}
	return nil
}
