package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the client settings read at startup.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Player  PlayerConfig  `yaml:"player"`
	Journal JournalConfig `yaml:"journal"`
}

// ServerConfig is the game server connection settings.
type ServerConfig struct {
	URL                string `yaml:"url"`
	NegotiationTimeout int    `yaml:"negotiation_timeout"` // seconds
}

// PlayerConfig is the player identity settings.
type PlayerConfig struct {
	Nickname string `yaml:"nickname"`
	FaceID   int    `yaml:"face_id"`
}

// JournalConfig controls the Redis message journal.
type JournalConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// NegotiationTimeoutDuration returns the option negotiation timeout.
func (c *ServerConfig) NegotiationTimeoutDuration() time.Duration {
	return time.Duration(c.NegotiationTimeout) * time.Second
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Server.URL == "" {
		cfg.Server.URL = "ws://localhost:8880/ws"
	}
	if cfg.Server.NegotiationTimeout == 0 {
		cfg.Server.NegotiationTimeout = 5
	}
	if cfg.Player.Nickname == "" {
		cfg.Player.Nickname = "player"
	}
	if cfg.Player.FaceID == 0 {
		cfg.Player.FaceID = 1
	}
	if cfg.Journal.Addr == "" {
		cfg.Journal.Addr = "localhost:6379"
	}

	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			URL:                "ws://localhost:8880/ws",
			NegotiationTimeout: 5,
		},
		Player: PlayerConfig{
			Nickname: "player",
			FaceID:   1,
		},
		Journal: JournalConfig{
			Addr: "localhost:6379",
		},
	}
}
