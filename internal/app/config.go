package app

import (
	"errors"

	"github.com/vk/shapegridgo/internal/config"
)

// Config holds all the necessary configuration for an App instance.
type Config struct {
	SuitePath string // hcl suite files (file or directory)

	LogFormat string
	LogLevel  string
	Mode      string // default validation mode; sessions may override
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SuitePath == "" {
		return nil, errors.New("SuitePath is a required configuration field and cannot be empty")
	}
	if _, err := config.ParseMode(cfg.Mode); err != nil {
		return nil, err
	}
	return &cfg, nil
}
