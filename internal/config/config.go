package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `json:"server"`
	Storage  StorageConfig  `json:"storage"`
	Analysis AnalysisConfig `json:"analysis"`
	Logging  LoggingConfig  `json:"logging"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Host         string        `json:"host"`
	Port         int           `json:"port"`
	ReadTimeout  time.Duration `json:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout"`
	IdleTimeout  time.Duration `json:"idle_timeout"`
}

// StorageConfig locates the local key-value data directory
type StorageConfig struct {
	DataDir string `json:"data_dir"`
}

// AnalysisConfig configures the hosted generative-AI boundary
type AnalysisConfig struct {
	APIKey         string        `json:"api_key"`
	AuditModel     string        `json:"audit_model"`
	DiscoveryModel string        `json:"discovery_model"`
	Timeout        time.Duration `json:"timeout"`
}

// LoggingConfig
type LoggingConfig struct {
	Level string `json:"level"`
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Default config
	config := &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Storage: StorageConfig{
			DataDir: "./data",
		},
		Analysis: AnalysisConfig{
			AuditModel:     "gemini-3-flash-preview",
			DiscoveryModel: "gemini-2.5-flash",
			Timeout:        2 * time.Minute,
		},
	}

	// Load from file if exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			if err := json.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	// Override with environment variables
	overrideWithEnv(config)

	return config, nil
}

func overrideWithEnv(config *Config) {
	if host := os.Getenv("SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if dir := os.Getenv("ECOTRACK_DATA_DIR"); dir != "" {
		config.Storage.DataDir = dir
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		config.Analysis.APIKey = key
	}
	if model := os.Getenv("ECOTRACK_AUDIT_MODEL"); model != "" {
		config.Analysis.AuditModel = model
	}
	if model := os.Getenv("ECOTRACK_DISCOVERY_MODEL"); model != "" {
		config.Analysis.DiscoveryModel = model
	}
	if timeout := os.Getenv("ECOTRACK_ANALYSIS_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			config.Analysis.Timeout = d
		}
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// GetServerAddr returns the server address
func (c *ServerConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
