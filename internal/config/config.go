package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Storage struct {
		Bucket         string `yaml:"bucket" env:"RESUME_BUCKET_NAME"`
		Table          string `yaml:"table" env:"RESUME_TABLE_NAME"`
		PartitionKey   string `yaml:"partition_key" env:"RESUME_TABLE_PARTITION_KEY"`
		PublicBasePath string `yaml:"public_base_path" env:"RESUME_PUBLIC_BASE_PATH"`
		LocalPath      string `yaml:"local_path" env:"RESUME_LOCAL_PATH"`
	} `yaml:"storage"`

	AWS struct {
		Region    string `yaml:"region" env:"AWS_REGION"`
		Endpoint  string `yaml:"endpoint" env:"AWS_ENDPOINT_URL"`
		AccessKey string `yaml:"access_key" env:"AWS_ACCESS_KEY_ID"`
		SecretKey string `yaml:"secret_key" env:"AWS_SECRET_ACCESS_KEY"`
	} `yaml:"aws"`

	Catalog struct {
		Path string `yaml:"path" env:"CATALOG_PATH"`
	} `yaml:"catalog"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	// Storage defaults. Bucket and table stay empty so a machine without
	// AWS resources falls back to local storage.
	config.Storage.PartitionKey = "studentId"
	config.Storage.PublicBasePath = "/api/resume-files"
	config.Storage.LocalPath = "local_resumes"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if config.Storage.PartitionKey == "" {
		return fmt.Errorf("record table partition key is required")
	}

	if !strings.HasPrefix(config.Storage.PublicBasePath, "/") {
		return fmt.Errorf("public base path must start with /")
	}

	// Bucket and table are configured together or not at all
	if (config.Storage.Bucket == "") != (config.Storage.Table == "") {
		return fmt.Errorf("storage bucket and table must both be set to use managed storage")
	}

	return nil
}

// UseLocalStorage reports whether the managed object store and record
// table are unconfigured and the local fallback should be used instead.
func (c *Config) UseLocalStorage() bool {
	return c.Storage.Bucket == "" || c.Storage.Table == ""
}
