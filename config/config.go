/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/suparena/entitybond/errors"
)

// Environment variables that override file values.
const (
	EnvRegion    = "AWS_REGION"
	EnvAccessKey = "AWS_ACCESS_KEY"
	EnvSecretKey = "AWS_SECRET_KEY"
	EnvTable     = "AWS_DDB_TABLE"
	EnvLogLevel  = "ENTITYBOND_LOG_LEVEL"
)

// AWS holds the credentials used to reach DynamoDB.
type AWS struct {
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"accessKeyId"`
	SecretAccessKey string `yaml:"secretAccessKey"`
	// Endpoint overrides the service endpoint, e.g. for DynamoDB Local.
	Endpoint string `yaml:"endpoint"`
}

// Config is the runtime configuration of the datastores and CLI.
type Config struct {
	AWS      AWS    `yaml:"aws"`
	Table    string `yaml:"table"`
	LogLevel string `yaml:"logLevel"`
}

// Load reads the YAML file at path (skipped when path is empty), then applies
// a .env file from the working directory, if present, and the process environment.
func Load(path string) (*Config, error) {
	cfg := &Config{LogLevel: "info"}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	// a missing .env is fine
	_ = godotenv.Load()

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	override(&c.AWS.Region, EnvRegion)
	override(&c.AWS.AccessKeyID, EnvAccessKey)
	override(&c.AWS.SecretAccessKey, EnvSecretKey)
	override(&c.Table, EnvTable)
	override(&c.LogLevel, EnvLogLevel)
}

func override(dst *string, env string) {
	if v, ok := os.LookupEnv(env); ok && v != "" {
		*dst = v
	}
}

// Validate reports the first missing required setting.
func (c *Config) Validate() error {
	if c.AWS.Region == "" {
		return errors.NewValidationError("aws.region", "must not be empty")
	}
	if c.Table == "" {
		return errors.NewValidationError("table", "must not be empty")
	}
	if (c.AWS.AccessKeyID == "") != (c.AWS.SecretAccessKey == "") {
		return errors.NewValidationError("aws", "accessKeyId and secretAccessKey must be set together")
	}
	return nil
}
