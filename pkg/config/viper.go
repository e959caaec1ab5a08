// Package config loads layered configuration: an optional .env file, an
// optional YAML file and environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configName.yaml from configPath (also "." and "./config") and
// returns a viper instance with environment overrides enabled. Nested keys map
// to upper-case variables with dots replaced by underscores, so server.port is
// read from SERVER_PORT. A missing config file is not an error.
//
// envFiles are loaded into the process environment first; missing files are
// skipped and variables already set are left untouched.
func Load(configPath, configName string, envFiles ...string) (*viper.Viper, error) {
	if err := loadDotEnv(envFiles...); err != nil {
		return nil, err
	}

	v := viper.New()

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return v, nil
}

func loadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}
