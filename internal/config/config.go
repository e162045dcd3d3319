// Package config holds the runtime configuration shared by all commands.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config is populated from flags via viper and validated before use.
type Config struct {
	// Common flags
	Password           string `validate:"required"`
	Parallel           int    `validate:"min=1"`
	Quiet              bool
	Delete             bool
	Stats              bool
	PreserveTimestamps bool   `mapstructure:"preserve-timestamps"`
	EncryptSuffix      string `mapstructure:"encrypt-ext" validate:"required"`
	DecryptSuffix      string `mapstructure:"decrypt-ext"`
	FilesFrom          string `mapstructure:"files-from"`

	// Command-specific
	Decrypt bool

	// Positional arguments, merged with the --files-from list
	Files []string
}

// Validate validates the configuration against the struct tags.
func (c Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	return nil
}
