// Package commands provides the command-line interface for cryptvault.
//
// It implements commands for:
//   - file encryption and decryption
//   - inline text encryption and decryption (hex)
//   - SHA-256 file hashing
//
// The package handles command-line parsing, configuration validation
// and flag binding through cobra and viper.
package commands

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/toxicbishop/Crypt-Vault/internal/config"
)

// parseConfig unmarshals the bound flags into a Config, attaches the
// positional arguments, resolves the password and validates the result.
func parseConfig(args []string) (*config.Config, error) {
	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Files = args

	if err := resolvePassword(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
