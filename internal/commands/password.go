package commands

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/toxicbishop/Crypt-Vault/internal/config"
)

// resolvePassword fills cfg.Password from a hidden terminal prompt when
// the flag was omitted. Non-interactive runs must pass --password.
func resolvePassword(cfg *config.Config) error {
	if cfg.Password != "" {
		return nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("password required: pass --password or run interactively")
	}

	fmt.Fprint(os.Stderr, "Enter password: ")

	password, err := term.ReadPassword(fd)

	fmt.Fprintln(os.Stderr) // newline after the hidden input

	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}

	if len(password) == 0 {
		return errors.New("password cannot be empty")
	}

	cfg.Password = string(password)

	return nil
}
