// Command cryptvault encrypts and decrypts files and text with
// AES-256-CBC, using a password-derived key.
package main

import (
	"os"

	"github.com/toxicbishop/Crypt-Vault/internal/commands"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := commands.NewRootCommand(version).Execute(); err != nil {
		os.Exit(1)
	}
}
