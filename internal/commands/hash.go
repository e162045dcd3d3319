package commands

import (
	"github.com/spf13/cobra"

	"github.com/toxicbishop/Crypt-Vault/internal/logic"
)

// NewHashCommand creates the hash subcommand. Hashing needs no password;
// it prints digests in sha256sum format.
func NewHashCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash [flags] files...",
		Short: "Print the SHA-256 digest of files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return logic.RunHash(args)
		},
	}
}
