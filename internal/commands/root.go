package commands

import (
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand creates the root command with the common flag set.
// All flags are persistent and bound to viper once, before any
// subcommand runs.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "cryptvault [flags] command [flags]",
		Short: "AES-256-CBC file and text encryption tool",
		Long: `Crypt Vault encrypts and decrypts files and text snippets with
AES-256 in CBC mode. The key is derived from a password by a single
SHA-256 hash; ciphertexts carry a random IV followed by the encrypted
blocks.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return viper.BindPFlags(cmd.Root().PersistentFlags())
		},
	}

	root.PersistentFlags().StringP("password", "p", "", "Password used to derive the encryption key (prompted when omitted)")
	root.PersistentFlags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.PersistentFlags().BoolP("delete", "d", false, "Delete the original file after successful encryption/decryption")
	root.PersistentFlags().Bool("stats", false, "Print a batch summary after processing")
	root.PersistentFlags().Bool("preserve-timestamps", false, "Preserve source modification times on outputs")

	root.PersistentFlags().String("encrypt-ext", ".enc", "Suffix to append to encrypted files")
	root.PersistentFlags().String("decrypt-ext", "", "Suffix to append to decrypted files, after stripping the encrypted suffix")
	root.PersistentFlags().String("files-from", "", "Path to a JSONC file listing additional input files")

	root.AddCommand(NewEncryptCommand(), NewDecryptCommand(), NewTextCommand(), NewHashCommand())

	return root
}
