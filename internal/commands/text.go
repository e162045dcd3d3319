package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/toxicbishop/Crypt-Vault/internal/config"
	"github.com/toxicbishop/Crypt-Vault/internal/encryption"
)

// NewTextCommand groups the inline text operations. Ciphertext is
// exchanged as lowercase hex so it survives copy and paste.
func NewTextCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Encrypt or decrypt text snippets (hex ciphertext)",
	}

	cmd.AddCommand(newTextEncryptCommand(), newTextDecryptCommand())

	return cmd
}

func newTextEncryptCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt [flags] text",
		Aliases: []string{"enc"},
		Short:   "Encrypt a text snippet to hex",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			codec, err := textCodec()
			if err != nil {
				return err
			}

			out, err := codec.EncryptText(args[0])
			if err != nil {
				return fmt.Errorf("encrypting text: %w", err)
			}

			fmt.Println(out)

			return nil
		},
	}
}

func newTextDecryptCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "decrypt [flags] hex-ciphertext",
		Aliases: []string{"dec"},
		Short:   "Decrypt a hex ciphertext back to text",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			codec, err := textCodec()
			if err != nil {
				return err
			}

			out, err := codec.DecryptText(args[0])
			if err != nil {
				return fmt.Errorf("decrypting text (wrong password or invalid data): %w", err)
			}

			fmt.Println(out)

			return nil
		},
	}
}

// textCodec builds a Codec from the password flag, prompting when absent.
func textCodec() (*encryption.Codec, error) {
	cfg := config.Config{Password: viper.GetString("password")}

	if err := resolvePassword(&cfg); err != nil {
		return nil, err
	}

	codec, err := encryption.NewCodec(cfg.Password)
	if err != nil {
		return nil, fmt.Errorf("deriving key: %w", err)
	}

	return codec, nil
}
