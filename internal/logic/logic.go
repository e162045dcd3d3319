// Package logic implements the core business logic for the encryption,
// decryption and hashing commands.
package logic

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/toxicbishop/Crypt-Vault/internal/config"
	"github.com/toxicbishop/Crypt-Vault/internal/digest"
	"github.com/toxicbishop/Crypt-Vault/internal/encryption"
	"github.com/toxicbishop/Crypt-Vault/internal/filelist"
)

// Run is the main logic of the encrypt and decrypt commands.
func Run(cfg *config.Config) error {
	start := time.Now()

	if err := resolveFiles(cfg); err != nil {
		return err
	}

	proc, err := encryption.NewProcessor(cfg)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	processed, errored, totalSize, err := proc.ProcessFiles()

	if cfg.Stats {
		printStats(processed, errored, totalSize, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

// resolveFiles merges positional args with the --files-from list and
// deduplicates while preserving order.
func resolveFiles(cfg *config.Config) error {
	files := append([]string{}, cfg.Files...)

	if cfg.FilesFrom != "" {
		listed, err := filelist.Load(cfg.FilesFrom)
		if err != nil {
			return fmt.Errorf("loading file list: %w", err)
		}

		files = append(files, listed...)
	}

	seen := make(map[string]struct{}, len(files))
	merged := files[:0]

	for _, file := range files {
		if _, ok := seen[file]; ok {
			continue
		}

		seen[file] = struct{}{}
		merged = append(merged, file)
	}

	if len(merged) == 0 {
		return errors.New("no input files given")
	}

	cfg.Files = merged

	return nil
}

// printStats writes the batch summary the way the original tool reported
// its batch runs: counts, byte total and elapsed time.
func printStats(processed, errored int, totalSize int64, elapsed time.Duration) {
	fmt.Fprintf(os.Stderr, "%d file(s) processed, %d failed, %s written in %s\n",
		processed, errored, humanize.Bytes(uint64(totalSize)), elapsed.Round(time.Millisecond)) //nolint:gosec // sizes are non-negative
}

// RunHash prints the SHA-256 digest of each file in sha256sum format.
func RunHash(files []string) error {
	var failed int

	for _, file := range files {
		data, err := os.ReadFile(file) //nolint:gosec // paths are user-supplied arguments
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error hashing %q: %v\n", file, err)

			failed++

			continue
		}

		sum := digest.Sum256(data)
		fmt.Printf("%s  %s\n", hex.EncodeToString(sum[:]), file)
	}

	if failed > 0 {
		return fmt.Errorf("%d file(s) could not be hashed", failed)
	}

	return nil
}
