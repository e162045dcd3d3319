package encryption

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/toxicbishop/Crypt-Vault/internal/config"
	"github.com/toxicbishop/Crypt-Vault/internal/fileutil"
)

// Processor handles the encryption and decryption of files. One Codec
// (and therefore one key schedule) is shared by all workers; the schedule
// is read-only after construction so no locking is needed.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// codec performs the CBC encryption and decryption
	codec *Codec

	// results channels processing outcomes to the printer goroutine
	results chan Result
}

// NewProcessor derives the key from the configured password and prepares
// the processor.
func NewProcessor(cfg *config.Config) (*Processor, error) {
	codec, err := NewCodec(cfg.Password)
	if err != nil {
		return nil, fmt.Errorf("deriving key: %w", err)
	}

	return &Processor{
		cfg:     cfg,
		codec:   codec,
		results: make(chan Result, len(cfg.Files)),
	}, nil
}

// ProcessFiles concurrently processes all files specified in the
// configuration. Returns the number of successfully processed files, the
// number of failures and the total bytes written.
func (p *Processor) ProcessFiles() (processed, errored int, totalSize int64, err error) {
	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range p.results {
			if result.Error != nil {
				errored++

				fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", result.Input, result.Error)

				continue
			}

			processed++
			totalSize += result.OutputSize

			if !p.cfg.Quiet {
				fmt.Printf("Processed %q -> %q\n", result.Input, result.Output)
			}

			if p.cfg.Delete {
				if err := os.Remove(result.Input); err != nil {
					fmt.Fprintf(os.Stderr, "Error deleting %q: %v\n", result.Input, err)
				} else if !p.cfg.Quiet {
					fmt.Printf("Deleted %q\n", result.Input)
				}
			}
		}
	}()

	for _, file := range p.cfg.Files {
		file := file

		group.Go(func() error {
			outPath := p.outputPath(file)

			size, err := p.processFile(file, outPath)
			if err != nil {
				p.results <- Result{Input: file, Error: err}

				return err
			}

			p.results <- Result{Input: file, Output: outPath, OutputSize: size}

			return nil
		})
	}

	err = group.Wait()

	close(p.results)

	<-done // Wait for printer to finish

	if err != nil {
		return processed, errored, totalSize, fmt.Errorf("processing files: %w", err)
	}

	return processed, errored, totalSize, nil
}

// processFile encrypts or decrypts a single file. The whole input is
// loaded into memory (the codec operates on materialized buffers) and the
// output is written through a temp file with an atomic rename.
func (p *Processor) processFile(filename, outPath string) (size int64, err error) {
	tc, err := fileutil.NewTempContext(filename, outPath)
	if err != nil {
		return 0, fmt.Errorf("preparing atomic write: %w", err)
	}

	defer tc.CleanupOnError(&err)

	input, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return 0, fmt.Errorf("reading file: %w", err)
	}

	var output []byte

	if p.cfg.Decrypt {
		output, err = p.codec.Decrypt(input)
		if err != nil {
			return 0, fmt.Errorf("decrypting file (wrong password or corrupt file): %w", err)
		}
	} else {
		output, err = p.codec.Encrypt(input)
		if err != nil {
			return 0, fmt.Errorf("encrypting file: %w", err)
		}
	}

	if _, err := tc.TmpFile.Write(output); err != nil {
		return 0, fmt.Errorf("writing output: %w", err)
	}

	const ownerReadWrite = 0o600

	if err := os.Chmod(tc.TmpName, ownerReadWrite); err != nil {
		return 0, fmt.Errorf("setting file permissions: %w", err)
	}

	if err := tc.TmpFile.Close(); err != nil {
		return 0, fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(tc.TmpName, outPath); err != nil {
		return 0, fmt.Errorf("renaming output file: %w", err)
	}

	size, err = fileutil.FinalizeOutput(outPath, p.cfg.PreserveTimestamps, tc.SrcInfo.ModTime())
	if err != nil {
		return 0, fmt.Errorf("finalizing output: %w", err)
	}

	return size, nil
}

// outputPath generates the output file path. Encryption appends the
// encrypt suffix; decryption strips it, falling back to a "decrypted_"
// prefix when the input never carried the suffix.
func (p *Processor) outputPath(filename string) string {
	if !p.cfg.Decrypt {
		return filename + p.cfg.EncryptSuffix
	}

	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	if strings.HasSuffix(base, p.cfg.EncryptSuffix) {
		base = strings.TrimSuffix(base, p.cfg.EncryptSuffix)
	} else {
		base = "decrypted_" + base
	}

	return filepath.Join(dir, base+p.cfg.DecryptSuffix)
}
