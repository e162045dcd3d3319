package digest_test

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/toxicbishop/Crypt-Vault/internal/digest"
)

// Case is a single known-answer vector from a YAML golden file.
type Case struct {
	Description string `yaml:"description,omitempty"`
	Message     string `yaml:"message"`
	Digest      string `yaml:"digest"`
}

// Group is a named collection of vectors.
type Group struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

func loadVectors(t *testing.T) []Group {
	t.Helper()

	data, err := os.ReadFile("testdata/vectors.yml")
	if err != nil {
		t.Fatalf("reading testdata: %v", err)
	}

	var groups []Group
	if err := yaml.Unmarshal(data, &groups); err != nil {
		t.Fatalf("parsing testdata: %v", err)
	}

	if len(groups) == 0 {
		t.Fatal("no vector groups found")
	}

	return groups
}

// TestSum256Vectors runs all golden known-answer vectors.
func TestSum256Vectors(t *testing.T) {
	t.Parallel()

	for _, group := range loadVectors(t) {
		group := group

		t.Run(group.Name, func(t *testing.T) {
			t.Parallel()

			for _, tc := range group.Cases {
				sum := digest.Sum256([]byte(tc.Message))

				if got := hex.EncodeToString(sum[:]); got != tc.Digest {
					t.Errorf("%s: Sum256(%q) = %s, want %s", tc.Description, tc.Message, got, tc.Digest)
				}
			}
		})
	}
}

// TestSum256AgainstStandardLibrary cross-checks every input length around
// the block and padding boundaries against crypto/sha256.
func TestSum256AgainstStandardLibrary(t *testing.T) {
	t.Parallel()

	for size := 0; size <= 300; size++ {
		msg := make([]byte, size)
		for i := range msg {
			msg[i] = byte(i*31 + size)
		}

		got := digest.Sum256(msg)
		want := sha256.Sum256(msg)

		if got != want {
			t.Fatalf("Sum256 mismatch at length %d: got %x, want %x", size, got, want)
		}
	}
}

// TestSum256Pure verifies that hashing neither mutates its input nor
// retains state across calls.
func TestSum256Pure(t *testing.T) {
	t.Parallel()

	msg := []byte("the quick brown fox jumps over the lazy dog")
	orig := append([]byte(nil), msg...)

	first := digest.Sum256(msg)
	second := digest.Sum256(msg)

	if first != second {
		t.Error("Sum256 is not deterministic across calls")
	}

	if !bytes.Equal(msg, orig) {
		t.Error("Sum256 mutated its input")
	}
}
