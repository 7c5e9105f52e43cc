// Package kmer handles the k-mer input boundary: splitting raw blobs into
// tokens, validating them, and decomposing known sequences for verification.
package kmer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyInput is returned when the raw input contains no k-mers.
var ErrEmptyInput = errors.New("kmer: empty input")

// Split breaks a raw input blob into k-mer tokens. The whole blob is trimmed
// of surrounding whitespace first, then split on delimiter; each token is
// trimmed as well so "AAB, ABC" parses the same as "AAB,ABC".
func Split(blob, delimiter string) []string {
	blob = strings.TrimSpace(blob)
	if blob == "" {
		return nil
	}
	parts := strings.Split(blob, delimiter)
	kmers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kmers = append(kmers, p)
		}
	}
	return kmers
}

// Validate checks the token-level contract before graph construction:
// at least one k-mer, every k-mer at least 2 characters, all the same length,
// and (optionally) drawn from the DNA alphabet A/C/G/T/N.
func Validate(kmers []string, checkAlphabet bool) error {
	if len(kmers) == 0 {
		return ErrEmptyInput
	}
	k := len(kmers[0])
	for i, kmer := range kmers {
		if len(kmer) < 2 {
			return fmt.Errorf("kmer %d (%q): length %d is below the minimum of 2", i, kmer, len(kmer))
		}
		if len(kmer) != k {
			return fmt.Errorf("kmer %d (%q): length %d differs from first k-mer length %d", i, kmer, len(kmer), k)
		}
		if checkAlphabet {
			for j := 0; j < len(kmer); j++ {
				switch kmer[j] {
				case 'A', 'C', 'G', 'T', 'N', 'a', 'c', 'g', 't', 'n':
				default:
					return fmt.Errorf("kmer %d (%q): invalid base %q at position %d", i, kmer, kmer[j], j)
				}
			}
		}
	}
	return nil
}

// Decompose slides a window of size k over seq with step 1 and returns every
// k-mer in order. It returns nil when seq is shorter than k or k < 2.
func Decompose(seq string, k int) []string {
	if k < 2 || len(seq) < k {
		return nil
	}
	kmers := make([]string, 0, len(seq)-k+1)
	for i := 0; i+k <= len(seq); i++ {
		kmers = append(kmers, seq[i:i+k])
	}
	return kmers
}
