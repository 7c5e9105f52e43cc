package kmer

import (
	"fmt"
	"os"
)

// ReadFile loads an input file and splits it into k-mer tokens.
// The expected raw form is a single blob of delimiter-separated tokens.
func ReadFile(path, delimiter string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input %s: %w", path, err)
	}
	kmers := Split(string(data), delimiter)
	if len(kmers) == 0 {
		return nil, fmt.Errorf("input %s: %w", path, ErrEmptyInput)
	}
	return kmers, nil
}
