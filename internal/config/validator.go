package config

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Validate checks the config for:
//   - a single-rune input delimiter (multi-character separators are not supported)
//   - a known output format
//   - sane watch debounce
//
// All problems are collected and reported together.
func Validate(cfg *Config) error {
	var errs []string

	if utf8.RuneCountInString(cfg.Input.Delimiter) != 1 {
		errs = append(errs, fmt.Sprintf("input.delimiter: must be a single character, got %q", cfg.Input.Delimiter))
	}

	switch cfg.Output.Format {
	case "raw", "fasta", "json":
	default:
		errs = append(errs, fmt.Sprintf("output.format: unknown format %q (want raw, fasta, or json)", cfg.Output.Format))
	}
	if cfg.Output.Path == "" {
		errs = append(errs, "output.path: must not be empty")
	}

	if cfg.Watch.DebounceMs < 0 {
		errs = append(errs, fmt.Sprintf("watch.debounce_ms: must not be negative, got %d", cfg.Watch.DebounceMs))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
