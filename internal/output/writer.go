// Package output persists assembly reports in one of several formats.
// The default "raw" format writes the reconstructed sequence verbatim,
// with no trailing newline.
package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/kmerlab/seqasm/internal/pipeline"
)

// Writer renders one assembly report to w.
type Writer interface {
	// Name returns the format key this writer is registered under.
	Name() string
	// Write renders rep to w.
	Write(w io.Writer, rep *pipeline.Report) error
}

// Registry maps format names to writers.
// It is safe for concurrent reads; Register should only be called at startup.
type Registry struct {
	mu      sync.RWMutex
	writers map[string]Writer
}

// NewRegistry creates a Registry preloaded with the built-in formats.
func NewRegistry() *Registry {
	r := &Registry{writers: make(map[string]Writer)}
	r.Register(rawWriter{})
	r.Register(fastaWriter{})
	r.Register(jsonWriter{})
	return r
}

// Register adds a writer. Panics on duplicate name to surface misconfiguration early.
func (r *Registry) Register(w Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.writers[w.Name()]; exists {
		panic(fmt.Sprintf("output registry: duplicate format %q", w.Name()))
	}
	r.writers[w.Name()] = w
}

// Get returns the writer for the given format name.
func (r *Registry) Get(format string) (Writer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.writers[format]
	if !ok {
		return nil, fmt.Errorf("no writer registered for format %q", format)
	}
	return w, nil
}

// Formats returns all registered format names, sorted.
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.writers))
	for k := range r.writers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// WriteFile renders rep in the given format and persists it to path.
func (r *Registry) WriteFile(path, format string, rep *pipeline.Report) error {
	w, err := r.Get(format)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output %s: %w", path, err)
	}
	if err := w.Write(f, rep); err != nil {
		f.Close()
		return fmt.Errorf("write output %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output %s: %w", path, err)
	}
	return nil
}
