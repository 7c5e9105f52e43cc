package config

// Config is the top-level YAML structure.
type Config struct {
	Input   InputConf   `yaml:"input"`
	Output  OutputConf  `yaml:"output"`
	Strict  StrictConf  `yaml:"strict"`
	Watch   WatchConf   `yaml:"watch"`
	Metrics MetricsConf `yaml:"metrics"`
}

// InputConf controls how the raw k-mer blob is tokenized.
type InputConf struct {
	Delimiter        string `yaml:"delimiter"`         // token separator, default ","
	ValidateAlphabet bool   `yaml:"validate_alphabet"` // reject bases outside A/C/G/T/N
}

// OutputConf controls where and how the assembled sequence is written.
type OutputConf struct {
	Path   string `yaml:"path"`   // default "assembly.txt"
	Format string `yaml:"format"` // raw | fasta | json
}

// StrictConf toggles the hardened failure modes. Both default to true;
// disabling one restores the permissive historical behavior.
type StrictConf struct {
	SingleSource         *bool `yaml:"single_source"`          // >1 source node is an error
	RequireFullTraversal *bool `yaml:"require_full_traversal"` // leftover edges are an error
}

// WatchConf tunes watch mode.
type WatchConf struct {
	DebounceMs int `yaml:"debounce_ms"` // quiet period between re-assemblies
}

// MetricsConf configures the observability endpoint served in watch mode.
type MetricsConf struct {
	Addr string `yaml:"addr"` // default ":9090"
}

// SingleSourceEnabled reports the effective strict.single_source value.
func (s StrictConf) SingleSourceEnabled() bool {
	return s.SingleSource == nil || *s.SingleSource
}

// RequireFullTraversalEnabled reports the effective strict.require_full_traversal value.
func (s StrictConf) RequireFullTraversalEnabled() bool {
	return s.RequireFullTraversal == nil || *s.RequireFullTraversal
}
