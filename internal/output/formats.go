package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kmerlab/seqasm/internal/pipeline"
)

// fastaLineWidth is the column at which FASTA sequence lines wrap.
const fastaLineWidth = 70

// rawWriter emits the sequence verbatim: no header, no trailing newline.
type rawWriter struct{}

func (rawWriter) Name() string { return "raw" }

func (rawWriter) Write(w io.Writer, rep *pipeline.Report) error {
	_, err := io.WriteString(w, rep.Sequence)
	return err
}

// fastaWriter emits a single FASTA record whose header carries the run ID
// and basic assembly stats.
type fastaWriter struct{}

func (fastaWriter) Name() string { return "fasta" }

func (fastaWriter) Write(w io.Writer, rep *pipeline.Report) error {
	if _, err := fmt.Fprintf(w, ">seqasm|%s k=%d kmers=%d length=%d\n", rep.RunID, rep.K, rep.KmerCount, len(rep.Sequence)); err != nil {
		return err
	}
	seq := rep.Sequence
	for len(seq) > 0 {
		n := fastaLineWidth
		if n > len(seq) {
			n = len(seq)
		}
		if _, err := fmt.Fprintln(w, seq[:n]); err != nil {
			return err
		}
		seq = seq[n:]
	}
	return nil
}

// jsonWriter emits the whole run report as a single JSON document.
type jsonWriter struct{}

func (jsonWriter) Name() string { return "json" }

func (jsonWriter) Write(w io.Writer, rep *pipeline.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
