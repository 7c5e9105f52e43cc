package debruijn_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/kmerlab/seqasm/internal/debruijn"
)

func TestBuild_ConcreteGraph(t *testing.T) {
	g, err := debruijn.Build([]string{"AAB", "ABC", "BCD", "CDA"})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	wantNodes := []string{"AA", "AB", "BC", "CD", "DA"}
	if got := g.Nodes(); !reflect.DeepEqual(got, wantNodes) {
		t.Errorf("Nodes() = %v, want %v", got, wantNodes)
	}
	if g.EdgeCount() != 4 {
		t.Errorf("EdgeCount() = %d, want 4", g.EdgeCount())
	}

	degrees := []struct {
		node    string
		in, out int
	}{
		{"AA", 0, 1},
		{"AB", 1, 1},
		{"BC", 1, 1},
		{"CD", 1, 1},
		{"DA", 1, 0},
	}
	for _, d := range degrees {
		if got := g.InDegree(d.node); got != d.in {
			t.Errorf("InDegree(%s) = %d, want %d", d.node, got, d.in)
		}
		if got := g.OutDegree(d.node); got != d.out {
			t.Errorf("OutDegree(%s) = %d, want %d", d.node, got, d.out)
		}
	}
}

func TestBuild_DegreeSumsEqualKmerCount(t *testing.T) {
	cases := []struct {
		name  string
		kmers []string
	}{
		{"linear", []string{"AAB", "ABC", "BCD", "CDA"}},
		{"circuit", []string{"ABA", "BAB"}},
		{"parallel edges", []string{"AT", "AT", "TA"}},
		{"single kmer", []string{"ACGT"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := debruijn.Build(tc.kmers)
			if err != nil {
				t.Fatalf("Build error: %v", err)
			}
			sumIn, sumOut := 0, 0
			for _, n := range g.Nodes() {
				sumIn += g.InDegree(n)
				sumOut += g.OutDegree(n)
			}
			if sumIn != len(tc.kmers) || sumOut != len(tc.kmers) {
				t.Errorf("degree sums in=%d out=%d, want both %d", sumIn, sumOut, len(tc.kmers))
			}
			if g.EdgeCount() != len(tc.kmers) {
				t.Errorf("EdgeCount() = %d, want %d", g.EdgeCount(), len(tc.kmers))
			}
		})
	}
}

func TestBuild_InputErrors(t *testing.T) {
	cases := []struct {
		name  string
		kmers []string
		want  error
	}{
		{"empty", nil, debruijn.ErrNoKmers},
		{"too short", []string{"A"}, debruijn.ErrKmerTooShort},
		{"short among valid", []string{"ACG", "C"}, debruijn.ErrKmerTooShort},
		{"mixed k", []string{"ACG", "ACGT"}, debruijn.ErrKmerLengthMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := debruijn.Build(tc.kmers); !errors.Is(err, tc.want) {
				t.Errorf("Build(%v) error = %v, want %v", tc.kmers, err, tc.want)
			}
		})
	}
}

func TestBuild_ParallelEdgesAreKept(t *testing.T) {
	g, err := debruijn.Build([]string{"AT", "AT", "AT"})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if got := g.OutDegree("A"); got != 3 {
		t.Errorf("OutDegree(A) = %d, want 3", got)
	}
	if got := g.RemainingEdges(); got != 3 {
		t.Errorf("RemainingEdges() = %d, want 3", got)
	}
}
