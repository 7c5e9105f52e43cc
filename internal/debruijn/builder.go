package debruijn

// Build constructs the de Bruijn graph for an ordered, non-empty sequence of
// equal-length k-mers. Each k-mer contributes one edge prefix → suffix, where
// prefix drops the last character and suffix drops the first. Insertion order
// matters: it fixes adjacency order and therefore which Eulerian path a later
// traversal produces.
func Build(kmers []string) (*Graph, error) {
	if len(kmers) == 0 {
		return nil, ErrNoKmers
	}
	k := len(kmers[0])
	if k < 2 {
		return nil, ErrKmerTooShort
	}
	g := NewGraph()
	for _, kmer := range kmers {
		if len(kmer) < 2 {
			return nil, ErrKmerTooShort
		}
		if len(kmer) != k {
			return nil, ErrKmerLengthMismatch
		}
		g.AddEdge(kmer[:len(kmer)-1], kmer[1:])
	}
	return g, nil
}
