package mine

// similarity scores a token sequence against a template of the same length
// as the fraction of positions that agree. Wildcard template positions
// match any token. Two empty sequences are identical.
//
// Sequences of differing length never share a tree leaf, so a length
// mismatch here means the tree linkage is corrupt; continuing would merge
// unrelated clusters, so halt instead.
func similarity(seq, template []string) float64 {
	if len(seq) != len(template) {
		panic("mine: similarity compared sequences of different length")
	}
	if len(seq) == 0 {
		return 1.0
	}

	matches := 0
	for i, tok := range template {
		if tok == Wildcard || tok == seq[i] {
			matches++
		}
	}
	return float64(matches) / float64(len(seq))
}

// bestMatch picks the candidate cluster most similar to the sequence,
// requiring score >= threshold (inclusive). Ties go to the lowest cluster
// id so identical input always yields identical output.
func (s *clusterStore) bestMatch(seq []string, candidates []int, threshold float64) (*cluster, bool) {
	var best *cluster
	bestScore := -1.0

	for _, id := range candidates {
		c := s.get(id)
		score := similarity(seq, c.template)
		if score > bestScore || (score == bestScore && best != nil && c.id < best.id) {
			best = c
			bestScore = score
		}
	}

	if best == nil || bestScore < threshold {
		return nil, false
	}
	return best, true
}
