package mine

import "testing"

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		seq      []string
		template []string
		want     float64
	}{
		{
			name:     "identical",
			seq:      []string{"a", "b", "c"},
			template: []string{"a", "b", "c"},
			want:     1.0,
		},
		{
			name:     "no overlap",
			seq:      []string{"a", "b", "c"},
			template: []string{"x", "y", "z"},
			want:     0.0,
		},
		{
			name:     "half match",
			seq:      []string{"connect", "ok"},
			template: []string{"disconnect", "ok"},
			want:     0.5,
		},
		{
			name:     "wildcard absorbs any value",
			seq:      []string{"user", "99", "login"},
			template: []string{"user", Wildcard, "login"},
			want:     1.0,
		},
		{
			name:     "both empty",
			seq:      nil,
			template: nil,
			want:     1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := similarity(tt.seq, tt.template); got != tt.want {
				t.Errorf("similarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSimilarityLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()
	similarity([]string{"a"}, []string{"a", "b"})
}

func TestBestMatchThresholdInclusive(t *testing.T) {
	store := &clusterStore{}
	store.create([]string{"disconnect", "ok"}, "disconnect ok")

	seq := []string{"connect", "ok"}

	if _, ok := store.bestMatch(seq, []int{0}, 0.5); !ok {
		t.Error("similarity exactly at threshold should match")
	}
	if _, ok := store.bestMatch(seq, []int{0}, 0.51); ok {
		t.Error("similarity below threshold should not match")
	}
}

func TestBestMatchTieGoesToLowestID(t *testing.T) {
	store := &clusterStore{}
	store.create([]string{"a", "x", "c"}, "a x c")
	store.create([]string{"a", "y", "c"}, "a y c")

	// Both candidates score 2/3 against the input; the lower id wins.
	c, ok := store.bestMatch([]string{"a", "z", "c"}, []int{1, 0}, 0.5)
	if !ok {
		t.Fatal("expected a match")
	}
	if c.id != 0 {
		t.Errorf("tie broke to cluster %d, want 0", c.id)
	}
}

func TestBestMatchPicksHighestScore(t *testing.T) {
	store := &clusterStore{}
	store.create([]string{"a", "b", "z"}, "a b z")
	store.create([]string{"a", "b", "c"}, "a b c")

	c, ok := store.bestMatch([]string{"a", "b", "c"}, []int{0, 1}, 0.5)
	if !ok {
		t.Fatal("expected a match")
	}
	if c.id != 1 {
		t.Errorf("best match = cluster %d, want 1", c.id)
	}
}

func TestBestMatchNoCandidates(t *testing.T) {
	store := &clusterStore{}
	if _, ok := store.bestMatch([]string{"a"}, nil, 0.0); ok {
		t.Error("empty candidate set must not match")
	}
}
