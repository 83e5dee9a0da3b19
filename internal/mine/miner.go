package mine

import (
	"fmt"
	"strings"
)

// Config holds the tunables for a Miner. The zero value is not valid; start
// from DefaultConfig.
type Config struct {
	// Depth is the number of token-branching levels below the token-count
	// level of the parse tree. Must be >= 1.
	Depth int

	// SimilarityThreshold is the minimum score for a line to join an
	// existing cluster, in [0,1]. The comparison is inclusive.
	SimilarityThreshold float64

	// MaxChildren caps the branches per tree node before new tokens are
	// forced through the generic wildcard branch. Must be >= 2 so a node
	// can hold at least one literal next to the wildcard.
	MaxChildren int

	// Rules are the normalization substitutions applied before
	// tokenization, in order.
	Rules []Rule

	// Delimiters are extra split characters beyond whitespace.
	Delimiters string

	// IsVariableToken decides which tokens branch through the wildcard
	// child during tree descent. Nil means DefaultVarToken.
	IsVariableToken VarTokenFunc
}

// DefaultConfig returns the standard tuning: depth 4, threshold 0.5,
// 100 children per node, and the default normalization rules.
func DefaultConfig() Config {
	return Config{
		Depth:               4,
		SimilarityThreshold: 0.5,
		MaxChildren:         100,
		Rules:               DefaultRules(),
	}
}

// Validate rejects malformed configuration eagerly, before any line is
// processed.
func (c Config) Validate() error {
	if c.Depth < 1 {
		return fmt.Errorf("depth must be >= 1, got %d", c.Depth)
	}
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("similarity threshold must be in [0,1], got %g", c.SimilarityThreshold)
	}
	if c.MaxChildren < 2 {
		return fmt.Errorf("max children must be >= 2, got %d", c.MaxChildren)
	}
	return nil
}

// Record is the structured result emitted for every processed line.
type Record struct {
	// ClusterID identifies the cluster the line joined or created.
	ClusterID int `json:"cluster_id"`

	// Template is the cluster's template after this line was absorbed.
	Template []string `json:"template"`

	// Tokens is the line's normalized token sequence.
	Tokens []string `json:"tokens"`

	// Values are the tokens occupying the template's wildcard positions,
	// in position order.
	Values []string `json:"values,omitempty"`
}

// TemplateString renders the record's template as a single line.
func (r Record) TemplateString() string {
	return strings.Join(r.Template, " ")
}

// Miner is the per-stream template mining state: one parse tree, one
// cluster store, and the configuration they were built with. Construct one
// per independent log stream. Not safe for concurrent use; see the package
// documentation.
type Miner struct {
	norm       *normalizer
	tree       *parseTree
	store      *clusterStore
	threshold  float64
	delimiters string
	lines      int
}

// New builds a Miner, validating the configuration and compiling its
// normalization rules up front.
func New(cfg Config) (*Miner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid miner config: %w", err)
	}

	norm, err := newNormalizer(cfg.Rules)
	if err != nil {
		return nil, fmt.Errorf("invalid miner config: %w", err)
	}

	isVar := cfg.IsVariableToken
	if isVar == nil {
		isVar = DefaultVarToken
	}

	return &Miner{
		norm:       norm,
		tree:       newParseTree(cfg.Depth, cfg.MaxChildren, isVar),
		store:      &clusterStore{},
		threshold:  cfg.SimilarityThreshold,
		delimiters: cfg.Delimiters,
	}, nil
}

// ProcessLine classifies one raw line: normalize, tokenize, narrow
// candidates through the tree, match or create a cluster, and emit the
// record. It cannot fail; every line, including one that normalizes to
// nothing, has a defined path.
func (m *Miner) ProcessLine(line string) Record {
	m.lines++

	seq := tokenize(m.norm.Normalize(line), m.delimiters)
	candidates := m.tree.lookup(seq)

	c, ok := m.store.bestMatch(seq, candidates, m.threshold)
	if ok {
		before := m.tree.branchKeys(c.template)
		c.absorb(seq, line)
		m.relink(c, before)
	} else {
		c = m.store.create(seq, line)
		m.tree.insert(seq, c.id)
	}

	return m.record(c, seq)
}

// relink moves a cluster to the leaf its generalized template now descends
// to, when absorbing a line turned one of its branching tokens into a
// wildcard. Without this, lines matching the widened template would keep
// missing the cluster's original literal branch.
func (m *Miner) relink(c *cluster, before []string) {
	after := m.tree.branchKeys(c.template)
	for i := range after {
		if after[i] != before[i] {
			m.tree.remove(len(c.template), c.id)
			m.tree.insert(c.template, c.id)
			return
		}
	}
}

// record assembles the per-line output, extracting the tokens that sit at
// the template's wildcard positions.
func (m *Miner) record(c *cluster, seq []string) Record {
	var values []string
	for i, tok := range c.template {
		if tok == Wildcard {
			values = append(values, seq[i])
		}
	}
	return Record{
		ClusterID: c.id,
		Template:  append([]string(nil), c.template...),
		Tokens:    seq,
		Values:    values,
	}
}

// Clusters dumps a snapshot of every cluster in id order.
func (m *Miner) Clusters() []ClusterInfo {
	out := make([]ClusterInfo, 0, len(m.store.clusters))
	for _, c := range m.store.clusters {
		out = append(out, c.snapshot())
	}
	return out
}

// ClusterCount returns the number of discovered templates.
func (m *Miner) ClusterCount() int {
	return len(m.store.clusters)
}

// LineCount returns the total number of lines processed.
func (m *Miner) LineCount() int {
	return m.lines
}
