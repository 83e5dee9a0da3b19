package mine

import "strings"

// maxExamples caps the raw sample lines retained per cluster so memory
// stays bounded by the number of clusters, not the number of lines.
const maxExamples = 3

// cluster is the mutable record for one discovered template. Only
// aggregate state is kept; matched lines are not retained beyond the
// capped example set.
type cluster struct {
	id       int
	template []string
	count    int
	examples []string
}

// ClusterInfo is a point-in-time snapshot of a cluster, the dump contract
// for persistence and inspection by downstream consumers.
type ClusterInfo struct {
	ID       int      `json:"id"`
	Template []string `json:"template"`
	Count    int      `json:"count"`
	Examples []string `json:"examples,omitempty"`
}

// TemplateString renders the template tokens as a single line.
func (c ClusterInfo) TemplateString() string {
	return strings.Join(c.Template, " ")
}

// clusterStore owns every cluster. Ids are stable: a cluster's id is its
// index in the slice, assigned at creation and never reused.
type clusterStore struct {
	clusters []*cluster
}

// create makes a new cluster whose template is a verbatim copy of the
// sequence; positions only generalize to wildcards through later matches.
func (s *clusterStore) create(seq []string, raw string) *cluster {
	c := &cluster{
		id:       len(s.clusters),
		template: append([]string(nil), seq...),
		count:    1,
		examples: []string{raw},
	}
	s.clusters = append(s.clusters, c)
	return c
}

func (s *clusterStore) get(id int) *cluster {
	return s.clusters[id]
}

// absorb merges a matched sequence into the cluster: positions where the
// sequence disagrees with the template become wildcards. Generalization is
// monotone; a wildcard position never reverts to a literal.
func (c *cluster) absorb(seq []string, raw string) {
	if len(seq) != len(c.template) {
		panic("mine: template length mismatch in cluster leaf")
	}
	for i, tok := range c.template {
		if tok != Wildcard && tok != seq[i] {
			c.template[i] = Wildcard
		}
	}
	c.count++
	if len(c.examples) < maxExamples {
		c.examples = append(c.examples, raw)
	}
}

// snapshot returns a copy safe to hand to callers.
func (c *cluster) snapshot() ClusterInfo {
	return ClusterInfo{
		ID:       c.id,
		Template: append([]string(nil), c.template...),
		Count:    c.count,
		Examples: append([]string(nil), c.examples...),
	}
}
