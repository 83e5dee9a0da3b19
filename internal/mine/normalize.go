package mine

import (
	"fmt"
	"regexp"
)

// Rule is one normalization substitution applied to a raw line before
// tokenization. Rules run in order; later rules see the output of earlier
// ones.
type Rule struct {
	Pattern     string `mapstructure:"pattern" json:"pattern"`
	Replacement string `mapstructure:"replacement" json:"replacement"`
}

// DefaultRules collapse the usual high-cardinality substrings (timestamps,
// addresses, long numbers, paths, UUIDs) to placeholder tokens so they
// don't fragment templates.
func DefaultRules() []Rule {
	return []Rule{
		{Pattern: `\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}:?\d{2})?`, Replacement: "<timestamp>"},
		{Pattern: `\d{2}/\d{2}/\d{4} \d{2}:\d{2}:\d{2}`, Replacement: "<timestamp>"},
		{Pattern: `\b\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}\b`, Replacement: "<ip>"},
		{Pattern: `\b[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}\b`, Replacement: "<uuid>"},
		{Pattern: `\b\d{5,}\b`, Replacement: "<num>"},
		{Pattern: `/[^\s]+`, Replacement: "<path>"},
	}
}

// normalizer applies an ordered list of compiled substitution rules.
type normalizer struct {
	rules []compiledRule
}

type compiledRule struct {
	re          *regexp.Regexp
	replacement string
}

// newNormalizer compiles the rules, preserving order. An invalid pattern
// is a configuration error.
func newNormalizer(rules []Rule) (*normalizer, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for i, rule := range rules {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("normalization rule %d (%q): %w", i, rule.Pattern, err)
		}
		compiled = append(compiled, compiledRule{re: re, replacement: rule.Replacement})
	}
	return &normalizer{rules: compiled}, nil
}

// Normalize applies every rule once, in order, over the whole line.
// Rules that don't match are no-ops; any input normalizes.
func (n *normalizer) Normalize(line string) string {
	for _, rule := range n.rules {
		line = rule.re.ReplaceAllString(line, rule.replacement)
	}
	return line
}
