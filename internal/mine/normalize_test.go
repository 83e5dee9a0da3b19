package mine

import (
	"strings"
	"testing"
)

func TestNormalizerDefaultRules(t *testing.T) {
	norm, err := newNormalizer(DefaultRules())
	if err != nil {
		t.Fatalf("newNormalizer() error = %v", err)
	}

	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "iso timestamp",
			line: "2024-01-01T10:00:05Z connection opened",
			want: "<timestamp> connection opened",
		},
		{
			name: "space separated timestamp",
			line: "2024-01-01 10:00:05 connection opened",
			want: "<timestamp> connection opened",
		},
		{
			name: "ipv4 address",
			line: "connect from 10.1.2.3 refused",
			want: "connect from <ip> refused",
		},
		{
			name: "uuid",
			line: "request 550e8400-e29b-41d4-a716-446655440000 done",
			want: "request <uuid> done",
		},
		{
			name: "long number",
			line: "session 8675309 expired",
			want: "session <num> expired",
		},
		{
			name: "short number kept",
			line: "retry 3 of 5",
			want: "retry 3 of 5",
		},
		{
			name: "absolute path",
			line: "open /var/log/app.log failed",
			want: "open <path> failed",
		},
		{
			name: "no match is a no-op",
			line: "plain message",
			want: "plain message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := norm.Normalize(tt.line); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestNormalizerRuleOrder(t *testing.T) {
	// Later rules see earlier rules' output.
	norm, err := newNormalizer([]Rule{
		{Pattern: `cat`, Replacement: "dog"},
		{Pattern: `dog`, Replacement: "bird"},
	})
	if err != nil {
		t.Fatalf("newNormalizer() error = %v", err)
	}

	if got := norm.Normalize("a cat and a dog"); got != "a bird and a bird" {
		t.Errorf("Normalize() = %q, want %q", got, "a bird and a bird")
	}
}

func TestNormalizerInvalidPattern(t *testing.T) {
	_, err := newNormalizer([]Rule{{Pattern: `[unclosed`, Replacement: "x"}})
	if err == nil {
		t.Fatal("expected error for invalid pattern")
	}
	if !strings.Contains(err.Error(), "[unclosed") {
		t.Errorf("error should name the bad pattern, got: %v", err)
	}
}

func TestNormalizerNoRules(t *testing.T) {
	norm, err := newNormalizer(nil)
	if err != nil {
		t.Fatalf("newNormalizer() error = %v", err)
	}
	if got := norm.Normalize("untouched 123"); got != "untouched 123" {
		t.Errorf("Normalize() = %q, want input unchanged", got)
	}
}
