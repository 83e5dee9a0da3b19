package mine

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		delimiters string
		want       []string
	}{
		{
			name: "whitespace split",
			line: "user 42 login",
			want: []string{"user", "42", "login"},
		},
		{
			name: "consecutive whitespace dropped",
			line: "  a \t b\n",
			want: []string{"a", "b"},
		},
		{
			name: "empty line",
			line: "",
			want: nil,
		},
		{
			name: "only whitespace",
			line: "   \t ",
			want: nil,
		},
		{
			name:       "extra delimiters",
			line:       "key=value,other=thing",
			delimiters: "=,",
			want:       []string{"key", "value", "other", "thing"},
		},
		{
			name:       "consecutive extra delimiters dropped",
			line:       "a==b",
			delimiters: "=",
			want:       []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenize(tt.line, tt.delimiters)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokenize(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestDefaultVarToken(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"12345", true},
		{"user42", true},
		{"0xdeadbeef", true},
		{"login", false},
		{"<*>", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := DefaultVarToken(tt.token); got != tt.want {
				t.Errorf("DefaultVarToken(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}
