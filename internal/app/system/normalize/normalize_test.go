package normalize

import (
	"testing"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ada@example.com", "ada@example.com"},
		{"  Ada@Example.COM ", "Ada@Example.COM"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Email(tt.input); got != tt.want {
				t.Errorf("Email(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestName(t *testing.T) {
	if got := Name("  Ada Lovelace "); got != "Ada Lovelace" {
		t.Errorf("Name = %q", got)
	}
	if got := Name("UPPER"); got != "UPPER" {
		t.Errorf("Name should keep case, got %q", got)
	}
}
