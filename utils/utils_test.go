package utils

import (
	"regexp"
	"testing"
)

func TestClampLimit(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{5, 5},
		{limitMax, limitMax},
		{5000, limitMax},
		{0, limitDefault},
		{-1, limitDefault},
	}
	for _, tc := range cases {
		if got := ClampLimit(tc.in); got != tc.want {
			t.Errorf("ClampLimit(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestNewRequestID(t *testing.T) {
	id := NewRequestID("trade")
	if !regexp.MustCompile(`^trade_[0-9a-f]{12}$`).MatchString(id) {
		t.Errorf("unexpected request ID format: %s", id)
	}

	if NewRequestID("req") == NewRequestID("req") {
		t.Error("expected unique request IDs")
	}
}
