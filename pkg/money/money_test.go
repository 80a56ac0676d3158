package money

import "testing"

func TestDisplayPrice(t *testing.T) {
	cases := []struct {
		cents int
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{100, "$1.00"},
		{1999, "$19.99"},
		{123456, "$1234.56"},
		{-250, "$-2.50"},
	}
	for _, tc := range cases {
		if got := DisplayPrice(tc.cents); got != tc.want {
			t.Fatalf("DisplayPrice(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}
