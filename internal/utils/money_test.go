package utils

import (
	"testing"

	"vitatkal/internal/domain"
)

func TestParseRupees(t *testing.T) {
	cases := []struct {
		in   string
		want domain.Paise
	}{
		{"200", 20000},
		{"200.00", 20000},
		{"200.5", 20050},
		{"0.01", 1},
		{"₹1,200.75", 120075},
		{"-60", -6000},
	}
	for _, tc := range cases {
		got, err := ParseRupees(tc.in)
		if err != nil {
			t.Fatalf("ParseRupees(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseRupees(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseRupeesRejectsBadInput(t *testing.T) {
	for _, in := range []string{"", "abc", "1.234", "12.3.4"} {
		if _, err := ParseRupees(in); err == nil {
			t.Fatalf("ParseRupees(%q) should fail", in)
		}
	}
}

func TestFormatRupees(t *testing.T) {
	if got := FormatRupees(20000); got != "200.00" {
		t.Fatalf("FormatRupees(20000) = %q", got)
	}
	if got := FormatRupees(-6000); got != "-60.00" {
		t.Fatalf("FormatRupees(-6000) = %q", got)
	}
	if got := FormatRupees(1); got != "0.01" {
		t.Fatalf("FormatRupees(1) = %q", got)
	}
}

func TestSplitSharesExactPartition(t *testing.T) {
	shares := SplitShares(20000, map[string]int64{"a": 50, "b": 25, "c": 25})
	if shares["a"] != 10000 || shares["b"] != 5000 || shares["c"] != 5000 {
		t.Fatalf("unexpected shares: %v", shares)
	}
}

func TestSplitSharesRemainderNeverLeaks(t *testing.T) {
	// 100.01 across 3/33/64 leaves floor remainders; totals must still match.
	profit := domain.Paise(10001)
	split := map[string]int64{"a": 3, "b": 33, "c": 64}
	shares := SplitShares(profit, split)

	var sum domain.Paise
	for _, v := range shares {
		sum += v
	}
	if sum != profit {
		t.Fatalf("shares sum to %d, want %d (shares=%v)", sum, profit, shares)
	}
}

func TestSplitSharesDeterministic(t *testing.T) {
	profit := domain.Paise(99999)
	split := map[string]int64{"a": 33, "b": 33, "c": 34}
	first := SplitShares(profit, split)
	for i := 0; i < 10; i++ {
		again := SplitShares(profit, split)
		for k, v := range first {
			if again[k] != v {
				t.Fatalf("run %d differs for %s: %d vs %d", i, k, again[k], v)
			}
		}
	}
}

func TestSplitTotal(t *testing.T) {
	if got := SplitTotal(map[string]int64{"a": 50, "b": 25, "c": 20}); got != 95 {
		t.Fatalf("SplitTotal = %d, want 95", got)
	}
}
