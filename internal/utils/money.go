package utils

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"vitatkal/internal/domain"
)

// ParseRupees parses a decimal rupee string ("200", "200.5", "0.01") into
// paise. At most two fractional digits are accepted; currency never needs
// more and float parsing would reintroduce the drift fixed-point avoids.
func ParseRupees(s string) (domain.Paise, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "₹")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	whole := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	p := w*100 + f
	if neg {
		p = -p
	}
	return domain.Paise(p), nil
}

// FormatRupees renders paise as a plain decimal string ("200.00", "-0.01").
func FormatRupees(p domain.Paise) string {
	sign := ""
	v := int64(p)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// SplitShares divides profit among agents by whole-percent split. Shares are
// floored, then the remainder paise are handed out largest-remainder first so
// the shares always sum to exactly the profit. Percentages must total 100;
// callers validate that before reaching here.
func SplitShares(profit domain.Paise, split map[string]int64) map[string]domain.Paise {
	type rem struct {
		agent string
		extra int64
	}

	shares := make(map[string]domain.Paise, len(split))
	rems := make([]rem, 0, len(split))
	distributed := int64(0)

	for agent, pct := range split {
		raw := int64(profit) * pct
		share := raw / 100
		shares[agent] = domain.Paise(share)
		distributed += share
		rems = append(rems, rem{agent: agent, extra: raw % 100})
	}

	// Deterministic order: remainder desc, agent id asc as tie-break.
	sort.Slice(rems, func(i, j int) bool {
		if rems[i].extra != rems[j].extra {
			return rems[i].extra > rems[j].extra
		}
		return rems[i].agent < rems[j].agent
	})

	left := int64(profit) - distributed
	for i := 0; left > 0 && i < len(rems); i++ {
		shares[rems[i].agent]++
		left--
	}
	return shares
}

// SplitTotal sums whole-percent split values.
func SplitTotal(split map[string]int64) int64 {
	var total int64
	for _, pct := range split {
		total += pct
	}
	return total
}
