package debitnote

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeKey canonicalizes a header label for comparison: decompose,
// drop combining marks, lowercase, keep only ASCII letters and digits.
// Total and idempotent; an empty or garbage label yields the empty token.
func NormalizeKey(s string) string {
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFKD, transform.RemoveFunc(func(r rune) bool {
		return unicode.Is(unicode.Mn, r)
	}))
	decomposed, _, err := transform.String(t, s)
	if err != nil {
		decomposed = s
	}

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range strings.ToLower(decomposed) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseNumber recovers a numeric value from a messy currency/locale formatted
// cell. Everything that is not a digit, period or minus sign is stripped
// before parsing; any failure degrades to zero, never to an error.
func ParseNumber(val string) float64 {
	s := strings.TrimSpace(val)
	if s == "" {
		return 0
	}

	// clean numeric text short-circuits the stripping pass
	if n, err := strconv.ParseFloat(s, 64); err == nil && isFinite(n) {
		return n
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	s = b.String()
	if s == "" || s == "." || s == "-." {
		return 0
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil || !isFinite(n) {
		return 0
	}
	return n
}

func isFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// round2 rounds to the cent boundary, half away from zero.
func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
