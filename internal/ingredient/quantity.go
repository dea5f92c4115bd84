package ingredient

import (
	"strconv"
	"strings"
)

// ParseQuantity parses a numeric token into a quantity. Resolution order,
// first success wins: simple fraction "a/b", mixed fraction "w a/b", plain
// decimal. Returns (0, false) when no form matches; callers treat that as
// "no quantity", never as an error.
func ParseQuantity(token string) (float64, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, false
	}

	if q, ok := parseSimpleFraction(token); ok {
		return q, true
	}
	if q, ok := parseMixedFraction(token); ok {
		return q, true
	}
	if q, err := strconv.ParseFloat(token, 64); err == nil {
		return q, true
	}
	return 0, false
}

// parseSimpleFraction parses "a/b" with integer parts and b != 0.
func parseSimpleFraction(token string) (float64, bool) {
	num, den, ok := strings.Cut(token, "/")
	if !ok {
		return 0, false
	}
	a, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil {
		return 0, false
	}
	b, err := strconv.Atoi(strings.TrimSpace(den))
	if err != nil || b == 0 {
		return 0, false
	}
	return float64(a) / float64(b), true
}

// parseMixedFraction parses "w a/b", e.g. "1 1/2" -> 1.5.
func parseMixedFraction(token string) (float64, bool) {
	whole, frac, ok := strings.Cut(token, " ")
	if !ok {
		return 0, false
	}
	w, err := strconv.Atoi(strings.TrimSpace(whole))
	if err != nil {
		return 0, false
	}
	f, ok := parseSimpleFraction(strings.TrimSpace(frac))
	if !ok {
		return 0, false
	}
	return float64(w) + f, true
}
