package transformer

import (
	"regexp"
	"strconv"
	"strings"
)

// fieldStatus classifies one raw field at the parse boundary so the site's
// sentinel strings never travel past it.
type fieldStatus int

const (
	fieldValid fieldStatus = iota
	fieldMissing
	fieldInvalid
)

const (
	sentinelTitle  = "Unknown Product"
	sentinelPrice  = "Price Unavailable"
	sentinelRating = "Invalid Rating"

	sizePrefix   = "Size: "
	genderPrefix = "Gender: "

	// usdToIDR is the fixed conversion rate applied to parsed USD prices.
	usdToIDR = 16000
)

var (
	decimalRe = regexp.MustCompile(`\d+\.?\d*`)
	integerRe = regexp.MustCompile(`\d+`)
)

// parsePrice reads a "$NN.NN" string into its USD value.
func parsePrice(s string) (float64, fieldStatus) {
	if s == "" || s == sentinelPrice {
		return 0, fieldMissing
	}
	m := decimalRe.FindString(strings.ReplaceAll(s, ",", ""))
	if m == "" {
		return 0, fieldInvalid
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, fieldInvalid
	}
	return v, fieldValid
}

// parseRating extracts the leading numeric value from free-text ratings like
// "⭐ 4.5 / 5". Values outside [0,5] are invalid; 0 and 5 are in range.
func parseRating(s string) (float64, fieldStatus) {
	if s == "" {
		return 0, fieldMissing
	}
	if s == sentinelRating {
		return 0, fieldInvalid
	}
	m := decimalRe.FindString(s)
	if m == "" {
		return 0, fieldInvalid
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || v < 0 || v > 5 {
		return 0, fieldInvalid
	}
	return v, fieldValid
}

// parseColors extracts the leading count from strings like "3 Colors".
func parseColors(s string) (int, fieldStatus) {
	if s == "" {
		return 0, fieldMissing
	}
	m := integerRe.FindString(s)
	if m == "" {
		return 0, fieldInvalid
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, fieldInvalid
	}
	return n, fieldValid
}

// stripPrefix removes a known label prefix; text without the prefix is
// returned unchanged apart from trimming.
func stripPrefix(s, prefix string) string {
	return strings.TrimSpace(strings.TrimPrefix(s, prefix))
}
