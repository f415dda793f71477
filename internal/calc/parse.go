package calc

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidNumber is returned when operand text is not a decimal numeral.
var ErrInvalidNumber = errors.New("invalid number")

var decimalNumeral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseOperand converts free-form decimal text into a float64. Commas are treated
// as decimal points and surrounding whitespace is ignored. Empty text is zero.
func ParseOperand(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	normalized := strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if !decimalNumeral.MatchString(normalized) {
		return 0, fmt.Errorf("parse %q: %w", normalized, ErrInvalidNumber)
	}
	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("parse %q: %w", normalized, ErrInvalidNumber)
	}
	// Out-of-range numerals saturate to ±Inf or zero, which is what we want.
	return v, nil
}

// Parse is the non-failing form of ParseOperand: invalid text is logged at debug
// level and read as zero.
func Parse(log *slog.Logger, s string) float64 {
	v, err := ParseOperand(s)
	if err != nil {
		log.Debug("parse: invalid value, using 0", "value", s, "err", err)
		return 0
	}
	return v
}
