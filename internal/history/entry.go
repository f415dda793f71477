package history

import (
	"strings"

	"badcalc/internal/calc"
)

// Entry is one completed arithmetic operation.
type Entry struct {
	A      string
	B      string
	Op     calc.Operator
	Result float64
}

// String renders the entry as a pipe-delimited record: a|b|op|result.
func (e Entry) String() string {
	return strings.Join([]string{e.A, e.B, e.Op.Symbol(), calc.FormatResult(e.Result)}, "|")
}
