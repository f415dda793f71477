package calc

// Operator is the closed set of binary operators the calculator understands.
type Operator int

const (
	OpUnknown Operator = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow
	OpMod
)

var operatorSymbols = map[Operator]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpPow: "^",
	OpMod: "%",
}

// Symbol returns the operator's textual symbol, or "" for OpUnknown.
func (o Operator) Symbol() string {
	return operatorSymbols[o]
}

func (o Operator) String() string {
	if s := o.Symbol(); s != "" {
		return s
	}
	return "unknown"
}

// ParseOperator maps a symbol back to its Operator. Unrecognized symbols yield OpUnknown.
func ParseOperator(symbol string) Operator {
	for op, s := range operatorSymbols {
		if s == symbol {
			return op
		}
	}
	return OpUnknown
}
