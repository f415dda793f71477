package calc

import (
	"fmt"
	"log/slog"
	"math"
)

// Outcome classifies how an evaluation finished.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeDivisionByZero
	OutcomeUnknownOperator
	OutcomeFault
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeDivisionByZero:
		return "division by zero"
	case OutcomeUnknownOperator:
		return "unknown operator"
	case OutcomeFault:
		return "fault"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is the value of an evaluation together with its outcome.
type Result struct {
	Value   float64
	Outcome Outcome
}

// Evaluate applies op to a and b. It never fails: division by zero yields a
// signed infinity and an unknown operator yields zero, each flagged in Outcome.
func Evaluate(a, b float64, op Operator) Result {
	switch op {
	case OpAdd:
		return Result{Value: a + b}
	case OpSub:
		return Result{Value: a - b}
	case OpMul:
		return Result{Value: a * b}
	case OpDiv:
		if b == 0 {
			if a >= 0 {
				return Result{Value: math.Inf(1), Outcome: OutcomeDivisionByZero}
			}
			return Result{Value: math.Inf(-1), Outcome: OutcomeDivisionByZero}
		}
		return Result{Value: a / b}
	case OpPow:
		return Result{Value: math.Pow(a, b)}
	case OpMod:
		return Result{Value: math.Mod(a, b)}
	default:
		return Result{Outcome: OutcomeUnknownOperator}
	}
}

// EvalFunc is the pure evaluation step used by Evaluator.
type EvalFunc func(a, b float64, op Operator) Result

// Evaluator parses operands, evaluates, and logs every non-OK outcome.
type Evaluator struct {
	log  *slog.Logger
	eval EvalFunc
}

// NewEvaluator returns an Evaluator backed by Evaluate.
func NewEvaluator(log *slog.Logger) *Evaluator {
	return &Evaluator{log: log, eval: Evaluate}
}

// Apply evaluates op on already-parsed operands. A panic inside evaluation is
// recovered, logged at error level and reported as OutcomeFault with value 0.
func (e *Evaluator) Apply(a, b float64, op Operator) (res Result) {
	defer func() {
		if rec := recover(); rec != nil {
			e.log.Error("compute: unexpected fault", "panic", rec, "op", op.Symbol())
			res = Result{Outcome: OutcomeFault}
		}
	}()

	res = e.eval(a, b, op)
	switch res.Outcome {
	case OutcomeDivisionByZero:
		e.log.Warn("compute: division by zero", "left", a)
	case OutcomeUnknownOperator:
		e.log.Debug("compute: unknown operator", "op", op.Symbol())
	}
	return res
}

// Compute parses both operand texts and evaluates op on them.
func (e *Evaluator) Compute(a, b string, op Operator) Result {
	return e.Apply(Parse(e.log, a), Parse(e.log, b), op)
}
