// Package repl runs the interactive calculator menu.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"badcalc/internal/calc"
	"badcalc/internal/history"
	"badcalc/internal/llm"
	"badcalc/internal/session"
)

const (
	banner = "BAD CALC"
	menu   = "1:+ 2:- 3:* 4:/ 5:^ 6:% 7:LLM 8:hist 0:exit"
)

// Menu commands that are not arithmetic.
const (
	cmdExit    = "0"
	cmdLLM     = "7"
	cmdHistory = "8"
)

var commandOperators = map[string]calc.Operator{
	"1": calc.OpAdd,
	"2": calc.OpSub,
	"3": calc.OpMul,
	"4": calc.OpDiv,
	"5": calc.OpPow,
	"6": calc.OpMod,
}

// Pauser is the cooperative yield taken after each arithmetic operation.
type Pauser interface {
	Pause(ctx context.Context) error
}

// PauseFunc adapts a function to Pauser.
type PauseFunc func(ctx context.Context) error

func (f PauseFunc) Pause(ctx context.Context) error { return f(ctx) }

// Deps are the collaborators the loop dispatches to.
type Deps struct {
	Log       *slog.Logger
	Session   *session.Session
	Evaluator *calc.Evaluator
	LLM       llm.Client
	Pauser    Pauser
}

// Loop reads menu commands from in and writes prompts and results to out.
type Loop struct {
	deps Deps
	in   *bufio.Scanner
	out  io.Writer
}

// New returns a Loop over in and out.
func New(deps Deps, in io.Reader, out io.Writer) *Loop {
	if deps.Pauser == nil {
		deps.Pauser = PauseFunc(func(context.Context) error { return nil })
	}
	return &Loop{deps: deps, in: bufio.NewScanner(in), out: out}
}

// Run drives the menu until the exit command, end of input, or cancellation.
// Only a failure to read input is returned as an error.
func (l *Loop) Run(ctx context.Context) error {
	log := l.deps.Log.With("session", l.deps.Session.ID)
	for {
		if ctx.Err() != nil {
			log.Info("cancelled; leaving menu")
			return nil
		}

		err := l.step(ctx)
		switch {
		case err == nil:
		case errors.Is(err, errExit):
			log.Debug("exit requested", "operations", l.deps.Session.Counter())
			return nil
		case errors.Is(err, io.EOF):
			log.Info("input closed; leaving menu", "operations", l.deps.Session.Counter())
			return nil
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			log.Info("cancelled; leaving menu", "operations", l.deps.Session.Counter())
			return nil
		default:
			return err
		}
	}
}

var errExit = errors.New("exit")

// step shows the menu once and handles a single command.
func (l *Loop) step(ctx context.Context) error {
	l.println(banner)
	l.println(menu)
	opt, err := l.prompt("opt: ")
	if err != nil {
		return err
	}
	// A read can block across a cancellation; drop the pending command.
	if err := ctx.Err(); err != nil {
		return err
	}

	switch cmd := strings.TrimSpace(opt); cmd {
	case cmdExit:
		return errExit
	case cmdLLM:
		return l.handleLLM(ctx)
	case cmdHistory:
		l.printHistory()
		return nil
	default:
		return l.handleArithmetic(ctx, commandOperators[cmd])
	}
}

func (l *Loop) handleArithmetic(ctx context.Context, op calc.Operator) error {
	a, err := l.prompt("a: ")
	if err != nil {
		return err
	}
	b, err := l.prompt("b: ")
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	res := l.deps.Evaluator.Compute(a, b, op)
	l.deps.Session.Complete(history.Entry{A: a, B: b, Op: op, Result: res.Value})
	l.println("= " + calc.FormatResult(res.Value))

	return l.deps.Pauser.Pause(ctx)
}

func (l *Loop) handleLLM(ctx context.Context) error {
	tpl, err := l.prompt("Enter user template (will be concatenated UNSAFELY):\n")
	if err != nil {
		return err
	}
	input, err := l.prompt("Enter user input:\n")
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	l.deps.Log.Warn("building prompt from unescaped user text")
	prompt := llm.BuildPrompt(llm.DefaultSystemPrompt, tpl, input)
	resp, err := l.deps.LLM.Complete(ctx, prompt)
	if err != nil {
		l.deps.Log.Warn("llm request failed", "err", err)
		return nil
	}
	l.println("LLM RESP: " + resp)
	return nil
}

func (l *Loop) printHistory() {
	for _, e := range l.deps.Session.History() {
		l.println(e.String())
	}
}

// prompt writes label and reads one line, without its line terminator.
func (l *Loop) prompt(label string) (string, error) {
	fmt.Fprint(l.out, label)
	if !l.in.Scan() {
		if err := l.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSuffix(l.in.Text(), "\r"), nil
}

func (l *Loop) println(s string) {
	fmt.Fprintln(l.out, s)
}
