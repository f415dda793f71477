package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"badcalc/internal/app"
	"badcalc/internal/artifacts"
	"badcalc/internal/config"
	"badcalc/internal/logger"
	"badcalc/internal/repl"
)

var version = "dev"

// buildDeps is replaced in tests.
var buildDeps = app.Build

func main() {
	root := newRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		slog.Default().Error("badcalc stopped", "err", err)
	}
}

func newRootCommand(in io.Reader, out, logOut io.Writer) *cobra.Command {
	var historyFile string
	root := &cobra.Command{
		Use:           "badcalc",
		Short:         "Interactive calculator",
		Long:          "badcalc is a menu-driven calculator that keeps an append-only history of every operation.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion, _ := cmd.Flags().GetBool("version"); showVersion {
				fmt.Fprintln(cmd.OutOrStdout(), "badcalc "+version)
				return nil
			}
			defer func() {
				if rec := recover(); rec != nil {
					logger.New(logOut, "INFO", "text").Error("general error in main", "panic", rec)
				}
			}()
			deps := buildDeps(logOut, func(cfg *config.Config) {
				if cmd.Flags().Changed("history-file") {
					cfg.HistoryFile = historyFile
				}
			})
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			run(ctx, stop, deps, in, out)
			return nil
		},
	}
	root.SetOut(out)
	root.Flags().BoolP("version", "V", false, "print version")
	root.Flags().StringVar(&historyFile, "history-file", "", "append-only history file (overrides BADCALC_HISTORY_FILE)")
	return root
}

// run executes one calculator session: startup artifact, interaction loop,
// then the exit placeholder. Faults in the loop are logged, never propagated.
// stopSignals, when non-nil, is called once the context is done so a second
// interrupt falls back to the default signal behavior.
func run(ctx context.Context, stopSignals func(), deps app.Deps, in io.Reader, out io.Writer) {
	artifacts.WriteAutoPrompt(deps.Log, deps.Config.AutoPrompt, deps.Config.AutoPromptFile)

	if err := runLoop(ctx, stopSignals, deps, in, out); err != nil {
		deps.Log.Error("general error in main loop", "err", err)
	}

	artifacts.WriteLeftover(deps.Log, deps.Config.LeftoverFile)
}

func runLoop(ctx context.Context, stopSignals func(), deps app.Deps, in io.Reader, out io.Writer) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	loop := repl.New(repl.Deps{
		Log:       deps.Log,
		Session:   deps.Session,
		Evaluator: deps.Evaluator,
		LLM:       deps.LLM,
		Pauser:    deps.Pauser,
	}, in, out)

	g.Go(func() (err error) {
		defer cancel()
		defer func() {
			if rec := recover(); rec != nil {
				err = fmt.Errorf("panic: %v", rec)
			}
		}()
		return loop.Run(ctx)
	})

	g.Go(func() error {
		<-ctx.Done()
		if stopSignals != nil {
			stopSignals()
		}
		return nil
	})

	return g.Wait()
}
