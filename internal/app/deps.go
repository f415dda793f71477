package app

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"

	"badcalc/internal/calc"
	"badcalc/internal/config"
	"badcalc/internal/history"
	"badcalc/internal/llm"
	"badcalc/internal/logger"
	"badcalc/internal/pause"
	"badcalc/internal/session"
)

// Deps bundles the runtime dependencies of one calculator run.
type Deps struct {
	Config    config.Config
	Log       *slog.Logger
	Session   *session.Session
	Evaluator *calc.Evaluator
	LLM       llm.Client
	Pauser    *pause.Pauser
}

// Build loads an optional .env file, reads config, applies override (if any),
// and wires shared components. Logs go to logOut. Problems with the .env file
// or the environment are logged and never stop the build.
func Build(logOut io.Writer, override func(*config.Config)) Deps {
	envErr := godotenv.Load()
	cfg, cfgErr := config.Load()
	if override != nil {
		override(&cfg)
	}
	return BuildWith(cfg, logOut, envErr, cfgErr)
}

// BuildWith wires components from an already-loaded config. envErr is the
// result of loading the .env file (a missing file is expected) and cfgErr the
// fallbacks reported by config.Load; both are logged through the new logger.
func BuildWith(cfg config.Config, logOut io.Writer, envErr, cfgErr error) Deps {
	log := logger.New(logOut, cfg.LogLevel, cfg.LogFormat)
	switch {
	case envErr == nil:
	case errors.Is(envErr, fs.ErrNotExist):
		log.Debug("no .env file found")
	default:
		log.Warn("failed to load .env; continuing with process environment", "err", envErr)
	}
	if cfgErr != nil {
		log.Warn("invalid configuration; using defaults where needed", "err", cfgErr)
	}

	recorder := history.NewRecorder(log, history.NewFileAppender(cfg.HistoryFile))
	sess := session.New(recorder)
	log.Debug("session started", "session", sess.ID, "history_file", cfg.HistoryFile)

	return Deps{
		Config:    cfg,
		Log:       log,
		Session:   sess,
		Evaluator: calc.NewEvaluator(log),
		LLM:       buildLLM(cfg, log),
		Pauser:    pause.New(cfg.PauseUnit, 1, nil),
	}
}

func buildLLM(cfg config.Config, log *slog.Logger) llm.Client {
	log.Debug("using stub LLM client", "api_key_set", cfg.APIKey != "")
	return llm.NewStubClient(log, llm.WithAPIKey(cfg.APIKey), llm.WithPromptBody(cfg.LogPromptBody))
}
