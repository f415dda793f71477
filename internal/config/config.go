package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
)

// Config holds runtime configuration read once at startup.
type Config struct {
	// Logging
	LogLevel  string `env:"BADCALC_LOG_LEVEL" envDefault:"INFO"`
	LogFormat string `env:"BADCALC_LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`

	// Inert; kept for parity with real providers and never sent anywhere.
	APIKey        string `env:"BADCALC_API_KEY" envDefault:"NOT_SECRET_KEY"`
	LogPromptBody bool   `env:"BADCALC_LOG_PROMPT_BODY" envDefault:"false"`

	// Files
	HistoryFile    string `env:"BADCALC_HISTORY_FILE" envDefault:"history.txt" validate:"required"`
	AutoPrompt     bool   `env:"ENABLE_AUTO_PROMPT" envDefault:"false"`
	AutoPromptFile string `env:"BADCALC_AUTO_PROMPT_FILE" envDefault:"AUTO_PROMPT.txt" validate:"required"`
	LeftoverFile   string `env:"BADCALC_LEFTOVER_FILE" envDefault:"leftover.tmp" validate:"required"`

	// Loop
	PauseUnit time.Duration `env:"BADCALC_PAUSE_UNIT" envDefault:"1ms" validate:"gte=0"`
}

// Defaults returns the configuration used when nothing is set in the environment.
func Defaults() Config {
	return Config{
		LogLevel:       "INFO",
		LogFormat:      "text",
		APIKey:         "NOT_SECRET_KEY",
		HistoryFile:    "history.txt",
		AutoPromptFile: "AUTO_PROMPT.txt",
		LeftoverFile:   "leftover.tmp",
		PauseUnit:      time.Millisecond,
	}
}

var validate = validator.New()

// Validate checks field constraints declared in struct tags.
func (c Config) Validate() error {
	return validate.Struct(c)
}

// Load reads configuration from environment variables on top of Defaults.
// Unparsable variables and fields that fail validation fall back to their
// defaults; the returned error lists what was replaced and is never fatal.
// Callers log it once their logger is configured.
func Load() (Config, error) {
	cfg := Defaults()
	var problems []error
	if err := env.Parse(&cfg); err != nil {
		problems = append(problems, fmt.Errorf("parse env: %w", err))
	}
	if err := cfg.Validate(); err != nil {
		var fixed []error
		cfg, fixed = cfg.withDefaultsFor(err)
		problems = append(problems, fixed...)
	}
	return cfg, errors.Join(problems...)
}

// withDefaultsFor replaces every field named in a validation error with its default.
func (c Config) withDefaultsFor(err error) (Config, []error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Defaults(), []error{fmt.Errorf("invalid configuration, using defaults: %w", err)}
	}
	def := Defaults()
	var problems []error
	for _, fe := range verrs {
		problems = append(problems, fmt.Errorf("invalid %s %q (rule %s), using default", fe.Field(), fmt.Sprint(fe.Value()), fe.Tag()))
		switch fe.Field() {
		case "LogFormat":
			c.LogFormat = def.LogFormat
		case "HistoryFile":
			c.HistoryFile = def.HistoryFile
		case "AutoPromptFile":
			c.AutoPromptFile = def.AutoPromptFile
		case "LeftoverFile":
			c.LeftoverFile = def.LeftoverFile
		case "PauseUnit":
			c.PauseUnit = def.PauseUnit
		}
	}
	return c, problems
}
