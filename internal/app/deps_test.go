package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"badcalc/internal/calc"
	"badcalc/internal/config"
	"badcalc/internal/history"
	"badcalc/internal/llm"
)

func testConfig(t *testing.T) config.Config {
	cfg := config.Defaults()
	cfg.HistoryFile = filepath.Join(t.TempDir(), "history.txt")
	cfg.PauseUnit = 0
	return cfg
}

func TestBuildWithWiresComponents(t *testing.T) {
	cfg := testConfig(t)
	var logs bytes.Buffer

	deps := BuildWith(cfg, &logs, nil, nil)

	assert.Equal(t, cfg, deps.Config)
	resp, err := deps.LLM.Complete(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, llm.SimulatedResponse, resp)

	deps.Session.Complete(history.Entry{A: "4", B: "2", Op: calc.OpAdd, Result: 6})
	data, err := os.ReadFile(cfg.HistoryFile)
	require.NoError(t, err)
	assert.Equal(t, "4|2|+|6.0"+history.LineTerminator, string(data))

	assert.NoError(t, deps.Pauser.Pause(context.Background()))
	assert.NotContains(t, logs.String(), "level=WARNING")
}

func TestBuildWithMissingEnvFile(t *testing.T) {
	var logs bytes.Buffer
	envErr := fmt.Errorf("open .env: %w", os.ErrNotExist)

	deps := BuildWith(testConfig(t), &logs, envErr, nil)

	assert.NotNil(t, deps.Session)
	assert.NotContains(t, logs.String(), "level=WARNING")
}

func TestBuildWithBrokenEnvFileWarns(t *testing.T) {
	var logs bytes.Buffer

	deps := BuildWith(testConfig(t), &logs, errors.New("unterminated quoted value"), nil)

	require.NotNil(t, deps.Session)
	require.NotNil(t, deps.Evaluator)
	assert.Equal(t, 6.0, deps.Evaluator.Compute("4", "2", calc.OpAdd).Value)
	assert.Contains(t, logs.String(), "level=WARNING")
	assert.Contains(t, logs.String(), "failed to load .env")
	assert.Contains(t, logs.String(), "unterminated quoted value")
}

func TestBuildWithConfigProblemsUseConfiguredLogger(t *testing.T) {
	cfg := testConfig(t)
	cfg.LogFormat = "json"
	var logs bytes.Buffer

	BuildWith(cfg, &logs, nil, errors.New("invalid LogFormat \"xml\""))

	assert.Contains(t, logs.String(), `"level":"WARNING"`)
	assert.Contains(t, logs.String(), "invalid configuration")
}

func TestBuildWithConfigProblemsRespectLevel(t *testing.T) {
	cfg := testConfig(t)
	cfg.LogLevel = "SEVERE"
	var logs bytes.Buffer

	BuildWith(cfg, &logs, nil, errors.New("parse env: bad bool"))

	assert.Empty(t, logs.String())
}

func TestBuildWithInvalidLevelWarns(t *testing.T) {
	cfg := testConfig(t)
	cfg.LogLevel = "CHATTY"
	var logs bytes.Buffer

	BuildWith(cfg, &logs, nil, nil)

	assert.Contains(t, logs.String(), "invalid log level")
}

func TestBuildAppliesOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "override.txt")

	deps := Build(&bytes.Buffer{}, func(cfg *config.Config) { cfg.HistoryFile = path })

	assert.Equal(t, path, deps.Config.HistoryFile)
}

func TestBuildSurvivesMalformedEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BADCALC_API_KEY='unterminated\n"), 0644))
	var logs bytes.Buffer

	deps := Build(&logs, nil)

	require.NotNil(t, deps.Session)
	assert.Contains(t, logs.String(), "failed to load .env")
}
