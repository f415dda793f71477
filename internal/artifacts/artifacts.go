// Package artifacts writes the auxiliary files produced at startup and exit.
package artifacts

import (
	"fmt"
	"log/slog"
	"os"
)

// AutoPromptPayload is the fixed content of the demonstration prompt file.
const AutoPromptPayload = "=== AUTO PROMPT (TEST) ===\nThis file is for local testing only.\n"

// WriteAutoPrompt writes the demonstration prompt file to path when enabled.
// It reports whether the file was written; failures are logged as warnings.
func WriteAutoPrompt(log *slog.Logger, enabled bool, path string) bool {
	if !enabled {
		return false
	}
	if err := writeFile(path, AutoPromptPayload); err != nil {
		log.Warn("could not create auto prompt file", "path", path, "err", err)
		return false
	}
	log.Debug("auto prompt file written", "path", path)
	return true
}

// WriteLeftover creates (or truncates) the empty placeholder file at path.
func WriteLeftover(log *slog.Logger, path string) bool {
	if err := writeFile(path, ""); err != nil {
		log.Warn("could not create leftover file", "path", path, "err", err)
		return false
	}
	return true
}

func writeFile(path, content string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	_, writeErr := f.WriteString(content)
	closeErr := f.Close()
	if writeErr != nil {
		return fmt.Errorf("write %s: %w", path, writeErr)
	}
	return closeErr
}
