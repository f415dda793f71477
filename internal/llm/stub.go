package llm

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// SimulatedResponse is the canned answer returned by StubClient.
const SimulatedResponse = "SIMULATED_LLM_RESPONSE"

// StubClient stands in for a real provider. It never leaves the process and
// always answers with SimulatedResponse.
type StubClient struct {
	log      *slog.Logger
	apiKey   string
	logBody  bool
	response string
}

// StubOption configures a StubClient.
type StubOption func(*StubClient)

// WithAPIKey stores an inert API key. It is only reported as present or absent.
func WithAPIKey(key string) StubOption {
	return func(c *StubClient) { c.apiKey = key }
}

// WithPromptBody makes the client log whole prompts instead of their length and hash.
func WithPromptBody(enabled bool) StubOption {
	return func(c *StubClient) { c.logBody = enabled }
}

// NewStubClient builds a StubClient.
func NewStubClient(log *slog.Logger, opts ...StubOption) *StubClient {
	c := &StubClient{log: log, response: SimulatedResponse}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Complete logs the prompt and returns the canned response.
func (c *StubClient) Complete(_ context.Context, prompt string) (string, error) {
	if c.logBody {
		c.log.Debug("LLM prompt", "prompt", prompt, "api_key_set", c.apiKey != "")
	} else {
		c.log.Debug("LLM prompt", "hash", PromptHash(prompt), "length", len(prompt), "api_key_set", c.apiKey != "")
	}
	return c.response, nil
}

// PromptHash returns a short hex digest identifying prompt in logs.
func PromptHash(prompt string) string {
	return strconv.FormatUint(xxhash.Sum64String(prompt), 16)
}
