package llm

import "context"

// Client turns a built prompt into a completion. StubClient is the only
// implementation wired in; it answers without leaving the process.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// DefaultSystemPrompt is prepended to every prompt built from the menu.
const DefaultSystemPrompt = "System: You are an assistant."

// BuildPrompt concatenates system, template and input into a single prompt.
// Nothing is escaped: template and input land in the prompt verbatim.
func BuildPrompt(system, template, input string) string {
	return system + "\n\nTEMPLATE_START\n" + template + "\nTEMPLATE_END\nUSER:" + input
}
