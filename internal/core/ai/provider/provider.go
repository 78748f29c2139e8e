package provider

import "context"

// Message roles used in chat-completion calls.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry in a chat-completion conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Generator abstracts the remote text-generation call so it can be swapped
// for a stub in tests. One call, one completion, no retries.
type Generator interface {
	Generate(ctx context.Context, messages []Message) (string, error)
}
