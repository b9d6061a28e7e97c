package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for LLM interaction.
// Consumers call Generate with a Request and receive the structured
// payload of the tool invocation the model was forced to make.
type Provider interface {
	// Generate sends a prompt to the LLM and returns a structured response.
	// The request's Tool field, when set, is registered with the model as
	// an invocable tool and the model is constrained to answer by invoking
	// it. The response Content is the invocation's input payload, validated
	// against the tool's schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Sets the LLM's role and constraints.
	System string

	// Messages is the conversation history. For single-turn generation
	// (the only case in QuizForge), this contains one user message.
	Messages []Message

	// Tool is the schema the model must invoke to answer. When set, the
	// provider uses its native tool/function-calling mechanism and the
	// response Content carries the invocation's input payload. When nil,
	// the response Content is the raw text reply as json.RawMessage.
	Tool *Tool

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Default: 0.0 (deterministic) when not set.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Tool declares a function-like schema the model is required to invoke.
type Tool struct {
	// Name identifies the tool, e.g. "generate_quiz_questions".
	Name string

	// Description tells the model what the tool does.
	Description string

	// InputSchema is the JSON Schema for the tool's input payload.
	InputSchema map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output. When a Tool was provided in the
	// request, this is the validated input payload of the tool invocation.
	// Otherwise this is the raw text response.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "tool_use", "end", "max_tokens"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
