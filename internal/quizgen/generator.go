package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/quizforge/internal/llm"
)

// Generator produces a quiz for a request. The sole implementation talks
// to an LLM; tests substitute a mock provider underneath it.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Quiz, error)
}

// LLMGenerator implements Generator using the LLM provider. It is
// stateless; every call is independent and no retries are performed.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate runs one LLM call: builds the prompt, attaches the quiz tool
// schema, sends the request, extracts the tool invocation payload and
// returns it as a validated Quiz. Any failure aborts the call immediately
// and surfaces to the caller.
func (g *LLMGenerator) Generate(ctx context.Context, req Request) (*Quiz, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	tier := Tier(req.Difficulty)

	llmReq := llm.Request{
		System: buildSystemPrompt(req.Context, tier, req.NumQuestions),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(req.NumQuestions)},
		},
		Tool:        QuizTool,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, llmReq)
	if err != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	var quiz Quiz
	if err := json.Unmarshal(resp.Content, &quiz); err != nil {
		return nil, &MalformedOutputError{
			Reason:  "tool payload is not a quiz object",
			Content: resp.Content,
			Err:     err,
		}
	}

	if err := validateQuiz(&quiz, req.NumQuestions, resp.Content); err != nil {
		return nil, err
	}

	return &quiz, nil
}
