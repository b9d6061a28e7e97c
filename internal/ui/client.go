package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/abhisek/quizforge/internal/quizgen"
)

// APIClient talks to the quiz API process over HTTP.
type APIClient struct {
	baseURL string
	http    *http.Client
}

// NewAPIClient creates a client for the given base URL, e.g.
// "http://localhost:8000". No client-side timeout is set; the server
// bounds generation time and the UI shows a spinner for the duration.
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		http:    &http.Client{},
	}
}

type generatePayload struct {
	Context      string `json:"context"`
	Difficulty   int    `json:"difficulty"`
	NumQuestions int    `json:"num_questions"`
}

type quizPayload struct {
	Questions []quizgen.Question `json:"questions"`
}

type detailPayload struct {
	Detail string `json:"detail"`
}

// GenerateQuiz requests a fresh quiz from the API.
func (c *APIClient) GenerateQuiz(ctx context.Context, req quizgen.Request) ([]quizgen.Question, error) {
	body, err := json.Marshal(generatePayload{
		Context:      req.Context,
		Difficulty:   req.Difficulty,
		NumQuestions: req.NumQuestions,
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate-quiz", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("quiz API unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var detail detailPayload
		if err := json.NewDecoder(resp.Body).Decode(&detail); err == nil && detail.Detail != "" {
			return nil, fmt.Errorf("quiz API error (%d): %s", resp.StatusCode, detail.Detail)
		}
		return nil, fmt.Errorf("quiz API error: status %d", resp.StatusCode)
	}

	var quiz quizPayload
	if err := json.NewDecoder(resp.Body).Decode(&quiz); err != nil {
		return nil, fmt.Errorf("decode quiz: %w", err)
	}
	return quiz.Questions, nil
}

// Health checks the API health endpoint.
func (c *APIClient) Health(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("quiz API unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("quiz API unhealthy: status %d", resp.StatusCode)
	}
	return nil
}
