package ui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abhisek/quizforge/internal/quizgen"
)

func TestGenerateQuiz(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/generate-quiz" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var payload generatePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if payload.Context != "oceans" || payload.Difficulty != 2 || payload.NumQuestions != 4 {
			t.Errorf("unexpected payload: %+v", payload)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(quizPayload{Questions: []quizgen.Question{
			{
				Question:    "Which ocean is the largest?",
				Options:     []string{"Atlantic", "Pacific", "Indian", "Arctic"},
				Answer:      "B",
				Explanation: "The Pacific covers more area than all land combined.",
			},
		}})
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL)
	questions, err := client.GenerateQuiz(context.Background(), quizgen.Request{
		Context:      "oceans",
		Difficulty:   2,
		NumQuestions: 4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 1 || questions[0].Answer != "B" {
		t.Errorf("unexpected questions: %+v", questions)
	}
}

func TestGenerateQuiz_DetailError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(detailPayload{Detail: "Failed to generate quiz: model refused"})
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL)
	_, err := client.GenerateQuiz(context.Background(), quizgen.Request{
		Context: "oceans", Difficulty: 3, NumQuestions: 3,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "model refused") {
		t.Errorf("error %q lacks the server detail", err.Error())
	}
}

func TestGenerateQuiz_Unreachable(t *testing.T) {
	client := NewAPIClient("http://127.0.0.1:1")
	_, err := client.GenerateQuiz(context.Background(), quizgen.Request{
		Context: "oceans", Difficulty: 3, NumQuestions: 3,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "unreachable") {
		t.Errorf("error %q lacks unreachable hint", err.Error())
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL)
	if err := client.Health(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
