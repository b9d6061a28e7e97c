package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/quizforge/internal/quizgen"
)

// defaultContext is used when the caller supplies an empty context string.
const defaultContext = "General Knowledge"

// generateRequest is the POST /generate-quiz body. Difficulty and
// num_questions default to 3 when omitted.
type generateRequest struct {
	Context      string `json:"context"`
	Difficulty   int    `json:"difficulty"`
	NumQuestions int    `json:"num_questions"`
}

// quizResponse is the success body: the ordered question list.
type quizResponse struct {
	Questions []quizgen.Question `json:"questions"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleGenerateQuiz(w http.ResponseWriter, r *http.Request) {
	req := generateRequest{
		Difficulty:   3,
		NumQuestions: 3,
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Context == "" {
		req.Context = defaultContext
	}

	ctx := r.Context()
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	quiz, err := s.generator.Generate(ctx, quizgen.Request{
		Context:      req.Context,
		Difficulty:   req.Difficulty,
		NumQuestions: req.NumQuestions,
	})
	if err != nil {
		var invalid *quizgen.InvalidRequestError
		if errors.As(err, &invalid) {
			writeDetail(w, http.StatusBadRequest, invalid.Error())
			return
		}

		// Transport and malformed-output failures collapse to the same
		// opaque 500 at this boundary.
		s.log.WithError(err).Error("quiz generation failed")
		writeDetail(w, http.StatusInternalServerError, fmt.Sprintf("Failed to generate quiz: %v", err))
		return
	}

	s.log.WithFields(logrus.Fields{
		"questions":  len(quiz.Questions),
		"difficulty": req.Difficulty,
	}).Info("quiz generated")

	writeJSON(w, http.StatusOK, quizResponse{Questions: quiz.Questions})
}
