package quizgen

import (
	"encoding/json"
	"fmt"
)

// validateQuiz checks the extracted payload against the quiz's structural
// rules. Schema conformance is advisory to the model, never guaranteed, so
// every rule is re-checked here after extraction.
func validateQuiz(quiz *Quiz, want int, raw json.RawMessage) error {
	if len(quiz.Questions) != want {
		return &MalformedOutputError{
			Reason:  fmt.Sprintf("expected %d questions, got %d", want, len(quiz.Questions)),
			Content: raw,
		}
	}

	for i, q := range quiz.Questions {
		if q.Question == "" {
			return &MalformedOutputError{
				Reason:  fmt.Sprintf("question %d: empty question text", i),
				Content: raw,
			}
		}
		if len(q.Options) != OptionCount {
			return &MalformedOutputError{
				Reason:  fmt.Sprintf("question %d: expected %d options, got %d", i, OptionCount, len(q.Options)),
				Content: raw,
			}
		}
		for j, opt := range q.Options {
			if opt == "" {
				return &MalformedOutputError{
					Reason:  fmt.Sprintf("question %d: option %d is empty", i, j),
					Content: raw,
				}
			}
		}
		if !ValidLetter(q.Answer) {
			return &MalformedOutputError{
				Reason:  fmt.Sprintf("question %d: answer %q is not one of A-D", i, q.Answer),
				Content: raw,
			}
		}
		if q.Explanation == "" {
			return &MalformedOutputError{
				Reason:  fmt.Sprintf("question %d: empty explanation", i),
				Content: raw,
			}
		}
	}

	return nil
}
