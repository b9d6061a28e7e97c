package quizgen

import "testing"

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{"valid", Request{Context: "c", Difficulty: 3, NumQuestions: 3}, false},
		{"boundary low", Request{Context: "c", Difficulty: 1, NumQuestions: 1}, false},
		{"boundary high", Request{Context: "c", Difficulty: 5, NumQuestions: 20}, false},
		{"difficulty 0", Request{Context: "c", Difficulty: 0, NumQuestions: 3}, true},
		{"difficulty 6", Request{Context: "c", Difficulty: 6, NumQuestions: 3}, true},
		{"0 questions", Request{Context: "c", Difficulty: 3, NumQuestions: 0}, true},
		{"21 questions", Request{Context: "c", Difficulty: 3, NumQuestions: 21}, true},
		{"negative difficulty", Request{Context: "c", Difficulty: -1, NumQuestions: 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTierString(t *testing.T) {
	tests := []struct {
		tier Tier
		want string
	}{
		{TierVeryEasy, "Very-Easy"},
		{TierEasy, "Easy"},
		{TierMedium, "Medium"},
		{TierHard, "Hard"},
		{TierLegendary, "Legendary"},
		{Tier(0), "Medium"},
		{Tier(42), "Medium"},
	}

	for _, tt := range tests {
		if got := tt.tier.String(); got != tt.want {
			t.Errorf("Tier(%d).String() = %q, want %q", tt.tier, got, tt.want)
		}
	}
}

func TestOptionLetterRoundTrip(t *testing.T) {
	letters := []string{"A", "B", "C", "D"}
	for i, letter := range letters {
		if got := OptionLetter(i); got != letter {
			t.Errorf("OptionLetter(%d) = %q, want %q", i, got, letter)
		}
		if got := LetterIndex(letter); got != i {
			t.Errorf("LetterIndex(%q) = %d, want %d", letter, got, i)
		}
	}

	if OptionLetter(-1) != "" || OptionLetter(4) != "" {
		t.Error("out-of-range index should map to empty letter")
	}
	if LetterIndex("E") != -1 || LetterIndex("a") != -1 || LetterIndex("") != -1 {
		t.Error("unknown letters should map to -1")
	}
}

func TestValidLetter(t *testing.T) {
	for _, letter := range []string{"A", "B", "C", "D"} {
		if !ValidLetter(letter) {
			t.Errorf("ValidLetter(%q) = false", letter)
		}
	}
	for _, letter := range []string{"E", "a", "", "AB"} {
		if ValidLetter(letter) {
			t.Errorf("ValidLetter(%q) = true", letter)
		}
	}
}

func TestAnswerIndex(t *testing.T) {
	q := Question{Answer: "C"}
	if got := q.AnswerIndex(); got != 2 {
		t.Errorf("AnswerIndex() = %d, want 2", got)
	}
	q.Answer = "X"
	if got := q.AnswerIndex(); got != -1 {
		t.Errorf("AnswerIndex() = %d, want -1", got)
	}
}
