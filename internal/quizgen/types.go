package quizgen

// Request holds the caller-supplied parameters for one quiz generation.
type Request struct {
	// Context is the free-text subject matter the questions must be about.
	Context string

	// Difficulty is the tier as an integer, MinDifficulty..MaxDifficulty.
	Difficulty int

	// NumQuestions is how many questions to generate,
	// MinQuestions..MaxQuestions.
	NumQuestions int
}

// Request bounds. Values outside these ranges are rejected before any
// LLM call is made.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
	MinQuestions  = 1
	MaxQuestions  = 20
)

// Validate checks the request bounds.
func (r Request) Validate() error {
	if r.Difficulty < MinDifficulty || r.Difficulty > MaxDifficulty {
		return &InvalidRequestError{
			Field:  "difficulty",
			Reason: "must be between 1 and 5",
		}
	}
	if r.NumQuestions < MinQuestions || r.NumQuestions > MaxQuestions {
		return &InvalidRequestError{
			Field:  "num_questions",
			Reason: "must be between 1 and 20",
		}
	}
	return nil
}

// Tier is one of the five named difficulty levels.
type Tier int

const (
	TierVeryEasy  Tier = 1
	TierEasy      Tier = 2
	TierMedium    Tier = 3
	TierHard      Tier = 4
	TierLegendary Tier = 5
)

var tierNames = map[Tier]string{
	TierVeryEasy:  "Very-Easy",
	TierEasy:      "Easy",
	TierMedium:    "Medium",
	TierHard:      "Hard",
	TierLegendary: "Legendary",
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return "Medium"
}

// Question is a single validated multiple-choice question.
type Question struct {
	// Question is the question text shown to the user.
	Question string `json:"question"`

	// Options holds exactly 4 option texts, without letter prefixes.
	Options []string `json:"options"`

	// Answer is the correct option letter: "A", "B", "C" or "D".
	// It is carried explicitly from the moment the question is built;
	// the answer key is never derived from rendered display text.
	Answer string `json:"answer"`

	// Explanation is a 1-2 sentence explanation of the correct answer.
	Explanation string `json:"explanation"`
}

// AnswerIndex returns the 0-based option index for the answer letter,
// or -1 if the letter is not one of A-D.
func (q Question) AnswerIndex() int {
	return LetterIndex(q.Answer)
}

// OptionCount is the fixed number of options per question.
const OptionCount = 4

// answerLetters is the fixed alphabet for answer symbols, in option order.
var answerLetters = []string{"A", "B", "C", "D"}

// OptionLetter returns the letter for a 0-based option index, or "" when
// the index is out of range.
func OptionLetter(i int) string {
	if i < 0 || i >= len(answerLetters) {
		return ""
	}
	return answerLetters[i]
}

// LetterIndex returns the 0-based option index for a letter, or -1 when
// the letter is not one of A-D.
func LetterIndex(letter string) int {
	for i, l := range answerLetters {
		if l == letter {
			return i
		}
	}
	return -1
}

// ValidLetter reports whether letter is one of A-D.
func ValidLetter(letter string) bool {
	return LetterIndex(letter) >= 0
}

// Quiz is an ordered list of questions produced by one generation call.
type Quiz struct {
	Questions []Question `json:"questions"`
}
