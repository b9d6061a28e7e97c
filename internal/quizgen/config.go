package quizgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0). Quiz content
	// should vary across calls with identical input, so the default is
	// well above zero.
	Temperature float64
}

// DefaultConfig returns a Config with the recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4000,
		Temperature: 0.7,
	}
}
