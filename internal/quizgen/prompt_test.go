package quizgen

import (
	"strings"
	"testing"
)

func TestBuildSystemPrompt_Contents(t *testing.T) {
	prompt := buildSystemPrompt("the French Revolution", TierHard, 7)

	for _, want := range []string{
		"The context is: the French Revolution",
		"Generate 7 questions",
		"Difficulty (Hard)",
		QuizTool.Name,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildSystemPrompt_AllTiers(t *testing.T) {
	tiers := map[Tier]string{
		TierVeryEasy:  "Difficulty (Very-Easy)",
		TierEasy:      "Difficulty (Easy)",
		TierMedium:    "Difficulty (Medium)",
		TierHard:      "Difficulty (Hard)",
		TierLegendary: "Difficulty (Legendary)",
	}

	for tier, marker := range tiers {
		prompt := buildSystemPrompt("geometry", tier, 3)
		if !strings.Contains(prompt, marker) {
			t.Errorf("tier %d: prompt missing %q", tier, marker)
		}
		// Exactly one rubric should be present.
		for other, otherMarker := range tiers {
			if other != tier && strings.Contains(prompt, otherMarker) {
				t.Errorf("tier %d: prompt also contains %q", tier, otherMarker)
			}
		}
	}
}

func TestBuildSystemPrompt_UnknownTierFallsBack(t *testing.T) {
	prompt := buildSystemPrompt("geometry", Tier(99), 3)
	if !strings.Contains(prompt, "Difficulty (Medium)") {
		t.Error("unknown tier did not fall back to the medium rubric")
	}
}

func TestBuildUserMessage(t *testing.T) {
	got := buildUserMessage(5)
	want := "Generate 5 quiz questions based on the provided context."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
