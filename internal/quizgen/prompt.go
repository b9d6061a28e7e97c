package quizgen

import (
	"fmt"
	"strings"
)

const systemPromptHeader = `You are a quizbot that provides multiple-choice questions, answers, and explanations to users based on the context provided. The goal is to help users understand the concepts by presenting questions at the requested difficulty level.

Rules:
- Generate questions that are relevant to the context and test the user's understanding of the material.
- Provide exactly 4 options for each question, with exactly one correct answer.
- Option texts must not include letter prefixes; the letters A-D are implied by position.
- Explanations must be clear and concise, one or two sentences, helping the user understand the concept.`

const systemPromptFooter = `Output:
You must answer by invoking the "%s" tool. Never respond in prose. The tool input carries the full list of questions, each with its question text, 4 options, the correct option letter ("A", "B", "C" or "D"), and a brief explanation of why that answer is correct.`

// tierRubrics describes the expected question, option, and explanation
// complexity for each difficulty tier.
var tierRubrics = map[Tier]string{
	TierVeryEasy: `Difficulty (Very-Easy): the question should be straightforward and simple, with easy options. The explanation should be very simplified, focusing on the basic concept.`,

	TierEasy: `Difficulty (Easy): the question should be easy but implicit, requiring a bit more thought to answer. The options should also be easy but slightly more nuanced. The explanation should go a bit deeper into the concept.`,

	TierMedium: `Difficulty (Medium): the question should require some understanding of the topic and be more implicit in nature. The options should provide close alternatives. The explanation should involve practical application or deeper insights into the topic.`,

	TierHard: `Difficulty (Hard): the question should be challenging, requiring a strong understanding of the topic. The options should be distinct but tricky. The explanation should go into detail, possibly covering edge cases or advanced concepts.`,

	TierLegendary: `Difficulty (Legendary): the question should be highly complex, possibly involving advanced techniques, theory, or application. The options should be sophisticated and require careful thought. The explanation should dive into advanced concepts, assumptions, and practical considerations.`,
}

// buildSystemPrompt renders the difficulty-parameterized instruction
// template into a system prompt. Pure string formatting, no error cases.
func buildSystemPrompt(context string, tier Tier, numQuestions int) string {
	rubric, ok := tierRubrics[tier]
	if !ok {
		rubric = tierRubrics[TierMedium]
	}

	var b strings.Builder
	b.WriteString(systemPromptHeader)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "The context is: %s\n", context)
	fmt.Fprintf(&b, "Generate %d questions related to it.\n\n", numQuestions)
	b.WriteString(rubric)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, systemPromptFooter, QuizTool.Name)

	return b.String()
}

// buildUserMessage constructs the single user-turn message.
func buildUserMessage(numQuestions int) string {
	return fmt.Sprintf("Generate %d quiz questions based on the provided context.", numQuestions)
}
