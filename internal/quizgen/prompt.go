package quizgen

import (
	"fmt"

	"github.com/gmatize/gmatize/internal/quiz"
)

const systemPrompt = `You are a GMAT tutor writing quantitative practice problems.

Rules:
- Generate a single GMAT-style quantitative problem at the requested difficulty.
- Use plain ASCII text for all math. No LaTeX, no Unicode symbols. Use / for fractions, * for multiplication, and standard operators.
- The problem must be self-contained and solvable without a calculator.
- Provide exactly 5 answer choices where exactly one is correct. Distractors should reflect common mistakes, not random values.

Respond in exactly this format and nothing else:

Question: <the problem text on a single line>
A) <choice>
B) <choice>
C) <choice>
D) <choice>
E) <choice>
Correct Answer: <letter>`

// buildUserMessage constructs the user message for one question request.
func buildUserMessage(difficulty quiz.Difficulty) string {
	return fmt.Sprintf("Generate a GMAT-style quantitative problem with a %s difficulty level. "+
		"Provide 5 answer choices labeled A) through E) and indicate the correct answer using 'Correct Answer: [letter]'.", difficulty)
}
