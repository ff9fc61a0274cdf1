package quiz

import "sort"

// OptionLetters is the fixed answer-choice letter set. Generated text
// labelling choices outside A-E is not recognized and falls through to
// the fallback question.
var OptionLetters = []string{"A", "B", "C", "D", "E"}

// Question is a single five-choice problem ready for display.
type Question struct {
	// Prompt is the question text shown to the test taker.
	Prompt string

	// Options maps an option letter ("A".."E") to its choice text.
	Options map[string]string

	// Correct is the letter of the correct option.
	Correct string
}

// Letters returns the question's option letters in alphabetical order,
// the order they are presented in.
func (q Question) Letters() []string {
	letters := make([]string, 0, len(q.Options))
	for l := range q.Options {
		letters = append(letters, l)
	}
	sort.Strings(letters)
	return letters
}

// Fallback returns the hardcoded always-valid question substituted when
// generated text fails structural validation.
func Fallback() Question {
	return Question{
		Prompt: "What is 2 + 2?",
		Options: map[string]string{
			"A": "3",
			"B": "4",
			"C": "5",
			"D": "6",
			"E": "7",
		},
		Correct: "B",
	}
}
