package quiz

import (
	"bufio"
	"strings"
)

// Markers recognized in generated text. The model is prompted to emit
// exactly this shape; anything else is ignored line by line.
const (
	promptMarker  = "Question:"
	correctMarker = "Correct Answer:"
	optionMarker  = ")"
)

// Parse extracts a Question from raw generated text.
//
// Expected shape:
//
//	Question: <text>
//	A) <option text>
//	...
//	E) <option text>
//	Correct Answer: <letter>
//
// Lines matching no marker are skipped, and a repeated option letter
// overwrites the earlier capture. If the result has an empty prompt,
// fewer than five options, or no correct letter, the fixed fallback
// question is returned instead. Parse never fails.
func Parse(raw string) Question {
	q := Question{Options: make(map[string]string)}

	sc := bufio.NewScanner(strings.NewReader(raw))
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, promptMarker):
			q.Prompt = strings.TrimSpace(strings.TrimPrefix(line, promptMarker))
		case isOptionLine(line):
			q.Options[line[:1]] = strings.TrimSpace(line[2:])
		case strings.HasPrefix(line, correctMarker):
			q.Correct = strings.TrimSpace(strings.TrimPrefix(line, correctMarker))
		}
	}

	if q.Prompt == "" || len(q.Options) < len(OptionLetters) || q.Correct == "" {
		return Fallback()
	}
	return q
}

// isOptionLine reports whether line starts with an A)-E) choice marker.
func isOptionLine(line string) bool {
	if len(line) < 2 || line[1:2] != optionMarker {
		return false
	}
	for _, l := range OptionLetters {
		if line[:1] == l {
			return true
		}
	}
	return false
}
