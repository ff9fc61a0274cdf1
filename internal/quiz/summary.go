package quiz

// Summary holds the data displayed when a test completes.
type Summary struct {
	Score    int
	Answered int
	Correct  int
	MinScore int
	MaxScore int

	// Records is ordered by question number (1..N).
	Records []AnswerRecord

	// Missed is the subset of Records answered incorrectly, in order.
	Missed []AnswerRecord
}

// BuildSummary assembles a Summary from a finished (or abandoned) state.
func BuildSummary(s *State) *Summary {
	sum := &Summary{
		Score:    s.Score,
		Answered: s.Index,
		MinScore: MinScore,
		MaxScore: MaxScore,
	}

	for n := 1; n <= s.Index; n++ {
		rec, ok := s.Records[n]
		if !ok {
			continue
		}
		sum.Records = append(sum.Records, rec)
		if rec.IsCorrect {
			sum.Correct++
		} else {
			sum.Missed = append(sum.Missed, rec)
		}
	}

	return sum
}
