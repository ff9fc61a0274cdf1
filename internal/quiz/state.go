package quiz

// Test-wide constants. Score bounds are fixed reference points for the
// summary chart: ten all-easy correct answers vs ten all-hard.
const (
	TotalQuestions = 10
	MinScore       = 10
	MaxScore       = 30

	// StartDifficulty is where every test begins.
	StartDifficulty = Medium
)

// AnswerRecord captures one answered question. Records are immutable
// once created and keyed by question number (1..TotalQuestions).
type AnswerRecord struct {
	Question   string
	Chosen     string
	Correct    string
	Difficulty Difficulty
	Points     int
	IsCorrect  bool
}

// State is the transient state of one test attempt. It has exactly one
// writer (the interaction loop) and is discarded entirely on restart.
type State struct {
	// Started flips when the test taker leaves the welcome screen.
	Started bool

	// Index is the number of questions answered so far (0..TotalQuestions).
	Index int

	// Score is the cumulative difficulty-weighted score.
	Score int

	// Difficulty applies to the next generated question.
	Difficulty Difficulty

	// Records holds one AnswerRecord per answered question, keyed 1..N.
	Records map[int]AnswerRecord

	// Current is the in-flight question awaiting an answer, nil while
	// a new one is being generated.
	Current *Question
}

// NewState returns the canonical initial state: index 0, score 0,
// medium difficulty, no records. Restarting a test is a fresh NewState;
// the two are indistinguishable.
func NewState() *State {
	return &State{
		Difficulty: StartDifficulty,
		Records:    make(map[int]AnswerRecord),
	}
}

// Done reports whether the test has served its full question count.
func (s *State) Done() bool {
	return s.Index >= TotalQuestions
}

// Apply is the transition function (state, chosen letter) -> state'.
// It scores the in-flight question at the difficulty it was asked at,
// records the answer, adjusts difficulty, and advances the index. The
// in-flight question is cleared so the loop generates a fresh one.
// Apply is a no-op when there is no in-flight question or the test is
// already done.
func (s *State) Apply(chosen string) *AnswerRecord {
	if s.Current == nil || s.Done() {
		return nil
	}

	q := *s.Current
	correct := chosen == q.Correct

	pts := 0
	if correct {
		pts = s.Difficulty.Points()
	}
	s.Score += pts

	rec := AnswerRecord{
		Question:   q.Prompt,
		Chosen:     chosen,
		Correct:    q.Correct,
		Difficulty: s.Difficulty,
		Points:     pts,
		IsCorrect:  correct,
	}
	s.Records[s.Index+1] = rec

	s.Difficulty = Adjust(s.Difficulty, correct)
	s.Index++
	s.Current = nil

	return &rec
}
