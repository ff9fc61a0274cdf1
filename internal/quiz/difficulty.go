package quiz

// Difficulty is one rung of the adaptive difficulty ladder.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Ladder is the ordered progression used for adaptation. Adjacent steps
// only; Adjust clamps at both ends.
var Ladder = []Difficulty{Easy, Medium, Hard}

// points awarded for a correct answer at each difficulty.
var points = map[Difficulty]int{
	Easy:   1,
	Medium: 2,
	Hard:   3,
}

// Adjust returns the next difficulty after an answer: one step up on a
// correct answer, one step down on a wrong one, clamped to the ladder.
// An unknown difficulty is treated as Medium.
func Adjust(current Difficulty, correct bool) Difficulty {
	idx := ladderIndex(current)
	if correct {
		if idx < len(Ladder)-1 {
			idx++
		}
	} else {
		if idx > 0 {
			idx--
		}
	}
	return Ladder[idx]
}

// Points returns the score awarded for a correct answer at difficulty d.
// Wrong answers always score zero, regardless of difficulty.
func (d Difficulty) Points() int {
	if p, ok := points[d]; ok {
		return p
	}
	return points[Medium]
}

// Valid reports whether d is a rung of the ladder.
func (d Difficulty) Valid() bool {
	_, ok := points[d]
	return ok
}

func ladderIndex(d Difficulty) int {
	for i, l := range Ladder {
		if l == d {
			return i
		}
	}
	return ladderIndex(Medium)
}
