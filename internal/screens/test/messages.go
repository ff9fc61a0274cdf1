package test

import (
	"github.com/gmatize/gmatize/internal/quiz"
)

// questionReadyMsg is sent when the next question has been generated.
// Generation never fails outright; a degraded provider yields the
// fallback question instead.
type questionReadyMsg struct {
	Question quiz.Question
}
