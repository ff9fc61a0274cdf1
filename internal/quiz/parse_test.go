package quiz

import "testing"

const wellFormed = `Question: If x + 3 = 11, what is the value of x?
A) 6
B) 7
C) 8
D) 9
E) 10
Correct Answer: C`

func TestParse_WellFormed(t *testing.T) {
	q := Parse(wellFormed)

	if q.Prompt != "If x + 3 = 11, what is the value of x?" {
		t.Errorf("prompt = %q", q.Prompt)
	}
	if q.Correct != "C" {
		t.Errorf("correct = %q, want C", q.Correct)
	}
	if len(q.Options) != 5 {
		t.Fatalf("options = %d entries, want 5", len(q.Options))
	}
	want := map[string]string{"A": "6", "B": "7", "C": "8", "D": "9", "E": "10"}
	for letter, text := range want {
		if q.Options[letter] != text {
			t.Errorf("option %s = %q, want %q", letter, q.Options[letter], text)
		}
	}
}

func TestParse_IgnoresUnmatchedLines(t *testing.T) {
	raw := "Here is your problem:\n\n" + wellFormed + "\n\nGood luck!"
	q := Parse(raw)
	if q.Correct != "C" {
		t.Errorf("correct = %q, want C", q.Correct)
	}
	if len(q.Options) != 5 {
		t.Errorf("options = %d entries, want 5", len(q.Options))
	}
}

func TestParse_LastOptionWins(t *testing.T) {
	raw := wellFormed + "\nC) 12"
	q := Parse(raw)
	if q.Options["C"] != "12" {
		t.Errorf("option C = %q, want the later capture %q", q.Options["C"], "12")
	}
}

func TestParse_MissingCorrectAnswerFallsBack(t *testing.T) {
	raw := `Question: What is 7 * 8?
A) 54
B) 56
C) 58
D) 60
E) 62`
	assertFallback(t, Parse(raw))
}

func TestParse_TooFewOptionsFallsBack(t *testing.T) {
	raw := `Question: What is 7 * 8?
A) 54
B) 56
Correct Answer: B`
	assertFallback(t, Parse(raw))
}

func TestParse_MissingPromptFallsBack(t *testing.T) {
	raw := `A) 1
B) 2
C) 3
D) 4
E) 5
Correct Answer: A`
	assertFallback(t, Parse(raw))
}

func TestParse_LettersBeyondENotRecognized(t *testing.T) {
	raw := wellFormed + "\nF) 11"
	q := Parse(raw)
	if _, ok := q.Options["F"]; ok {
		t.Error("option F should not be captured")
	}
}

func TestParse_EmptyInputFallsBack(t *testing.T) {
	assertFallback(t, Parse(""))
}

func assertFallback(t *testing.T, q Question) {
	t.Helper()
	fb := Fallback()
	if q.Prompt != fb.Prompt {
		t.Errorf("prompt = %q, want fallback %q", q.Prompt, fb.Prompt)
	}
	if q.Correct != "B" {
		t.Errorf("correct = %q, want fallback B", q.Correct)
	}
	if len(q.Options) != 5 {
		t.Errorf("options = %d entries, want 5", len(q.Options))
	}
}
