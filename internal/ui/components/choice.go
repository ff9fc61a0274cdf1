package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/gmatize/gmatize/internal/ui/theme"
)

// Choice is one lettered answer option.
type Choice struct {
	Letter string
	Text   string
}

// ChoiceList is a lettered answer selector. Navigation wraps neither
// end; pressing an option's letter jumps straight to it.
type ChoiceList struct {
	Prompt   string
	Choices  []Choice
	Selected int
}

// NewChoiceList creates a selector for the given prompt and choices.
func NewChoiceList(prompt string, choices []Choice) ChoiceList {
	return ChoiceList{
		Prompt:  prompt,
		Choices: choices,
	}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Choices)-1 {
			c.Selected++
		}
	default:
		// Jump directly via the option letter.
		for i, ch := range c.Choices {
			if key == strings.ToLower(ch.Letter) {
				c.Selected = i
				break
			}
		}
	}

	return c, nil
}

// Letter returns the letter of the selected choice.
func (c ChoiceList) Letter() string {
	if c.Selected < 0 || c.Selected >= len(c.Choices) {
		return ""
	}
	return c.Choices[c.Selected].Letter
}

// View renders the prompt and the choice list.
func (c ChoiceList) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(c.Prompt) + "\n\n"

	for i, ch := range c.Choices {
		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, ch.Letter, ch.Text)

		if i == c.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
