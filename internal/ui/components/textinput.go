package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sqlcoach/internal/ui/theme"
)

// PromptInput wraps bubbles/textinput with a prompt and a recall history.
type PromptInput struct {
	Model   textinput.Model
	history []string
	// cursor indexes history while recalling; len(history) means "new line".
	cursor int
	draft  string
}

// NewPromptInput creates a focused input with the given prompt.
func NewPromptInput(prompt, placeholder string) PromptInput {
	ti := textinput.New()
	ti.Prompt = theme.Prompt.Render(prompt)
	ti.Placeholder = placeholder
	ti.Focus()

	return PromptInput{Model: ti}
}

// Init returns the initial command.
func (p PromptInput) Init() tea.Cmd {
	return p.Model.Focus()
}

// Update handles messages. Up and Down walk the submitted-line history.
func (p PromptInput) Update(msg tea.Msg) (PromptInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "up":
			p.recall(-1)
			return p, nil
		case "down":
			p.recall(1)
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.Model, cmd = p.Model.Update(msg)
	return p, cmd
}

func (p *PromptInput) recall(delta int) {
	if len(p.history) == 0 {
		return
	}
	if p.cursor == len(p.history) {
		p.draft = p.Model.Value()
	}
	next := min(max(p.cursor+delta, 0), len(p.history))
	if next == p.cursor {
		return
	}
	p.cursor = next
	if p.cursor == len(p.history) {
		p.Model.SetValue(p.draft)
	} else {
		p.Model.SetValue(p.history[p.cursor])
	}
	p.Model.CursorEnd()
}

// Submit returns the current line, clears the input and records the line
// in history when it is not blank or a repeat of the previous entry.
func (p *PromptInput) Submit() string {
	line := p.Model.Value()
	p.Model.Reset()
	if line != "" && (len(p.history) == 0 || p.history[len(p.history)-1] != line) {
		p.history = append(p.history, line)
	}
	p.cursor = len(p.history)
	p.draft = ""
	return line
}

// History returns the submitted lines, oldest first.
func (p PromptInput) History() []string {
	return p.history
}

// View renders the input.
func (p PromptInput) View() string {
	return p.Model.View()
}

// Value returns the current input value.
func (p PromptInput) Value() string {
	return p.Model.Value()
}
