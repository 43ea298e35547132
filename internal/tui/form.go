package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formField describes one input of a screen form.
type formField struct {
	label       string
	placeholder string
	password    bool
}

// form is the shared multi-field input used by the create/edit screens:
// a stack of text inputs with tab/shift+tab focus cycling.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(fields ...formField) form {
	f := form{
		labels: make([]string, len(fields)),
		inputs: make([]textinput.Model, len(fields)),
	}
	for i, field := range fields {
		ti := textinput.New()
		ti.Placeholder = field.placeholder
		ti.CharLimit = 120
		ti.Width = 40
		if field.password {
			ti.EchoMode = textinput.EchoPassword
		}
		f.labels[i] = field.label
		f.inputs[i] = ti
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

// Update handles focus cycling and routes every other key to the focused
// input.
func (f form) Update(msg tea.Msg) (form, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			return f.moveFocus(1), nil
		case "shift+tab", "up":
			return f.moveFocus(-1), nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f form) moveFocus(delta int) form {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
	return f
}

// OnLastField reports whether focus sits on the final input, where enter
// means submit.
func (f form) OnLastField() bool {
	return f.focus == len(f.inputs)-1
}

// Values returns the trimmed value of every field in declaration order.
func (f form) Values() []string {
	out := make([]string, len(f.inputs))
	for i, in := range f.inputs {
		out[i] = strings.TrimSpace(in.Value())
	}
	return out
}

// Reset clears every field and refocuses the first one.
func (f form) Reset() form {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
	return f
}

// View renders labels and inputs as a vertical stack.
func (f form) View() string {
	var b strings.Builder
	for i := range f.inputs {
		b.WriteString(labelStyle.Render(f.labels[i]))
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n\n")
	}
	return b.String()
}
