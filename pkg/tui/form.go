package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/quotes/pkg/quote"
)

// addForm field indices
const (
	fieldText = iota
	fieldCategory
	fieldCount
)

type addForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
	err    string
}

func newAddForm(category string) *addForm {
	text := textinput.New()
	text.Placeholder = "Enter a new quote"
	text.CharLimit = 500
	text.Width = 56
	text.Focus()

	cat := textinput.New()
	cat.Placeholder = "Enter quote category"
	cat.CharLimit = 100
	cat.Width = 56
	cat.SetValue(category)

	return &addForm{inputs: [fieldCount]textinput.Model{text, cat}}
}

func (f *addForm) values() (text, category string) {
	return f.inputs[fieldText].Value(), f.inputs[fieldCategory].Value()
}

func (f *addForm) move(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	f.inputs[f.focus].Focus()
	f.inputs[f.focus].CursorEnd()
}

func (m *Model) enterAddForm() tea.Cmd {
	category := m.category
	if quote.IsAll(category) {
		category = ""
	}
	m.form = newAddForm(category)
	m.mode = modeAdd
	return textinput.Blink
}

func (m *Model) updateAddForm(msg tea.KeyMsg) tea.Cmd {
	f := m.form
	switch msg.String() {
	case "esc":
		m.form = nil
		m.mode = modeBrowse
		return nil
	case "tab", "down":
		f.move(1)
		return nil
	case "shift+tab", "up":
		f.move(-1)
		return nil
	case "enter":
		text, category := f.values()
		q, err := m.svc.Add(m.ctx, text, category)
		if err != nil {
			f.err = err.Error()
			return nil
		}
		m.form = nil
		m.mode = modeBrowse
		m.category = q.Category
		m.shown, m.hasShown = q, true
		m.message = "Quote added!"
		m.reload()
		return nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (m *Model) viewAddForm() string {
	f := m.form
	t := m.theme

	var b strings.Builder
	b.WriteString(t.FormActive.Render("Add Quote"))
	b.WriteString("\n\n")
	labels := [fieldCount]string{"Quote", "Category"}
	for i := range f.inputs {
		label := t.FormLabel.Render(labels[i])
		if i == f.focus {
			label = t.FormActive.Render("> " + labels[i])
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n\n")
	}
	if f.err != "" {
		b.WriteString(t.FormError.Render(f.err))
		b.WriteString("\n\n")
	}
	b.WriteString(t.Help.Render("tab: next field • enter: add • esc: cancel"))
	return t.FormFrame.Render(b.String())
}
