package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/engajamento/engaja/internal/client/models"
	"github.com/engajamento/engaja/internal/client/services"
)

// weekLoadedMsg carries the pending reviews for the current week.
type weekLoadedMsg struct {
	items []models.Review
	err   error
}

// reviewSubmittedMsg carries the outcome of one attendance verdict.
type reviewSubmittedMsg struct {
	personName string
	present    bool
	err        error
}

// reviewModel is the dashboard: the weekly thumbs-up/down attendance
// review.
type reviewModel struct {
	svc *services.Reviews

	items   []models.Review
	cursor  int
	loading bool
	status  string
	err     error
}

func newReviewModel(svc *services.Reviews) reviewModel {
	return reviewModel{svc: svc}
}

func (m reviewModel) Init() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		items, err := svc.Week(context.Background())
		return weekLoadedMsg{items: items, err: err}
	}
}

func (m reviewModel) Update(msg tea.Msg) (reviewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case weekLoadedMsg:
		m.loading = false
		m.items = msg.items
		m.err = msg.err
		if m.cursor >= len(m.items) {
			m.cursor = 0
		}
		return m, nil

	case reviewSubmittedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		verdict := "presente"
		if !msg.present {
			verdict = "ausente"
		}
		m.status = fmt.Sprintf("%s: %s", msg.personName, verdict)
		return m, m.Init()

	case tea.KeyMsg:
		m.status = ""
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "y", "enter":
			return m.submit(true)
		case "n":
			return m.submit(false)
		case "r":
			m.loading = true
			return m, m.Init()
		}
	}
	return m, nil
}

func (m reviewModel) submit(present bool) (reviewModel, tea.Cmd) {
	if len(m.items) == 0 {
		return m, nil
	}
	item := m.items[m.cursor]
	svc := m.svc
	return m, func() tea.Msg {
		_, err := svc.Submit(context.Background(), item.ActivityID, item.PersonID, present)
		return reviewSubmittedMsg{personName: item.PersonName, present: present, err: err}
	}
}

func (m reviewModel) View() string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(labelStyle.Render("Revisão da semana"))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString("  ")
		b.WriteString(errorStyle.Render("erro: " + m.err.Error()))
		b.WriteString("\n")
	case m.loading:
		b.WriteString(subtitleStyle.Render("  carregando..."))
		b.WriteString("\n")
	case len(m.items) == 0:
		b.WriteString(subtitleStyle.Render("  Nenhuma revisão pendente."))
		b.WriteString("\n")
	default:
		for i, item := range m.items {
			line := fmt.Sprintf("%s — %s", item.PersonName, item.ActivityName)
			if i == m.cursor {
				b.WriteString("  " + cursorRowStyle.Render("> "+line))
			} else {
				b.WriteString("    " + line)
			}
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n  ")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(helpStyle.Render(
		thumbUpStyle.Render("y") + " presente · " +
			thumbDownStyle.Render("n") + " ausente · j/k navegar · r recarregar"))
	b.WriteString("\n")
	return b.String()
}
