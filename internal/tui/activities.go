package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/engajamento/engaja/internal/client/format"
	"github.com/engajamento/engaja/internal/client/models"
	"github.com/engajamento/engaja/internal/client/services"
)

type activitiesLoadedMsg struct {
	items []models.Activity
	err   error
}

type activitySavedMsg struct {
	err error
}

type activityDeletedMsg struct {
	err error
}

// activitiesModel lists activities and hosts the create form.
type activitiesModel struct {
	svc *services.Activities

	items   []models.Activity
	cursor  int
	loading bool
	err     error
	status  string

	formOpen bool
	form     form
	formErr  string
}

func newActivitiesModel(svc *services.Activities) activitiesModel {
	return activitiesModel{
		svc: svc,
		form: newForm(
			formField{label: "Nome", placeholder: "Culto jovem"},
			formField{label: "Dia", placeholder: "dd/mm/aaaa"},
		),
	}
}

func (m activitiesModel) editing() bool { return m.formOpen }

func (m activitiesModel) Init() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		items, err := svc.List(context.Background())
		return activitiesLoadedMsg{items: items, err: err}
	}
}

func (m activitiesModel) Update(msg tea.Msg) (activitiesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case activitiesLoadedMsg:
		m.loading = false
		m.items = msg.items
		m.err = msg.err
		if m.cursor >= len(m.items) {
			m.cursor = 0
		}
		return m, nil

	case activitySavedMsg:
		if msg.err != nil {
			m.formErr = msg.err.Error()
			return m, nil
		}
		m.formOpen = false
		m.form = m.form.Reset()
		m.status = "Atividade cadastrada."
		return m, m.Init()

	case activityDeletedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = "Atividade removida."
		return m, m.Init()

	case tea.KeyMsg:
		m.status = ""
		if m.formOpen {
			return m.updateForm(msg)
		}
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "n":
			m.formOpen = true
			m.formErr = ""
		case "d":
			return m.deleteCurrent()
		case "r":
			m.loading = true
			return m, m.Init()
		}
	}
	return m, nil
}

func (m activitiesModel) updateForm(msg tea.KeyMsg) (activitiesModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.formOpen = false
		m.formErr = ""
		return m, nil
	case "enter":
		if m.form.OnLastField() {
			return m.submit()
		}
	case "ctrl+s":
		return m.submit()
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m activitiesModel) submit() (activitiesModel, tea.Cmd) {
	values := m.form.Values()
	in := services.ActivityInput{Name: values[0], Day: values[1]}
	svc := m.svc
	return m, func() tea.Msg {
		_, err := svc.Create(context.Background(), in)
		return activitySavedMsg{err: err}
	}
}

func (m activitiesModel) deleteCurrent() (activitiesModel, tea.Cmd) {
	if len(m.items) == 0 {
		return m, nil
	}
	id := m.items[m.cursor].ID
	svc := m.svc
	return m, func() tea.Msg {
		return activityDeletedMsg{err: svc.Delete(context.Background(), id)}
	}
}

func (m activitiesModel) View() string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(labelStyle.Render("Atividades"))
	b.WriteString("\n\n")

	if m.formOpen {
		for _, line := range strings.Split(strings.TrimRight(m.form.View(), "\n"), "\n") {
			b.WriteString("  " + line + "\n")
		}
		if m.formErr != "" {
			b.WriteString("\n  " + errorStyle.Render(m.formErr) + "\n")
		}
		b.WriteString("\n  " + helpStyle.Render("enter salvar · esc cancelar") + "\n")
		return b.String()
	}

	switch {
	case m.err != nil:
		b.WriteString("  " + errorStyle.Render("erro: "+m.err.Error()) + "\n")
	case m.loading:
		b.WriteString(subtitleStyle.Render("  carregando...") + "\n")
	case len(m.items) == 0:
		b.WriteString(subtitleStyle.Render("  Nenhuma atividade cadastrada.") + "\n")
	default:
		for i, item := range m.items {
			line := fmt.Sprintf("%s — %s", item.Name, format.DisplayDate(item.Day))
			if i == m.cursor {
				b.WriteString("  " + cursorRowStyle.Render("> "+line))
			} else {
				b.WriteString("    " + line)
			}
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n  " + statusStyle.Render(m.status) + "\n")
	}

	b.WriteString("\n  " + helpStyle.Render("n nova · d remover · j/k navegar · r recarregar") + "\n")
	return b.String()
}
