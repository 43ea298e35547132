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

type leadersLoadedMsg struct {
	items []models.Leader
	err   error
}

type leaderSavedMsg struct {
	err error
}

type leaderDeletedMsg struct {
	err error
}

// leadersModel lists leaders and hosts the create form. The tab itself is
// only mounted for administrators.
type leadersModel struct {
	svc *services.Leaders

	items   []models.Leader
	cursor  int
	loading bool
	err     error
	status  string

	formOpen bool
	form     form
	formErr  string
}

func newLeadersModel(svc *services.Leaders) leadersModel {
	return leadersModel{
		svc: svc,
		form: newForm(
			formField{label: "Nome", placeholder: "Nome completo"},
			formField{label: "E-mail", placeholder: "lider@exemplo.org"},
			formField{label: "Telefone", placeholder: "(11) 98888-7777"},
			formField{label: "Nascimento", placeholder: "dd/mm/aaaa"},
		),
	}
}

func (m leadersModel) editing() bool { return m.formOpen }

func (m leadersModel) Init() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		items, err := svc.List(context.Background())
		return leadersLoadedMsg{items: items, err: err}
	}
}

func (m leadersModel) Update(msg tea.Msg) (leadersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case leadersLoadedMsg:
		m.loading = false
		m.items = msg.items
		m.err = msg.err
		if m.cursor >= len(m.items) {
			m.cursor = 0
		}
		return m, nil

	case leaderSavedMsg:
		if msg.err != nil {
			m.formErr = msg.err.Error()
			return m, nil
		}
		m.formOpen = false
		m.form = m.form.Reset()
		m.status = "Líder cadastrado."
		return m, m.Init()

	case leaderDeletedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = "Líder removido."
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

func (m leadersModel) updateForm(msg tea.KeyMsg) (leadersModel, tea.Cmd) {
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

func (m leadersModel) submit() (leadersModel, tea.Cmd) {
	values := m.form.Values()
	in := services.LeaderInput{
		Name:  values[0],
		Email: values[1],
		Phone: values[2],
		Birth: values[3],
	}
	svc := m.svc
	return m, func() tea.Msg {
		_, err := svc.Create(context.Background(), in)
		return leaderSavedMsg{err: err}
	}
}

func (m leadersModel) deleteCurrent() (leadersModel, tea.Cmd) {
	if len(m.items) == 0 {
		return m, nil
	}
	id := m.items[m.cursor].ID
	svc := m.svc
	return m, func() tea.Msg {
		return leaderDeletedMsg{err: svc.Delete(context.Background(), id)}
	}
}

func (m leadersModel) View() string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(labelStyle.Render("Líderes"))
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
		b.WriteString(subtitleStyle.Render("  Nenhum líder cadastrado.") + "\n")
	default:
		for i, item := range m.items {
			line := fmt.Sprintf("%s — %s — %s", item.Name, item.Email, format.JoinPhone(item.DDD, item.Phone))
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

	b.WriteString("\n  " + helpStyle.Render("n novo · d remover · j/k navegar · r recarregar") + "\n")
	return b.String()
}
