package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/engajamento/engaja/internal/client/format"
	"github.com/engajamento/engaja/internal/client/models"
	"github.com/engajamento/engaja/internal/client/services"
	"github.com/engajamento/engaja/internal/client/session"
)

type peopleLoadedMsg struct {
	items []models.PersonHelped
	err   error
}

type personSavedMsg struct {
	err error
}

type personDeletedMsg struct {
	err error
}

// peopleModel lists the people assisted by the program and hosts the
// create form. Administrators get an extra field to assign the leader;
// for everyone else the backend infers it from the token.
type peopleModel struct {
	svc   *services.People
	store *session.Store

	items   []models.PersonHelped
	cursor  int
	loading bool
	err     error
	status  string

	formOpen bool
	form     form
	formErr  string
}

func newPeopleModel(svc *services.People, store *session.Store) peopleModel {
	fields := []formField{
		{label: "Nome", placeholder: "Nome completo"},
		{label: "Telefone", placeholder: "(11) 98888-7777"},
		{label: "Nascimento", placeholder: "dd/mm/aaaa"},
	}
	if store.IsAdmin() {
		fields = append(fields, formField{label: "Líder (id)", placeholder: "0"})
	}
	return peopleModel{
		svc:   svc,
		store: store,
		form:  newForm(fields...),
	}
}

func (m peopleModel) editing() bool { return m.formOpen }

func (m peopleModel) Init() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		items, err := svc.List(context.Background())
		return peopleLoadedMsg{items: items, err: err}
	}
}

func (m peopleModel) Update(msg tea.Msg) (peopleModel, tea.Cmd) {
	switch msg := msg.(type) {
	case peopleLoadedMsg:
		m.loading = false
		m.items = msg.items
		m.err = msg.err
		if m.cursor >= len(m.items) {
			m.cursor = 0
		}
		return m, nil

	case personSavedMsg:
		if msg.err != nil {
			m.formErr = msg.err.Error()
			return m, nil
		}
		m.formOpen = false
		m.form = m.form.Reset()
		m.status = "Pessoa cadastrada."
		return m, m.Init()

	case personDeletedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = "Pessoa removida."
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

func (m peopleModel) updateForm(msg tea.KeyMsg) (peopleModel, tea.Cmd) {
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

func (m peopleModel) submit() (peopleModel, tea.Cmd) {
	values := m.form.Values()
	in := services.PersonInput{
		Name:  values[0],
		Phone: values[1],
		Birth: values[2],
	}
	if len(values) > 3 && values[3] != "" {
		id, err := strconv.ParseInt(values[3], 10, 64)
		if err != nil {
			m.formErr = "líder inválido: informe o id numérico"
			return m, nil
		}
		in.LeaderID = id
	}
	svc := m.svc
	return m, func() tea.Msg {
		_, err := svc.Create(context.Background(), in)
		return personSavedMsg{err: err}
	}
}

func (m peopleModel) deleteCurrent() (peopleModel, tea.Cmd) {
	if len(m.items) == 0 {
		return m, nil
	}
	id := m.items[m.cursor].ID
	svc := m.svc
	return m, func() tea.Msg {
		return personDeletedMsg{err: svc.Delete(context.Background(), id)}
	}
}

func (m peopleModel) View() string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(labelStyle.Render("Pessoas ajudadas"))
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
		b.WriteString(subtitleStyle.Render("  Nenhuma pessoa cadastrada.") + "\n")
	default:
		for i, item := range m.items {
			line := fmt.Sprintf("%s — %s", item.Name, format.JoinPhone(item.DDD, item.Phone))
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
