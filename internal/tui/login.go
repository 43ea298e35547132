package tui

import (
	"context"
	"net/http"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/engajamento/engaja/internal/client/api"
	"github.com/engajamento/engaja/internal/client/session"
)

// loginResultMsg carries the outcome of a login attempt.
type loginResultMsg struct {
	err error
}

// loginModel is the unauthenticated navigation tree: a single screen with
// email and password fields and an inline error line.
type loginModel struct {
	store      *session.Store
	form       form
	submitting bool
	errMsg     string

	width  int
	height int
}

func newLoginModel(store *session.Store) loginModel {
	return loginModel{
		store: store,
		form: newForm(
			formField{label: "E-mail", placeholder: "voce@exemplo.org"},
			formField{label: "Senha", password: true},
		),
	}
}

// Focus puts the cursor in the first field.
func (m loginModel) Focus() tea.Cmd {
	return nil
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = loginErrorText(msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		m.errMsg = ""
		if msg.String() == "enter" && m.form.OnLastField() {
			return m.submit()
		}
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m loginModel) submit() (loginModel, tea.Cmd) {
	values := m.form.Values()
	email, password := values[0], values[1]
	if email == "" || password == "" {
		m.errMsg = "Informe e-mail e senha."
		return m, nil
	}

	m.submitting = true
	store := m.store
	return m, func() tea.Msg {
		return loginResultMsg{err: store.Login(context.Background(), email, password)}
	}
}

// loginErrorText maps a login failure to the message shown inline. The
// status code distinguishes rejected credentials from an unreachable
// server.
func loginErrorText(err error) string {
	if api.IsStatus(err, http.StatusUnauthorized) {
		return "Login / Senha incorretos. Tente novamente."
	}
	return "Não foi possível entrar. Tente mais tarde."
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(titleStyle.Render("ENGAJAMENTO"))
	b.WriteString("\n  ")
	b.WriteString(subtitleStyle.Render("Inicie uma nova sessão"))
	b.WriteString("\n\n")

	if m.errMsg != "" {
		b.WriteString("  ")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n\n")
	}

	for _, line := range strings.Split(strings.TrimRight(m.form.View(), "\n"), "\n") {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	if m.submitting {
		b.WriteString(subtitleStyle.Render("Entrando..."))
	} else {
		b.WriteString(helpStyle.Render("enter entrar · tab próximo campo · ctrl+c sair"))
	}
	b.WriteString("\n")
	return b.String()
}
