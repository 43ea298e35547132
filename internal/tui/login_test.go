package tui

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/engajamento/engaja/internal/client/api"
	"github.com/engajamento/engaja/internal/client/session"
	"github.com/engajamento/engaja/internal/logging"
)

func unauthorizedErr() error {
	return &api.HTTPError{StatusCode: http.StatusUnauthorized, Message: "Unauthorized"}
}

func newTestLoginModel() loginModel {
	store := session.New(&stubAPI{}, newMemRecords(), logging.Discard())
	return newLoginModel(store)
}

func TestLoginErrorText(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"rejected credentials", unauthorizedErr(), "Login / Senha incorretos. Tente novamente."},
		{"server error", &api.HTTPError{StatusCode: 500}, "Não foi possível entrar. Tente mais tarde."},
		{"network failure", errors.New("dial tcp: connection refused"), "Não foi possível entrar. Tente mais tarde."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := loginErrorText(tc.err); got != tc.want {
				t.Errorf("loginErrorText() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLoginSubmitRequiresBothFields(t *testing.T) {
	m := newTestLoginModel()
	m.form.inputs[0].SetValue("ana@exemplo.org")
	// Password left empty; move focus to it so enter means submit.
	m.form, _ = m.form.Update(tea.KeyMsg{Type: tea.KeyTab})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("expected no command for incomplete form")
	}
	if m.errMsg != "Informe e-mail e senha." {
		t.Errorf("errMsg = %q", m.errMsg)
	}
}

func TestLoginSubmitDispatchesCommand(t *testing.T) {
	m := newTestLoginModel()
	m.form.inputs[0].SetValue("ana@exemplo.org")
	m.form.inputs[1].SetValue("secret")
	m.form, _ = m.form.Update(tea.KeyMsg{Type: tea.KeyTab})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a login command")
	}
	if !m.submitting {
		t.Error("expected submitting=true while the command runs")
	}

	msg := cmd()
	res, ok := msg.(loginResultMsg)
	if !ok {
		t.Fatalf("expected loginResultMsg, got %T", msg)
	}
	if res.err != nil {
		t.Errorf("stub login should succeed, got %v", res.err)
	}
}

func TestLoginIgnoresKeysWhileSubmitting(t *testing.T) {
	m := newTestLoginModel()
	m.submitting = true

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if cmd != nil {
		t.Fatal("expected keys to be swallowed while submitting")
	}
	if got := m.form.Values()[0]; got != "" {
		t.Errorf("field should stay empty, got %q", got)
	}
}

func TestLoginErrorShownInView(t *testing.T) {
	m := newTestLoginModel()
	m.submitting = true
	m, _ = m.Update(loginResultMsg{err: unauthorizedErr()})

	if m.submitting {
		t.Error("expected submitting=false after result")
	}
	if !strings.Contains(m.View(), "Login / Senha incorretos") {
		t.Errorf("expected inline error, got:\n%s", m.View())
	}
}
