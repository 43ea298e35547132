package tui

import (
	"context"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/engajamento/engaja/internal/client/models"
	"github.com/engajamento/engaja/internal/client/session"
	"github.com/engajamento/engaja/internal/logging"
)

// memRecords is an in-memory Records for gate tests.
type memRecords struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemRecords() *memRecords {
	return &memRecords{data: map[string][]byte{}}
}

func (r *memRecords) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data[key], nil
}

func (r *memRecords) SetAll(_ context.Context, kv map[string][]byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, v := range kv {
		r.data[k] = v
	}
	return nil
}

func (r *memRecords) DeleteAll(_ context.Context, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range keys {
		delete(r.data, k)
	}
	return nil
}

// stubAPI satisfies session.API without a network.
type stubAPI struct {
	user *models.User

	token   string
	failure func(token string)
}

func (a *stubAPI) Login(context.Context, string, string) (string, error) {
	return "tok-stub", nil
}

func (a *stubAPI) Me(context.Context) (*models.User, error) {
	return a.user, nil
}

func (a *stubAPI) SetToken(token string)         { a.token = token }
func (a *stubAPI) ClearToken()                   { a.token = "" }
func (a *stubAPI) OnAuthFailure(fn func(string)) { a.failure = fn }

func testUser(profileID int64) *models.User {
	return &models.User{
		ID:      7,
		Name:    "Ana",
		Profile: models.Profile{ID: profileID},
	}
}

// newTestApp returns the app plus the stub so tests can trigger the
// forced-logout observer.
func newTestApp(t *testing.T, user *models.User, signedIn bool) (App, *stubAPI) {
	t.Helper()
	stub := &stubAPI{user: user}
	store := session.New(stub, newMemRecords(), logging.Discard())
	if signedIn {
		if err := store.Login(context.Background(), "ana@exemplo.org", "secret"); err != nil {
			t.Fatalf("login: %v", err)
		}
	}
	a := NewApp(store, Services{})
	a.width = 80
	a.height = 30
	return a, stub
}

func TestGateStartsLoading(t *testing.T) {
	a, _ := newTestApp(t, testUser(2), false)
	if a.state != gateLoading {
		t.Fatalf("expected gateLoading, got %d", a.state)
	}
	if !strings.Contains(a.View(), "Carregando sessão") {
		t.Errorf("loading view missing indicator:\n%s", a.View())
	}
}

func TestGateRestoreWithoutSessionShowsLogin(t *testing.T) {
	a, _ := newTestApp(t, testUser(2), false)
	model, _ := a.Update(restoreDoneMsg{authenticated: false})
	a = model.(App)

	if a.state != gateSignedOut {
		t.Fatalf("expected gateSignedOut, got %d", a.state)
	}
	if !strings.Contains(a.View(), "Inicie uma nova sessão") {
		t.Errorf("expected login screen, got:\n%s", a.View())
	}
}

func TestGateRestoreWithSessionShowsMain(t *testing.T) {
	a, _ := newTestApp(t, testUser(2), true)
	model, _ := a.Update(restoreDoneMsg{authenticated: true})
	a = model.(App)

	if a.state != gateSignedIn {
		t.Fatalf("expected gateSignedIn, got %d", a.state)
	}
	view := a.View()
	if !strings.Contains(view, "Ana") {
		t.Errorf("expected user name in header, got:\n%s", view)
	}
	if !strings.Contains(view, "Revisão da semana") {
		t.Errorf("expected dashboard, got:\n%s", view)
	}
}

func TestLoginSuccessMountsMain(t *testing.T) {
	a, _ := newTestApp(t, testUser(2), false)
	model, _ := a.Update(restoreDoneMsg{authenticated: false})
	a = model.(App)

	// The store is signed in by the time the result message lands.
	if err := a.store.Login(context.Background(), "ana@exemplo.org", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}
	model, _ = a.Update(loginResultMsg{err: nil})
	a = model.(App)

	if a.state != gateSignedIn {
		t.Fatalf("expected gateSignedIn after login, got %d", a.state)
	}
}

func TestLoginFailureStaysOnLogin(t *testing.T) {
	a, _ := newTestApp(t, testUser(2), false)
	model, _ := a.Update(restoreDoneMsg{authenticated: false})
	a = model.(App)

	model, _ = a.Update(loginResultMsg{err: unauthorizedErr()})
	a = model.(App)

	if a.state != gateSignedOut {
		t.Fatalf("expected gateSignedOut after failed login, got %d", a.state)
	}
	if !strings.Contains(a.View(), "Login / Senha incorretos") {
		t.Errorf("expected credential error message, got:\n%s", a.View())
	}
}

func TestExplicitLogoutReturnsToLogin(t *testing.T) {
	a, _ := newTestApp(t, testUser(2), true)
	model, _ := a.Update(restoreDoneMsg{authenticated: true})
	a = model.(App)

	model, _ = a.Update(loggedOutMsg{})
	a = model.(App)

	if a.state != gateSignedOut {
		t.Fatalf("expected gateSignedOut after logout, got %d", a.state)
	}
}

func TestForcedLogoutLandsOnLogin(t *testing.T) {
	a, stub := newTestApp(t, testUser(2), true)
	model, _ := a.Update(restoreDoneMsg{authenticated: true})
	a = model.(App)

	// The backend rejected the current token underneath some request.
	stub.failure(a.store.Token())
	if a.store.Authenticated() {
		t.Fatal("store should be signed out after forced invalidation")
	}

	// The next message routed through the gate lands on the login screen.
	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	a = model.(App)
	if a.state != gateSignedOut {
		t.Fatalf("expected gateSignedOut after forced logout, got %d", a.state)
	}
	if !strings.Contains(a.View(), "Inicie uma nova sessão") {
		t.Errorf("expected login screen, got:\n%s", a.View())
	}
}

func TestMainHidesLeadersTabForNonAdmin(t *testing.T) {
	a, _ := newTestApp(t, testUser(2), true)
	model, _ := a.Update(restoreDoneMsg{authenticated: true})
	a = model.(App)

	if strings.Contains(a.View(), "Líderes") {
		t.Errorf("non-admin view should not offer the leaders tab:\n%s", a.View())
	}
}

func TestMainShowsLeadersTabForAdmin(t *testing.T) {
	a, _ := newTestApp(t, testUser(models.AdminProfileID), true)
	model, _ := a.Update(restoreDoneMsg{authenticated: true})
	a = model.(App)

	if !strings.Contains(a.View(), "Líderes") {
		t.Errorf("admin view should offer the leaders tab:\n%s", a.View())
	}
}

func TestCtrlCQuits(t *testing.T) {
	a, _ := newTestApp(t, testUser(2), false)
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command on ctrl+c, got nil")
	}
}
