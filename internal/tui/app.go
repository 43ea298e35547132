// Package tui renders the terminal screens. The root App model is the
// session gate: it blocks on the session restore, then mounts exactly one
// of the two navigation trees, the login screen or the signed-in screens.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/engajamento/engaja/internal/client/session"
)

type gateState int

const (
	// gateLoading: restore has not signaled yet; nothing else is mounted.
	gateLoading gateState = iota
	gateSignedOut
	gateSignedIn
)

// restoreDoneMsg signals that the session restore finished, successfully or
// not. Sent exactly once per process.
type restoreDoneMsg struct {
	authenticated bool
}

// loggedOutMsg signals an explicit logout completed.
type loggedOutMsg struct{}

// App is the root model.
type App struct {
	store *session.Store
	svcs  Services

	state gateState
	spin  spinner.Model
	login loginModel
	main  mainModel

	width  int
	height int
}

// NewApp builds the gate in its Loading state.
func NewApp(store *session.Store, svcs Services) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorBlue)

	return App{
		store: store,
		svcs:  svcs,
		state: gateLoading,
		spin:  sp,
		login: newLoginModel(store),
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.spin.Tick, restoreCmd(a.store))
}

func restoreCmd(store *session.Store) tea.Cmd {
	return func() tea.Msg {
		store.Restore(context.Background())
		return restoreDoneMsg{authenticated: store.Authenticated()}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.login.width, a.login.height = msg.Width, msg.Height
		a.main, _ = a.main.Update(msg)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case spinner.TickMsg:
		if a.state == gateLoading {
			var cmd tea.Cmd
			a.spin, cmd = a.spin.Update(msg)
			return a, cmd
		}
		return a, nil

	case restoreDoneMsg:
		// Loading -> {SignedOut, SignedIn}, exactly once.
		if msg.authenticated {
			return a.mountMain()
		}
		a.state = gateSignedOut
		return a, a.login.Focus()

	case loginResultMsg:
		if msg.err == nil {
			return a.mountMain()
		}
		var cmd tea.Cmd
		a.login, cmd = a.login.Update(msg)
		return a, cmd

	case loggedOutMsg:
		return a.mountLogin()
	}

	switch a.state {
	case gateSignedOut:
		var cmd tea.Cmd
		a.login, cmd = a.login.Update(msg)
		return a, cmd

	case gateSignedIn:
		var cmd tea.Cmd
		a.main, cmd = a.main.Update(msg)
		// A forced logout may have fired underneath a failed request. The
		// user lands back on the login screen without further ceremony.
		if !a.store.Authenticated() {
			return a.mountLogin()
		}
		return a, cmd
	}

	return a, nil
}

// mountMain swaps in the signed-in navigation tree.
func (a App) mountMain() (tea.Model, tea.Cmd) {
	a.state = gateSignedIn
	a.main = newMainModel(a.store, a.svcs)
	a.main, _ = a.main.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
	return a, a.main.Init()
}

// mountLogin swaps in a fresh login screen.
func (a App) mountLogin() (tea.Model, tea.Cmd) {
	a.state = gateSignedOut
	a.login = newLoginModel(a.store)
	a.login.width, a.login.height = a.width, a.height
	return a, a.login.Focus()
}

func (a App) View() string {
	switch a.state {
	case gateLoading:
		return "\n  " + a.spin.View() + " Carregando sessão..."
	case gateSignedOut:
		return a.login.View()
	default:
		return a.main.View()
	}
}
