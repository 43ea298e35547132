package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/engajamento/engaja/internal/client/services"
	"github.com/engajamento/engaja/internal/client/session"
)

// Services bundles the entity services the signed-in screens consume.
type Services struct {
	Leaders    *services.Leaders
	Activities *services.Activities
	People     *services.People
	Reviews    *services.Reviews
}

type tabID int

const (
	tabDashboard tabID = iota
	tabActivities
	tabPeople
	tabLeaders
)

var tabTitles = map[tabID]string{
	tabDashboard:  "Revisão",
	tabActivities: "Atividades",
	tabPeople:     "Pessoas ajudadas",
	tabLeaders:    "Líderes",
}

// mainModel is the authenticated navigation tree: the drawer of the mobile
// app becomes a tab row. The Leaders tab only exists for administrators.
type mainModel struct {
	store *session.Store

	tabs   []tabID
	active int

	dashboard  reviewModel
	activities activitiesModel
	people     peopleModel
	leaders    leadersModel

	width  int
	height int
}

func newMainModel(store *session.Store, svcs Services) mainModel {
	tabs := []tabID{tabDashboard, tabActivities, tabPeople}
	if store.IsAdmin() {
		tabs = append(tabs, tabLeaders)
	}

	return mainModel{
		store:      store,
		tabs:       tabs,
		dashboard:  newReviewModel(svcs.Reviews),
		activities: newActivitiesModel(svcs.Activities),
		people:     newPeopleModel(svcs.People, store),
		leaders:    newLeadersModel(svcs.Leaders),
	}
}

func (m mainModel) Init() tea.Cmd {
	return m.dashboard.Init()
}

func (m mainModel) Update(msg tea.Msg) (mainModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if !m.editing() {
			switch msg.String() {
			case "1", "2", "3", "4":
				idx := int(msg.String()[0] - '1')
				if idx < len(m.tabs) && idx != m.active {
					m.active = idx
					return m, m.activeInit()
				}
				return m, nil
			case "ctrl+l":
				store := m.store
				return m, func() tea.Msg {
					store.Logout(context.Background())
					return loggedOutMsg{}
				}
			}
		}
	}

	return m.routeToActive(msg)
}

// editing reports whether the active screen holds a focused form, in which
// case digit keys belong to the form, not to tab switching.
func (m mainModel) editing() bool {
	switch m.tabs[m.active] {
	case tabActivities:
		return m.activities.editing()
	case tabPeople:
		return m.people.editing()
	case tabLeaders:
		return m.leaders.editing()
	default:
		return false
	}
}

func (m mainModel) activeInit() tea.Cmd {
	switch m.tabs[m.active] {
	case tabDashboard:
		return m.dashboard.Init()
	case tabActivities:
		return m.activities.Init()
	case tabPeople:
		return m.people.Init()
	case tabLeaders:
		return m.leaders.Init()
	}
	return nil
}

func (m mainModel) routeToActive(msg tea.Msg) (mainModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.tabs[m.active] {
	case tabDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case tabActivities:
		m.activities, cmd = m.activities.Update(msg)
	case tabPeople:
		m.people, cmd = m.people.Update(msg)
	case tabLeaders:
		m.leaders, cmd = m.leaders.Update(msg)
	}
	return m, cmd
}

func (m mainModel) View() string {
	var b strings.Builder

	b.WriteString("  ")
	b.WriteString(titleStyle.Render("ENGAJAMENTO"))
	if u := m.store.User(); u != nil {
		b.WriteString(subtitleStyle.Render("  ·  " + u.Name))
	}
	b.WriteString("\n\n  ")

	for i, t := range m.tabs {
		style := tabStyle
		if i == m.active {
			style = tabActiveStyle
		}
		b.WriteString(style.Render(tabTitles[t]))
	}
	b.WriteString("\n\n")

	switch m.tabs[m.active] {
	case tabDashboard:
		b.WriteString(m.dashboard.View())
	case tabActivities:
		b.WriteString(m.activities.View())
	case tabPeople:
		b.WriteString(m.people.View())
	case tabLeaders:
		b.WriteString(m.leaders.View())
	}

	b.WriteString("\n  ")
	b.WriteString(helpStyle.Render("1-4 telas · ctrl+l sair da sessão · ctrl+c fechar"))
	b.WriteString("\n")
	return b.String()
}
