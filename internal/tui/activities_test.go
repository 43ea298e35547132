package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/engajamento/engaja/internal/client/models"
)

func errInvalidDay() error {
	return errors.New("invalid date: expected dd/mm/yyyy")
}

func TestActivitiesListRendersDates(t *testing.T) {
	m := newActivitiesModel(nil)
	m, _ = m.Update(activitiesLoadedMsg{items: []models.Activity{
		{ID: 1, Name: "Culto jovem", Day: "2026-08-28"},
	}})

	view := m.View()
	if !strings.Contains(view, "Culto jovem") {
		t.Errorf("expected activity name, got:\n%s", view)
	}
	if !strings.Contains(view, "28/08/2026") {
		t.Errorf("expected display-format date, got:\n%s", view)
	}
}

func TestActivitiesFormOpenAndCancel(t *testing.T) {
	m := newActivitiesModel(nil)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	if !m.editing() {
		t.Fatal("expected form open after 'n'")
	}
	if !strings.Contains(m.View(), "Nome") {
		t.Errorf("expected form fields, got:\n%s", m.View())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.editing() {
		t.Fatal("expected form closed after esc")
	}
}

func TestActivitiesFormSwallowsListKeys(t *testing.T) {
	m := newActivitiesModel(nil)
	m, _ = m.Update(activitiesLoadedMsg{items: []models.Activity{
		{ID: 1, Name: "Culto jovem", Day: "2026-08-28"},
		{ID: 2, Name: "Visita", Day: "2026-08-29"},
	}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})

	// "d" is text now, not delete.
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	if cmd != nil {
		t.Fatal("expected no delete command while the form is open")
	}
	if got := m.form.Values()[0]; got != "d" {
		t.Errorf("expected the key to land in the field, got %q", got)
	}
}

func TestActivitiesSaveErrorStaysInForm(t *testing.T) {
	m := newActivitiesModel(nil)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})

	m, _ = m.Update(activitySavedMsg{err: errInvalidDay()})
	if !m.editing() {
		t.Fatal("expected form to stay open after a save error")
	}
	if !strings.Contains(m.View(), "invalid date") {
		t.Errorf("expected inline form error, got:\n%s", m.View())
	}
}

func TestActivitiesSaveSuccessClosesFormAndReloads(t *testing.T) {
	m := newActivitiesModel(nil)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	m.form.inputs[0].SetValue("Culto jovem")

	m, cmd := m.Update(activitySavedMsg{})
	if m.editing() {
		t.Fatal("expected form closed after save")
	}
	if cmd == nil {
		t.Fatal("expected reload command after save")
	}
	if got := m.form.Values()[0]; got != "" {
		t.Errorf("expected form reset, field still holds %q", got)
	}
}
