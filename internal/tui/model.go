// Package tui is a terminal edit form for one user record. It drives the
// same form.Form state machine as the web pages.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tech0-step3/portal-web/internal/users/domain"
	"github.com/tech0-step3/portal-web/internal/users/form"
)

type saveResultMsg struct {
	err error
}

type Model struct {
	form      *form.Form
	updater   form.Updater
	inputs    []textinput.Model
	focus     int
	width     int
	height    int
	status    string
	statusErr bool
}

func New(u domain.User, updater form.Updater) Model {
	inputs := make([]textinput.Model, len(form.Fields))
	for i, field := range form.Fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 120
		ti.Width = 40
		ti.Placeholder = fieldLabels[field]
		inputs[i] = ti
	}

	return Model{
		form:    form.New(u),
		updater: updater,
		inputs:  inputs,
		status:  "Ready",
	}
}

// State reports the form state.
func (m Model) State() form.State { return m.form.State() }

// Displayed is the last committed record.
func (m Model) Displayed() domain.User { return m.form.Displayed() }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case saveResultMsg:
		return m.finishSave(msg.err)
	case tea.KeyMsg:
		switch m.form.State() {
		case form.Editing:
			return m.handleEditingKeys(msg)
		case form.Saving:
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, nil
		default:
			return m.handleViewingKeys(msg)
		}
	default:
		return m, nil
	}
}

func (m Model) handleViewingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "e":
		if err := m.form.Edit(); err != nil {
			m.setError(err)
			return m, nil
		}
		m.seedInputs()
		m.status = "Editing"
		m.statusErr = false
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) handleEditingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if err := m.form.Cancel(); err != nil {
			m.setError(err)
			return m, nil
		}
		m.blurAll()
		m.status = "Edit cancelled"
		m.statusErr = false
		return m, nil
	case "tab", "down":
		m.moveFocus(1)
		return m, textinput.Blink
	case "shift+tab", "up":
		m.moveFocus(-1)
		return m, textinput.Blink
	case "enter":
		return m.beginSave()
	default:
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		if err := m.form.Set(form.Fields[m.focus], m.inputs[m.focus].Value()); err != nil {
			m.setError(err)
		}
		return m, cmd
	}
}

func (m Model) beginSave() (tea.Model, tea.Cmd) {
	id := m.form.Displayed().ID
	patch := m.form.Changes()
	if _, err := m.form.BeginSave(); err != nil {
		m.setError(err)
		return m, nil
	}
	m.blurAll()

	if patch.Empty() {
		if err := m.form.FinishSave(nil); err != nil {
			m.setError(err)
			return m, nil
		}
		m.status = "変更はありません"
		m.statusErr = false
		return m, nil
	}

	m.status = "保存中..."
	m.statusErr = false
	return m, saveCmd(m.updater, id, patch)
}

func (m Model) finishSave(saveErr error) (tea.Model, tea.Cmd) {
	if err := m.form.FinishSave(saveErr); err != nil {
		m.setError(err)
		return m, nil
	}
	if saveErr != nil {
		m.status = fmt.Sprintf("保存に失敗しました: %v", saveErr)
		m.statusErr = true
		m.inputs[m.focus].Focus()
		return m, textinput.Blink
	}
	m.status = "保存しました"
	m.statusErr = false
	return m, nil
}

func saveCmd(updater form.Updater, id string, patch domain.Patch) tea.Cmd {
	return func() tea.Msg {
		return saveResultMsg{err: updater.UpdateUser(context.Background(), id, patch)}
	}
}

func (m *Model) seedInputs() {
	for i, field := range form.Fields {
		m.inputs[i].SetValue(m.form.Value(field))
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
}

func (m *Model) moveFocus(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *Model) blurAll() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}
