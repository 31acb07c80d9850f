package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/chmielowski/baggage/internal/packlist"
	"github.com/chmielowski/baggage/internal/tui/state"
)

// Update handles all messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Input.SetWidth(max(msg.Width-4, 10))
		return m, nil

	case ModelMsg:
		cmd := m.applyModel(msg.Model)
		return m, tea.Batch(cmd, waitForModel(m.Ctx, m.modelCh))

	case LabelMsg:
		m.applyLabel(msg.Label)
		return m, waitForLabel(m.Ctx, m.labelsCh)

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	if m.List.IsInputVisible {
		var cmd tea.Cmd
		m.Input, cmd = m.Input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// applyModel takes a new model from the store and keeps the text field and
// cursor consistent with it.
func (m *Model) applyModel(list packlist.Model) tea.Cmd {
	wasVisible := m.List.IsInputVisible
	m.List = list

	if len(list.Items) == 0 {
		m.Cursor = 0
	} else if m.Cursor >= len(list.Items) {
		m.Cursor = len(list.Items) - 1
	}

	switch {
	case list.IsInputVisible && !wasVisible:
		m.Input.SetValue(list.NewItemName)
		m.Input.CursorEnd()
		return m.Input.Focus()
	case !list.IsInputVisible && wasVisible:
		m.Input.Blur()
		m.Input.SetValue("")
	}
	return nil
}

func (m *Model) applyLabel(label packlist.Label) {
	switch l := label.(type) {
	case packlist.ShowUndoSnackbar:
		m.canUndo = true
		m.Notifications.Add(state.Notification{
			Level:   state.LevelInfo,
			Message: l.String(),
			Action:  m.Keys.Undo.Help().Key + ": undo",
		})
	case packlist.ShowError:
		m.Notifications.Add(state.Notification{
			Level:   state.LevelError,
			Message: l.String(),
		})
	}
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.Keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.ShowHelp {
		if key.Matches(msg, m.Keys.ShowHelp, m.Keys.Cancel, m.Keys.Confirm, m.Keys.Quit) {
			m.ShowHelp = false
		}
		return m, nil
	}

	if m.List.IsInputVisible {
		return m.handleEditKey(msg)
	}
	return m.handleNormalKey(msg)
}

// handleEditKey routes keys while the new item field is open.
func (m Model) handleEditKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Cancel):
		m.store.Submit(packlist.CancelAddingItem{})
		return m, nil
	case key.Matches(msg, m.Keys.Confirm):
		m.store.Submit(packlist.ConfirmAddingItem{})
		return m, nil
	}

	before := m.Input.Value()
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	if after := m.Input.Value(); after != before {
		m.store.Submit(packlist.SetNewItemName{Text: after})
	}
	return m, cmd
}

func (m Model) handleNormalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.ShowHelp):
		m.ShowHelp = true

	case key.Matches(msg, m.Keys.AddItem):
		if m.List.IsAddNewVisible {
			m.store.Submit(packlist.EnterEditMode{})
		}

	case key.Matches(msg, m.Keys.NextItem):
		if m.Cursor < len(m.List.Items)-1 {
			m.Cursor++
		}

	case key.Matches(msg, m.Keys.PrevItem):
		if m.Cursor > 0 {
			m.Cursor--
		}

	case key.Matches(msg, m.Keys.TogglePacked):
		if row, ok := m.SelectedRow(); ok {
			m.store.Submit(packlist.MarkPacked{ID: row.ID, IsPacked: !row.IsChecked})
		}

	case key.Matches(msg, m.Keys.DeleteMode):
		if m.List.IsCancelDeletingVisible {
			m.store.Submit(packlist.ExitDeleteMode{})
		} else {
			m.store.Submit(packlist.EnterDeleteMode{})
		}

	case key.Matches(msg, m.Keys.DeleteItem):
		if row, ok := m.SelectedRow(); ok && row.IsDeleteVisible {
			m.store.Submit(packlist.Delete{ID: row.ID})
		}

	case key.Matches(msg, m.Keys.Undo):
		// Only the most recent delete is undoable, and only once.
		if m.canUndo {
			m.canUndo = false
			m.store.Submit(packlist.UndoDelete{})
			m.Notifications.ClearLevel(state.LevelInfo)
		}

	case key.Matches(msg, m.Keys.Cancel):
		if m.List.IsCancelDeletingVisible {
			m.store.Submit(packlist.ExitDeleteMode{})
		} else {
			m.Notifications.Clear()
		}
	}
	return m, nil
}
