package progress

import (
	"testing"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
)

func TestSpinnerModel_MessageUpdate(t *testing.T) {
	t.Parallel()

	m := spinnerModel{spinner: spinner.New(), message: "Generating", msgChan: make(chan string)}
	updated, cmd := m.Update(messageUpdate("Generating (2/3)"))
	um := updated.(spinnerModel)

	if um.message != "Generating (2/3)" {
		t.Errorf("message = %q, want %q", um.message, "Generating (2/3)")
	}
	if cmd == nil {
		t.Error("Update(messageUpdate) should keep waiting for messages")
	}
}

func TestSpinnerModel_Keys(t *testing.T) {
	t.Parallel()

	m := spinnerModel{spinner: spinner.New(), message: "Generating"}

	updated, cmd := m.Update(tea.KeyPressMsg{Code: 'x'})
	if updated.(spinnerModel).quit || cmd != nil {
		t.Error("ordinary keys should be ignored")
	}

	updated, cmd = m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if !updated.(spinnerModel).quit || cmd == nil {
		t.Error("ctrl+c should quit the spinner")
	}
}

func TestSpinnerModel_View(t *testing.T) {
	t.Parallel()

	m := spinnerModel{spinner: spinner.New(), message: "Generating"}
	if m.View().Content == "" {
		t.Error("View() should render the message")
	}

	m.quit = true
	if m.View().Content != "" {
		t.Error("View() should be empty after quit")
	}
}

func TestSpinner_UpdateBeforeStart(t *testing.T) {
	t.Parallel()

	s := NewSpinner("first")
	s.UpdateMessage("second")
	if s.lastMsg != "second" {
		t.Errorf("lastMsg = %q, want %q", s.lastMsg, "second")
	}
	// Stop on a spinner that never started is a no-op.
	s.Stop()
}
