package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestCommonKeysBackMatchesEscOnly(t *testing.T) {
	keys := NewCommonKeys()
	esc := tea.KeyMsg{Type: tea.KeyEsc}
	if !key.Matches(esc, keys.Back) {
		t.Fatalf("expected Back to match esc")
	}
	h := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}}
	if key.Matches(h, keys.Back) {
		t.Fatalf("expected Back to not match h")
	}
}

func TestCommonKeysStepNavigation(t *testing.T) {
	keys := NewCommonKeys()
	if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'['}}, keys.Prev) {
		t.Fatalf("expected Prev to match [")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{']'}}, keys.Next) {
		t.Fatalf("expected Next to match ]")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyCtrlS}, keys.Skip) {
		t.Fatalf("expected Skip to match ctrl+s")
	}
}

func TestHandleCommonQuitAndHelp(t *testing.T) {
	keys := NewCommonKeys()

	quitCmd := HandleCommon(tea.KeyMsg{Type: tea.KeyCtrlC}, keys)
	if quitCmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := quitCmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg")
	}

	if cmd := HandleCommon(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, keys); cmd != nil {
		t.Fatalf("expected q to not trigger quit")
	}

	helpCmd := HandleCommon(tea.KeyMsg{Type: tea.KeyF1}, keys)
	if helpCmd == nil {
		t.Fatalf("expected help command")
	}
	if _, ok := helpCmd().(ToggleHelpMsg); !ok {
		t.Fatalf("expected ToggleHelpMsg")
	}
}
