// Package tuitest provides testing utilities for TUI components.
package tuitest

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape codes and trailing whitespace so rendered
// views can be compared as plain text.
func StripANSI(s string) string {
	s = ansi.Strip(s)
	lines := strings.Split(s, "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		result = append(result, strings.TrimRight(line, " "))
	}
	return strings.TrimRight(strings.Join(result, "\n"), "\n")
}

// KeyPress creates a key press message for a single rune.
func KeyPress(key rune) tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: key, Text: string(key)})
}

// KeyCode creates a key press message for a special key such as
// tea.KeyLeft or tea.KeyEscape.
func KeyCode(code rune) tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: code})
}

// KeyShiftTab creates a shift+tab key press message.
func KeyShiftTab() tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: tea.KeyTab, Mod: tea.ModShift})
}

// KeyCtrlC creates a ctrl+c key press message.
func KeyCtrlC() tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: 'c', Mod: tea.ModCtrl})
}

// KeyEnter creates an enter key press message.
func KeyEnter() tea.Msg {
	return KeyCode(tea.KeyEnter)
}

// WindowSize creates a window size message.
func WindowSize(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}

// MouseMotion creates a mouse motion message at cell x, y.
func MouseMotion(x, y int) tea.Msg {
	return tea.MouseMotionMsg(tea.Mouse{X: x, Y: y})
}

// Send feeds msgs through m in order, discarding commands, and returns the
// final model.
func Send[M tea.Model](m M, msgs ...tea.Msg) M {
	var model tea.Model = m
	for _, msg := range msgs {
		model, _ = model.Update(msg)
	}
	return model.(M)
}

// Type feeds each rune of s to m as a key press.
func Type[M tea.Model](m M, s string) M {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, KeyPress(r))
	}
	return Send(m, msgs...)
}
