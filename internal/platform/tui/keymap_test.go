package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vdmtrv/brickout/internal/core"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{"a moves left", keyMsg('a'), core.ActionLeft, false},
		{"h moves left", keyMsg('h'), core.ActionLeft, false},
		{"left arrow moves left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d moves right", keyMsg('d'), core.ActionRight, false},
		{"l moves right", keyMsg('l'), core.ActionRight, false},
		{"right arrow moves right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"p pauses", keyMsg('p'), core.ActionPause, false},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r restarts", keyMsg('r'), core.ActionRestart, false},
		{"q quits", keyMsg('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unmapped key is none", keyMsg('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, isQuit := km.MapKey(tt.msg)
			if action != tt.want {
				t.Errorf("action = %s, want %s", action, tt.want)
			}
			if isQuit != tt.wantQuit {
				t.Errorf("isQuit = %v, want %v", isQuit, tt.wantQuit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(keyMsg('a'), &frame); quit {
		t.Error("movement key should not request quit")
	}
	if !frame.Has(core.ActionLeft) {
		t.Error("frame should record the left action")
	}

	// Unmapped keys leave the frame untouched.
	frame.Clear()
	km.MapKeyToFrame(keyMsg('z'), &frame)
	if frame.Has(core.ActionNone) {
		t.Error("ActionNone should never be set on the frame")
	}
}
