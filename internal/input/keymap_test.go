package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/bethropolis/daub/internal/core/tools"
	"github.com/bethropolis/daub/internal/types"
)

func key(k tcell.Key, r rune, mod tcell.ModMask) *tcell.EventKey {
	return tcell.NewEventKey(k, r, mod)
}

func TestProcessEvent(t *testing.T) {
	p := NewInputProcessor()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"arrow", key(tcell.KeyLeft, 0, tcell.ModNone), ActionMoveLeft},
		{"space applies", key(tcell.KeyRune, ' ', tcell.ModNone), ActionApply},
		{"enter applies", key(tcell.KeyEnter, 0, tcell.ModNone), ActionApply},
		{"ctrl+z", key(tcell.KeyCtrlZ, 0, tcell.ModCtrl), ActionUndo},
		{"ctrl+y without mod flag", key(tcell.KeyCtrlY, 0, tcell.ModNone), ActionRedo},
		{"u", key(tcell.KeyRune, 'u', tcell.ModNone), ActionUndo},
		{"shift H", key(tcell.KeyRune, 'H', tcell.ModShift), ActionHueUp},
		{"h", key(tcell.KeyRune, 'h', tcell.ModNone), ActionHueDown},
		{"tab", key(tcell.KeyTab, 0, tcell.ModNone), ActionNextLayer},
		{"colon", key(tcell.KeyRune, ':', tcell.ModNone), ActionEnterCommandMode},
		{"escape", key(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{"alt+g unbound", key(tcell.KeyRune, 'g', tcell.ModAlt), ActionUnknown},
		{"unbound rune", key(tcell.KeyRune, 'z', tcell.ModNone), ActionUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ProcessEvent(tt.ev).Action)
		})
	}
}

func TestToolKeys(t *testing.T) {
	p := NewInputProcessor()
	ev := p.ProcessEvent(key(tcell.KeyRune, 'f', tcell.ModNone))
	assert.Equal(t, ActionSelectTool, ev.Action)
	assert.Equal(t, tools.KindFill, ev.Tool)
}

func TestProcessCommandEvent(t *testing.T) {
	p := NewInputProcessor()
	ev := p.ProcessCommandEvent(key(tcell.KeyRune, 'q', tcell.ModNone))
	assert.Equal(t, ActionAppendCommand, ev.Action)
	assert.Equal(t, 'q', ev.Rune)

	assert.Equal(t, ActionExecuteCommand, p.ProcessCommandEvent(key(tcell.KeyEnter, 0, tcell.ModNone)).Action)
	assert.Equal(t, ActionCancelCommand, p.ProcessCommandEvent(key(tcell.KeyEscape, 0, tcell.ModNone)).Action)
	assert.Equal(t, ActionDeleteCommandChar, p.ProcessCommandEvent(key(tcell.KeyBackspace2, 0, tcell.ModNone)).Action)
}

func TestMouseGesture(t *testing.T) {
	p := NewInputProcessor()
	mouse := func(x, y int, b tcell.ButtonMask) ActionEvent {
		return p.ProcessMouse(tcell.NewEventMouse(x, y, b, tcell.ModNone))
	}

	assert.Equal(t, ActionUnknown, mouse(1, 1, tcell.ButtonNone).Action, "hover")

	down := mouse(2, 3, tcell.Button1)
	assert.Equal(t, ActionMouseDown, down.Action)
	assert.Equal(t, types.Pos(2, 3), down.Pos)
	assert.False(t, down.Alternative)

	assert.Equal(t, ActionMouseDrag, mouse(3, 3, tcell.Button1).Action)
	assert.Equal(t, ActionMouseUp, mouse(3, 3, tcell.ButtonNone).Action)

	alt := mouse(0, 0, tcell.Button2)
	assert.Equal(t, ActionMouseDown, alt.Action)
	assert.True(t, alt.Alternative)
	up := mouse(0, 0, tcell.ButtonNone)
	assert.True(t, up.Alternative)

	assert.Equal(t, ActionUnknown, mouse(0, 0, tcell.WheelUp).Action, "wheel ignored")
}
