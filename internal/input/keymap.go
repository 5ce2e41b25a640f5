// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/daub/internal/core/tools"
	"github.com/bethropolis/daub/internal/types"
)

// Keymap maps specific key events to actions.
type Keymap map[tcell.Key]Action        // For special keys (Enter, Arrows, etc.)
type RuneKeymap map[rune]Action         // For rune bindings
type ModKeymap map[tcell.ModMask]Keymap // For keys combined with modifiers (Ctrl, Alt, Shift)

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap     Keymap
	runeKeymap RuneKeymap
	modKeymap  ModKeymap
	toolKeys   map[rune]tools.Kind

	// Mouse button state of the previous mouse event.
	buttons tcell.ButtonMask
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:     make(Keymap),
		runeKeymap: make(RuneKeymap),
		modKeymap:  make(ModKeymap),
		toolKeys:   make(map[rune]tools.Kind),
	}
	p.loadDefaultBindings()
	return p
}

// loadDefaultBindings sets up the initial key mappings.
func (p *InputProcessor) loadDefaultBindings() {
	// --- Simple Keys ---
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyEnter] = ActionApply
	p.keymap[tcell.KeyTab] = ActionNextLayer
	p.keymap[tcell.KeyBackspace] = ActionApplyAlternative
	p.keymap[tcell.KeyBackspace2] = ActionApplyAlternative
	p.keymap[tcell.KeyDelete] = ActionApplyAlternative
	p.keymap[tcell.KeyEscape] = ActionQuit
	p.keymap[tcell.KeyCtrlC] = ActionQuit

	// --- Modifier Keys ---
	ctrlMap := make(Keymap)
	ctrlMap[tcell.KeyCtrlZ] = ActionUndo
	ctrlMap[tcell.KeyCtrlY] = ActionRedo
	p.modKeymap[tcell.ModCtrl] = ctrlMap

	// --- Rune Mappings ---
	p.runeKeymap[' '] = ActionApply
	p.runeKeymap['['] = ActionPrevColor
	p.runeKeymap[']'] = ActionNextColor
	p.runeKeymap['g'] = ActionToggleGrid
	p.runeKeymap['h'] = ActionHueDown
	p.runeKeymap['H'] = ActionHueUp
	p.runeKeymap['o'] = ActionCycleBorder
	p.runeKeymap['u'] = ActionUndo
	p.runeKeymap['r'] = ActionRedo
	p.runeKeymap['y'] = ActionYank
	p.runeKeymap['p'] = ActionPaste
	p.runeKeymap[':'] = ActionEnterCommandMode
	p.runeKeymap['q'] = ActionQuit

	p.toolKeys['b'] = tools.KindBrush
	p.toolKeys['e'] = tools.KindEraser
	p.toolKeys['f'] = tools.KindFill
	p.toolKeys['i'] = tools.KindPicker
	p.toolKeys['s'] = tools.KindSelect
}

// ProcessEvent takes a tcell key event in normal mode and returns the
// corresponding ActionEvent.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()
	runeVal := ev.Rune()

	// 1. Check Modifier + Key combinations
	if modKeyMap, modOk := p.modKeymap[mod]; modOk {
		if action, keyOk := modKeyMap[key]; keyOk {
			return ActionEvent{Action: action}
		}
	}
	// Ctrl+letter keys already imply the modifier
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		if action, ok := p.modKeymap[tcell.ModCtrl][key]; ok {
			return ActionEvent{Action: action}
		}
		mod &^= tcell.ModCtrl
	}

	// 2. Check simple Key mappings
	if mod == tcell.ModNone || mod == tcell.ModShift {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	// 3. Check Rune mappings. Shift is part of the rune ('H').
	if key == tcell.KeyRune && (mod == tcell.ModNone || mod == tcell.ModShift) {
		if kind, ok := p.toolKeys[runeVal]; ok {
			return ActionEvent{Action: ActionSelectTool, Tool: kind}
		}
		if action, ok := p.runeKeymap[runeVal]; ok {
			return ActionEvent{Action: action, Rune: runeVal}
		}
	}

	// 4. No mapping found
	return ActionEvent{Action: ActionUnknown}
}

// ProcessCommandEvent takes a tcell key event while the command line is open.
func (p *InputProcessor) ProcessCommandEvent(ev *tcell.EventKey) ActionEvent {
	switch ev.Key() {
	case tcell.KeyEnter:
		return ActionEvent{Action: ActionExecuteCommand}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionEvent{Action: ActionCancelCommand}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return ActionEvent{Action: ActionDeleteCommandChar}
	case tcell.KeyRune:
		return ActionEvent{Action: ActionAppendCommand, Rune: ev.Rune()}
	}
	return ActionEvent{Action: ActionUnknown}
}

// ProcessMouse turns mouse events into a press, drag, release sequence.
// Only the primary and secondary buttons are tracked; motion without a
// held button is ignored.
func (p *InputProcessor) ProcessMouse(ev *tcell.EventMouse) ActionEvent {
	x, y := ev.Position()
	pos := types.Pos(x, y)
	buttons := ev.Buttons() & (tcell.Button1 | tcell.Button2)
	prev := p.buttons
	p.buttons = buttons

	switch {
	case prev == tcell.ButtonNone && buttons != tcell.ButtonNone:
		return ActionEvent{Action: ActionMouseDown, Pos: pos, Alternative: buttons&tcell.Button2 != 0}
	case prev != tcell.ButtonNone && buttons != tcell.ButtonNone:
		return ActionEvent{Action: ActionMouseDrag, Pos: pos, Alternative: buttons&tcell.Button2 != 0}
	case prev != tcell.ButtonNone && buttons == tcell.ButtonNone:
		return ActionEvent{Action: ActionMouseUp, Pos: pos, Alternative: prev&tcell.Button2 != 0}
	}
	return ActionEvent{Action: ActionUnknown}
}
