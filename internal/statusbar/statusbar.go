// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/daub/internal/types"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style // Default background/foreground
	StyleMessage   tcell.Style // Style for temporary messages
	StyleCommand   tcell.Style // Style for the command line
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		StyleCommand:   tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlue).Bold(true),
		MessageTimeout: 4 * time.Second,
	}
}

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex // Protect access to text fields

	title     string
	tool      string
	color     string
	layer     int
	layers    int
	cursorPos types.Position
	undoCount int
	redoCount int
	command   string
	commandOn bool

	// Temporary message state
	tempMessage     string
	tempMessageTime time.Time
	now             func() time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{config: config, now: time.Now}
}

// SetTitle updates the canvas title.
func (sb *StatusBar) SetTitle(title string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.title = title
}

// SetTool updates the displayed tool name.
func (sb *StatusBar) SetTool(name string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tool = name
}

// SetColor updates the displayed colour name.
func (sb *StatusBar) SetColor(name string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.color = name
}

// SetLayer updates the active layer (0-based) out of count.
func (sb *StatusBar) SetLayer(layer, count int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.layer, sb.layers = layer, count
}

// SetCursorInfo updates the cursor position shown.
func (sb *StatusBar) SetCursorInfo(pos types.Position) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursorPos = pos
}

// SetHistory updates the undo/redo counters.
func (sb *StatusBar) SetHistory(undo, redo int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.undoCount, sb.redoCount = undo, redo
}

// SetCommand shows the command line with the given buffer. active=false hides it.
func (sb *StatusBar) SetCommand(buffer string, active bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.command, sb.commandOn = buffer, active
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// getDefaultDisplayText builds the default status line text. Caller holds the lock.
func (sb *StatusBar) getDefaultDisplayText() string {
	title := sb.title
	if title == "" {
		title = "[Untitled]"
	}
	cursor := sb.cursorPos
	return fmt.Sprintf("%s -- %s -- %s -- Layer %d/%d -- %d,%d -- U:%d R:%d",
		title, sb.tool, sb.color, sb.layer+1, sb.layers, cursor.X, cursor.Y, sb.undoCount, sb.redoCount)
}

// Text returns the line the bar would draw now and its style.
func (sb *StatusBar) Text() (string, tcell.Style) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if sb.commandOn {
		return ":" + sb.command, sb.config.StyleCommand
	}

	isTempMsgActive := !sb.tempMessageTime.IsZero() && sb.now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !isTempMsgActive {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}
	if isTempMsgActive {
		return sb.tempMessage, sb.config.StyleMessage
	}
	return sb.getDefaultDisplayText(), sb.config.StyleDefault
}

// Draw renders the status bar onto the last screen line using visual widths.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1
	text, style := sb.Text()

	// Fill background first
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break // Stop if cluster doesn't fit
		}
		if runes := gr.Runes(); len(runes) > 0 {
			screen.SetContent(currentX, y, runes[0], runes[1:], style)
		}
		currentX += clusterWidth
	}
}
