package clipboard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/bethropolis/daub/internal/core/history"
	"github.com/bethropolis/daub/internal/core/tools"
	"github.com/bethropolis/daub/internal/grid"
	"github.com/bethropolis/daub/internal/logger"
	"github.com/bethropolis/daub/internal/types"
)

// ErrBadClip is returned when clipboard text is not an encoded layer.
var ErrBadClip = errors.New("clipboard does not hold a canvas")

// ErrCellRange is returned when a cell value has no single-digit encoding.
var ErrCellRange = errors.New("cell value out of clipboard range")

// MaxCellValue is the largest cell value a yank can hold.
const MaxCellValue = 35

// Backend is a text clipboard.
type Backend interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// systemBackend is the OS clipboard.
type systemBackend struct{}

func (systemBackend) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (systemBackend) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Manager handles clipboard operations. The internal buffer always holds
// the last yank; the system clipboard is used on top of it when enabled.
type Manager struct {
	buffer string
	system Backend
}

// NewManager creates a clipboard manager. useSystem enables the OS
// clipboard when the platform supports it.
func NewManager(useSystem bool) *Manager {
	m := &Manager{}
	if useSystem {
		if clipboard.Unsupported {
			logger.Warnf("ClipboardManager: System clipboard unsupported, using internal clipboard")
		} else {
			m.system = systemBackend{}
		}
	}
	return m
}

// WithBackend replaces the system backend. A nil backend disables it.
func (m *Manager) WithBackend(b Backend) *Manager {
	m.system = b
	return m
}

// Write stores text. System clipboard failures are logged and the
// internal buffer is still updated.
func (m *Manager) Write(text string) {
	m.buffer = text
	if m.system == nil {
		return
	}
	if err := m.system.WriteAll(text); err != nil {
		logger.Warnf("ClipboardManager: System clipboard write failed, kept internal copy: %v", err)
	}
}

// Read returns the clipboard text, preferring the system clipboard.
func (m *Manager) Read() string {
	if m.system != nil {
		text, err := m.system.ReadAll()
		if err == nil && text != "" {
			return text
		}
		if err != nil {
			logger.Warnf("ClipboardManager: System clipboard read failed, using internal copy: %v", err)
		}
	}
	return m.buffer
}

// Yank copies a layer to the clipboard. The clipboard is left untouched
// when the layer cannot be encoded.
func (m *Manager) Yank(g *grid.Grid[int]) error {
	text, err := EncodeLayer(g)
	if err != nil {
		return err
	}
	m.Write(text)
	logger.Debugf("ClipboardManager: Yanked %v layer (%d bytes)", g, len(text))
	return nil
}

// Paste writes the clipboard contents onto g with its top-left corner at
// origin. Cells falling outside g are skipped. Every write goes through
// the brush inside one mixed history group, so the paste is a single undo
// step while grouping is enabled. It returns the number of cells visited.
func (m *Manager) Paste(g *grid.Grid[int], origin types.Position, layer int, tb *tools.Toolbox[int], sys *history.System) (int, error) {
	rows, err := DecodeLayer(m.Read())
	if err != nil {
		return 0, err
	}

	sys.StartNewGroup(true)
	defer sys.EndCurrentGroup()

	count := 0
	for y, row := range rows {
		for x, v := range row {
			pos := origin.Add(x, y)
			if !g.InBounds(pos) {
				continue
			}
			if err := tb.Apply(tools.KindBrush, g, pos, v, layer, false); err != nil {
				return count, fmt.Errorf("paste at %v: %w", pos, err)
			}
			count++
		}
	}
	logger.Debugf("ClipboardManager: Pasted %d cells at %v", count, origin)
	return count, nil
}

// EncodeLayer writes a grid as one line per row, one base-36 digit per cell.
// Values outside 0..MaxCellValue return ErrCellRange.
func EncodeLayer(g *grid.Grid[int]) (string, error) {
	var sb strings.Builder
	for y, row := range g.Cells() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, v := range row {
			if v < 0 || v > MaxCellValue {
				return "", fmt.Errorf("%w: %d at %d,%d", ErrCellRange, v, x, y)
			}
			sb.WriteString(strconv.FormatInt(int64(v), 36))
		}
	}
	return sb.String(), nil
}

// DecodeLayer parses text written by EncodeLayer. Rows may differ in length.
func DecodeLayer(text string) ([][]int, error) {
	text = strings.TrimRight(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if text == "" {
		return nil, ErrBadClip
	}
	lines := strings.Split(text, "\n")
	rows := make([][]int, len(lines))
	for y, line := range lines {
		rows[y] = make([]int, 0, len(line))
		for x, c := range line {
			v, err := strconv.ParseInt(string(c), 36, 0)
			if err != nil {
				return nil, fmt.Errorf("%w: bad cell %q at %d,%d", ErrBadClip, c, x, y)
			}
			rows[y] = append(rows[y], int(v))
		}
	}
	return rows, nil
}
