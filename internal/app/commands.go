package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/bethropolis/daub/internal/core/tools"
	"github.com/bethropolis/daub/internal/logger"
	"github.com/bethropolis/daub/internal/plugin"
)

// registerAppCommands registers built-in commands like :title and :clear.
func registerAppCommands(app *App) {
	ed := app.editor
	hist := ed.History()

	commands := map[string]plugin.CommandFunc{
		// :title <text> renames the canvas; no argument clears the title.
		"title": func(args []string) error {
			title := strings.Join(args, " ")
			ed.SetTitle(title)
			app.SetStatusMessage("Title set to: %q", title)
			return nil
		},

		// :clear erases the active layer, one undo step while grouping is on.
		"clear": func(args []string) error {
			n, err := ed.ClearLayer()
			if err != nil {
				return err
			}
			app.SetStatusMessage("Cleared %d cells on layer %d", n, ed.ActiveLayer()+1)
			return nil
		},

		"history": func(args []string) error {
			app.SetStatusMessage("Undo: %d, Redo: %d, grouping %s",
				hist.UndoCount(), hist.RedoCount(), onOff(hist.GroupingEnabled()))
			return nil
		},

		// :grouping on|off
		"grouping": func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: grouping on|off")
			}
			enable, err := parseOnOff(args[0])
			if err != nil {
				return err
			}
			hist.EnableGroupingBehaviour(enable)
			app.SetStatusMessage("Grouping %s", onOff(enable))
			return nil
		},

		// :tool <name> selects a tool by its kind name, e.g. ":tool fill".
		"tool": func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: tool <%s>", strings.Join(toolNames(app), "|"))
			}
			kind, ok := lo.Find(ed.Toolbox().Registry().Kinds(), func(k tools.Kind) bool {
				return strings.EqualFold(k.String(), args[0])
			})
			if !ok {
				return fmt.Errorf("%w: %s", tools.ErrUnknownTool, args[0])
			}
			return ed.SwitchTool(kind)
		},

		// :layer <n> selects a layer, numbered from 1.
		"layer": func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: layer <1-%d>", len(ed.Layers()))
			}
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 || n > len(ed.Layers()) {
				return fmt.Errorf("no layer %q", args[0])
			}
			ed.SelectLayer(n - 1)
			return nil
		},

		"q": func(args []string) error {
			app.modeHandler.Quit()
			return nil
		},
	}
	commands["quit"] = commands["q"]

	for _, name := range lo.Keys(commands) {
		if err := app.modeHandler.RegisterCommand(name, commands[name]); err != nil {
			logger.Warnf("Failed to register ':%s' command: %v", name, err)
		}
	}
}

func toolNames(app *App) []string {
	return lo.Map(app.editor.Toolbox().Registry().Kinds(), func(k tools.Kind, _ int) string {
		return strings.ToLower(k.String())
	})
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}
