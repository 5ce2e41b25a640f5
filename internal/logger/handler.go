package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const tagKey = "tag" // attribute key used for tag filtering

// debugFilter prints every filtering decision to stderr. Set with SetFilterDebug.
var debugFilter = false

// SetFilterDebug toggles verbose tracing of the filtering handler.
func SetFilterDebug(enabled bool) {
	debugFilter = enabled
}

// filteringHandler drops records by tag, package or file before passing
// them to the wrapped handler.
type filteringHandler struct {
	baseHandler slog.Handler
	cfg         *Config
}

func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{baseHandler: base, cfg: cfg}
}

func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.baseHandler.Enabled(ctx, level)
}

// allowed applies the enabled/disabled pair for one dimension.
// Disabled wins; a non-nil enabled set admits only its members.
func allowed(key string, enabled, disabled map[string]struct{}) bool {
	if _, found := disabled[key]; found {
		return false
	}
	if enabled != nil {
		_, found := enabled[key]
		return found
	}
	return true
}

func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.baseHandler.Handle(ctx, r)
	}

	var pkg, file string
	if r.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		frame, _ := frames.Next()
		if frame.File != "" {
			file = strings.ToLower(filepath.Base(frame.File))
			pkg = strings.ToLower(filepath.Base(filepath.Dir(frame.File)))
		}
	}

	if pkg != "" && !allowed(pkg, h.cfg.enabledPackagesSet, h.cfg.disabledPackagesSet) {
		if debugFilter {
			fmt.Fprintf(os.Stderr, "[FILTER] dropped %q: package %s\n", r.Message, pkg)
		}
		return nil
	}
	if file != "" && !allowed(file, h.cfg.enabledFilesSet, h.cfg.disabledFilesSet) {
		if debugFilter {
			fmt.Fprintf(os.Stderr, "[FILTER] dropped %q: file %s\n", r.Message, file)
		}
		return nil
	}

	var tag string
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag = strings.ToLower(a.Value.String())
			return false
		}
		return true
	})

	if tag == "" {
		// Untagged messages are dropped only when a tag allow-list is active.
		if h.cfg.enabledTagsSet != nil {
			return nil
		}
	} else if !allowed(tag, h.cfg.enabledTagsSet, h.cfg.disabledTagsSet) {
		if debugFilter {
			fmt.Fprintf(os.Stderr, "[FILTER] dropped %q: tag %s\n", r.Message, tag)
		}
		return nil
	}

	return h.baseHandler.Handle(ctx, r)
}

func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithAttrs(attrs), h.cfg)
}

func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithGroup(name), h.cfg)
}
