package app

import (
	"errors"
	"fmt"

	"github.com/bethropolis/daub/internal/logger"
	"github.com/bethropolis/daub/internal/plugin"
	"github.com/bethropolis/daub/plugins/cellcount"
)

// registerPlugins registers all built-in plugins with the manager.
func registerPlugins(pm *plugin.Manager) error {
	if pm == nil {
		return fmt.Errorf("plugin manager is nil")
	}

	// Adding a new plugin means adding its constructor here.
	pluginConstructors := []func() plugin.Plugin{
		func() plugin.Plugin { return cellcount.New() },
	}

	var errs []error
	for _, newPlugin := range pluginConstructors {
		p := newPlugin()
		logger.Debugf("Registering plugin: %s", p.Name())
		if err := pm.Register(p); err != nil {
			errs = append(errs, fmt.Errorf("failed to register plugin '%s': %w", p.Name(), err))
		}
	}
	return errors.Join(errs...)
}
