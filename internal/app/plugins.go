package app

import (
	"fmt"

	"github.com/bethropolis/modal/internal/logger"
	"github.com/bethropolis/modal/internal/plugin"
	"github.com/bethropolis/modal/plugins/wordcount"
)

// registerPlugins registers the built-in plugins with pm. It keeps going
// after a failure and returns the first error.
func registerPlugins(pm *plugin.Manager) error {
	if pm == nil {
		return fmt.Errorf("plugin manager is nil")
	}

	pluginConstructors := []func() plugin.Plugin{
		func() plugin.Plugin { return wordcount.New() },
	}

	var firstErr error
	for _, newPlugin := range pluginConstructors {
		p := newPlugin()
		logger.Debugf("Registering plugin: %s", p.Name())
		if err := pm.Register(p); err != nil {
			wrappedErr := fmt.Errorf("failed to register plugin '%s': %w", p.Name(), err)
			logger.Errorf("%v", wrappedErr)
			if firstErr == nil {
				firstErr = wrappedErr
			}
		}
	}
	return firstErr
}
