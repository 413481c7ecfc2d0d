package httpclient

import (
	"context"
	"net/http"

	"github.com/kbukum/neto/component"
)

// Component wraps a Configuration with lifecycle management.
type Component struct {
	settings Settings
	opts     []Option
	cfg      *Configuration
}

var _ component.Component = (*Component)(nil)
var _ component.Describable = (*Component)(nil)

// NewComponent creates a component. The Configuration is built in Start.
func NewComponent(settings Settings, opts ...Option) *Component {
	return &Component{settings: settings, opts: opts}
}

// Name returns the component name.
func (c *Component) Name() string {
	if c.settings.Name == "" {
		return "http-client"
	}
	return c.settings.Name
}

// Start validates the settings and builds the client.
func (c *Component) Start(_ context.Context) error {
	cfg, err := NewFromSettings(c.settings, c.opts...)
	if err != nil {
		return err
	}
	if err := cfg.Configure(); err != nil {
		return err
	}
	c.cfg = cfg
	return nil
}

// Stop closes idle connections held by the client.
func (c *Component) Stop(_ context.Context) error {
	if c.cfg == nil {
		return nil
	}
	if hc, ok := c.cfg.Client().(*http.Client); ok {
		hc.CloseIdleConnections()
	}
	return nil
}

// Health reports healthy once the client is built.
func (c *Component) Health(_ context.Context) component.Health {
	if c.cfg == nil || !c.cfg.Configured() {
		return component.Health{Name: c.Name(), Status: component.StatusUnhealthy, Message: "not started"}
	}
	return component.Health{Name: c.Name(), Status: component.StatusHealthy}
}

// Describe returns the component description.
func (c *Component) Describe() component.Description {
	return component.Description{
		Name:    c.Name(),
		Type:    "http-client",
		Details: c.settings.BaseURL,
	}
}

// Configuration returns the built Configuration, or nil before Start.
func (c *Component) Configuration() *Configuration {
	return c.cfg
}
