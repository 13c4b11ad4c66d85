package model

import (
	"fmt"

	"docassist/internal/config"
	"docassist/internal/port"
)

// ProviderFactory creates a GenerativeModel from a provider config.
type ProviderFactory func(cfg *config.ModelConfig) (port.GenerativeModel, error)

// registry of model provider factories, populated via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a model provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewModel creates a GenerativeModel using the factory registered for cfg.Provider.
func NewModel(cfg *config.ModelConfig) (port.GenerativeModel, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown model provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
