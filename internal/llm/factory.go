package llm

import (
	"context"
	"fmt"

	"jurisflow/internal/config"
	"jurisflow/internal/port"
)

// ProviderFactory creates a TextGenerator from the LLM config.
type ProviderFactory func(ctx context.Context, cfg *config.LLMConfig) (port.TextGenerator, error)

// registry of provider factories, populated by the server at startup
// via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewGenerator creates a TextGenerator using the factory registered for cfg.Provider.
func NewGenerator(ctx context.Context, cfg *config.LLMConfig) (port.TextGenerator, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
	return factory(ctx, cfg)
}
