package port

import "context"

// GenerateInput carries one prompt for a text-generation provider.
type GenerateInput struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
	JSON        bool // ask the provider for a JSON object response
}

// GenerateOutput contains the provider's answer.
type GenerateOutput struct {
	Text  string
	Model string
}

// TextGenerator abstracts a single-shot language-model call.
type TextGenerator interface {
	Generate(ctx context.Context, input GenerateInput) (*GenerateOutput, error)
}
