package llm

// ModelTier represents the capability level of a model.
type ModelTier string

const (
	// TierLite is for simple classification with short structured output.
	TierLite ModelTier = "lite"
	// TierStandard is for prompts needing more context and reasoning.
	TierStandard ModelTier = "standard"
)

// Config holds the model configuration for the application.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model mapping. Both classifier
// calls are short JSON verdicts, so lite models carry most of the load.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// GetModel returns the model name for a tier, falling back to lite when the
// requested tier is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}
