// Package llm provides the extraction-model client abstraction and its
// Gemini implementation.
package llm

// DefaultModel is the Gemini model used for document extraction.
const DefaultModel = "gemini-2.5-pro"

// ExtractionInstruction is the fixed natural-language instruction sent with
// every document. The heavy lifting is done by the response schema, not the
// prompt.
const ExtractionInstruction = "Extract the structured data from the following pdf file."

// Config holds the model configuration for extraction calls.
type Config struct {
	// Model is the Gemini model name.
	Model string
	// Temperature pins sampling; extraction wants the most deterministic
	// output the model can give, so the default is 0.
	Temperature float32
}

// DefaultConfig returns the default extraction configuration.
func DefaultConfig() *Config {
	return &Config{
		Model:       DefaultModel,
		Temperature: 0,
	}
}

// WithModel returns a copy of the config with a different model.
func (c *Config) WithModel(model string) *Config {
	out := *c
	out.Model = model
	return &out
}
