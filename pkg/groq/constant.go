package groq

import "time"

const (
	// DefaultBaseURL is the Groq OpenAI-compatible API endpoint
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is the default model to use
	DefaultModel = "llama-3.1-8b-instant"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

// Message roles
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// ResponseFormatJSON forces the model to emit a single JSON object.
const ResponseFormatJSON = "json_object"
