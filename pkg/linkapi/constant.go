package linkapi

import "time"

const (
	DefaultBaseURL = "https://calendar-link-server.onrender.com"
	GeneratePath   = "/api/generate-link"
	PromptParam    = "prompt"

	DefaultTimeout = 30 * time.Second

	// maxErrorBody caps how much of a failed response body ends up in errors.
	maxErrorBody = 512
)
