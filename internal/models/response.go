package models

// APIResponse is the envelope used for errors and operational endpoints.
// Successful generation responses stay unenveloped for compatibility with
// existing clients.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// UsageStats reports operational counters only. No prompt or generated
// URL is ever recorded.
type UsageStats struct {
	Requests int64            `json:"requests"`
	Images   int64            `json:"images"`
	ByModel  map[string]int64 `json:"by_model"`
	Cache    string           `json:"cache"`
}
