package models

// DatabaseDiagnostic is the GET /test response. Collections holds at most
// the first ten relation names and marshals as [] when empty.
type DatabaseDiagnostic struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

const (
	StatusRunning      = "running"
	StatusNotAvailable = "not available"
	StatusAvailable    = "available"
	StatusNotConnected = "not connected"
	StatusConnected    = "connected"
	StatusSet          = "set"
	StatusNotSet       = "not set"
)
