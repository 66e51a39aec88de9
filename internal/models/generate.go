package models

// GenerateRequest is the body of POST /api/generate. ArtType, Style and
// Model are descriptive metadata; they never influence the generated URLs.
// Count is a pointer so the binding layer can tell an omitted field
// (defaulted to DefaultCount) from an explicit out-of-range value.
type GenerateRequest struct {
	Prompt     string `json:"prompt" binding:"required,min=3"`
	ArtType    string `json:"art_type"`
	Style      string `json:"style"`
	Aspect     string `json:"aspect"`
	Resolution string `json:"resolution"`
	Model      string `json:"model"`
	Count      *int   `json:"count" binding:"omitempty,min=1,max=9"`
}

type GenerateResponse struct {
	Images []string `json:"images"`
}

const (
	DefaultAspect     = "1:1"
	DefaultResolution = "512×512"
	DefaultModel      = "Pollination AI"
	DefaultCount      = 6
)
