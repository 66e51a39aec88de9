package generator

import (
	"strings"

	"github.com/imagify-art/imagify-backend/internal/models"
)

// Generator turns a validated request into a deterministic list of image
// URLs. It is stateless and safe for concurrent use.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate returns exactly count URLs with consecutive seeds. Identical
// requests produce identical output byte for byte. Metadata fields such
// as art_type, style and model never influence the result.
func (g *Generator) Generate(req *models.GenerateRequest) []string {
	resolution := req.Resolution
	if resolution == "" {
		resolution = models.DefaultResolution
	}
	aspect := req.Aspect
	if aspect == "" {
		aspect = models.DefaultAspect
	}
	count := models.DefaultCount
	if req.Count != nil {
		count = *req.Count
	}

	base := parseResolution(resolution)
	width, height := dimensionsFor(base, aspect)

	prompt := strings.TrimSpace(req.Prompt)
	images := make([]string, 0, count)
	for i := 0; i < count; i++ {
		images = append(images, buildImageURL(prompt, width, height, seedBase+i))
	}
	return images
}
