package generator

import "fmt"

const (
	imageEndpoint = "https://image.pollinations.ai/prompt/"
	maxDimension  = 1536
	seedBase      = 1000
)

// buildImageURL embeds the trimmed prompt verbatim. Existing clients rely
// on the exact URL shape, including the unencoded prompt segment.
func buildImageURL(prompt string, width, height, seed int) string {
	return fmt.Sprintf("%s%s?width=%d&height=%d&seed=%d&nologo=true",
		imageEndpoint, prompt, min(width, maxDimension), min(height, maxDimension), seed)
}
