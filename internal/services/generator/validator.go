package generator

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrPromptTooShort is returned for prompts shorter than three characters
// after trimming. Its text is the client-facing message.
var ErrPromptTooShort = errors.New("Prompt is too short.")

func (g *Generator) ValidatePrompt(prompt string) error {
	if utf8.RuneCountInString(strings.TrimSpace(prompt)) < 3 {
		return ErrPromptTooShort
	}
	return nil
}
