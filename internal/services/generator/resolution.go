package generator

import (
	"strconv"
	"strings"
)

const defaultBase = 512

// Separators are tried in this order; only the first one present in the
// string is used.
var resolutionSeparators = []string{"×", "x", "X", "*"}

// parseResolution extracts the base size from strings like "512×512" or
// "1024x768": the integer before the first recognized separator. A string
// without a separator is parsed as a bare integer. Anything unparseable
// falls back to 512.
func parseResolution(res string) int {
	for _, sep := range resolutionSeparators {
		if strings.Contains(res, sep) {
			if base, err := strconv.Atoi(strings.TrimSpace(strings.SplitN(res, sep, 2)[0])); err == nil {
				return base
			}
			break
		}
	}
	if base, err := strconv.Atoi(strings.TrimSpace(res)); err == nil {
		return base
	}
	return defaultBase
}
