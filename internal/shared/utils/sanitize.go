package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeUserText strips any markup from free-form user input (custom
// prompts, display names) before it is stored or forwarded to the model.
func SanitizeUserText(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
