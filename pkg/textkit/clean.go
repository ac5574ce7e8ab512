package textkit

import (
	"regexp"
	"strings"
)

// CleanModes lists the supported cleaning modes in display order
var CleanModes = []string{"basic", "aggressive", "normalize"}

var (
	spaceRunPattern      = regexp.MustCompile(` +`)
	whitespaceRunPattern = regexp.MustCompile(`\s+`)
	newlineRunPattern    = regexp.MustCompile(`\n{3,}`)
)

// Clean applies the named cleaning mode to text:
//
//   - basic: collapse runs of space characters to one, trim each line
//   - aggressive: collapse all whitespace runs (including newlines) to a
//     single space, trim overall
//   - normalize: trim overall, collapse 3+ consecutive newlines to exactly
//     two, collapse space runs, trim each line
//
// Empty or whitespace-only text and unknown modes are errors.
func Clean(text, mode string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", newError(KindEmptyInput, "Text is empty.")
	}

	switch mode {
	case "basic":
		cleaned := spaceRunPattern.ReplaceAllString(text, " ")
		return trimLines(cleaned), nil

	case "aggressive":
		return strings.TrimSpace(whitespaceRunPattern.ReplaceAllString(text, " ")), nil

	case "normalize":
		cleaned := strings.TrimSpace(text)
		cleaned = newlineRunPattern.ReplaceAllString(cleaned, "\n\n")
		cleaned = spaceRunPattern.ReplaceAllString(cleaned, " ")
		return trimLines(cleaned), nil

	default:
		return "", newError(KindUnknownSelector,
			"Invalid mode. Use: basic, aggressive, or normalize")
	}
}

// trimLines trims whitespace from the start and end of every line
func trimLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}
