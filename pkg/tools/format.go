package tools

import (
	"fmt"
	"strings"
)

// Display formatting helpers shared by the tool implementations. Numbers in
// tool output use thousands separators and previews of long inputs are cut
// at 100 characters so a pasted novel does not come back verbatim.

// previewLimit is the maximum number of characters echoed back from an input
const previewLimit = 100

// formatInt renders n with comma thousands separators
func formatInt(n int) string {
	s := fmt.Sprintf("%d", n)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String()
}

// formatFloat renders f with one decimal place
func formatFloat(f float64) string {
	return fmt.Sprintf("%.1f", f)
}

// preview returns the first previewLimit characters of text, appending an
// ellipsis when text was cut
func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLimit {
		return text
	}
	return string(runes[:previewLimit]) + "..."
}
