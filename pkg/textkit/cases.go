package textkit

import (
	"strings"
	"unicode"
)

// CaseTypes lists the supported case transformations in display order
var CaseTypes = []string{
	"upper", "lower", "title", "sentence",
	"camel", "pascal", "snake", "kebab",
	"alternating",
}

// ConvertCase applies the named case transformation to text. The case type
// is matched case-insensitively. Empty or whitespace-only text is an error.
func ConvertCase(text, caseType string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", newError(KindEmptyInput, "Text is empty.")
	}

	switch strings.ToLower(caseType) {
	case "upper":
		return strings.ToUpper(text), nil
	case "lower":
		return strings.ToLower(text), nil
	case "title":
		return titleCase(text), nil
	case "sentence":
		return sentenceCase(text), nil
	case "camel":
		return camelCase(text), nil
	case "pascal":
		return pascalCase(text), nil
	case "snake":
		return delimitedCase(text, '_'), nil
	case "kebab":
		return delimitedCase(text, '-'), nil
	case "alternating":
		return alternatingCase(text), nil
	default:
		return "", newError(KindUnknownSelector,
			"Invalid case type. Available options:\n• upper, lower, title, sentence\n• camel, pascal, snake, kebab\n• alternating")
	}
}

// titleCase uppercases the first letter of every letter run and lowercases
// the rest of the run
func titleCase(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	prevLetter := false
	for _, r := range text {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// sentenceCase uppercases the first character and lowercases everything else
func sentenceCase(text string) string {
	runes := []rune(strings.ToLower(text))
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}

// capitalizeWord uppercases the first rune and lowercases the remainder
func capitalizeWord(word string) string {
	runes := []rune(strings.ToLower(word))
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}

// tokenizeAlnum strips everything but alphanumerics and whitespace, then
// splits on whitespace. Used by the camel and pascal transforms.
func tokenizeAlnum(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if isASCIIAlnum(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Fields(b.String())
}

func camelCase(text string) string {
	words := tokenizeAlnum(text)
	if len(words) == 0 {
		return text
	}

	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, word := range words[1:] {
		b.WriteString(capitalizeWord(word))
	}
	return b.String()
}

func pascalCase(text string) string {
	var b strings.Builder
	for _, word := range tokenizeAlnum(text) {
		b.WriteString(capitalizeWord(word))
	}
	return b.String()
}

// delimitedCase lowercases the text and replaces every non-alphanumeric run
// with a single separator, trimming leading and trailing separators
func delimitedCase(text string, sep rune) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range strings.TrimSpace(text) {
		if isASCIIAlnum(r) {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(sep)
		}
	}

	collapsed := collapseRuns(b.String(), sep)
	return strings.Trim(collapsed, string(sep))
}

// collapseRuns reduces consecutive occurrences of sep to a single one
func collapseRuns(s string, sep rune) string {
	var b strings.Builder
	b.Grow(len(s))

	prevSep := false
	for _, r := range s {
		if r == sep {
			if !prevSep {
				b.WriteRune(r)
			}
			prevSep = true
		} else {
			b.WriteRune(r)
			prevSep = false
		}
	}
	return b.String()
}

// alternatingCase alternates upper and lower by character index, starting
// uppercase. Every character counts toward the index, including spaces.
func alternatingCase(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for i, r := range []rune(text) {
		if i%2 == 0 {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
