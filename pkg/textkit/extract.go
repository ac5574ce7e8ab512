package textkit

import (
	"fmt"
	"regexp"
	"strings"
)

// DataTypes lists the supported extraction selectors
var DataTypes = []string{"emails", "urls", "phones", "all"}

// Extraction regexes. These are deliberately simple, well-known patterns
// rather than RFC-grade parsers; extraction is best-effort.
var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	urlPattern   = regexp.MustCompile(`http[s]?://(?:[a-zA-Z]|[0-9]|[$-_@.&+]|[!*\\(\\),]|(?:%[0-9a-fA-F][0-9a-fA-F]))+`)

	phoneGroupedPattern = regexp.MustCompile(`\+?1?[-.\s]?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`)
	phoneIntlPattern    = regexp.MustCompile(`\+?[0-9]{1,3}[-.\s]?[0-9]{3,4}[-.\s]?[0-9]{3,4}[-.\s]?[0-9]{3,4}`)
)

// Extraction holds the deduplicated matches per category. Categories that
// were not requested stay nil.
type Extraction struct {
	Emails []string
	URLs   []string
	Phones []string
}

// Total returns the number of matches across all categories
func (e Extraction) Total() int {
	return len(e.Emails) + len(e.URLs) + len(e.Phones)
}

// Extract finds emails, URLs and/or phone numbers in text. dataType selects
// one category or "all". Matches are deduplicated; ordering within a
// category is not guaranteed. Finding nothing for the requested category
// set is an error, not an empty result.
func Extract(text, dataType string) (Extraction, error) {
	if strings.TrimSpace(text) == "" {
		return Extraction{}, newError(KindEmptyInput, "Text is empty.")
	}

	dataType = strings.ToLower(dataType)
	wantEmails := dataType == "emails" || dataType == "all"
	wantURLs := dataType == "urls" || dataType == "all"
	wantPhones := dataType == "phones" || dataType == "all"

	if !wantEmails && !wantURLs && !wantPhones {
		return Extraction{}, newError(KindUnknownSelector,
			"Invalid data type. Use 'emails', 'urls', 'phones', or 'all'")
	}

	var result Extraction
	if wantEmails {
		result.Emails = dedupe(emailPattern.FindAllString(text, -1))
	}
	if wantURLs {
		result.URLs = dedupe(urlPattern.FindAllString(text, -1))
	}
	if wantPhones {
		result.Phones = extractPhones(text)
	}

	if result.Total() == 0 {
		return Extraction{}, newError(KindNoMatches,
			fmt.Sprintf("No %s found in the text.", dataType))
	}

	return result, nil
}

// extractPhones applies both phone patterns. The grouped pattern captures
// area code, exchange and line number separately and normalizes them with
// dashes; the international pattern is taken verbatim.
func extractPhones(text string) []string {
	var phones []string

	for _, match := range phoneGroupedPattern.FindAllStringSubmatch(text, -1) {
		phones = append(phones, strings.Join(match[1:], "-"))
	}
	phones = append(phones, phoneIntlPattern.FindAllString(text, -1)...)

	return dedupe(phones)
}

// dedupe removes duplicate matches, keeping first occurrence order
func dedupe(matches []string) []string {
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	unique := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		unique = append(unique, m)
	}
	return unique
}
