package textkit

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var sentenceEndPattern = regexp.MustCompile(`[.!?]+`)

// Stats holds the counters produced by Count
type Stats struct {
	CharsWithSpaces int
	CharsNoSpaces   int
	Words           int
	Sentences       int
	Paragraphs      int
	Lines           int

	// ReadingTimeMinutes estimates reading time at 200 words per minute,
	// never below one minute
	ReadingTimeMinutes int
}

// AvgWordsPerSentence returns the average number of words per sentence
func (s Stats) AvgWordsPerSentence() float64 {
	sentences := s.Sentences
	if sentences < 1 {
		sentences = 1
	}
	return float64(s.Words) / float64(sentences)
}

// AvgCharsPerWord returns the average word length, excluding whitespace
func (s Stats) AvgCharsPerWord() float64 {
	words := s.Words
	if words < 1 {
		words = 1
	}
	return float64(s.CharsNoSpaces) / float64(words)
}

// Count computes text statistics. Empty or whitespace-only input is an
// error, not a zero-valued result.
func Count(text string) (Stats, error) {
	if strings.TrimSpace(text) == "" {
		return Stats{}, newError(KindEmptyInput, "Text is empty.")
	}

	noSpaces := strings.NewReplacer(" ", "", "\n", "", "\t", "").Replace(text)
	words := len(strings.Fields(text))

	// A sentence ends with a run of terminal punctuation. Text without any
	// still counts as one sentence.
	sentences := len(sentenceEndPattern.FindAllString(text, -1))
	if sentences == 0 {
		sentences = 1
	}

	// Paragraphs are blank-line-delimited. If the text has no blank-line
	// separators, fall back to counting non-blank lines.
	paragraphs := countNonBlank(strings.Split(text, "\n\n"))
	if paragraphs == 0 {
		paragraphs = countNonBlank(strings.Split(text, "\n"))
	}

	readingTime := words / 200
	if readingTime < 1 {
		readingTime = 1
	}

	return Stats{
		CharsWithSpaces:    utf8.RuneCountInString(text),
		CharsNoSpaces:      utf8.RuneCountInString(noSpaces),
		Words:              words,
		Sentences:          sentences,
		Paragraphs:         paragraphs,
		Lines:              len(strings.Split(text, "\n")),
		ReadingTimeMinutes: readingTime,
	}, nil
}

// countNonBlank counts the segments that contain non-whitespace content
func countNonBlank(segments []string) int {
	count := 0
	for _, segment := range segments {
		if strings.TrimSpace(segment) != "" {
			count++
		}
	}
	return count
}
