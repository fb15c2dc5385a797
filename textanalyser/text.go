package textanalyser

import (
	"strings"
)

// TextAnalyser holds a lower-cased text and its words.
// It is never modified after construction, so it may be shared between goroutines.
type TextAnalyser struct {
	text  string
	words []string
}

// NewTextAnalyser lower-cases text and splits it into words.
func NewTextAnalyser(text string) *TextAnalyser {
	lower := strings.ToLower(text)

	return &TextAnalyser{
		text:  lower,
		words: SplitWords(lower),
	}
}

// Text returns the lower-cased text.
func (ta *TextAnalyser) Text() string {
	return ta.text
}

// Words returns a copy of the words in the order they appear in the text.
func (ta *TextAnalyser) Words() []string {
	words := make([]string, len(ta.words))
	copy(words, ta.words)

	return words
}
