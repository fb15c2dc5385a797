package textanalyser

import "errors"

const (
	// characters that separate words
	wordDelimiters = " ,.!?;:\n\t"

	// characters that end a sentence
	sentenceTerminators = ".!?"

	//decimal places kept for the average word length in a Summary
	SummaryPrecision = 3
)

// ErrNoWords is returned when a statistic is undefined because the text has no words.
var ErrNoWords = errors.New("textanalyser: text contains no words")

// WordDelimiters returns the characters words are split on.
func WordDelimiters() []rune {
	return []rune(wordDelimiters)
}

// SentenceTerminators returns the characters sentences are split on.
func SentenceTerminators() []rune {
	return []rune(sentenceTerminators)
}
