package textanalyser

import (
	"strings"
	"unicode/utf8"
)

func isWordDelimiter(r rune) bool {
	return strings.ContainsRune(wordDelimiters, r)
}

func isSentenceTerminator(r rune) bool {
	return strings.ContainsRune(sentenceTerminators, r)
}

// SplitWords cuts text on the word delimiters in a single left-to-right scan.
// Consecutive delimiters never produce empty words.
func SplitWords(text string) []string {
	return strings.FieldsFunc(text, isWordDelimiter)
}

// SplitSentences cuts text on the sentence terminators, dropping empty fragments.
// Fragments keep their surrounding whitespace.
func SplitSentences(text string) []string {
	return strings.FieldsFunc(text, isSentenceTerminator)
}

//Length of every word in characters, in word order
func wordLengths(words []string) []float64 {
	lengths := make([]float64, 0, len(words))
	for _, word := range words {
		lengths = append(lengths, float64(utf8.RuneCountInString(word)))
	}

	return lengths
}

// groupWords returns the distinct words in first-seen order along with
// the number of times each occurs. Counts are float64 so floats.MaxIdx can pick the first maximum.
func groupWords(words []string) ([]string, []float64) {
	index := make(map[string]int, len(words))
	var unique []string
	var counts []float64

	for _, word := range words {
		if i, ok := index[word]; ok {
			counts[i]++
			continue
		}

		index[word] = len(unique)
		unique = append(unique, word)
		counts = append(counts, 1)
	}

	return unique, counts
}
