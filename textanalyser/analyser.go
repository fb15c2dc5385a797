package textanalyser

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gonum/floats"
)

// WordFrequency is the number of times a word occurs in the text.
type WordFrequency struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Summary collects every statistic of a text.
type Summary struct {
	WordCount         int     `json:"word_count"`
	UniqueWordCount   int     `json:"unique_word_count"`
	AverageWordLength float64 `json:"average_word_length"`
	SymbolsCount      int     `json:"symbols_count"`
	SentenceCount     int     `json:"sentence_count"`
	MostCommonWord    string  `json:"most_common_word"`
	LongestWord       string  `json:"longest_word"`
	ShortestWord      string  `json:"shortest_word"`
}

// WordCount returns the number of words, repeats included.
func (ta *TextAnalyser) WordCount() int {
	return len(ta.words)
}

// UniqueWordCount returns the number of distinct words.
func (ta *TextAnalyser) UniqueWordCount() int {
	unique, _ := groupWords(ta.words)
	return len(unique)
}

// AverageWordLength returns the mean length of the words in characters.
// The average of no words is undefined, so ErrNoWords is returned for a text without words.
func (ta *TextAnalyser) AverageWordLength() (float64, error) {
	if len(ta.words) == 0 {
		return 0, ErrNoWords
	}

	return floats.Sum(wordLengths(ta.words)) / float64(len(ta.words)), nil
}

// SymbolsCount returns the number of characters in the text, whitespace and punctuation included.
func (ta *TextAnalyser) SymbolsCount() int {
	return utf8.RuneCountInString(ta.text)
}

// SentenceCount returns the number of non-empty fragments between sentence terminators.
func (ta *TextAnalyser) SentenceCount() int {
	return len(SplitSentences(ta.text))
}

// MostCommonWord returns the word with the most occurrences.
// Among equally frequent words the one seen first wins.
func (ta *TextAnalyser) MostCommonWord() string {
	if len(ta.words) == 0 {
		return ""
	}

	unique, counts := groupWords(ta.words)
	return unique[floats.MaxIdx(counts)]
}

// LongestWord returns the first of the longest words, or "" when there are none.
func (ta *TextAnalyser) LongestWord() string {
	if len(ta.words) == 0 {
		return ""
	}

	return ta.words[floats.MaxIdx(wordLengths(ta.words))]
}

// ShortestWord returns the first of the shortest words, or "" when there are none.
func (ta *TextAnalyser) ShortestWord() string {
	if len(ta.words) == 0 {
		return ""
	}

	return ta.words[floats.MinIdx(wordLengths(ta.words))]
}

// RepetitionCount returns how many times word occurs in the text, ignoring case.
func (ta *TextAnalyser) RepetitionCount(word string) int {
	return ta.RepetitionCountCase(word, true)
}

// RepetitionCountCase returns how many times word occurs in the text.
// When ignoreCase is false word is compared as given against the lower-cased
// words, so a word containing upper-case letters never matches.
func (ta *TextAnalyser) RepetitionCountCase(word string, ignoreCase bool) int {
	if ignoreCase {
		word = strings.ToLower(word)
	}

	var count int
	for _, w := range ta.words {
		if w == word {
			count++
		}
	}

	return count
}

// WordFrequencies returns every distinct word with its count, most frequent first.
// Words with equal counts keep the order in which they first appear.
func (ta *TextAnalyser) WordFrequencies() []WordFrequency {
	unique, counts := groupWords(ta.words)

	frequencies := make([]WordFrequency, 0, len(unique))
	for i, word := range unique {
		frequencies = append(frequencies, WordFrequency{Word: word, Count: int(counts[i])})
	}

	sort.SliceStable(frequencies, func(i, j int) bool {
		return frequencies[i].Count > frequencies[j].Count
	})

	return frequencies
}

// Summary computes all statistics at once. The average word length is rounded
// to SummaryPrecision decimal places.
// For a text without words the remaining fields are still filled in and ErrNoWords is returned.
func (ta *TextAnalyser) Summary() (Summary, error) {
	summary := Summary{
		WordCount:       ta.WordCount(),
		UniqueWordCount: ta.UniqueWordCount(),
		SymbolsCount:    ta.SymbolsCount(),
		SentenceCount:   ta.SentenceCount(),
		MostCommonWord:  ta.MostCommonWord(),
		LongestWord:     ta.LongestWord(),
		ShortestWord:    ta.ShortestWord(),
	}

	average, err := ta.AverageWordLength()
	if err != nil {
		return summary, err
	}
	summary.AverageWordLength = floats.Round(average, SummaryPrecision)

	return summary, nil
}
