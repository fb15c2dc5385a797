package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/drankou/go-textanalyser/textanalyser"
)

func main() {
	// --- Examples -------
	texts := []string{
		"Hello world! This is a simple test.",                            // plain sentences
		"Word word word, word word.",                                     // repeated word, one unique
		"Hello there! How are you? I am fine.",                           // three sentences, mixed terminators
		"This is a line.\nAnd this is another line.\tAnd here is a tab.", // newlines and tabs as delimiters
		"test Test TEST tEsT TeSt",                                       // case variants collapse to one word
		"bb aa cc aa bb",                                                 // tie on frequency, first seen wins
		"",                                                               // empty text
		" ... !!! ",                                                      // punctuation only, no words
	}

	fmt.Println("----------------------------------------------------")
	fmt.Println(" - Analyze example texts, including handling of:")
	fmt.Println("  -- punctuation and whitespace as word delimiters")
	fmt.Println("  -- case folding before counting")
	fmt.Println("  -- ties broken by first occurrence")
	fmt.Printf("  -- texts without words (average word length is undefined)\n\n")

	for _, text := range texts {
		summary, err := textanalyser.NewTextAnalyser(text).Summary()
		if err != nil && !errors.Is(err, textanalyser.ErrNoWords) {
			log.Fatal(err)
		}

		if err != nil {
			fmt.Printf("%q : %+v (%v)\n", text, summary, err)
		} else {
			fmt.Printf("%q : %+v\n", text, summary)
		}
	}

	fmt.Println("----------------------------------------------------")
	fmt.Println(" - Word repetitions: ")

	ta := textanalyser.NewTextAnalyser("This is a line.\nAnd this is another line.\tAnd here is a tab.")
	for _, word := range []string{"line", "IS", "And"} {
		fmt.Printf("  %-5s ignore case: %d, exact: %d\n", word, ta.RepetitionCount(word), ta.RepetitionCountCase(word, false))
	}

	fmt.Println("----------------------------------------------------")
	fmt.Println(" - Word frequencies: ")
	for _, f := range ta.WordFrequencies() {
		fmt.Printf("  %-8s %d\n", f.Word, f.Count)
	}
}
