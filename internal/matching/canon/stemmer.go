package canon

import "github.com/kljensen/snowball/english"

// Stemmer reduces a word to its stem.
type Stemmer interface {
	Stem(word string) string
}

// SnowballStemmer applies the Snowball (Porter2) English algorithm.
type SnowballStemmer struct{}

// Stem stems word. Stop words are stemmed too so that every token is treated alike.
func (SnowballStemmer) Stem(word string) string {
	return english.Stem(word, true)
}

// StemmerFunc adapts a function to Stemmer.
type StemmerFunc func(string) string

func (f StemmerFunc) Stem(word string) string { return f(word) }
