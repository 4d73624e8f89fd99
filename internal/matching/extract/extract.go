// Package extract scans text for taxonomy terms and records the words around
// each hit as evidence.
package extract

import (
	"strings"

	"resume-matcher/internal/matching/taxonomy"
	"resume-matcher/internal/matching/textnorm"
)

// DefaultWindow is the number of words captured on each side of a hit.
const DefaultWindow = 5

// Term is one canonical skill found in a text with the snippet it came from.
type Term struct {
	Skill    string            `json:"skill"`
	Context  string            `json:"context"`
	Category taxonomy.Category `json:"category"`
}

// Resolver maps a word to its canonical taxonomy term.
type Resolver interface {
	Resolve(word string) (string, taxonomy.Category, bool)
}

// Extractor turns text into consolidated Terms. It is safe for concurrent use
// when its Resolver is.
type Extractor struct {
	resolver Resolver
	window   int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithWindow overrides the context window size. Negative values are ignored.
func WithWindow(n int) Option {
	return func(e *Extractor) {
		if n >= 0 {
			e.window = n
		}
	}
}

// New returns an Extractor resolving words through r.
func New(r Resolver, opts ...Option) *Extractor {
	e := &Extractor{resolver: r, window: DefaultWindow}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the distinct skills of text in first-seen order, each with
// the context of its first occurrence. Every word is offered to the resolver;
// stop words are not filtered here.
func (e *Extractor) Extract(text string) []Term {
	var found []Term
	for _, sentence := range SplitSentences(text) {
		words := textnorm.Words(sentence)
		for i, w := range words {
			skill, cat, ok := e.resolver.Resolve(w)
			if !ok {
				continue
			}
			found = append(found, Term{
				Skill:    skill,
				Context:  `"...` + ContextWindow(words, i, e.window) + `..."`,
				Category: cat,
			})
		}
	}
	return Consolidate(found)
}

// SplitSentences splits text on runs of '.', '!' and '?' and drops blank
// pieces. Surrounding whitespace is kept.
func SplitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// ContextWindow joins words[index-size : index+size+1] with single spaces,
// clamped to the slice bounds.
func ContextWindow(words []string, index, size int) string {
	if index < 0 || index >= len(words) {
		return ""
	}
	start := max(0, index-size)
	end := min(len(words), index+size+1)
	return strings.Join(words[start:end], " ")
}

// Consolidate keeps the first Term for each skill, preserving order.
func Consolidate(terms []Term) []Term {
	out := make([]Term, 0, len(terms))
	seen := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		if _, ok := seen[t.Skill]; ok {
			continue
		}
		seen[t.Skill] = struct{}{}
		out = append(out, t)
	}
	return out
}
