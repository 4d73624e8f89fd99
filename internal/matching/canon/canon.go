// Package canon resolves raw words to canonical taxonomy terms by comparing
// stems.
package canon

import (
	"strings"

	"resume-matcher/internal/matching/taxonomy"
)

// Matcher resolves words against a single taxonomy category.
type Matcher struct {
	category taxonomy.Category
	entries  []stemmedEntry
}

type stemmedEntry struct {
	term  string
	stems []string // stem of the term first, then one per variation
}

func newMatcher(cat taxonomy.Category, entries []taxonomy.Entry, stemmer Stemmer) *Matcher {
	m := &Matcher{category: cat, entries: make([]stemmedEntry, 0, len(entries))}
	for _, e := range entries {
		stems := make([]string, 0, len(e.Variations)+1)
		stems = append(stems, stemmer.Stem(e.Term))
		for _, v := range e.Variations {
			stems = append(stems, stemmer.Stem(v))
		}
		m.entries = append(m.entries, stemmedEntry{term: e.Term, stems: stems})
	}
	return m
}

// Category returns the category this matcher covers.
func (m *Matcher) Category() taxonomy.Category {
	return m.category
}

// match returns the first entry whose term or variation shares stem.
func (m *Matcher) match(stem string) (string, bool) {
	for _, e := range m.entries {
		for _, s := range e.stems {
			if s == stem {
				return e.term, true
			}
		}
	}
	return "", false
}

// Canonicalizer holds one Matcher per category in precedence order. It copies
// what it needs out of the taxonomy at construction and never writes back.
type Canonicalizer struct {
	stemmer  Stemmer
	matchers []*Matcher
}

// New precomputes stems for every term and variation of tax.
func New(tax *taxonomy.Taxonomy, stemmer Stemmer) *Canonicalizer {
	if stemmer == nil {
		stemmer = SnowballStemmer{}
	}
	c := &Canonicalizer{stemmer: stemmer, matchers: make([]*Matcher, 0, len(taxonomy.Order))}
	for _, cat := range taxonomy.Order {
		c.matchers = append(c.matchers, newMatcher(cat, tax.Entries(cat), stemmer))
	}
	return c
}

// Canonicalize returns the canonical term for token within cat, or token
// unchanged when nothing in that category matches.
func (c *Canonicalizer) Canonicalize(token string, cat taxonomy.Category) string {
	m := c.matcher(cat)
	if m == nil {
		return token
	}
	if term, ok := m.match(c.stem(token)); ok {
		return term
	}
	return token
}

// Resolve walks the matchers in precedence order and stops at the first
// category that recognizes token.
func (c *Canonicalizer) Resolve(token string) (string, taxonomy.Category, bool) {
	stem := c.stem(token)
	if stem == "" {
		return "", "", false
	}
	for _, m := range c.matchers {
		if term, ok := m.match(stem); ok {
			return term, m.category, true
		}
	}
	return "", "", false
}

// Matchers returns the chain in evaluation order.
func (c *Canonicalizer) Matchers() []*Matcher {
	return append([]*Matcher(nil), c.matchers...)
}

func (c *Canonicalizer) matcher(cat taxonomy.Category) *Matcher {
	for _, m := range c.matchers {
		if m.category == cat {
			return m
		}
	}
	return nil
}

func (c *Canonicalizer) stem(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return ""
	}
	return c.stemmer.Stem(token)
}
