// Package taxonomy holds the read-only skill table the matching engine
// resolves words against. A Taxonomy is built once and shared; none of its
// methods mutate it, so concurrent reads need no locking.
package taxonomy

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"
)

// ErrInvalid is returned when a taxonomy document fails validation.
var ErrInvalid = errors.New("invalid taxonomy")

// Category partitions the taxonomy.
type Category string

const (
	Hard       Category = "hard"
	Soft       Category = "soft"
	Experience Category = "experience"
	Education  Category = "education"
)

// Order is the category precedence: when a word matches several categories
// the first one listed here wins.
var Order = []Category{Hard, Soft, Experience, Education}

// DisplayName returns the human label used in analysis results.
func (c Category) DisplayName() string {
	switch c {
	case Hard:
		return "Hard Skills"
	case Soft:
		return "Soft Skills"
	case Experience:
		return "Experience"
	case Education:
		return "Education"
	default:
		return string(c)
	}
}

// ParseCategory normalizes a category code.
func ParseCategory(raw string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(raw))) {
	case Hard:
		return Hard, nil
	case Soft:
		return Soft, nil
	case Experience:
		return Experience, nil
	case Education:
		return Education, nil
	default:
		return "", fmt.Errorf("%w: unknown category %q", ErrInvalid, raw)
	}
}

// Entry is one canonical term and its known surface forms.
type Entry struct {
	Term       string
	Category   Category
	Variations []string
}

// Taxonomy is an immutable, validated skill table.
type Taxonomy struct {
	tables map[Category][]Entry
	index  map[Category]map[string]int
	size   int
}

// Build validates doc and constructs a Taxonomy from it. Terms and variations
// are trimmed and lowercased; a term may appear only once per category.
func Build(doc Document) (*Taxonomy, error) {
	t := &Taxonomy{
		tables: make(map[Category][]Entry, len(Order)),
		index:  make(map[Category]map[string]int, len(Order)),
	}
	for _, cat := range Order {
		specs := doc.section(cat)
		entries := make([]Entry, 0, len(specs))
		idx := make(map[string]int, len(specs))
		for i, spec := range specs {
			term := normalize(spec.Term)
			if term == "" {
				return nil, fmt.Errorf("%w: %s entry %d has an empty term", ErrInvalid, cat, i)
			}
			if _, dup := idx[term]; dup {
				return nil, fmt.Errorf("%w: duplicate %s term %q", ErrInvalid, cat, term)
			}
			idx[term] = len(entries)
			entries = append(entries, Entry{
				Term:       term,
				Category:   cat,
				Variations: normalizeVariations(spec.Variations),
			})
		}
		t.tables[cat] = entries
		t.index[cat] = idx
		t.size += len(entries)
	}
	if t.size == 0 {
		return nil, fmt.Errorf("%w: no terms", ErrInvalid)
	}
	return t, nil
}

// Entries returns a copy of the entries of cat in declaration order.
func (t *Taxonomy) Entries(cat Category) []Entry {
	src := t.tables[cat]
	out := make([]Entry, len(src))
	for i, e := range src {
		out[i] = Entry{
			Term:       e.Term,
			Category:   e.Category,
			Variations: append([]string(nil), e.Variations...),
		}
	}
	return out
}

// Variations returns the variations of term in cat.
func (t *Taxonomy) Variations(cat Category, term string) ([]string, bool) {
	i, ok := t.index[cat][normalize(term)]
	if !ok {
		return nil, false
	}
	return append([]string(nil), t.tables[cat][i].Variations...), true
}

// Len returns the number of canonical terms across all categories.
func (t *Taxonomy) Len() int {
	return t.size
}

// Document exports the taxonomy in its serializable shape.
func (t *Taxonomy) Document() Document {
	var doc Document
	for _, cat := range Order {
		specs := make([]EntrySpec, 0, len(t.tables[cat]))
		for _, e := range t.tables[cat] {
			specs = append(specs, EntrySpec{
				Term:       e.Term,
				Variations: append([]string{}, e.Variations...),
			})
		}
		doc.setSection(cat, specs)
	}
	return doc
}

// Checksum identifies the taxonomy content; equal tables give equal checksums.
func (t *Taxonomy) Checksum() string {
	data, err := yaml.Marshal(t.Document())
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizeVariations(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, v := range raw {
		v = normalize(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
