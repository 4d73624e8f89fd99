// Package matching wires the lexical, taxonomy, extraction and scoring stages
// into a single Engine that compares a resume with a job description.
package matching

import (
	"resume-matcher/internal/matching/canon"
	"resume-matcher/internal/matching/extract"
	"resume-matcher/internal/matching/fuzzy"
	"resume-matcher/internal/matching/scoring"
	"resume-matcher/internal/matching/taxonomy"
)

// Engine is immutable after New and safe for concurrent use.
type Engine struct {
	tax       *taxonomy.Taxonomy
	extractor *extract.Extractor
	scorer    scoring.Scorer
}

type options struct {
	stemmer     canon.Stemmer
	window      int
	maxDistance int
}

// Option configures an Engine.
type Option func(*options)

// WithStemmer replaces the Snowball stemmer.
func WithStemmer(s canon.Stemmer) Option {
	return func(o *options) { o.stemmer = s }
}

// WithContextWindow sets the number of words kept on each side of a hit.
func WithContextWindow(n int) Option {
	return func(o *options) { o.window = n }
}

// WithMaxDistance sets the fuzzy tolerance between job and resume skills.
func WithMaxDistance(n int) Option {
	return func(o *options) { o.maxDistance = n }
}

// New builds an Engine over tax.
func New(tax *taxonomy.Taxonomy, opts ...Option) *Engine {
	o := options{
		stemmer:     canon.SnowballStemmer{},
		window:      extract.DefaultWindow,
		maxDistance: fuzzy.DefaultMaxDistance,
	}
	for _, opt := range opts {
		opt(&o)
	}
	fm := fuzzy.Matcher{MaxDistance: o.maxDistance}
	return &Engine{
		tax:       tax,
		extractor: extract.New(canon.New(tax, o.stemmer), extract.WithWindow(o.window)),
		scorer:    scoring.Scorer{Fuzzy: &fm},
	}
}

// Analyze extracts the skills of both texts and scores the resume against
// the job description.
func (e *Engine) Analyze(resumeText, jobDescription string) scoring.Result {
	resume := e.extractor.Extract(resumeText)
	job := e.extractor.Extract(jobDescription)
	return e.scorer.Score(resume, job)
}

// Extract returns the consolidated skills found in text.
func (e *Engine) Extract(text string) []extract.Term {
	return e.extractor.Extract(text)
}

// Taxonomy returns the taxonomy the engine was built with.
func (e *Engine) Taxonomy() *taxonomy.Taxonomy {
	return e.tax
}
