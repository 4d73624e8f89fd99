// Package scoring compares the skills of a resume against those of a job
// description and grades the result per category.
package scoring

import (
	"fmt"

	"resume-matcher/internal/matching/extract"
	"resume-matcher/internal/matching/fuzzy"
	"resume-matcher/internal/matching/taxonomy"
)

const (
	// MaxMissedPerCategory is the number of missing terms that drives a
	// category score to zero.
	MaxMissedPerCategory = 10
	pointsPerTerm        = 100 / MaxMissedPerCategory
)

// Issue describes one missing job term.
type Issue struct {
	Description string `json:"description"`
}

// Category is the graded outcome for one taxonomy category.
type Category struct {
	Name   string  `json:"name"`
	Score  int     `json:"score"`
	Issues []Issue `json:"issues"`
}

// Keyword is a job term the resume covers.
type Keyword struct {
	Keyword  string            `json:"keyword"`
	Context  string            `json:"context"`
	Category taxonomy.Category `json:"category"`
}

// Result is the full analysis of one resume against one job description.
type Result struct {
	MatchRate       int        `json:"matchRate"`
	Categories      []Category `json:"categories"`
	MatchedKeywords []Keyword  `json:"matchedKeywords"`
}

// Scorer grades extracted terms. The zero value uses fuzzy.DefaultMaxDistance.
type Scorer struct {
	Fuzzy *fuzzy.Matcher
}

// Score matches every job term against the resume skills. A job term is
// matched when some resume skill is within the fuzzy tolerance of it.
func (s Scorer) Score(resume, job []extract.Term) Result {
	fm := fuzzy.NewMatcher()
	if s.Fuzzy != nil {
		fm = *s.Fuzzy
	}

	resumeSkills := make([]string, len(resume))
	for i, t := range resume {
		resumeSkills[i] = t.Skill
	}

	missing := make(map[taxonomy.Category][]Issue, len(taxonomy.Order))
	matched := make([]Keyword, 0, len(job))
	for _, t := range job {
		if fm.Any(t.Skill, resumeSkills) {
			matched = append(matched, Keyword{Keyword: t.Skill, Context: t.Context, Category: t.Category})
			continue
		}
		missing[t.Category] = append(missing[t.Category], Issue{Description: IssueText(t)})
	}

	categories := make([]Category, 0, len(taxonomy.Order))
	for _, cat := range taxonomy.Order {
		issues := missing[cat]
		if issues == nil {
			issues = []Issue{}
		}
		categories = append(categories, Category{
			Name:   cat.DisplayName(),
			Score:  CategoryScore(len(issues)),
			Issues: issues,
		})
	}

	return Result{
		MatchRate:       MatchRate(len(matched), len(job)),
		Categories:      categories,
		MatchedKeywords: matched,
	}
}

// MatchRate is 100*matched/total rounded half up, or 0 when total is 0.
func MatchRate(matched, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*matched + total) / (2 * total)
}

// CategoryScore deducts ten points per missing term, bottoming out at zero.
func CategoryScore(missed int) int {
	return max(MaxMissedPerCategory-missed, 0) * pointsPerTerm
}

// IssueText renders the description of a missing term.
func IssueText(t extract.Term) string {
	return fmt.Sprintf("Missing: %s (Context: %s)", t.Skill, t.Context)
}

// IssueDescriptions flattens the issues of every category, in category
// order. It is the issue list a rewrite request expects.
func (r Result) IssueDescriptions() []string {
	out := make([]string, 0)
	for _, c := range r.Categories {
		for _, issue := range c.Issues {
			out = append(out, issue.Description)
		}
	}
	return out
}
