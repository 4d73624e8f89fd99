package textnorm

import "sort"

// stopWords is generic English plus job-posting filler. Words that stem onto a
// built-in taxonomy entry (research, mentor, reliability, ...) stay out of it.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range stopWordList {
		stopWords[w] = struct{}{}
	}
}

var stopWordList = []string{
	// function words
	"a", "an", "the", "is", "are", "was", "were", "be", "been", "being",
	"do", "does", "did", "have", "has", "had", "will", "would", "could",
	"should", "may", "might", "can", "shall", "not", "no", "and", "or",
	"but", "if", "then", "than", "so", "as", "at", "by", "for", "from",
	"in", "into", "of", "on", "to", "with", "about", "up", "out", "it",
	"its", "this", "that", "these", "those", "there", "their", "they",
	"what", "which", "who", "how", "when", "where", "why", "you", "your",
	"me", "my", "we", "our", "he", "she", "her", "him", "us", "them",
	"such", "any", "all", "both", "via", "among", "through", "within",
	"across", "due", "plus", "well",

	// posting and resume filler
	"using", "use", "like", "new", "including", "various", "different",
	"based", "ability", "abilities", "variety", "background", "currently",
	"preferred", "preferably", "expected", "team", "teams", "working",
	"work", "role", "position", "tasks", "responsibilities", "duties",
	"function", "functions", "career", "goal", "objectives", "achieve",
	"achieving", "successful", "success", "impact", "contribute",
	"contributing", "effective", "efficient", "efficiency", "environment",
	"opportunity", "opportunities", "develop", "development", "developing",
	"improve", "improving", "enhance", "enhancing", "growth", "expanding",
	"expand", "support", "help", "helping", "provide", "provided",
	"provides", "learn", "learning", "knowledge", "self", "motivated",
	"eager", "strong", "excellent", "good", "nice", "basic", "skills",
	"understanding", "technologies", "familiarity", "methodologies",
	"version", "systems", "control", "platforms", "science", "degree",
	"field", "related", "academic", "education", "school", "university",
	"industry", "industries", "solutions", "platform", "ensuring",
	"seamless", "interaction", "existing", "latest", "techniques", "ensure",
	"performance", "scalability", "conduct", "rigorous", "validation",
	"robustness", "monitor", "maintain", "addressing", "issues",
	"improvements", "needed", "stay", "date", "advancements", "apply",
	"solve", "problems", "crossfunctional", "understand", "participate",
	"code", "reviews", "equivalent", "years", "focus", "fine", "tuning",
	"prompt", "application", "architectures", "principles", "exposure",
	"particularly", "ingestion", "pipelines", "quality", "verbal", "convey",
	"complex", "concepts", "nontechnical", "stakeholders", "utilize",
	"models", "optimize", "investment", "processes", "analysts",
	"translate", "robust", "integrate", "requirements", "desired",
	"qualifications", "markets", "strategies", "daily", "check", "update",
	"identifies", "relate", "assisting", "endusers", "person", "remote",
	"corporate",
}

// IsStopWord reports whether word is in the stop-word list. word must already
// be lowercase.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}

// StopWords returns the stop-word list in sorted order.
func StopWords() []string {
	out := make([]string, 0, len(stopWords))
	for w := range stopWords {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
