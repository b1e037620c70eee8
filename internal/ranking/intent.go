package ranking

import (
	"regexp"
	"strings"
	"unicode"
)

// Intent labels the rough shape of a user question. It is consumed by the
// caller for downstream prompt shaping and plays no part in ranking.
type Intent string

const (
	IntentHowTo        Intent = "how-to"
	IntentWhatIs       Intent = "what-is"
	IntentTroubleshoot Intent = "troubleshoot"
	IntentGeneral      Intent = "general"
)

// Classification is the output of Classify.
type Classification struct {
	Intent   Intent   `json:"intent"`
	Keywords []string `json:"keywords"`
}

var (
	howToPattern  = regexp.MustCompile(`^how\s+(do|can|to)\b`)
	whatIsPattern = regexp.MustCompile(`^what\s+(is|are|does)\b`)
	// Failure vocabulary anywhere in the query marks it as troubleshooting.
	troublePattern = regexp.MustCompile(`\b(error|problem|issue|fail|failed|failing|broken|wrong|missing)\b|not working|can't|cannot|won't|doesn't`)
)

// stopWords are dropped during keyword extraction.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "how": true,
	"what": true, "can": true, "are": true, "does": true, "you": true,
	"your": true, "from": true, "this": true, "that": true, "have": true,
	"into": true, "about": true, "all": true, "get": true, "use": true,
}

// Classify tags a query as how-to, what-is, troubleshoot, or general, and
// extracts its salient keywords. Pure function: no I/O, no side effects.
func Classify(query string) Classification {
	q := strings.ToLower(strings.TrimSpace(query))

	intent := IntentGeneral
	switch {
	case troublePattern.MatchString(q):
		intent = IntentTroubleshoot
	case howToPattern.MatchString(q):
		intent = IntentHowTo
	case whatIsPattern.MatchString(q):
		intent = IntentWhatIs
	}

	return Classification{Intent: intent, Keywords: extractKeywords(q)}
}

// extractKeywords splits on non-alphanumeric runes and drops stop words and
// tokens of two characters or fewer.
func extractKeywords(q string) []string {
	tokens := strings.FieldsFunc(q, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	var out []string
	for _, t := range tokens {
		if len(t) <= 2 || stopWords[t] {
			continue
		}
		out = append(out, t)
	}
	return out
}
