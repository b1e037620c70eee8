package ranking

import "strings"

// KeywordScorer computes lexical relevance between a query and an entry's
// keyword set. Scoring is tiered per keyword and additive across keywords:
//
//	exact match          -> ExactMatchScore
//	keyword inside query -> KeywordInQueryScore
//	query inside keyword -> QueryInKeywordScore
//	token overlap        -> TokenOverlapScore per overlapping token pair
//
// Tiers 1-3 are mutually exclusive per keyword (the strongest one wins);
// token overlap is evaluated independently and added on top. Matching is
// case-insensitive.
type KeywordScorer struct {
	config *Config
}

// NewKeywordScorer creates a keyword scorer with the given config.
func NewKeywordScorer(config *Config) *KeywordScorer {
	if config == nil {
		config = DefaultConfig()
	}
	return &KeywordScorer{config: config}
}

// Score returns the total keyword score for the entry's keywords and the
// subset of keywords that contributed, in declared order. An empty or
// whitespace-only query scores 0 against every keyword set.
func (s *KeywordScorer) Score(query string, keywords []string) (float64, []string) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0, nil
	}
	queryTokens := strings.Fields(q)

	var total float64
	var matched []string
	for _, keyword := range keywords {
		k := strings.ToLower(strings.TrimSpace(keyword))
		if k == "" {
			continue
		}

		var score float64
		switch {
		case q == k:
			score = s.config.ExactMatchScore
		case strings.Contains(q, k):
			score = s.config.KeywordInQueryScore
		case strings.Contains(k, q):
			score = s.config.QueryInKeywordScore
		}

		score += s.tokenOverlap(queryTokens, strings.Fields(k))

		if score > 0 {
			total += score
			matched = append(matched, keyword)
		}
	}
	return total, matched
}

// tokenOverlap credits every (query token, keyword token) pair where one token
// contains the other. A keyword may accumulate credit from multiple query tokens.
func (s *KeywordScorer) tokenOverlap(queryTokens, keywordTokens []string) float64 {
	var overlap float64
	for _, qt := range queryTokens {
		for _, kt := range keywordTokens {
			if strings.Contains(qt, kt) || strings.Contains(kt, qt) {
				overlap += s.config.TokenOverlapScore
			}
		}
	}
	return overlap
}
