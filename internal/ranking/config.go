// Package ranking provides keyword, vector, and context-aware scoring for
// help documentation entries.
package ranking

// Config holds scoring weights and tier values for the ranking system.
type Config struct {
	// Keyword tier scores
	ExactMatchScore     float64 `yaml:"exact_match_score"`      // default: 100
	KeywordInQueryScore float64 `yaml:"keyword_in_query_score"` // default: 50
	QueryInKeywordScore float64 `yaml:"query_in_keyword_score"` // default: 40
	TokenOverlapScore   float64 `yaml:"token_overlap_score"`    // default: 10

	// Fusion weights
	KeywordWeight float64 `yaml:"keyword_weight"` // default: 1.0
	VectorWeight  float64 `yaml:"vector_weight"`  // default: 1.0

	// VectorScale maps cosine similarity [-1,1] onto [0, VectorScale] so the
	// vector signal lands on the same order of magnitude as keyword scores.
	VectorScale float64 `yaml:"vector_scale"` // default: 100

	// Context boost values
	NewUserBoost          float64 `yaml:"new_user_boost"`          // default: 30
	FirstProductBoost     float64 `yaml:"first_product_boost"`     // default: 50
	FirstSaleBoost        float64 `yaml:"first_sale_boost"`        // default: 30
	TroubleshootBoost     float64 `yaml:"troubleshoot_boost"`      // default: 40
	HighPriorityBoost     float64 `yaml:"high_priority_boost"`     // default: 10
	HighPriorityThreshold int     `yaml:"high_priority_threshold"` // default: 70

	// FirstProductEntryID is the canonical "add your first product" entry.
	FirstProductEntryID string `yaml:"first_product_entry_id"` // default: add-first-product

	// Result limits
	DefaultLimit int `yaml:"default_limit"` // default: 5
	MaxLimit     int `yaml:"max_limit"`     // default: 20
	RelatedLimit int `yaml:"related_limit"` // default: 3
}

// DefaultConfig returns the default ranking configuration.
func DefaultConfig() *Config {
	return &Config{
		ExactMatchScore:     100,
		KeywordInQueryScore: 50,
		QueryInKeywordScore: 40,
		TokenOverlapScore:   10,

		KeywordWeight: 1.0,
		VectorWeight:  1.0,
		VectorScale:   100,

		NewUserBoost:          30,
		FirstProductBoost:     50,
		FirstSaleBoost:        30,
		TroubleshootBoost:     40,
		HighPriorityBoost:     10,
		HighPriorityThreshold: 70,
		FirstProductEntryID:   "add-first-product",

		DefaultLimit: 5,
		MaxLimit:     20,
		RelatedLimit: 3,
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *Config) ApplyDefaults() {
	defaults := DefaultConfig()

	if c.ExactMatchScore == 0 {
		c.ExactMatchScore = defaults.ExactMatchScore
	}
	if c.KeywordInQueryScore == 0 {
		c.KeywordInQueryScore = defaults.KeywordInQueryScore
	}
	if c.QueryInKeywordScore == 0 {
		c.QueryInKeywordScore = defaults.QueryInKeywordScore
	}
	if c.TokenOverlapScore == 0 {
		c.TokenOverlapScore = defaults.TokenOverlapScore
	}

	if c.KeywordWeight == 0 {
		c.KeywordWeight = defaults.KeywordWeight
	}
	if c.VectorWeight == 0 {
		c.VectorWeight = defaults.VectorWeight
	}
	if c.VectorScale == 0 {
		c.VectorScale = defaults.VectorScale
	}

	if c.NewUserBoost == 0 {
		c.NewUserBoost = defaults.NewUserBoost
	}
	if c.FirstProductBoost == 0 {
		c.FirstProductBoost = defaults.FirstProductBoost
	}
	if c.FirstSaleBoost == 0 {
		c.FirstSaleBoost = defaults.FirstSaleBoost
	}
	if c.TroubleshootBoost == 0 {
		c.TroubleshootBoost = defaults.TroubleshootBoost
	}
	if c.HighPriorityBoost == 0 {
		c.HighPriorityBoost = defaults.HighPriorityBoost
	}
	if c.HighPriorityThreshold == 0 {
		c.HighPriorityThreshold = defaults.HighPriorityThreshold
	}
	if c.FirstProductEntryID == "" {
		c.FirstProductEntryID = defaults.FirstProductEntryID
	}

	if c.DefaultLimit == 0 {
		c.DefaultLimit = defaults.DefaultLimit
	}
	if c.MaxLimit == 0 {
		c.MaxLimit = defaults.MaxLimit
	}
	if c.RelatedLimit == 0 {
		c.RelatedLimit = defaults.RelatedLimit
	}
}
