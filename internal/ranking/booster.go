package ranking

import "github.com/retailops/helpsearch/internal/corpus"

// QueryContext is a caller-supplied snapshot of application state used for
// deterministic boosting. It carries no identity, is constructed per call,
// and is discarded afterwards.
type QueryContext struct {
	IsNewUser       bool   `json:"is_new_user,omitempty"`
	HasProducts     bool   `json:"has_products,omitempty"`
	HasSales        bool   `json:"has_sales,omitempty"`
	HasStaff        bool   `json:"has_staff,omitempty"`
	CurrentCategory string `json:"current_category,omitempty"`
	RecentError     bool   `json:"recent_error,omitempty"`
}

// BoostRule is one deterministic score adjustment: a predicate over entry and
// context plus an additive boost. Rules must not read the clock or randomness.
type BoostRule struct {
	Name    string
	Boost   float64
	Matches func(e *corpus.Entry, qc *QueryContext) bool
}

// Booster evaluates a rule table against an entry and context. Boosts from all
// matching rules are summed; evaluation order does not affect the result.
type Booster struct {
	rules []BoostRule
}

// NewBooster returns a booster with the default rule table.
func NewBooster(config *Config) *Booster {
	if config == nil {
		config = DefaultConfig()
	}
	return &Booster{rules: DefaultRules(config)}
}

// WithRules replaces the rule table.
func (b *Booster) WithRules(rules []BoostRule) *Booster {
	b.rules = rules
	return b
}

// Boost returns the summed boost of every matching rule. A nil context is
// treated as the zero context so context-independent rules still apply.
func (b *Booster) Boost(e *corpus.Entry, qc *QueryContext) float64 {
	if e == nil {
		return 0
	}
	if qc == nil {
		qc = &QueryContext{}
	}
	var total float64
	for _, rule := range b.rules {
		if rule.Matches(e, qc) {
			total += rule.Boost
		}
	}
	return total
}

// DefaultRules returns the built-in rule table. New rules can be appended
// without touching the fusion step.
func DefaultRules(config *Config) []BoostRule {
	return []BoostRule{
		{
			Name:  "new-user-getting-started",
			Boost: config.NewUserBoost,
			Matches: func(e *corpus.Entry, qc *QueryContext) bool {
				return qc.IsNewUser && e.Category == corpus.CategoryGettingStarted
			},
		},
		{
			Name:  "first-product",
			Boost: config.FirstProductBoost,
			Matches: func(e *corpus.Entry, qc *QueryContext) bool {
				return !qc.HasProducts && e.ID == config.FirstProductEntryID
			},
		},
		{
			Name:  "first-sale",
			Boost: config.FirstSaleBoost,
			Matches: func(e *corpus.Entry, qc *QueryContext) bool {
				return qc.HasProducts && !qc.HasSales && e.Category == corpus.CategorySales
			},
		},
		{
			Name:  "recent-error-troubleshooting",
			Boost: config.TroubleshootBoost,
			Matches: func(e *corpus.Entry, qc *QueryContext) bool {
				return qc.RecentError && e.Category == corpus.CategoryTroubleshooting
			},
		},
		{
			Name:  "high-priority",
			Boost: config.HighPriorityBoost,
			Matches: func(e *corpus.Entry, qc *QueryContext) bool {
				return e.Priority > config.HighPriorityThreshold
			},
		},
	}
}
