package ranking

import (
	"testing"

	"github.com/retailops/helpsearch/internal/corpus"
)

func TestBooster_DefaultRules(t *testing.T) {
	booster := NewBooster(nil)

	gettingStarted := &corpus.Entry{ID: "getting-started-overview", Category: corpus.CategoryGettingStarted, Priority: 50}
	firstProduct := &corpus.Entry{ID: "add-first-product", Category: corpus.CategoryProducts, Priority: 50}
	recordSale := &corpus.Entry{ID: "record-sale", Category: corpus.CategorySales, Priority: 50}
	fixSync := &corpus.Entry{ID: "fix-sync-error", Category: corpus.CategoryTroubleshooting, Priority: 50}
	highPriority := &corpus.Entry{ID: "popular", Category: corpus.CategoryInvoicing, Priority: 80}

	tests := []struct {
		name  string
		entry *corpus.Entry
		qc    *QueryContext
		want  float64
	}{
		{"new user boosts getting-started", gettingStarted, &QueryContext{IsNewUser: true}, 30},
		{"new user does not boost other categories", recordSale, &QueryContext{IsNewUser: true}, 0},
		{"no products boosts first product entry", firstProduct, &QueryContext{}, 50},
		{"has products suppresses first product boost", firstProduct, &QueryContext{HasProducts: true}, 0},
		{"products without sales boosts sales category", recordSale, &QueryContext{HasProducts: true}, 30},
		{"sales recorded suppresses sales boost", recordSale, &QueryContext{HasProducts: true, HasSales: true}, 0},
		{"recent error boosts troubleshooting", fixSync, &QueryContext{RecentError: true}, 40},
		{"priority above threshold", highPriority, &QueryContext{HasProducts: true, HasSales: true}, 10},
		{"priority at threshold gets nothing", &corpus.Entry{ID: "x", Category: corpus.CategoryStaff, Priority: 70}, &QueryContext{HasProducts: true}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := booster.Boost(tt.entry, tt.qc); got != tt.want {
				t.Errorf("Boost() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBooster_RulesAccumulate(t *testing.T) {
	booster := NewBooster(nil)
	e := &corpus.Entry{ID: "add-first-product", Category: corpus.CategoryProducts, Priority: 95}

	// first-product (50) + high-priority (10)
	if got := booster.Boost(e, &QueryContext{}); got != 60 {
		t.Errorf("Boost() = %v, want 60", got)
	}
}

func TestBooster_NilContext(t *testing.T) {
	booster := NewBooster(nil)
	e := &corpus.Entry{ID: "add-first-product", Category: corpus.CategoryProducts, Priority: 95}

	// nil context behaves as the zero context
	if got, want := booster.Boost(e, nil), booster.Boost(e, &QueryContext{}); got != want {
		t.Errorf("Boost(nil) = %v, want %v", got, want)
	}
}

func TestBooster_NilEntry(t *testing.T) {
	booster := NewBooster(nil)
	if got := booster.Boost(nil, &QueryContext{IsNewUser: true}); got != 0 {
		t.Errorf("Boost() = %v, want 0", got)
	}
}

func TestBooster_WithRules(t *testing.T) {
	booster := NewBooster(nil).WithRules([]BoostRule{
		{
			Name:  "always",
			Boost: 7,
			Matches: func(e *corpus.Entry, qc *QueryContext) bool {
				return true
			},
		},
	})
	e := &corpus.Entry{ID: "x", Category: corpus.CategoryProducts, Priority: 100}
	if got := booster.Boost(e, nil); got != 7 {
		t.Errorf("Boost() = %v, want 7", got)
	}
}
