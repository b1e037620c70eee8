package ranking

import (
	"reflect"
	"testing"
)

func TestKeywordScorer_Score(t *testing.T) {
	scorer := NewKeywordScorer(nil)

	tests := []struct {
		name        string
		query       string
		keywords    []string
		wantScore   float64
		wantMatched []string
	}{
		{
			// exact match 100 + token overlap (add,add)+(product,product) 20
			name:        "exact match",
			query:       "add product",
			keywords:    []string{"add product"},
			wantScore:   120,
			wantMatched: []string{"add product"},
		},
		{
			// keyword inside query 50 + token overlap 20
			name:        "keyword substring of query",
			query:       "how to add product",
			keywords:    []string{"add product"},
			wantScore:   70,
			wantMatched: []string{"add product"},
		},
		{
			// query inside keyword 40 + token overlap (add,add) 10
			name:        "query substring of keyword",
			query:       "add",
			keywords:    []string{"add product"},
			wantScore:   50,
			wantMatched: []string{"add product"},
		},
		{
			// token overlap only: (product,product) 10
			name:        "token overlap only",
			query:       "product list",
			keywords:    []string{"product catalog"},
			wantScore:   10,
			wantMatched: []string{"product catalog"},
		},
		{
			name:        "case insensitive",
			query:       "ADD Product",
			keywords:    []string{"add product"},
			wantScore:   120,
			wantMatched: []string{"add product"},
		},
		{
			name:        "no match",
			query:       "refund",
			keywords:    []string{"add product"},
			wantScore:   0,
			wantMatched: nil,
		},
		{
			name:        "empty query",
			query:       "",
			keywords:    []string{"add product"},
			wantScore:   0,
			wantMatched: nil,
		},
		{
			name:        "whitespace query",
			query:       "   ",
			keywords:    []string{"add product"},
			wantScore:   0,
			wantMatched: nil,
		},
		{
			// additive across keywords: exact (100+20) + overlap-only (10)
			name:        "multiple keywords accumulate",
			query:       "add product",
			keywords:    []string{"add product", "product photos", "refunds"},
			wantScore:   130,
			wantMatched: []string{"add product", "product photos"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, matched := scorer.Score(tt.query, tt.keywords)
			if score != tt.wantScore {
				t.Errorf("Score() = %v, want %v", score, tt.wantScore)
			}
			if !reflect.DeepEqual(matched, tt.wantMatched) {
				t.Errorf("matched = %v, want %v", matched, tt.wantMatched)
			}
		})
	}
}

func TestKeywordScorer_TierOrdering(t *testing.T) {
	scorer := NewKeywordScorer(nil)

	exact, _ := scorer.Score("add product", []string{"add product"})
	substring, _ := scorer.Score("how to add product quickly", []string{"add product"})
	overlapOnly, _ := scorer.Score("product list", []string{"product catalog"})

	if exact <= substring {
		t.Errorf("exact match (%v) must outscore substring match (%v)", exact, substring)
	}
	if substring <= overlapOnly {
		t.Errorf("substring match (%v) must outscore token overlap (%v)", substring, overlapOnly)
	}
}
