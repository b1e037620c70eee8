// Package e2e runs ranking over a realistic help corpus with query cases a
// support widget would actually send.
package e2e

import (
	"fmt"

	"github.com/retailops/helpsearch/internal/corpus"
)

// QueryCase is one query and the entry ids of which at least one must appear
// in the top results.
type QueryCase struct {
	Query       string
	ExpectedIDs []string
	Description string
}

type topic struct {
	id       string
	category corpus.Category
	title    string
	keywords []string
	priority int
}

var topics = []topic{
	{"getting-started-overview", corpus.CategoryGettingStarted, "Getting started with your store", []string{"getting started", "setup", "first steps"}, 100},
	{"add-first-product", corpus.CategoryProducts, "Add your first product", []string{"add product", "new product", "create product"}, 95},
	{"product-photos", corpus.CategoryProducts, "Add photos to a product", []string{"product photo", "product image", "upload photo"}, 60},
	{"record-sale", corpus.CategorySales, "Record a sale", []string{"record sale", "sell", "checkout"}, 90},
	{"issue-refund", corpus.CategorySales, "Refund a sale", []string{"refund", "return", "cancel sale"}, 55},
	{"create-invoice", corpus.CategoryInvoicing, "Create an invoice", []string{"create invoice", "send invoice", "bill customer"}, 70},
	{"invite-staff", corpus.CategoryStaff, "Invite staff members", []string{"invite staff", "add staff", "team member"}, 50},
	{"publish-online-store", corpus.CategoryOnlineStore, "Publish your online store", []string{"publish store", "online store", "go live"}, 80},
	{"share-referral-link", corpus.CategoryReferrals, "Share your referral link", []string{"referral link", "refer a friend", "invite friend"}, 40},
	{"fix-sync-error", corpus.CategoryTroubleshooting, "Fix a sync error", []string{"sync error", "not syncing", "data missing"}, 65},
	{"payment-declined", corpus.CategoryTroubleshooting, "Payment was declined", []string{"payment declined", "payment failed", "card declined"}, 65},
}

// BuildCorpus returns a corpus with the base topics plus filler entries, so
// ranking has real competition for every query.
func BuildCorpus(filler int) (*corpus.Corpus, error) {
	entries := make([]*corpus.Entry, 0, len(topics)+filler)
	for _, tp := range topics {
		entries = append(entries, &corpus.Entry{
			ID:          tp.id,
			Category:    tp.category,
			Title:       tp.title,
			Description: tp.title + " in a few steps.",
			Keywords:    tp.keywords,
			Priority:    tp.priority,
		})
	}
	for i := 0; i < filler; i++ {
		tp := topics[i%len(topics)]
		entries = append(entries, &corpus.Entry{
			ID:       fmt.Sprintf("filler-%02d", i),
			Category: tp.category,
			Title:    fmt.Sprintf("Advanced notes %d", i),
			Keywords: []string{fmt.Sprintf("advanced topic %d", i)},
			Priority: 10,
		})
	}
	return corpus.New(entries)
}

// QueryCases returns the query suite. Every case must rank one of its
// expected entries into the top results.
func QueryCases() []QueryCase {
	return []QueryCase{
		{"how do I add a product", []string{"add-first-product"}, "how-to phrasing with exact keyword inside"},
		{"add product", []string{"add-first-product"}, "exact keyword match"},
		{"upload photo for my product", []string{"product-photos"}, "photo keyword beats the generic product entries"},
		{"record sale", []string{"record-sale"}, "exact sales keyword"},
		{"how can I refund a customer", []string{"issue-refund"}, "refund token overlap"},
		{"send invoice to customer", []string{"create-invoice"}, "invoice keyword inside query"},
		{"invite staff", []string{"invite-staff"}, "exact staff keyword"},
		{"publish store", []string{"publish-online-store"}, "exact online-store keyword"},
		{"refer a friend", []string{"share-referral-link"}, "exact referral keyword"},
		{"sync error", []string{"fix-sync-error"}, "exact troubleshooting keyword"},
		{"my card was declined", []string{"payment-declined"}, "declined token overlap"},
	}
}
