// Package corpus loads and validates the help documentation corpus.
package corpus

import "time"

// Category classifies a documentation entry by product area.
type Category string

const (
	CategoryGettingStarted  Category = "getting-started"
	CategoryProducts        Category = "products"
	CategorySales           Category = "sales"
	CategoryInvoicing       Category = "invoicing"
	CategoryStaff           Category = "staff"
	CategoryOnlineStore     Category = "online-store"
	CategoryReferrals       Category = "referrals"
	CategoryTroubleshooting Category = "troubleshooting"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryGettingStarted, CategoryProducts, CategorySales, CategoryInvoicing,
		CategoryStaff, CategoryOnlineStore, CategoryReferrals, CategoryTroubleshooting:
		return true
	default:
		return false
	}
}

// Step is one ordered instruction in an entry's walkthrough.
type Step struct {
	Title  string `yaml:"title" json:"title"`
	Detail string `yaml:"detail" json:"detail"`
}

// Issue is a common problem/solution pair attached to an entry.
type Issue struct {
	Problem  string `yaml:"problem" json:"problem"`
	Solution string `yaml:"solution" json:"solution"`
}

// Entry is one published help article. Entries are authored offline and
// read-only at runtime.
type Entry struct {
	ID           string    `yaml:"id" json:"id"`
	Category     Category  `yaml:"category" json:"category"`
	Title        string    `yaml:"title" json:"title"`
	Subtitle     string    `yaml:"subtitle" json:"subtitle,omitempty"`
	Description  string    `yaml:"description" json:"description,omitempty"`
	Steps        []Step    `yaml:"steps" json:"steps,omitempty"`
	CommonIssues []Issue   `yaml:"common_issues" json:"common_issues,omitempty"`
	RelatedIDs   []string  `yaml:"related" json:"related,omitempty"`
	Keywords     []string  `yaml:"keywords" json:"keywords"`
	Priority     int       `yaml:"priority" json:"priority"`
	LastUpdated  time.Time `yaml:"last_updated" json:"last_updated,omitempty"`
}
