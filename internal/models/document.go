package models

import (
	"encoding/json"
	"sort"

	"github.com/shopspring/decimal"
)

// DefaultCategories is the category list seeded on a fresh install. A corrupt
// store recovers with an empty list instead; that asymmetry matches the
// behavior of every persisted snapshot in the wild and is kept deliberately.
var DefaultCategories = []string{
	"Food",
	"Transport",
	"Rent / Hostel",
	"Groceries",
	"Entertainment",
	"Academic",
	"Health",
	"Savings",
	"Miscellaneous",
}

// ArchivedMonth is a frozen snapshot of a past month. Once written into
// Document.Archives it is never appended to or edited.
type ArchivedMonth struct {
	MonthlyAllowance decimal.Decimal `json:"monthly_allowance" yaml:"monthly_allowance"`
	Transactions     []Transaction   `json:"transactions" yaml:"transactions"`
}

// Document is the whole persisted state of the tracker, one per installation.
// SavingsGoals, ToTake and ToGive are auxiliary ledgers the core preserves
// verbatim but never interprets.
type Document struct {
	CurrentMonth     string                   `json:"current_month"`
	MonthlyAllowance decimal.Decimal          `json:"monthly_allowance"`
	Categories       []string                 `json:"categories"`
	Transactions     []Transaction            `json:"transactions"`
	Archives         map[string]ArchivedMonth `json:"archives"`
	SavingsGoals     []json.RawMessage        `json:"savings_goals"`
	ToTake           []json.RawMessage        `json:"to_take"`
	ToGive           []json.RawMessage        `json:"to_give"`
}

// NewDocument returns a fresh document for the given month key with the
// seeded category list and zero allowance.
func NewDocument(monthKey string, categories []string) *Document {
	doc := &Document{
		CurrentMonth: monthKey,
		Categories:   append([]string{}, categories...),
	}
	doc.Normalize(monthKey)
	return doc
}

// Normalize backfills missing fields with defaults so documents written by
// older versions load cleanly. A missing month key is set to fallbackMonth;
// missing collections become empty, never nil.
func (d *Document) Normalize(fallbackMonth string) {
	if d.CurrentMonth == "" {
		d.CurrentMonth = fallbackMonth
	}
	if d.Categories == nil {
		d.Categories = []string{}
	}
	if d.Transactions == nil {
		d.Transactions = []Transaction{}
	}
	if d.Archives == nil {
		d.Archives = map[string]ArchivedMonth{}
	}
	if d.SavingsGoals == nil {
		d.SavingsGoals = []json.RawMessage{}
	}
	if d.ToTake == nil {
		d.ToTake = []json.RawMessage{}
	}
	if d.ToGive == nil {
		d.ToGive = []json.RawMessage{}
	}
}

// HasCategory reports whether name is present in the category list.
// Matching is exact and case-sensitive.
func (d *Document) HasCategory(name string) bool {
	for _, c := range d.Categories {
		if c == name {
			return true
		}
	}
	return false
}

// ArchivedKeys returns the archived month keys in ascending order.
func (d *Document) ArchivedKeys() []string {
	keys := make([]string, 0, len(d.Archives))
	for k := range d.Archives {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
