// Package ledger implements the mutating operations of the allowance
// tracker: transaction and category maintenance for the active month, and
// the month rollover that freezes past months into archives.
//
// Every mutation follows the same shape: validate, apply all-or-nothing to
// the in-memory document, persist through the store. Validation failures
// leave the document untouched; a persist failure leaves the in-memory
// document mutated and surfaces as an error the caller must treat as fatal
// for that operation.
package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"allowance/internal/config"
	"allowance/internal/ledgererror"
	"allowance/internal/models"
	"allowance/internal/store"
)

// Use the centralized logger from config package
var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// amountEpsilon tolerates floating-point round-trip noise in persisted
// amounts when matching transactions field-wise.
var amountEpsilon = decimal.NewFromFloat(0.01)

// Ledger owns the in-memory document and the store it persists to.
type Ledger struct {
	doc   *models.Document
	store *store.Store
	clock func() string
}

// New wraps an already-loaded document. The clock defaults to the system
// month-key clock; tests can replace it with WithClock.
func New(doc *models.Document, s *store.Store) *Ledger {
	return &Ledger{doc: doc, store: s, clock: defaultClock}
}

// WithClock replaces the month-key clock and returns the ledger.
func (l *Ledger) WithClock(clock func() string) *Ledger {
	l.clock = clock
	return l
}

// Open loads the document from the store and performs the eager rollover
// check. This is the process-start entry point: after Open returns without
// error, the document's month key matches the clock.
func Open(s *store.Store) (*Ledger, error) {
	l := New(s.Load(), s)
	if err := l.RollOver(); err != nil {
		return nil, err
	}
	return l, nil
}

// Document exposes the in-memory document for queries.
func (l *Ledger) Document() *models.Document {
	return l.doc
}

// Save persists the current in-memory document.
func (l *Ledger) Save() error {
	return l.store.Save(l.doc)
}

// AddTransaction validates and appends a transaction to the active month and
// persists the document. The category must be chosen from the current
// category list, and the amount must be strictly positive.
func (l *Ledger) AddTransaction(date time.Time, category string, kind models.TransactionKind, mode models.PaymentMode, amount decimal.Decimal) (models.Transaction, error) {
	const op = "add transaction"

	if category == "" {
		return models.Transaction{}, &ledgererror.ValidationError{Op: op, Field: "category", Reason: "must not be empty"}
	}
	if !l.doc.HasCategory(category) {
		return models.Transaction{}, &ledgererror.ValidationError{Op: op, Field: "category", Reason: "unknown category: " + category}
	}
	if !kind.IsValid() {
		return models.Transaction{}, &ledgererror.ValidationError{Op: op, Field: "kind", Reason: "unknown kind: " + string(kind)}
	}
	if !mode.IsValid() {
		return models.Transaction{}, &ledgererror.ValidationError{Op: op, Field: "payment_mode", Reason: "unknown payment mode: " + string(mode)}
	}
	if !amount.IsPositive() {
		return models.Transaction{}, &ledgererror.ValidationError{Op: op, Field: "amount", Reason: "must be greater than zero"}
	}

	tx := models.Transaction{
		ID:          uuid.NewString(),
		Date:        models.NewDate(date),
		Category:    category,
		Kind:        kind,
		PaymentMode: mode,
		Amount:      amount,
	}
	l.doc.Transactions = append(l.doc.Transactions, tx)

	if err := l.Save(); err != nil {
		return tx, err
	}

	log.WithFields(logrus.Fields{
		"id":       tx.ID,
		"category": tx.Category,
		"amount":   tx.Amount.StringFixed(2),
	}).Info("Added transaction")
	return tx, nil
}

// DeleteTransaction removes the transaction with the given id. Unknown ids
// are a validation error.
func (l *Ledger) DeleteTransaction(id string) error {
	const op = "delete transaction"

	for i, tx := range l.doc.Transactions {
		if tx.ID != "" && tx.ID == id {
			l.doc.Transactions = append(l.doc.Transactions[:i], l.doc.Transactions[i+1:]...)
			if err := l.Save(); err != nil {
				return err
			}
			log.WithField("id", id).Info("Deleted transaction")
			return nil
		}
	}
	return &ledgererror.ValidationError{Op: op, Field: "id", Reason: "no transaction with id " + id}
}

// MatchCriteria identifies transactions by field-wise equality. Amounts
// match within a small epsilon. Transactions loaded from old snapshots carry
// no id, so this is the only way to address them.
type MatchCriteria struct {
	Date        models.Date
	Category    string
	Kind        models.TransactionKind
	PaymentMode models.PaymentMode
	Amount      decimal.Decimal
}

// Matches reports whether tx matches the criteria field-wise.
func (c MatchCriteria) Matches(tx models.Transaction) bool {
	return tx.Date.Equal(c.Date) &&
		tx.Category == c.Category &&
		tx.Kind == c.Kind &&
		tx.PaymentMode == c.PaymentMode &&
		tx.Amount.Sub(c.Amount).Abs().LessThan(amountEpsilon)
}

// DeleteTransactionsMatching removes every transaction matching the criteria
// and returns how many were removed. Field-wise identical duplicates are all
// removed together; matching nothing is not an error. The document is only
// persisted when something was removed.
func (l *Ledger) DeleteTransactionsMatching(criteria MatchCriteria) (int, error) {
	kept := l.doc.Transactions[:0:0]
	removed := 0
	for _, tx := range l.doc.Transactions {
		if criteria.Matches(tx) {
			removed++
			continue
		}
		kept = append(kept, tx)
	}
	if removed == 0 {
		return 0, nil
	}
	l.doc.Transactions = kept

	if err := l.Save(); err != nil {
		return removed, err
	}

	log.WithField("count", removed).Info("Deleted matching transactions")
	return removed, nil
}

// AddCategory appends a category, preserving insertion order. Surrounding
// whitespace is trimmed; empty and exact-duplicate names are rejected.
func (l *Ledger) AddCategory(name string) error {
	const op = "add category"

	name = strings.TrimSpace(name)
	if name == "" {
		return &ledgererror.ValidationError{Op: op, Field: "name", Reason: "must not be empty"}
	}
	if l.doc.HasCategory(name) {
		return &ledgererror.ValidationError{Op: op, Field: "name", Reason: "duplicate category: " + name}
	}

	l.doc.Categories = append(l.doc.Categories, name)
	if err := l.Save(); err != nil {
		return err
	}

	log.WithField("category", name).Info("Added category")
	return nil
}

// RemoveCategories removes every category whose name is listed. Existing
// transactions that reference a removed category keep the stale label;
// history wins over referential cleanliness.
func (l *Ledger) RemoveCategories(names []string) error {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}

	kept := make([]string, 0, len(l.doc.Categories))
	removed := 0
	for _, c := range l.doc.Categories {
		if drop[c] {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	if removed == 0 {
		return nil
	}
	l.doc.Categories = kept

	if err := l.Save(); err != nil {
		return err
	}

	log.WithField("count", removed).Info("Removed categories")
	return nil
}

// SetAllowance updates the planned income for the active month.
func (l *Ledger) SetAllowance(amount decimal.Decimal) error {
	const op = "set allowance"

	if amount.IsNegative() {
		return &ledgererror.ValidationError{Op: op, Field: "amount", Reason: "must not be negative"}
	}

	l.doc.MonthlyAllowance = amount
	if err := l.Save(); err != nil {
		return err
	}

	log.WithField("allowance", amount.StringFixed(2)).Info("Updated monthly allowance")
	return nil
}
