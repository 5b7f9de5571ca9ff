package ledger

import (
	"github.com/sirupsen/logrus"

	"allowance/internal/dateutils"
	"allowance/internal/models"
)

func defaultClock() string {
	return dateutils.CurrentMonthKey()
}

// IsStale reports whether the document's month key lags the clock.
func (l *Ledger) IsStale() bool {
	return l.doc.CurrentMonth != l.clock()
}

// RollOver advances a stale document to the clock's month. It is idempotent:
// once the month key matches the clock, further calls are no-ops.
//
// A stale month with any meaningful content (transactions, or a non-zero
// allowance) is frozen into the archives under its own key; an empty month
// leaves no archive entry. The allowance and the category list carry forward
// unchanged, the transaction list starts empty, and the result is persisted
// before the method returns. If the same key is already archived, for
// example after the clock went backward, the new snapshot overwrites the
// old one.
//
// A persist failure leaves the in-memory document advanced and the store
// stale; the next successful save reconciles the two.
func (l *Ledger) RollOver() error {
	now := l.clock()
	if l.doc.CurrentMonth == now {
		return nil
	}

	prev := l.doc.CurrentMonth
	if len(l.doc.Transactions) > 0 || !l.doc.MonthlyAllowance.IsZero() {
		snapshot := make([]models.Transaction, len(l.doc.Transactions))
		copy(snapshot, l.doc.Transactions)
		l.doc.Archives[prev] = models.ArchivedMonth{
			MonthlyAllowance: l.doc.MonthlyAllowance,
			Transactions:     snapshot,
		}
	}

	l.doc.CurrentMonth = now
	l.doc.Transactions = []models.Transaction{}

	if err := l.Save(); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"from": prev,
		"to":   now,
	}).Info("Rolled ledger over to new month")
	return nil
}
