// Package models defines the persisted data types for the allowance ledger.
package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"allowance/internal/dateutils"
)

func init() {
	// The persisted document stores amounts as plain JSON numbers, matching
	// snapshots written by earlier versions of the tracker.
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionKind distinguishes money coming in from money going out.
type TransactionKind string

const (
	KindIncome      TransactionKind = "Income"
	KindExpenditure TransactionKind = "Expenditure"
)

// PaymentMode records how a transaction was paid.
type PaymentMode string

const (
	ModeCash         PaymentMode = "Cash"
	ModeCard         PaymentMode = "Card"
	ModeWallet       PaymentMode = "Wallet"
	ModeBankTransfer PaymentMode = "BankTransfer"
	ModeOther        PaymentMode = "Other"
)

// PaymentModes lists all valid payment modes in display order.
var PaymentModes = []PaymentMode{ModeCash, ModeCard, ModeWallet, ModeBankTransfer, ModeOther}

// ParseKind converts a user-supplied string to a TransactionKind.
func ParseKind(s string) (TransactionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return KindIncome, nil
	case "expenditure", "expense":
		return KindExpenditure, nil
	default:
		return "", fmt.Errorf("unknown transaction kind: %s", s)
	}
}

// ParsePaymentMode converts a user-supplied string to a PaymentMode.
func ParsePaymentMode(s string) (PaymentMode, error) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	if normalized == "bank-transfer" || normalized == "transfer" {
		return ModeBankTransfer, nil
	}
	for _, mode := range PaymentModes {
		if strings.ToLower(string(mode)) == normalized {
			return mode, nil
		}
	}
	return "", fmt.Errorf("unknown payment mode: %s", s)
}

// IsValid reports whether the kind is one of the known values.
func (k TransactionKind) IsValid() bool {
	return k == KindIncome || k == KindExpenditure
}

// IsValid reports whether the mode is one of the known values.
func (m PaymentMode) IsValid() bool {
	for _, mode := range PaymentModes {
		if m == mode {
			return true
		}
	}
	return false
}

// Date is a calendar date persisted as an ISO "YYYY-MM-DD" string.
type Date struct {
	time.Time
}

// NewDate builds a Date from a time, truncating any time-of-day component.
func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON renders the date as an ISO date string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateutils.DateLayoutISO))
}

// UnmarshalJSON accepts any of the common date layouts found in older
// snapshots, not just the ISO layout this package writes.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid date value: %w", err)
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, _, err := dateutils.ParseDate(s)
	if err != nil {
		return err
	}
	*d = NewDate(t)
	return nil
}

// Equal compares two dates by calendar day.
func (d Date) Equal(other Date) bool {
	return d.Year() == other.Year() && d.Month() == other.Month() && d.Day() == other.Day()
}

// Transaction is a single ledger entry. Transactions are immutable once
// created; edits replace the entry wholesale. The ID is generated at creation
// time; entries loaded from older snapshots may carry an empty ID.
type Transaction struct {
	ID          string          `json:"id,omitempty" yaml:"id,omitempty"`
	Date        Date            `json:"date" yaml:"date"`
	Category    string          `json:"category" yaml:"category"`
	Kind        TransactionKind `json:"income_or_expenditure" yaml:"income_or_expenditure"`
	PaymentMode PaymentMode     `json:"payment_mode" yaml:"payment_mode"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
}

// IsIncome returns true if the transaction adds to the budget.
func (t Transaction) IsIncome() bool {
	return t.Kind == KindIncome
}

// IsExpenditure returns true if the transaction spends from the budget.
func (t Transaction) IsExpenditure() bool {
	return t.Kind == KindExpenditure
}
