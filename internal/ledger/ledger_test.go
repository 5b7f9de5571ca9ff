package ledger

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"allowance/internal/ledgererror"
	"allowance/internal/models"
	"allowance/internal/store"
)

func newTestLedger(t *testing.T, monthKey string) *Ledger {
	t.Helper()
	s := store.New(filepath.Join(t.TempDir(), "finance_data.json"), nil)
	doc := models.NewDocument(monthKey, []string{"Food", "Transport", "Scholarship"})
	require.NoError(t, s.Save(doc))
	return New(doc, s).WithClock(func() string { return monthKey })
}

func date(t *testing.T, day int) time.Time {
	t.Helper()
	return time.Date(2025, time.August, day, 0, 0, 0, 0, time.UTC)
}

func TestAddTransaction(t *testing.T) {
	l := newTestLedger(t, "2025-08")

	tx, err := l.AddTransaction(date(t, 10), "Food", models.KindExpenditure, models.ModeCash, decimal.NewFromInt(120))
	require.NoError(t, err)
	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, "Food", tx.Category)
	require.Len(t, l.Document().Transactions, 1)

	// The transaction is persisted, not just held in memory
	reloaded := New(l.store.Load(), l.store)
	require.Len(t, reloaded.Document().Transactions, 1)
	assert.Equal(t, tx.ID, reloaded.Document().Transactions[0].ID)
}

func TestAddTransactionValidation(t *testing.T) {
	testCases := []struct {
		name     string
		category string
		kind     models.TransactionKind
		mode     models.PaymentMode
		amount   decimal.Decimal
	}{
		{"EmptyCategory", "", models.KindExpenditure, models.ModeCash, decimal.NewFromInt(10)},
		{"UnknownCategory", "Gambling", models.KindExpenditure, models.ModeCash, decimal.NewFromInt(10)},
		{"CaseMismatchCategory", "food", models.KindExpenditure, models.ModeCash, decimal.NewFromInt(10)},
		{"ZeroAmount", "Food", models.KindExpenditure, models.ModeCash, decimal.Zero},
		{"NegativeAmount", "Food", models.KindExpenditure, models.ModeCash, decimal.NewFromInt(-5)},
		{"BadKind", "Food", "Loan", models.ModeCash, decimal.NewFromInt(10)},
		{"BadMode", "Food", models.KindExpenditure, "Cheque", decimal.NewFromInt(10)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := newTestLedger(t, "2025-08")
			_, err := l.AddTransaction(date(t, 10), tc.category, tc.kind, tc.mode, tc.amount)
			require.Error(t, err)
			var validationErr *ledgererror.ValidationError
			assert.ErrorAs(t, err, &validationErr)
			// A rejected operation changes nothing
			assert.Empty(t, l.Document().Transactions)
		})
	}
}

func TestDeleteTransactionByID(t *testing.T) {
	l := newTestLedger(t, "2025-08")
	tx, err := l.AddTransaction(date(t, 10), "Food", models.KindExpenditure, models.ModeCash, decimal.NewFromInt(120))
	require.NoError(t, err)
	_, err = l.AddTransaction(date(t, 11), "Transport", models.KindExpenditure, models.ModeCard, decimal.NewFromInt(30))
	require.NoError(t, err)

	require.NoError(t, l.DeleteTransaction(tx.ID))
	require.Len(t, l.Document().Transactions, 1)
	assert.Equal(t, "Transport", l.Document().Transactions[0].Category)

	err = l.DeleteTransaction("nope")
	var validationErr *ledgererror.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestDeleteTransactionsMatchingRemovesAllDuplicates(t *testing.T) {
	l := newTestLedger(t, "2025-08")

	// Two field-wise identical transactions plus one different
	for i := 0; i < 2; i++ {
		_, err := l.AddTransaction(date(t, 10), "Food", models.KindExpenditure, models.ModeCash, decimal.NewFromInt(120))
		require.NoError(t, err)
	}
	_, err := l.AddTransaction(date(t, 10), "Food", models.KindExpenditure, models.ModeCash, decimal.NewFromInt(121))
	require.NoError(t, err)

	removed, err := l.DeleteTransactionsMatching(MatchCriteria{
		Date:        models.NewDate(date(t, 10)),
		Category:    "Food",
		Kind:        models.KindExpenditure,
		PaymentMode: models.ModeCash,
		Amount:      decimal.NewFromInt(120),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	require.Len(t, l.Document().Transactions, 1)
	assert.True(t, l.Document().Transactions[0].Amount.Equal(decimal.NewFromInt(121)))
}

func TestDeleteTransactionsMatchingAmountEpsilon(t *testing.T) {
	l := newTestLedger(t, "2025-08")
	_, err := l.AddTransaction(date(t, 10), "Food", models.KindExpenditure, models.ModeCash, decimal.RequireFromString("120.004"))
	require.NoError(t, err)

	removed, err := l.DeleteTransactionsMatching(MatchCriteria{
		Date:        models.NewDate(date(t, 10)),
		Category:    "Food",
		Kind:        models.KindExpenditure,
		PaymentMode: models.ModeCash,
		Amount:      decimal.NewFromInt(120),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func TestDeleteTransactionsMatchingNothing(t *testing.T) {
	l := newTestLedger(t, "2025-08")

	removed, err := l.DeleteTransactionsMatching(MatchCriteria{
		Date:        models.NewDate(date(t, 10)),
		Category:    "Food",
		Kind:        models.KindExpenditure,
		PaymentMode: models.ModeCash,
		Amount:      decimal.NewFromInt(999),
	})
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestAddCategory(t *testing.T) {
	l := newTestLedger(t, "2025-08")

	require.NoError(t, l.AddCategory("  Books  "))
	assert.True(t, l.Document().HasCategory("Books"))
	// Order is preserved, new entries append
	assert.Equal(t, "Books", l.Document().Categories[len(l.Document().Categories)-1])

	var validationErr *ledgererror.ValidationError
	assert.ErrorAs(t, l.AddCategory("Books"), &validationErr)
	assert.ErrorAs(t, l.AddCategory("   "), &validationErr)

	// Case differs, so this is not a duplicate
	require.NoError(t, l.AddCategory("books"))
}

func TestRemoveCategoriesKeepsTransactions(t *testing.T) {
	l := newTestLedger(t, "2025-08")
	_, err := l.AddTransaction(date(t, 10), "Food", models.KindExpenditure, models.ModeCash, decimal.NewFromInt(50))
	require.NoError(t, err)

	require.NoError(t, l.RemoveCategories([]string{"Food", "Transport"}))
	assert.False(t, l.Document().HasCategory("Food"))
	assert.False(t, l.Document().HasCategory("Transport"))

	// The transaction keeps its now-orphaned label
	require.Len(t, l.Document().Transactions, 1)
	assert.Equal(t, "Food", l.Document().Transactions[0].Category)
}

func TestRemoveCategoriesUnknownIsNoop(t *testing.T) {
	l := newTestLedger(t, "2025-08")
	before := len(l.Document().Categories)

	require.NoError(t, l.RemoveCategories([]string{"Nonexistent"}))
	assert.Len(t, l.Document().Categories, before)
}

func TestSetAllowance(t *testing.T) {
	l := newTestLedger(t, "2025-08")

	require.NoError(t, l.SetAllowance(decimal.NewFromInt(5000)))
	assert.True(t, l.Document().MonthlyAllowance.Equal(decimal.NewFromInt(5000)))

	var validationErr *ledgererror.ValidationError
	assert.ErrorAs(t, l.SetAllowance(decimal.NewFromInt(-1)), &validationErr)
	assert.True(t, l.Document().MonthlyAllowance.Equal(decimal.NewFromInt(5000)))

	require.NoError(t, l.SetAllowance(decimal.Zero))
	assert.True(t, l.Document().MonthlyAllowance.IsZero())
}
