// Package metrics computes budget figures from the active month's
// transactions. All functions are pure: they take the transaction set and
// allowance as input and derive everything on demand, so there is no cached
// aggregate that could go stale.
package metrics

import (
	"time"

	"github.com/shopspring/decimal"

	"allowance/internal/dateutils"
	"allowance/internal/models"
)

// Metrics holds the headline budget figures for a month.
type Metrics struct {
	// TotalIncome is the monthly allowance plus all income transactions.
	TotalIncome decimal.Decimal
	// TotalExpense is the sum of all expenditure transactions.
	TotalExpense decimal.Decimal
	// NetAvailable is TotalIncome minus TotalExpense; may be negative.
	NetAvailable decimal.Decimal
	// RemainingBudget is NetAvailable floored at zero.
	RemainingBudget decimal.Decimal
}

// Insights holds the per-day derived figures for a month in progress.
type Insights struct {
	AvgDailySpent  decimal.Decimal
	RemainingDays  int
	SafeDailySpend decimal.Decimal
}

// Compute derives the headline metrics. The monthly allowance always counts
// as income.
func Compute(transactions []models.Transaction, allowance decimal.Decimal) Metrics {
	income := decimal.Zero
	expense := decimal.Zero
	for _, tx := range transactions {
		switch {
		case tx.IsIncome():
			income = income.Add(tx.Amount)
		case tx.IsExpenditure():
			expense = expense.Add(tx.Amount)
		}
	}

	totalIncome := allowance.Add(income)
	net := totalIncome.Sub(expense)

	remaining := net
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return Metrics{
		TotalIncome:     totalIncome,
		TotalExpense:    expense,
		NetAvailable:    net,
		RemainingBudget: remaining,
	}
}

// ComputeInsights derives the per-day figures for the calendar month
// containing today. Days passed is today's day of month, inclusive.
func ComputeInsights(m Metrics, today time.Time) Insights {
	daysInMonth := dateutils.DaysInMonth(today)
	daysPassed := dateutils.DayOfMonth(today)

	remainingDays := daysInMonth - daysPassed
	if remainingDays < 0 {
		remainingDays = 0
	}

	avgDailySpent := decimal.Zero
	if daysPassed > 0 {
		avgDailySpent = m.TotalExpense.Div(decimal.NewFromInt(int64(daysPassed)))
	}

	safeDailySpend := decimal.Zero
	if remainingDays > 0 {
		safeDailySpend = m.RemainingBudget.Div(decimal.NewFromInt(int64(remainingDays)))
	}

	return Insights{
		AvgDailySpent:  avgDailySpent,
		RemainingDays:  remainingDays,
		SafeDailySpend: safeDailySpend,
	}
}

// ByCategory sums expenditure per category. Income transactions are ignored.
func ByCategory(transactions []models.Transaction) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if !tx.IsExpenditure() {
			continue
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}
	return totals
}
