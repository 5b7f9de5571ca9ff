package export

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"allowance/internal/fileutils"
	"allowance/internal/metrics"
	"allowance/internal/models"
)

// MonthSummary is one month's totals in a summary report.
type MonthSummary struct {
	Month        string `yaml:"month"`
	Allowance    string `yaml:"allowance"`
	TotalIncome  string `yaml:"total_income"`
	TotalExpense string `yaml:"total_expense"`
	NetAvailable string `yaml:"net_available"`
	Transactions int    `yaml:"transactions"`
}

// MonthlySummary derives per-month totals for every archived month plus the
// active one, in ascending month order.
func MonthlySummary(doc *models.Document) []MonthSummary {
	summaries := make([]MonthSummary, 0, len(doc.Archives)+1)

	for _, key := range doc.ArchivedKeys() {
		summaries = append(summaries, summarize(key, doc.Archives[key]))
	}

	summaries = append(summaries, summarize(doc.CurrentMonth, models.ArchivedMonth{
		MonthlyAllowance: doc.MonthlyAllowance,
		Transactions:     doc.Transactions,
	}))

	return summaries
}

func summarize(month string, data models.ArchivedMonth) MonthSummary {
	m := metrics.Compute(data.Transactions, data.MonthlyAllowance)
	return MonthSummary{
		Month:        month,
		Allowance:    data.MonthlyAllowance.StringFixed(2),
		TotalIncome:  m.TotalIncome.StringFixed(2),
		TotalExpense: m.TotalExpense.StringFixed(2),
		NetAvailable: m.NetAvailable.StringFixed(2),
		Transactions: len(data.Transactions),
	}
}

// WriteSummaryYAML writes the monthly summary report as YAML.
func WriteSummaryYAML(doc *models.Document, path string) error {
	summaries := MonthlySummary(doc)

	data, err := yaml.Marshal(summaries)
	if err != nil {
		return fmt.Errorf("error marshaling summary: %w", err)
	}

	if err := fileutils.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing summary: %w", err)
	}

	log.WithField("file", path).Info("Wrote monthly summary")
	return nil
}
