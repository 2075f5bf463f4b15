// Package export renders classified transactions and grouped totals back to
// CSV for the reporting side of the pipeline.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"mintfolio/pkg/aggregator"
	"mintfolio/pkg/models"
)

// FilterFunc decides which transactions make it into an export.
type FilterFunc func(models.Transaction) bool

// WriteTransactions writes transactions in the source five-column layout,
// ordered by date. A nil filter exports everything.
func WriteTransactions(w io.Writer, set models.Set, filter FilterFunc) error {
	transactions := set.Slice()
	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].Date.Before(transactions[j].Date)
	})

	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write([]string{
		models.FieldAccountName,
		models.FieldCategory,
		models.FieldAmount,
		models.FieldDescription,
		models.FieldDate,
	}); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, tx := range transactions {
		if filter != nil && !filter(tx) {
			continue
		}
		amount, _ := tx.Field(models.FieldAmount)
		date, _ := tx.Field(models.FieldDate)
		record := []string{
			tx.Account,
			tx.Category,
			amount,
			tx.Description,
			date,
		}
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("error writing transaction: %w", err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// WriteTotals writes sorted grouped totals as (key, total) rows.
func WriteTotals(w io.Writer, entries []aggregator.Entry) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write([]string{"Group", "Total"}); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}
	for _, entry := range entries {
		if err := csvWriter.Write([]string{entry.Key, fmt.Sprintf("%.2f", entry.Total)}); err != nil {
			return fmt.Errorf("error writing total: %w", err)
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}
