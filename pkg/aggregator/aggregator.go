// Package aggregator buckets classified transactions by a field and sums
// amounts per bucket.
package aggregator

import (
	"errors"
	"fmt"
	"sort"

	"mintfolio/pkg/models"
)

// ErrUnknownField marks a grouping field that is absent from a transaction's
// attribute set.
var ErrUnknownField = errors.New("unknown field")

// Totals maps a group key to the summed amount of its transactions.
type Totals map[string]float64

// Entry is one (key, total) pair of a sorted grouping.
type Entry struct {
	Key   string
	Total float64
}

// GroupBy partitions the set by the string value of the named field and sums
// Amount within each partition. The sum over all buckets equals the sum over
// the input set exactly.
func GroupBy(set models.Set, field string) (Totals, error) {
	totals := make(Totals)
	for tx := range set {
		key, ok := tx.Field(field)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
		totals[key] += tx.Amount
	}
	return totals, nil
}

// SortDesc returns the groups ordered by total, strictly descending. Tie
// order between equal totals is unspecified.
func SortDesc(totals Totals) []Entry {
	entries := make([]Entry, 0, len(totals))
	for key, total := range totals {
		entries = append(entries, Entry{Key: key, Total: total})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Total > entries[j].Total
	})
	return entries
}

// Sum totals all group sums.
func Sum(totals Totals) float64 {
	var sum float64
	for _, total := range totals {
		sum += total
	}
	return sum
}

// Net is the headline result: summed income minus summed spending, both
// grouped by description first.
func Net(income, spending models.Set) (float64, error) {
	incomeTotals, err := GroupBy(income, models.FieldDescription)
	if err != nil {
		return 0, err
	}
	spendingTotals, err := GroupBy(spending, models.FieldDescription)
	if err != nil {
		return 0, err
	}
	return Sum(incomeTotals) - Sum(spendingTotals), nil
}
