// Package classifier partitions a year's transactions into income and
// spending, dropping ignorable and duplicate entries on the way.
package classifier

import (
	"mintfolio/pkg/models"
	"mintfolio/pkg/rules"
)

type Classifier struct {
	rules rules.Ruleset
}

// New creates a classifier running the given rule tables.
func New(ruleset rules.Ruleset) *Classifier {
	return &Classifier{rules: ruleset}
}

// Classify filters transactions to the target calendar year and splits them
// into an income set and a spending set. Spending is everything left after
// removing income and excluded (ignorable or duplicate) transactions, so the
// two sets are disjoint by construction. A transaction that is both income
// and excluded stays income: the income pass runs independently of the
// exclusion pass. Identical rows collapse into one set member.
func (c *Classifier) Classify(transactions []models.Transaction, year int) (income, spending models.Set) {
	filtered := models.NewSet()
	for _, tx := range transactions {
		if tx.Date.Year == year {
			filtered.Add(tx)
		}
	}

	income = models.NewSet()
	excluded := models.NewSet()
	for tx := range filtered {
		if c.rules.Income.Match(tx) {
			income.Add(tx)
		}
		if c.rules.Ignorable.Match(tx) || c.rules.Dupe.Match(tx) {
			excluded.Add(tx)
		}
	}

	spending = filtered.Diff(income, excluded)
	return income, spending
}
