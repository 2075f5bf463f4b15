// Package rules holds the field-matching predicates that drive
// classification. Rule tables are plain values handed to the classifier, not
// process-wide state, so alternative tables can be swapped in from a config
// file or a test.
package rules

import (
	"fmt"
	"regexp"

	"mintfolio/pkg/models"
)

// Matcher is a reusable predicate built from a field name and a list of
// patterns. It is true for a transaction when the named field exists and any
// pattern matches its value.
type Matcher struct {
	Field    string
	patterns []*regexp.Regexp
}

// NewMatcher compiles the given patterns as regular expressions.
func NewMatcher(field string, patterns ...string) (Matcher, error) {
	if field == "" {
		return Matcher{}, fmt.Errorf("matcher field is empty")
	}
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return Matcher{}, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		compiled = append(compiled, re)
	}
	return Matcher{Field: field, patterns: compiled}, nil
}

// MustMatcher is NewMatcher for the built-in tables; it panics on a bad
// pattern.
func MustMatcher(field string, patterns ...string) Matcher {
	m, err := NewMatcher(field, patterns...)
	if err != nil {
		panic(err)
	}
	return m
}

// Match evaluates the predicate against a transaction. A field missing from
// the transaction never matches. Patterns are OR-ed with short-circuit on
// the first hit.
func (m Matcher) Match(tx models.Transaction) bool {
	value, ok := tx.Field(m.Field)
	if !ok {
		return false
	}
	for _, re := range m.patterns {
		if re.MatchString(value) {
			return true
		}
	}
	return false
}

// DupeRule spots credit-card line items already rolled up into a lump
// payment transaction: the account matches and the category is anything but
// the exempt one. Counting both the line items and the payment would
// double-count spending.
type DupeRule struct {
	Account        Matcher
	ExemptCategory string
}

// Match reports whether tx is a duplicate line item.
func (r DupeRule) Match(tx models.Transaction) bool {
	return r.Account.Match(tx) && tx.Category != r.ExemptCategory
}

// Ruleset bundles the three predicates the classifier runs.
type Ruleset struct {
	Income    Matcher
	Ignorable Matcher
	Dupe      DupeRule
}

// Default returns the stock rule tables.
func Default() Ruleset {
	return Ruleset{
		Income: MustMatcher(models.FieldCategory, "Income", "Transfer", "Paycheck"),
		Ignorable: MustMatcher(models.FieldDescription,
			"Vanguard",
			"Check 7.*",
			"Transfer to CREDIT CARD",
			"Vgi Prime Mm",
			"Vgilifest Gro",
		),
		Dupe: DupeRule{
			Account:        MustMatcher(models.FieldAccountName, "CREDIT CARD"),
			ExemptCategory: "Credit Card Payment",
		},
	}
}
