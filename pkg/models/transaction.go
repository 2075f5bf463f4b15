package models

import (
	"fmt"
	"strconv"
	"time"
)

// Field names as they appear in the export header. Every record carries
// exactly these five fields.
const (
	FieldAccountName = "Account Name"
	FieldCategory    = "Category"
	FieldAmount      = "Amount"
	FieldDescription = "Description"
	FieldDate        = "Date"
)

// RawRecord is one row of the source table, keyed by header field name.
// It is ephemeral: the ingestion step builds it and the field parser
// consumes it immediately.
type RawRecord map[string]string

// Date is a pure calendar date. It carries no time of day and no zone, so
// two dates are equal exactly when they name the same day and Transaction
// values stay usable as map keys.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate creates a calendar date from year, month, day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Before reports whether d falls strictly before other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d falls strictly after other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Transaction is one typed financial event. It is a plain value: two
// transactions with identical fields are indistinguishable, compare equal,
// and collapse to a single member when stored in a Set.
type Transaction struct {
	Account     string
	Category    string
	Description string
	Amount      float64
	Date        Date
}

// Field returns the string value of the named source field. Amount and Date
// are rendered back in their source formats so patterns written against the
// raw table keep matching.
func (t Transaction) Field(name string) (string, bool) {
	switch name {
	case FieldAccountName:
		return t.Account, true
	case FieldCategory:
		return t.Category, true
	case FieldDescription:
		return t.Description, true
	case FieldAmount:
		return strconv.FormatFloat(t.Amount, 'f', -1, 64), true
	case FieldDate:
		return fmt.Sprintf("%02d/%02d/%04d", t.Date.Month, t.Date.Day, t.Date.Year), true
	}
	return "", false
}

// Set is a collection of unique transactions keyed by structural equality.
type Set map[Transaction]struct{}

// NewSet builds a set from the given transactions, collapsing duplicates.
func NewSet(txs ...Transaction) Set {
	s := make(Set, len(txs))
	for _, tx := range txs {
		s[tx] = struct{}{}
	}
	return s
}

// Add inserts a transaction into the set.
func (s Set) Add(tx Transaction) {
	s[tx] = struct{}{}
}

// Contains reports membership.
func (s Set) Contains(tx Transaction) bool {
	_, ok := s[tx]
	return ok
}

// Len returns the number of unique transactions.
func (s Set) Len() int {
	return len(s)
}

// Slice returns the members in unspecified order.
func (s Set) Slice() []Transaction {
	out := make([]Transaction, 0, len(s))
	for tx := range s {
		out = append(out, tx)
	}
	return out
}

// Diff returns the members of s that appear in none of the others.
func (s Set) Diff(others ...Set) Set {
	out := make(Set)
	for tx := range s {
		keep := true
		for _, other := range others {
			if other.Contains(tx) {
				keep = false
				break
			}
		}
		if keep {
			out.Add(tx)
		}
	}
	return out
}
