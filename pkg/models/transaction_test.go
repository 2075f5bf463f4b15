package models

import (
	"testing"
	"time"
)

func TestSetCollapsesDuplicates(t *testing.T) {
	tx := Transaction{
		Account:     "CHECKING",
		Category:    "Groceries",
		Description: "Safeway",
		Amount:      -42.17,
		Date:        NewDate(2012, time.March, 4),
	}

	set := NewSet(tx, tx, tx)
	if set.Len() != 1 {
		t.Errorf("Expected 1 unique transaction, got %d", set.Len())
	}
	if !set.Contains(tx) {
		t.Errorf("Expected set to contain the transaction")
	}

	other := tx
	other.Amount = -42.18
	set.Add(other)
	if set.Len() != 2 {
		t.Errorf("Expected 2 unique transactions after adding a distinct one, got %d", set.Len())
	}
}

func TestSetDiff(t *testing.T) {
	a := Transaction{Description: "a", Date: NewDate(2012, time.January, 1)}
	b := Transaction{Description: "b", Date: NewDate(2012, time.January, 2)}
	c := Transaction{Description: "c", Date: NewDate(2012, time.January, 3)}

	diff := NewSet(a, b, c).Diff(NewSet(a), NewSet(c))
	if diff.Len() != 1 || !diff.Contains(b) {
		t.Errorf("Expected diff to contain only b, got %v", diff.Slice())
	}
}

func TestFieldLookup(t *testing.T) {
	tx := Transaction{
		Account:     "CREDIT CARD",
		Category:    "Shopping",
		Description: "Amazon",
		Amount:      17.39,
		Date:        NewDate(2013, time.January, 11),
	}

	cases := []struct {
		field string
		want  string
	}{
		{FieldAccountName, "CREDIT CARD"},
		{FieldCategory, "Shopping"},
		{FieldDescription, "Amazon"},
		{FieldAmount, "17.39"},
		{FieldDate, "01/11/2013"},
	}

	for _, tc := range cases {
		got, ok := tx.Field(tc.field)
		if !ok {
			t.Errorf("Field(%q) not found", tc.field)
			continue
		}
		if got != tc.want {
			t.Errorf("Field(%q) = %q, want %q", tc.field, got, tc.want)
		}
	}

	if _, ok := tx.Field("Notes"); ok {
		t.Errorf("Expected unknown field lookup to fail")
	}
}

func TestDateOrdering(t *testing.T) {
	earlier := NewDate(2011, time.December, 31)
	later := NewDate(2012, time.January, 1)

	if !earlier.Before(later) {
		t.Errorf("Expected %v to be before %v", earlier, later)
	}
	if !later.After(earlier) {
		t.Errorf("Expected %v to be after %v", later, earlier)
	}
	if earlier.Before(earlier) || earlier.After(earlier) {
		t.Errorf("Expected a date to be neither before nor after itself")
	}
	if got := later.String(); got != "2012-01-01" {
		t.Errorf("String() = %q, want 2012-01-01", got)
	}
	if got := DateOf(time.Date(2013, time.January, 11, 23, 59, 0, 0, time.Local)); got != NewDate(2013, time.January, 11) {
		t.Errorf("DateOf dropped to %v", got)
	}
}
