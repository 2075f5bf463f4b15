package parser

import (
	"errors"
	"testing"
	"time"

	"mintfolio/pkg/models"
)

func TestFromRecord(t *testing.T) {
	record := models.RawRecord{
		models.FieldAccountName: "CHECKING",
		models.FieldCategory:    "Shopping",
		models.FieldAmount:      "17.39",
		models.FieldDescription: "Amazon",
		models.FieldDate:        "1/11/2013",
	}

	tx, err := FromRecord(record)
	if err != nil {
		t.Fatalf("FromRecord failed: %v", err)
	}

	if tx.Amount != 17.39 {
		t.Errorf("Expected amount 17.39, got %v", tx.Amount)
	}
	if tx.Date != models.NewDate(2013, time.January, 11) {
		t.Errorf("Expected date 2013-01-11, got %v", tx.Date)
	}
	if tx.Account != "CHECKING" || tx.Category != "Shopping" || tx.Description != "Amazon" {
		t.Errorf("String fields did not pass through: %+v", tx)
	}
}

func TestFromRecordZeroPaddedDate(t *testing.T) {
	record := models.RawRecord{
		models.FieldAmount: "-500.00",
		models.FieldDate:   "04/01/2012",
	}

	tx, err := FromRecord(record)
	if err != nil {
		t.Fatalf("FromRecord failed: %v", err)
	}
	if tx.Date != models.NewDate(2012, time.April, 1) {
		t.Errorf("Expected date 2012-04-01, got %v", tx.Date)
	}
	if tx.Amount != -500.00 {
		t.Errorf("Expected amount -500.00, got %v", tx.Amount)
	}
}

func TestFromRecordMalformed(t *testing.T) {
	cases := []struct {
		name   string
		record models.RawRecord
	}{
		{"bad amount", models.RawRecord{models.FieldAmount: "seventeen", models.FieldDate: "1/11/2013"}},
		{"bad date", models.RawRecord{models.FieldAmount: "17.39", models.FieldDate: "2013-01-11"}},
		{"missing amount", models.RawRecord{models.FieldDate: "1/11/2013"}},
		{"missing date", models.RawRecord{models.FieldAmount: "17.39"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromRecord(tc.record)
			if !errors.Is(err, ErrMalformedRecord) {
				t.Errorf("Expected ErrMalformedRecord, got %v", err)
			}
		})
	}
}
