package parser

import (
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"mintfolio/pkg/models"
)

func TestProcessBytes(t *testing.T) {
	content := []byte(`Date,Description,Amount,Category,Account Name
03/15/2012,ACME Corp,2000.00,Paycheck,CHECKING
03/17/2012,Safeway,-42.17,Groceries,CHECKING
04/01/2012,Payment,-500.00,Credit Card Payment,CREDIT CARD`)

	parser := New(log.Default())
	output, err := parser.ProcessBytes(content, "transactions.csv")
	if err != nil {
		t.Fatalf("ProcessBytes failed: %v", err)
	}

	expected := []models.Transaction{
		{Account: "CHECKING", Category: "Paycheck", Description: "ACME Corp", Amount: 2000.00, Date: models.NewDate(2012, time.March, 15)},
		{Account: "CHECKING", Category: "Groceries", Description: "Safeway", Amount: -42.17, Date: models.NewDate(2012, time.March, 17)},
		{Account: "CREDIT CARD", Category: "Credit Card Payment", Description: "Payment", Amount: -500.00, Date: models.NewDate(2012, time.April, 1)},
	}

	if len(output) != len(expected) {
		t.Fatalf("Expected %d transactions, got %d", len(expected), len(output))
	}

	for i, exp := range expected {
		if output[i] != exp {
			t.Errorf("Transaction %d mismatch:\nExpected: %+v\nGot: %+v", i, exp, output[i])
		}
	}
}

func TestProcessBytesUnknownType(t *testing.T) {
	parser := New(log.Default())
	if _, err := parser.ProcessBytes([]byte("whatever"), "transactions.pdf"); err == nil {
		t.Errorf("Expected an error for an unknown file type")
	}
}

func TestParseCSVSkipsMalformedRows(t *testing.T) {
	content := []byte(`Date,Description,Amount,Category,Account Name
03/15/2012,ACME Corp,2000.00,Paycheck,CHECKING
not-a-date,Broken,12.00,Misc,CHECKING
03/16/2012,Broken Too,twelve,Misc,CHECKING
03/17/2012,Safeway,-42.17,Groceries,CHECKING`)

	parser := New(log.Default())
	output, err := parser.ParseCSV(content)
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}

	if len(output) != 2 {
		t.Fatalf("Expected 2 transactions after skipping malformed rows, got %d", len(output))
	}
	if output[0].Description != "ACME Corp" || output[1].Description != "Safeway" {
		t.Errorf("Unexpected surviving rows: %+v", output)
	}
}

func TestParseCSVMissingColumn(t *testing.T) {
	content := []byte(`Date,Description,Amount,Category
03/15/2012,ACME Corp,2000.00,Paycheck`)

	parser := New(log.Default())
	if _, err := parser.ParseCSV(content); err == nil {
		t.Errorf("Expected an error for a header missing Account Name")
	}
}

func TestParseCSVEmpty(t *testing.T) {
	parser := New(log.Default())
	if _, err := parser.ParseCSV(nil); err == nil {
		t.Errorf("Expected an error for an empty file")
	}
}
