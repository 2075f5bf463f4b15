package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"mintfolio/pkg/models"
)

// ErrMalformedRecord marks a raw record whose Amount or Date does not parse.
// The parser never skips on its own; callers decide skip-vs-abort.
var ErrMalformedRecord = errors.New("malformed record")

// dateLayout accepts MM/DD/YYYY with or without leading zeros.
const dateLayout = "1/2/2006"

// FromRecord coerces a raw row into a typed Transaction: Amount becomes a
// signed float, Date becomes a calendar date. The remaining fields pass
// through unchanged.
func FromRecord(rec models.RawRecord) (models.Transaction, error) {
	amountStr, ok := rec[models.FieldAmount]
	if !ok {
		return models.Transaction{}, fmt.Errorf("%w: missing %s", ErrMalformedRecord, models.FieldAmount)
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(amountStr), 64)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("%w: amount %q", ErrMalformedRecord, amountStr)
	}

	dateStr, ok := rec[models.FieldDate]
	if !ok {
		return models.Transaction{}, fmt.Errorf("%w: missing %s", ErrMalformedRecord, models.FieldDate)
	}
	date, err := time.Parse(dateLayout, strings.TrimSpace(dateStr))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("%w: date %q", ErrMalformedRecord, dateStr)
	}

	return models.Transaction{
		Account:     rec[models.FieldAccountName],
		Category:    rec[models.FieldCategory],
		Description: rec[models.FieldDescription],
		Amount:      amount,
		Date:        models.DateOf(date),
	}, nil
}
