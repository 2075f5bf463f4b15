package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"mintfolio/pkg/models"
)

var exportFields = []string{
	models.FieldAccountName,
	models.FieldCategory,
	models.FieldAmount,
	models.FieldDescription,
	models.FieldDate,
}

// ParseCSV parses a five-column transaction export. The first row is the
// field-name header; every data row becomes a RawRecord keyed by it.
func (p *Parser) ParseCSV(data []byte) ([]models.Transaction, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty file")
		}
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}

	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV record: %w", err)
		}
		line++

		if len(row) != len(header) {
			p.logger.Warn("row width does not match header, skipping", "line", line)
			continue
		}

		record := make(models.RawRecord, len(header))
		for i, name := range header {
			record[name] = row[i]
		}

		tx, err := FromRecord(record)
		if err != nil {
			if errors.Is(err, ErrMalformedRecord) {
				p.logger.Warn("skipping malformed row", "line", line, "error", err)
				continue
			}
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, nil
}

func checkHeader(header []string) error {
	present := make(map[string]bool, len(header))
	for _, name := range header {
		present[name] = true
	}
	for _, name := range exportFields {
		if !present[name] {
			return fmt.Errorf("required column %q not found in header", name)
		}
	}
	return nil
}
