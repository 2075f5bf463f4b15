package parser

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/extrame/xls"

	"mintfolio/pkg/models"
)

// ParseXLS parses the same five-column table saved as an Excel sheet. The
// header row may be preceded by blank rows; everything after it is data.
func (p *Parser) ParseXLS(data []byte) ([]models.Transaction, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("error creating workbook: %w", err)
	}

	rows := workbook.ReadAllCells(10000)
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in sheet")
	}

	var header []string
	var transactions []models.Transaction

	for line, row := range rows {
		if header == nil {
			if isHeaderRow(row) {
				header = row
			}
			continue
		}

		if len(row) < len(header) {
			continue
		}

		record := make(models.RawRecord, len(header))
		for i, name := range header {
			record[name] = strings.TrimSpace(row[i])
		}

		tx, err := FromRecord(record)
		if err != nil {
			if errors.Is(err, ErrMalformedRecord) {
				p.logger.Warn("skipping malformed row", "line", line+1, "error", err)
				continue
			}
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	if header == nil {
		return nil, fmt.Errorf("header row not found in sheet")
	}
	return transactions, nil
}

func isHeaderRow(row []string) bool {
	seen := make(map[string]bool, len(row))
	for _, cell := range row {
		seen[strings.TrimSpace(cell)] = true
	}
	for _, name := range exportFields {
		if !seen[name] {
			return false
		}
	}
	return true
}
