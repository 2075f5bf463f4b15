package parser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"mintfolio/pkg/models"
)

type FileType string

const (
	ExportCSV FileType = "export_csv"
	ExportXLS FileType = "export_xls"
)

// Parser turns raw export files into typed transactions. Rows whose Amount
// or Date fail to parse are logged and skipped here; the per-record parsing
// in FromRecord stays strict.
type Parser struct {
	logger *log.Logger
}

func New(logger *log.Logger) *Parser {
	return &Parser{
		logger: logger,
	}
}

func (p *Parser) ProcessBytes(data []byte, filename string) ([]models.Transaction, error) {
	fileType := detectType(filename)
	p.logger.Debug("detected file type", "type", fileType, "filename", filename)

	switch fileType {
	case ExportCSV:
		return p.ParseCSV(data)
	case ExportXLS:
		return p.ParseXLS(data)
	default:
		p.logger.Debug("unknown file type", "filename", filename)
		return nil, fmt.Errorf("unknown file type")
	}
}

func detectType(filename string) FileType {
	lowerFilename := strings.ToLower(filename)
	if strings.HasSuffix(lowerFilename, ".csv") {
		return ExportCSV
	}
	if strings.HasSuffix(lowerFilename, ".xls") {
		return ExportXLS
	}
	return ""
}
