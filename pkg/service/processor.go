package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"mintfolio/pkg/aggregator"
	"mintfolio/pkg/classifier"
	"mintfolio/pkg/config"
	"mintfolio/pkg/models"
	"mintfolio/pkg/parser"
	"mintfolio/pkg/rules"
)

// Report is the result of one pipeline run over a single export file.
type Report struct {
	Year          int
	Income        models.Set
	Spending      models.Set
	IncomeTotal   float64
	SpendingTotal float64
	Net           float64
	TopIncome     []aggregator.Entry
	TopSpending   []aggregator.Entry
}

type Processor struct {
	config     *config.Config
	classifier *classifier.Classifier
	parser     *parser.Parser
	logger     *log.Logger
}

func NewProcessor(cfg *config.Config, ruleset rules.Ruleset, logger *log.Logger) *Processor {
	return &Processor{
		config:     cfg,
		classifier: classifier.New(ruleset),
		parser:     parser.New(logger),
		logger:     logger,
	}
}

// ProcessFile reads and parses one export file and runs the pipeline on it.
func (p *Processor) ProcessFile(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	transactions, err := p.parser.ProcessBytes(data, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse file: %w", err)
	}

	p.logger.Info("parsed transactions", "file", path, "count", len(transactions))
	return p.Run(transactions)
}

// ProcessDirectory runs the pipeline over every export file in a directory.
func (p *Processor) ProcessDirectory(dir string) (map[string]*Report, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading directory: %w", err)
	}

	reports := make(map[string]*Report)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := strings.ToLower(entry.Name())
		if !strings.HasSuffix(name, ".csv") && !strings.HasSuffix(name, ".xls") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		report, err := p.ProcessFile(path)
		if err != nil {
			p.logger.Warn("failed to process file", "file", path, "error", err)
			continue
		}
		reports[entry.Name()] = report
	}
	return reports, nil
}

// Run classifies the transactions for the configured year and aggregates the
// two resulting sets.
func (p *Processor) Run(transactions []models.Transaction) (*Report, error) {
	income, spending := p.classifier.Classify(transactions, p.config.Year)
	p.logger.Debug("classified transactions",
		"year", p.config.Year,
		"income", income.Len(),
		"spending", spending.Len(),
	)

	incomeTotals, err := aggregator.GroupBy(income, p.config.GroupField)
	if err != nil {
		return nil, err
	}
	spendingTotals, err := aggregator.GroupBy(spending, p.config.GroupField)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Year:          p.config.Year,
		Income:        income,
		Spending:      spending,
		IncomeTotal:   aggregator.Sum(incomeTotals),
		SpendingTotal: aggregator.Sum(spendingTotals),
		TopIncome:     top(aggregator.SortDesc(incomeTotals), p.config.Top),
		TopSpending:   top(aggregator.SortDesc(spendingTotals), p.config.Top),
	}
	report.Net = report.IncomeTotal - report.SpendingTotal
	return report, nil
}

func top(entries []aggregator.Entry, n int) []aggregator.Entry {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[:n]
}
