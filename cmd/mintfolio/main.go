package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
	"github.com/subosito/gotenv"

	"mintfolio/pkg/aggregator"
	"mintfolio/pkg/config"
	"mintfolio/pkg/export"
	"mintfolio/pkg/models"
	"mintfolio/pkg/rules"
	"mintfolio/pkg/service"
)

var (
	cliFilters filters
	cfgFile    string
)

var rootCmd = &cobra.Command{
	Use:   "mintfolio",
	Short: "Classify and total a personal transaction export",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

var reportCmd = &cobra.Command{
	Use:   "report [flags] <export_file>",
	Short: "Earned vs. spent for the target year, net of duplicates and transfers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, processor, err := buildPipeline(cmd)
		if err != nil {
			return err
		}

		report, err := processor.ProcessFile(args[0])
		if err != nil {
			return err
		}

		if cfg.Debug {
			pp.Println(report)
		}

		fmt.Printf("Year %d\n", report.Year)
		fmt.Printf("Income:   %.2f\n", report.IncomeTotal)
		fmt.Printf("Spending: %.2f\n", report.SpendingTotal)
		fmt.Printf("Net:      %.2f\n", report.Net)
		fmt.Printf("\nTop spending by %s:\n", cfg.GroupField)
		printEntries(report.TopSpending)
		fmt.Printf("\nTop income by %s:\n", cfg.GroupField)
		printEntries(report.TopIncome)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [flags] <export_file>",
	Short: "Write classified transactions back out as CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, processor, err := buildPipeline(cmd)
		if err != nil {
			return err
		}

		report, err := processor.ProcessFile(args[0])
		if err != nil {
			return err
		}

		which, _ := cmd.Flags().GetString("set")
		var set models.Set
		switch which {
		case "income":
			set = report.Income
		case "spending":
			set = report.Spending
		default:
			return fmt.Errorf("unknown set %q (want income or spending)", which)
		}

		return export.WriteTransactions(os.Stdout, set, cliFilters.toFilterFunc())
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories [flags] <export_file>",
	Short: "Spending totals grouped by category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, processor, err := buildPipeline(cmd)
		if err != nil {
			return err
		}

		report, err := processor.ProcessFile(args[0])
		if err != nil {
			return err
		}

		totals, err := aggregator.GroupBy(report.Spending, models.FieldCategory)
		if err != nil {
			return err
		}
		return export.WriteTotals(os.Stdout, aggregator.SortDesc(totals))
	},
}

func buildPipeline(cmd *cobra.Command) (*config.Config, *service.Processor, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mintfolio",
	})

	cfg, err := config.Build(cfgFile, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	if cfg.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	ruleset := rules.Default()
	if cfg.RulesPath != "" {
		ruleset, err = rules.Load(cfg.RulesPath)
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("loaded rules", "path", cfg.RulesPath)
	}

	return cfg, service.NewProcessor(cfg, ruleset, logger), nil
}

func printEntries(entries []aggregator.Entry) {
	for _, entry := range entries {
		fmt.Printf("  %10.2f  %s\n", entry.Total, entry.Key)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is mintfolio.yaml)")
	rootCmd.PersistentFlags().Int("year", 0, "Target calendar year (default: current year)")
	rootCmd.PersistentFlags().String("group-field", "", "Field to group totals by")
	rootCmd.PersistentFlags().String("rules", "", "Rules file (YAML); built-in tables when empty")
	rootCmd.PersistentFlags().Int("top", 0, "Number of groups to show per table")
	rootCmd.PersistentFlags().Bool("debug", false, "Verbose logging and a full report dump")

	// Filter flags for export
	exportCmd.Flags().String("set", "spending", "Which set to export (income or spending)")
	exportCmd.Flags().Float64Var(&cliFilters.minAmount, "min", 0, "Minimum amount")
	exportCmd.Flags().Float64Var(&cliFilters.maxAmount, "max", 0, "Maximum amount")
	exportCmd.Flags().StringVar(&cliFilters.description, "description", "", "Filter by description (case insensitive)")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func main() {
	_ = gotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
