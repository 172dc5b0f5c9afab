// Package categorize handles the transaction categorization command
package categorize

import (
	"fjacquet/bank-insights/cmd/common"
	"fjacquet/bank-insights/cmd/root"
	"fjacquet/bank-insights/internal/categorizer"
	"fjacquet/bank-insights/internal/report"
	"fjacquet/bank-insights/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize transactions into spending categories",
	Long: `Categorize transactions using weighted keyword scoring over the
transaction descriptions and aggregate the per-category spending distribution.`,
	Run: categorizeFunc,
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	log := root.Logger()
	log.Info("Categorize command called")

	if root.SharedFlags.Input == "" {
		log.Fatal("An input file is required (--input)")
	}

	transactions, err := common.LoadTransactions(root.SharedFlags.Input, log)
	if err != nil {
		log.Fatalf("Error loading transactions: %v", err)
	}
	transactions = common.PrepareForAnalysis(transactions, root.Cfg.Analytics.MaxTransactions)

	categoryStore := store.NewCategoryStore(root.Cfg.Categories.File, log)
	cat, err := categorizer.New(categoryStore, log)
	if err != nil {
		log.Fatalf("Error initializing categorizer: %v", err)
	}

	result := cat.CategorizeAll(transactions)

	generator := report.NewGenerator(log, root.Cfg.Output.Indent)
	var data []byte
	if root.OutputFormat() == "csv" {
		data, err = generator.RenderDistributionCSV(result)
	} else {
		data, err = generator.RenderJSON(result)
	}
	if err != nil {
		log.Fatalf("Error rendering report: %v", err)
	}

	if err := common.WriteReport(data, root.SharedFlags.Output, log); err != nil {
		log.Fatalf("Error writing report: %v", err)
	}
}
