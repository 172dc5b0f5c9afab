// Package insights handles the combined insights command
package insights

import (
	"fjacquet/bank-insights/cmd/common"
	"fjacquet/bank-insights/cmd/root"
	"fjacquet/bank-insights/internal/categorizer"
	"fjacquet/bank-insights/internal/fraud"
	"fjacquet/bank-insights/internal/insights"
	"fjacquet/bank-insights/internal/models"
	"fjacquet/bank-insights/internal/predictor"
	"fjacquet/bank-insights/internal/report"
	"fjacquet/bank-insights/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the insights command
var Cmd = &cobra.Command{
	Use:   "insights",
	Short: "Generate the combined analytics report",
	Long: `Run categorization, fraud analysis, and spending prediction over one
transaction export and merge the three reports.`,
	Run: insightsFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Balance, "balance", "b", "", "Current account balance")
	Cmd.Flags().StringVarP(&root.AccountNumber, "account", "a", "", "Account number (display only)")
}

func insightsFunc(cmd *cobra.Command, args []string) {
	log := root.Logger()
	log.Info("Insights command called")

	if root.SharedFlags.Input == "" {
		log.Fatal("An input file is required (--input)")
	}

	balance, err := common.ParseBalance(root.Balance)
	if err != nil {
		log.Fatalf("Error parsing balance: %v", err)
	}
	account := models.Account{
		AccountNumber: root.AccountNumber,
		Balance:       balance,
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

	generator := insights.NewGenerator(cat, fraud.NewDetector(log), predictor.New(log), log)
	result := generator.Generate(transactions, account)

	renderer := report.NewGenerator(log, root.Cfg.Output.Indent)
	data, err := renderer.RenderJSON(result)
	if err != nil {
		log.Fatalf("Error rendering report: %v", err)
	}

	if err := common.WriteReport(data, root.SharedFlags.Output, log); err != nil {
		log.Fatalf("Error writing report: %v", err)
	}
}
