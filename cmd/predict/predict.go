// Package predict handles the spending prediction command
package predict

import (
	"fjacquet/bank-insights/cmd/common"
	"fjacquet/bank-insights/cmd/root"
	"fjacquet/bank-insights/internal/models"
	"fjacquet/bank-insights/internal/predictor"
	"fjacquet/bank-insights/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the predict command
var Cmd = &cobra.Command{
	Use:   "predict",
	Short: "Forecast spending from transaction history",
	Long: `Fit a linear trend to daily expense totals, project the next 30 days,
and emit monthly projections and budget recommendations.`,
	Run: predictFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Balance, "balance", "b", "", "Current account balance")
	Cmd.Flags().StringVarP(&root.AccountNumber, "account", "a", "", "Account number (display only)")
}

func predictFunc(cmd *cobra.Command, args []string) {
	log := root.Logger()
	log.Info("Predict command called")

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

	pred := predictor.New(log)
	result := pred.Predict(transactions, account)

	generator := report.NewGenerator(log, root.Cfg.Output.Indent)
	data, err := generator.RenderJSON(result)
	if err != nil {
		log.Fatalf("Error rendering report: %v", err)
	}

	if err := common.WriteReport(data, root.SharedFlags.Output, log); err != nil {
		log.Fatalf("Error writing report: %v", err)
	}
}
