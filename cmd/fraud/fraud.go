// Package fraud handles the fraud analysis command
package fraud

import (
	"fjacquet/bank-insights/cmd/common"
	"fjacquet/bank-insights/cmd/root"
	"fjacquet/bank-insights/internal/fraud"
	"fjacquet/bank-insights/internal/models"
	"fjacquet/bank-insights/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the fraud command
var Cmd = &cobra.Command{
	Use:   "fraud",
	Short: "Score transactions for fraud risk",
	Long: `Analyze transactions for suspicious patterns: amount outliers, large
withdrawal ratios, rapid bursts, unusual hours, and large round amounts.
Produces per-transaction risk scores and an account-level risk summary.`,
	Run: fraudFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Balance, "balance", "b", "", "Current account balance")
	Cmd.Flags().StringVarP(&root.AccountNumber, "account", "a", "", "Account number (display only)")
}

func fraudFunc(cmd *cobra.Command, args []string) {
	log := root.Logger()
	log.Info("Fraud analysis command called")

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

	detector := fraud.NewDetector(log)
	result := detector.AnalyzeAccount(transactions, account)

	generator := report.NewGenerator(log, root.Cfg.Output.Indent)
	data, err := generator.RenderJSON(result)
	if err != nil {
		log.Fatalf("Error rendering report: %v", err)
	}

	if err := common.WriteReport(data, root.SharedFlags.Output, log); err != nil {
		log.Fatalf("Error writing report: %v", err)
	}
}
