// Package fraud scores transactions for suspicious activity using additive
// heuristic signals: amount outliers against the account's own history,
// balance-ratio checks, transaction velocity, time-of-day, and large round
// amounts. Scores are 0-100 and map onto four risk levels.
package fraud

import (
	"fmt"
	"math"
	"time"

	"fjacquet/bank-insights/internal/logging"
	"fjacquet/bank-insights/internal/mathutil"
	"fjacquet/bank-insights/internal/models"

	"github.com/shopspring/decimal"
)

// Risk score thresholds. Level assignment compares against Critical, High
// and Medium only; Low exists as the nominal floor of the medium band.
const (
	ThresholdLow      = 25
	ThresholdMedium   = 50
	ThresholdHigh     = 75
	ThresholdCritical = 90
)

// Signal weights added to the risk score when a rule fires.
const (
	scoreHighAmount      = 35
	scoreElevatedAmount  = 15
	scoreLargeWithdrawal = 25
	scoreRapidTxns       = 20
	scoreUnusualHours    = 15
	scoreRoundAmount     = 5
)

// Alert types emitted by the scoring rules.
const (
	AlertHighAmount      = "HIGH_AMOUNT"
	AlertElevatedAmount  = "ELEVATED_AMOUNT"
	AlertLargeWithdrawal = "LARGE_WITHDRAWAL"
	AlertRapidTxns       = "RAPID_TRANSACTIONS"
	AlertUnusualHours    = "UNUSUAL_HOURS"
	AlertRoundAmount     = "ROUND_AMOUNT"
)

const rapidWindow = 5 * time.Minute

var (
	largeWithdrawalRatio = decimal.NewFromFloat(0.5)
	roundAmountFloor     = decimal.NewFromInt(10000)
	roundAmountStep      = decimal.NewFromInt(1000)
)

// Detector scores transactions for fraud indicators. It holds no state
// between calls and is safe for concurrent use.
type Detector struct {
	logger logging.Logger
}

// NewDetector creates a fraud Detector.
func NewDetector(logger logging.Logger) *Detector {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Detector{logger: logger}
}

// AnalyzeTransaction scores a single transaction against the account's
// prior history. History must contain only transactions older than txn;
// AnalyzeAccount derives it from list position.
func (d *Detector) AnalyzeTransaction(txn models.Transaction, history []models.Transaction, account models.Account) models.TransactionAnalysis {
	alerts := []models.Alert{}
	riskScore := 0

	// 1. Amount outliers relative to the account's own history. With zero
	// variance the band falls back to half the mean.
	if len(history) > 0 {
		amounts := make([]float64, len(history))
		for i, h := range history {
			amounts[i] = h.Amount.InexactFloat64()
		}
		mean := mathutil.Mean(amounts)
		stdDev := mathutil.StdDev(amounts)
		if stdDev == 0 {
			stdDev = mean * 0.5
		}

		amount := txn.Amount.InexactFloat64()
		if amount > mean+3*stdDev {
			riskScore += scoreHighAmount
			alerts = append(alerts, models.Alert{
				Type:     AlertHighAmount,
				Severity: "high",
				Message:  fmt.Sprintf("Transaction amount %s is significantly above your average of %.0f", txn.Amount, mean),
				Icon:     "⚠️",
			})
		} else if amount > mean+2*stdDev {
			riskScore += scoreElevatedAmount
			alerts = append(alerts, models.Alert{
				Type:     AlertElevatedAmount,
				Severity: "medium",
				Message:  "Transaction amount is above your typical spending pattern",
				Icon:     "📊",
			})
		}
	}

	// 2. Withdrawal or transfer consuming more than half the balance.
	if (txn.Type == models.TypeWithdraw || txn.Type == models.TypeTransfer) && account.Balance.IsPositive() {
		ratio := txn.Amount.Div(account.Balance)
		if ratio.GreaterThan(largeWithdrawalRatio) {
			riskScore += scoreLargeWithdrawal
			alerts = append(alerts, models.Alert{
				Type:     AlertLargeWithdrawal,
				Severity: "high",
				Message:  fmt.Sprintf("This transaction is %s%% of your total balance", ratio.Mul(decimal.NewFromInt(100)).Round(0)),
				Icon:     "🏦",
			})
		}
	}

	// 3. Burst of activity: 3+ history entries within the 5 minutes before
	// this transaction.
	if len(history) >= 2 {
		windowStart := txn.CreatedAt.Add(-rapidWindow)
		recentCount := 0
		for _, h := range history {
			if !h.CreatedAt.Before(windowStart) {
				recentCount++
			}
		}
		if recentCount >= 3 {
			riskScore += scoreRapidTxns
			alerts = append(alerts, models.Alert{
				Type:     AlertRapidTxns,
				Severity: "medium",
				Message:  fmt.Sprintf("%d transactions detected in the last 5 minutes", recentCount),
				Icon:     "⚡",
			})
		}
	}

	// 4. Unusual hours, 1 AM through 5 AM by the transaction's own clock.
	hour := txn.CreatedAt.Hour()
	if hour >= 1 && hour <= 5 {
		riskScore += scoreUnusualHours
		alerts = append(alerts, models.Alert{
			Type:     AlertUnusualHours,
			Severity: "low",
			Message:  fmt.Sprintf("Transaction at unusual hour (%d:00)", hour),
			Icon:     "🌙",
		})
	}

	// 5. Large round amounts.
	if txn.Amount.GreaterThanOrEqual(roundAmountFloor) && txn.Amount.Mod(roundAmountStep).IsZero() {
		riskScore += scoreRoundAmount
		alerts = append(alerts, models.Alert{
			Type:     AlertRoundAmount,
			Severity: "info",
			Message:  fmt.Sprintf("Large round amount detected: %s", txn.Amount),
			Icon:     "🔢",
		})
	}

	if riskScore > 100 {
		riskScore = 100
	}

	riskLevel := riskLevelForScore(riskScore)

	if riskScore >= ThresholdMedium {
		d.logger.WithFields(
			logging.Field{Key: logging.FieldTransactionID, Value: txn.ID},
			logging.Field{Key: logging.FieldRiskScore, Value: riskScore},
			logging.Field{Key: logging.FieldRiskLevel, Value: riskLevel},
		).Debug("Transaction flagged")
	}

	return models.TransactionAnalysis{
		TransactionID:  txn.ID,
		RiskScore:      riskScore,
		RiskLevel:      riskLevel,
		Alerts:         alerts,
		Recommendation: recommendationForLevel(riskLevel),
	}
}

// AnalyzeAccount scores every transaction in the list and aggregates an
// account-level risk summary.
//
// The list must be ordered newest-first: each transaction is scored
// against the entries after it (its older history), so earlier entries see
// smaller histories. The detector never re-sorts the input.
func (d *Detector) AnalyzeAccount(transactions []models.Transaction, account models.Account) *models.FraudReport {
	if len(transactions) == 0 {
		return &models.FraudReport{
			OverallRisk:         models.RiskLow,
			OverallScore:        0,
			FlaggedTransactions: []models.TransactionAnalysis{},
			AllAnalyses:         []models.TransactionAnalysis{},
			Summary:             "No recent activity to analyze.",
		}
	}

	analyses := make([]models.TransactionAnalysis, len(transactions))
	scoreSum := 0
	for i, txn := range transactions {
		analyses[i] = d.AnalyzeTransaction(txn, transactions[i+1:], account)
		scoreSum += analyses[i].RiskScore
	}

	flagged := []models.TransactionAnalysis{}
	for _, analysis := range analyses {
		if analysis.RiskScore >= ThresholdMedium {
			flagged = append(flagged, analysis)
		}
	}

	overallScore := int(math.Round(float64(scoreSum) / float64(len(analyses))))

	overallRisk := models.RiskLow
	if overallScore >= 60 || len(flagged) >= 3 {
		overallRisk = models.RiskHigh
	} else if overallScore >= 30 || len(flagged) >= 1 {
		overallRisk = models.RiskMedium
	}

	summary := fmt.Sprintf("All %d transactions appear normal.", len(analyses))
	if len(flagged) > 0 {
		summary = fmt.Sprintf("%d suspicious transaction(s) detected out of %d analyzed.", len(flagged), len(analyses))
	}

	return &models.FraudReport{
		OverallRisk:         overallRisk,
		OverallScore:        overallScore,
		FlaggedTransactions: flagged,
		TotalAnalyzed:       len(analyses),
		FlaggedCount:        len(flagged),
		AllAnalyses:         analyses,
		Summary:             summary,
	}
}

func riskLevelForScore(score int) string {
	switch {
	case score >= ThresholdCritical:
		return models.RiskCritical
	case score >= ThresholdHigh:
		return models.RiskHigh
	case score >= ThresholdMedium:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

func recommendationForLevel(level string) string {
	switch level {
	case models.RiskCritical:
		return "Immediate review recommended. Consider freezing account."
	case models.RiskHigh:
		return "Manual verification suggested before processing."
	case models.RiskMedium:
		return "Monitor account for further unusual activity."
	default:
		return "Transaction appears normal."
	}
}
