package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategorizedTransaction is the per-transaction categorization result.
type CategorizedTransaction struct {
	TransactionID string          `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Type          string          `json:"type"`
	Category      string          `json:"category"`
	Confidence    float64         `json:"confidence"`
	Icon          string          `json:"icon"`
	Color         string          `json:"color"`
}

// CategoryDistribution is one bucket of the aggregated spending distribution.
type CategoryDistribution struct {
	Category string          `json:"category" csv:"category"`
	Total    decimal.Decimal `json:"total" csv:"total"`
	Count    int             `json:"count" csv:"count"`
	Icon     string          `json:"icon" csv:"icon"`
	Color    string          `json:"color" csv:"color"`
}

// CategorizationReport is the batch categorization output.
type CategorizationReport struct {
	Transactions     []CategorizedTransaction `json:"transactions"`
	Distribution     []CategoryDistribution   `json:"distribution"`
	TotalCategorized int                      `json:"totalCategorized"`
	ModelVersion     string                   `json:"modelVersion"`
	Algorithm        string                   `json:"algorithm"`
}

// Alert describes one fraud signal that fired for a transaction.
type Alert struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Icon     string `json:"icon"`
}

// TransactionAnalysis is the per-transaction fraud scoring result.
type TransactionAnalysis struct {
	TransactionID  string  `json:"transactionId"`
	RiskScore      int     `json:"riskScore"`
	RiskLevel      string  `json:"riskLevel"`
	Alerts         []Alert `json:"alerts"`
	Recommendation string  `json:"recommendation"`
}

// FraudReport is the account-level fraud analysis output.
type FraudReport struct {
	OverallRisk         string                `json:"overallRisk"`
	OverallScore        int                   `json:"overallScore"`
	FlaggedTransactions []TransactionAnalysis `json:"flaggedTransactions"`
	TotalAnalyzed       int                   `json:"totalAnalyzed"`
	FlaggedCount        int                   `json:"flaggedCount"`
	AllAnalyses         []TransactionAnalysis `json:"allAnalyses"`
	Summary             string                `json:"summary"`
}

// ProjectedDay is one entry of the 30-day expense forecast.
type ProjectedDay struct {
	Date             string  `json:"date"`
	ProjectedExpense float64 `json:"projectedExpense"`
}

// Recommendation is a tagged budget advice message.
type Recommendation struct {
	Type    string `json:"type"`
	Icon    string `json:"icon"`
	Message string `json:"message"`
}

// Predictions carries the forecast values when enough data exists.
type Predictions struct {
	ProjectedMonthlySpend   float64          `json:"projectedMonthlySpend"`
	ProjectedMonthlySavings float64          `json:"projectedMonthlySavings"`
	AvgDailyExpense         float64          `json:"avgDailyExpense"`
	AvgDailyIncome          float64          `json:"avgDailyIncome"`
	Trend                   string           `json:"trend"`
	TrendConfidence         float64          `json:"trendConfidence"`
	MovingAverage7Day       []float64        `json:"movingAverage7Day"`
	FutureProjection        []ProjectedDay   `json:"futureProjection"`
	Recommendations         []Recommendation `json:"recommendations"`
}

// PredictionModel describes the fitted model alongside the predictions.
type PredictionModel struct {
	Type       string  `json:"type"`
	Version    string  `json:"version"`
	DataPoints int     `json:"dataPoints"`
	RSquared   float64 `json:"rSquared"`
}

// PredictionReport is the spending forecast output.
type PredictionReport struct {
	HasEnoughData bool             `json:"hasEnoughData"`
	Message       string           `json:"message,omitempty"`
	Predictions   *Predictions     `json:"predictions"`
	Model         *PredictionModel `json:"model,omitempty"`
}

// InsightsReport merges the three analytics reports produced from one
// transaction fetch.
type InsightsReport struct {
	ReportID       string                `json:"reportId"`
	Categorization *CategorizationReport `json:"categorization"`
	FraudAnalysis  *FraudReport          `json:"fraudAnalysis"`
	Predictions    *PredictionReport     `json:"predictions"`
	GeneratedAt    time.Time             `json:"generatedAt"`
}
