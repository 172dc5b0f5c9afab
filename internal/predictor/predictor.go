// Package predictor forecasts account spending by fitting a linear trend
// to daily expense totals and extrapolating it 30 days forward. A trailing
// moving average is reported alongside for display; it does not feed the
// forecast.
package predictor

import (
	"fmt"
	"sort"
	"time"

	"fjacquet/bank-insights/internal/logging"
	"fjacquet/bank-insights/internal/mathutil"
	"fjacquet/bank-insights/internal/models"
)

const (
	// ModelType names the forecasting scheme in report metadata.
	ModelType = "Linear Regression + Moving Average"
	// ModelVersion identifies the forecast model revision.
	ModelVersion = "1.0.0"

	// MinTransactions is the minimum input size for a forecast.
	MinTransactions = 3

	projectedDays    = 30
	movingAvgWindow  = 7
	trendSlopeBound  = 50.0
	insufficientData = "Need at least 3 transactions for predictions."
)

const dayFormat = "2006-01-02"

// Predictor produces spending forecasts. The clock is injectable so the
// 30-day projection window is reproducible in tests; it defaults to
// time.Now.
type Predictor struct {
	logger logging.Logger
	now    func() time.Time
}

// Option configures a Predictor.
type Option func(*Predictor)

// WithClock overrides the time source used to anchor future projections.
func WithClock(now func() time.Time) Option {
	return func(p *Predictor) {
		p.now = now
	}
}

// New creates a Predictor.
func New(logger logging.Logger, opts ...Option) *Predictor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	p := &Predictor{
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Predict builds a spending forecast from the transaction list. The caller
// must have normalized transfer direction so incoming transfers count as
// deposits. Fewer than MinTransactions yields hasEnoughData=false with no
// further computation.
func (p *Predictor) Predict(transactions []models.Transaction, account models.Account) *models.PredictionReport {
	if len(transactions) < MinTransactions {
		return &models.PredictionReport{
			HasEnoughData: false,
			Message:       insufficientData,
			Predictions:   nil,
		}
	}

	// Bucket amounts into per-day totals, UTC calendar days. Days without
	// activity of a kind are absent, not zero.
	dailyExpenses := make(map[string]float64)
	dailyIncome := make(map[string]float64)
	for _, txn := range transactions {
		day := txn.CreatedAt.UTC().Format(dayFormat)
		amount := txn.Amount.InexactFloat64()
		if txn.IsExpense() {
			dailyExpenses[day] += amount
		}
		if txn.IsIncome() {
			dailyIncome[day] += amount
		}
	}

	// Dense day index over days with expense activity, date ascending.
	expenseDays := sortedKeys(dailyExpenses)
	points := make([]Point, len(expenseDays))
	expenseValues := make([]float64, len(expenseDays))
	for i, day := range expenseDays {
		points[i] = Point{X: float64(i), Y: dailyExpenses[day]}
		expenseValues[i] = dailyExpenses[day]
	}

	regression := LinearRegression(points)

	avgDailyExpense := mathutil.Mean(expenseValues)
	avgDailyIncome := mathutil.Mean(values(dailyIncome))

	window := movingAvgWindow
	if len(expenseValues) < window {
		window = len(expenseValues)
	}
	ma7 := MovingAverage(expenseValues, window)

	// Extend the fitted line over the next 30 calendar days.
	now := p.now()
	lastX := float64(len(points) - 1)
	futureProjection := make([]models.ProjectedDay, 0, projectedDays)
	projectedMonthlySpend := 0.0
	for i := 1; i <= projectedDays; i++ {
		projected := regression.Slope*(lastX+float64(i)) + regression.Intercept
		if projected < 0 {
			projected = 0
		}
		projected = mathutil.Round2(projected)
		projectedMonthlySpend += projected
		futureProjection = append(futureProjection, models.ProjectedDay{
			Date:             now.UTC().AddDate(0, 0, i).Format(dayFormat),
			ProjectedExpense: projected,
		})
	}

	projectedMonthlySavings := avgDailyIncome*float64(projectedDays) - projectedMonthlySpend

	trend := "stable"
	if regression.Slope > trendSlopeBound {
		trend = "increasing"
	} else if regression.Slope < -trendSlopeBound {
		trend = "decreasing"
	}

	recommendations := buildRecommendations(trend, projectedMonthlySavings, avgDailyExpense, avgDailyIncome)

	p.logger.WithFields(
		logging.Field{Key: logging.FieldTrend, Value: trend},
		logging.Field{Key: logging.FieldCount, Value: len(points)},
	).Debug("Spending forecast generated")

	return &models.PredictionReport{
		HasEnoughData: true,
		Predictions: &models.Predictions{
			ProjectedMonthlySpend:   mathutil.Round2(projectedMonthlySpend),
			ProjectedMonthlySavings: mathutil.Round2(projectedMonthlySavings),
			AvgDailyExpense:         mathutil.Round2(avgDailyExpense),
			AvgDailyIncome:          mathutil.Round2(avgDailyIncome),
			Trend:                   trend,
			TrendConfidence:         regression.R2,
			MovingAverage7Day:       ma7,
			FutureProjection:        futureProjection,
			Recommendations:         recommendations,
		},
		Model: &models.PredictionModel{
			Type:       ModelType,
			Version:    ModelVersion,
			DataPoints: len(points),
			RSquared:   regression.R2,
		},
	}
}

// buildRecommendations applies the independent advice rules in fixed order.
// A projection can match several rules; only the savings-sign pair is
// mutually exclusive by construction.
func buildRecommendations(trend string, projectedSavings, avgDailyExpense, avgDailyIncome float64) []models.Recommendation {
	recommendations := []models.Recommendation{}
	if trend == "increasing" {
		recommendations = append(recommendations, models.Recommendation{
			Type:    "warning",
			Icon:    "📈",
			Message: "Your spending is trending upward. Consider setting a daily budget.",
		})
	}
	if projectedSavings < 0 {
		recommendations = append(recommendations, models.Recommendation{
			Type:    "alert",
			Icon:    "🚨",
			Message: "Projected expenses exceed income. Review your spending categories.",
		})
	} else if projectedSavings > 0 {
		recommendations = append(recommendations, models.Recommendation{
			Type:    "positive",
			Icon:    "✅",
			Message: fmt.Sprintf("You're on track to save approximately %.0f this month.", projectedSavings),
		})
	}
	if avgDailyExpense > avgDailyIncome && avgDailyIncome > 0 {
		recommendations = append(recommendations, models.Recommendation{
			Type:    "warning",
			Icon:    "⚠️",
			Message: "Daily expenses exceed daily income. Consider reducing discretionary spending.",
		})
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations, models.Recommendation{
			Type:    "positive",
			Icon:    "👍",
			Message: "Your spending patterns look healthy. Keep it up!",
		})
	}
	return recommendations
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func values(m map[string]float64) []float64 {
	vals := make([]float64, 0, len(m))
	for _, v := range m {
		vals = append(vals, v)
	}
	return vals
}
