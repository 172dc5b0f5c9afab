// Package categorizer classifies transactions into spending categories
// using weighted keyword scoring over the transaction description.
//
// Scoring is deterministic: the category table is an ordered list, every
// keyword found as a substring of the lower-cased description contributes
// twice its length to that category's score, and the first category in
// table order keeps the lead on ties.
package categorizer

import (
	"sort"
	"strings"

	"fjacquet/bank-insights/internal/logging"
	"fjacquet/bank-insights/internal/mathutil"
	"fjacquet/bank-insights/internal/models"
	"fjacquet/bank-insights/internal/store"
)

const (
	// ModelVersion identifies the reference-table revision reported with
	// every batch result.
	ModelVersion = "1.0.0"
	// Algorithm is the human-readable name of the scoring scheme.
	Algorithm = "Weighted Keyword Scoring"

	depositConfidence  = 0.85
	noMatchConfidence  = 0.3
	maxConfidence      = 0.95
	baseConfidence     = 0.5
	confidencePerPoint = 0.05
	keywordScoreWeight = 2
)

// Result is the categorization outcome for a single transaction.
type Result struct {
	Category   string
	Confidence float64
	Icon       string
	Color      string
}

// Categorizer scores transactions against a fixed category table.
// Instances are safe for concurrent use; nothing is mutated after New.
type Categorizer struct {
	categories []models.CategoryConfig
	logger     logging.Logger
}

// New creates a Categorizer with the table served by the given store.
// A nil store uses the built-in reference table.
func New(categoryStore *store.CategoryStore, logger logging.Logger) (*Categorizer, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	var categories []models.CategoryConfig
	if categoryStore == nil {
		categories = store.DefaultCategories()
	} else {
		loaded, err := categoryStore.LoadCategories()
		if err != nil {
			return nil, err
		}
		categories = loaded
	}

	return &Categorizer{
		categories: categories,
		logger:     logger,
	}, nil
}

// CategorizeTransaction classifies a single transaction.
//
// Deposits are always income and short-circuit to "Salary & Income": their
// descriptions are never keyword-scored. Everything else is scored against
// the table; no keyword match at all falls back to "Other".
func (c *Categorizer) CategorizeTransaction(txn models.Transaction) Result {
	if txn.Type == models.TypeDeposit {
		if category, ok := c.lookup(models.CategorySalaryIncome); ok {
			return Result{
				Category:   category.Name,
				Confidence: depositConfidence,
				Icon:       category.Icon,
				Color:      category.Color,
			}
		}
		// Table override without an income category; keep the label stable.
		return Result{
			Category:   models.CategorySalaryIncome,
			Confidence: depositConfidence,
			Icon:       models.OtherIcon,
			Color:      models.OtherColor,
		}
	}

	description := strings.ToLower(txn.Description)

	bestCategory := models.CategoryOther
	bestScore := 0
	for _, category := range c.categories {
		score := 0
		for _, keyword := range category.Keywords {
			if strings.Contains(description, keyword) {
				// Longer keyword matches are weighted higher
				score += len(keyword) * keywordScoreWeight
			}
		}
		// Strict comparison: earlier table entries win ties.
		if score > bestScore {
			bestScore = score
			bestCategory = category.Name
		}
	}

	if bestScore == 0 {
		return Result{
			Category:   models.CategoryOther,
			Confidence: noMatchConfidence,
			Icon:       models.OtherIcon,
			Color:      models.OtherColor,
		}
	}

	confidence := baseConfidence + float64(bestScore)*confidencePerPoint
	if confidence > maxConfidence {
		confidence = maxConfidence
	}

	category, _ := c.lookup(bestCategory)
	c.logger.WithFields(
		logging.Field{Key: logging.FieldTransactionID, Value: txn.ID},
		logging.Field{Key: logging.FieldCategory, Value: bestCategory},
	).Debug("Transaction categorized")

	return Result{
		Category:   bestCategory,
		Confidence: mathutil.Round2(confidence),
		Icon:       category.Icon,
		Color:      category.Color,
	}
}

// CategorizeAll classifies a batch of transactions and aggregates the
// per-category spending distribution, sorted by summed amount descending.
func (c *Categorizer) CategorizeAll(transactions []models.Transaction) *models.CategorizationReport {
	categorized := make([]models.CategorizedTransaction, 0, len(transactions))
	for _, txn := range transactions {
		result := c.CategorizeTransaction(txn)
		categorized = append(categorized, models.CategorizedTransaction{
			TransactionID: txn.ID,
			Amount:        txn.Amount,
			Description:   txn.Description,
			Type:          txn.Type,
			Category:      result.Category,
			Confidence:    result.Confidence,
			Icon:          result.Icon,
			Color:         result.Color,
		})
	}

	// Group by category, preserving first-seen order for stable sorting.
	index := make(map[string]int)
	distribution := make([]models.CategoryDistribution, 0)
	for _, entry := range categorized {
		i, seen := index[entry.Category]
		if !seen {
			index[entry.Category] = len(distribution)
			distribution = append(distribution, models.CategoryDistribution{
				Category: entry.Category,
				Icon:     entry.Icon,
				Color:    entry.Color,
			})
			i = len(distribution) - 1
		}
		distribution[i].Total = distribution[i].Total.Add(entry.Amount)
		distribution[i].Count++
	}

	sort.SliceStable(distribution, func(i, j int) bool {
		return distribution[i].Total.GreaterThan(distribution[j].Total)
	})

	return &models.CategorizationReport{
		Transactions:     categorized,
		Distribution:     distribution,
		TotalCategorized: len(categorized),
		ModelVersion:     ModelVersion,
		Algorithm:        Algorithm,
	}
}

// Categories returns the table the categorizer was built with.
func (c *Categorizer) Categories() []models.CategoryConfig {
	categories := make([]models.CategoryConfig, len(c.categories))
	copy(categories, c.categories)
	return categories
}

func (c *Categorizer) lookup(name string) (models.CategoryConfig, bool) {
	for _, category := range c.categories {
		if category.Name == name {
			return category, true
		}
	}
	return models.CategoryConfig{}, false
}
