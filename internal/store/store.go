// Package store provides loading of category reference data.
//
// The category table ships as built-in immutable defaults and can be
// replaced wholesale by a YAML file of the same shape. The table is an
// ordered list: its order is the tie-break for keyword scoring and must
// survive every load path.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/bank-insights/internal/logging"
	"fjacquet/bank-insights/internal/models"

	"gopkg.in/yaml.v3"
)

// defaultCategories is the canonical category reference table. Order is
// load-bearing: when two categories tie on keyword score, the first one
// listed here wins.
var defaultCategories = []models.CategoryConfig{
	{
		Name:     "Food & Dining",
		Keywords: []string{"restaurant", "food", "pizza", "burger", "coffee", "cafe", "lunch", "dinner", "breakfast", "groceries", "swiggy", "zomato", "uber eats", "dining", "meal", "snack", "bakery", "deli"},
		Icon:     "🍽️",
		Color:    "#f97316",
	},
	{
		Name:     "Transport",
		Keywords: []string{"uber", "ola", "cab", "taxi", "fuel", "petrol", "diesel", "metro", "bus", "train", "flight", "airline", "parking", "toll", "transport", "ride", "travel"},
		Icon:     "🚗",
		Color:    "#3b82f6",
	},
	{
		Name:     "Shopping",
		Keywords: []string{"amazon", "flipkart", "myntra", "shop", "store", "mall", "purchase", "buy", "order", "electronics", "clothing", "fashion", "online", "retail"},
		Icon:     "🛍️",
		Color:    "#a855f7",
	},
	{
		Name:     "Bills & Utilities",
		Keywords: []string{"electricity", "water", "gas", "internet", "wifi", "broadband", "phone", "mobile", "recharge", "bill", "utility", "rent", "emi", "insurance", "premium", "subscription"},
		Icon:     "📄",
		Color:    "#ef4444",
	},
	{
		Name:     "Entertainment",
		Keywords: []string{"movie", "netflix", "spotify", "disney", "hotstar", "youtube", "game", "concert", "event", "ticket", "theatre", "music", "streaming", "entertainment"},
		Icon:     "🎬",
		Color:    "#ec4899",
	},
	{
		Name:     "Health",
		Keywords: []string{"hospital", "doctor", "medicine", "pharmacy", "medical", "clinic", "health", "gym", "fitness", "yoga", "dental", "eye", "lab", "test", "checkup"},
		Icon:     "🏥",
		Color:    "#10b981",
	},
	{
		Name:     "Education",
		Keywords: []string{"school", "college", "university", "course", "tutorial", "book", "tuition", "exam", "study", "education", "training", "udemy", "coursera", "certification"},
		Icon:     "📚",
		Color:    "#6366f1",
	},
	{
		Name:     models.CategorySalaryIncome,
		Keywords: []string{"salary", "income", "wage", "payment received", "credit", "bonus", "dividend", "interest", "refund", "cashback"},
		Icon:     "💰",
		Color:    "#22c55e",
	},
}

// CategoryStore manages loading of the category reference table.
type CategoryStore struct {
	// CategoriesFile is an optional YAML override; empty means built-in
	// defaults only.
	CategoriesFile string
	logger         logging.Logger
}

// NewCategoryStore creates a store for the category reference table.
// An empty categoriesFile serves the built-in defaults.
func NewCategoryStore(categoriesFile string, logger logging.Logger) *CategoryStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &CategoryStore{
		CategoriesFile: categoriesFile,
		logger:         logger,
	}
}

// DefaultCategories returns a copy of the built-in category table.
func DefaultCategories() []models.CategoryConfig {
	categories := make([]models.CategoryConfig, len(defaultCategories))
	copy(categories, defaultCategories)
	return categories
}

// LoadCategories returns the category table, preferring the YAML override
// file when one is configured and present.
func (s *CategoryStore) LoadCategories() ([]models.CategoryConfig, error) {
	if s.CategoriesFile == "" {
		return DefaultCategories(), nil
	}

	filePath, err := s.resolveConfigFile(s.CategoriesFile)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField("file", s.CategoriesFile).Warn("Categories file not found, using built-in table")
			return DefaultCategories(), nil
		}
		return nil, fmt.Errorf("error resolving categories file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading categories file %s: %w", filePath, err)
	}

	var config models.CategoriesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing categories file %s: %w", filePath, err)
	}

	if err := validateCategories(config.Categories); err != nil {
		return nil, fmt.Errorf("invalid categories file %s: %w", filePath, err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(config.Categories)},
	).Debug("Loaded category table from file")

	return config.Categories, nil
}

// SaveCategories writes a category table to the configured YAML file.
// Intended for exporting the built-in table as a starting point for edits.
func (s *CategoryStore) SaveCategories(categories []models.CategoryConfig) error {
	if s.CategoriesFile == "" {
		return fmt.Errorf("no categories file configured")
	}
	if err := validateCategories(categories); err != nil {
		return err
	}

	data, err := yaml.Marshal(models.CategoriesConfig{Categories: categories})
	if err != nil {
		return fmt.Errorf("error marshaling categories: %w", err)
	}

	if err := os.WriteFile(s.CategoriesFile, data, models.PermissionConfigFile); err != nil {
		return fmt.Errorf("error writing categories file %s: %w", s.CategoriesFile, err)
	}
	return nil
}

// validateCategories rejects tables that would break scoring: empty tables,
// unnamed categories, duplicate names, or categories without keywords.
func validateCategories(categories []models.CategoryConfig) error {
	if len(categories) == 0 {
		return fmt.Errorf("category table must not be empty")
	}
	seen := make(map[string]bool, len(categories))
	for i, category := range categories {
		if category.Name == "" {
			return fmt.Errorf("category %d has no name", i)
		}
		if seen[category.Name] {
			return fmt.Errorf("duplicate category name: %s", category.Name)
		}
		seen[category.Name] = true
		if len(category.Keywords) == 0 {
			return fmt.Errorf("category %s has no keywords", category.Name)
		}
	}
	return nil
}

// resolveConfigFile gets the full path to a config file, checking standard
// locations for relative paths.
func (s *CategoryStore) resolveConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err != nil {
			return "", err
		}
		return filename, nil
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "bank-insights", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	return "", os.ErrNotExist
}
