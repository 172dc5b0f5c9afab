package models

// CategoryConfig represents one category entry in the reference table.
// The table is an ordered list, not a map: when two categories tie on
// keyword score, the one listed first wins, so iteration order is part
// of the observable behavior.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
	Icon     string   `yaml:"icon"`
	Color    string   `yaml:"color"`
}

// CategoriesConfig represents the structure of the categories YAML file.
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}
