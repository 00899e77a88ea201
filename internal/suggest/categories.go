// Package suggest derives category autocomplete suggestions from the current items.
package suggest

import (
	"strings"

	"inventory-manager/internal/domain"
)

// CategoryIndex is the distinct set of non-empty categories in first-seen order.
// Values differing only in case are kept as separate entries.
type CategoryIndex struct {
	categories []string
}

// NewCategoryIndex builds the index from items
func NewCategoryIndex(items []domain.Item) *CategoryIndex {
	seen := make(map[string]struct{}, len(items))
	categories := make([]string, 0, len(items))
	for _, item := range items {
		if item.Category == "" {
			continue
		}
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		categories = append(categories, item.Category)
	}
	return &CategoryIndex{categories: categories}
}

// All returns every distinct category
func (idx *CategoryIndex) All() []string {
	out := make([]string, len(idx.categories))
	copy(out, idx.categories)
	return out
}

// Filter returns the categories whose lowercase form contains the lowercase input.
// An empty input matches everything. The result is never nil.
func (idx *CategoryIndex) Filter(input string) []string {
	needle := strings.ToLower(input)
	out := make([]string, 0)
	for _, c := range idx.categories {
		if strings.Contains(strings.ToLower(c), needle) {
			out = append(out, c)
		}
	}
	return out
}
