// Package sorting orders item collections by name or category with a
// three-state toggle per field.
package sorting

import (
	"sort"
	"strings"

	"inventory-manager/internal/domain"
)

// Field is a sortable item column
type Field string

const (
	FieldNone     Field = ""
	FieldName     Field = "name"
	FieldCategory Field = "category"
)

// ParseField validates a field name coming from the UI
func ParseField(s string) (Field, bool) {
	switch Field(strings.ToLower(strings.TrimSpace(s))) {
	case FieldName:
		return FieldName, true
	case FieldCategory:
		return FieldCategory, true
	}
	return FieldNone, false
}

// Direction is the current sort direction
type Direction string

const (
	Unsorted   Direction = "none"
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// State is the user's chosen field and direction
type State struct {
	Field     Field     `json:"field"`
	Direction Direction `json:"direction"`
}

// Toggle advances the state for field: unsorted -> asc -> desc -> unsorted.
// Choosing a different field starts over at ascending on that field.
func (s State) Toggle(field Field) State {
	if field != s.Field || s.Direction == Unsorted {
		return State{Field: field, Direction: Ascending}
	}
	switch s.Direction {
	case Ascending:
		return State{Field: field, Direction: Descending}
	default:
		return State{Field: FieldNone, Direction: Unsorted}
	}
}

// Active reports whether the state orders anything
func (s State) Active() bool {
	return s.Field != FieldNone && s.Direction != Unsorted
}

func key(item domain.Item, field Field) string {
	if field == FieldCategory {
		return strings.ToLower(item.Category)
	}
	return strings.ToLower(item.Name)
}

// SortItems returns a new slice ordered by state. Equal keys keep their input
// order and the input slice is never modified.
func SortItems(items []domain.Item, state State) []domain.Item {
	out := make([]domain.Item, len(items))
	copy(out, items)
	if !state.Active() {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := key(out[i], state.Field), key(out[j], state.Field)
		if state.Direction == Descending {
			return a > b
		}
		return a < b
	})
	return out
}
