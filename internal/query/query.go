// Package query derives the filtered, sorted view of the inventory presented
// to clients. It never mutates the underlying list.
package query

import (
	"sort"
	"strings"

	"github.com/shelfwise/inventory-api/internal/models"
)

// Direction orders a sorted view.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Sortable columns.
const (
	ColumnBarcode  = "barcode"
	ColumnName     = "name"
	ColumnCategory = "category"
	ColumnQuantity = "quantity"
	ColumnPrice    = "price"
)

// Sort names the column and direction of the current view. A zero Sort (empty
// column) means unsorted: the view keeps insertion order.
type Sort struct {
	Column    string
	Direction Direction
}

// ValidColumn reports whether column can be sorted on.
func ValidColumn(column string) bool {
	switch column {
	case ColumnBarcode, ColumnName, ColumnCategory, ColumnQuantity, ColumnPrice:
		return true
	}
	return false
}

// Next returns the sort state after the user selects column: re-selecting the
// active column toggles direction, choosing a new column resets to ascending.
// The HTTP surface is stateless, so this transition runs on whichever side
// holds the current sort state: dashboard clients apply it on each header
// activation and send the result as the sort/dir query parameters.
func (s Sort) Next(column string) Sort {
	if s.Column == column {
		dir := Ascending
		if s.Direction == Ascending {
			dir = Descending
		}
		return Sort{Column: column, Direction: dir}
	}
	return Sort{Column: column, Direction: Ascending}
}

// View returns the products whose name contains searchTerm case-insensitively
// (empty term matches all) and whose category equals categoryFilter exactly
// (empty filter matches all), ordered by srt. The sort is stable: ties keep
// their original relative order. The input slice is not modified; an empty
// result is a valid outcome.
func View(records []models.Product, searchTerm, categoryFilter string, srt Sort) []models.Product {
	term := strings.ToLower(searchTerm)

	out := make([]models.Product, 0, len(records))
	for _, p := range records {
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		if categoryFilter != "" && p.Category != categoryFilter {
			continue
		}
		out = append(out, p)
	}

	if srt.Column == "" {
		return out
	}

	desc := srt.Direction == Descending
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return lessByColumn(out[j], out[i], srt.Column)
		}
		return lessByColumn(out[i], out[j], srt.Column)
	})
	return out
}

// lessByColumn compares two products on the named column: strings
// case-insensitively, numerics numerically.
func lessByColumn(a, b models.Product, column string) bool {
	switch column {
	case ColumnBarcode:
		return strings.ToLower(a.Barcode) < strings.ToLower(b.Barcode)
	case ColumnName:
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	case ColumnCategory:
		return strings.ToLower(a.Category) < strings.ToLower(b.Category)
	case ColumnQuantity:
		return a.Quantity < b.Quantity
	case ColumnPrice:
		return a.Price < b.Price
	}
	return false
}
