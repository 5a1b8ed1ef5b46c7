// Package catalog defines the domain types shared by the search, logging,
// and saved-query subsystems.
package catalog

import "strings"

// Filters is the single filter-set type used by search, search logging, and
// saved query templates so all three agree on field names and defaults.
type Filters struct {
	Group         string
	Model         string
	Type          string
	Country       string
	Query         string
	FavoritesOnly bool
}

// IsEmpty reports whether no filter field carries a value. Empty filter sets
// are not logged and cannot be saved as templates.
func (f Filters) IsEmpty() bool {
	return strings.TrimSpace(f.Group) == "" &&
		strings.TrimSpace(f.Model) == "" &&
		strings.TrimSpace(f.Type) == "" &&
		strings.TrimSpace(f.Country) == "" &&
		strings.TrimSpace(f.Query) == "" &&
		!f.FavoritesOnly
}

// Terms splits the free-text query on whitespace, discarding empty terms.
// Every returned term must match for a catalog row to qualify.
func (f Filters) Terms() []string {
	return strings.Fields(f.Query)
}
