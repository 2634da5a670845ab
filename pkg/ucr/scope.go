package ucr

import "strconv"

// Scope is the geographic or administrative granularity of a query.
type Scope int

const (
	// ScopeNation covers the whole country and needs no identifier.
	ScopeNation Scope = iota
	// ScopeRegion covers one census region, identified by a Region.
	ScopeRegion
	// ScopeState covers one state, identified by its two-letter abbreviation.
	ScopeState
	// ScopeAgency covers one reporting agency, identified by its ORI.
	ScopeAgency
)

// Scopes returns all recognized scopes from the largest to the smallest.
func Scopes() []Scope {
	return []Scope{ScopeNation, ScopeRegion, ScopeState, ScopeAgency}
}

// Valid reports whether s is one of the four recognized scopes.
func (s Scope) Valid() bool {
	return s >= ScopeNation && s <= ScopeAgency
}

// String implements fmt.Stringer.
func (s Scope) String() string {
	switch s {
	case ScopeNation:
		return "nation"
	case ScopeRegion:
		return "region"
	case ScopeState:
		return "state"
	case ScopeAgency:
		return "agency"
	default:
		return "scope(" + strconv.Itoa(int(s)) + ")"
	}
}
