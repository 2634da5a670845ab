package ucr

import (
	"strconv"
	"strings"
)

// Canonical region names as the API expects them in resource paths.
const (
	RegionNortheast = "northeast"
	RegionMidwest   = "midwest"
	RegionSouth     = "south"
	RegionWest      = "west"
)

// regionNames is indexed by region code.
var regionNames = [...]string{
	RegionNortheast,
	RegionMidwest,
	RegionSouth,
	RegionWest,
}

// RegionEntry pairs a numeric region code with its canonical name.
type RegionEntry struct {
	Code int    `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

// RegionTable returns the fixed code/name table ordered by code.
func RegionTable() []RegionEntry {
	entries := make([]RegionEntry, len(regionNames))
	for code, name := range regionNames {
		entries[code] = RegionEntry{Code: code, Name: name}
	}

	return entries
}

// RegionNameForCode converts a numeric region code to its canonical name.
func RegionNameForCode(code int) (string, error) {
	if code < 0 || code >= len(regionNames) {
		return "", &UnknownRegionError{Code: code, Numeric: true}
	}

	return regionNames[code], nil
}

// CanonicalRegionName matches name case-insensitively against the table.
func CanonicalRegionName(name string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, candidate := range regionNames {
		if candidate == normalized {
			return candidate, nil
		}
	}

	return "", &UnknownRegionError{Name: name}
}

// Region identifies a census region either by numeric code or by name.
// The zero value is an empty name and does not resolve.
type Region struct {
	code    int
	name    string
	numeric bool
}

// RegionCode builds a Region from its numeric code.
func RegionCode(code int) Region {
	return Region{code: code, numeric: true}
}

// RegionName builds a Region from its name.
func RegionName(name string) Region {
	return Region{name: name}
}

// ParseRegion builds a Region from user input: all-digit input is a code,
// anything else a name.
func ParseRegion(input string) Region {
	trimmed := strings.TrimSpace(input)
	if trimmed != "" {
		if code, err := strconv.Atoi(trimmed); err == nil {
			return RegionCode(code)
		}
	}

	return RegionName(trimmed)
}

// IsZero reports whether the region is an empty name.
func (r Region) IsZero() bool {
	return !r.numeric && r.name == ""
}

// Code returns the numeric code and true when the region was given as a code.
func (r Region) Code() (int, bool) {
	return r.code, r.numeric
}

// Resolve returns the canonical region name. Unknown codes and names,
// including an empty name, fail with UnknownRegionError.
func (r Region) Resolve() (string, error) {
	if r.numeric {
		return RegionNameForCode(r.code)
	}

	return CanonicalRegionName(r.name)
}

// String implements fmt.Stringer.
func (r Region) String() string {
	if r.numeric {
		return strconv.Itoa(r.code)
	}

	return r.name
}
