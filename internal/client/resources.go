package client

import (
	"errors"

	"github.com/fivetwenty-io/ucr-client/pkg/ucr"
)

// ErrUnknownResource is returned for a Resource missing from the table.
var ErrUnknownResource = errors.New("unknown resource")

// Resource names one family of API endpoints.
type Resource string

// Resource families.
const (
	ResourceAgencies         Resource = "agencies"
	ResourceStates           Resource = "states"
	ResourceRegions          Resource = "regions"
	ResourcePoliceEmployment Resource = "police-employment"
	ResourceVictims          Resource = "victims"
	ResourceOffenders        Resource = "offenders"
	ResourceCrimeCount       Resource = "crime-count"
	ResourceCrimeSummary     Resource = "crime-summary"
	ResourceArson            Resource = "arson"
	ResourceParticipation    Resource = "participation"
	ResourceEstimates        Resource = "estimates"
)

// Scope path segments shared by most resources.
const (
	segmentRegions  = "regions"
	segmentStates   = "states"
	segmentAgencies = "agencies"
)

type resourceDef struct {
	name     string
	segments []string
	// scopes maps every supported scope to its path segment; "" means the
	// scope contributes no segment.
	scopes map[ucr.Scope]string
}

// allScopes is the usual scope layout: nation has no segment.
func allScopes() map[ucr.Scope]string {
	return map[ucr.Scope]string{
		ucr.ScopeNation: "",
		ucr.ScopeRegion: segmentRegions,
		ucr.ScopeState:  segmentStates,
		ucr.ScopeAgency: segmentAgencies,
	}
}

func withoutAgency() map[ucr.Scope]string {
	scopes := allScopes()
	delete(scopes, ucr.ScopeAgency)

	return scopes
}

var resourceDefs = map[Resource]resourceDef{
	ResourceAgencies: {
		name:     "agencies",
		segments: []string{"agencies"},
		scopes: map[ucr.Scope]string{
			ucr.ScopeNation: "",
			ucr.ScopeState:  "byStateAbbr",
			ucr.ScopeAgency: "",
		},
	},
	ResourceStates: {
		name:     "states",
		segments: []string{"states"},
		scopes: map[ucr.Scope]string{
			ucr.ScopeNation: "",
			ucr.ScopeState:  "",
		},
	},
	ResourceRegions: {
		name:     "regions",
		segments: []string{"regions"},
		scopes: map[ucr.Scope]string{
			ucr.ScopeNation: "",
			ucr.ScopeRegion: "",
		},
	},
	ResourcePoliceEmployment: {
		name:     "police employment",
		segments: []string{"police-employment"},
		scopes:   allScopes(),
	},
	ResourceVictims: {
		name:     "victims",
		segments: []string{"victims"},
		scopes:   allScopes(),
	},
	ResourceOffenders: {
		name:     "offenders",
		segments: []string{"offenders"},
		scopes:   allScopes(),
	},
	ResourceCrimeCount: {
		name:     "crime count",
		segments: []string{"offenses", "count"},
		scopes:   allScopes(),
	},
	ResourceCrimeSummary: {
		name:     "crime summary",
		segments: []string{"summarized"},
		scopes: map[ucr.Scope]string{
			ucr.ScopeAgency: segmentAgencies,
		},
	},
	ResourceArson: {
		name:     "arson statistics",
		segments: []string{"arson"},
		scopes:   withoutAgency(),
	},
	ResourceParticipation: {
		name:     "participation",
		segments: []string{"participation"},
		scopes:   allScopes(),
	},
	ResourceEstimates: {
		name:     "estimates",
		segments: []string{"estimates"},
		scopes:   withoutAgency(),
	},
}

// Scopes returns the scopes a resource supports, in ucr.Scopes order.
func (r Resource) Scopes() []ucr.Scope {
	def, ok := resourceDefs[r]
	if !ok {
		return nil
	}

	var scopes []ucr.Scope

	for _, scope := range ucr.Scopes() {
		if _, supported := def.scopes[scope]; supported {
			scopes = append(scopes, scope)
		}
	}

	return scopes
}
