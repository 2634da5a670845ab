package ucr

import (
	"context"
	"time"
)

// AgenciesClient provides access to agency listings.
type AgenciesClient interface {
	Agencies(ctx context.Context) (*Result, error)
	AgenciesByState(ctx context.Context, state string, params *QueryParams) (*Result, error)
	// AgencyByORI returns one agency, or every agency when ori is empty.
	AgencyByORI(ctx context.Context, ori string) (*Result, error)
}

// StatesClient provides access to state listings.
type StatesClient interface {
	States(ctx context.Context, params *QueryParams) (*Result, error)
	StateByAbbreviation(ctx context.Context, state string) (*Result, error)
}

// RegionsClient provides access to region listings.
type RegionsClient interface {
	Regions(ctx context.Context) (*Result, error)
	RegionByName(ctx context.Context, region Region) (*Result, error)
}

// PoliceEmploymentClient provides police employment statistics.
type PoliceEmploymentClient interface {
	PoliceByNation(ctx context.Context) (*Result, error)
	PoliceByRegion(ctx context.Context, region Region) (*Result, error)
	PoliceByState(ctx context.Context, state string) (*Result, error)
	PoliceByORI(ctx context.Context, ori string) (*Result, error)
}

// VictimsClient provides victim demographics for an offense.
type VictimsClient interface {
	VictimsByNation(ctx context.Context, offense Offense, classification Classification) (*Result, error)
	VictimsByRegion(ctx context.Context, region Region, offense Offense, classification Classification) (*Result, error)
	VictimsByState(ctx context.Context, state string, offense Offense, classification Classification) (*Result, error)
	VictimsByORI(ctx context.Context, ori string, offense Offense, classification Classification) (*Result, error)
}

// OffendersClient provides offender demographics for an offense.
type OffendersClient interface {
	OffendersByNation(ctx context.Context, offense Offense, classification Classification) (*Result, error)
	OffendersByRegion(ctx context.Context, region Region, offense Offense, classification Classification) (*Result, error)
	OffendersByState(ctx context.Context, state string, offense Offense, classification Classification) (*Result, error)
	OffendersByORI(ctx context.Context, ori string, offense Offense, classification Classification) (*Result, error)
}

// CrimeCountClient provides incident and offense counts.
type CrimeCountClient interface {
	CrimeCountByNation(ctx context.Context, offense Offense) (*Result, error)
	CrimeCountByRegion(ctx context.Context, region Region, offense Offense) (*Result, error)
	CrimeCountByState(ctx context.Context, state string, offense Offense) (*Result, error)
	CrimeCountByORI(ctx context.Context, ori string, offense Offense) (*Result, error)
	// CrimesByORI returns the detailed crime summary of an agency. An empty
	// offense selects AllOffenses.
	CrimesByORI(ctx context.Context, ori string, offense Offense) (*Result, error)
}

// ArsonClient provides detailed arson statistics.
type ArsonClient interface {
	DetailedArsonStatsByNation(ctx context.Context) (*Result, error)
	DetailedArsonStatsByRegion(ctx context.Context, region Region) (*Result, error)
	DetailedArsonStatsByState(ctx context.Context, state string) (*Result, error)
}

// ParticipationClient provides UCR participation statistics.
type ParticipationClient interface {
	ParticipationByNation(ctx context.Context) (*Result, error)
	ParticipationByRegion(ctx context.Context, region Region) (*Result, error)
	ParticipationByState(ctx context.Context, state string) (*Result, error)
	ParticipationByORI(ctx context.Context, ori string) (*Result, error)
}

// EstimatesClient provides crime estimates.
type EstimatesClient interface {
	CrimeEstimatesByNation(ctx context.Context) (*Result, error)
	CrimeEstimatesByRegion(ctx context.Context, region Region) (*Result, error)
	CrimeEstimatesByState(ctx context.Context, state string) (*Result, error)
}

// DynamicClient calls methods by name with positional string arguments.
// It is the boundary where argument counts are checked at runtime.
type DynamicClient interface {
	Invoke(ctx context.Context, method string, args ...string) (*Result, error)
	Methods() []MethodInfo
}

// Client exposes every query of the UCR API.
type Client interface {
	// Composite interfaces for related resource groups
	AgenciesClient
	StatesClient
	RegionsClient
	PoliceEmploymentClient
	VictimsClient
	OffendersClient
	CrimeCountClient
	ArsonClient
	ParticipationClient
	EstimatesClient
	DynamicClient
}

// MethodInfo describes one method reachable through DynamicClient.
type MethodInfo struct {
	Name   string   `json:"name"   yaml:"name"`
	Family string   `json:"family" yaml:"family"`
	Scope  string   `json:"scope"  yaml:"scope"`
	Params []string `json:"params" yaml:"params"`
	// MinArgs and MaxArgs differ only when trailing parameters are optional.
	MinArgs int `json:"min_args" yaml:"min_args"`
	MaxArgs int `json:"max_args" yaml:"max_args"`
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a ucr.Client.
//
// # Argument checking
//
// Methods called through Invoke are checked against their declared arity
// before any request is built. SkipArgumentChecks turns that check off:
// missing arguments are then treated as absent and the request is sent
// anyway. Typed methods are checked by the compiler and are unaffected.
//
// # Timeouts
//
// Per-request deadlines should be controlled via the context passed to client
// methods. HTTPTimeout bounds every request on top of that. Requests are
// attempted once; there is no retry.
type Config struct {
	// APIKey: api.data.gov key sent as the api_key query parameter. Required.
	APIKey string

	// SkipArgumentChecks disables the arity check of Invoke.
	SkipArgumentChecks bool

	// BaseURL: API root. Defaults to https://api.usa.gov/crime/fbi/sapi/api.
	// ucrclient.New trims a trailing slash and adds "https://" if no scheme
	// is present.
	BaseURL string
	// HTTPTimeout: overall timeout for one request. Defaults to 30s.
	HTTPTimeout time.Duration
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
}
