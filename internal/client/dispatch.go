package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/ucr-client/pkg/ucr"
)

// Method families, also used as CLI command groups.
const (
	FamilyAgencies      = "agencies"
	FamilyStates        = "states"
	FamilyRegions       = "regions"
	FamilyPolice        = "police"
	FamilyVictims       = "victims"
	FamilyOffenders     = "offenders"
	FamilyCrimeCount    = "crime-count"
	FamilyCrimes        = "crimes"
	FamilyArson         = "arson"
	FamilyParticipation = "participation"
	FamilyEstimates     = "estimates"
)

// ScopeAll marks listing methods that take no scope identifier.
const ScopeAll = "all"

const (
	paramRegion         = "region"
	paramState          = "state"
	paramORI            = "ori"
	paramOffense        = "offense"
	paramClassification = "classification"
	paramPage           = "page"
)

type callFunc func(ctx context.Context, c *Client, args arguments) (*ucr.Result, error)

type method struct {
	info ucr.MethodInfo
	call callFunc
}

// arguments are positional string arguments; a missing one reads as "".
type arguments []string

func (a arguments) at(i int) string {
	if i < len(a) {
		return a[i]
	}

	return ""
}

func (a arguments) region(i int) ucr.Region {
	return ucr.ParseRegion(a.at(i))
}

func (a arguments) offense(i int) ucr.Offense {
	return ucr.Offense(a.at(i))
}

func (a arguments) classification(i int) ucr.Classification {
	return ucr.Classification(a.at(i))
}

// page parses a zero-based page number. An empty argument means no page.
func (a arguments) page(i int) (*ucr.QueryParams, error) {
	raw := strings.TrimSpace(a.at(i))
	if raw == "" {
		return nil, nil
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 0 {
		return nil, fmt.Errorf("%w: %q", ucr.ErrInvalidPage, raw)
	}

	return ucr.NewQueryParams().WithPage(page), nil
}

func newMethod(name, family, scope string, minArgs int, params []string, call callFunc) *method {
	if params == nil {
		params = []string{}
	}

	return &method{
		info: ucr.MethodInfo{
			Name:    name,
			Family:  family,
			Scope:   scope,
			Params:  params,
			MinArgs: minArgs,
			MaxArgs: len(params),
		},
		call: call,
	}
}

func exact(name, family, scope string, params []string, call callFunc) *method {
	return newMethod(name, family, scope, len(params), params, call)
}

var demographicParams = []string{paramOffense, paramClassification}

//nolint:funlen // The method table is one declaration.
func buildMethodTable() []*method {
	nation := ucr.ScopeNation.String()
	region := ucr.ScopeRegion.String()
	state := ucr.ScopeState.String()
	agency := ucr.ScopeAgency.String()

	return []*method{
		exact("Agencies", FamilyAgencies, ScopeAll, nil,
			func(ctx context.Context, c *Client, _ arguments) (*ucr.Result, error) {
				return c.Agencies(ctx)
			}),
		newMethod("AgenciesByState", FamilyAgencies, state, 1, []string{paramState, paramPage},
			func(ctx context.Context, c *Client, args arguments) (*ucr.Result, error) {
				params, err := args.page(1)
				if err != nil {
					return nil, err
				}

				return c.AgenciesByState(ctx, args.at(0), params)
			}),
		newMethod("AgencyByORI", FamilyAgencies, agency, 0, []string{paramORI},
			func(ctx context.Context, c *Client, args arguments) (*ucr.Result, error) {
				return c.AgencyByORI(ctx, args.at(0))
			}),

		newMethod("States", FamilyStates, ScopeAll, 0, []string{paramPage},
			func(ctx context.Context, c *Client, args arguments) (*ucr.Result, error) {
				params, err := args.page(0)
				if err != nil {
					return nil, err
				}

				return c.States(ctx, params)
			}),
		exact("StateByAbbreviation", FamilyStates, state, []string{paramState},
			func(ctx context.Context, c *Client, args arguments) (*ucr.Result, error) {
				return c.StateByAbbreviation(ctx, args.at(0))
			}),

		exact("Regions", FamilyRegions, ScopeAll, nil,
			func(ctx context.Context, c *Client, _ arguments) (*ucr.Result, error) {
				return c.Regions(ctx)
			}),
		exact("RegionByName", FamilyRegions, region, []string{paramRegion},
			func(ctx context.Context, c *Client, args arguments) (*ucr.Result, error) {
				return c.RegionByName(ctx, args.region(0))
			}),

		exact("PoliceByNation", FamilyPolice, nation, nil,
			func(ctx context.Context, c *Client, _ arguments) (*ucr.Result, error) {
				return c.PoliceByNation(ctx)
			}),
		exact("PoliceByRegion", FamilyPolice, region, []string{paramRegion},
			func(ctx context.Context, c *Client, args arguments) (*ucr.Result, error) {
				return c.PoliceByRegion(ctx, args.region(0))
			}),
		exact("PoliceByState", FamilyPolice, state, []string{paramState},
			func(ctx context.Context, c *Client, args arguments) (*ucr.Result, error) {
				return c.PoliceByState(ctx, args.at(0))
			}),
		exact("PoliceByORI", FamilyPolice, agency, []string{paramORI},
			func(ctx context.Context, c *Client, args arguments) (*ucr.Result, error) {
				return c.PoliceByORI(ctx, args.at(0))
			}),

		exact("VictimsByNation", FamilyVictims, nation, demographicParams,
			func(ctx context.Context, c *Client, args arguments) (*ucr.Result, error) {
				return c.VictimsByNation(ctx, args.offense(0), args.classification(1))
			}),
		exact("VictimsByRegion", FamilyVictims, region, withLeading(paramRegion, demographicParams),
			func(ctx context.Context, c *Client, args arguments) (*ucr.Result, error) {
				return c.VictimsByRegion(ctx, args.region(0), args.offense(1), args.classification(2))
			}),
		exact("VictimsByState", FamilyVictims, state, withLeading(paramState, demographicParams),
			func(ctx context.Context, c *Client, args arguments) (*ucr.Result, error) {
				return c.VictimsByState(ctx, args.at(0), args.offense(1), args.classification(2))
			}),
		exact("VictimsByORI", FamilyVictims, agency, withLeading(paramORI, demographicParams),
			func(ctx context.Context, c *Client, args arguments) (*ucr.Result, error) {
				return c.VictimsByORI(ctx, args.at(0), args.offense(1), args.classification(2))
			}),

		exact("OffendersByNation", FamilyOffenders, nation, demographicParams,
			func(ctx context.Context, c *Client, args arguments) (*ucr.Result, error) {
				return c.OffendersByNation(ctx, args.offense(0), args.classification(1))
			}),
		exact("OffendersByRegion", FamilyOffenders, region, withLeading(paramRegion, demographicParams),
			func(ctx context.Context, c *Client, args arguments) (*ucr.Result, error) {
				return c.OffendersByRegion(ctx, args.region(0), args.offense(1), args.classification(2))
			}),
		exact("OffendersByState", FamilyOffenders, state, withLeading(paramState, demographicParams),
			func(ctx context.Context, c *Client, args arguments) (*ucr.Result, error) {
				return c.OffendersByState(ctx, args.at(0), args.offense(1), args.classification(2))
			}),
		exact("OffendersByORI", FamilyOffenders, agency, withLeading(paramORI, demographicParams),
			func(ctx context.Context, c *Client, args arguments) (*ucr.Result, error) {
				return c.OffendersByORI(ctx, args.at(0), args.offense(1), args.classification(2))
			}),

		exact("CrimeCountByNation", FamilyCrimeCount, nation, []string{paramOffense},
			func(ctx context.Context, c *Client, args arguments) (*ucr.Result, error) {
				return c.CrimeCountByNation(ctx, args.offense(0))
			}),
		exact("CrimeCountByRegion", FamilyCrimeCount, region, []string{paramRegion, paramOffense},
			func(ctx context.Context, c *Client, args arguments) (*ucr.Result, error) {
				return c.CrimeCountByRegion(ctx, args.region(0), args.offense(1))
			}),
		exact("CrimeCountByState", FamilyCrimeCount, state, []string{paramState, paramOffense},
			func(ctx context.Context, c *Client, args arguments) (*ucr.Result, error) {
				return c.CrimeCountByState(ctx, args.at(0), args.offense(1))
			}),
		exact("CrimeCountByORI", FamilyCrimeCount, agency, []string{paramORI, paramOffense},
			func(ctx context.Context, c *Client, args arguments) (*ucr.Result, error) {
				return c.CrimeCountByORI(ctx, args.at(0), args.offense(1))
			}),
		newMethod("CrimesByORI", FamilyCrimes, agency, 1, []string{paramORI, paramOffense},
			func(ctx context.Context, c *Client, args arguments) (*ucr.Result, error) {
				return c.CrimesByORI(ctx, args.at(0), args.offense(1))
			}),

		exact("DetailedArsonStatsByNation", FamilyArson, nation, nil,
			func(ctx context.Context, c *Client, _ arguments) (*ucr.Result, error) {
				return c.DetailedArsonStatsByNation(ctx)
			}),
		exact("DetailedArsonStatsByRegion", FamilyArson, region, []string{paramRegion},
			func(ctx context.Context, c *Client, args arguments) (*ucr.Result, error) {
				return c.DetailedArsonStatsByRegion(ctx, args.region(0))
			}),
		exact("DetailedArsonStatsByState", FamilyArson, state, []string{paramState},
			func(ctx context.Context, c *Client, args arguments) (*ucr.Result, error) {
				return c.DetailedArsonStatsByState(ctx, args.at(0))
			}),

		exact("ParticipationByNation", FamilyParticipation, nation, nil,
			func(ctx context.Context, c *Client, _ arguments) (*ucr.Result, error) {
				return c.ParticipationByNation(ctx)
			}),
		exact("ParticipationByRegion", FamilyParticipation, region, []string{paramRegion},
			func(ctx context.Context, c *Client, args arguments) (*ucr.Result, error) {
				return c.ParticipationByRegion(ctx, args.region(0))
			}),
		exact("ParticipationByState", FamilyParticipation, state, []string{paramState},
			func(ctx context.Context, c *Client, args arguments) (*ucr.Result, error) {
				return c.ParticipationByState(ctx, args.at(0))
			}),
		exact("ParticipationByORI", FamilyParticipation, agency, []string{paramORI},
			func(ctx context.Context, c *Client, args arguments) (*ucr.Result, error) {
				return c.ParticipationByORI(ctx, args.at(0))
			}),

		exact("CrimeEstimatesByNation", FamilyEstimates, nation, nil,
			func(ctx context.Context, c *Client, _ arguments) (*ucr.Result, error) {
				return c.CrimeEstimatesByNation(ctx)
			}),
		exact("CrimeEstimatesByRegion", FamilyEstimates, region, []string{paramRegion},
			func(ctx context.Context, c *Client, args arguments) (*ucr.Result, error) {
				return c.CrimeEstimatesByRegion(ctx, args.region(0))
			}),
		exact("CrimeEstimatesByState", FamilyEstimates, state, []string{paramState},
			func(ctx context.Context, c *Client, args arguments) (*ucr.Result, error) {
				return c.CrimeEstimatesByState(ctx, args.at(0))
			}),
	}
}

func withLeading(first string, rest []string) []string {
	params := make([]string, 0, len(rest)+1)
	params = append(params, first)

	return append(params, rest...)
}

var (
	methodTable = buildMethodTable()
	methodIndex = indexMethods(methodTable)
)

// Method names are matched case-insensitively.
func indexMethods(methods []*method) map[string]*method {
	index := make(map[string]*method, len(methods))
	for _, m := range methods {
		index[strings.ToLower(m.info.Name)] = m
	}

	return index
}

// MethodTable describes every method reachable through Invoke, in a stable
// order. It needs no client, so command trees can be built before a key is
// configured.
func MethodTable() []ucr.MethodInfo {
	infos := make([]ucr.MethodInfo, len(methodTable))
	for i, m := range methodTable {
		infos[i] = m.info
		infos[i].Params = make([]string, len(m.info.Params))
		copy(infos[i].Params, m.info.Params)
	}

	return infos
}

// Methods implements ucr.DynamicClient.Methods.
func (c *Client) Methods() []ucr.MethodInfo {
	return MethodTable()
}

// Invoke implements ucr.DynamicClient.Invoke. With strict checking an
// argument count outside the method's arity fails before any request is
// built; otherwise missing arguments are empty and extra ones ignored.
func (c *Client) Invoke(ctx context.Context, name string, args ...string) (*ucr.Result, error) {
	m, ok := methodIndex[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ucr.ErrUnknownMethod, name)
	}

	if c.strict && (len(args) < m.info.MinArgs || len(args) > m.info.MaxArgs) {
		return nil, &ucr.ArgumentCountError{
			Method: m.info.Name,
			Min:    m.info.MinArgs,
			Max:    m.info.MaxArgs,
			Actual: len(args),
		}
	}

	if c.logger != nil && !c.strict && len(args) != m.info.MaxArgs {
		c.logger.Debug("Argument count differs from declared arity", map[string]interface{}{
			"method":   m.info.Name,
			"expected": m.info.MaxArgs,
			"actual":   len(args),
		})
	}

	if !c.strict && omitsRegion(m.info, len(args)) {
		ctx = withOmittedRegion(ctx)
	}

	return m.call(ctx, c, arguments(args))
}

// omitsRegion reports whether a call with count arguments leaves the region
// parameter out entirely.
func omitsRegion(info ucr.MethodInfo, count int) bool {
	for i, param := range info.Params {
		if param == paramRegion {
			return i >= count
		}
	}

	return false
}
