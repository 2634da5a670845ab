package client

import (
	"context"

	"github.com/fivetwenty-io/ucr-client/pkg/ucr"
)

// Agencies implements ucr.AgenciesClient.Agencies.
func (c *Client) Agencies(ctx context.Context) (*ucr.Result, error) {
	return c.builder.Get(ctx, Spec{Resource: ResourceAgencies, Scope: ucr.ScopeNation})
}

// AgenciesByState implements ucr.AgenciesClient.AgenciesByState.
func (c *Client) AgenciesByState(ctx context.Context, state string, params *ucr.QueryParams) (*ucr.Result, error) {
	return c.builder.Get(ctx, Spec{
		Resource: ResourceAgencies,
		Scope:    ucr.ScopeState,
		ID:       state,
		Page:     pageOf(params),
	})
}

// AgencyByORI implements ucr.AgenciesClient.AgencyByORI.
func (c *Client) AgencyByORI(ctx context.Context, ori string) (*ucr.Result, error) {
	if ori == "" {
		return c.Agencies(ctx)
	}

	return c.builder.Get(ctx, Spec{Resource: ResourceAgencies, Scope: ucr.ScopeAgency, ID: ori})
}

// States implements ucr.StatesClient.States.
func (c *Client) States(ctx context.Context, params *ucr.QueryParams) (*ucr.Result, error) {
	return c.builder.Get(ctx, Spec{Resource: ResourceStates, Scope: ucr.ScopeNation, Page: pageOf(params)})
}

// StateByAbbreviation implements ucr.StatesClient.StateByAbbreviation.
func (c *Client) StateByAbbreviation(ctx context.Context, state string) (*ucr.Result, error) {
	return c.builder.Get(ctx, Spec{Resource: ResourceStates, Scope: ucr.ScopeState, ID: state})
}

// Regions implements ucr.RegionsClient.Regions.
func (c *Client) Regions(ctx context.Context) (*ucr.Result, error) {
	return c.builder.Get(ctx, Spec{Resource: ResourceRegions, Scope: ucr.ScopeNation})
}

// RegionByName implements ucr.RegionsClient.RegionByName.
func (c *Client) RegionByName(ctx context.Context, region ucr.Region) (*ucr.Result, error) {
	return c.regional(ctx, Spec{Resource: ResourceRegions}, region)
}

func pageOf(params *ucr.QueryParams) *int {
	if params == nil {
		return nil
	}

	return params.Page
}

// regional resolves region into spec.ID and issues the request with region
// scope. A zero region is left out of the path only when Invoke marked the
// argument as omitted.
func (c *Client) regional(ctx context.Context, spec Spec, region ucr.Region) (*ucr.Result, error) {
	spec.Scope = ucr.ScopeRegion

	if !region.IsZero() || !regionOmitted(ctx) {
		name, err := c.builder.ResolveRegion(region)
		if err != nil {
			return nil, err
		}

		spec.ID = name
	}

	return c.builder.Get(ctx, spec)
}

type omittedRegionKey struct{}

func withOmittedRegion(ctx context.Context) context.Context {
	return context.WithValue(ctx, omittedRegionKey{}, true)
}

func regionOmitted(ctx context.Context) bool {
	omitted, _ := ctx.Value(omittedRegionKey{}).(bool)

	return omitted
}
