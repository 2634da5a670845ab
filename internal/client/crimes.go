package client

import (
	"context"

	"github.com/fivetwenty-io/ucr-client/pkg/ucr"
)

// CrimeCountByNation implements ucr.CrimeCountClient.CrimeCountByNation.
func (c *Client) CrimeCountByNation(ctx context.Context, offense ucr.Offense) (*ucr.Result, error) {
	return c.builder.Get(ctx, Spec{Resource: ResourceCrimeCount, Scope: ucr.ScopeNation, Offense: offense})
}

// CrimeCountByRegion implements ucr.CrimeCountClient.CrimeCountByRegion.
func (c *Client) CrimeCountByRegion(ctx context.Context, region ucr.Region, offense ucr.Offense) (*ucr.Result, error) {
	return c.regional(ctx, Spec{Resource: ResourceCrimeCount, Offense: offense}, region)
}

// CrimeCountByState implements ucr.CrimeCountClient.CrimeCountByState.
func (c *Client) CrimeCountByState(ctx context.Context, state string, offense ucr.Offense) (*ucr.Result, error) {
	return c.builder.Get(ctx, Spec{Resource: ResourceCrimeCount, Scope: ucr.ScopeState, ID: state, Offense: offense})
}

// CrimeCountByORI implements ucr.CrimeCountClient.CrimeCountByORI.
func (c *Client) CrimeCountByORI(ctx context.Context, ori string, offense ucr.Offense) (*ucr.Result, error) {
	return c.builder.Get(ctx, Spec{Resource: ResourceCrimeCount, Scope: ucr.ScopeAgency, ID: ori, Offense: offense})
}

// CrimesByORI implements ucr.CrimeCountClient.CrimesByORI.
func (c *Client) CrimesByORI(ctx context.Context, ori string, offense ucr.Offense) (*ucr.Result, error) {
	if offense == "" {
		offense = ucr.AllOffenses
	}

	return c.builder.Get(ctx, Spec{Resource: ResourceCrimeSummary, Scope: ucr.ScopeAgency, ID: ori, Offense: offense})
}
