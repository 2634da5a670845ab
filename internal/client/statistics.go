package client

import (
	"context"

	"github.com/fivetwenty-io/ucr-client/pkg/ucr"
)

// PoliceByNation implements ucr.PoliceEmploymentClient.PoliceByNation.
func (c *Client) PoliceByNation(ctx context.Context) (*ucr.Result, error) {
	return c.builder.Get(ctx, Spec{Resource: ResourcePoliceEmployment, Scope: ucr.ScopeNation})
}

// PoliceByRegion implements ucr.PoliceEmploymentClient.PoliceByRegion.
func (c *Client) PoliceByRegion(ctx context.Context, region ucr.Region) (*ucr.Result, error) {
	return c.regional(ctx, Spec{Resource: ResourcePoliceEmployment}, region)
}

// PoliceByState implements ucr.PoliceEmploymentClient.PoliceByState.
func (c *Client) PoliceByState(ctx context.Context, state string) (*ucr.Result, error) {
	return c.builder.Get(ctx, Spec{Resource: ResourcePoliceEmployment, Scope: ucr.ScopeState, ID: state})
}

// PoliceByORI implements ucr.PoliceEmploymentClient.PoliceByORI.
func (c *Client) PoliceByORI(ctx context.Context, ori string) (*ucr.Result, error) {
	return c.builder.Get(ctx, Spec{Resource: ResourcePoliceEmployment, Scope: ucr.ScopeAgency, ID: ori})
}

// DetailedArsonStatsByNation implements ucr.ArsonClient.DetailedArsonStatsByNation.
func (c *Client) DetailedArsonStatsByNation(ctx context.Context) (*ucr.Result, error) {
	return c.builder.Get(ctx, Spec{Resource: ResourceArson, Scope: ucr.ScopeNation})
}

// DetailedArsonStatsByRegion implements ucr.ArsonClient.DetailedArsonStatsByRegion.
func (c *Client) DetailedArsonStatsByRegion(ctx context.Context, region ucr.Region) (*ucr.Result, error) {
	return c.regional(ctx, Spec{Resource: ResourceArson}, region)
}

// DetailedArsonStatsByState implements ucr.ArsonClient.DetailedArsonStatsByState.
func (c *Client) DetailedArsonStatsByState(ctx context.Context, state string) (*ucr.Result, error) {
	return c.builder.Get(ctx, Spec{Resource: ResourceArson, Scope: ucr.ScopeState, ID: state})
}

// ParticipationByNation implements ucr.ParticipationClient.ParticipationByNation.
func (c *Client) ParticipationByNation(ctx context.Context) (*ucr.Result, error) {
	return c.builder.Get(ctx, Spec{Resource: ResourceParticipation, Scope: ucr.ScopeNation})
}

// ParticipationByRegion implements ucr.ParticipationClient.ParticipationByRegion.
func (c *Client) ParticipationByRegion(ctx context.Context, region ucr.Region) (*ucr.Result, error) {
	return c.regional(ctx, Spec{Resource: ResourceParticipation}, region)
}

// ParticipationByState implements ucr.ParticipationClient.ParticipationByState.
func (c *Client) ParticipationByState(ctx context.Context, state string) (*ucr.Result, error) {
	return c.builder.Get(ctx, Spec{Resource: ResourceParticipation, Scope: ucr.ScopeState, ID: state})
}

// ParticipationByORI implements ucr.ParticipationClient.ParticipationByORI.
func (c *Client) ParticipationByORI(ctx context.Context, ori string) (*ucr.Result, error) {
	return c.builder.Get(ctx, Spec{Resource: ResourceParticipation, Scope: ucr.ScopeAgency, ID: ori})
}

// CrimeEstimatesByNation implements ucr.EstimatesClient.CrimeEstimatesByNation.
func (c *Client) CrimeEstimatesByNation(ctx context.Context) (*ucr.Result, error) {
	return c.builder.Get(ctx, Spec{Resource: ResourceEstimates, Scope: ucr.ScopeNation})
}

// CrimeEstimatesByRegion implements ucr.EstimatesClient.CrimeEstimatesByRegion.
func (c *Client) CrimeEstimatesByRegion(ctx context.Context, region ucr.Region) (*ucr.Result, error) {
	return c.regional(ctx, Spec{Resource: ResourceEstimates}, region)
}

// CrimeEstimatesByState implements ucr.EstimatesClient.CrimeEstimatesByState.
func (c *Client) CrimeEstimatesByState(ctx context.Context, state string) (*ucr.Result, error) {
	return c.builder.Get(ctx, Spec{Resource: ResourceEstimates, Scope: ucr.ScopeState, ID: state})
}
