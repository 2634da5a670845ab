package client

import (
	"context"

	"github.com/fivetwenty-io/ucr-client/pkg/ucr"
)

// Victim and offender queries share one shape: scope, identifier, offense,
// classification.

// VictimsByNation implements ucr.VictimsClient.VictimsByNation.
func (c *Client) VictimsByNation(ctx context.Context, offense ucr.Offense, classification ucr.Classification) (*ucr.Result, error) {
	return c.builder.Get(ctx, demographicSpec(ResourceVictims, ucr.ScopeNation, "", offense, classification))
}

// VictimsByRegion implements ucr.VictimsClient.VictimsByRegion.
func (c *Client) VictimsByRegion(ctx context.Context, region ucr.Region, offense ucr.Offense, classification ucr.Classification) (*ucr.Result, error) {
	return c.regional(ctx, demographicSpec(ResourceVictims, ucr.ScopeRegion, "", offense, classification), region)
}

// VictimsByState implements ucr.VictimsClient.VictimsByState.
func (c *Client) VictimsByState(ctx context.Context, state string, offense ucr.Offense, classification ucr.Classification) (*ucr.Result, error) {
	return c.builder.Get(ctx, demographicSpec(ResourceVictims, ucr.ScopeState, state, offense, classification))
}

// VictimsByORI implements ucr.VictimsClient.VictimsByORI.
func (c *Client) VictimsByORI(ctx context.Context, ori string, offense ucr.Offense, classification ucr.Classification) (*ucr.Result, error) {
	return c.builder.Get(ctx, demographicSpec(ResourceVictims, ucr.ScopeAgency, ori, offense, classification))
}

// OffendersByNation implements ucr.OffendersClient.OffendersByNation.
func (c *Client) OffendersByNation(ctx context.Context, offense ucr.Offense, classification ucr.Classification) (*ucr.Result, error) {
	return c.builder.Get(ctx, demographicSpec(ResourceOffenders, ucr.ScopeNation, "", offense, classification))
}

// OffendersByRegion implements ucr.OffendersClient.OffendersByRegion.
func (c *Client) OffendersByRegion(ctx context.Context, region ucr.Region, offense ucr.Offense, classification ucr.Classification) (*ucr.Result, error) {
	return c.regional(ctx, demographicSpec(ResourceOffenders, ucr.ScopeRegion, "", offense, classification), region)
}

// OffendersByState implements ucr.OffendersClient.OffendersByState.
func (c *Client) OffendersByState(ctx context.Context, state string, offense ucr.Offense, classification ucr.Classification) (*ucr.Result, error) {
	return c.builder.Get(ctx, demographicSpec(ResourceOffenders, ucr.ScopeState, state, offense, classification))
}

// OffendersByORI implements ucr.OffendersClient.OffendersByORI.
func (c *Client) OffendersByORI(ctx context.Context, ori string, offense ucr.Offense, classification ucr.Classification) (*ucr.Result, error) {
	return c.builder.Get(ctx, demographicSpec(ResourceOffenders, ucr.ScopeAgency, ori, offense, classification))
}

func demographicSpec(resource Resource, scope ucr.Scope, id string, offense ucr.Offense, classification ucr.Classification) Spec {
	return Spec{
		Resource:       resource,
		Scope:          scope,
		ID:             id,
		Offense:        offense,
		Classification: classification,
	}
}
