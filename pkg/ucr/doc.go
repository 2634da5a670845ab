// Package ucr provides types, interfaces, and helpers for working with the FBI
// Uniform Crime Reporting (UCR) API published through api.data.gov.
//
// # Overview
//
// The ucr package defines the request-shape types (Scope, Region, Offense,
// Classification, QueryParams), the Result envelope returned by every call,
// the error taxonomy, and the Client interface exposing one method per
// logical query. A concrete implementation is provided by the ucrclient
// package, which validates the configuration and wires the transport. Most
// consumers should import ucrclient to construct a client and then call the
// methods exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/ucr-client/pkg/ucr"
//	  "github.com/fivetwenty-io/ucr-client/pkg/ucrclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := ucrclient.New(&ucr.Config{APIKey: "your-api-data-gov-key"})
//	  if err != nil { log.Fatal(err) }
//
//	  // Victims of robbery in the south region, broken down by age
//	  res, err := cli.VictimsByRegion(ctx, ucr.RegionCode(2), ucr.OffenseRobbery, ucr.ClassificationAge)
//	  if err != nil { log.Fatal(err) }
//	  _ = res.Body
//	}
//
// # Regions
//
// Regions can be given either by numeric code or by name. Both forms are
// resolved against a fixed table before a request is built:
//
//	ucr.RegionCode(2)        // south
//	ucr.RegionName("South")  // south
//	ucr.ParseRegion("3")     // west
//
// # Pagination
//
// Large result sets are split into zero-based pages. The client never walks
// pages on its own; pass QueryParams with a page to select one, and use
// DecodePage to read the pagination envelope from a Result.
//
// # Errors
//
// Input errors (ArgumentCountError, InvalidScopeError, UnknownRegionError)
// are returned before any network call. Network failures and non-success
// statuses are returned as TransportError. Helpers such as IsNotFound,
// IsUnauthorized, and IsRateLimited make it easy to branch on common cases.
package ucr
