// Package ucrclient provides the entry point for constructing a client of
// the FBI Uniform Crime Reporting (UCR) API that implements the ucr.Client
// interface.
//
// It layers configuration defaults and the HTTP transport on top of the
// interfaces and types defined in the ucr package.
//
// Quick start
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
//
//	  cli, err := ucrclient.New(&ucr.Config{APIKey: "your-api.data.gov-key"})
//	  if err != nil { log.Fatal(err) }
//
//	  result, err := cli.CrimeEstimatesByState(ctx, "TX")
//	  if err != nil { log.Fatal(err) }
//	  _ = result.Body
//
//	  // Positional calls are checked against the method's arity.
//	  result, err = cli.Invoke(ctx, "VictimsByRegion", "2", "robbery", "age")
//	}
//
// # Argument checking
//
// NewWithAPIKey(key, false) and Config.SkipArgumentChecks turn off the arity
// check of Invoke. Missing arguments are then sent as absent path segments.
package ucrclient
