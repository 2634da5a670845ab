package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewCallCommand creates the call command, which invokes any method by name.
func NewCallCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "call METHOD [ARGS...]",
		Short: "Call any API method by name",
		Long: `Call any API method by name with positional arguments.

Argument counts are checked against the method's declared arity unless
--strict=false is given, in which case missing arguments are sent as absent
path segments. Run 'ucr methods' to list methods and their parameters.`,
		Example: `  ucr call VictimsByRegion 2 robbery age
  ucr call CrimesByORI TX0010000
  ucr call --strict=false PoliceByState`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return ErrMethodRequired
			}

			return runInvoke(cmd, args[0], args[1:])
		},
	}
}

// runInvoke calls method through the dynamic boundary and renders the result.
func runInvoke(cmd *cobra.Command, method string, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	client, err := CreateClient(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := client.Invoke(ctx, method, args...)
	if err != nil {
		return fmt.Errorf("%s failed: %w", method, err)
	}

	return renderResult(cmd.OutOrStdout(), result, format)
}
