package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/ucr-client/internal/client"
	"github.com/fivetwenty-io/ucr-client/internal/constants"
	"github.com/fivetwenty-io/ucr-client/pkg/ucr"
	"github.com/nao1215/markdown"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewMethodsCommand creates the methods command.
func NewMethodsCommand() *cobra.Command {
	var family string

	cmd := &cobra.Command{
		Use:   "methods",
		Short: "List callable API methods",
		Long:  "List every method reachable through 'ucr call' with its arity and parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat()
			if err != nil {
				return err
			}

			methods := filterMethods(client.MethodTable(), family)

			return renderMethods(cmd.OutOrStdout(), methods, format)
		},
	}

	cmd.Flags().StringVar(&family, "family", "", "only list methods of this family (e.g. victims)")

	return cmd
}

func filterMethods(methods []ucr.MethodInfo, family string) []ucr.MethodInfo {
	if family == "" {
		return methods
	}

	var filtered []ucr.MethodInfo

	for _, info := range methods {
		if strings.EqualFold(info.Family, family) {
			filtered = append(filtered, info)
		}
	}

	return filtered
}

func arity(info ucr.MethodInfo) string {
	if info.MinArgs == info.MaxArgs {
		return strconv.Itoa(info.MaxArgs)
	}

	return fmt.Sprintf("%d-%d", info.MinArgs, info.MaxArgs)
}

func renderMethods(w io.Writer, methods []ucr.MethodInfo, format string) error {
	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(methods)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(constants.JSONIndentSize)

		err := encoder.Encode(methods)
		if err != nil {
			return fmt.Errorf("failed to encode methods as YAML: %w", err)
		}

		return encoder.Close()
	}

	header := []string{"Method", "Family", "Scope", "Arity", "Parameters"}
	rows := make([][]string, 0, len(methods))

	for _, info := range methods {
		rows = append(rows, []string{info.Name, info.Family, info.Scope, arity(info), usageFor(info.Params, info.MinArgs)})
	}

	if format == constants.FormatMarkdown {
		return markdown.NewMarkdown(w).
			H2("Methods").
			Table(markdown.TableSet{Header: header, Rows: rows}).
			Build()
	}

	table := tablewriter.NewWriter(w)
	table.Header(toCells(header)...)

	for _, row := range rows {
		_ = table.Append(toCells(row)...)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
