package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/ucr-client/internal/constants"
	"github.com/fivetwenty-io/ucr-client/pkg/ucr"
	"github.com/nao1215/markdown"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// NewRegionsTableCommand creates the regions-table command. It works offline.
func NewRegionsTableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "regions-table",
		Short: "Show region codes and names",
		Long:  "Show the fixed census region table used to convert region codes to names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat()
			if err != nil {
				return err
			}

			entries := ucr.RegionTable()
			w := cmd.OutOrStdout()

			switch format {
			case constants.FormatJSON:
				encoder := json.NewEncoder(w)
				encoder.SetIndent("", "  ")

				return encoder.Encode(entries)
			case constants.FormatYAML:
				encoder := yaml.NewEncoder(w)
				encoder.SetIndent(constants.JSONIndentSize)

				err := encoder.Encode(entries)
				if err != nil {
					return fmt.Errorf("failed to encode regions as YAML: %w", err)
				}

				return encoder.Close()
			}

			caser := cases.Title(language.English)
			rows := make([][]string, len(entries))

			for i, entry := range entries {
				rows[i] = []string{strconv.Itoa(entry.Code), entry.Name, caser.String(entry.Name)}
			}

			header := []string{"Code", "Name", "Display Name"}

			if format == constants.FormatMarkdown {
				return markdown.NewMarkdown(w).
					H2("Regions").
					Table(markdown.TableSet{Header: header, Rows: rows}).
					Build()
			}

			table := tablewriter.NewWriter(w)
			table.Header(toCells(header)...)

			for _, row := range rows {
				_ = table.Append(toCells(row)...)
			}

			err = table.Render()
			if err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
