package commands

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/ucr-client/internal/client"
	"github.com/fivetwenty-io/ucr-client/pkg/ucr"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// resourceGroup describes one command group over a method family.
type resourceGroup struct {
	family  string
	aliases []string
	short   string
	long    string
}

var resourceGroups = []resourceGroup{
	{
		family:  client.FamilyAgencies,
		aliases: []string{"agency"},
		short:   "Query reporting agencies",
		long:    "List law enforcement agencies nationwide or by state, or look one up by ORI",
	},
	{
		family:  client.FamilyStates,
		aliases: []string{"state"},
		short:   "Query states",
		long:    "List states or look one up by its two-letter abbreviation",
	},
	{
		family:  client.FamilyRegions,
		aliases: []string{"region"},
		short:   "Query census regions",
		long:    "List census regions or look one up by code (0-3) or name",
	},
	{
		family:  client.FamilyPolice,
		aliases: []string{"police-employment"},
		short:   "Query police employment statistics",
		long:    "Police employment statistics for the nation, a region, a state or an agency",
	},
	{
		family: client.FamilyVictims,
		short:  "Query victim demographics",
		long:   "Victim demographics for an offense, broken down by a classification (age, count, ethnicity, race, sex)",
	},
	{
		family: client.FamilyOffenders,
		short:  "Query offender demographics",
		long:   "Offender demographics for an offense, broken down by a classification (age, count, ethnicity, race, sex)",
	},
	{
		family:  client.FamilyCrimeCount,
		aliases: []string{"count"},
		short:   "Query offense counts",
		long:    "Incident and offense counts for an offense",
	},
	{
		family:  client.FamilyCrimes,
		aliases: []string{"summary"},
		short:   "Query agency crime summaries",
		long:    "Detailed crime summary of an agency; without an offense every offense is returned",
	},
	{
		family: client.FamilyArson,
		short:  "Query detailed arson statistics",
		long:   "Detailed arson statistics for the nation, a region or a state",
	},
	{
		family: client.FamilyParticipation,
		short:  "Query UCR participation",
		long:   "UCR program participation for the nation, a region, a state or an agency",
	},
	{
		family:  client.FamilyEstimates,
		aliases: []string{"estimate"},
		short:   "Query crime estimates",
		long:    "Crime estimates for the nation, a region or a state",
	},
}

// NewResourceCommands creates one command group per method family, with a
// subcommand per method.
func NewResourceCommands() []*cobra.Command {
	byFamily := map[string][]ucr.MethodInfo{}
	for _, info := range client.MethodTable() {
		byFamily[info.Family] = append(byFamily[info.Family], info)
	}

	commands := make([]*cobra.Command, 0, len(resourceGroups))

	for _, group := range resourceGroups {
		cmd := &cobra.Command{
			Use:     group.family,
			Aliases: group.aliases,
			Short:   group.short,
			Long:    group.long,
		}

		for _, info := range byFamily[group.family] {
			cmd.AddCommand(newMethodCommand(info))
		}

		commands = append(commands, cmd)
	}

	return commands
}

// newMethodCommand creates the subcommand for one method. Arguments are not
// checked by cobra; Invoke applies the strict or lenient arity rules.
func newMethodCommand(info ucr.MethodInfo) *cobra.Command {
	use := info.Scope
	if params := usageFor(info.Params, info.MinArgs); params != "" {
		use += " " + params
	}

	return &cobra.Command{
		Use:   use,
		Short: methodShort(info),
		Long:  fmt.Sprintf("Calls %s. %s", info.Name, paramHelp(info.Params)),
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInvoke(cmd, info.Name, args)
		},
	}
}

func methodShort(info ucr.MethodInfo) string {
	switch info.Scope {
	case ucr.ScopeNation.String():
		return "Nationwide " + info.Family
	case client.ScopeAll:
		return "List all " + info.Family
	default:
		return fmt.Sprintf("%s by %s", cases.Title(language.English).String(info.Family), info.Scope)
	}
}

func paramHelp(params []string) string {
	if len(params) == 0 {
		return "It takes no arguments."
	}

	var notes []string

	for _, param := range params {
		switch param {
		case "region":
			notes = append(notes, "REGION is a code (0 northeast, 1 midwest, 2 south, 3 west) or a name")
		case "state":
			notes = append(notes, "STATE is a two-letter abbreviation")
		case "ori":
			notes = append(notes, "ORI is the agency's Originating Agency Identifier")
		case "offense":
			notes = append(notes, "OFFENSE is one of "+joinOffenses())
		case "classification":
			notes = append(notes, "CLASSIFICATION is one of "+joinClassifications())
		case "page":
			notes = append(notes, "PAGE is a zero-based page number")
		}
	}

	return strings.Join(notes, ". ") + "."
}

func joinOffenses() string {
	offenses := ucr.Offenses()
	names := make([]string, len(offenses))

	for i, offense := range offenses {
		names[i] = string(offense)
	}

	return strings.Join(names, ", ")
}

func joinClassifications() string {
	classifications := ucr.Classifications()
	names := make([]string, len(classifications))

	for i, classification := range classifications {
		names[i] = string(classification)
	}

	return strings.Join(names, ", ")
}
