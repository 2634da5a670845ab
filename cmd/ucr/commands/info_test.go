package commands_test

import (
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/fivetwenty-io/ucr-client/cmd/ucr/commands"
	"github.com/fivetwenty-io/ucr-client/internal/constants"
	"github.com/fivetwenty-io/ucr-client/pkg/ucr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringsReader(s string) io.Reader {
	return strings.NewReader(s)
}

//nolint:paralleltest // Uses global viper state
func TestMethodsCommand(t *testing.T) {
	useViper(t, map[string]interface{}{commands.KeyOutput: constants.FormatJSON})

	out, err := executeCommand(t, []string{"methods", "--family", "crimes"}, commands.NewMethodsCommand())
	require.NoError(t, err)

	var methods []ucr.MethodInfo
	require.NoError(t, json.Unmarshal([]byte(out), &methods))
	require.Len(t, methods, 1)
	assert.Equal(t, "CrimesByORI", methods[0].Name)
	assert.Equal(t, 1, methods[0].MinArgs)
	assert.Equal(t, 2, methods[0].MaxArgs)

	useViper(t, map[string]interface{}{commands.KeyOutput: constants.FormatTable})

	out, err = executeCommand(t, []string{"methods"}, commands.NewMethodsCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "VictimsByRegion")
	assert.Contains(t, out, "1-2")
}

//nolint:paralleltest // Uses global viper state
func TestRegionsTableCommand(t *testing.T) {
	useViper(t, map[string]interface{}{commands.KeyOutput: constants.FormatJSON})

	out, err := executeCommand(t, []string{"regions-table"}, commands.NewRegionsTableCommand())
	require.NoError(t, err)

	var entries []ucr.RegionEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Equal(t, ucr.RegionTable(), entries)

	useViper(t, map[string]interface{}{commands.KeyOutput: constants.FormatMarkdown})

	out, err = executeCommand(t, []string{"regions-table"}, commands.NewRegionsTableCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "## Regions")
	assert.Contains(t, out, "Northeast")
}

//nolint:paralleltest // Uses global viper state
func TestVersionCommand(t *testing.T) {
	useViper(t, map[string]interface{}{commands.KeyOutput: constants.FormatJSON})

	out, err := executeCommand(t, []string{"version"}, commands.NewVersionCommand("1.2.3", "abc", "today"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"1.2.3","commit":"abc","built":"today"}`, out)
}
