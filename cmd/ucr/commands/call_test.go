package commands_test

import (
	"encoding/json"
	"testing"

	"github.com/fivetwenty-io/ucr-client/cmd/ucr/commands"
	"github.com/fivetwenty-io/ucr-client/internal/constants"
	"github.com/fivetwenty-io/ucr-client/pkg/ucr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCallCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewCallCommand()
	assert.Equal(t, "call METHOD [ARGS...]", cmd.Use)
	assert.Equal(t, "Call any API method by name", cmd.Short)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)
	assert.NotEmpty(t, cmd.Example)
}

//nolint:paralleltest // Uses global viper state
func TestCallCommand(t *testing.T) {
	server := newPathRecorder(t, `{"results":[{"region_name":"South"}]}`)

	t.Run("invokes method", func(t *testing.T) {
		useViper(t, map[string]interface{}{
			commands.KeyAPIKey:  "key",
			commands.KeyBaseURL: server.URL,
			commands.KeyStrict:  true,
			commands.KeyOutput:  constants.FormatJSON,
		})

		out, err := executeCommand(t, []string{"call", "RegionByName", "2"}, commands.NewCallCommand())
		require.NoError(t, err)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(out), &body))
		assert.Contains(t, body, "results")
		assert.Equal(t, "/regions/south", server.Paths()[len(server.Paths())-1])
	})

	t.Run("strict rejects wrong argument count", func(t *testing.T) {
		useViper(t, map[string]interface{}{
			commands.KeyAPIKey:  "key",
			commands.KeyBaseURL: server.URL,
			commands.KeyStrict:  true,
		})

		before := len(server.Paths())

		_, err := executeCommand(t, []string{"call", "VictimsByState", "TX"}, commands.NewCallCommand())
		require.ErrorIs(t, err, ucr.ErrArgumentCount)
		assert.Len(t, server.Paths(), before)
	})

	t.Run("lenient sends the request", func(t *testing.T) {
		useViper(t, map[string]interface{}{
			commands.KeyAPIKey:  "key",
			commands.KeyBaseURL: server.URL,
			commands.KeyStrict:  false,
			commands.KeyOutput:  constants.FormatJSON,
		})

		_, err := executeCommand(t, []string{"call", "VictimsByState", "TX"}, commands.NewCallCommand())
		require.NoError(t, err)
		assert.Equal(t, "/victims/states/TX", server.Paths()[len(server.Paths())-1])
	})

	t.Run("requires API key", func(t *testing.T) {
		useViper(t, map[string]interface{}{commands.KeyBaseURL: server.URL})

		_, err := executeCommand(t, []string{"call", "Regions"}, commands.NewCallCommand())
		require.ErrorIs(t, err, constants.ErrNoAPIKeyConfigured)
	})

	t.Run("rejects unsupported output", func(t *testing.T) {
		useViper(t, map[string]interface{}{
			commands.KeyAPIKey: "key",
			commands.KeyOutput: "xml",
		})

		_, err := executeCommand(t, []string{"call", "Regions"}, commands.NewCallCommand())
		require.ErrorIs(t, err, constants.ErrUnsupportedOutputFormat)
	})
}

//nolint:paralleltest // Uses global viper state
func TestResourceCommandExecution(t *testing.T) {
	server := newPathRecorder(t, `{"results":[]}`)

	useViper(t, map[string]interface{}{
		commands.KeyAPIKey:  "key",
		commands.KeyBaseURL: server.URL,
		commands.KeyStrict:  true,
		commands.KeyOutput:  constants.FormatTable,
	})

	tests := []struct {
		args []string
		path string
	}{
		{[]string{"victims", "region", "2", "robbery", "age"}, "/victims/regions/south/robbery/age"},
		{[]string{"crimes", "agency", "TX0010000"}, "/summarized/agencies/TX0010000/offenses"},
		{[]string{"agencies", "state", "TX", "1"}, "/agencies/byStateAbbr/TX"},
		{[]string{"estimates", "nation"}, "/estimates"},
		{[]string{"police", "region", "midwest"}, "/police-employment/regions/midwest"},
	}

	for _, tt := range tests {
		out, err := executeCommand(t, tt.args, commands.NewResourceCommands()...)
		require.NoError(t, err, tt.args)
		assert.Equal(t, "No results found\n", out)
		assert.Equal(t, tt.path, server.Paths()[len(server.Paths())-1])
	}

	_, err := executeCommand(t, []string{"regions", "region", "9"}, commands.NewResourceCommands()...)
	require.ErrorIs(t, err, ucr.ErrUnknownRegion)

	_, err = executeCommand(t, []string{"estimates", "state"}, commands.NewResourceCommands()...)
	require.ErrorIs(t, err, ucr.ErrArgumentCount)
}
