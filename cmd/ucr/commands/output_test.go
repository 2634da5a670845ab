package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fivetwenty-io/ucr-client/internal/constants"
	"github.com/fivetwenty-io/ucr-client/pkg/ucr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const pagedStates = `{
	"pagination": {"count": 3, "page": 0, "pages": 2, "per_page": 2},
	"results": [
		{"state_abbr": "AK", "state_name": "Alaska", "region_code": 3},
		{"state_abbr": "AL", "state_name": "Alabama", "region_code": 2, "extra": {"a": true}}
	]
}`

func stateResult() *ucr.Result {
	return &ucr.Result{Path: "/states", StatusCode: 200, Body: json.RawMessage(pagedStates)}
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	t.Run("results array", func(t *testing.T) {
		t.Parallel()

		data, err := flatten([]byte(pagedStates))
		require.NoError(t, err)
		assert.Equal(t, []string{"extra", "region_code", "state_abbr", "state_name"}, data.Header)
		assert.Equal(t, [][]string{
			{constants.NotAvailable, "3", "AK", "Alaska"},
			{`{"a":true}`, "2", "AL", "Alabama"},
		}, data.Rows)
	})

	t.Run("object", func(t *testing.T) {
		t.Parallel()

		data, err := flatten([]byte(`{"region_name":"South","region_code":2,"note":null}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"Property", "Value"}, data.Header)
		assert.Equal(t, [][]string{
			{"note", constants.NotAvailable},
			{"region_code", "2"},
			{"region_name", "South"},
		}, data.Rows)
	})

	t.Run("array of scalars", func(t *testing.T) {
		t.Parallel()

		data, err := flatten([]byte(`["a", 1.5]`))
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"a"}, {"1.5"}}, data.Rows)
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()

		_, err := flatten([]byte("<html>"))
		require.Error(t, err)
	})
}

func TestRenderResult(t *testing.T) {
	t.Parallel()

	t.Run("json is indented", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		result := &ucr.Result{Body: json.RawMessage(`{"a":1}`)}
		require.NoError(t, renderResult(&out, result, constants.FormatJSON))
		assert.Equal(t, "{\n  \"a\": 1\n}\n", out.String())
	})

	t.Run("non-json body passes through", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		result := &ucr.Result{Body: json.RawMessage("plain text")}
		require.NoError(t, renderResult(&out, result, constants.FormatJSON))
		assert.Equal(t, "plain text", out.String())
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		require.NoError(t, renderResult(&out, stateResult(), constants.FormatYAML))

		var decoded map[string]interface{}
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
		assert.Contains(t, decoded, "results")
		assert.Contains(t, decoded, "pagination")
	})

	t.Run("table", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		require.NoError(t, renderResult(&out, stateResult(), constants.FormatTable))
		assert.Contains(t, out.String(), "Alaska")
		assert.Contains(t, out.String(), "Alabama")
		assert.Contains(t, out.String(), "Page 0 of 2 (3 results), next page: 1")
	})

	t.Run("empty table", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		result := &ucr.Result{Body: json.RawMessage(`{"results":[]}`)}
		require.NoError(t, renderResult(&out, result, constants.FormatTable))
		assert.Equal(t, "No results found\n", out.String())
	})

	t.Run("markdown", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		require.NoError(t, renderResult(&out, stateResult(), constants.FormatMarkdown))
		assert.Contains(t, out.String(), "## /states")
		assert.Contains(t, out.String(), "state_abbr")
		assert.Contains(t, out.String(), "| AK")
		assert.Contains(t, out.String(), "Page 0 of 2")
	})

	t.Run("unsupported format", func(t *testing.T) {
		t.Parallel()

		err := renderResult(&bytes.Buffer{}, stateResult(), "xml")
		require.ErrorIs(t, err, constants.ErrUnsupportedOutputFormat)
	})
}

func TestPaginationSummary(t *testing.T) {
	t.Parallel()

	assert.Empty(t, paginationSummary(&ucr.Result{Body: json.RawMessage(`{"a":1}`)}))
	assert.Equal(t, "Page 1 of 2 (3 results)", paginationSummary(&ucr.Result{
		Body: json.RawMessage(`{"pagination":{"count":3,"page":1,"pages":2,"per_page":2},"results":[]}`),
	}))
}

func TestUsageFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", usageFor(nil, 0))
	assert.Equal(t, "STATE [PAGE]", usageFor([]string{"state", "page"}, 1))
	assert.Equal(t, "[ORI]", usageFor([]string{"ori"}, 0))
}
