package ucr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryParams(t *testing.T) {
	t.Parallel()

	var nilParams *QueryParams
	assert.Empty(t, nilParams.ToValues())
	assert.Empty(t, NewQueryParams().ToValues())
	assert.Equal(t, "page=0", NewQueryParams().WithPage(0).ToValues().Encode())
	assert.Equal(t, "page=12", NewQueryParams().WithPage(12).ToValues().Encode())
}

func TestDecodePage(t *testing.T) {
	t.Parallel()

	body := `{
		"pagination": {"count": 51, "page": 0, "pages": 3, "per_page": 20},
		"results": [{"state_abbr": "AK"}, {"state_abbr": "AL"}]
	}`
	result := &Result{Path: "/states", StatusCode: 200, Body: json.RawMessage(body)}

	type state struct {
		Abbr string `json:"state_abbr"`
	}

	page, err := DecodePage[state](result)
	require.NoError(t, err)
	assert.Equal(t, 51, page.Pagination.Count)
	assert.Equal(t, 3, page.Pagination.Pages)
	assert.Len(t, page.Results, 2)
	assert.Equal(t, "AL", page.Results[1].Abbr)
	assert.True(t, page.HasNext())

	page.Pagination.Page = 2
	assert.False(t, page.HasNext())

	// The raw body is left untouched.
	assert.JSONEq(t, body, string(result.Body))
}

func TestResult_DecodeError(t *testing.T) {
	t.Parallel()

	result := &Result{Body: json.RawMessage("not json")}

	var v map[string]interface{}
	err := result.Decode(&v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding result body")
}
