package ucr

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/ucr-client/internal/constants"
)

// QueryParams carries the optional query parameters of a request.
// A nil *QueryParams and a zero QueryParams are equivalent.
type QueryParams struct {
	// Page selects a zero-based results page. Nil omits the parameter.
	Page *int
}

// NewQueryParams creates empty query parameters.
func NewQueryParams() *QueryParams {
	return &QueryParams{}
}

// WithPage sets the page number.
func (q *QueryParams) WithPage(page int) *QueryParams {
	q.Page = &page

	return q
}

// ToValues converts the parameters to url.Values.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}
	if q == nil {
		return values
	}

	if q.Page != nil {
		values.Set(constants.QueryPage, strconv.Itoa(*q.Page))
	}

	return values
}

// Result is the remote response passed through unchanged.
type Result struct {
	// Path is the request path without the query string.
	Path       string          `json:"path"        yaml:"path"`
	StatusCode int             `json:"status_code" yaml:"status_code"`
	Body       json.RawMessage `json:"body"        yaml:"-"`
}

// Decode unmarshals the body into v.
func (r *Result) Decode(v interface{}) error {
	err := json.Unmarshal(r.Body, v)
	if err != nil {
		return fmt.Errorf("decoding result body: %w", err)
	}

	return nil
}

// Pagination is the pagination object returned with paged listings.
type Pagination struct {
	Count   int `json:"count"    yaml:"count"`
	Page    int `json:"page"     yaml:"page"`
	Pages   int `json:"pages"    yaml:"pages"`
	PerPage int `json:"per_page" yaml:"per_page"`
}

// Page is the envelope of a paged listing.
type Page[T any] struct {
	Pagination Pagination `json:"pagination" yaml:"pagination"`
	Results    []T        `json:"results"    yaml:"results"`
}

// HasNext reports whether another page follows this one.
func (p *Page[T]) HasNext() bool {
	return p.Pagination.Page+1 < p.Pagination.Pages
}

// DecodePage reads the pagination envelope from a result without altering it.
func DecodePage[T any](result *Result) (*Page[T], error) {
	var page Page[T]

	err := result.Decode(&page)
	if err != nil {
		return nil, err
	}

	return &page, nil
}
