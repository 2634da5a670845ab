package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/ucr-client/internal/constants"
	"github.com/fivetwenty-io/ucr-client/internal/http"
	"github.com/fivetwenty-io/ucr-client/pkg/ucr"
)

// Spec describes one request before it is turned into a path.
type Spec struct {
	Resource       Resource
	Scope          ucr.Scope
	ID             string
	Offense        ucr.Offense
	Classification ucr.Classification
	Page           *int
}

// Builder assembles resource paths and performs the network call.
type Builder struct {
	httpClient *http.Client
	apiKey     string
}

// NewBuilder creates a request builder.
func NewBuilder(httpClient *http.Client, apiKey string) *Builder {
	return &Builder{
		httpClient: httpClient,
		apiKey:     apiKey,
	}
}

// Path builds the escaped resource path for spec: resource segments, scope
// segment, identifier, offense, classification. Empty segments are omitted;
// "." and ".." are rejected since escaping leaves them intact.
func (b *Builder) Path(spec Spec) (string, error) {
	def, ok := resourceDefs[spec.Resource]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownResource, spec.Resource)
	}

	if !spec.Scope.Valid() {
		return "", &ucr.InvalidScopeError{Scope: spec.Scope}
	}

	scopeSegment, supported := def.scopes[spec.Scope]
	if !supported {
		return "", &ucr.InvalidScopeError{Scope: spec.Scope, Resource: def.name}
	}

	segments := make([]string, 0, len(def.segments)+4)
	segments = append(segments, def.segments...)
	segments = append(segments, scopeSegment, spec.ID, string(spec.Offense), string(spec.Classification))

	var builder strings.Builder

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if segment == "." || segment == ".." {
			return "", fmt.Errorf("%w: %q", ucr.ErrDotSegment, segment)
		}

		builder.WriteByte('/')
		builder.WriteString(url.PathEscape(segment))
	}

	return builder.String(), nil
}

// Query builds the query string values for spec.
func (b *Builder) Query(spec Spec) url.Values {
	query := (&ucr.QueryParams{Page: spec.Page}).ToValues()
	query.Set(constants.QueryAPIKey, b.apiKey)

	return query
}

// Get builds the request for spec and issues it once.
func (b *Builder) Get(ctx context.Context, spec Spec) (*ucr.Result, error) {
	path, err := b.Path(spec)
	if err != nil {
		return nil, err
	}

	resp, err := b.httpClient.Get(ctx, path, b.Query(spec))
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", resourceDefs[spec.Resource].name, err)
	}

	return &ucr.Result{
		Path:       path,
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
	}, nil
}

// ConvertRegionNumberToName converts a numeric region code to its name.
func (b *Builder) ConvertRegionNumberToName(code int) (string, error) {
	name, err := ucr.RegionNameForCode(code)
	if err != nil {
		return "", fmt.Errorf("converting region: %w", err)
	}

	return name, nil
}

// ResolveRegion resolves a code or a name to the canonical region name.
func (b *Builder) ResolveRegion(region ucr.Region) (string, error) {
	if code, numeric := region.Code(); numeric {
		return b.ConvertRegionNumberToName(code)
	}

	name, err := region.Resolve()
	if err != nil {
		return "", fmt.Errorf("resolving region: %w", err)
	}

	return name, nil
}
