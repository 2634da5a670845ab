package client

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/fivetwenty-io/ucr-client/pkg/ucr"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-key"

// recordedRequest is what the test server saw for one request.
type recordedRequest struct {
	Path     string
	RawPath  string
	RawQuery string
}

// recordingServer answers every request with an empty result set and keeps
// a log of the requests it received.
type recordingServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
}

func newRecordingServer(t *testing.T) *recordingServer {
	t.Helper()

	rs := &recordingServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		rs.mu.Lock()
		rs.requests = append(rs.requests, recordedRequest{
			Path:     request.URL.Path,
			RawPath:  request.URL.EscapedPath(),
			RawQuery: request.URL.RawQuery,
		})
		rs.mu.Unlock()

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"pagination":{"count":0,"page":0,"pages":0,"per_page":0},"results":[]}`))
	}))
	t.Cleanup(rs.Close)

	return rs
}

func (rs *recordingServer) Requests() []recordedRequest {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	return append([]recordedRequest(nil), rs.requests...)
}

func (rs *recordingServer) Last(t *testing.T) recordedRequest {
	t.Helper()

	requests := rs.Requests()
	require.NotEmpty(t, requests, "expected at least one request")

	return requests[len(requests)-1]
}

// NewTestClient creates a client against baseURL with the test API key.
func NewTestClient(t *testing.T, baseURL string, strict bool) *Client {
	t.Helper()

	client, err := New(&ucr.Config{
		APIKey:             testAPIKey,
		BaseURL:            baseURL,
		SkipArgumentChecks: !strict,
	})
	require.NoError(t, err)

	return client
}
