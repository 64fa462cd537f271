package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abhishek/learngrow/internal/api"
	"github.com/abhishek/learngrow/internal/completion"
	"github.com/abhishek/learngrow/internal/repository"
	"github.com/abhishek/learngrow/internal/repository/memory"
	"github.com/abhishek/learngrow/internal/service"
	"github.com/abhishek/learngrow/internal/testutil"
	"github.com/stretchr/testify/require"
)

// stubGateway returns a canned result or error without calling any provider.
type stubGateway struct {
	result *completion.Result
	err    error
}

func (g *stubGateway) Complete(_ context.Context, _ string) (*completion.Result, error) {
	return g.result, g.err
}

type testServer struct {
	*httptest.Server
	repos    *repository.Repositories
	services *service.Services
}

func newTestServer(t *testing.T, gateway completion.Gateway) *testServer {
	t.Helper()

	repos := memory.NewRepositories()
	cfg := testutil.TestConfig()
	services := service.NewServices(repos, gateway, cfg)
	server := httptest.NewServer(api.NewRouter(services, cfg))
	t.Cleanup(server.Close)

	return &testServer{Server: server, repos: repos, services: services}
}

func (ts *testServer) postJSON(t *testing.T, path string, body map[string]string) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+path, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}
