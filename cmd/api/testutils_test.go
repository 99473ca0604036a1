package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mediaratings/proj/internal/api/tasks"
	"mediaratings/proj/internal/config"
	"mediaratings/proj/internal/lib/security"
	"mediaratings/proj/internal/services"
	"mediaratings/proj/internal/storage/memory"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func NewTestApplication(cfg *config.Config, t *testing.T) *Application {
	t.Helper()
	if cfg == nil {
		cfg = &config.Config{
			AppSecret: "test-secret",
			TokenTTL:  time.Hour,
			Storage:   config.Storage{Driver: config.StorageMemory},
			Workers:   config.Workers{Size: 4, QueueSize: 16},
		}
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	workers := tasks.New(log, cfg.Workers.Size, cfg.Workers.QueueSize)
	workers.Run()
	t.Cleanup(func() { workers.Shutdown(context.Background()) })
	tokens := security.NewTokenManager(cfg.AppSecret, cfg.TokenTTL)
	svc := services.New(log, services.MemoryStorage(memory.New()), tokens)
	return NewApplication(cfg, log, svc, workers)
}

type testServer struct {
	*httptest.Server
	t *testing.T
}

func newTestServer(t *testing.T, app *Application) *testServer {
	t.Helper()
	ts := httptest.NewServer(app.routes())
	t.Cleanup(ts.Close)
	return &testServer{Server: ts, t: t}
}

type testResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do sends body as JSON and decodes the response envelope. token may be
// empty for anonymous requests.
func (ts *testServer) do(method, path, token string, body any) (int, testResponse) {
	ts.t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(ts.t, err)
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(ts.t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := ts.Client().Do(req)
	require.NoError(ts.t, err)
	defer res.Body.Close()
	var out testResponse
	raw, err := io.ReadAll(res.Body)
	require.NoError(ts.t, err)
	if len(raw) > 0 {
		require.NoError(ts.t, json.Unmarshal(raw, &out), string(raw))
	}
	return res.StatusCode, out
}

// data decodes the envelope's data member key into dst.
func (r testResponse) data(t *testing.T, key string, dst any) {
	t.Helper()
	var data map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(r.Data, &data))
	raw, ok := data[key]
	require.True(t, ok, "missing data key %q in %s", key, string(r.Data))
	require.NoError(t, json.Unmarshal(raw, dst))
}

// signup registers username and returns an access token for it.
func (ts *testServer) signup(username string) string {
	ts.t.Helper()
	creds := map[string]string{"username": username, "password": "pa55word"}
	status, _ := ts.do(http.MethodPost, "/api/v1/users/register", "", creds)
	require.Equal(ts.t, http.StatusCreated, status)
	status, res := ts.do(http.MethodPost, "/api/v1/users/login", "", creds)
	require.Equal(ts.t, http.StatusOK, status)
	var tokens struct {
		AccessToken string `json:"access_token"`
	}
	res.data(ts.t, "tokens", &tokens)
	return tokens.AccessToken
}
