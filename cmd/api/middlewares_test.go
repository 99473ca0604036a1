package main

import (
	"context"
	"mediaratings/proj/internal/domain/models"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequiredAuthenticatedUser(t *testing.T) {
	app := NewTestApplication(nil, t)
	t.Run("authenticated", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request = request.WithContext(context.WithValue(request.Context(), CtxKeyUser, &models.User{
			ID:       uuid.New(),
			Username: "test",
		}))
		app.requireAuthenticatedUser(okHandler()).ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
	t.Run("anonymous", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request = request.WithContext(context.WithValue(request.Context(), CtxKeyUser, models.AnonymousUser))
		app.requireAuthenticatedUser(okHandler()).ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
	t.Run("no user in context", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		app.requireAuthenticatedUser(okHandler()).ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestAuthenticate(t *testing.T) {
	app := NewTestApplication(nil, t)
	ctx := context.Background()
	_, err := app.services.Auth.Register(ctx, "alice", "pa55word")
	require.NoError(t, err)
	tokens, err := app.services.Auth.Login(ctx, "alice", "pa55word")
	require.NoError(t, err)

	var seen *models.User
	capture := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = app.contextGetUser(r)
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUser   string
	}{
		{"no header", "", http.StatusOK, ""},
		{"valid token", "Bearer " + tokens.AccessToken, http.StatusOK, "alice"},
		{"malformed header", "Token abc", http.StatusUnauthorized, ""},
		{"bad token", "Bearer abc", http.StatusUnauthorized, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = nil
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			app.Authenticate(capture).ServeHTTP(recorder, request)
			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Nil(t, seen)
				return
			}
			require.NotNil(t, seen)
			assert.Equal(t, tt.wantUser, seen.Username)
			assert.Equal(t, tt.wantUser == "", seen.IsAnonymous())
		})
	}
}

func TestRecoverer(t *testing.T) {
	app := NewTestApplication(nil, t)
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	app.Recoverer(panicking).ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestDispatchToWorkers(t *testing.T) {
	app := NewTestApplication(nil, t)

	t.Run("served", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		app.dispatchToWorkers(okHandler()).ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
	t.Run("context ended before dispatch", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
		served := false
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { served = true })
		// occupy every worker so the request has to queue
		release := make(chan struct{})
		for i := 0; i < app.cfg.Workers.Size; i++ {
			go app.workers.Do(context.Background(), func() { <-release })
		}
		defer close(release)
		time.Sleep(10 * time.Millisecond)

		app.dispatchToWorkers(handler).ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
		assert.False(t, served)
	})
}
