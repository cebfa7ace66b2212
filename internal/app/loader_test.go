package app

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/crew/internal/config"
	"github.com/five82/crew/internal/logger"
	"github.com/five82/crew/internal/randomuser"
	"github.com/five82/crew/internal/state"
)

type stubFetcher struct {
	users []randomuser.User
	err   error
	calls int
}

func (s *stubFetcher) FetchUsers(ctx context.Context) ([]randomuser.User, error) {
	s.calls++
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("loader must bound the fetch with a deadline")
	}
	return s.users, s.err
}

func TestLoader_SuccessReplacesUsers(t *testing.T) {
	store := &state.Store{}
	fetcher := &stubFetcher{users: []randomuser.User{
		{Name: randomuser.Name{First: "Ada", Last: "Lovelace"}},
		{Name: randomuser.Name{First: "Alan", Last: "Turing"}},
	}}

	err := NewLoader(store, fetcher, nil).Load(context.Background())
	require.NoError(t, err)

	snap := store.Snapshot()
	assert.True(t, snap.Loaded)
	assert.False(t, snap.Pending)
	assert.Nil(t, snap.LastError)
	require.Len(t, snap.Users, 2)
	assert.Equal(t, "Ada", snap.Users[0].Name.First)
	assert.Equal(t, 1, fetcher.calls)
}

func TestLoader_FailureKeepsPreviousUsersAndLogs(t *testing.T) {
	store := &state.Store{}
	store.Update([]randomuser.User{{Email: "kept@example.com"}}, nil)

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Writer: buf})
	require.NoError(t, err)

	boom := errors.New("connection refused")
	err = NewLoader(store, &stubFetcher{err: boom}, log).Load(context.Background())
	require.ErrorIs(t, err, boom)

	snap := store.Snapshot()
	assert.True(t, snap.Failed())
	assert.ErrorIs(t, snap.LastError, boom)
	require.Len(t, snap.Users, 1)
	assert.Equal(t, "kept@example.com", snap.Users[0].Email)
	assert.Contains(t, buf.String(), "user fetch failed")
	assert.Contains(t, buf.String(), `"component":"loader"`)
}

func TestLoader_Unconfigured(t *testing.T) {
	var l *Loader
	assert.Error(t, l.Load(context.Background()))
}

func TestLoadDirectory_FetchesFromEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("results"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[
			{"name":{"first":"Alice","last":"Moore"},"email":"alice@example.com"},
			{"name":{"first":"Bob","last":"Smith"},"email":"bob@example.com"},
			{"name":{"first":"Kate","last":"Mali"},"email":"kate@example.com"}
		]}`))
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.Endpoint = srv.URL
	cfg.Results = 3

	dir, err := LoadDirectory(context.Background(), Options{Config: cfg})
	require.NoError(t, err)
	require.Equal(t, 3, dir.Len())
	assert.Equal(t, 1, dir.Filter("mali"))
}

func TestLoadDirectory_SurfacesStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.Endpoint = srv.URL

	_, err := LoadDirectory(context.Background(), Options{Config: cfg})
	var statusErr *randomuser.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.Code)
}
