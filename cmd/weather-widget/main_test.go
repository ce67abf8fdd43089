package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runLookup(t *testing.T, baseURL string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"lookup", "--api-key", "k", "--api-base-url", baseURL, "--log-level", "error"}, args...))

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestLookupPrintsLines(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		_, _ = w.Write([]byte(`{"location":{"name":"New York"},"current":{"temp_c":-5,"condition":{"text":"Sunny"}}}`))
	}))
	defer srv.Close()

	out, _, err := runLookup(t, srv.URL, "New", "York")
	require.NoError(t, err)
	assert.Equal(t, "New York", gotQuery)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "New York "))
	assert.Equal(t, "It's freezing at -5°C! Bundle up!", lines[1])
	assert.Equal(t, "It's a peaceful sunny day", lines[2])
}

func TestLookupNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	out, errOut, err := runLookup(t, srv.URL, "Atlantis")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errLookupFailed))
	assert.Empty(t, out)
	assert.Equal(t, "City not found. Please try again.\n", errOut)
}

func TestLookupBlank(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	_, errOut, err := runLookup(t, srv.URL, "  ")
	require.Error(t, err)
	assert.Equal(t, "Please enter a valid location\n", errOut)
	assert.Zero(t, calls)
}

func TestLookupIncompleteBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	out, errOut, err := runLookup(t, srv.URL, "Paris")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Equal(t, "City not found. Please try again.\n", errOut)
}
