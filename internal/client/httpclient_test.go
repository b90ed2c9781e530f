package client_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/UnknownOlympus/athena/internal/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHTTPClient(t *testing.T) {
	t.Parallel()

	var logBuf bytes.Buffer
	// debug level is needed to capture the redirect messages
	logger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/old":
			http.Redirect(w, r, "/employees", http.StatusFound)
		case "/loop":
			http.Redirect(w, r, "/loop", http.StatusFound)
		default:
			w.WriteHeader(http.StatusOK)
		}
	}))
	t.Cleanup(srv.Close)

	httpClient := client.CreateHTTPClient(logger)
	require.NotNil(t, httpClient.CheckRedirect)
	assert.Positive(t, httpClient.Timeout)

	resp, err := httpClient.Get(srv.URL + "/old")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/employees", resp.Request.URL.Path)
	assert.Contains(t, logBuf.String(), `msg="Redirected to URL" url=`+srv.URL+"/employees")

	_, err = httpClient.Get(srv.URL + "/loop")
	require.Error(t, err)
	assert.Contains(t, logBuf.String(), "Redirect limit reached")
}
