package fetcher_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	generror "github.com/Alia5/resjs/internal/codegen/error"
	"github.com/Alia5/resjs/internal/codegen/fetcher"
	"github.com/Alia5/resjs/internal/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantErr    string
		assertFunc func(t *testing.T, raw map[string]string)
	}{
		{
			name:   "object document",
			status: http.StatusOK,
			body:   `{"$auth":{"header":"X-Token"},"users":{"get":1}}`,
			assertFunc: func(t *testing.T, raw map[string]string) {
				assert.JSONEq(t, `{"header":"X-Token"}`, raw["$auth"])
				assert.JSONEq(t, `{"get":1}`, raw["users"])
			},
		},
		{
			name:   "null document decodes to empty metadata",
			status: http.StatusOK,
			body:   `null`,
			assertFunc: func(t *testing.T, raw map[string]string) {
				assert.Empty(t, raw)
			},
		},
		{
			name:       "server error",
			status:     http.StatusInternalServerError,
			body:       `{"error":"down"}`,
			wantStatus: http.StatusInternalServerError,
			wantErr:    "unexpected status 500 Internal Server Error",
		},
		{
			name:       "not found",
			status:     http.StatusNotFound,
			body:       ``,
			wantStatus: http.StatusNotFound,
			wantErr:    "unexpected status 404 Not Found",
		},
		{
			name:       "body is not json",
			status:     http.StatusOK,
			body:       `<html></html>`,
			wantStatus: http.StatusOK,
			wantErr:    "decode metadata",
		},
		{
			name:       "body is not an object",
			status:     http.StatusOK,
			body:       `[1,2,3]`,
			wantStatus: http.StatusOK,
			wantErr:    "decode metadata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serve(t, tt.status, tt.body)
			f := fetcher.New(fetcher.WithHTTPClient(srv.Client()))

			raw, err := f.Fetch(context.Background(), srv.URL)
			if tt.wantErr != "" {
				require.Error(t, err)
				var fe *generror.FetchError
				require.ErrorAs(t, err, &fe)
				assert.Equal(t, srv.URL, fe.URL)
				assert.Equal(t, tt.wantStatus, fe.Status)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, raw)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, raw)
			got := make(map[string]string, len(raw))
			for k, v := range raw {
				got[k] = string(v)
			}
			tt.assertFunc(t, got)
		})
	}
}

func TestFetchTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := fetcher.New().Fetch(context.Background(), url)
	var fe *generror.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Zero(t, fe.Status)
	assert.Equal(t, url, fe.URL)
}

func TestFetchInvalidURL(t *testing.T) {
	_, err := fetcher.New().Fetch(context.Background(), "://nope")
	var fe *generror.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Zero(t, fe.Status)
}

func TestFetchCanceledContext(t *testing.T) {
	srv := serve(t, http.StatusOK, `{}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fetcher.New().Fetch(ctx, srv.URL)
	var fe *generror.FetchError
	require.ErrorAs(t, err, &fe)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetchDumpsRawBody(t *testing.T) {
	srv := serve(t, http.StatusOK, `{"users":{"get":1}}`)
	var buf bytes.Buffer
	f := fetcher.New(fetcher.WithRawLogger(log.NewRaw(&buf)))

	_, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "GET "+srv.URL+" status: 200")
	assert.Contains(t, buf.String(), `{"users":{"get":1}}`)
}
