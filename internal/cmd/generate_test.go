package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Alia5/resjs/internal/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateExecute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"$url_prefix":"/api","users":{"get":1}}`))
	}))
	t.Cleanup(srv.Close)

	tests := []struct {
		name       string
		cmd        Generate
		wantInFile []string
	}{
		{
			name:       "browser by default",
			cmd:        Generate{Target: "browser"},
			wantInFile: []string{"XMLHttpRequest", `var urlPrefix = "/api";`},
		},
		{
			name:       "node flag selects the server wrapper",
			cmd:        Generate{Target: "browser", Node: true},
			wantInFile: []string{"module.exports"},
		},
		{
			name:       "explicit server target",
			cmd:        Generate{Target: "server"},
			wantInFile: []string{"module.exports"},
		},
		{
			name:       "prefix override",
			cmd:        Generate{Target: "browser", Prefix: "https://example.com"},
			wantInFile: []string{`var urlPrefix = "https://example.com";`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var raw bytes.Buffer
			g := tt.cmd
			g.URL = srv.URL
			g.Dest = filepath.Join(t.TempDir(), "res.js")

			msg, err := g.Execute(context.Background(), slog.New(slog.DiscardHandler), log.NewRaw(&raw))
			require.NoError(t, err)
			assert.Equal(t, "OK, saved in: "+g.Dest, msg)

			data, err := os.ReadFile(g.Dest)
			require.NoError(t, err)
			for _, want := range tt.wantInFile {
				assert.Contains(t, string(data), want)
			}
			assert.Contains(t, raw.String(), srv.URL)
		})
	}
}

func TestGenerateExecuteUnknownTarget(t *testing.T) {
	g := Generate{URL: "http://127.0.0.1:1", Target: "desktop"}
	_, err := g.Execute(context.Background(), slog.New(slog.DiscardHandler), log.NewRaw(nil))
	assert.ErrorContains(t, err, `unknown target "desktop"`)
}
