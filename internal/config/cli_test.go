package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	kongyaml "github.com/alecthomas/kong-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args []string, opts ...kong.Option) (*CLI, *kong.Context) {
	t.Helper()
	var cli CLI
	opts = append([]kong.Option{kong.Name("resjs"), kong.Vars{"version": "test"}, kong.Exit(func(int) { t.Fatal("unexpected exit") })}, opts...)
	parser, err := kong.New(&cli, opts...)
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return &cli, ctx
}

func TestParseDefaultCommand(t *testing.T) {
	cli, ctx := parse(t, []string{"http://api/meta"})

	assert.Equal(t, "generate", ctx.Selected().Name)
	assert.Equal(t, "http://api/meta", cli.Generate.URL)
	assert.Equal(t, "./res.js", cli.Generate.Dest)
	assert.Equal(t, "browser", cli.Generate.Target)
	assert.False(t, cli.Generate.Node)
	assert.Empty(t, cli.Generate.Prefix)
	assert.Equal(t, "info", cli.Log.Level)
}

func TestParseGenerateFlags(t *testing.T) {
	cli, _ := parse(t, []string{"http://api/meta", "out/client.js", "-p", "/v2", "-n", "--log.level=debug"})

	assert.Equal(t, "out/client.js", cli.Generate.Dest)
	assert.Equal(t, "/v2", cli.Generate.Prefix)
	assert.True(t, cli.Generate.Node)
	assert.Equal(t, "debug", cli.Log.Level)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("RESJS_PREFIX", "/from-env")
	t.Setenv("RESJS_TARGET", "server")

	cli, _ := parse(t, []string{"http://api/meta"})
	assert.Equal(t, "/from-env", cli.Generate.Prefix)
	assert.Equal(t, "server", cli.Generate.Target)
}

func TestParseConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "resjs.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("prefix: /from-config\nlog:\n  level: warn\n"), 0o644))

	cli, _ := parse(t, []string{"http://api/meta"}, kong.Configuration(kongyaml.Loader, cfg))
	assert.Equal(t, "/from-config", cli.Generate.Prefix)
	assert.Equal(t, "warn", cli.Log.Level)

	cli, _ = parse(t, []string{"http://api/meta", "--prefix=/from-flag"}, kong.Configuration(kongyaml.Loader, cfg))
	assert.Equal(t, "/from-flag", cli.Generate.Prefix, "flags override config values")
}

func TestParseConfigInit(t *testing.T) {
	cli, ctx := parse(t, []string{"config", "init", "--format", "toml"})
	assert.Equal(t, "init", ctx.Selected().Name)
	assert.Equal(t, "toml", cli.Cfg.Init.Format)
}
