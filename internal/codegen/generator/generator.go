package generator

import (
	"context"
	"io/fs"
	"log/slog"
	"text/template"

	"github.com/Alia5/resjs/internal/codegen/fetcher"
	"github.com/Alia5/resjs/internal/codegen/meta"
	"github.com/Alia5/resjs/internal/codegen/templates"

	"golang.org/x/sync/errgroup"
)

// DefaultDest is where the client is written when no destination is given.
const DefaultDest = "./res.js"

// MetadataFetcher downloads the raw metadata document.
type MetadataFetcher interface {
	Fetch(ctx context.Context, url string) (meta.Raw, error)
}

type Generator struct {
	logger  *slog.Logger
	fetcher MetadataFetcher
	assets  fs.FS
}

type Option func(*Generator)

// WithFetcher replaces the default HTTP fetcher.
func WithFetcher(f MetadataFetcher) Option {
	return func(g *Generator) { g.fetcher = f }
}

// WithAssets replaces the embedded template and wrappers.
func WithAssets(fsys fs.FS) Option {
	return func(g *Generator) { g.assets = fsys }
}

func New(logger *slog.Logger, opts ...Option) *Generator {
	g := &Generator{
		logger: logger,
		assets: templates.FS,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.fetcher == nil {
		g.fetcher = fetcher.New(fetcher.WithLogger(logger))
	}
	return g
}

// Options describes a single generation run.
type Options struct {
	URL       string // metadata endpoint
	Dest      string // output file, DefaultDest when empty
	URLPrefix string // overrides $url_prefix when non-empty
	Target    Target // TargetBrowser when empty
}

// Generate fetches the metadata, renders the client and writes it to opts.Dest.
// Metadata, template and wrapper load concurrently; the first failure is
// returned as-is and nothing is written.
func (g *Generator) Generate(ctx context.Context, opts Options) (string, error) {
	dest := opts.Dest
	if dest == "" {
		dest = DefaultDest
	}
	target := opts.Target
	if target == "" {
		target = TargetBrowser
	}

	g.logger.Info("Generating client", "url", opts.URL, "target", target, "dest", dest)

	var (
		md   *meta.Metadata
		tmpl *template.Template
		wrap WrapFunc
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		raw, err := g.fetcher.Fetch(egCtx, opts.URL)
		if err != nil {
			return err
		}
		md = meta.Normalize(raw)
		g.logger.Debug("Normalized metadata",
			"resources", len(md.Resources),
			"endpoints", md.EndpointCount(),
			"authHeader", md.AuthHeader != nil)
		return nil
	})
	eg.Go(func() error {
		var err error
		tmpl, err = LoadTemplate(g.assets)
		return err
	})
	eg.Go(func() error {
		var err error
		wrap, err = LoadWrapper(g.assets, target)
		return err
	})
	if err := eg.Wait(); err != nil {
		g.logger.Debug("Generation aborted", "error", err)
		return "", err
	}

	for _, name := range md.MissingMethods() {
		g.logger.Warn("Action has no HTTP method prefix", "action", name)
	}
	md.OverridePrefix(opts.URLPrefix)

	core, err := Render(tmpl, md, opts.URL)
	if err != nil {
		return "", err
	}
	if err := Persist(dest, Assemble(wrap, core)); err != nil {
		return "", err
	}

	g.logger.Info("Client generation complete", "dest", dest, "endpoints", md.EndpointCount())
	return "OK, saved in: " + dest, nil
}
