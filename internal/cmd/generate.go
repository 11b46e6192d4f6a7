package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Alia5/resjs/internal/codegen/fetcher"
	"github.com/Alia5/resjs/internal/codegen/generator"
	"github.com/Alia5/resjs/internal/log"
)

type Generate struct {
	URL    string `arg:"" name:"url" help:"URL of the API metadata document"`
	Dest   string `arg:"" name:"dest" optional:"" help:"Output file" default:"./res.js"`
	Prefix string `short:"p" help:"URL prefix of the generated client, overrides the prefix declared by the metadata" env:"RESJS_PREFIX"`
	Node   bool   `short:"n" help:"Generate for Node.js, shorthand for --target=server" env:"RESJS_NODE"`
	Target string `help:"Runtime to wrap the client for: browser or server" enum:"browser,server" default:"browser" env:"RESJS_TARGET"`
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	msg, err := g.Execute(ctx, logger, rawLogger)
	if err != nil {
		logger.Error("Client generation failed", "error", err)
		return err
	}
	fmt.Println(msg)
	return nil
}

// Execute runs the generation pipeline for the parsed arguments.
func (g *Generate) Execute(ctx context.Context, logger *slog.Logger, rawLogger log.RawLogger) (string, error) {
	target, err := generator.ParseTarget(g.Target)
	if err != nil {
		return "", err
	}
	if g.Node {
		target = generator.TargetServer
	}

	f := fetcher.New(fetcher.WithLogger(logger), fetcher.WithRawLogger(rawLogger))
	gen := generator.New(logger, generator.WithFetcher(f))
	return gen.Generate(ctx, generator.Options{
		URL:       g.URL,
		Dest:      g.Dest,
		URLPrefix: g.Prefix,
		Target:    target,
	})
}
