package main

import (
	"context"

	"github.com/alecthomas/kong"
	"github.com/wolfeidau/abacgen/cmd/abacgen/internal/commands"
)

var (
	version = "dev"
	cli     struct {
		Generate commands.GenerateCmd `cmd:"" help:"Generate an ABAC policy data file"`
		Export   commands.ExportCmd   `cmd:"" help:"Generate a population and load it into PostgreSQL"`
		Debug    bool                 `help:"Enable debug mode."`
		Version  kong.VersionFlag
	}
)

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))
	err := cmd.Run(&commands.Globals{Debug: cli.Debug, Version: version})
	cmd.FatalIfErrorf(err)
}
