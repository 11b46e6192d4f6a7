// Package config defines the resjs command line.
package config

import (
	"github.com/alecthomas/kong"

	"github.com/Alia5/resjs/internal/cmd"
	"github.com/Alia5/resjs/internal/log"
)

type CLI struct {
	Config  string           `help:"Path to a JSON, YAML or TOML config file" type:"path" env:"RESJS_CONFIG"`
	Log     log.Options      `embed:"" prefix:"log."`
	Version kong.VersionFlag `help:"Print version and exit"`

	Generate cmd.Generate      `cmd:"" default:"withargs" help:"Generate a JavaScript client from API metadata"`
	Cfg      cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration file helpers"`
}
