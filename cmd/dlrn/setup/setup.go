// Package setup initializes application-level state from CLI flags.
package setup

import (
	"os"

	"github.com/apex/log"
	isatty "github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/release-depot/dlrn/api/dlrn"
	"github.com/release-depot/dlrn/cmd/dlrn/display"
	"github.com/release-depot/dlrn/cmd/dlrn/flags"
)

// SetContext configures display and logging from the global flags.
func SetContext(ctx *cli.Context) {
	interactive := !ctx.Bool(flags.NoAnsiFlagName) && isatty.IsTerminal(os.Stderr.Fd())
	display.SetInteractive(interactive)
	display.SetDebug(ctx.Bool(flags.DebugFlagName))
}

// Client resolves the selected host from the DLRN configuration and
// constructs a client for it.
func Client(ctx *cli.Context) (*dlrn.Client, error) {
	host := ctx.String(flags.HostFlagName)
	if host == "" {
		return nil, errors.New("no host selected (set one with --host)")
	}

	options := []dlrn.FactoryOption{
		dlrn.WithConfigFiles(ctx.StringSlice(flags.ConfigFlagName)...),
		dlrn.WithFactoryLogger(log.Log),
	}
	if link := ctx.String(flags.LinkFlagName); link != "" {
		options = append(options, dlrn.WithLinkOverride(link))
	}

	return dlrn.NewFromConfig(host, options...)
}
