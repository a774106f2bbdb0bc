// Package app constructs the dlrn CLI application.
package app

import (
	"github.com/urfave/cli"

	"github.com/release-depot/dlrn/cmd/dlrn/cmd/commit"
	"github.com/release-depot/dlrn/cmd/dlrn/cmd/failures"
	"github.com/release-depot/dlrn/cmd/dlrn/cmd/versions"
	"github.com/release-depot/dlrn/cmd/dlrn/flags"
)

func New(version string) *cli.App {
	app := cli.NewApp()
	app.Name = "dlrn"
	app.Usage = "Query build metadata published by DLRN servers"
	app.Version = version
	app.Flags = flags.WithGlobalFlags(nil)
	app.Commands = []cli.Command{
		commit.Cmd,
		versions.Cmd,
		failures.Cmd,
	}
	return app
}
