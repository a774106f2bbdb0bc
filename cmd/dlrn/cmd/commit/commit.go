// Package commit implements `dlrn commit`.
package commit

import (
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli"

	"github.com/release-depot/dlrn/cmd/dlrn/cmdutil"
	"github.com/release-depot/dlrn/cmd/dlrn/display"
	"github.com/release-depot/dlrn/cmd/dlrn/flags"
	"github.com/release-depot/dlrn/cmd/dlrn/setup"
)

var Cmd = cli.Command{
	Name:   "commit",
	Usage:  "Show the commit record of the latest successful build",
	Action: Run,
	Flags:  flags.WithGlobalFlags(nil),
}

var _ cli.ActionFunc = Run

func Run(ctx *cli.Context) error {
	setup.SetContext(ctx)

	display.InProgress("Resolving commit metadata...")
	client, err := setup.Client(ctx)
	display.ClearProgress()
	if err != nil {
		cmdutil.FatalClientErr(err)
	}

	commit := client.Commit()
	if ctx.Bool(flags.JSONFlagName) {
		_, err := display.JSON(commit)
		return err
	}

	if commit.Empty() {
		log.Warn("no successful build found")
		return nil
	}

	fmt.Printf("name:          %s\n", commit.Name)
	fmt.Printf("commit hash:   %s\n", commit.CommitHash)
	fmt.Printf("dist hash:     %s\n", orAbsent(commit.DistHash))
	fmt.Printf("extended hash: %s\n", orAbsent(commit.ExtendedHash))
	return nil
}

func orAbsent(hash string) string {
	if hash == "" {
		return "(absent)"
	}
	return hash
}
