// Package failures implements `dlrn failures`.
package failures

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/release-depot/dlrn/cmd/dlrn/cmdutil"
	"github.com/release-depot/dlrn/cmd/dlrn/display"
	"github.com/release-depot/dlrn/cmd/dlrn/flags"
	"github.com/release-depot/dlrn/cmd/dlrn/setup"
)

var Cmd = cli.Command{
	Name:   "failures",
	Usage:  "List failed package builds and links to their build directories",
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

	display.InProgress("Fetching status report...")
	failures := client.GetFailures()
	display.ClearProgress()

	if ctx.Bool(flags.JSONFlagName) {
		if _, err := display.JSON(failures); err != nil {
			return err
		}
	} else if len(failures) == 0 {
		fmt.Fprintln(os.Stderr, "No failed builds")
	} else {
		projects := make([]string, 0, len(failures))
		for project := range failures {
			projects = append(projects, project)
		}
		sort.Strings(projects)

		for _, project := range projects {
			fmt.Printf("%s %s\n", color.RedString(project), failures[project])
		}
	}

	if len(failures) > 0 {
		os.Exit(1)
	}
	return nil
}
