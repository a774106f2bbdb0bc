// Package versions implements `dlrn versions`.
package versions

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/release-depot/dlrn/cmd/dlrn/cmdutil"
	"github.com/release-depot/dlrn/cmd/dlrn/display"
	"github.com/release-depot/dlrn/cmd/dlrn/flags"
	"github.com/release-depot/dlrn/cmd/dlrn/setup"
)

var Cmd = cli.Command{
	Name:   "versions",
	Usage:  "Show per-package versions of the latest successful build",
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

	display.InProgress("Fetching versions report...")
	versions := client.Versions()
	display.ClearProgress()

	if ctx.Bool(flags.JSONFlagName) {
		_, err := display.JSON(versions)
		return err
	}

	projects := make([]string, 0, len(versions))
	for project := range versions {
		projects = append(projects, project)
	}
	sort.Strings(projects)

	for _, project := range projects {
		v := versions[project]
		fmt.Printf("%s %s %s\n", project, v.NVR, stateString(v.State))
	}
	return nil
}

func stateString(state string) string {
	switch state {
	case "SUCCESS":
		return color.GreenString(state)
	case "FAILED":
		return color.RedString(state)
	default:
		return state
	}
}
