// Package flags defines the flag sets shared by dlrn commands.
package flags

import (
	"fmt"
	"reflect"

	"github.com/urfave/cli"
)

func abbr(fullname string) string {
	return fmt.Sprintf("%c, %s", fullname[0], fullname)
}

// Combine merges flag sets, deduplicating identical flags. It panics when two
// distinct flags share a name.
func Combine(flagSets ...[]cli.Flag) []cli.Flag {
	seen := make(map[string]cli.Flag)
	var combined []cli.Flag
	for _, flagSet := range flagSets {
		for _, f := range flagSet {
			prev, ok := seen[f.GetName()]
			if ok {
				if !reflect.DeepEqual(prev, f) {
					panic(fmt.Sprintf("two distinct flags named %q", f.GetName()))
				}
				continue
			}
			seen[f.GetName()] = f
			combined = append(combined, f)
		}
	}
	return combined
}

// WithGlobalFlags appends the flags every command accepts.
func WithGlobalFlags(f []cli.Flag) []cli.Flag {
	return append(f, Global...)
}

var (
	Global         = []cli.Flag{Host, Config, Link, JSON, NoAnsi, Debug}
	HostFlagName   = "host"
	Host           = cli.StringFlag{Name: HostFlagName, Usage: "name of the host entry in the DLRN configuration"}
	ConfigFlagName = "config"
	Config         = cli.StringSliceFlag{Name: abbr(ConfigFlagName), Usage: "additional configuration file (may be repeated)"}
	LinkFlagName   = "link"
	Link           = cli.StringFlag{Name: abbr(LinkFlagName), Usage: "symlink name to read commit.yaml from (default: the host's configured link)"}
	JSONFlagName   = "json"
	JSON           = cli.BoolFlag{Name: JSONFlagName, Usage: "print machine-readable JSON to stdout"}
	NoAnsiFlagName = "no-ansi"
	NoAnsi         = cli.BoolFlag{Name: NoAnsiFlagName, Usage: "do not use interactive mode (ANSI codes)"}
	DebugFlagName  = "debug"
	Debug          = cli.BoolFlag{Name: DebugFlagName, Usage: "print debug information to stderr"}
)
