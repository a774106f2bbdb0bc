// Package cmdutil provides common utilities for subcommands.
package cmdutil

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/release-depot/dlrn/api/dlrn"
	"github.com/release-depot/dlrn/cmd/dlrn/display"
	"github.com/release-depot/dlrn/config"
)

// FatalClientErr reports a client construction failure and exits. Failures
// caused by missing or incomplete configuration also print the configuration
// help text.
func FatalClientErr(err error) {
	cause := errors.Cause(err)
	if cause == config.ErrNoConfig || cause == dlrn.ErrUnknownHost {
		fmt.Fprintln(os.Stderr, display.ConfigHelpMessage)
	}
	log.Fatalf("Could not construct DLRN client: %s", err.Error())
}
