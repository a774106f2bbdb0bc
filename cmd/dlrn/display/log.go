package display

import (
	"fmt"
	"os"
	"runtime"

	"github.com/apex/log"
	"github.com/fatih/color"
)

var level = log.InfoLevel

// SetInteractive turns colors and ANSI control characters on or off.
func SetInteractive(interactive bool) {
	// Disable Unicode and ANSI control characters on Windows.
	if runtime.GOOS == "windows" {
		interactive = false
	}

	color.NoColor = !interactive
	useSpinner = interactive
}

// SetDebug turns debug logging to STDERR on or off.
func SetDebug(debug bool) {
	if debug {
		level = log.DebugLevel
	} else {
		level = log.InfoLevel
	}
}

func levelString(l log.Level) string {
	switch l {
	case log.WarnLevel:
		return color.YellowString(l.String())
	case log.ErrorLevel, log.FatalLevel:
		return color.RedString(l.String())
	default:
		return l.String()
	}
}

// Handler writes human-readable log entries to STDERR, pausing the progress
// spinner so entries do not interleave with its animation.
func Handler(entry *log.Entry) error {
	if entry.Level < level {
		return nil
	}

	PauseProgress()
	defer ResumeProgress()

	_, err := fmt.Fprintf(os.Stderr, "%s %s\n", levelString(entry.Level), entry.Message)
	return err
}
