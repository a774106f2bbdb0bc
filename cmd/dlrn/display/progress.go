package display

import (
	"github.com/briandowns/spinner"
)

var (
	s          *spinner.Spinner
	useSpinner bool
	inProgress bool
)

// InProgress shows a progress spinner with a message.
func InProgress(message string) {
	if !useSpinner {
		return
	}
	s.Suffix = " " + message
	s.Restart()
	inProgress = true
}

// ClearProgress stops the progress spinner.
func ClearProgress() {
	if !useSpinner {
		return
	}
	s.Stop()
	inProgress = false
}

// PauseProgress stops the spinner without forgetting its message, so log
// output can be written cleanly.
func PauseProgress() {
	if !useSpinner || !inProgress {
		return
	}
	s.Stop()
}

// ResumeProgress restarts a paused spinner.
func ResumeProgress() {
	if !useSpinner || !inProgress {
		return
	}
	s.Restart()
}
