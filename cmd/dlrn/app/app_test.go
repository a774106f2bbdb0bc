package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/release-depot/dlrn/cmd/dlrn/app"
)

func TestAppCommands(t *testing.T) {
	a := app.New("test")

	var names []string
	for _, cmd := range a.Commands {
		names = append(names, cmd.Name)
	}
	assert.Equal(t, []string{"commit", "versions", "failures"}, names)
	assert.Equal(t, "test", a.Version)
}
