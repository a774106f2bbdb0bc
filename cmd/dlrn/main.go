package main

import (
	"os"

	"github.com/apex/log"

	"github.com/release-depot/dlrn/cmd/dlrn/app"
)

// main.version is set by linker flags at release time.
var version = "dev"

func main() {
	err := app.New(version).Run(os.Args)
	if err != nil {
		log.Fatalf("%s", err.Error())
	}
}
