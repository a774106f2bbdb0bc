package display

import (
	"github.com/fatih/color"
	"github.com/mitchellh/go-wordwrap"
)

const width = 78

// ConfigHelpMessage explains how to configure a DLRN host. It is shown when
// host resolution fails.
var ConfigHelpMessage = `
` + color.HiYellowString("CONFIGURING A HOST:") + `
` + wordwrap.WrapString("Hosts are looked up in dlrn.yml, searched for in the working directory and in ~/.config/dlrn. Each entry maps a host name to the server's url, the release to query, and the symlink to read, for example:", width) + `

  centos9:
    url: https://trunk.rdoproject.org
    release: centos9-master
    link: current

` + wordwrap.WrapString("Additional files can be layered on top with --config; later files override earlier ones per host.", width)
