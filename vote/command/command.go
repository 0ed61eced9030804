// Package command defines the cli commands of the voting client.
package command

import (
	"os"
	"time"

	"github.com/neverpanic/mp-vote/cli"
	"github.com/neverpanic/mp-vote/config"
)

// Initializer provides the commands to resolve and inspect vote definitions.
//
// - implements cli.Initializer
type Initializer struct{}

// SetCommands implements cli.Initializer.
func (i Initializer) SetCommands(provider cli.Provider) {
	action := action{
		printer: os.Stdout,
		now:     time.Now,
		resolve: resolve,
	}

	flags := []cli.Flag{
		cli.StringFlag{
			Name:     "url",
			Usage:    "URL the vote definition is published at",
			Required: true,
		},
		cli.PathFlag{
			Name:  "config",
			Usage: "path of the client configuration file",
			Value: config.DefaultPath,
		},
		cli.PathFlag{
			Name:  "key",
			Usage: "path of the trusted public key, overrides the configuration",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "enable diagnostic output",
		},
	}

	cmd := provider.SetCommand("show")
	cmd.SetDescription("fetch, authenticate and display a vote definition")
	cmd.SetFlags(flags...)
	cmd.SetAction(action.showAction)

	cmd = provider.SetCommand("status")
	cmd.SetDescription("report whether a ballot may currently be cast")
	cmd.SetFlags(flags...)
	cmd.SetAction(action.statusAction)
}
