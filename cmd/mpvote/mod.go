// Package main implements the mpvote binary, a voting client that fetches a
// published vote definition, authenticates it against the pinned trusted key
// and displays it.
//
//	go run mod.go show --url https://example.com/vote.xml
//	go run mod.go status --url https://example.com/vote.xml --key trusted.pem
package main

import (
	"fmt"
	"os"

	"github.com/neverpanic/mp-vote/cli/ucli"
	"github.com/neverpanic/mp-vote/vote/command"
)

func main() {
	builder := ucli.NewBuilder("mpvote", "authenticated vote definition client")

	command.Initializer{}.SetCommands(builder)

	err := builder.Build().Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
