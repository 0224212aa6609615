// Package main is the entry point of nextep.
package main

import (
	"github.com/nextep-cli/nextep/cmd"
	"github.com/nextep-cli/nextep/config"
	"github.com/nextep-cli/nextep/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
