package main

import (
	"os"

	"github.com/macropower/configdoc/cmd/configdoc/commands"
)

const (
	cmdName = "configdoc"

	shortDesc = "The configdoc Command Line Interface (CLI)."
	longDesc  = `The configdoc Command Line Interface (CLI).

configdoc stores configuration variables together with a localized title and
description, and exports that documentation as JSON, XML, YAML or a Go
literal dump.
`
)

func main() {
	cmd := commands.NewRootCmd(cmdName, shortDesc, longDesc)

	err := cmd.Execute()
	if err != nil {
		commands.PrintError(os.Stderr, err)
	}

	os.Exit(commands.ExitCode(err))
}
