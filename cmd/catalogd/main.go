package main

import (
	"os"

	"github.com/stagecraft/catalogd/cli"
	"github.com/stagecraft/catalogd/cmd"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"catalogd",
		"Remote catalog navigation daemon for a media-production host",
	)

	// Add subcommands
	rootCmd.AddCommand(cmd.NewDaemonCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
