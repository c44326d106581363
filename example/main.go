package main

import (
	"os"
)

//
// This file contains the root command of a small tool printing how
// command-line words are tokenized, as JSON.
//
//	parseargs -s v=verbose -f verbose -- -v --name foo bar
//	{"":["bar"],"verbose":true,"name":["foo"]}
//

func main() {
	rootCmd := newRootCommand()

	// Execute the command (application here)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
