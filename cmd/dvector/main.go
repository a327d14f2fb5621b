// Command dvector prepares speaker corpora for d-vector training.
//
// Usage:
//
//	dvector prepare <root>... -s <save_dir>
//
// Every subdirectory of each root is a speaker. Speakers with audio are
// numbered in order across all roots and written as
//
//	<save_dir>/s0001(<speaker>)/<utterance>.msgpack
//
// where each file is the log mel spectrogram of one utterance.
package main

import (
	"os"

	"github.com/AppleHolic/dvector/cmd/dvector/commands"
	"github.com/AppleHolic/dvector/pkg/cli"
)

func main() {
	if err := commands.Execute(); err != nil {
		cli.PrintError(os.Stderr, "%v", err)
		os.Exit(1)
	}
}
