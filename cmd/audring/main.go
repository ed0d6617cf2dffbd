// SPDX-License-Identifier: EPL-2.0

// Command audring dumps audio files as text and runs them through comb
// filters.
//
//	audring dump in.wav out.txt --seconds 3
//	audring comb in.mp3 out.wav --type iir --gain 0.6 --delay 0.3
//	audring formats
package main

import (
	"fmt"
	"os"

	"github.com/ik5/audring/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "audring: %v\n", err)
		os.Exit(1)
	}
}
