// SPDX-License-Identifier: MIT

// Command spgr-epg prints the EPG-simulated SPGR signal of one pulse train.
//
//	spgr-epg [-pulses N] [-strict] [-trace] [-quiet] [--] FA PHI_INC TR T1 T2
package main

import (
	"os"

	"github.com/katalvlaran/epgsim/internal/cli"
)

func main() { os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr)) }
