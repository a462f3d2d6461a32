// SPDX-License-Identifier: MIT

// Command vfa-correction fits the RF-spoiling correction polynomials of a
// VFA T1-mapping protocol.
//
//	vfa-correction -tr 0.02 [-phase-inc 50] [-t2 0.08] [-pulses N] FA1 FA2 [FA...]
package main

import (
	"os"

	"github.com/katalvlaran/epgsim/internal/cli"
)

func main() { os.Exit(cli.RunCorrection(os.Args[1:], os.Stdout, os.Stderr)) }
