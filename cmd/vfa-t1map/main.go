// SPDX-License-Identifier: MIT

// Command vfa-t1map estimates RF-spoiling corrected T1 values from two VFA
// acquisitions. Voxels are read from stdin, one "S1 S2 [B1]" per line.
//
//	vfa-t1map -tr 0.02 -fa1 6 -fa2 32 [-max-t1 10] [-pulses N] < voxels.txt
package main

import (
	"os"

	"github.com/katalvlaran/epgsim/internal/cli"
)

func main() { os.Exit(cli.RunT1Map(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)) }
