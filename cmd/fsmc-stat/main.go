// Copyright 2020 Enea Guidi (hmny). All rights reserved.
// This files are distributed under the General Public License v3.0.
// A copy of abovesaid license can be found in the LICENSE file.

// fsmc-stat is a diagnostic entry point: it loads an AST JSON file and
// prints the node/transition counts of the raw FSM against the
// optimized one, for inspecting how much a given optimization level
// actually buys on a given program.
package main

import (
	"fmt"
	"os"

	"github.com/pborman/getopt/v2"

	"github.com/nightingale-lzh/fsm-compiler/internal/config"
	"github.com/nightingale-lzh/fsm-compiler/internal/fsm"
	"github.com/nightingale-lzh/fsm-compiler/internal/lower"
	"github.com/nightingale-lzh/fsm-compiler/internal/optimize"
)

func main() {
	inputFile := getopt.StringLong("input", 'i', "", "The JSON AST file to load")
	levelStr := getopt.StringLong("level", 'l', "4", "Optimization level 0-5")
	traceFlag := getopt.BoolLong("trace", 't', "Print the state/transition count at every pipeline stage", "false")
	showUsage := getopt.BoolLong("help", 'h', "Display this help message", "false")
	getopt.Parse()

	config.SetupLogging()

	if *showUsage || inputFile == nil || *inputFile == "" {
		getopt.Usage()
		return
	}

	level := 4
	if _, err := fmt.Sscanf(*levelStr, "%d", &level); err != nil {
		level = 4
	}

	program, err := config.LoadProgram(*inputFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	machine := lower.BuildMachine(program)
	before := count(machine.Start)
	fmt.Printf("raw:       %d states, %d transitions\n", before.states, before.transitions)

	if *traceFlag {
		for l := 1; l <= level; l++ {
			optimize.Pipeline(machine.Start, l)
			c := count(machine.Start)
			fmt.Printf("level %d:   %d states, %d transitions\n", l, c.states, c.transitions)
		}
	} else {
		optimize.Pipeline(machine.Start, level)
		after := count(machine.Start)
		fmt.Printf("level %d:   %d states, %d transitions\n", level, after.states, after.transitions)
	}
}

type counts struct {
	states      int
	transitions int
}

func count(start *fsm.Node) counts {
	nodes := fsm.ForwardReachable(start)
	c := counts{states: len(nodes)}
	for _, n := range nodes {
		c.transitions += len(n.Transitions)
	}
	return c
}
