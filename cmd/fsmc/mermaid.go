// Copyright 2020 Enea Guidi (hmny). All rights reserved.
// This files are distributed under the General Public License v3.0.
// A copy of abovesaid license can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/teris-io/cli"

	"github.com/nightingale-lzh/fsm-compiler/internal/config"
	"github.com/nightingale-lzh/fsm-compiler/internal/lower"
	"github.com/nightingale-lzh/fsm-compiler/internal/optimize"
	"github.com/nightingale-lzh/fsm-compiler/internal/visualize"
)

var mermaidCmd = cli.
	NewCommand("mermaid", "Renders the optimized FSM as a fenced Mermaid flowchart block").
	WithArg(cli.NewArg("input", "Path to the JSON AST interchange file").WithType(cli.TypeString)).
	WithOption(cli.NewOption("output", "Output file path (default: <input>.mmd)").WithChar('o').WithType(cli.TypeString)).
	WithOption(cli.NewOption("level", "Optimization level 0-5 (default: 4)").WithChar('l').WithType(cli.TypeString)).
	WithOption(cli.NewOption("debug", "Mark collapsible states with a rounded shape (true/false)").WithChar('d').WithType(cli.TypeString)).
	WithAction(handlerMermaid)

func handlerMermaid(args []string, options map[string]string) int {
	input := args[0]

	program, err := config.LoadProgram(input)
	if err != nil {
		log.Fatal(err)
	}

	level := optimize.MaxLevel - 1
	if raw := options["level"]; raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("mermaid: invalid --level %q: %s", raw, err)
		}
		level = parsed
	}

	machine := lower.BuildMachine(program)
	optimize.Pipeline(machine.Start, level)

	out := visualize.Mermaid(machine.Start, machine.Globals, isTruthy(options["debug"]))

	output := options["output"]
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".mmd"
	}

	log.Infof("Writing Mermaid flowchart to '%s'...", output)
	if err := os.WriteFile(output, []byte(out), 0o644); err != nil {
		log.Fatalf("mermaid: writing %s: %s", output, err)
	}
	return 0
}
