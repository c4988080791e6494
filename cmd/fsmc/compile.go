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
	"github.com/nightingale-lzh/fsm-compiler/internal/emit"
	"github.com/nightingale-lzh/fsm-compiler/internal/lower"
	"github.com/nightingale-lzh/fsm-compiler/internal/optimize"
)

// compileCmd lowers, optimizes and emits the C/C++ function body for a
// JSON AST file, the primary operation of the whole module (spec §1).
var compileCmd = cli.
	NewCommand("compile", "Lowers, optimizes and emits the C/C++ function for an AST file").WithShortcut("c").
	WithArg(cli.NewArg("input", "Path to the JSON AST interchange file").WithType(cli.TypeString)).
	WithOption(cli.NewOption("output", "Output file path (default: <input>.c)").WithChar('o').WithType(cli.TypeString)).
	WithOption(cli.NewOption("level", "Optimization level 0-5 (default: 4, the Python reference's default)").WithChar('l').WithType(cli.TypeString)).
	WithOption(cli.NewOption("no-fixed-iteration", "Skip the '<name>_fixed_iteration' driver (both drivers are emitted by default)").WithType(cli.TypeString)).
	WithOption(cli.NewOption("no-min-runtime", "Skip the '<name>_min_runtime' driver (both drivers are emitted by default)").WithType(cli.TypeString)).
	WithAction(handlerCompile)

func handlerCompile(args []string, options map[string]string) int {
	input := args[0]

	program, err := config.LoadProgram(input)
	if err != nil {
		log.Fatal(err)
	}

	level := optimize.MaxLevel - 1 // 4, matching generate_FSM_from_AST's default
	if raw := options["level"]; raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("compile: invalid --level %q: %s", raw, err)
		}
		level = parsed
	}

	machine := lower.BuildMachine(program)
	optimize.Pipeline(machine.Start, level)

	out := emit.Emit(machine, emit.Options{
		FixedIteration: !isTruthy(options["no-fixed-iteration"]),
		MinRuntime:     !isTruthy(options["no-min-runtime"]),
	})

	output := options["output"]
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".c"
	}

	log.Infof("Writing compiled FSM to '%s'...", output)
	if err := os.WriteFile(output, []byte(out), 0o644); err != nil {
		log.Fatalf("compile: writing %s: %s", output, err)
	}
	return 0
}

// isTruthy treats a boolean-shaped CLI option given as a string ("true",
// "1", "yes") as true; anything else, including the empty default the
// teris-io/cli TypeString options all fall back to when unset, is false.
func isTruthy(value string) bool {
	switch strings.ToLower(value) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
