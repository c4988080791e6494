// Copyright 2020 Enea Guidi (hmny). All rights reserved.
// This files are distributed under the General Public License v3.0.
// A copy of abovesaid license can be found in the LICENSE file.

// fsmc is the primary entry point of the whole program: it lowers a JSON
// AST file into a raw FSM, runs it through the optimizer, and either
// emits a C/C++ function body or renders the graph for inspection.
package main

import (
	"os"

	"github.com/teris-io/cli"

	"github.com/nightingale-lzh/fsm-compiler/internal/config"
)

const usage = `Compiles an imperative-DSL AST into a C/C++ finite-state-machine function.`

func init() {
	config.SetupLogging()
}

func main() {
	app := cli.New(usage).
		WithCommand(compileCmd).
		WithCommand(dotCmd).
		WithCommand(mermaidCmd).
		WithCommand(renderCmd)

	os.Exit(app.Run(os.Args, os.Stdout))
}
