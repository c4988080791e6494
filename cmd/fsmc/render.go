// Copyright 2020 Enea Guidi (hmny). All rights reserved.
// This files are distributed under the General Public License v3.0.
// A copy of abovesaid license can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"
	log "github.com/sirupsen/logrus"
	"github.com/teris-io/cli"

	"github.com/nightingale-lzh/fsm-compiler/internal/config"
	"github.com/nightingale-lzh/fsm-compiler/internal/lower"
	"github.com/nightingale-lzh/fsm-compiler/internal/optimize"
	"github.com/nightingale-lzh/fsm-compiler/internal/visualize"
)

// renderCmd renders the optimized FSM through a live graphviz graph,
// the same Export path Choreia's own fsa.go uses for its local views.
var renderCmd = cli.
	NewCommand("render", "Renders the optimized FSM to an image file via Graphviz").
	WithArg(cli.NewArg("input", "Path to the JSON AST interchange file").WithType(cli.TypeString)).
	WithOption(cli.NewOption("output", "Output image path (default: <input>.svg)").WithChar('o').WithType(cli.TypeString)).
	WithOption(cli.NewOption("level", "Optimization level 0-5 (default: 4)").WithChar('l').WithType(cli.TypeString)).
	WithOption(cli.NewOption("format", "Image format: svg or png (default: svg)").WithChar('t').WithType(cli.TypeString)).
	WithAction(handlerRender)

func handlerRender(args []string, options map[string]string) int {
	input := args[0]

	program, err := config.LoadProgram(input)
	if err != nil {
		log.Fatal(err)
	}

	level := optimize.MaxLevel - 1
	if raw := options["level"]; raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("render: invalid --level %q: %s", raw, err)
		}
		level = parsed
	}

	machine := lower.BuildMachine(program)
	optimize.Pipeline(machine.Start, level)

	format := graphviz.SVG
	ext := "svg"
	if strings.ToLower(options["format"]) == "png" {
		format = graphviz.PNG
		ext = "png"
	}

	output := options["output"]
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + ext
	}

	log.Infof("Rendering FSM to '%s'...", output)
	if err := visualize.RenderFile(machine.Start, output, format); err != nil {
		log.Fatalf("render: %s", err)
	}
	return 0
}
