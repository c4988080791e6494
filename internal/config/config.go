// Copyright 2020 Enea Guidi (hmny). All rights reserved.
// This files are distributed under the General Public License v3.0.
// A copy of abovesaid license can be found in the LICENSE file.

// Package config holds the setup shared by both entry points
// (cmd/fsmc, cmd/fsmc-stat): logrus formatter/output/level and the JSON
// AST loader both binaries run as their first step.
package config

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/nightingale-lzh/fsm-compiler/internal/ast"
)

// SetupLogging mirrors the teacher's own init(): colored text formatter,
// stdout instead of the default stderr, trace level so every log line is
// shown.
func SetupLogging() {
	log.SetFormatter(&log.TextFormatter{ForceColors: true, FullTimestamp: true, TimestampFormat: "15:04:05"})
	log.SetOutput(os.Stdout)
	log.SetLevel(log.TraceLevel)
}

// LoadProgram reads and decodes the JSON AST interchange file at path.
// Both binaries take this as their sole input (spec §1 puts concrete
// syntax parsing out of scope, so there is no .dsl source to parse here).
func LoadProgram(path string) (ast.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ast.Program{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	node, err := ast.Decode(data)
	if err != nil {
		return ast.Program{}, fmt.Errorf("config: decoding %s: %w", path, err)
	}

	program, ok := node.(ast.Program)
	if !ok {
		return ast.Program{}, fmt.Errorf("config: %s: root node is %T, not a Program", path, node)
	}
	return program, nil
}
