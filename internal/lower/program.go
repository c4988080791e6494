// Copyright 2020 Enea Guidi (hmny). All rights reserved.
// This files are distributed under the General Public License v3.0.
// A copy of abovesaid license can be found in the LICENSE file.

package lower

import (
	"github.com/nightingale-lzh/fsm-compiler/internal/ast"
	"github.com/nightingale-lzh/fsm-compiler/internal/emit"
	"github.com/nightingale-lzh/fsm-compiler/internal/fsm"
)

// BuildMachine lowers an entire Program into a raw (unoptimized)
// Machine, matching ParseResult.to_fsm plus convert_to_raw_state_machine.
//
// Top-level Break, Continue and Return all rewire to the machine's end:
// there being no enclosing loop to claim Break/Continue first, Program
// claims them itself and ends the function there, the same as Return.
func BuildMachine(p ast.Program) *fsm.Machine {
	start := fsm.NewNode()
	start.Collapsible = false
	end := fsm.NewNode()
	end.Collapsible = false

	body := Lower(p.Body, p.Name)

	start.AddTransition(&fsm.Transition{Target: body.Start})
	body.End.AddTransition(&fsm.Transition{Target: end})

	if len(body.ContinueNodes) > 0 {
		rewirePending(body.ContinueNodes, end)
	}
	if len(body.BreakNodes) > 0 {
		rewirePending(body.BreakNodes, end)
	}
	if len(body.ReturnNodes) > 0 {
		rewirePending(body.ReturnNodes, end)
	}

	var globalCode []string
	if fsm.UsesWait(start) {
		globalCode = []string{emit.DeclareTimeVariable(p.Name)}
	}

	return &fsm.Machine{
		Name:            p.Name,
		Globals:         body.Globals,
		GlobalCodeBlock: globalCode,
		Start:           start,
	}
}
