// Copyright 2020 Enea Guidi (hmny). All rights reserved.
// This files are distributed under the General Public License v3.0.
// A copy of abovesaid license can be found in the LICENSE file.

package lower

import (
	"github.com/nightingale-lzh/fsm-compiler/internal/ast"
	"github.com/nightingale-lzh/fsm-compiler/internal/fsm"
)

func lowerLine(v ast.Line) Lowered {
	n := fsm.NewNode()
	n.CodeBlock = []string{v.Code + ";"}
	return leaf(n)
}

func lowerOrdinary(v ast.Ordinary) Lowered {
	n := fsm.NewNode()
	n.CodeBlock = []string{v.Code}
	return leaf(n)
}

// lowerBlock sequences each statement's sub-graph behind the previous
// one's End node via an unconditional eps transition, threading pending
// exits through unchanged.
func lowerBlock(v ast.Block, fsmName string) Lowered {
	start := fsm.NewNode()
	end := start

	var globals []fsm.GlobalVar
	var returns, breaks, continues []*fsm.Node

	for _, stmt := range v.Stmts {
		sub := Lower(stmt, fsmName)

		globals = append(globals, sub.Globals...)
		returns = append(returns, sub.ReturnNodes...)
		breaks = append(breaks, sub.BreakNodes...)
		continues = append(continues, sub.ContinueNodes...)

		end.AddTransition(&fsm.Transition{Target: sub.Start})
		end = sub.End
	}

	return Lowered{
		Start: start, End: end,
		Globals:       globals,
		ReturnNodes:   returns,
		BreakNodes:    breaks,
		ContinueNodes: continues,
	}
}
