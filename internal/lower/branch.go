// Copyright 2020 Enea Guidi (hmny). All rights reserved.
// This files are distributed under the General Public License v3.0.
// A copy of abovesaid license can be found in the LICENSE file.

package lower

import (
	"github.com/nightingale-lzh/fsm-compiler/internal/ast"
	"github.com/nightingale-lzh/fsm-compiler/internal/fsm"
)

// lowerIf builds one guarded transition per IfCase out of the shared
// start node, and merges every case's End back into a shared, single
// uncollapsible end node. A case whose Condition is "" is the else
// branch; when no case supplies one, a final unconditional fallthrough
// to end is added so the If always has a way out.
func lowerIf(v ast.If, fsmName string) Lowered {
	start := fsm.NewNode()
	end := fsm.NewNode()
	end.Collapsible = false

	var globals []fsm.GlobalVar
	var returns, breaks, continues []*fsm.Node
	hasElse := false

	for _, c := range v.Cases {
		if c.Condition == "" {
			hasElse = true
		}

		sub := Lower(c.Body, fsmName)

		globals = append(globals, sub.Globals...)
		returns = append(returns, sub.ReturnNodes...)
		breaks = append(breaks, sub.BreakNodes...)
		continues = append(continues, sub.ContinueNodes...)

		start.AddTransition(&fsm.Transition{Condition: c.Condition, Target: sub.Start})
		sub.End.AddTransition(&fsm.Transition{Target: end})
	}

	if !hasElse {
		start.AddTransition(&fsm.Transition{Target: end})
	}

	return Lowered{
		Start: start, End: end,
		Globals:       globals,
		ReturnNodes:   returns,
		BreakNodes:    breaks,
		ContinueNodes: continues,
	}
}
