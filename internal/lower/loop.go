// Copyright 2020 Enea Guidi (hmny). All rights reserved.
// This files are distributed under the General Public License v3.0.
// A copy of abovesaid license can be found in the LICENSE file.

package lower

import (
	"github.com/nightingale-lzh/fsm-compiler/internal/ast"
	"github.com/nightingale-lzh/fsm-compiler/internal/fsm"
)

// rewirePending clears every pending node's transitions (they have none
// yet, but this matches the reference's defensive .clear()) and points
// each one, unconditionally, at target. Used to resolve Break/Continue
// placeholders once the enclosing loop knows where they actually go.
func rewirePending(nodes []*fsm.Node, target *fsm.Node) {
	for _, n := range nodes {
		n.Transitions = nil
		n.AddTransition(&fsm.Transition{Target: target})
	}
}

// lowerWhile lowers a pre-test loop. node_start carries the loop
// condition and is uncollapsible (multiple edges will target it: the
// initial entry, every continue, and the body's fallthrough), matching
// StatementWhile.to_fsm.
func lowerWhile(v ast.While, fsmName string) Lowered {
	start := fsm.NewNode()
	start.Collapsible = false
	end := fsm.NewNode()

	body := Lower(v.Body, fsmName)

	start.AddTransition(&fsm.Transition{Condition: v.Condition, Target: body.Start})
	start.AddTransition(&fsm.Transition{Target: end})

	body.End.AddTransition(&fsm.Transition{Target: start})

	if len(body.ContinueNodes) > 0 {
		rewirePending(body.ContinueNodes, start)
	}
	if len(body.BreakNodes) > 0 {
		rewirePending(body.BreakNodes, end)
		end.Collapsible = false
	}

	return Lowered{
		Start: start, End: end,
		Globals:     body.Globals,
		ReturnNodes: body.ReturnNodes,
	}
}

// lowerDoWhile lowers a post-test loop: the body always runs once before
// the condition is evaluated, matching StatementDoWhile.to_fsm.
func lowerDoWhile(v ast.DoWhile, fsmName string) Lowered {
	start := fsm.NewNode()
	start.Collapsible = false
	end := fsm.NewNode()

	body := Lower(v.Body, fsmName)

	start.AddTransition(&fsm.Transition{Target: body.Start})

	body.End.AddTransition(&fsm.Transition{Condition: v.Condition, Target: start})
	body.End.AddTransition(&fsm.Transition{Target: end})

	if len(body.ContinueNodes) > 0 {
		rewirePending(body.ContinueNodes, start)
	}
	if len(body.BreakNodes) > 0 {
		rewirePending(body.BreakNodes, end)
		end.Collapsible = false
	}

	return Lowered{
		Start: start, End: end,
		Globals:     body.Globals,
		ReturnNodes: body.ReturnNodes,
	}
}

// lowerFor lowers a classic C-style for loop. continue rewires to
// node_start — re-running Init — rather than to the loop header; this
// reproduces StatementFor.to_fsm exactly and is a documented deviation
// from C's "continue skips init, runs update" semantics (see
// DESIGN.md Open Question 1), not a bug to fix here.
func lowerFor(v ast.For, fsmName string) Lowered {
	start := fsm.NewNode()

	loopStart := fsm.NewNode()
	loopStart.Collapsible = false

	end := fsm.NewNode()

	init := Lower(v.Init, fsmName)
	update := Lower(v.Update, fsmName)
	body := Lower(v.Body, fsmName)

	var globals []fsm.GlobalVar
	globals = append(globals, init.Globals...)
	globals = append(globals, update.Globals...)
	globals = append(globals, body.Globals...)

	start.AddTransition(&fsm.Transition{Target: init.Start})
	init.End.AddTransition(&fsm.Transition{Target: loopStart})

	loopStart.AddTransition(&fsm.Transition{Condition: v.Condition, Target: body.Start})
	loopStart.AddTransition(&fsm.Transition{Target: end})

	body.End.AddTransition(&fsm.Transition{Target: update.Start})
	update.End.AddTransition(&fsm.Transition{Target: loopStart})

	if len(body.ContinueNodes) > 0 {
		rewirePending(body.ContinueNodes, start)
	}
	if len(body.BreakNodes) > 0 {
		rewirePending(body.BreakNodes, end)
		end.Collapsible = false
	}

	return Lowered{
		Start: start, End: end,
		Globals:     globals,
		ReturnNodes: body.ReturnNodes,
	}
}
