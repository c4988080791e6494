// Copyright 2020 Enea Guidi (hmny). All rights reserved.
// This files are distributed under the General Public License v3.0.
// A copy of abovesaid license can be found in the LICENSE file.

package lower

import (
	"github.com/nightingale-lzh/fsm-compiler/internal/ast"
	"github.com/nightingale-lzh/fsm-compiler/internal/emit"
	"github.com/nightingale-lzh/fsm-compiler/internal/fsm"
)

// lowerWait lowers WAIT(ms) and YIELD (Ms == ""). YIELD is a single node
// with entry condition "true" and no code: the machine always re-enters
// on the next tick, which is exactly a one-tick suspension and gives the
// optimizer the smallest possible shape to work with. A timed WAIT splits
// into a node that registers the current time and a second, uncollapsible
// node that blocks re-entry until that much time has passed — matching
// StatementWait.to_fsm.
func lowerWait(v ast.Wait, fsmName string) Lowered {
	if v.Ms == "" {
		n := fsm.NewNode()
		n.Collapsible = false
		n.EntryCondition = "true"
		return leaf(n)
	}

	registerTime := fsm.NewNode()
	registerTime.CodeBlock = []string{emit.RegisterTime(fsmName)}

	entryUntil := fsm.NewNode()
	entryUntil.Collapsible = false
	entryUntil.EntryCondition = emit.IsTimePassed(fsmName, v.Ms)

	registerTime.AddTransition(&fsm.Transition{Target: entryUntil})

	return Lowered{Start: registerTime, End: entryUntil}
}

// lowerWaitUnless lowers WAIT_UNLESS(condition): a single uncollapsible
// node that blocks re-entry until the user-supplied condition holds.
func lowerWaitUnless(v ast.WaitUnless) Lowered {
	n := fsm.NewNode()
	n.Collapsible = false
	n.EntryCondition = v.Condition
	return leaf(n)
}
