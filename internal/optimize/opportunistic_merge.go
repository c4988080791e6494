// Copyright 2020 Enea Guidi (hmny). All rights reserved.
// This files are distributed under the General Public License v3.0.
// A copy of abovesaid license can be found in the LICENSE file.

package optimize

import "github.com/nightingale-lzh/fsm-compiler/internal/fsm"

// isTrulyCollapsible ignores the advisory Collapsible bit and instead
// checks, structurally, whether node could be folded into its unique
// predecessor without changing behavior: exactly one incoming edge, that
// edge unconditional, no entry condition, somewhere left to go, and not
// the start node itself.
func isTrulyCollapsible(start, node *fsm.Node) bool {
	back := fsm.Incoming(start, node)
	return len(back) == 1 &&
		back[0].Condition == "" &&
		node.EntryCondition == "" &&
		len(node.Transitions) >= 1 &&
		node != start
}

// OpportunisticMergeViaTrulyCollapsible is S5: the same merge shape as S1
// (CollapseConsecutiveStates), but driven by isTrulyCollapsible instead
// of the Collapsible advisory bit. This can fold nodes the lowering pass
// deliberately marked non-collapsible (loop headers, join points), so it
// is the most aggressive strategy and only runs at the highest
// optimization level.
func OpportunisticMergeViaTrulyCollapsible(start *fsm.Node) bool {
	return runToFixpoint(start, opportunisticMergeAttempt)
}

func opportunisticMergeAttempt(start, node *fsm.Node) bool {
	if len(node.Transitions) != 1 {
		return false
	}

	t := node.Transitions[0]
	next := t.Target

	if t.Condition != "" || !isTrulyCollapsible(start, next) {
		return false
	}

	if len(node.CodeBlock) == 0 {
		node.CodeBlock = next.CodeBlock
	} else if len(next.CodeBlock) > 0 {
		node.CodeBlock = append(node.CodeBlock, next.CodeBlock...)
	}
	node.Transitions = next.Transitions

	return true
}
