// Copyright 2020 Enea Guidi (hmny). All rights reserved.
// This files are distributed under the General Public License v3.0.
// A copy of abovesaid license can be found in the LICENSE file.

package optimize

import "github.com/nightingale-lzh/fsm-compiler/internal/fsm"

// ChainedMergingThroughJunction is S4: eliminate an empty, ungated node A
// whose sole unconditional edge leads to a B that itself has somewhere
// left to go and no entry condition. A non-start A is bypassed by
// retargeting its incoming edges directly to B. A start-node A instead
// absorbs B's shape in place, preserving the start node's identity for
// callers holding a reference to it, and anything that pointed at B is
// redirected to A.
//
// This is the only strategy allowed to fold away an uncollapsible node;
// the empty-entry-condition precondition on both sides is what keeps
// behavior unchanged regardless.
func ChainedMergingThroughJunction(start *fsm.Node) bool {
	return runToFixpoint(start, chainedMergingAttempt)
}

func chainedMergingAttempt(start, node *fsm.Node) bool {
	if len(node.Transitions) != 1 {
		return false
	}

	t := node.Transitions[0]
	next := t.Target

	if len(node.CodeBlock) != 0 || node.EntryCondition != "" || t.Condition != "" {
		return false
	}
	if len(next.Transitions) < 1 || next.EntryCondition != "" {
		return false
	}

	back := fsm.Incoming(start, node)

	if len(back) > 0 {
		for _, bt := range back {
			bt.Target = next
		}
		return true
	}

	// node is the start node itself: absorb next's shape so the start
	// node's identity survives, then redirect whoever pointed at next
	// to point at node instead.
	node.Transitions = next.Transitions
	node.Collapsible = next.Collapsible
	node.CodeBlock = next.CodeBlock

	for _, bt := range fsm.Incoming(start, next) {
		bt.Target = node
	}

	return true
}
