// Copyright 2020 Enea Guidi (hmny). All rights reserved.
// This files are distributed under the General Public License v3.0.
// A copy of abovesaid license can be found in the LICENSE file.

package optimize

import "github.com/nightingale-lzh/fsm-compiler/internal/fsm"

// BypassChainedEmptyState is S2: drop a collapsible, empty, uniquely
// reachable pass-through node by redirecting its lone incoming edge
// straight to its successor.
func BypassChainedEmptyState(start *fsm.Node) bool {
	return runToFixpoint(start, bypassChainedEmptyAttempt)
}

func bypassChainedEmptyAttempt(start, node *fsm.Node) bool {
	if len(node.Transitions) != 1 {
		return false
	}

	t := node.Transitions[0]
	next := t.Target

	if !node.Collapsible || len(node.CodeBlock) != 0 || t.Condition != "" || next.EntryCondition != "" {
		return false
	}

	back := fsm.Incoming(start, node)
	if len(back) != 1 {
		return false
	}

	back[0].Target = next
	return true
}
