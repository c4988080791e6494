// Copyright 2020 Enea Guidi (hmny). All rights reserved.
// This files are distributed under the General Public License v3.0.
// A copy of abovesaid license can be found in the LICENSE file.

package optimize

import "github.com/nightingale-lzh/fsm-compiler/internal/fsm"

// CollapseConsecutiveStates is S1: merge A -> B into a single node when A
// has exactly one unconditional outgoing edge and B is collapsible.
func CollapseConsecutiveStates(start *fsm.Node) bool {
	return runToFixpoint(start, collapseConsecutiveAttempt)
}

func collapseConsecutiveAttempt(_, node *fsm.Node) bool {
	if len(node.Transitions) != 1 {
		return false
	}

	t := node.Transitions[0]
	next := t.Target

	if t.Condition != "" || !next.Collapsible {
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
