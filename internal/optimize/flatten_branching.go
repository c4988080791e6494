// Copyright 2020 Enea Guidi (hmny). All rights reserved.
// This files are distributed under the General Public License v3.0.
// A copy of abovesaid license can be found in the LICENSE file.

package optimize

import "github.com/nightingale-lzh/fsm-compiler/internal/fsm"

// FlattenChainedBranching is S3: when A's trailing (else) edge leads
// into an empty, collapsible branching junction B, splice B's edges
// directly into A in place of that one edge — flattening
// "else if" chains (and similarly shaped while/if sequences).
func FlattenChainedBranching(start *fsm.Node) bool {
	return runToFixpoint(start, flattenChainedBranchingAttempt)
}

func flattenChainedBranchingAttempt(_, node *fsm.Node) bool {
	if len(node.Transitions) < 2 {
		return false
	}

	last := node.Transitions[len(node.Transitions)-1]
	if last.Condition != "" {
		return false
	}

	next := last.Target
	if len(next.CodeBlock) != 0 || next.EntryCondition != "" || len(next.Transitions) < 2 || !next.Collapsible {
		return false
	}

	node.Transitions = append(node.Transitions[:len(node.Transitions)-1], next.Transitions...)
	return true
}
