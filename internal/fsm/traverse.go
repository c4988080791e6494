// Copyright 2020 Enea Guidi (hmny). All rights reserved.
// This files are distributed under the General Public License v3.0.
// A copy of abovesaid license can be found in the LICENSE file.

package fsm

import (
	"strings"

	list "github.com/emirpasic/gods/lists/singlylinkedlist"
	set "github.com/emirpasic/gods/sets/hashset"
)

// waitSentinel is the macro the lowering pass emits into EntryCondition
// for a timed WAIT; its presence anywhere in the reachable graph means
// the generated code needs the machine-wide timer variable declaration
// (spec §4.6). Mirrors assembler.py's check_wait_statement_usage.
const waitSentinel = "__IS_TIME_PASSED("

// ForwardReachable returns every Node reachable from start (start
// included), each exactly once, in breadth-first order. Used by Incoming
// (and so by internal/optimize's reverse-edge lookups) and by
// internal/visualize/internal/emit to decide traversal order.
//
// Follows the BFS-with-set idiom of Choreia's own
// internal/transforms/subset_construction.go (newEpsClosure), adapted
// from a states-by-id set to a set of *Node pointers, since identity here
// is the pointer itself rather than a synthetic id.
func ForwardReachable(start *Node) []*Node {
	if start == nil {
		return nil
	}

	visited := set.New(start)
	queue := list.New(start)
	order := []*Node{start}

	for i := 0; i < queue.Size(); i++ {
		item, _ := queue.Get(i)
		node := item.(*Node)

		for _, t := range node.Transitions {
			if t.Target == nil || visited.Contains(t.Target) {
				continue
			}
			visited.Add(t.Target)
			queue.Add(t.Target)
			order = append(order, t.Target)
		}
	}

	return order
}

// Incoming returns every Transition, among those reachable from start,
// whose Target is target. Grounded on assembler.py's
// trace_back_transition, which the optimizer's S2/S4 strategies depend on
// to decide whether a node has exactly one incoming edge.
func Incoming(start, target *Node) []*Transition {
	var incoming []*Transition
	for _, node := range ForwardReachable(start) {
		for _, t := range node.Transitions {
			if t.Target == target {
				incoming = append(incoming, t)
			}
		}
	}
	return incoming
}

// IsTerminal reports whether n has no outgoing transitions, i.e. it ends
// the machine's execution once entered.
func IsTerminal(n *Node) bool {
	return n != nil && len(n.Transitions) == 0
}

// Terminals returns every terminal node reachable from start.
func Terminals(start *Node) []*Node {
	var terms []*Node
	for _, n := range ForwardReachable(start) {
		if IsTerminal(n) {
			terms = append(terms, n)
		}
	}
	return terms
}

// UsesWait reports whether any node reachable from start carries a timed
// WAIT entry condition, i.e. the generated code needs the
// __DECLARE_TIME_VARIABLE timer declaration (spec §4.6). This must run before optimization: node/transition
// merging during the optimizer passes can relocate code_blocks, but an
// entry condition never moves off the node that owns it, so the check is
// stable either way — running it up front just avoids recomputing it
// once per optimizer pass.
func UsesWait(start *Node) bool {
	for _, n := range ForwardReachable(start) {
		if strings.Contains(n.EntryCondition, waitSentinel) {
			return true
		}
	}
	return false
}
