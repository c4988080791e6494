// Copyright 2020 Enea Guidi (hmny). All rights reserved.
// This files are distributed under the General Public License v3.0.
// A copy of abovesaid license can be found in the LICENSE file.

// Package optimize implements the five-level fix-point rewrite pipeline
// that turns a raw, lowering-produced FSM into a compact one, without
// changing its observable behavior (spec §4.3).
//
// Each strategy is bit-exact against
// original_source/fsm_compiler/assembler.py's optimize_fsm_* functions.
// The shared scan-and-restart shape below replaces their hand-rolled
// Python while/search_queue loops with the same BFS-with-visited-set
// idiom internal/fsm/traverse.go already uses (itself grounded on
// Choreia's subset_construction.go), parameterized by a per-strategy
// attempt closure.
package optimize

import (
	list "github.com/emirpasic/gods/lists/singlylinkedlist"
	set "github.com/emirpasic/gods/sets/hashset"

	"github.com/nightingale-lzh/fsm-compiler/internal/fsm"
)

// attempt inspects node and, if the strategy's rewrite condition holds,
// mutates the graph in place and reports true. start is passed through
// for strategies that need reverse (incoming-edge) lookups; strategies
// that don't need it simply ignore the parameter.
type attempt func(start, node *fsm.Node) bool

// runToFixpoint repeatedly scans forward from start, applying try to
// each node in breadth-first order; the instant try fires, the scan
// restarts from start (since the rewrite may have changed reachability
// or node shapes arbitrarily). It terminates when a full scan produces
// no rewrite. Mirrors the has_modified/has_modified_master double loop
// shared by every optimize_fsm_* function in assembler.py.
func runToFixpoint(start *fsm.Node, try attempt) bool {
	modifiedOverall := false

	for {
		firedThisPass := false

		visited := set.New(start)
		queue := list.New(start)

		for i := 0; i < queue.Size(); i++ {
			item, _ := queue.Get(i)
			node := item.(*fsm.Node)

			if len(node.Transitions) == 0 {
				continue
			}

			if try(start, node) {
				firedThisPass = true
				modifiedOverall = true
				break
			}

			for _, t := range node.Transitions {
				if t.Target != nil && !visited.Contains(t.Target) {
					visited.Add(t.Target)
					queue.Add(t.Target)
				}
			}
		}

		if !firedThisPass {
			break
		}
	}

	return modifiedOverall
}
