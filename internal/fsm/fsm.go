// Copyright 2020 Enea Guidi (hmny). All rights reserved.
// This files are distributed under the General Public License v3.0.
// A copy of abovesaid license can be found in the LICENSE file.

// Package fsm declares the raw finite-state-machine graph produced by
// internal/lower, rewritten in place by internal/optimize and read by
// internal/emit and internal/visualize.
//
// Unlike Choreia's own internal/data_structures/fsa (an id-keyed adjacency
// matrix), Node and Transition here are plain pointers: the spec requires
// nodes and transitions to compare by identity, never structurally, which
// a Go pointer graph gives for free via == and map keys, the same way the
// Python reference leans on dataclass + id(). There is no separate id
// space to keep in sync with the graph, and no arena: ownership is just
// whatever is reachable from a Machine's Start node, and the garbage
// collector reclaims cycles the way it does anywhere else in Go.
package fsm

// Node is one state of the machine. CodeBlock holds the (opaque) lines of
// code that run on entry to the state, emitted verbatim and in order.
// Collapsible marks a node that the optimizer is free to merge into a
// neighbour; it starts true for every node the lowering pass manufactures
// and is cleared only for nodes that must remain individually addressable
// (the spec does not need consumers outside internal/optimize to ever
// flip it back).
//
// EntryCondition is the sole suspension primitive: when non-empty, the
// generated code blocks re-entry into this state until the condition
// holds. "true" denotes an unconditional single-tick yield; a
// __IS_TIME_PASSED(...) expression denotes a timed wait; anything else is
// a user-supplied WAIT_UNLESS condition.
type Node struct {
	CodeBlock      []string
	Transitions    []*Transition
	Collapsible    bool
	EntryCondition string
}

// Transition is one outgoing edge of a Node. CodeBlock runs as the state
// changes; Condition, when non-empty, guards the transition (an empty
// Condition means the transition is unconditional and must be the last
// one considered for its source node). The lowering pass never populates
// CodeBlock on a Transition — only the optimizer's merge strategies ever
// would, and none of them do, so it stays empty end to end; it exists so
// the data model doesn't special-case a Mealy-style transition the
// pipeline never actually produces.
type Transition struct {
	CodeBlock []string
	Condition string
	Target    *Node
}

// GlobalVar is one GLOBAL variable declaration hoisted out of the body
// into machine-wide scope. Spec's Open Question #2: duplicate
// declarations (same Name) are kept verbatim and both emitted, matching
// the Python reference's plain-append FSMGlobalVar handling.
type GlobalVar struct {
	Type string
	Name string
}

// Machine is a complete lowered (and optionally optimized) finite state
// machine: a name, its hoisted globals, global setup code that runs once
// before the state loop, and the single entry Node.
type Machine struct {
	Name            string
	Globals         []GlobalVar
	GlobalCodeBlock []string
	Start           *Node
}

// NewNode returns a fresh, collapsible state with no transitions and no
// entry condition — the default shape internal/lower builds before any
// wiring is attached.
func NewNode() *Node {
	return &Node{Collapsible: true}
}

// AddTransition appends t as a new outgoing edge of n. Edges are
// considered in append order, so an unconditional (empty Condition) edge
// must be added last.
func (n *Node) AddTransition(t *Transition) {
	n.Transitions = append(n.Transitions, t)
}

// RemoveTransition deletes the first transition pointer-equal to t from
// n's outgoing edges, if present. A no-op if t is not one of n's edges.
func (n *Node) RemoveTransition(t *Transition) {
	for i, candidate := range n.Transitions {
		if candidate == t {
			n.Transitions = append(n.Transitions[:i], n.Transitions[i+1:]...)
			return
		}
	}
}
