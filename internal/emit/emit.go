// Copyright 2020 Enea Guidi (hmny). All rights reserved.
// This files are distributed under the General Public License v3.0.
// A copy of abovesaid license can be found in the LICENSE file.

package emit

import (
	"strings"

	"github.com/nightingale-lzh/fsm-compiler/internal/fsm"
)

// Options controls which auxiliary entry points Emit adds alongside the
// core per-tick function, mirroring generate_code_from_FSM's two flags.
type Options struct {
	// FixedIteration emits "<fsmName>_fixed_iteration(count)", a driver
	// that runs the FSM's core function count times in a row.
	FixedIteration bool
	// MinRuntime emits "<fsmName>_min_runtime(ms)", a driver that keeps
	// calling the core function until at least ms milliseconds have
	// elapsed.
	MinRuntime bool
}

// assignStateIDs gives every reachable node a stable integer id: the
// start node is always 0, the (single) terminal node is always 1, and
// every other node gets the next id starting from 10 in traversal
// order — mirroring generate_code_from_FSM's state_counter, which
// deliberately leaves 2-9 unused as a gap for hand-written states in the
// target runtime.
func assignStateIDs(start *fsm.Node) map[*fsm.Node]int {
	nodes := fsm.ForwardReachable(start)

	var end *fsm.Node
	for _, n := range nodes {
		if fsm.IsTerminal(n) {
			end = n
			break
		}
	}

	ids := make(map[*fsm.Node]int, len(nodes))
	counter := 10
	for _, n := range nodes {
		switch {
		case n == start:
			ids[n] = 0
		case n == end:
			ids[n] = 1
		default:
			ids[n] = counter
			counter++
		}
	}
	return ids
}

// Emit renders m's function body as C/C++ source, per spec §4.4.
func Emit(m *fsm.Machine, opts Options) string {
	ids := assignStateIDs(m.Start)
	nodes := fsm.ForwardReachable(m.Start)

	ordered := make([]*fsm.Node, len(nodes))
	copy(ordered, nodes)
	sortByID(ordered, ids)

	var b strings.Builder

	for _, g := range m.Globals {
		b.WriteString(declareGlobalVariable(g.Type, g.Name))
		b.WriteByte('\n')
	}
	for _, line := range m.GlobalCodeBlock {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(metaVariableDeclaration(m.Name))
	b.WriteByte('\n')
	b.WriteByte('\n')
	b.WriteString(functionHeader(m.Name))
	b.WriteByte('\n')

	for _, n := range ordered {
		writeState(&b, m.Name, ids, n)
		b.WriteByte('\n')
	}

	b.WriteString("}\n\n")

	if opts.FixedIteration {
		writeFixedIteration(&b, m.Name)
	}
	if opts.MinRuntime {
		writeMinRuntime(&b, m.Name)
	}

	return b.String()
}

func sortByID(nodes []*fsm.Node, ids map[*fsm.Node]int) {
	for i := 1; i < len(nodes); i++ {
		for j := i; j > 0 && ids[nodes[j-1]] > ids[nodes[j]]; j-- {
			nodes[j-1], nodes[j] = nodes[j], nodes[j-1]
		}
	}
}

func writeState(b *strings.Builder, fsmName string, ids map[*fsm.Node]int, n *fsm.Node) {
	b.WriteString("    ")
	b.WriteString(stateHeader(fsmName, ids[n]))
	b.WriteByte('\n')

	if n.EntryCondition != "" {
		b.WriteString("        ")
		b.WriteString(stateEntryCondition(n.EntryCondition))
		b.WriteString("\n\n")
	}

	for _, line := range n.CodeBlock {
		b.WriteString("        ")
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteByte('\n')

	for _, t := range n.Transitions {
		writeTransition(b, fsmName, ids[t.Target], t)
		b.WriteByte('\n')
	}

	if len(n.Transitions) == 0 {
		b.WriteString("        return;\n")
	}

	b.WriteString("    }\n")
}

func writeTransition(b *strings.Builder, fsmName string, targetID int, t *fsm.Transition) {
	if t.Condition == "" {
		for _, line := range t.CodeBlock {
			b.WriteString("        ")
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteString("        ")
		b.WriteString(changeState(fsmName, targetID))
		b.WriteString("\n        return;\n")
		return
	}

	b.WriteString("        ")
	b.WriteString(transitionHeader(t.Condition))
	b.WriteByte('\n')
	for _, line := range t.CodeBlock {
		b.WriteString("            ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("            ")
	b.WriteString(changeState(fsmName, targetID))
	b.WriteString("\n            return;\n        }\n")
}

func writeFixedIteration(b *strings.Builder, fsmName string) {
	b.WriteString(fixedIterationHeader(fsmName))
	b.WriteByte('\n')
	b.WriteString("    ")
	b.WriteString(fixedIterationLoop(fsmName))
	b.WriteString("\n}\n")
}

func writeMinRuntime(b *strings.Builder, fsmName string) {
	b.WriteString(minRuntimeDeclareTimeVariable(fsmName))
	b.WriteString("\n\n")
	b.WriteString(minRuntimeIterationHeader(fsmName))
	b.WriteByte('\n')
	b.WriteString("    ")
	b.WriteString(minRuntimeRegisterTime(fsmName))
	b.WriteByte('\n')
	b.WriteString("    ")
	b.WriteString(minRuntimeIterationLoop(minRuntimeIsTimePassed(fsmName, "ms")))
	b.WriteByte('\n')
	b.WriteString("        ")
	b.WriteString(fsmName)
	b.WriteString("();\n    }\n}\n")
}
