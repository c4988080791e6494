// Copyright 2020 Enea Guidi (hmny). All rights reserved.
// This files are distributed under the General Public License v3.0.
// A copy of abovesaid license can be found in the LICENSE file.

// Package visualize renders an internal/fsm graph as DOT, Mermaid, or a
// live graphviz image, for inspection rather than code generation (spec
// §4.5). Shapes and escaping rules are grounded on
// original_source/fsm_compiler/code_gen.py's fsm_to_graphviz_dot and
// fsm_to_mermaid; the live-render path is grounded on Choreia's own
// internal/data_structures/fsa/fsa.go Export.
package visualize

import (
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/nightingale-lzh/fsm-compiler/internal/fsm"
)

// escape replaces the two characters that would otherwise break a DOT or
// Mermaid string literal: a literal quote becomes a doubled single quote,
// and a backslash is doubled so it can't start an escape sequence.
func escape(s string) string {
	s = strings.ReplaceAll(s, `"`, "''")
	s = strings.ReplaceAll(s, `\`, `\\`)
	return s
}

func labelNode(nodes []*fsm.Node) map[*fsm.Node]int {
	ids := make(map[*fsm.Node]int, len(nodes))
	for i, n := range nodes {
		ids[n] = i
	}
	return ids
}

func nodeBody(n *fsm.Node, lineSep string) string {
	code := strings.Join(n.CodeBlock, lineSep)
	switch {
	case n.EntryCondition == "" && len(n.CodeBlock) == 0:
		return ""
	case n.EntryCondition == "":
		return escape(code)
	case len(n.CodeBlock) == 0:
		return "ENTRY: " + escape(n.EntryCondition)
	default:
		return "ENTRY: " + escape(n.EntryCondition) + lineSep + escape(code)
	}
}

// DOT renders fsm as a Graphviz DOT digraph. debug distinguishes
// collapsible states with an ellipse shape, matching the teacher
// renderer's debug mode.
func DOT(start *fsm.Node, globals []fsm.GlobalVar, debug bool) string {
	nodes := fsm.ForwardReachable(start)
	ids := labelNode(nodes)

	var b strings.Builder
	b.WriteString("digraph {\n")

	for _, n := range nodes {
		label := nodeBody(n, `\n`)
		if label == "" {
			label = "_"
		}

		shape := "rect"
		switch {
		case n == start:
			shape = "Msquare"
		case debug && n.Collapsible:
			shape = "ellipse"
		}

		fmt.Fprintf(&b, "   s%d [shape=%s, label=\"%s\"];\n", ids[n], shape, label)
	}

	b.WriteString("\n")
	for _, n := range nodes {
		for _, t := range n.Transitions {
			writeDotEdge(&b, ids[n], ids[t.Target], t)
		}
	}

	if globals != nil {
		b.WriteString("\n    global_vars [shape=rect, label=\"Global Variables\\n")
		for _, g := range globals {
			fmt.Fprintf(&b, "%s %s;\\n", g.Type, g.Name)
		}
		b.WriteString("\"]\n")
	}

	b.WriteString("}")
	return b.String()
}

func writeDotEdge(b *strings.Builder, from, to int, t *fsm.Transition) {
	code := strings.Join(t.CodeBlock, `\n`)
	switch {
	case t.Condition == "" && len(t.CodeBlock) == 0:
		fmt.Fprintf(b, "   s%d -> s%d;\n", from, to)
	case t.Condition == "":
		fmt.Fprintf(b, "   s%d -> s%d [label=\"-----\\n%s\"];\n", from, to, escape(code))
	case len(t.CodeBlock) == 0:
		fmt.Fprintf(b, "   s%d -> s%d [label=\"%s\"];\n", from, to, escape(t.Condition))
	default:
		fmt.Fprintf(b, "   s%d -> s%d [label=\"%s\\n-----\\n%s\"];\n", from, to, escape(t.Condition), escape(code))
	}
}

// Mermaid renders fsm as a fenced Mermaid flowchart block.
func Mermaid(start *fsm.Node, globals []fsm.GlobalVar, debug bool) string {
	nodes := fsm.ForwardReachable(start)
	ids := labelNode(nodes)

	var b strings.Builder
	b.WriteString("```mermaid\nflowchart TB\n")

	for _, n := range nodes {
		open, closeShape := "[", "]"
		switch {
		case n == start:
			open, closeShape = "[[", "]]"
		case debug && n.Collapsible:
			open, closeShape = "([", "])"
		}

		label := nodeBody(n, "\n")
		if label == "" {
			fmt.Fprintf(&b, "   %d%s_%s\n", ids[n], open, closeShape)
		} else {
			fmt.Fprintf(&b, "   %d%s\"`%s`\"%s\n", ids[n], open, label, closeShape)
		}
	}

	b.WriteString("\n")
	for _, n := range nodes {
		for _, t := range n.Transitions {
			writeMermaidEdge(&b, ids[n], ids[t.Target], t)
		}
	}

	if globals != nil {
		b.WriteString("\n    global_vars[\"`Global Variables\n")
		for _, g := range globals {
			fmt.Fprintf(&b, "        %s %s;\n", g.Type, g.Name)
		}
		b.WriteString("    `\"]\n")
	}

	b.WriteString("```")
	return b.String()
}

func writeMermaidEdge(b *strings.Builder, from, to int, t *fsm.Transition) {
	code := strings.Join(t.CodeBlock, "\n")
	switch {
	case t.Condition == "" && len(t.CodeBlock) == 0:
		fmt.Fprintf(b, "   %d --> %d\n", from, to)
	case t.Condition == "":
		fmt.Fprintf(b, "   %d -->|\"`*------*\n%s`\"| %d\n", from, escape(code), to)
	case len(t.CodeBlock) == 0:
		fmt.Fprintf(b, "   %d -->|\"`%s`\"| %d\n", from, escape(t.Condition), to)
	default:
		fmt.Fprintf(b, "   %d -->|\"`%s\n*------*\n%s`\"| %d\n", from, escape(t.Condition), escape(code), to)
	}
}

// RenderFile renders fsm through a live graphviz graph and writes it to
// outputFile in the given format (e.g. graphviz.PNG, graphviz.SVG),
// grounded on Choreia's fsa.go Export.
func RenderFile(start *fsm.Node, outputFile string, format graphviz.Format) error {
	nodes := fsm.ForwardReachable(start)
	ids := labelNode(nodes)

	gv := graphviz.New()
	defer gv.Close()

	graph, err := gv.Graph()
	if err != nil {
		return err
	}
	defer graph.Close()

	node2cg := make(map[*fsm.Node]*cgraph.Node, len(nodes))
	for _, n := range nodes {
		cg, err := graph.CreateNode(fmt.Sprintf("s%d", ids[n]))
		if err != nil {
			return err
		}
		cg.SetShape(cgraph.RectShape)
		if n == start {
			cg.SetShape(cgraph.DoubleCircleShape)
		}
		if len(n.Transitions) == 0 {
			cg.SetShape(cgraph.DoubleCircleShape)
		}
		node2cg[n] = cg
	}

	for _, n := range nodes {
		for i, t := range n.Transitions {
			fromRef, toRef := node2cg[n], node2cg[t.Target]
			edgeID := fmt.Sprintf("s%d-s%d-%d", ids[n], ids[t.Target], i)
			edge, err := graph.CreateEdge(edgeID, fromRef, toRef)
			if err != nil {
				return err
			}
			edge.SetLabel(t.Condition)
		}
	}

	return gv.RenderFilename(graph, format, outputFile)
}
