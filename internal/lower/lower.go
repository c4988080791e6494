// Copyright 2020 Enea Guidi (hmny). All rights reserved.
// This files are distributed under the General Public License v3.0.
// A copy of abovesaid license can be found in the LICENSE file.

// Package lower turns an internal/ast statement tree into a raw (i.e. not
// yet optimized) internal/fsm graph, one construct at a time.
//
// Dispatch follows the same shape as Choreia's own
// internal/static_analysis/function.go FuncMetadata.Visit: a single type
// switch over the closed Node set, one private lowerXxx function per
// case, each living in the file named after the construct group it
// handles.
package lower

import (
	"fmt"

	"github.com/nightingale-lzh/fsm-compiler/internal/ast"
	"github.com/nightingale-lzh/fsm-compiler/internal/fsm"
)

// Lowered is the result of lowering one statement: a self-contained
// sub-graph plus the bookkeeping its enclosing construct needs to finish
// wiring it in. It mirrors the Python reference's TO_FSM_Return.
type Lowered struct {
	// Start is the sub-graph's single entry node.
	Start *fsm.Node
	// End is the sub-graph's single "falls through" exit node; the
	// caller is responsible for wiring an outgoing transition from it.
	End *fsm.Node

	// Globals collects every GLOBAL declaration found anywhere under
	// this statement, bubbled all the way up to the enclosing Program.
	Globals []fsm.GlobalVar

	// ReturnNodes, BreakNodes and ContinueNodes are pending exit nodes:
	// placeholders with no outgoing transitions yet, produced by a
	// Return/Break/Continue statement respectively. They bubble up
	// through every enclosing construct that doesn't own the
	// corresponding exit (Return bubbles past loops; Break/Continue
	// bubble past everything except the nearest enclosing loop) until
	// something rewires them to their real target.
	ReturnNodes   []*fsm.Node
	BreakNodes    []*fsm.Node
	ContinueNodes []*fsm.Node
}

// Lower lowers a single statement node into its sub-graph. fsmName is
// threaded through to WAIT's timer macros, which are named after the
// machine they belong to.
func Lower(n ast.Node, fsmName string) Lowered {
	switch v := n.(type) {
	case ast.Line:
		return lowerLine(v)
	case ast.Ordinary:
		return lowerOrdinary(v)
	case ast.Block:
		return lowerBlock(v, fsmName)
	case ast.If:
		return lowerIf(v, fsmName)
	case ast.While:
		return lowerWhile(v, fsmName)
	case ast.DoWhile:
		return lowerDoWhile(v, fsmName)
	case ast.For:
		return lowerFor(v, fsmName)
	case ast.Declaration:
		return lowerDeclaration(v)
	case ast.DeclarationInit:
		return lowerDeclarationInit(v)
	case ast.Wait:
		return lowerWait(v, fsmName)
	case ast.WaitUnless:
		return lowerWaitUnless(v)
	case ast.Break:
		return lowerBreak()
	case ast.Continue:
		return lowerContinue()
	case ast.Return:
		return lowerReturn()
	default:
		panic(fmt.Sprintf("lower: unsupported node type %T", n))
	}
}

// leaf builds the common case of a Lowered sub-graph that is just a
// single node with no pending exits and no globals of its own.
func leaf(n *fsm.Node) Lowered {
	return Lowered{Start: n, End: n}
}
