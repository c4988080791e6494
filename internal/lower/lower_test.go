// Copyright 2020 Enea Guidi (hmny). All rights reserved.
// This files are distributed under the General Public License v3.0.
// A copy of abovesaid license can be found in the LICENSE file.

package lower_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightingale-lzh/fsm-compiler/internal/ast"
	"github.com/nightingale-lzh/fsm-compiler/internal/fsm"
	"github.com/nightingale-lzh/fsm-compiler/internal/lower"
)

func TestLowerLineAppendsSemicolon(t *testing.T) {
	l := lower.Lower(ast.Line{Code: "x++"}, "f")
	assert.Same(t, l.Start, l.End)
	assert.Equal(t, []string{"x++;"}, l.Start.CodeBlock)
}

func TestLowerOrdinaryKeepsCodeVerbatim(t *testing.T) {
	l := lower.Lower(ast.Ordinary{Code: "return 0;"}, "f")
	assert.Equal(t, []string{"return 0;"}, l.Start.CodeBlock)
}

func TestLowerBlockChainsStatements(t *testing.T) {
	l := lower.Lower(ast.Block{Stmts: []ast.Node{
		ast.Line{Code: "a"},
		ast.Line{Code: "b"},
	}}, "f")

	require.Len(t, l.Start.Transitions, 1)
	a := l.Start.Transitions[0].Target
	assert.Equal(t, []string{"a;"}, a.CodeBlock)

	require.Len(t, a.Transitions, 1)
	b := a.Transitions[0].Target
	assert.Equal(t, []string{"b;"}, b.CodeBlock)
	assert.Same(t, b, l.End)
}

func TestLowerIfWithElseHasNoFallthrough(t *testing.T) {
	l := lower.Lower(ast.If{Cases: []ast.IfCase{
		{Condition: "x==1", Body: ast.Line{Code: "p1"}},
		{Condition: "", Body: ast.Line{Code: "p2"}},
	}}, "f")

	require.Len(t, l.Start.Transitions, 2)
	assert.Equal(t, "x==1", l.Start.Transitions[0].Condition)
	assert.Equal(t, "", l.Start.Transitions[1].Condition)
	assert.False(t, l.End.Collapsible)
}

func TestLowerIfWithoutElseAddsFallthrough(t *testing.T) {
	l := lower.Lower(ast.If{Cases: []ast.IfCase{
		{Condition: "x==1", Body: ast.Line{Code: "p1"}},
		{Condition: "x==2", Body: ast.Line{Code: "p2"}},
	}}, "f")

	require.Len(t, l.Start.Transitions, 3)
	last := l.Start.Transitions[2]
	assert.Equal(t, "", last.Condition)
	assert.Same(t, l.End, last.Target)
}

func TestLowerWhileRewiresContinueToStartAndBreakToEnd(t *testing.T) {
	l := lower.Lower(ast.While{Condition: "true", Body: ast.Block{Stmts: []ast.Node{
		ast.Continue{},
		ast.Break{},
	}}}, "f")

	require.False(t, l.Start.Collapsible)
	require.Len(t, l.Start.Transitions, 2)
	assert.Equal(t, "true", l.Start.Transitions[0].Condition)

	// Body: continue then break, chained in sequence.
	body := l.Start.Transitions[0].Target
	require.Len(t, body.Transitions, 1)
	continueNode := body
	breakNode := body.Transitions[0].Target

	require.Len(t, continueNode.Transitions, 1)
	assert.Same(t, l.Start, continueNode.Transitions[0].Target)

	require.Len(t, breakNode.Transitions, 1)
	assert.Same(t, l.End, breakNode.Transitions[0].Target)
	assert.False(t, l.End.Collapsible)
}

func TestLowerDoWhileRunsBodyBeforeCondition(t *testing.T) {
	l := lower.Lower(ast.DoWhile{Condition: "cond", Body: ast.Line{Code: "p"}}, "f")

	require.Len(t, l.Start.Transitions, 1)
	body := l.Start.Transitions[0].Target
	assert.Equal(t, []string{"p;"}, body.CodeBlock)

	require.Len(t, body.Transitions, 2)
	assert.Equal(t, "cond", body.Transitions[0].Condition)
	assert.Same(t, l.Start, body.Transitions[0].Target)
	assert.Equal(t, "", body.Transitions[1].Condition)
	assert.Same(t, l.End, body.Transitions[1].Target)
}

func TestLowerForContinueRewiresToOuterStartNotLoopHeader(t *testing.T) {
	l := lower.Lower(ast.For{
		Init:      ast.DeclarationInit{Type: "int", Name: "i", Expr: "0"},
		Condition: "i<10",
		Update:    ast.Line{Code: "i++"},
		Body:      ast.Continue{},
	}, "f")

	// start -> init -> loopStart; continue must rewire to the outer
	// start (re-running Init), matching StatementFor.to_fsm, not to
	// loopStart/update.
	require.Len(t, l.Start.Transitions, 1)
	init := l.Start.Transitions[0].Target
	require.Len(t, init.Transitions, 1)
	loopStart := init.Transitions[0].Target
	require.False(t, loopStart.Collapsible)

	require.Len(t, loopStart.Transitions, 2)
	assert.Equal(t, "i<10", loopStart.Transitions[0].Condition)
	continueNode := loopStart.Transitions[0].Target

	require.Len(t, continueNode.Transitions, 1)
	assert.Same(t, l.Start, continueNode.Transitions[0].Target)
	assert.NotSame(t, loopStart, continueNode.Transitions[0].Target)
}

func TestLowerForBreakRewiresToEnd(t *testing.T) {
	l := lower.Lower(ast.For{
		Init:      ast.Block{},
		Condition: "true",
		Update:    ast.Block{},
		Body:      ast.Break{},
	}, "f")

	loopStart := l.Start.Transitions[0].Target.Transitions[0].Target
	breakNode := loopStart.Transitions[0].Target
	require.Len(t, breakNode.Transitions, 1)
	assert.Same(t, l.End, breakNode.Transitions[0].Target)
}

func TestLowerDeclarationGlobalHoistsAndLeavesNodeEmpty(t *testing.T) {
	l := lower.Lower(ast.Declaration{Type: "int", Name: "counter", Global: true}, "f")
	require.Len(t, l.Globals, 1)
	assert.Equal(t, fsm.GlobalVar{Type: "int", Name: "counter"}, l.Globals[0])
	assert.Empty(t, l.Start.CodeBlock)
}

func TestLowerDeclarationLocalEmitsInPlace(t *testing.T) {
	l := lower.Lower(ast.Declaration{Type: "int", Name: "counter"}, "f")
	assert.Empty(t, l.Globals)
	assert.Equal(t, []string{"int counter;"}, l.Start.CodeBlock)
}

func TestLowerDeclarationInitGlobalEmitsAssignmentOnly(t *testing.T) {
	l := lower.Lower(ast.DeclarationInit{Type: "int", Name: "counter", Expr: "0", Global: true}, "f")
	require.Len(t, l.Globals, 1)
	assert.Equal(t, []string{"counter = 0;"}, l.Start.CodeBlock)
}

func TestLowerWaitYieldHasTrueEntryCondition(t *testing.T) {
	l := lower.Lower(ast.Wait{}, "f")
	assert.False(t, l.Start.Collapsible)
	assert.Equal(t, "true", l.Start.EntryCondition)
}

func TestLowerWaitTimedSplitsRegisterAndEntryCondition(t *testing.T) {
	l := lower.Lower(ast.Wait{Ms: "100"}, "f")
	require.NotSame(t, l.Start, l.End)
	require.Len(t, l.Start.Transitions, 1)
	assert.Same(t, l.End, l.Start.Transitions[0].Target)
	assert.False(t, l.End.Collapsible)
	assert.Contains(t, l.End.EntryCondition, "100")
}

func TestLowerWaitUnlessUsesConditionVerbatim(t *testing.T) {
	l := lower.Lower(ast.WaitUnless{Condition: "ready==1"}, "f")
	assert.Equal(t, "ready==1", l.Start.EntryCondition)
	assert.False(t, l.Start.Collapsible)
}

func TestLowerBreakContinueReturnProducePendingNodes(t *testing.T) {
	b := lower.Lower(ast.Break{}, "f")
	require.Len(t, b.BreakNodes, 1)
	assert.Same(t, b.Start, b.BreakNodes[0])
	assert.Empty(t, b.Start.Transitions)

	c := lower.Lower(ast.Continue{}, "f")
	require.Len(t, c.ContinueNodes, 1)

	r := lower.Lower(ast.Return{}, "f")
	require.Len(t, r.ReturnNodes, 1)
}

func TestBuildMachineTopLevelContinueGoesToEnd(t *testing.T) {
	m := lower.BuildMachine(ast.Program{Name: "f", Body: ast.Continue{}})

	require.Len(t, m.Start.Transitions, 1)
	continueNode := m.Start.Transitions[0].Target
	require.Len(t, continueNode.Transitions, 1)
	terms := fsm.Terminals(m.Start)
	require.Len(t, terms, 1)
	assert.Same(t, terms[0], continueNode.Transitions[0].Target)
}

func TestBuildMachineTopLevelBreakGoesToEnd(t *testing.T) {
	m := lower.BuildMachine(ast.Program{Name: "f", Body: ast.Break{}})

	breakNode := m.Start.Transitions[0].Target
	require.Len(t, breakNode.Transitions, 1)
	assert.False(t, breakNode.Transitions[0].Target.Collapsible)
	assert.Empty(t, breakNode.Transitions[0].Target.Transitions)
}

func TestBuildMachineTopLevelReturnGoesToEnd(t *testing.T) {
	m := lower.BuildMachine(ast.Program{Name: "f", Body: ast.Return{}})

	returnNode := m.Start.Transitions[0].Target
	require.Len(t, returnNode.Transitions, 1)
	assert.False(t, returnNode.Transitions[0].Target.Collapsible)
	assert.Empty(t, returnNode.Transitions[0].Target.Transitions)
}

func TestBuildMachineDeclaresTimeVariableOnlyWhenWaitIsUsed(t *testing.T) {
	withWait := lower.BuildMachine(ast.Program{Name: "f", Body: ast.Wait{Ms: "50"}})
	require.Len(t, withWait.GlobalCodeBlock, 1)

	withoutWait := lower.BuildMachine(ast.Program{Name: "g", Body: ast.Line{Code: "noop"}})
	assert.Empty(t, withoutWait.GlobalCodeBlock)
}

func TestBuildMachineCollectsGlobalsFromBody(t *testing.T) {
	m := lower.BuildMachine(ast.Program{Name: "f", Body: ast.Block{Stmts: []ast.Node{
		ast.Declaration{Type: "int", Name: "a", Global: true},
		ast.DeclarationInit{Type: "int", Name: "b", Expr: "1", Global: true},
	}}})

	require.Len(t, m.Globals, 2)
	assert.Equal(t, fsm.GlobalVar{Type: "int", Name: "a"}, m.Globals[0])
	assert.Equal(t, fsm.GlobalVar{Type: "int", Name: "b"}, m.Globals[1])
}
