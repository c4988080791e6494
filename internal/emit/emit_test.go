// Copyright 2020 Enea Guidi (hmny). All rights reserved.
// This files are distributed under the General Public License v3.0.
// A copy of abovesaid license can be found in the LICENSE file.

package emit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightingale-lzh/fsm-compiler/internal/emit"
	"github.com/nightingale-lzh/fsm-compiler/internal/fsm"
)

func twoStateMachine() *fsm.Machine {
	start := fsm.NewNode()
	start.Collapsible = false
	start.CodeBlock = []string{"a;", "b;"}
	end := fsm.NewNode()
	end.Collapsible = false
	start.AddTransition(&fsm.Transition{Target: end})

	return &fsm.Machine{
		Name:    "tick",
		Globals: []fsm.GlobalVar{{Type: "int", Name: "counter"}},
		Start:   start,
	}
}

func TestEmitAssignsStartZeroAndTerminalOne(t *testing.T) {
	out := emit.Emit(twoStateMachine(), emit.Options{})

	assert.Contains(t, out, "__CURRENT_STATE(tick) == 0")
	assert.Contains(t, out, "__CURRENT_STATE(tick) == 1")
	assert.NotContains(t, out, "== 2)")
}

func TestEmitMetaDeclarationAppearsExactlyOnce(t *testing.T) {
	out := emit.Emit(twoStateMachine(), emit.Options{})
	assert.Equal(t, 1, strings.Count(out, "__FSM_META_VARIABLE_DECLARATION(tick);"))
}

func TestEmitTerminalStateReturnsUnconditionally(t *testing.T) {
	out := emit.Emit(twoStateMachine(), emit.Options{})

	idx := strings.Index(out, "__CURRENT_STATE(tick) == 1")
	require.GreaterOrEqual(t, idx, 0)
	tail := out[idx:]
	assert.Contains(t, tail, "return;")
}

func TestEmitRendersGlobalDeclaration(t *testing.T) {
	out := emit.Emit(twoStateMachine(), emit.Options{})
	assert.Contains(t, out, "int counter;")
}

func TestEmitUnconditionalTransitionChangesStateAndReturns(t *testing.T) {
	out := emit.Emit(twoStateMachine(), emit.Options{})
	assert.Contains(t, out, "__CHANGE_STATE(tick, 1);")
}

func TestEmitConditionalTransitionIsGuarded(t *testing.T) {
	start := fsm.NewNode()
	start.Collapsible = false
	mid := fsm.NewNode()
	end := fsm.NewNode()
	end.Collapsible = false
	start.AddTransition(&fsm.Transition{Condition: "x>0", Target: mid})
	mid.AddTransition(&fsm.Transition{Target: end})

	m := &fsm.Machine{Name: "f", Start: start}
	out := emit.Emit(m, emit.Options{})

	assert.Contains(t, out, "if (x>0) {")
}

func TestEmitStateWithEntryConditionGuardsEarlyReturn(t *testing.T) {
	start := fsm.NewNode()
	start.Collapsible = false
	waitNode := fsm.NewNode()
	waitNode.Collapsible = false
	waitNode.EntryCondition = "__IS_TIME_PASSED(f, 100)"
	end := fsm.NewNode()
	end.Collapsible = false
	start.AddTransition(&fsm.Transition{Target: waitNode})
	waitNode.AddTransition(&fsm.Transition{Target: end})

	m := &fsm.Machine{Name: "f", Start: start}
	out := emit.Emit(m, emit.Options{})

	assert.Contains(t, out, "if (!(__IS_TIME_PASSED(f, 100))) { return; }")
}

func TestEmitDeterministicAcrossCalls(t *testing.T) {
	m := twoStateMachine()
	first := emit.Emit(m, emit.Options{})
	second := emit.Emit(m, emit.Options{})
	assert.Equal(t, first, second)
}

func TestEmitOptionalAuxiliaryFunctions(t *testing.T) {
	m := twoStateMachine()

	bare := emit.Emit(m, emit.Options{})
	assert.NotContains(t, bare, "_fixed_iteration")
	assert.NotContains(t, bare, "_min_runtime")

	withAux := emit.Emit(m, emit.Options{FixedIteration: true, MinRuntime: true})
	assert.Contains(t, withAux, "tick_fixed_iteration(unsigned int count)")
	assert.Contains(t, withAux, "tick_min_runtime(unsigned long ms)")
}
