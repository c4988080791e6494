// Copyright 2020 Enea Guidi (hmny). All rights reserved.
// This files are distributed under the General Public License v3.0.
// A copy of abovesaid license can be found in the LICENSE file.

// Package emit renders a finite state machine (internal/fsm) as a C/C++
// function body. The macro surface it emits into
// (__FSM_META_VARIABLE_DECLARATION, __CURRENT_STATE, __CHANGE_STATE,
// __DECLARE_TIME_VARIABLE, __REGISTER_CURRENT_TIME, __IS_TIME_PASSED and
// their _MIN_RUNTIME_/_min_runtime_ counterparts) is a stable ABI defined
// elsewhere (the target's runtime support header); this package only ever
// emits calls to it, never interprets it.
package emit

import "fmt"

// DeclareTimeVariable emits the machine-wide timer variable declaration
// needed once a machine uses a timed WAIT anywhere in its body.
func DeclareTimeVariable(fsmName string) string {
	return fmt.Sprintf("__DECLARE_TIME_VARIABLE(%s);", fsmName)
}

// RegisterTime emits a timestamp capture, run on entry to a timed WAIT.
func RegisterTime(fsmName string) string {
	return fmt.Sprintf("__REGISTER_CURRENT_TIME(%s);", fsmName)
}

// IsTimePassed emits the entry-condition expression a timed WAIT blocks
// on until waitTimeMs have elapsed since the matching RegisterTime.
func IsTimePassed(fsmName, waitTimeMs string) string {
	return fmt.Sprintf("__IS_TIME_PASSED(%s, %s)", fsmName, waitTimeMs)
}

// DeclareVariable emits a bare "<type> <name>;" declaration line, shared
// by a machine's hoisted globals (declareGlobalVariable) and by
// internal/lower's local, in-place declarations.
func DeclareVariable(varType, varName string) string {
	return fmt.Sprintf("%s %s;", varType, varName)
}

func declareGlobalVariable(varType, varName string) string {
	return DeclareVariable(varType, varName)
}

func metaVariableDeclaration(fsmName string) string {
	return fmt.Sprintf("__FSM_META_VARIABLE_DECLARATION(%s);", fsmName)
}

func functionHeader(fsmName string) string {
	return fmt.Sprintf("void %s() {", fsmName)
}

func fixedIterationHeader(fsmName string) string {
	return fmt.Sprintf("void %s_fixed_iteration(unsigned int count) {", fsmName)
}

func fixedIterationLoop(fsmName string) string {
	return fmt.Sprintf("for (int i = 0; i < count; ++i) { %s(); }", fsmName)
}

func minRuntimeDeclareTimeVariable(fsmName string) string {
	return fmt.Sprintf("__DECLARE_MIN_RUNTIME_ITER_TIME_VARIABLE(%s);", fsmName)
}

func minRuntimeRegisterTime(fsmName string) string {
	return fmt.Sprintf("__REGISTER_MIN_RUNTIME_ITER_CURRENT_TIME(%s);", fsmName)
}

func minRuntimeIsTimePassed(fsmName, ms string) string {
	return fmt.Sprintf("___MIN_RUNTIME_IS_TIME_PASSED(%s, %s)", fsmName, ms)
}

func minRuntimeIterationHeader(fsmName string) string {
	return fmt.Sprintf("void %s_min_runtime(unsigned long ms) {", fsmName)
}

func minRuntimeIterationLoop(condition string) string {
	return fmt.Sprintf("while(!(%s)) {", condition)
}

func stateHeader(fsmName string, stateID int) string {
	return fmt.Sprintf("if (__CURRENT_STATE(%s) == %d) {", fsmName, stateID)
}

func stateEntryCondition(entryCondition string) string {
	return fmt.Sprintf("if (!(%s)) { return; }", entryCondition)
}

func transitionHeader(condition string) string {
	return fmt.Sprintf("if (%s) {", condition)
}

func changeState(fsmName string, nextStateID int) string {
	return fmt.Sprintf("__CHANGE_STATE(%s, %d);", fsmName, nextStateID)
}
