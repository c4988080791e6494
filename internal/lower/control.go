// Copyright 2020 Enea Guidi (hmny). All rights reserved.
// This files are distributed under the General Public License v3.0.
// A copy of abovesaid license can be found in the LICENSE file.

package lower

import "github.com/nightingale-lzh/fsm-compiler/internal/fsm"

// lowerBreak produces a pending node with no outgoing transitions yet;
// it bubbles up as a BreakNode until the nearest enclosing loop (or, if
// there is none, Program) rewires it to wherever break actually lands.
func lowerBreak() Lowered {
	n := fsm.NewNode()
	l := leaf(n)
	l.BreakNodes = []*fsm.Node{n}
	return l
}

// lowerContinue is lowerBreak's counterpart for continue.
func lowerContinue() Lowered {
	n := fsm.NewNode()
	l := leaf(n)
	l.ContinueNodes = []*fsm.Node{n}
	return l
}

// lowerReturn is lowerBreak's counterpart for return: it bubbles past
// every enclosing loop (return exits the whole function, not just the
// loop) until Program rewires it to the machine's end.
func lowerReturn() Lowered {
	n := fsm.NewNode()
	l := leaf(n)
	l.ReturnNodes = []*fsm.Node{n}
	return l
}
