// Copyright 2020 Enea Guidi (hmny). All rights reserved.
// This files are distributed under the General Public License v3.0.
// A copy of abovesaid license can be found in the LICENSE file.

package lower

import (
	"fmt"

	"github.com/nightingale-lzh/fsm-compiler/internal/ast"
	"github.com/nightingale-lzh/fsm-compiler/internal/emit"
	"github.com/nightingale-lzh/fsm-compiler/internal/fsm"
)

// lowerDeclaration lowers a bare variable declaration. A GLOBAL
// declaration hoists the variable to the machine's global scope and
// leaves the node itself empty; a local declaration emits the
// declaration line in place, matching StatementDeclaration.to_fsm.
func lowerDeclaration(v ast.Declaration) Lowered {
	n := fsm.NewNode()
	if v.Global {
		return Lowered{Start: n, End: n, Globals: []fsm.GlobalVar{{Type: v.Type, Name: v.Name}}}
	}
	n.CodeBlock = []string{emit.DeclareVariable(v.Type, v.Name)}
	return leaf(n)
}

// lowerDeclarationInit lowers a variable declaration with an
// initializer. A GLOBAL declaration hoists the variable and emits a
// plain assignment in place of the initializer (the declaration itself
// moves to global scope, so only the assignment runs where the statement
// appeared); a local declaration emits the full "type name = expr;" line,
// matching StatementDeclarationInit.to_fsm.
func lowerDeclarationInit(v ast.DeclarationInit) Lowered {
	n := fsm.NewNode()
	if v.Global {
		n.CodeBlock = []string{fmt.Sprintf("%s = %s;", v.Name, v.Expr)}
		return Lowered{Start: n, End: n, Globals: []fsm.GlobalVar{{Type: v.Type, Name: v.Name}}}
	}
	n.CodeBlock = []string{fmt.Sprintf("%s %s = %s;", v.Type, v.Name, v.Expr)}
	return leaf(n)
}
