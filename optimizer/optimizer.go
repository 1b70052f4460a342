//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of Htmlmin.
//
// Htmlmin is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package optimizer provides passes that shrink the statement blocks of
// embedded scripts.
package optimizer

import (
	"zettelstore.de/htmlmin/ast"
	"zettelstore.de/htmlmin/logger"
)

// Optimizer runs optimization passes and reports about them.
type Optimizer struct {
	log *logger.Logger
}

// New creates a new optimizer. The logger may be nil.
func New(log *logger.Logger) *Optimizer { return &Optimizer{log: log} }

// RemoveDeadCode removes unreachable statements with a default optimizer.
func RemoveDeadCode(bn *ast.BlockNode) int { return New(nil).RemoveDeadCode(bn) }

// RemoveDeadCode removes all statements that follow an unconditional jump
// within the same block, for the given block and all nested blocks.
//
// Statements that are retained (declarations and important comments) are
// kept, even if they cannot be reached. It returns the number of removed
// statements.
func (o *Optimizer) RemoveDeadCode(bn *ast.BlockNode) int {
	if bn == nil {
		return 0
	}
	dv := dceVisitor{}
	ast.Walk(&dv, bn)
	o.log.Debug().Int("removed", int64(dv.removed)).Msg("Dead code")
	return dv.removed
}

// Optimize removes dead code in every statement block reachable from the
// given node.
func (o *Optimizer) Optimize(node ast.Node) int {
	if node == nil {
		return 0
	}
	dv := dceVisitor{}
	ast.Inspect(node, func(n ast.Node) bool {
		if bn, ok := n.(*ast.BlockNode); ok {
			ast.Walk(&dv, bn)
			return false
		}
		return true
	})
	o.log.Debug().Int("removed", int64(dv.removed)).Msg("Optimized")
	return dv.removed
}

type dceVisitor struct {
	removed int
}

func (dv *dceVisitor) Visit(node ast.Node) ast.WalkVisitor {
	if bn, ok := node.(*ast.BlockNode); ok {
		dv.pruneBlock(bn)
	}
	return dv
}

func (dv *dceVisitor) pruneBlock(bn *ast.BlockNode) {
	pos := firstJump(bn.Statements)
	if pos < 0 {
		return
	}
	kept := bn.Statements[:pos+1]
	for _, stmt := range bn.Statements[pos+1:] {
		if ast.Retained(stmt) {
			kept = append(kept, stmt)
		} else {
			dv.removed++
		}
	}
	for i := len(kept); i < len(bn.Statements); i++ {
		bn.Statements[i] = nil
	}
	bn.Statements = kept
}

func firstJump(stmts ast.NodeSlice) int {
	for i, stmt := range stmts {
		if _, ok := stmt.(*ast.JumpNode); ok {
			return i
		}
	}
	return -1
}
