//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of Htmlmin.
//
// Htmlmin is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package ast provides the abstract syntax tree.
package ast

// WalkVisitor is a visitor for walking the AST.
type WalkVisitor interface {
	Visit(node Node) WalkVisitor
}

// Walk traverses the AST.
func Walk(v WalkVisitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	node.WalkChildren(v)
	v.Visit(nil)
}

// Inspect traverses the AST and calls f for every node. If f returns false,
// the children of the node are not visited.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) WalkVisitor {
	if node != nil && f(node) {
		return f
	}
	return nil
}
