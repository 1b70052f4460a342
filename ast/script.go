//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of Htmlmin.
//
// Htmlmin is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package ast

// JumpKind specifies the kind of an unconditional control transfer.
type JumpKind int

// Constants for JumpKind
const (
	_            JumpKind = iota
	JumpReturn            // return [expr]
	JumpBreak             // break [label]
	JumpContinue          // continue [label]
	JumpThrow             // throw expr
)

// DeclKind specifies the keyword of a variable declaration.
type DeclKind int

// Constants for DeclKind
const (
	_         DeclKind = iota
	DeclVar            // var
	DeclLet            // let
	DeclConst          // const
)

// BlockNode is a sequence of statements of an embedded script.
//
// Statement nodes are produced by an external script parser. They are
// consumed by optimization passes, not by writers.
type BlockNode struct {
	Span
	Statements NodeSlice
}

// CreateBlock creates a new statement block.
func CreateBlock(stmts ...Node) *BlockNode { return &BlockNode{Statements: stmts} }

// Accept calls the visitor for blocks.
func (bn *BlockNode) Accept(v Visitor) { v.VisitBlock(bn) }

// WalkChildren walks down to all statements.
func (bn *BlockNode) WalkChildren(v WalkVisitor) { bn.Statements.WalkChildren(v) }

// JumpNode is a statement that unconditionally transfers control.
type JumpNode struct {
	Span
	Kind  JumpKind
	Label string // for break and continue
	Expr  string // for return and throw, as source text
}

// Accept calls the visitor for jump statements.
func (jn *JumpNode) Accept(v Visitor) { v.VisitJump(jn) }

// WalkChildren does nothing.
func (*JumpNode) WalkChildren(WalkVisitor) { /* No children */ }

// ExprStmtNode is an expression statement, stored as source text.
type ExprStmtNode struct {
	Span
	Expr string
}

// Accept calls the visitor for expression statements.
func (en *ExprStmtNode) Accept(v Visitor) { v.VisitExprStmt(en) }

// WalkChildren does nothing.
func (*ExprStmtNode) WalkChildren(WalkVisitor) { /* No children */ }

// VarDeclNode declares one or more variables.
type VarDeclNode struct {
	Span
	Kind  DeclKind
	Names []string
	Init  string // initializer source text, may be empty
}

// Accept calls the visitor for variable declarations.
func (vn *VarDeclNode) Accept(v Visitor) { v.VisitVarDecl(vn) }

// WalkChildren does nothing.
func (*VarDeclNode) WalkChildren(WalkVisitor) { /* No children */ }

// IsDeclaration returns true.
func (*VarDeclNode) IsDeclaration() bool { return true }

// FuncDeclNode declares a named function.
type FuncDeclNode struct {
	Span
	Name   string
	Params []string
	Body   *BlockNode
}

// Accept calls the visitor for function declarations.
func (fn *FuncDeclNode) Accept(v Visitor) { v.VisitFuncDecl(fn) }

// WalkChildren walks down to the body.
func (fn *FuncDeclNode) WalkChildren(v WalkVisitor) {
	if fn.Body != nil {
		Walk(v, fn.Body)
	}
}

// IsDeclaration returns true.
func (*FuncDeclNode) IsDeclaration() bool { return true }

// Declarer is implemented by nodes that may introduce a binding.
type Declarer interface {
	IsDeclaration() bool
}

// Survivor is implemented by nodes that must never be removed by an
// optimization pass, even if they are unreachable.
type Survivor interface {
	MustSurvive() bool
}

// IsDeclaration returns true, if the node introduces a binding. Nodes that
// do not implement Declarer are no declarations.
func IsDeclaration(n Node) bool {
	if d, ok := n.(Declarer); ok {
		return d.IsDeclaration()
	}
	return false
}

// MustSurvive returns true, if the node must be kept by optimization passes.
func MustSurvive(n Node) bool {
	if s, ok := n.(Survivor); ok {
		return s.MustSurvive()
	}
	return false
}

// Retained returns true, if dead code elimination must keep the node even
// when it cannot be reached.
func Retained(n Node) bool { return IsDeclaration(n) || MustSurvive(n) }
