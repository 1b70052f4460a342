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

// Visitor is the interface all visitors must implement.
//
// Adding a node type means adding one method here, and one to NopVisitor.
type Visitor interface {
	// Document nodes
	VisitDocument(dn *DocumentNode)
	VisitElement(en *ElementNode)
	VisitText(tn *TextNode)
	VisitComment(cn *CommentNode)
	VisitCDATA(cn *CDATANode)
	VisitDoctype(dn *DoctypeNode)
	VisitRaw(rn *RawNode)
	VisitImportantComment(icn *ImportantCommentNode)

	// Statement nodes
	VisitBlock(bn *BlockNode)
	VisitJump(jn *JumpNode)
	VisitExprStmt(en *ExprStmtNode)
	VisitVarDecl(vn *VarDeclNode)
	VisitFuncDecl(fn *FuncDeclNode)
}

// NopVisitor implements Visitor by doing nothing. Embed it to implement only
// the methods of interest.
type NopVisitor struct{}

func (NopVisitor) VisitDocument(*DocumentNode)                 {}
func (NopVisitor) VisitElement(*ElementNode)                   {}
func (NopVisitor) VisitText(*TextNode)                         {}
func (NopVisitor) VisitComment(*CommentNode)                   {}
func (NopVisitor) VisitCDATA(*CDATANode)                       {}
func (NopVisitor) VisitDoctype(*DoctypeNode)                   {}
func (NopVisitor) VisitRaw(*RawNode)                           {}
func (NopVisitor) VisitImportantComment(*ImportantCommentNode) {}
func (NopVisitor) VisitBlock(*BlockNode)                       {}
func (NopVisitor) VisitJump(*JumpNode)                         {}
func (NopVisitor) VisitExprStmt(*ExprStmtNode)                 {}
func (NopVisitor) VisitVarDecl(*VarDeclNode)                   {}
func (NopVisitor) VisitFuncDecl(*FuncDeclNode)                 {}
