//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of Htmlmin.
//
// Htmlmin is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package ast provides the abstract syntax tree for parsed HTML documents.
package ast

import "zettelstore.de/htmlmin/tag"

// Span is the source location of a node, as byte offsets into the source.
// It is opaque to all writers.
type Span struct {
	Start int
	End   int
}

// Context returns the source location.
func (s Span) Context() Span { return s }

// Node is the interface, all nodes must implement.
type Node interface {
	// Accept calls the visitor method that belongs to the concrete node type.
	Accept(v Visitor)

	// WalkChildren walks down to all child nodes.
	WalkChildren(v WalkVisitor)

	// Context returns the source location of the node.
	Context() Span
}

// NodeSlice is a sequence of nodes, in document order.
type NodeSlice []Node

// WalkChildren walks down to all nodes of the slice.
func (ns *NodeSlice) WalkChildren(v WalkVisitor) {
	if ns != nil {
		for _, n := range *ns {
			Walk(v, n)
		}
	}
}

// DocumentNode is the root node of a parsed document.
type DocumentNode struct {
	Span
	Children NodeSlice
}

// CreateDocument creates a new document with the given children.
func CreateDocument(children ...Node) *DocumentNode {
	return &DocumentNode{Children: children}
}

// Accept calls the visitor for documents.
func (dn *DocumentNode) Accept(v Visitor) { v.VisitDocument(dn) }

// WalkChildren walks down to all top-level nodes.
func (dn *DocumentNode) WalkChildren(v WalkVisitor) { dn.Children.WalkChildren(v) }

// ElementNode is an element with a name, attributes and some children.
type ElementNode struct {
	Span
	Name        string
	Descriptor  *tag.Descriptor // nil, if the element name is unknown
	Attrs       Attributes
	Children    NodeSlice
	SelfClosing bool // source used the "<name/>" syntax
}

// CreateElement creates a new element node and looks up its descriptor.
func CreateElement(name string, attrs Attributes, children ...Node) *ElementNode {
	return &ElementNode{
		Name:       name,
		Descriptor: tag.Lookup(name),
		Attrs:      attrs,
		Children:   children,
	}
}

// Accept calls the visitor for elements.
func (en *ElementNode) Accept(v Visitor) { v.VisitElement(en) }

// WalkChildren walks down to all content nodes.
func (en *ElementNode) WalkChildren(v WalkVisitor) { en.Children.WalkChildren(v) }

// IsPhrasing returns true, if the element is known to be phrasing content.
func (en *ElementNode) IsPhrasing() bool { return en.Descriptor.IsPhrasing() }

// IsVoid returns true, if the element never has content and no end tag.
func (en *ElementNode) IsVoid() bool { return en.Descriptor.IsVoid() }

// TextNode contains character data, with HTML entities kept as written.
type TextNode struct {
	Span
	Text string
}

// Accept calls the visitor for text.
func (tn *TextNode) Accept(v Visitor) { v.VisitText(tn) }

// WalkChildren does nothing.
func (*TextNode) WalkChildren(WalkVisitor) { /* No children */ }

// CommentNode stores the content of a comment, without delimiters.
type CommentNode struct {
	Span
	Text string
}

// Accept calls the visitor for comments.
func (cn *CommentNode) Accept(v Visitor) { v.VisitComment(cn) }

// WalkChildren does nothing.
func (*CommentNode) WalkChildren(WalkVisitor) { /* No children */ }

// CDATANode stores the content of a CDATA section, without delimiters.
type CDATANode struct {
	Span
	Text string
}

// Accept calls the visitor for CDATA sections.
func (cn *CDATANode) Accept(v Visitor) { v.VisitCDATA(cn) }

// WalkChildren does nothing.
func (*CDATANode) WalkChildren(WalkVisitor) { /* No children */ }

// DoctypeNode stores the document type declaration, e.g. "html".
type DoctypeNode struct {
	Span
	Text string
}

// Accept calls the visitor for document type declarations.
func (dn *DoctypeNode) Accept(v Visitor) { v.VisitDoctype(dn) }

// WalkChildren does nothing.
func (*DoctypeNode) WalkChildren(WalkVisitor) { /* No children */ }

// RawNode stores verbatim embedded content, like the body of a script or
// style element.
type RawNode struct {
	Span
	Text string
}

// Accept calls the visitor for raw content.
func (rn *RawNode) Accept(v Visitor) { v.VisitRaw(rn) }

// WalkChildren does nothing.
func (*RawNode) WalkChildren(WalkVisitor) { /* No children */ }

// ImportantCommentNode is a comment that must be kept, e.g. for licensing.
//
// It may occur in a document ("<!--! ... -->") and in a statement block
// ("/*! ... */").
type ImportantCommentNode struct {
	Span
	Comment string
}

// Accept calls the visitor for important comments.
func (icn *ImportantCommentNode) Accept(v Visitor) { v.VisitImportantComment(icn) }

// WalkChildren does nothing.
func (*ImportantCommentNode) WalkChildren(WalkVisitor) { /* No children */ }

// IsDeclaration always returns true, so that dead code elimination will
// never remove the comment.
func (*ImportantCommentNode) IsDeclaration() bool { return true }

// MustSurvive returns true.
func (*ImportantCommentNode) MustSurvive() bool { return true }
