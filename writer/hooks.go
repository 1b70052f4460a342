//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of Htmlmin.
//
// Htmlmin is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package writer

import (
	"strings"

	"zettelstore.de/c/html"

	"zettelstore.de/htmlmin/ast"
)

// Sink is the destination of all characters a policy writes.
//
// strings.Builder, bytes.Buffer, bufio.Writer and BufWriter are sinks.
type Sink interface {
	WriteString(s string) (int, error)
	WriteRune(r rune) (int, error)
}

// Hooks is implemented by every output policy. Walk calls the hooks in
// document order. A hook must not depend on nodes that follow, and must
// write every character through the policy's sink.
type Hooks interface {
	StartTag(en *ast.ElementNode)
	EndTag(en *ast.ElementNode)
	Text(tn *ast.TextNode)
	Comment(cn *ast.CommentNode)
	CDATA(cn *ast.CDATANode)
	Doctype(dn *ast.DoctypeNode)
	Raw(rn *ast.RawNode)
	ImportantComment(icn *ast.ImportantCommentNode)
}

// Walk traverses the nodes depth-first and calls the hooks: for an element
// first StartTag, then all children in document order, then EndTag.
// Statement nodes are not part of a document and are ignored.
func Walk(h Hooks, nodes ...ast.Node) {
	w := walker{h: h}
	for _, n := range nodes {
		n.Accept(&w)
	}
}

type walker struct {
	ast.NopVisitor
	h Hooks
}

func (w *walker) VisitDocument(dn *ast.DocumentNode) {
	for _, n := range dn.Children {
		n.Accept(w)
	}
}

func (w *walker) VisitElement(en *ast.ElementNode) {
	w.h.StartTag(en)
	for _, n := range en.Children {
		n.Accept(w)
	}
	w.h.EndTag(en)
}

func (w *walker) VisitText(tn *ast.TextNode)       { w.h.Text(tn) }
func (w *walker) VisitComment(cn *ast.CommentNode) { w.h.Comment(cn) }
func (w *walker) VisitCDATA(cn *ast.CDATANode)     { w.h.CDATA(cn) }
func (w *walker) VisitDoctype(dn *ast.DoctypeNode) { w.h.Doctype(dn) }
func (w *walker) VisitRaw(rn *ast.RawNode)         { w.h.Raw(rn) }
func (w *walker) VisitImportantComment(icn *ast.ImportantCommentNode) {
	w.h.ImportantComment(icn)
}

// Base implements the default hooks: tags and text are echoed verbatim,
// comments, CDATA sections, document types and raw content are dropped.
//
// A policy embeds Base and overrides the hooks it needs. Base writes to the
// sink given to NewBase, which is typically the policy itself.
type Base struct {
	out Sink
}

// NewBase creates a new base policy that writes to the given sink.
func NewBase(out Sink) Base { return Base{out: out} }

// StartTag echoes the start tag.
func (b Base) StartTag(en *ast.ElementNode) { EchoStartTag(b.out, en) }

// EndTag echoes the end tag.
func (b Base) EndTag(en *ast.ElementNode) { EchoEndTag(b.out, en) }

// Text echoes the text, as written in the source.
func (b Base) Text(tn *ast.TextNode) { b.out.WriteString(tn.Text) }

// Comment does nothing.
func (Base) Comment(*ast.CommentNode) {}

// CDATA does nothing.
func (Base) CDATA(*ast.CDATANode) {}

// Doctype does nothing.
func (Base) Doctype(*ast.DoctypeNode) {}

// Raw does nothing.
func (Base) Raw(*ast.RawNode) {}

// ImportantComment does nothing.
func (Base) ImportantComment(*ast.ImportantCommentNode) {}

// EchoStartTag writes the start tag of the element, with all attributes.
func EchoStartTag(out Sink, en *ast.ElementNode) {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(en.Name)
	for _, attr := range en.Attrs {
		sb.WriteByte(' ')
		sb.WriteString(attr.Key)
		if attr.Val != "" {
			sb.WriteString(`="`)
			html.AttributeEscape(&sb, attr.Val)
			sb.WriteByte('"')
		}
	}
	if en.SelfClosing && !en.IsVoid() {
		sb.WriteString("/>")
	} else {
		sb.WriteByte('>')
	}
	out.WriteString(sb.String())
}

// EchoEndTag writes the end tag of the element, if it needs one.
func EchoEndTag(out Sink, en *ast.ElementNode) {
	if en.IsVoid() || en.SelfClosing {
		return
	}
	out.WriteString("</")
	out.WriteString(en.Name)
	out.WriteRune('>')
}
