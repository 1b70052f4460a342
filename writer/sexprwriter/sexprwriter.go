//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of Htmlmin.
//
// Htmlmin is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package sexprwriter writes the abstract syntax tree as a symbolic
// expression, e.g. to inspect what a parser has built.
package sexprwriter

import (
	"fmt"
	"io"

	"codeberg.org/t73fde/sxpf"

	"zettelstore.de/htmlmin/ast"
	"zettelstore.de/htmlmin/writer"
)

func init() {
	writer.Register("sexpr", writer.Info{
		Create: func(*writer.Environment) writer.Writer { return &sexprWriter{} },
	})
}

type sexprWriter struct{}

// WriteDocument writes the whole document as a list starting with DOCUMENT.
func (*sexprWriter) WriteDocument(w io.Writer, dn *ast.DocumentNode) (int, error) {
	if dn == nil {
		return 0, fmt.Errorf("%w: no document", writer.ErrInvalidArgument)
	}
	return printList(w, NewTransformer().GetDocument(dn))
}

// WriteNodes writes a list of the given nodes.
func (*sexprWriter) WriteNodes(w io.Writer, ns ast.NodeSlice) (int, error) {
	return printList(w, NewTransformer().GetSexpr(ns...))
}

func printList(w io.Writer, lst *sxpf.List) (int, error) {
	if w == nil {
		return 0, fmt.Errorf("%w: sexpr writer needs an output", writer.ErrInvalidArgument)
	}
	b := writer.NewBufWriter(w)
	if _, err := lst.Print(b); err != nil {
		return 0, err
	}
	return b.Flush()
}

// Transformer builds symbolic expressions from nodes. It implements the
// writer hooks, so the nodes are visited in the same order as the other
// writers visit them.
type Transformer struct {
	symDocument  *sxpf.Symbol
	symElement   *sxpf.Symbol
	symText      *sxpf.Symbol
	symComment   *sxpf.Symbol
	symImportant *sxpf.Symbol
	symCDATA     *sxpf.Symbol
	symDoctype   *sxpf.Symbol
	symRaw       *sxpf.Symbol
	symQuote     *sxpf.Symbol

	// Objects of the open elements, the innermost last.
	stack [][]sxpf.Object
}

// NewTransformer creates a new transformer with its own symbols.
func NewTransformer() *Transformer {
	sf := sxpf.MakeMappedFactory()
	return &Transformer{
		symDocument:  sf.Make("DOCUMENT"),
		symElement:   sf.Make("ELEMENT"),
		symText:      sf.Make("TEXT"),
		symComment:   sf.Make("COMMENT"),
		symImportant: sf.Make("IMPORTANT-COMMENT"),
		symCDATA:     sf.Make("CDATA"),
		symDoctype:   sf.Make("DOCTYPE"),
		symRaw:       sf.Make("RAW"),
		symQuote:     sf.Make("QUOTE"),
	}
}

// GetDocument returns the document as a list starting with DOCUMENT.
func (t *Transformer) GetDocument(dn *ast.DocumentNode) *sxpf.List {
	return t.GetSexpr(dn).Cons(t.symDocument)
}

// GetSexpr returns a list of the given nodes. A document contributes its
// children.
func (t *Transformer) GetSexpr(nodes ...ast.Node) *sxpf.List {
	t.stack = append(t.stack[:0], nil)
	writer.Walk(t, nodes...)
	return sxpf.MakeList(t.stack[0]...)
}

func (t *Transformer) add(obj sxpf.Object) {
	l := len(t.stack) - 1
	t.stack[l] = append(t.stack[l], obj)
}

// StartTag opens the list of the element: ELEMENT, name, and attributes.
func (t *Transformer) StartTag(en *ast.ElementNode) {
	t.stack = append(t.stack, []sxpf.Object{
		t.symElement,
		sxpf.MakeString(en.Name),
		t.getAttributes(en.Attrs),
	})
}

// EndTag closes the list of the element.
func (t *Transformer) EndTag(*ast.ElementNode) {
	l := len(t.stack) - 1
	objs := t.stack[l]
	t.stack = t.stack[:l]
	t.add(sxpf.MakeList(objs...))
}

func (t *Transformer) getAttributes(a ast.Attributes) sxpf.Object {
	if a.IsEmpty() {
		return sxpf.Nil()
	}
	objs := make([]sxpf.Object, 0, len(a))
	for _, attr := range a {
		objs = append(objs, sxpf.Cons(sxpf.MakeString(attr.Key), sxpf.MakeString(attr.Val)))
	}
	return sxpf.MakeList(objs...).Cons(t.symQuote)
}

// Text adds the text, as written in the source.
func (t *Transformer) Text(tn *ast.TextNode) { t.addString(t.symText, tn.Text) }

// Comment adds the comment.
func (t *Transformer) Comment(cn *ast.CommentNode) { t.addString(t.symComment, cn.Text) }

// CDATA adds the content of the CDATA section.
func (t *Transformer) CDATA(cn *ast.CDATANode) { t.addString(t.symCDATA, cn.Text) }

// Doctype adds the document type.
func (t *Transformer) Doctype(dn *ast.DoctypeNode) { t.addString(t.symDoctype, dn.Text) }

// Raw adds the raw content of a script or style element.
func (t *Transformer) Raw(rn *ast.RawNode) { t.addString(t.symRaw, rn.Text) }

// ImportantComment adds the important comment, without its "!".
func (t *Transformer) ImportantComment(icn *ast.ImportantCommentNode) {
	t.addString(t.symImportant, icn.Comment)
}

func (t *Transformer) addString(sym *sxpf.Symbol, s string) {
	t.add(sxpf.MakeList(sym, sxpf.MakeString(s)))
}
