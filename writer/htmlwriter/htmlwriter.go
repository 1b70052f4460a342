//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of Htmlmin.
//
// Htmlmin is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package htmlwriter writes a document as HTML, with collapsed white space.
package htmlwriter

import (
	"fmt"
	"io"
	"strings"

	"zettelstore.de/htmlmin/ast"
	"zettelstore.de/htmlmin/writer"
)

func init() {
	writer.Register("html", writer.Info{
		Create:  func(env *writer.Environment) writer.Writer { return &htmlWriter{env: env} },
		Default: true,
	})
}

type htmlWriter struct {
	env *writer.Environment
}

// WriteDocument writes the whole document as HTML.
func (hw *htmlWriter) WriteDocument(w io.Writer, dn *ast.DocumentNode) (int, error) {
	return hw.WriteNodes(w, ast.NodeSlice{dn})
}

// WriteNodes writes the given nodes as HTML.
func (hw *htmlWriter) WriteNodes(w io.Writer, ns ast.NodeSlice) (int, error) {
	if w == nil {
		return 0, fmt.Errorf("%w: HTML writer needs an output", writer.ErrInvalidArgument)
	}
	b := writer.NewBufWriter(w)
	p, err := New(b, hw.env)
	if err != nil {
		return 0, err
	}
	writer.Walk(p, ns...)
	return b.Flush()
}

// Policy writes HTML. Runs of white space in text collapse to one space,
// except inside preformatted elements. Ordinary comments are dropped unless
// they should be kept; important comments are always written.
type Policy struct {
	writer.Base
	out          writer.Sink
	keepComments bool
	preDepth     int
}

// New creates a new HTML policy that writes to the given sink.
func New(out writer.Sink, env *writer.Environment) (*Policy, error) {
	if out == nil {
		return nil, fmt.Errorf("%w: HTML writer needs an output", writer.ErrInvalidArgument)
	}
	p := &Policy{out: out, keepComments: env.HasKeepComments()}
	p.Base = writer.NewBase(p)
	return p, nil
}

// StartTag echoes the start tag.
func (p *Policy) StartTag(en *ast.ElementNode) {
	p.Base.StartTag(en)
	if en.Descriptor.IsPreformatted() && !en.IsVoid() && !en.SelfClosing {
		p.preDepth++
	}
}

// EndTag echoes the end tag.
func (p *Policy) EndTag(en *ast.ElementNode) {
	p.Base.EndTag(en)
	if en.Descriptor.IsPreformatted() && !en.IsVoid() && !en.SelfClosing && p.preDepth > 0 {
		p.preDepth--
	}
}

// Text writes the text, with collapsed white space.
func (p *Policy) Text(tn *ast.TextNode) {
	if p.preDepth > 0 {
		p.WriteString(tn.Text)
		return
	}
	p.WriteString(collapseSpace(tn.Text))
}

// Comment writes the comment, if comments should be kept.
func (p *Policy) Comment(cn *ast.CommentNode) {
	if p.keepComments {
		p.WriteString("<!--")
		p.WriteString(cn.Text)
		p.WriteString("-->")
	}
}

// ImportantComment writes the comment.
func (p *Policy) ImportantComment(icn *ast.ImportantCommentNode) {
	p.WriteString("<!--!")
	p.WriteString(icn.Comment)
	p.WriteString("-->")
}

// CDATA writes the CDATA section.
func (p *Policy) CDATA(cn *ast.CDATANode) {
	p.WriteString("<![CDATA[")
	p.WriteString(cn.Text)
	p.WriteString("]]>")
}

// Doctype writes the document type declaration.
func (p *Policy) Doctype(dn *ast.DoctypeNode) {
	p.WriteString("<!DOCTYPE ")
	p.WriteString(dn.Text)
	p.WriteRune('>')
}

// Raw writes the raw content verbatim.
func (p *Policy) Raw(rn *ast.RawNode) { p.WriteString(rn.Text) }

// WriteString writes the string to the sink.
func (p *Policy) WriteString(s string) (int, error) { return p.out.WriteString(s) }

// WriteRune writes the rune to the sink.
func (p *Policy) WriteRune(r rune) (int, error) { return p.out.WriteRune(r) }

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// collapseSpace replaces every run of HTML white space by one space.
func collapseSpace(s string) string {
	var sb strings.Builder
	inRun := false
	for i := 0; i < len(s); i++ {
		if ch := s[i]; isSpace(ch) {
			if !inRun {
				sb.WriteByte(' ')
				inRun = true
			}
		} else {
			sb.WriteByte(ch)
			inRun = false
		}
	}
	return sb.String()
}
