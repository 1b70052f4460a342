//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of Htmlmin.
//
// Htmlmin is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package textwriter writes the human-readable text of a document.
package textwriter

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"zettelstore.de/htmlmin/ast"
	"zettelstore.de/htmlmin/tag"
	"zettelstore.de/htmlmin/writer"
)

func init() {
	writer.Register("text", writer.Info{
		Create: func(env *writer.Environment) writer.Writer { return &textWriter{env: env} },
	})
}

type textWriter struct {
	env *writer.Environment
}

// WriteDocument writes the text of the document body.
func (tw *textWriter) WriteDocument(w io.Writer, dn *ast.DocumentNode) (int, error) {
	return tw.WriteNodes(w, ast.NodeSlice{dn})
}

// WriteNodes writes the text of the given nodes.
func (tw *textWriter) WriteNodes(w io.Writer, ns ast.NodeSlice) (int, error) {
	if w == nil {
		return 0, fmt.Errorf("%w: text writer needs an output", writer.ErrInvalidArgument)
	}
	b := writer.NewBufWriter(w)
	p, err := New(b, tw.env)
	if err != nil {
		return 0, err
	}
	writer.Walk(p, ns...)
	return b.Flush()
}

// Policy extracts text. Only content inside the body element is written.
// A Policy holds the state of one traversal and must not be shared.
type Policy struct {
	writer.Base
	out            writer.Sink
	keepStructure  bool
	keepFormatting bool
	keepHTMLEscape bool
	bodyDepth      int
}

// New creates a new text extraction policy that writes to the given sink.
func New(out writer.Sink, env *writer.Environment) (*Policy, error) {
	if out == nil {
		return nil, fmt.Errorf("%w: text writer needs an output", writer.ErrInvalidArgument)
	}
	p := &Policy{
		out:            out,
		keepStructure:  env.HasKeepStructure(),
		keepFormatting: env.HasKeepFormatting(),
		keepHTMLEscape: env.HasKeepHTMLEscape(),
	}
	p.Base = writer.NewBase(p)
	return p, nil
}

// Emitting returns true, if output currently reaches the sink.
func (p *Policy) Emitting() bool { return p.bodyDepth > 0 }

// StartTag echoes phrasing tags if formatting is kept, and writes a line
// break for the line-break element. The body element enables output.
func (p *Policy) StartTag(en *ast.ElementNode) {
	if tag.IsBody(en.Name) {
		p.bodyDepth++
	}
	if p.keepFormatting && en.IsPhrasing() {
		p.Base.StartTag(en)
		return
	}
	if tag.IsLineBreak(en.Name) {
		p.WriteRune('\n')
	}
}

// EndTag separates blocks and list items by a line break. The end of the
// body element disables output, after the line break was written.
func (p *Policy) EndTag(en *ast.ElementNode) {
	if en.Descriptor == nil || !en.IsPhrasing() || tag.IsListItem(en.Name) {
		p.WriteRune('\n')
	}
	if p.keepFormatting && en.IsPhrasing() {
		p.Base.EndTag(en)
	}
	if tag.IsBody(en.Name) && p.bodyDepth > 0 {
		p.bodyDepth--
	}
}

var unescaper = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&amp;", "&")

// WriteString writes the string to the sink, if output is enabled.
func (p *Policy) WriteString(s string) (int, error) {
	if !p.Emitting() {
		return 0, nil
	}
	if !p.keepStructure {
		s = collapseControls(s)
	}
	if p.keepFormatting || !p.keepHTMLEscape {
		s = unescaper.Replace(s)
	}
	return p.out.WriteString(s)
}

// WriteRune writes the rune to the sink, if output is enabled.
func (p *Policy) WriteRune(r rune) (int, error) {
	if !p.Emitting() {
		return 0, nil
	}
	if !p.keepStructure && unicode.IsSpace(r) {
		r = ' '
	}
	return p.out.WriteRune(r)
}

func isControl(ch byte) bool {
	switch ch {
	case '\r', '\n', '\t', '\f':
		return true
	}
	return false
}

// collapseControls replaces every run of CR, LF, TAB and FF by one space.
func collapseControls(s string) string {
	pos := strings.IndexAny(s, "\r\n\t\f")
	if pos < 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	sb.WriteString(s[:pos])
	inRun := false
	for i := pos; i < len(s); i++ {
		if ch := s[i]; isControl(ch) {
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
