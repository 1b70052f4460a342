//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of Htmlmin.
//
// Htmlmin is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package htmlparser provides a parser for HTML documents.
package htmlparser

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"

	"zettelstore.de/htmlmin/ast"
	"zettelstore.de/htmlmin/logger"
	"zettelstore.de/htmlmin/parser"
	"zettelstore.de/htmlmin/tag"
)

func init() {
	parser.Register(&parser.Info{
		Name:     "html",
		AltNames: []string{"htm", "xhtml"},
		Parse:    Parse,
	})
}

// Parse builds the abstract syntax tree of an HTML document.
//
// Text keeps all entities as written in the source. The content of script
// and style elements becomes a raw node. Comments starting with "!" become
// important comments. Stray end tags and repeated attributes are ignored,
// with a warning to the logger of the options. Some elements close their
// predecessors implicitly, e.g. "<li>" closes an open "<li>".
func Parse(src []byte, opts *parser.Options) (*ast.DocumentNode, error) {
	p := htmlP{
		z:    html.NewTokenizer(bytes.NewReader(src)),
		doc:  &ast.DocumentNode{Span: ast.Span{Start: 0, End: len(src)}},
		norm: opts != nil && opts.NormalizeUnicode,
		log:  opts.Logger(),
	}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.doc, nil
}

type htmlP struct {
	z     *html.Tokenizer
	doc   *ast.DocumentNode
	stack []*ast.ElementNode
	pos   int
	norm  bool
	log   *logger.Logger
}

func (p *htmlP) parse() error {
	for {
		tt := p.z.Next()
		raw := string(p.z.Raw())
		span := ast.Span{Start: p.pos, End: p.pos + len(raw)}
		p.pos = span.End

		switch tt {
		case html.ErrorToken:
			if err := p.z.Err(); err != io.EOF {
				return err
			}
			for _, en := range p.stack {
				en.End = p.pos
			}
			return nil
		case html.TextToken:
			p.addText(raw, span)
		case html.StartTagToken, html.SelfClosingTagToken:
			p.addElement(tt == html.SelfClosingTagToken, span)
		case html.EndTagToken:
			name, _ := p.z.TagName()
			p.closeElement(string(name), span.End)
		case html.CommentToken:
			p.addComment(p.commentText(raw), span)
		case html.DoctypeToken:
			p.appendNode(&ast.DoctypeNode{Span: span, Text: doctypeText(raw)})
		}
	}
}

func (p *htmlP) top() *ast.ElementNode {
	if l := len(p.stack); l > 0 {
		return p.stack[l-1]
	}
	return nil
}

func (p *htmlP) appendNode(n ast.Node) {
	if en := p.top(); en != nil {
		en.Children = append(en.Children, n)
		return
	}
	p.doc.Children = append(p.doc.Children, n)
}

func (p *htmlP) addText(raw string, span ast.Span) {
	if raw == "" {
		return
	}
	if en := p.top(); en != nil && en.Descriptor.IsRawText() {
		p.appendNode(&ast.RawNode{Span: span, Text: raw})
		return
	}
	if p.norm {
		raw = norm.NFC.String(raw)
	}
	p.appendNode(&ast.TextNode{Span: span, Text: raw})
}

func (p *htmlP) addElement(selfClosing bool, span ast.Span) {
	bName, hasAttr := p.z.TagName()
	name := string(bName)
	var attrs ast.Attributes
	for hasAttr {
		var bKey, bVal []byte
		bKey, bVal, hasAttr = p.z.TagAttr()
		key := string(bKey)
		if _, found := attrs.Get(key); found {
			p.log.Warn().Str("tag", name).Str("attr", key).Int("pos", int64(span.Start)).Msg("Duplicate attribute ignored")
			continue
		}
		attrs = append(attrs, ast.Attribute{Key: key, Val: string(bVal)})
	}
	en := &ast.ElementNode{
		Span:        span,
		Name:        name,
		Descriptor:  tag.Lookup(name),
		Attrs:       attrs,
		SelfClosing: selfClosing,
	}
	p.closeImplied(en)
	p.appendNode(en)
	if selfClosing || en.IsVoid() {
		return
	}
	p.stack = append(p.stack, en)
}

// closeImplied closes open elements that cannot contain the new element.
func (p *htmlP) closeImplied(en *ast.ElementNode) {
	if en.Descriptor == nil {
		return
	}
	switch a := en.Descriptor.Atom; a {
	case atom.Li:
		p.closeUpTo(en.Span.Start, []atom.Atom{atom.Li}, []atom.Atom{atom.Ul, atom.Ol, atom.Menu})
	case atom.Dt, atom.Dd:
		p.closeUpTo(en.Span.Start, []atom.Atom{atom.Dt, atom.Dd}, []atom.Atom{atom.Dl})
	case atom.Option:
		p.closeUpTo(en.Span.Start, []atom.Atom{atom.Option}, []atom.Atom{atom.Select, atom.Datalist})
	case atom.Tr:
		p.closeUpTo(en.Span.Start, []atom.Atom{atom.Tr}, []atom.Atom{atom.Table, atom.Thead, atom.Tbody, atom.Tfoot})
	case atom.Td, atom.Th:
		p.closeUpTo(en.Span.Start, []atom.Atom{atom.Td, atom.Th}, []atom.Atom{atom.Tr, atom.Table})
	default:
		if closesParagraph[a] {
			if top := p.top(); top != nil && top.Descriptor != nil && top.Descriptor.Atom == atom.P {
				top.End = en.Span.Start
				p.stack = p.stack[:len(p.stack)-1]
			}
		}
	}
}

var closesParagraph = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Div: true, atom.Dl: true, atom.Fieldset: true, atom.Footer: true,
	atom.Form: true, atom.H1: true, atom.H2: true, atom.H3: true,
	atom.H4: true, atom.H5: true, atom.H6: true, atom.Header: true,
	atom.Hr: true, atom.Main: true, atom.Nav: true, atom.Ol: true,
	atom.P: true, atom.Pre: true, atom.Section: true, atom.Table: true,
	atom.Ul: true,
}

// closeUpTo closes the nearest open element with one of the given targets,
// and all elements above it. The search stops at one of the given scopes.
func (p *htmlP) closeUpTo(end int, targets, scopes []atom.Atom) {
	for i := len(p.stack) - 1; i >= 0; i-- {
		d := p.stack[i].Descriptor
		if d == nil {
			continue
		}
		if containsAtom(scopes, d.Atom) {
			return
		}
		if containsAtom(targets, d.Atom) {
			p.popTo(i, end)
			return
		}
	}
}

func containsAtom(as []atom.Atom, a atom.Atom) bool {
	for _, x := range as {
		if x == a {
			return true
		}
	}
	return false
}

func (p *htmlP) popTo(i, end int) {
	for _, en := range p.stack[i:] {
		en.End = end
	}
	p.stack = p.stack[:i]
}

func (p *htmlP) closeElement(name string, end int) {
	for i := len(p.stack) - 1; i >= 0; i-- {
		if strings.EqualFold(p.stack[i].Name, name) {
			p.popTo(i, end)
			return
		}
	}
	p.log.Warn().Str("tag", name).Int("pos", int64(end)).Msg("Stray end tag ignored")
}

// commentText returns the comment between its delimiters, exactly as written.
// Text() of the tokenizer is not used, because it decodes entities and line
// endings.
func (p *htmlP) commentText(raw string) string {
	switch {
	case strings.HasPrefix(raw, "<!--"):
		body := raw[len("<!--"):]
		for _, end := range []string{"-->", "--!>"} {
			if strings.HasSuffix(body, end) {
				return body[:len(body)-len(end)]
			}
		}
		if body == ">" || body == "->" {
			return ""
		}
		return body
	case strings.HasPrefix(raw, "<!"):
		return strings.TrimSuffix(raw[len("<!"):], ">")
	}
	return string(p.z.Text())
}

// doctypeText returns the doctype without its delimiters and keyword.
func doctypeText(raw string) string {
	const kw = "<!DOCTYPE"
	if len(raw) >= len(kw) && strings.EqualFold(raw[:len(kw)], kw) {
		raw = raw[len(kw):]
	}
	return strings.TrimSuffix(strings.TrimLeft(raw, " \t\r\n\f"), ">")
}

func (p *htmlP) addComment(text string, span ast.Span) {
	if strings.HasPrefix(text, "[CDATA[") && strings.HasSuffix(text, "]]") {
		p.appendNode(&ast.CDATANode{Span: span, Text: text[7 : len(text)-2]})
		return
	}
	if strings.HasPrefix(text, "!") {
		p.appendNode(&ast.ImportantCommentNode{Span: span, Comment: text[1:]})
		return
	}
	p.appendNode(&ast.CommentNode{Span: span, Text: text})
}
