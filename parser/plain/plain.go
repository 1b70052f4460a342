//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of Htmlmin.
//
// Htmlmin is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package plain provides parsers for plain text data and for stand-alone
// style sheets and scripts.
package plain

import (
	"strings"

	"zettelstore.de/c/html"

	"zettelstore.de/htmlmin/ast"
	"zettelstore.de/htmlmin/parser"
)

func init() {
	parser.Register(&parser.Info{
		Name:     "text",
		AltNames: []string{"txt", "plain"},
		Parse:    parseText,
	})
	parser.Register(&parser.Info{
		Name:     "css",
		AltNames: []string{},
		Parse:    func(src []byte, _ *parser.Options) (*ast.DocumentNode, error) { return parseRaw(src, "style") },
	})
	parser.Register(&parser.Info{
		Name:     "js",
		AltNames: []string{"javascript"},
		Parse:    func(src []byte, _ *parser.Options) (*ast.DocumentNode, error) { return parseRaw(src, "script") },
	})
}

// parseText places the escaped text in a preformatted element.
func parseText(src []byte, _ *parser.Options) (*ast.DocumentNode, error) {
	var sb strings.Builder
	html.Escape(&sb, string(src))
	text := &ast.TextNode{Span: ast.Span{Start: 0, End: len(src)}, Text: sb.String()}
	return parser.WrapBody(ast.CreateElement("pre", nil, text)), nil
}

func parseRaw(src []byte, name string) (*ast.DocumentNode, error) {
	raw := &ast.RawNode{Span: ast.Span{Start: 0, End: len(src)}, Text: string(src)}
	return parser.WrapBody(ast.CreateElement(name, nil, raw)), nil
}
