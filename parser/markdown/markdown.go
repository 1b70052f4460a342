//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of Htmlmin.
//
// Htmlmin is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package markdown provides a parser for markdown.
//
// The markdown source is rendered to markup first, which is then parsed like
// any other HTML document. Spans of the resulting nodes refer to the
// rendered markup, not to the markdown source.
package markdown

import (
	"bytes"
	"fmt"

	gm "github.com/yuin/goldmark"
	gmExt "github.com/yuin/goldmark/extension"
	gmHTML "github.com/yuin/goldmark/renderer/html"

	"zettelstore.de/htmlmin/ast"
	"zettelstore.de/htmlmin/parser"
	"zettelstore.de/htmlmin/parser/htmlparser"
)

func init() {
	parser.Register(&parser.Info{
		Name:     "markdown",
		AltNames: []string{"md"},
		Parse:    Parse,
	})
}

var md = gm.New(
	gm.WithExtensions(gmExt.Strikethrough, gmExt.Table),
	gm.WithRendererOptions(gmHTML.WithUnsafe()),
)

// Parse converts the markdown source into a document. The generated
// content is placed inside the document body.
func Parse(src []byte, opts *parser.Options) (*ast.DocumentNode, error) {
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("markdown: %w", err)
	}
	doc, err := htmlparser.Parse(buf.Bytes(), opts)
	if err != nil {
		return nil, err
	}
	return parser.WrapBody(doc.Children...), nil
}
