//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of Htmlmin.
//
// Htmlmin is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package markdown_test

import (
	"strings"
	"testing"

	"zettelstore.de/htmlmin/ast"
	"zettelstore.de/htmlmin/parser"
	_ "zettelstore.de/htmlmin/parser/markdown"
	"zettelstore.de/htmlmin/writer"
	_ "zettelstore.de/htmlmin/writer/htmlwriter"
)

func TestBodyWrapped(t *testing.T) {
	doc, err := parser.Parse([]byte("# Title\n\nSome *text*.\n"), "md", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Children) != 1 {
		t.Fatalf("expected one html element, but got %d nodes", len(doc.Children))
	}
	var names []string
	ast.Inspect(doc, func(n ast.Node) bool {
		if en, ok := n.(*ast.ElementNode); ok {
			names = append(names, en.Name)
		}
		return true
	})
	if got := strings.Join(names, " "); got != "html body h1 p em" {
		t.Errorf("unexpected elements: %q", got)
	}
}

func TestRender(t *testing.T) {
	testcases := []struct {
		src string
		exp string
	}{
		{"# Title\n\nParagraph\n", "<h1>Title</h1> <p>Paragraph</p> "},
		{"- one\n- two\n", "<ul> <li>one</li> <li>two</li> </ul> "},
		{"a <b>c</b> d\n", "<p>a <b>c</b> d</p> "},
		{"x &lt; y\n", "<p>x &lt; y</p> "},
		{"~~gone~~\n", "<p><del>gone</del></p> "},
	}
	for i, tc := range testcases {
		doc, err := parser.Parse([]byte(tc.src), "markdown", nil)
		if err != nil {
			t.Errorf("%d: %v", i, err)
			continue
		}
		w, err := writer.Create("html", nil)
		if err != nil {
			t.Fatal(err)
		}
		var sb strings.Builder
		if _, err = w.WriteDocument(&sb, doc); err != nil {
			t.Errorf("%d: %v", i, err)
			continue
		}
		exp := "<html><body>" + tc.exp + "</body></html>"
		if got := sb.String(); got != exp {
			t.Errorf("%d: %q: expected %q, but got %q", i, tc.src, exp, got)
		}
	}
}
