//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of Htmlmin.
//
// Htmlmin is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package sexprwriter_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"zettelstore.de/htmlmin/ast"
	"zettelstore.de/htmlmin/parser/htmlparser"
	"zettelstore.de/htmlmin/writer"
	_ "zettelstore.de/htmlmin/writer/sexprwriter" // Allow to use sexpr writer.
)

func TestWriteDocument(t *testing.T) {
	src := `<!DOCTYPE html><p class="x">Hello <b>world</b><!-- c --><!--! keep --></p><script>if (a<b) {}</script>`
	doc, err := htmlparser.Parse([]byte(src), nil)
	if err != nil {
		t.Fatal(err)
	}
	w, err := writer.Create("sexpr", nil)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	n, err := w.WriteDocument(&buf, doc)
	if err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if n != len(got) {
		t.Errorf("reported %d bytes, but wrote %d", n, len(got))
	}
	if !strings.HasPrefix(got, "(DOCUMENT ") {
		t.Errorf("document list expected, but got %q", got)
	}
	// Nodes must appear in document order.
	pos := 0
	for _, exp := range []string{
		`(DOCTYPE "html")`,
		`(ELEMENT "p" `,
		`"class"`,
		`(TEXT "Hello ")`,
		`(ELEMENT "b" `,
		`(TEXT "world")`,
		`(COMMENT " c ")`,
		`(IMPORTANT-COMMENT " keep ")`,
		`(ELEMENT "script" `,
		`(RAW "if (a<b) {}")`,
	} {
		i := strings.Index(got[pos:], exp)
		if i < 0 {
			t.Errorf("%q not found after position %d in %q", exp, pos, got)
			continue
		}
		pos += i + len(exp)
	}
}

func TestWriteNodes(t *testing.T) {
	w, err := writer.Create("sexpr", nil)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	ns := ast.NodeSlice{&ast.TextNode{Text: "a"}, &ast.CDATANode{Text: "x<y"}}
	if _, err = w.WriteNodes(&buf, ns); err != nil {
		t.Fatal(err)
	}
	if got, exp := buf.String(), `((TEXT "a") (CDATA "x<y"))`; got != exp {
		t.Errorf("expected %q, but got %q", exp, got)
	}
}

func TestInvalidArgument(t *testing.T) {
	w, err := writer.Create("sexpr", nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = w.WriteNodes(nil, nil); !errors.Is(err, writer.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for missing output, but got %v", err)
	}
	var buf bytes.Buffer
	if _, err = w.WriteDocument(&buf, nil); !errors.Is(err, writer.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for missing document, but got %v", err)
	}
}
