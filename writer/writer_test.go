//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of Htmlmin.
//
// Htmlmin is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package writer_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"zettelstore.de/htmlmin/ast"
	"zettelstore.de/htmlmin/writer"
)

type recorder struct {
	events []string
}

func (r *recorder) StartTag(en *ast.ElementNode) { r.events = append(r.events, "<"+en.Name) }
func (r *recorder) EndTag(en *ast.ElementNode)   { r.events = append(r.events, "/"+en.Name) }
func (r *recorder) Text(tn *ast.TextNode)        { r.events = append(r.events, "T:"+tn.Text) }
func (r *recorder) Comment(*ast.CommentNode)     { r.events = append(r.events, "C") }
func (r *recorder) CDATA(*ast.CDATANode)         { r.events = append(r.events, "D") }
func (r *recorder) Doctype(*ast.DoctypeNode)     { r.events = append(r.events, "!") }
func (r *recorder) Raw(*ast.RawNode)             { r.events = append(r.events, "R") }
func (r *recorder) ImportantComment(*ast.ImportantCommentNode) {
	r.events = append(r.events, "I")
}

func TestWalkOrder(t *testing.T) {
	t.Parallel()
	doc := ast.CreateDocument(
		&ast.DoctypeNode{Text: "html"},
		ast.CreateElement("body", nil,
			ast.CreateElement("p", nil,
				&ast.TextNode{Text: "a"},
				ast.CreateElement("br", nil),
				&ast.CommentNode{Text: "c"},
			),
			ast.CreateElement("script", nil, &ast.RawNode{Text: "x()"}),
			&ast.CDATANode{Text: "d"},
			&ast.ImportantCommentNode{Comment: "!"},
			ast.CreateBlock(&ast.ExprStmtNode{Expr: "ignored"}),
		),
	)
	var r recorder
	writer.Walk(&r, doc)
	got := strings.Join(r.events, " ")
	exp := "! <body <p T:a <br /br C /p <script R /script D I /body"
	if got != exp {
		t.Errorf("\nExpected: %q\nGot:      %q", exp, got)
	}
}

type echoPolicy struct {
	writer.Base
}

func TestBaseEcho(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	p := echoPolicy{writer.NewBase(&sb)}
	writer.Walk(&p,
		&ast.DoctypeNode{Text: "html"},
		ast.CreateElement("p", ast.Attributes{{Key: "class", Val: `a"b`}, {Key: "hidden"}},
			&ast.TextNode{Text: "x &lt; y"},
			ast.CreateElement("br", nil),
			&ast.CommentNode{Text: "dropped"},
			&ast.ImportantCommentNode{Comment: "dropped"},
		),
		&ast.ElementNode{Name: "circle", SelfClosing: true},
		&ast.RawNode{Text: "dropped"},
	)
	exp := `<p class="a&quot;b" hidden>x &lt; y<br></p><circle/>`
	if got := sb.String(); got != exp {
		t.Errorf("\nExpected: %q\nGot:      %q", exp, got)
	}
}

func TestBufWriter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	bw := writer.NewBufWriter(&buf)
	bw.WriteString("Hello")
	bw.WriteRune(',')
	bw.WriteRune(' ')
	bw.WriteString("wörld")
	bw.WriteRune('!')
	length, err := bw.Flush()
	if err != nil {
		t.Fatal(err)
	}
	if exp := "Hello, wörld!"; buf.String() != exp || length != len(exp) {
		t.Errorf("expected %q/%d, but got %q/%d", exp, len(exp), buf.String(), length)
	}
}

type failWriter struct {
	writes int
}

var errFail = errors.New("write failed")

func (fw *failWriter) Write(p []byte) (int, error) {
	fw.writes++
	return 0, errFail
}

func TestBufWriterFlushesRunes(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	bw := writer.NewBufWriter(&buf)
	for i := 0; i < 1500; i++ {
		if _, err := bw.WriteRune('ä'); err != nil {
			t.Fatal(err)
		}
	}
	if buf.Len() == 0 {
		t.Error("runes were not flushed after buffer became full")
	}
	length, err := bw.Flush()
	if err != nil {
		t.Fatal(err)
	}
	if exp := strings.Repeat("ä", 1500); buf.String() != exp || length != len(exp) {
		t.Errorf("expected %d bytes, but got %d/%d", len(exp), buf.Len(), length)
	}
}

func TestBufWriterError(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		name  string
		write func(*writer.BufWriter) (int, error)
	}{
		{"Write", func(bw *writer.BufWriter) (int, error) { return bw.Write([]byte("x")) }},
		{"WriteString", func(bw *writer.BufWriter) (int, error) { return bw.WriteString("x") }},
		{"WriteRune", func(bw *writer.BufWriter) (int, error) { return bw.WriteRune('x') }},
	}
	for _, tc := range testcases {
		fw := failWriter{}
		bw := writer.NewBufWriter(&fw)
		var err error
		for i := 0; i < 3000 && err == nil; i++ {
			_, err = tc.write(bw)
		}
		if !errors.Is(err, errFail) {
			t.Errorf("%s: expected error %v, but got %v", tc.name, errFail, err)
			continue
		}
		if n, err2 := tc.write(bw); n != 0 || !errors.Is(err2, errFail) {
			t.Errorf("%s: write after error returned %d/%v", tc.name, n, err2)
		}
		if _, err2 := bw.Flush(); !errors.Is(err2, errFail) || fw.writes != 1 {
			t.Errorf("%s: flush after error: %v, %d writes", tc.name, err2, fw.writes)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	t.Parallel()
	w, err := writer.Create("no-such-writer", nil)
	if w != nil || !errors.Is(err, writer.ErrUnknownWriter) {
		t.Errorf("expected ErrUnknownWriter, but got %v/%v", w, err)
	}
}

func TestEnvironmentNil(t *testing.T) {
	t.Parallel()
	var env *writer.Environment
	if env.HasKeepStructure() || env.HasKeepFormatting() || env.HasKeepHTMLEscape() || env.HasKeepComments() {
		t.Error("nil environment must not enable any option")
	}
}
