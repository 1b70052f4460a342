//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of Htmlmin.
//
// Htmlmin is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package optimizer_test

import (
	"bytes"
	"strings"
	"testing"

	"zettelstore.de/htmlmin/ast"
	"zettelstore.de/htmlmin/logger"
	"zettelstore.de/htmlmin/optimizer"
)

func expr(s string) ast.Node { return &ast.ExprStmtNode{Expr: s} }

func ret(s string) ast.Node { return &ast.JumpNode{Kind: ast.JumpReturn, Expr: s} }

func important(s string) ast.Node { return &ast.ImportantCommentNode{Comment: s} }

func varDecl(name string) ast.Node {
	return &ast.VarDeclNode{Kind: ast.DeclVar, Names: []string{name}}
}

func funcDecl(name string, body ...ast.Node) ast.Node {
	return &ast.FuncDeclNode{Name: name, Body: ast.CreateBlock(body...)}
}

func render(bn *ast.BlockNode) string {
	var sb strings.Builder
	renderBlock(&sb, bn)
	return sb.String()
}

func renderBlock(sb *strings.Builder, bn *ast.BlockNode) {
	sb.WriteByte('{')
	for i, stmt := range bn.Statements {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch n := stmt.(type) {
		case *ast.ExprStmtNode:
			sb.WriteString(n.Expr)
		case *ast.JumpNode:
			switch n.Kind {
			case ast.JumpReturn:
				sb.WriteString("return")
			case ast.JumpBreak:
				sb.WriteString("break")
			case ast.JumpContinue:
				sb.WriteString("continue")
			case ast.JumpThrow:
				sb.WriteString("throw")
			}
		case *ast.ImportantCommentNode:
			sb.WriteString("/*!" + n.Comment + "*/")
		case *ast.VarDeclNode:
			sb.WriteString("var " + strings.Join(n.Names, ","))
		case *ast.FuncDeclNode:
			sb.WriteString("function " + n.Name)
			renderBlock(sb, n.Body)
		case *ast.BlockNode:
			renderBlock(sb, n)
		}
	}
	sb.WriteByte('}')
}

func TestRemoveDeadCode(t *testing.T) {
	testcases := []struct {
		name    string
		block   *ast.BlockNode
		exp     string
		removed int
	}{
		{"empty", ast.CreateBlock(), "{}", 0},
		{"no-jump", ast.CreateBlock(expr("a"), expr("b")), "{a b}", 0},
		{"after-return", ast.CreateBlock(expr("a"), ret(""), expr("b"), expr("c")), "{a return}", 2},
		{"jump-last", ast.CreateBlock(expr("a"), ret("")), "{a return}", 0},
		{"important-survives",
			ast.CreateBlock(ret(""), expr("x"), important("license"), expr("y")),
			"{return /*!license*/}", 2},
		{"declarations-survive",
			ast.CreateBlock(&ast.JumpNode{Kind: ast.JumpThrow, Expr: "e"}, varDecl("v"), expr("z"), funcDecl("f", expr("q"))),
			"{throw var v function f{q}}", 1},
		{"only-first-jump",
			ast.CreateBlock(&ast.JumpNode{Kind: ast.JumpBreak}, &ast.JumpNode{Kind: ast.JumpContinue}, expr("a")),
			"{break}", 2},
		{"nested-block",
			ast.CreateBlock(expr("a"), ast.CreateBlock(ret(""), expr("b")), expr("c")),
			"{a {return} c}", 1},
		{"function-body",
			ast.CreateBlock(funcDecl("f", ret("1"), expr("dead"), important("keep")), ret(""), funcDecl("g", ret(""), expr("x"))),
			"{function f{return /*!keep*/} return function g{return}}", 2},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			removed := optimizer.RemoveDeadCode(tc.block)
			if got := render(tc.block); got != tc.exp {
				t.Errorf("expected %q, but got %q", tc.exp, got)
			}
			if removed != tc.removed {
				t.Errorf("expected %d removed statements, but got %d", tc.removed, removed)
			}
		})
	}
}

func TestRemoveDeadCodeNil(t *testing.T) {
	if got := optimizer.RemoveDeadCode(nil); got != 0 {
		t.Errorf("nil block must remove nothing, but got %d", got)
	}
}

// For every position of an important comment behind a jump, the comment is
// kept and all other non-declarations are removed.
func TestImportantCommentRetention(t *testing.T) {
	const n = 5
	for pos := 0; pos < n; pos++ {
		stmts := []ast.Node{expr("a"), ret("")}
		for i := 0; i < n; i++ {
			if i == pos {
				stmts = append(stmts, important("c"))
			} else {
				stmts = append(stmts, expr("x"))
			}
		}
		bn := ast.CreateBlock(stmts...)
		removed := optimizer.RemoveDeadCode(bn)
		if got := render(bn); got != "{a return /*!c*/}" {
			t.Errorf("pos %d: got %q", pos, got)
		}
		if removed != n-1 {
			t.Errorf("pos %d: expected %d removed, but got %d", pos, n-1, removed)
		}
	}
}

func TestOptimizeDocument(t *testing.T) {
	b1 := ast.CreateBlock(ret(""), expr("dead"))
	b2 := ast.CreateBlock(expr("live"), ret(""), important("k"), expr("dead"))
	doc := ast.CreateDocument(
		ast.CreateElement("html", nil,
			ast.CreateElement("body", nil, b1, &ast.TextNode{Text: "t"}, b2)))

	var buf bytes.Buffer
	log := logger.New(logger.NewLogWriterAdapter(&buf), "OPT").SetLevel(logger.DebugLevel)
	removed := optimizer.New(log).Optimize(doc)
	if removed != 2 {
		t.Errorf("expected 2 removed statements, but got %d", removed)
	}
	if got := render(b1); got != "{return}" {
		t.Errorf("first block: %q", got)
	}
	if got := render(b2); got != "{live return /*!k*/}" {
		t.Errorf("second block: %q", got)
	}
	if got := buf.String(); !strings.Contains(got, "removed=2") {
		t.Errorf("expected debug log with removed count, but got %q", got)
	}
}
