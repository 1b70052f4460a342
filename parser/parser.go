//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of Htmlmin.
//
// Htmlmin is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package parser provides a generic interface to a range of different parsers.
package parser

import (
	"errors"
	"fmt"
	"sort"

	"zettelstore.de/htmlmin/ast"
	"zettelstore.de/htmlmin/logger"
)

// Options specifies how a parser treats its input.
type Options struct {
	NormalizeUnicode bool           // Normalize text to Unicode NFC
	Log              *logger.Logger // Receives warnings about malformed input, may be nil
}

// Logger returns the logger of the options, or nil.
func (opts *Options) Logger() *logger.Logger {
	if opts == nil {
		return nil
	}
	return opts.Log
}

// Info describes a single parser.
type Info struct {
	Name     string
	AltNames []string
	Parse    func([]byte, *Options) (*ast.DocumentNode, error)
}

// ErrUnknownSyntax is returned if no parser is registered for a syntax.
var ErrUnknownSyntax = errors.New("unknown syntax")

var registry = map[string]*Info{}

// Register the parser (info) for later retrieval.
func Register(pi *Info) {
	if _, ok := registry[pi.Name]; ok {
		panic(fmt.Sprintf("Parser %q already registered", pi.Name))
	}
	registry[pi.Name] = pi
	for _, alt := range pi.AltNames {
		if _, ok := registry[alt]; ok {
			panic(fmt.Sprintf("Parser %q already registered", alt))
		}
		registry[alt] = pi
	}
}

// GetSyntaxes returns a sorted list of syntaxes implemented by all registered parsers.
func GetSyntaxes() []string {
	result := make([]string, 0, len(registry))
	for syntax := range registry {
		result = append(result, syntax)
	}
	sort.Strings(result)
	return result
}

// Get the parser (info) by name.
func Get(name string) (*Info, error) {
	if pi := registry[name]; pi != nil {
		return pi, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSyntax, name)
}

// Parse parses the source with the parser for the given syntax.
func Parse(src []byte, syntax string, opts *Options) (*ast.DocumentNode, error) {
	pi, err := Get(syntax)
	if err != nil {
		return nil, err
	}
	return pi.Parse(src, opts)
}

// WrapBody returns a document with an html and a body element around the
// given nodes. Parsers for formats without a document structure use it, so
// that the content counts as document body.
func WrapBody(nodes ...ast.Node) *ast.DocumentNode {
	return ast.CreateDocument(
		ast.CreateElement("html", nil,
			ast.CreateElement("body", nil, nodes...),
		),
	)
}
