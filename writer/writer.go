//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of Htmlmin.
//
// Htmlmin is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package writer provides a generic interface to write the abstract syntax
// tree into some text form, driven by an output policy.
package writer

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"zettelstore.de/htmlmin/ast"
)

// Writer is an interface that allows to write a document or a part of it.
//
// Every call uses fresh traversal state, so a Writer may be used for many
// documents, one after the other.
type Writer interface {
	WriteDocument(io.Writer, *ast.DocumentNode) (int, error)
	WriteNodes(io.Writer, ast.NodeSlice) (int, error)
}

// Some errors to signal wrong usage.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownWriter   = errors.New("unknown writer")
)

// Info stores some data about a writer.
type Info struct {
	Create  func(*Environment) Writer
	Default bool
}

var registry = map[string]Info{}
var defName string

// Register the writer for later retrieval.
func Register(name string, info Info) {
	if _, ok := registry[name]; ok {
		panic(fmt.Sprintf("Writer %q already registered", name))
	}
	if info.Default {
		if defName != "" && defName != name {
			panic(fmt.Sprintf("Default writer already set: %q, new writer: %q", defName, name))
		}
		defName = name
	}
	registry[name] = info
}

// Create builds a new writer with the given environment.
func Create(name string, env *Environment) (Writer, error) {
	if info, ok := registry[name]; ok {
		return info.Create(env), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownWriter, name)
}

// Names returns all registered writer names, sorted.
func Names() []string {
	result := make([]string, 0, len(registry))
	for name := range registry {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// DefaultName returns the name of the writer that should be used as default.
func DefaultName() string {
	if defName != "" {
		return defName
	}
	if _, ok := registry["text"]; ok {
		return "text"
	}
	panic("No default writer given")
}
