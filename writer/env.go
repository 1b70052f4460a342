//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of Htmlmin.
//
// Htmlmin is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package writer

// Environment specifies all data that affects writing.
type Environment struct {
	// Important for the text writer.
	KeepStructure  bool // keep line breaks and other control characters
	KeepFormatting bool // echo phrasing tags verbatim
	KeepHTMLEscape bool // do not decode "&lt;" and "&amp;"

	// Important for the HTML writer.
	KeepComments bool // keep ordinary comments
}

// HasKeepStructure returns true, if control characters must be written unchanged.
func (env *Environment) HasKeepStructure() bool { return env != nil && env.KeepStructure }

// HasKeepFormatting returns true, if phrasing tags must be echoed.
func (env *Environment) HasKeepFormatting() bool { return env != nil && env.KeepFormatting }

// HasKeepHTMLEscape returns true, if HTML escapes must be kept.
func (env *Environment) HasKeepHTMLEscape() bool { return env != nil && env.KeepHTMLEscape }

// HasKeepComments returns true, if ordinary comments must be kept.
func (env *Environment) HasKeepComments() bool { return env != nil && env.KeepComments }
