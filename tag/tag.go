//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of Htmlmin.
//
// Htmlmin is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package tag provides metadata about known HTML element names.
package tag

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// Flags classify an element name.
type Flags uint8

// Constants for Flags
const (
	Phrasing     Flags = 1 << iota // Phrasing (inline-level) content
	Void                           // Element never has content and no end tag
	RawText                        // Content is not parsed as markup (script, style)
	Preformatted                   // White space inside is significant
)

// Descriptor stores the metadata of one element name.
type Descriptor struct {
	Name  string
	Atom  atom.Atom
	Flags Flags
}

// IsPhrasing returns true, if the element is phrasing content.
func (d *Descriptor) IsPhrasing() bool { return d != nil && d.Flags&Phrasing != 0 }

// IsVoid returns true, if the element cannot have any content.
func (d *Descriptor) IsVoid() bool { return d != nil && d.Flags&Void != 0 }

// IsRawText returns true, if the content of the element is raw text.
func (d *Descriptor) IsRawText() bool { return d != nil && d.Flags&RawText != 0 }

// IsPreformatted returns true, if white space in the element must be kept.
func (d *Descriptor) IsPreformatted() bool { return d != nil && d.Flags&Preformatted != 0 }

var flagMap = map[atom.Atom]Flags{
	atom.A:        Phrasing,
	atom.Abbr:     Phrasing,
	atom.Acronym:  Phrasing,
	atom.B:        Phrasing,
	atom.Bdi:      Phrasing,
	atom.Bdo:      Phrasing,
	atom.Big:      Phrasing,
	atom.Br:       Phrasing | Void,
	atom.Cite:     Phrasing,
	atom.Code:     Phrasing,
	atom.Data:     Phrasing,
	atom.Del:      Phrasing,
	atom.Dfn:      Phrasing,
	atom.Em:       Phrasing,
	atom.Font:     Phrasing,
	atom.I:        Phrasing,
	atom.Img:      Phrasing | Void,
	atom.Ins:      Phrasing,
	atom.Kbd:      Phrasing,
	atom.Label:    Phrasing,
	atom.Mark:     Phrasing,
	atom.Q:        Phrasing,
	atom.S:        Phrasing,
	atom.Samp:     Phrasing,
	atom.Small:    Phrasing,
	atom.Span:     Phrasing,
	atom.Strike:   Phrasing,
	atom.Strong:   Phrasing,
	atom.Sub:      Phrasing,
	atom.Sup:      Phrasing,
	atom.Time:     Phrasing,
	atom.Tt:       Phrasing,
	atom.U:        Phrasing,
	atom.Var:      Phrasing,
	atom.Wbr:      Phrasing | Void,
	atom.Area:     Void,
	atom.Base:     Void,
	atom.Col:      Void,
	atom.Embed:    Void,
	atom.Hr:       Void,
	atom.Input:    Void,
	atom.Link:     Void,
	atom.Meta:     Void,
	atom.Param:    Void,
	atom.Source:   Void,
	atom.Track:    Void,
	atom.Script:   RawText,
	atom.Style:    RawText,
	atom.Xmp:      RawText | Preformatted,
	atom.Iframe:   RawText,
	atom.Noembed:  RawText,
	atom.Noframes: RawText,
	atom.Noscript: RawText,
	atom.Plaintext: RawText | Preformatted,
	atom.Pre:      Preformatted,
	atom.Listing:  Preformatted,
	atom.Textarea: Preformatted,
}

// Lookup returns the descriptor of the given element name. If the name is not
// a known HTML element, nil is returned.
func Lookup(name string) *Descriptor {
	a := atom.Lookup([]byte(strings.ToLower(name)))
	if a == 0 {
		return nil
	}
	return &Descriptor{Name: a.String(), Atom: a, Flags: flagMap[a]}
}

// IsLineBreak returns true, if the name denotes the line-break element.
func IsLineBreak(name string) bool { return strings.EqualFold(name, "br") }

// IsListItem returns true, if the name denotes the list-item element.
func IsListItem(name string) bool { return strings.EqualFold(name, "li") }

// IsBody returns true, if the name denotes the document body element.
func IsBody(name string) bool { return strings.EqualFold(name, "body") }
