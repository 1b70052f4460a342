//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of Htmlmin.
//
// Htmlmin is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package ast

import "strings"

// Attribute is a key/value pair of an element.
type Attribute struct {
	Key string
	Val string
}

// Attributes store the attributes of an element, in source order.
type Attributes []Attribute

// IsEmpty returns true if there are no attributes.
func (a Attributes) IsEmpty() bool { return len(a) == 0 }

// Get returns the attribute value of the given key and whether it is present.
// Keys are compared case-insensitively.
func (a Attributes) Get(key string) (string, bool) {
	for _, attr := range a {
		if strings.EqualFold(attr.Key, key) {
			return attr.Val, true
		}
	}
	return "", false
}
