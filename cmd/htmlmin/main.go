//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of Htmlmin.
//
// Htmlmin is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package main is the starting point for the htmlmin command.
package main

import (
	"zettelstore.de/htmlmin/cmd"
)

// Version variable. Will be filled by build process.
var buildVersion string = ""

func main() {
	cmd.Main("Htmlmin", buildVersion)
}
