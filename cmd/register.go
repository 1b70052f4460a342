//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of Htmlmin.
//
// Htmlmin is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package cmd provides command generic functions.
package cmd

// Mention all needed writers and parsers to have them registered.
import (
	_ "zettelstore.de/htmlmin/parser/htmlparser"  // Allow to use HTML parser.
	_ "zettelstore.de/htmlmin/parser/markdown"    // Allow to use markdown parser.
	_ "zettelstore.de/htmlmin/parser/plain"       // Allow to use plain parser.
	_ "zettelstore.de/htmlmin/writer/htmlwriter"  // Allow to use HTML writer.
	_ "zettelstore.de/htmlmin/writer/sexprwriter" // Allow to use sexpr writer.
	_ "zettelstore.de/htmlmin/writer/textwriter"  // Allow to use text writer.
)
