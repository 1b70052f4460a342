//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of Htmlmin.
//
// Htmlmin is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package cmd

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"zettelstore.de/htmlmin/config"
	"zettelstore.de/htmlmin/logger"
	"zettelstore.de/htmlmin/optimizer"
	"zettelstore.de/htmlmin/parser"
	"zettelstore.de/htmlmin/writer"
)

// ---------- Subcommand: file -----------------------------------------------

func cmdFile(fs *flag.FlagSet, cfg *config.Config, log *logger.Logger) (int, error) {
	inName := fs.Arg(0)
	src, err := readInput(inName)
	if err != nil {
		return exitProcess, err
	}
	if err = convertTo(fs.Lookup("o").Value.String(), src, syntaxFor(cfg, inName), cfg, log); err != nil {
		return codeForError(err), err
	}
	return exitOK, nil
}

func readInput(name string) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

// syntaxFor returns the configured syntax. If no syntax is configured, the
// extension of the input file is used, when it names a known syntax.
func syntaxFor(cfg *config.Config, inName string) string {
	if syntax, ok := cfg.Get(config.KeySyntax); ok && syntax != "" {
		return syntax
	}
	if ext := strings.TrimPrefix(filepath.Ext(inName), "."); ext != "" {
		if _, err := parser.Get(strings.ToLower(ext)); err == nil {
			return strings.ToLower(ext)
		}
	}
	return cfg.Syntax()
}

// convertTo writes the conversion to the named output file, or to standard
// output if no name is given.
func convertTo(outName string, src []byte, syntax string, cfg *config.Config, log *logger.Logger) error {
	if outName == "" || outName == "-" {
		if err := convert(os.Stdout, src, syntax, cfg, log); err != nil {
			return err
		}
		if term.IsTerminal(int(os.Stdout.Fd())) {
			_, err := io.WriteString(os.Stdout, "\n")
			return err
		}
		return nil
	}
	f, err := os.Create(outName)
	if err != nil {
		return err
	}
	if err = convert(f, src, syntax, cfg, log); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// convert parses the source, removes dead script code, and writes the
// document with the configured writer.
func convert(w io.Writer, src []byte, syntax string, cfg *config.Config, log *logger.Logger) error {
	wr, err := writer.Create(cfg.Target(), cfg.Environment())
	if err != nil {
		return err
	}
	opts := cfg.ParserOptions()
	opts.Log = log.Clone().Str("syntax", syntax).Child()
	doc, err := parser.Parse(src, syntax, opts)
	if err != nil {
		return err
	}
	// None of the registered parsers builds statement blocks of scripts yet,
	// so this only finds blocks of documents built programmatically.
	optimizer.New(log.Clone().Str("pass", "dce").Child()).Optimize(doc)
	n, err := wr.WriteDocument(w, doc)
	log.Debug().Str("syntax", syntax).Str("target", cfg.Target()).Int("bytes", int64(n)).Msg("Converted")
	return err
}
