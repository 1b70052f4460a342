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
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"zettelstore.de/htmlmin/config"
	"zettelstore.de/htmlmin/logger"
	"zettelstore.de/htmlmin/parser"
	"zettelstore.de/htmlmin/writer"
)

// Exit codes
const (
	exitOK      = 0
	exitUsage   = 1
	exitProcess = 2
)

func init() {
	RegisterCommand(Command{
		Name: "help",
		Func: func(*flag.FlagSet, *config.Config, *logger.Logger) (int, error) {
			fmt.Println("Available commands:")
			for _, name := range List() {
				cmd, _ := Get(name)
				if cmd.Usage == "" {
					fmt.Printf("- %q\n", name)
				} else {
					fmt.Printf("- %q %v\n", name, cmd.Usage)
				}
			}
			fmt.Println("Available syntaxes:", strings.Join(parser.GetSyntaxes(), ", "))
			fmt.Println("Available targets:", strings.Join(writer.Names(), ", "))
			return exitOK, nil
		},
	})
	RegisterCommand(Command{
		Name: "version",
		Func: func(*flag.FlagSet, *config.Config, *logger.Logger) (int, error) {
			fmtVersion()
			return exitOK, nil
		},
	})
	RegisterCommand(Command{
		Name:   "file",
		Func:   cmdFile,
		Config: true,
		Usage:  "[-c config] [-t target] [-syntax s] [-s] [-f] [-e] [-k] [-n] [-o out] [in]",
		Flags:  flgConvert,
	})
	RegisterCommand(Command{
		Name:   "watch",
		Func:   cmdWatch,
		Config: true,
		Usage:  "[-c config] [-t target] [-syntax s] [-s] [-f] [-e] [-k] [-n] -o out in",
		Flags:  flgConvert,
	})
}

func flgConvert(fs *flag.FlagSet) {
	fs.String("c", config.DefaultFile, "configuration file")
	fs.String("t", "", "target output format")
	fs.String("syntax", "", "syntax of the input")
	fs.Bool("s", false, "keep structure (line breaks and control characters)")
	fs.Bool("f", false, "keep formatting (phrasing tags)")
	fs.Bool("e", false, "keep HTML escape sequences")
	fs.Bool("k", false, "keep comments")
	fs.Bool("n", false, "normalize text to Unicode NFC")
	fs.String("o", "", "output file, default is standard output")
	fs.String("l", "", "log level")
}

func fmtVersion() {
	version := config.GetVersion()
	fmt.Printf("%v (%v/%v) running on %v (%v/%v)\n",
		version.Prog, version.Build, version.GoVersion,
		version.Hostname, version.Os, version.Arch)
}

func getConfig(fs *flag.FlagSet) (*config.Config, error) {
	configFile := config.DefaultFile
	if configFlag := fs.Lookup("c"); configFlag != nil {
		configFile = configFlag.Value.String()
	}
	cfg, err := config.ReadFile(configFile)
	if err != nil {
		return nil, err
	}
	fs.Visit(func(flg *flag.Flag) {
		switch flg.Name {
		case "t":
			cfg.Set(config.KeyTarget, flg.Value.String())
		case "syntax":
			cfg.Set(config.KeySyntax, flg.Value.String())
		case "s":
			cfg.Set(config.KeyKeepStructure, flg.Value.String())
		case "f":
			cfg.Set(config.KeyKeepFormatting, flg.Value.String())
		case "e":
			cfg.Set(config.KeyKeepHTMLEscape, flg.Value.String())
		case "k":
			cfg.Set(config.KeyKeepComments, flg.Value.String())
		case "n":
			cfg.Set(config.KeyNormalizeUnicode, flg.Value.String())
		case "l":
			cfg.Set(config.KeyLogLevel, flg.Value.String())
		}
	})
	return cfg, nil
}

// codeForError maps an error of a command to an exit code. Unknown syntaxes and
// targets are usage errors, everything else is a processing error.
func codeForError(err error) int {
	if errors.Is(err, parser.ErrUnknownSyntax) || errors.Is(err, writer.ErrUnknownWriter) {
		return exitUsage
	}
	return exitProcess
}

func executeCommand(name string, args ...string) int {
	command, ok := Get(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", name)
		return exitUsage
	}
	fs := command.GetFlags()
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: unable to parse flags: %v %v\n", name, args, err)
		return exitUsage
	}
	cfg := config.New()
	if command.Config {
		var err error
		if cfg, err = getConfig(fs); err != nil {
			fmt.Fprintf(os.Stderr, "%s: unable to read configuration: %v\n", name, err)
			return exitProcess
		}
	}
	log := logger.New(logger.NewLogWriterAdapter(os.Stderr), "").SetLevel(cfg.LogLevel())
	log.Debug().Str("command", name).Msg("Execute")

	exitCode, err := command.Func(fs, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
	}
	return exitCode
}

// Main is the real entrypoint of the htmlmin command.
func Main(progName, buildVersion string) {
	config.SetupVersion(progName, buildVersion)
	var exitCode int
	if len(os.Args) <= 1 {
		exitCode = executeCommand("help")
	} else {
		exitCode = executeCommand(os.Args[1], os.Args[2:]...)
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
