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
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"zettelstore.de/htmlmin/config"
	"zettelstore.de/htmlmin/logger"
)

// ---------- Subcommand: watch ----------------------------------------------

var errWatchUsage = errors.New("watch needs an input file and an output file")

func cmdWatch(fs *flag.FlagSet, cfg *config.Config, log *logger.Logger) (int, error) {
	inName, outName := fs.Arg(0), fs.Lookup("o").Value.String()
	if inName == "" || inName == "-" || outName == "" || outName == "-" {
		return exitUsage, errWatchUsage
	}
	absIn, err := filepath.Abs(inName)
	if err != nil {
		return exitProcess, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return exitProcess, err
	}
	defer watcher.Close()
	// Editors often replace a file instead of writing it, so the directory
	// is watched.
	if err = watcher.Add(filepath.Dir(absIn)); err != nil {
		return exitProcess, err
	}

	syntax := syntaxFor(cfg, inName)
	run := func() {
		src, errRun := os.ReadFile(absIn)
		if errRun == nil {
			errRun = convertTo(outName, src, syntax, cfg, log)
		}
		if errRun != nil {
			log.Error().Err(errRun).Str("file", inName).Msg("Unable to convert")
			return
		}
		log.Info().Str("file", inName).Str("output", outName).Msg("Converted")
	}
	run()
	log.Mandatory().Str("file", inName).Str("output", outName).Msg("Watching, press Ctrl-C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	watchFile(ctx, log, watcher, absIn, run)
	return exitOK, nil
}

// watchFile calls run every time the named file is written or created,
// until the context is done or the watcher is closed.
func watchFile(ctx context.Context, log *logger.Logger, watcher *fsnotify.Watcher, name string, run func()) {
	name = filepath.Clean(name)
	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("Stop watching")
			return
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Error().Err(err).Msg("Watch error")
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			log.Trace().Str("name", ev.Name).Str("op", ev.Op.String()).Msg("file event")
			if filepath.Clean(ev.Name) != name {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				log.Sense().Str("op", ev.Op.String()).Msg("Input changed")
				run()
			}
		}
	}
}
