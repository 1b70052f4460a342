//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of Htmlmin.
//
// Htmlmin is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package logger_test

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"zettelstore.de/htmlmin/logger"
)

func TestParseLevel(t *testing.T) {
	testcases := []struct {
		text string
		exp  logger.Level
	}{
		{"tra", logger.TraceLevel},
		{"deb", logger.DebugLevel},
		{"info", logger.InfoLevel},
		{"warn", logger.WarnLevel},
		{"err", logger.ErrorLevel},
		{"fata", logger.FatalLevel},
		{"pan", logger.PanicLevel},
		{"manda", logger.MandatoryLevel},
		{"dis", logger.NeverLevel},
		{"d", logger.Level(0)},
	}
	for i, tc := range testcases {
		got := logger.ParseLevel(tc.text)
		if got != tc.exp {
			t.Errorf("%d: ParseLevel(%q) == %q, but got %q", i, tc.text, tc.exp, got)
		}
	}
}

func TestAdapterOutput(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.NewLogWriterAdapter(&buf), "OPT").SetLevel(logger.DebugLevel)
	log.Trace().Msg("hidden")
	log.Debug().Int("removed", 3).Bool("top", true).Str("pass", "dce").Msg("Done")
	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("trace message written at debug level: %q", got)
	}
	const exp = "DEBUG OPT    Done, removed=3, top=true, pass=dce\n"
	if !strings.HasSuffix(got, exp) {
		t.Errorf("expected suffix %q, but got %q", exp, got)
	}
}

func TestAdapterFormat(t *testing.T) {
	var buf bytes.Buffer
	lwa := logger.NewLogWriterAdapter(&buf)
	ts := time.Date(2024, 1, 2, 3, 4, 5, 67*int(time.Millisecond), time.UTC)
	testcases := []struct {
		level   logger.Level
		prefix  string
		details string
		exp     string
	}{
		{logger.WarnLevel, "HTML", ", tag=p", "03:04:05.067 WARN  HTML msg, tag=p\n"},
		{logger.ErrorLevel, "", "", "03:04:05.067 ERROR msg\n"},
		{logger.MandatoryLevel, "", ", file=a", "03:04:05.067 >>>>> msg, file=a\n"},
	}
	for i, tc := range testcases {
		buf.Reset()
		if err := lwa.WriteMessage(tc.level, ts, tc.prefix, "msg", []byte(tc.details)); err != nil {
			t.Fatal(err)
		}
		if got := buf.String(); got != tc.exp {
			t.Errorf("%d: expected %q, but got %q", i, tc.exp, got)
		}
	}
}

func TestChildContext(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.NewLogWriterAdapter(&buf), "")
	child := log.Clone().Str("file", "a.html").Child()
	child.Info().Msg("Read")
	if got := buf.String(); !strings.HasSuffix(got, "INFO  Read, file=a.html\n") {
		t.Errorf("child context missing: %q", got)
	}
	log.SetLevel(logger.ErrorLevel)
	buf.Reset()
	child.Info().Msg("Read")
	if got := buf.String(); got != "" {
		t.Errorf("child must follow level of parent, but got %q", got)
	}
}

func TestNilLogger(t *testing.T) {
	var log *logger.Logger
	log.Error().Err(fmt.Errorf("ignored")).Msg("no panic")
	if lvl := log.Level(); lvl != logger.NeverLevel {
		t.Errorf("nil logger must have level %v, but got %v", logger.NeverLevel, lvl)
	}
}

func BenchmarkDisabled(b *testing.B) {
	log := logger.New(&stderrLogWriter{}, "").SetLevel(logger.NeverLevel)
	for n := 0; n < b.N; n++ {
		log.Info().Str("key", "val").Msg("Benchmark")
	}
}

type stderrLogWriter struct{}

func (*stderrLogWriter) WriteMessage(level logger.Level, ts time.Time, prefix, msg string, details []byte) error {
	fmt.Fprintf(os.Stderr, "%v %v %v %v %v\n", level.Format(), ts, prefix, msg, string(details))
	return nil
}

type testLogWriter struct{}

func (*testLogWriter) WriteMessage(logger.Level, time.Time, string, string, []byte) error {
	return nil
}

func BenchmarkStrMessage(b *testing.B) {
	log := logger.New(&testLogWriter{}, "")
	for n := 0; n < b.N; n++ {
		log.Info().Str("key", "val").Msg("Benchmark")
	}
}

func BenchmarkCloneStrMessage(b *testing.B) {
	log := logger.New(&testLogWriter{}, "").Clone().Str("sss", "ttt").Child()
	for n := 0; n < b.N; n++ {
		log.Info().Msg("123456789")
	}
}
