//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of Htmlmin.
//
// Htmlmin is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package logger

import (
	"io"
	"sync"
	"time"
)

// LogWriter writes log messages to their specified destinations.
type LogWriter interface {
	WriteMessage(level Level, ts time.Time, prefix string, msg string, details []byte) error
}

// LogWriterAdapter adapts an io.Writer, typically standard error, to a
// LogWriter.
//
// A message is written as a single line with one call to Write:
//
//	15:04:05.000 LEVEL PREFIX message, key=value
//
// The date is omitted, because a command run rarely spans midnight.
type LogWriterAdapter struct {
	w   io.Writer
	mx  sync.Mutex // protects buf and serializes w.Write
	buf []byte
}

// NewLogWriterAdapter creates a new LogWriter from an io.Writer.
func NewLogWriterAdapter(w io.Writer) *LogWriterAdapter {
	return &LogWriterAdapter{
		w:   w,
		buf: make([]byte, 0, 256),
	}
}

// WriteMessage formats the message and writes it to the io.Writer.
func (lwa *LogWriterAdapter) WriteMessage(level Level, ts time.Time, prefix string, msg string, details []byte) error {
	lwa.mx.Lock()
	defer lwa.mx.Unlock()

	buf := appendClock(lwa.buf[:0], ts)
	buf = append(buf, ' ')
	buf = append(buf, level.Format()...)
	buf = append(buf, ' ')
	if prefix != "" {
		buf = append(buf, prefix...)
		buf = append(buf, ' ')
	}
	buf = append(buf, msg...)
	buf = append(buf, details...)
	buf = append(buf, '\n')
	lwa.buf = buf
	_, err := lwa.w.Write(buf)
	return err
}

func appendClock(buf []byte, ts time.Time) []byte {
	hour, minute, second := ts.Clock()
	buf = appendDigits(buf, hour, 2)
	buf = append(buf, ':')
	buf = appendDigits(buf, minute, 2)
	buf = append(buf, ':')
	buf = appendDigits(buf, second, 2)
	buf = append(buf, '.')
	return appendDigits(buf, ts.Nanosecond()/int(time.Millisecond), 3)
}

// appendDigits appends the lowest wid decimal digits of the non-negative i.
func appendDigits(buf []byte, i, wid int) []byte {
	var b [8]byte
	for bp := wid - 1; bp >= 0; bp-- {
		q := i / 10
		b[bp] = byte('0' + i - q*10)
		i = q
	}
	return append(buf, b[:wid]...)
}
