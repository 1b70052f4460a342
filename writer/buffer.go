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

import (
	"io"
	"unicode/utf8"
)

// BufWriter is a specialized buffered writer for writing documents.
type BufWriter struct {
	w      io.Writer // The io.Writer to write to
	err    error     // Collect error
	length int       // Sum length
	buf    []byte    // Buffer to collect bytes
}

// NewBufWriter creates a new BufWriter
func NewBufWriter(w io.Writer) *BufWriter {
	return &BufWriter{w: w, buf: make([]byte, 0, 4096)}
}

const flushSize = 2048

// Write writes the contents of p into the buffer.
func (w *BufWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	w.buf = append(w.buf, p...)
	return w.written(len(p))
}

// WriteString writes the contents of s into the buffer.
func (w *BufWriter) WriteString(s string) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	w.buf = append(w.buf, s...)
	return w.written(len(s))
}

// WriteRune writes the UTF-8 encoding of r into the buffer.
func (w *BufWriter) WriteRune(r rune) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	l := len(w.buf)
	w.buf = utf8.AppendRune(w.buf, r)
	return w.written(len(w.buf) - l)
}

// written flushes a full buffer and reports n bytes as written, if no error
// occurred.
func (w *BufWriter) written(n int) (int, error) {
	if len(w.buf) > flushSize {
		w.flush()
		if w.err != nil {
			return 0, w.err
		}
	}
	return n, nil
}

// Flush writes any buffered data to the underlying io.Writer. It returns the
// number of bytes written and an error if something went wrong.
func (w *BufWriter) Flush() (int, error) {
	if w.err == nil {
		w.flush()
	}
	return w.length, w.err
}

func (w *BufWriter) flush() {
	length, err := w.w.Write(w.buf)
	w.buf = w.buf[:0]
	w.length += length
	w.err = err
}
