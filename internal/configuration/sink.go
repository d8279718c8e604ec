// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package configuration

import (
	"fmt"
	"io"
)

// Sink receives human-readable diagnostic lines emitted during construction.
type Sink interface {
	Emit(line string)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(line string)

func (f SinkFunc) Emit(line string) { f(line) }

// WriterSink writes each line, newline terminated, to w. Write errors are dropped.
func WriterSink(w io.Writer) Sink {
	return SinkFunc(func(line string) {
		_, _ = fmt.Fprintln(w, line)
	})
}
