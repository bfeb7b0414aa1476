// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package iox holds small io helpers shared by the intcode packages.
package iox

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// ErrWriter is a simple wrapper to track io errors. Write will keep returning
// the last error over and over.
type ErrWriter struct {
	w   io.Writer
	Err error
}

func (w *ErrWriter) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

// WriteString writes s and returns the sticky error.
func (w *ErrWriter) WriteString(s string) error {
	io.WriteString(w, s)
	return w.Err
}

// WriteInts writes values as base 10 integers separated by sep.
func (w *ErrWriter) WriteInts(values []int64, sep string) error {
	for k, v := range values {
		if k > 0 {
			io.WriteString(w, sep)
		}
		io.WriteString(w, strconv.FormatInt(v, 10))
	}
	return w.Err
}

// NewErrWriter returns a new ErrWriter. If w is already an *ErrWriter, it is
// returned as is.
func NewErrWriter(w io.Writer) *ErrWriter {
	if ew, ok := w.(*ErrWriter); ok {
		return ew
	}
	return &ErrWriter{w, nil}
}
