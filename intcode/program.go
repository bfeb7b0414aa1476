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

package intcode

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse parses program text: comma separated base 10 signed integers.
// Surrounding white space, such as a trailing newline, is ignored.
func Parse(text string) ([]Cell, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("empty program")
	}
	fields := strings.Split(text, ",")
	prog := make([]Cell, len(fields))
	for k, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "field %d", k)
		}
		prog[k] = Cell(v)
	}
	return prog, nil
}

// Format returns the program text for the given cells.
func Format(mem []Cell) string {
	var b strings.Builder
	for k, v := range mem {
		if k > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}
	return b.String()
}

// Load loads a program from file fileName.
func Load(fileName string) ([]Cell, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	prog, err := Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "Load %v", fileName)
	}
	return prog, nil
}

// Save saves the given cells as program text to file fileName. The file is
// removed if writing fails.
func Save(fileName string, mem []Cell) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	w := bufio.NewWriter(f)
	defer func() {
		if ferr := w.Flush(); err == nil && ferr != nil {
			err = errors.Wrap(ferr, "write failed")
		}
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "close failed")
		}
		// delete file on error
		if err != nil {
			os.Remove(fileName)
		}
	}()
	if _, err = w.WriteString(Format(mem)); err != nil {
		return errors.Wrap(err, "write failed")
	}
	if err = w.WriteByte('\n'); err != nil {
		return errors.Wrap(err, "write failed")
	}
	return nil
}
