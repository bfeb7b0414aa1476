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

// Package ascii provides helpers for Intcode programs that talk in ASCII:
// they read text lines one character per input value and print characters one
// per output value, with the occasional large number thrown in.
package ascii

import (
	"io"
	"strconv"
	"strings"

	"github.com/db47h/intcode/intcode"
	"github.com/db47h/intcode/internal/iox"
)

// MaxChar is the largest value rendered as a character.
const MaxChar = 127

// Encode returns line as a sequence of input values terminated with '\n'. A
// missing line terminator is added.
func Encode(line string) []intcode.Cell {
	v := make([]intcode.Cell, 0, len(line)+1)
	for i := 0; i < len(line); i++ {
		v = append(v, intcode.Cell(line[i]))
	}
	if len(line) == 0 || line[len(line)-1] != '\n' {
		v = append(v, '\n')
	}
	return v
}

// EncodeLines encodes every line in order.
func EncodeLines(lines ...string) []intcode.Cell {
	var v []intcode.Cell
	for _, l := range lines {
		v = append(v, Encode(l)...)
	}
	return v
}

// Decode returns the text of the longest prefix of output made of values in
// the range 0..MaxChar, and the remaining values.
func Decode(output []intcode.Cell) (string, []intcode.Cell) {
	var sb strings.Builder
	for n, c := range output {
		if c < 0 || c > MaxChar {
			return sb.String(), output[n:]
		}
		sb.WriteByte(byte(c))
	}
	return sb.String(), nil
}

// Render writes output to w. Values in the range 0..MaxChar are written as
// characters; any other value is written in decimal on a line of its own.
func Render(w io.Writer, output []intcode.Cell) error {
	ew := iox.NewErrWriter(w)
	col := 0
	for len(output) > 0 {
		var text string
		text, output = Decode(output)
		if text != "" {
			ew.WriteString(text)
			if i := strings.LastIndexByte(text, '\n'); i >= 0 {
				col = len(text) - i - 1
			} else {
				col += len(text)
			}
		}
		if len(output) == 0 {
			break
		}
		if col > 0 {
			ew.WriteString("\n")
		}
		ew.WriteString(strconv.FormatInt(int64(output[0]), 10) + "\n")
		output = output[1:]
		col = 0
		if ew.Err != nil {
			break
		}
	}
	return ew.Err
}
