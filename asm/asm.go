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

package asm

import (
	"fmt"
	"io"
	"strconv"

	"github.com/db47h/intcode/intcode"
	"github.com/db47h/intcode/internal/iox"
)

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting program and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value that
// will contain up to 10 entries.
func Assemble(name string, r io.Reader) (prog []intcode.Cell, err error) {
	p := newParser()
	prog, err = p.Parse(name, r)
	if err != nil {
		return nil, err
	}
	return prog, nil
}

func operand(ew io.Writer, mode intcode.Mode, v intcode.Cell) {
	switch mode {
	case intcode.Immediate:
		ew.Write([]byte{'#'})
	case intcode.Relative:
		ew.Write([]byte{'~'})
	}
	io.WriteString(ew, strconv.FormatInt(int64(v), 10))
}

// Disassemble writes a disassembly of the cells in the given slice at position
// pc to the specified io.Writer and returns the position of the next
// instruction and any write error.
//
// Words that do not decode to a valid instruction, or that carry mode digits
// the instruction does not use, are written as .dat directives.
func Disassemble(mem []intcode.Cell, pc int, w io.Writer) (next int, err error) {
	ew := iox.NewErrWriter(w)

	word := mem[pc]
	ins, derr := intcode.Decode(word)
	if derr != nil || ins.Encode() != word {
		io.WriteString(ew, ".dat ")
		io.WriteString(ew, strconv.FormatInt(int64(word), 10))
		return pc + 1, ew.Err
	}
	io.WriteString(ew, ins.Op.String())
	pc++
	for n := 0; n < ins.Op.Args(); n++ {
		if n == 0 {
			ew.Write([]byte{' '})
		} else {
			io.WriteString(ew, ", ")
		}
		if pc >= len(mem) {
			io.WriteString(ew, "???")
			continue
		}
		operand(ew, ins.Modes[n], mem[pc])
		pc++
	}
	return pc, ew.Err
}

// DisassembleAll writes a disassembly of all cells in the given slice to
// the specified io.Writer. The base argument specifies the real address of the
// frist cell (mem[0]). It will return any write error.
func DisassembleAll(mem []intcode.Cell, base int, w io.Writer) error {
	ew := iox.NewErrWriter(w)
	for pc := 0; pc < len(mem); {
		fmt.Fprintf(ew, "% 6d\t", base+pc)
		pc, _ = Disassemble(mem, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
