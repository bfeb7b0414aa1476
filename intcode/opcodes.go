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
	"strconv"
	"strings"
)

// Cell is the raw type stored in a memory location.
type Cell int64

// Opcode selects an operation. It is the value of the two least significant
// decimal digits of an instruction word.
type Opcode int

// Intcode operations.
const (
	OpAdd  Opcode = 1  // add a b dst: dst = a + b
	OpMul  Opcode = 2  // mul a b dst: dst = a * b
	OpIn   Opcode = 3  // in dst: dst = next input value
	OpOut  Opcode = 4  // out a: append a to the output log
	OpJt   Opcode = 5  // jt cond target: jump if cond != 0
	OpJf   Opcode = 6  // jf cond target: jump if cond == 0
	OpLt   Opcode = 7  // lt a b dst: dst = a < b
	OpEq   Opcode = 8  // eq a b dst: dst = a == b
	OpArb  Opcode = 9  // arb a: relative base += a
	OpHalt Opcode = 99 // hlt
)

var opcodes = [OpHalt + 1]struct {
	name string
	args int
}{
	OpAdd:  {"add", 3},
	OpMul:  {"mul", 3},
	OpIn:   {"in", 1},
	OpOut:  {"out", 1},
	OpJt:   {"jt", 2},
	OpJf:   {"jf", 2},
	OpLt:   {"lt", 3},
	OpEq:   {"eq", 3},
	OpArb:  {"arb", 1},
	OpHalt: {"hlt", 0},
}

var opcodeIndex = make(map[string]Opcode)

func init() {
	for op, v := range opcodes {
		if v.name != "" {
			opcodeIndex[v.name] = Opcode(op)
		}
	}
}

// Valid reports whether op is a known operation.
func (op Opcode) Valid() bool {
	return op > 0 && int(op) < len(opcodes) && opcodes[op].name != ""
}

// Args returns the number of operands taken by op, or 0 for unknown opcodes.
func (op Opcode) Args() int {
	if !op.Valid() {
		return 0
	}
	return opcodes[op].args
}

func (op Opcode) String() string {
	if !op.Valid() {
		return "op(" + strconv.Itoa(int(op)) + ")"
	}
	return opcodes[op].name
}

// LookupOpcode returns the opcode for the given mnemonic.
func LookupOpcode(name string) (Opcode, bool) {
	op, ok := opcodeIndex[name]
	return op, ok
}

// Mode is an operand addressing mode.
type Mode int

// Addressing modes.
const (
	Position  Mode = iota // operand is the address of the value
	Immediate             // operand is the value
	Relative              // operand plus relative base is the address of the value
)

// Valid reports whether m is a known addressing mode.
func (m Mode) Valid() bool {
	return m >= Position && m <= Relative
}

func (m Mode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// Instruction is a decoded instruction word.
type Instruction struct {
	Op    Opcode
	Modes [3]Mode // one per operand, in operand order. Unused entries are Position.
}

// Len returns the instruction length in cells, including the opcode.
func (ins Instruction) Len() int {
	return 1 + ins.Op.Args()
}

func (ins Instruction) String() string {
	var b strings.Builder
	b.WriteString(ins.Op.String())
	for n := 0; n < ins.Op.Args(); n++ {
		if n == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteByte(',')
		}
		b.WriteString(ins.Modes[n].String()[:3])
	}
	return b.String()
}

// Encode returns the instruction word for ins.
func (ins Instruction) Encode() Cell {
	w := Cell(ins.Op)
	f := Cell(100)
	for n := 0; n < ins.Op.Args(); n++ {
		w += Cell(ins.Modes[n]) * f
		f *= 10
	}
	return w
}

// Decode decodes an instruction word. Mode digits beyond the operand count of
// the operation are ignored.
//
// If the opcode or one of the used mode digits is unknown, the returned error
// is a *Fault of kind MalformedProgram with IP set to -1.
func Decode(word Cell) (Instruction, error) {
	var ins Instruction
	if word < 0 {
		return ins, &Fault{Kind: MalformedProgram, Opcode: word, IP: -1}
	}
	ins.Op = Opcode(word % 100)
	if !ins.Op.Valid() {
		return ins, &Fault{Kind: MalformedProgram, Opcode: word, IP: -1}
	}
	m := word / 100
	for n := 0; n < ins.Op.Args(); n++ {
		mode := Mode(m % 10)
		if !mode.Valid() {
			return ins, &Fault{Kind: MalformedProgram, Opcode: word, IP: -1, Mode: mode, Operand: n + 1}
		}
		ins.Modes[n] = mode
		m /= 10
	}
	return ins, nil
}
