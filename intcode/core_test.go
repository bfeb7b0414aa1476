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

package intcode_test

import (
	"math"
	"testing"

	"github.com/db47h/intcode/intcode"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tests = [...]struct {
	name  string
	code  string
	input C
	out   C
	addr  intcode.Cell // memory cell to check
	value intcode.Cell
}{
	{"add", "1,5,6,7,99,20,22,0", nil, nil, 7, 42},
	{"mul", "2,0,4,0,99", nil, nil, 0, 198},
	{"add imm", "1101,100,-1,4,0", nil, nil, 4, 99},
	{"in", "3,0,4,0,99", C{-17}, C{-17}, 0, -17},
	{"out imm", "104,42,99", nil, C{42}, 0, 104},
	{"out pos", "4,3,99,42", nil, C{42}, 3, 42},
	{"out rel", "109,3,204,3,99,0,77", nil, C{77}, 6, 77},
	{"write pos", "1101,2,3,7,99,0,0,0", nil, nil, 7, 5},
	{"write rel", "109,4,21101,2,3,3,99,0", nil, nil, 7, 5},
	{"in rel", "109,10,203,-3,99", C{8}, nil, 7, 8},
	{"arb pos", "9,5,204,0,99,4", nil, C{99}, 0, 9},
	{"arb twice", "109,2,109,3,204,1,99", nil, C{99}, 0, 109},
	{"jt taken", "1105,1,4,99,104,1,99", nil, C{1}, 0, 1105},
	{"jt not taken", "1105,0,4,99,104,1,99", nil, nil, 0, 1105},
	{"jf taken", "1106,0,4,99,104,1,99", nil, C{1}, 0, 1106},
	{"jf not taken", "1106,7,4,99,104,1,99", nil, nil, 0, 1106},
	{"lt", "1107,1,2,5,99,-1", nil, nil, 5, 1},
	{"lt equal", "1107,2,2,5,99,-1", nil, nil, 5, 0},
	{"eq", "1108,-4,-4,5,99,-1", nil, nil, 5, 1},
	{"eq differ", "1108,4,-4,5,99,-1", nil, nil, 5, 0},
	{"eq pos", "3,9,8,9,10,9,4,9,99,-1,8", C{8}, C{1}, 9, 1},
	{"lt pos", "3,9,7,9,10,9,4,9,99,-1,8", C{9}, C{0}, 9, 0},
	{"jump pos", "3,12,6,12,15,1,13,14,13,4,13,99,-1,0,1,9", C{0}, C{0}, 12, 0},
	{"jump imm", "3,3,1105,-1,9,1101,0,0,12,4,12,99,1", C{5}, C{1}, 3, 5},
	{"extra mode digits", "10099", nil, nil, 0, 10099},
}

func TestCore(t *testing.T) {
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			i := setup(t, test.code, intcode.Input(test.input...))
			run(t, i, intcode.Halted)
			assert.Equal(t, test.out, C(i.OutputSince(0)))
			assert.Equal(t, test.value, i.Peek(test.addr))
		})
	}
}

func TestMemoryGrowth(t *testing.T) {
	prog := C{1101, 5, 6, 20, 99}
	i, err := intcode.New(prog)
	require.NoError(t, err)
	run(t, i, intcode.Halted)
	mem := i.Memory()
	require.Len(t, mem, 21)
	assert.Equal(t, prog, C(mem[:5]))
	for k := 5; k < 20; k++ {
		assert.Zero(t, mem[k], "address %d", k)
	}
	assert.Equal(t, intcode.Cell(11), mem[20])
}

func TestReadBeyondEnd(t *testing.T) {
	// reads past the end yield 0 without growing memory
	i := setup(t, "4,1000,204,500,99")
	run(t, i, intcode.Halted)
	assert.Equal(t, C{0, 0}, C(i.Output()))
	assert.Len(t, i.Memory(), 5)
}

func TestFaults(t *testing.T) {
	for _, tc := range []struct {
		name  string
		code  string
		input C
		want  intcode.Fault
	}{
		{"unknown opcode", "42,99", nil,
			intcode.Fault{Kind: intcode.MalformedProgram, Opcode: 42, IP: 0}},
		{"unknown opcode after jump", "1105,1,3,0", nil,
			intcode.Fault{Kind: intcode.MalformedProgram, Opcode: 0, IP: 3}},
		{"negative word", "1101,0,0,0,-1", nil,
			intcode.Fault{Kind: intcode.MalformedProgram, Opcode: -1, IP: 4}},
		{"bad mode", "301,0,0,0,99", nil,
			intcode.Fault{Kind: intcode.MalformedProgram, Opcode: 301, Mode: 3, Operand: 1}},
		{"read pos", "4,-1,99", nil,
			intcode.Fault{Kind: intcode.ReadOutOfRange, Opcode: 4, Address: -1, Mode: intcode.Position, Operand: 1}},
		{"read rel", "109,-5,204,0,99", nil,
			intcode.Fault{Kind: intcode.ReadOutOfRange, Opcode: 204, IP: 2, Address: -5, Mode: intcode.Relative, Operand: 1}},
		{"write pos", "1101,1,1,-3,99", nil,
			intcode.Fault{Kind: intcode.WriteOutOfRange, Opcode: 1101, Address: -3, Mode: intcode.Position, Operand: 3}},
		{"write rel", "109,-1,203,0,99", C{1},
			intcode.Fault{Kind: intcode.WriteOutOfRange, Opcode: 203, IP: 2, Address: -1, Mode: intcode.Relative, Operand: 1}},
		{"write imm", "11101,1,1,3,99", nil,
			intcode.Fault{Kind: intcode.InvalidWriteMode, Opcode: 11101, Address: 3, Mode: intcode.Immediate, Operand: 3}},
		{"jump negative", "1105,1,-7,99", nil,
			intcode.Fault{Kind: intcode.ReadOutOfRange, Opcode: 1105, Address: -7, Mode: intcode.Immediate, Operand: 2}},
		{"write past limit", "1101,1,1,68719476736,99", nil,
			intcode.Fault{Kind: intcode.WriteOutOfRange, Opcode: 1101, Address: 1 << 36, Mode: intcode.Position, Operand: 3}},
		{"write rel past limit", "109,68719476736,21101,1,1,0,99", nil,
			intcode.Fault{Kind: intcode.WriteOutOfRange, Opcode: 21101, IP: 2, Address: 1 << 36, Mode: intcode.Relative, Operand: 3}},
		{"input past limit", "3,16777216,99", C{7},
			intcode.Fault{Kind: intcode.WriteOutOfRange, Opcode: 3, Address: intcode.DefaultMaxMemory, Mode: intcode.Position, Operand: 1}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			i := setup(t, tc.code, intcode.Input(tc.input...))
			st, err := i.Run()
			require.Equal(t, intcode.Faulted, st)
			f, ok := errors.Cause(err).(*intcode.Fault)
			require.True(t, ok, "%+v", err)
			assert.Equal(t, tc.want, *f)
			mem, ip := i.Memory(), i.IP()

			// faults are sticky
			st, err2 := i.Run()
			assert.Equal(t, intcode.Faulted, st)
			assert.Same(t, err, err2)
			assert.Equal(t, mem, i.Memory())
			assert.Equal(t, ip, i.IP())
			assert.Equal(t, err, i.Err())
		})
	}
}

func TestFaultKeepsInput(t *testing.T) {
	i := setup(t, "103,0,99", intcode.Input(5))
	run(t, i, intcode.Faulted)
	assert.Equal(t, 1, i.InputPending())
}

func TestFaultMessage(t *testing.T) {
	i := setup(t, "109,-5,204,0,99")
	_, err := i.Run()
	assert.EqualError(t, err, "read out of range: address -5 (relative mode) @ip=2, opcode 204")

	i = setup(t, "42")
	_, err = i.Run()
	assert.EqualError(t, err, "malformed program: unknown opcode 42 @ip=0, opcode 42")

	i = setup(t, "3001,0,0,0,99")
	_, err = i.Run()
	assert.EqualError(t, err, "malformed program: invalid addressing mode 3 for operand 2 @ip=0, opcode 3001")
}

func TestRecoveredFault(t *testing.T) {
	// with the limit lifted, the allocation size overflows and panics
	i, err := intcode.New(C{1101, 1, 1, 1 << 62, 99}, intcode.MaxMemory(math.MaxInt))
	require.NoError(t, err)
	st, err := i.Run()
	assert.Equal(t, intcode.Faulted, st)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recovered error @ip=0")
	st, err2 := i.Run()
	assert.Equal(t, intcode.Faulted, st)
	assert.Equal(t, err, err2)
}

func TestDecode(t *testing.T) {
	ins, err := intcode.Decode(1002)
	require.NoError(t, err)
	assert.Equal(t, intcode.OpMul, ins.Op)
	assert.Equal(t, [3]intcode.Mode{intcode.Position, intcode.Immediate, intcode.Position}, ins.Modes)
	assert.Equal(t, 4, ins.Len())
	assert.Equal(t, "mul pos,imm,pos", ins.String())

	ins, err = intcode.Decode(21205)
	require.NoError(t, err)
	assert.Equal(t, intcode.OpJt, ins.Op)
	assert.Equal(t, [3]intcode.Mode{intcode.Relative, intcode.Immediate, intcode.Position}, ins.Modes)
	assert.Equal(t, 3, ins.Len())

	ins, err = intcode.Decode(99)
	require.NoError(t, err)
	assert.Equal(t, 1, ins.Len())
	assert.Equal(t, "hlt", ins.String())

	for _, w := range []intcode.Cell{0, 10, 98, 100, -1, 3301} {
		_, err := intcode.Decode(w)
		var f *intcode.Fault
		require.ErrorAs(t, err, &f, "word %d", w)
		assert.Equal(t, intcode.MalformedProgram, f.Kind)
		assert.Equal(t, -1, f.IP)
	}
}

func TestOpcodeNames(t *testing.T) {
	for _, name := range []string{"add", "mul", "in", "out", "jt", "jf", "lt", "eq", "arb", "hlt"} {
		op, ok := intcode.LookupOpcode(name)
		require.True(t, ok, name)
		assert.Equal(t, name, op.String())
	}
	_, ok := intcode.LookupOpcode("nop")
	assert.False(t, ok)
	assert.Equal(t, "op(42)", intcode.Opcode(42).String())
	assert.Equal(t, "mode(7)", intcode.Mode(7).String())
	assert.Equal(t, "faulted", intcode.Faulted.String())
}
