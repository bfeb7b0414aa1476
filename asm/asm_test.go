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

package asm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/intcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type C []intcode.Cell

func assemble(t *testing.T, code string) []intcode.Cell {
	t.Helper()
	prog, err := asm.Assemble(t.Name(), strings.NewReader(code))
	require.NoError(t, err)
	return prog
}

func TestAssemble(t *testing.T) {
	for _, tc := range []struct {
		name string
		code string
		want C
	}{
		{"halt", "hlt", C{99}},
		{"modes", "mul 4, #3, 4 .dat 33", C{1002, 4, 3, 4, 33}},
		{"no commas", "add #1 #2 ~3", C{21101, 1, 2, 3}},
		{"relative", "arb #1 out ~-1", C{109, 1, 204, -1}},
		{"jumps", "jt #1, #end jf 0, ~2 :end hlt", C{1105, 1, 6, 2006, 0, 2, 99}},
		{"labels", "in x out x hlt :x .dat 0", C{3, 5, 4, 5, 99, 0}},
		{"forward and back", ":top jt #0, #top jf #0, #done :done hlt", C{1105, 0, 0, 1106, 0, 6, 99}},
		{"literals", ".dat 0x10 .dat -0b11 .dat 'A' .dat '\\n'", C{16, -3, 65, 10}},
		{"org", "hlt .org 4 .dat 7", C{99, 0, 0, 0, 7}},
		{"org backwards", ".dat 1 .dat 2 .org 0 .dat 3", C{3, 2}},
		{"comments", "( a comment ) hlt ( and ( another", C{99}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, C(assemble(t, tc.code)))
		})
	}
}

// check some errors. We're not checking the messages, rather that they point at
// the correct place.
func TestAssemble_errors(t *testing.T) {
	code := `
	nop
	add 1, 2
	out #1
	jt #1, #nowhere
	in #4
	.foo
	.dat 'ab'
	:
	.org -1
`
	_, err := asm.Assemble("test_errors", strings.NewReader(code))
	require.Error(t, err)
	errs, ok := err.(asm.ErrAsm)
	require.True(t, ok)

	var lines []int
	for _, e := range errs {
		lines = append(lines, e.Pos.Line)
	}
	assert.Equal(t, []int{2, 4, 6, 7, 8, 9, 10, 5}, lines)
	assert.Contains(t, err.Error(), "test_errors:5:")
	assert.Contains(t, err.Error(), "Undefined label nowhere")
}

func TestAssemble_maxErrors(t *testing.T) {
	code := strings.Repeat("nop ", 20)
	_, err := asm.Assemble("many", strings.NewReader(code))
	require.Error(t, err)
	assert.Len(t, err.(asm.ErrAsm), 10)
}

func TestAssemble_run(t *testing.T) {
	// sum of the inputs until 0 is read
	code := `
	:loop	in   n
		jf   n, #done
		add  sum, n, sum
		jt   #1, #loop
	:done	out  sum
		hlt
	:n	.dat 0
	:sum	.dat 0
	`
	i, err := intcode.New(assemble(t, code), intcode.Input(1, 2, 3, 4, 0))
	require.NoError(t, err)
	st, err := i.Run()
	require.NoError(t, err)
	assert.Equal(t, intcode.Halted, st)
	assert.Equal(t, C{10}, C(i.Output()))
}

func TestDisassemble(t *testing.T) {
	var b bytes.Buffer
	prog := C{1002, 4, 3, 4, 33, 109, -1, 204, 1, 10099, 42, 1}
	next, err := asm.Disassemble(prog, 0, &b)
	require.NoError(t, err)
	assert.Equal(t, 4, next)
	assert.Equal(t, "mul 4, #3, 4", b.String())

	b.Reset()
	require.NoError(t, asm.DisassembleAll(prog, 100, &b))
	assert.Equal(t, `   100	mul 4, #3, 4
   104	.dat 33
   105	arb #-1
   107	out ~1
   109	.dat 10099
   110	.dat 42
   111	add ???, ???, ???
`, b.String())
}

func TestRoundTrip(t *testing.T) {
	quine := C{109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99}
	var b bytes.Buffer
	for pc := 0; pc < len(quine); {
		var err error
		pc, err = asm.Disassemble(quine, pc, &b)
		require.NoError(t, err)
		b.WriteByte('\n')
	}
	prog, err := asm.Assemble("quine", &b)
	require.NoError(t, err)
	assert.Equal(t, quine, C(prog))
}
