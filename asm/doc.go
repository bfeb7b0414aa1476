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

// Package asm provides utility functions to assemble and disassemble Intcode
// programs.
//
// Supported assembler mnemonics:
//
//	a, b and cond are read operands, dst is a write operand.
//
//	opcode	asm	operands		description
//	------	---	--------		--------------------------------------------
//	1	add	a, b, dst		dst = a + b
//	2	mul	a, b, dst		dst = a * b
//	3	in	dst			dst = next input value
//	4	out	a			append a to output
//	5	jt	cond, target		jump to target if cond != 0
//	6	jf	cond, target		jump to target if cond == 0
//	7	lt	a, b, dst		dst = 1 if a < b, else 0
//	8	eq	a, b, dst		dst = 1 if a == b, else 0
//	9	arb	a			add a to the relative base
//	99	hlt				halt
//
// Operands:
//
// Each instruction is followed by exactly as many operands as it takes,
// optionally separated by commas. The addressing mode of an operand is given
// by its prefix:
//
//	42	position mode: the value at address 42
//	#42	immediate mode: the value 42
//	~42	relative mode: the value at address 42 + relative base
//
// Immediate mode is rejected for write operands.
//
// Literals:
//
// Numbers are parsed with strconv.ParseInt with base 0, so hex (0x10), octal
// (0o17 or 017) and binary (0b101) literals are accepted along with decimals.
// A quoted character like 'a' or '\n' stands for its code point.
//
// Labels:
//
// A word starting with a colon defines a label at the current address:
//
//	:loop	in x
//
// Any other word used where a value is expected is a label reference and
// assembles as the address of the label. With the # prefix, it is the
// address itself (e.g. a jump target); without, it is the value stored at
// that address (e.g. a variable).
//
//	:loop	in x
//		jt x, #loop
//		hlt
//	:x	.dat 0
//
// Directives:
//
//	.dat v	emit the value v (a literal or label) as is.
//	.org n	set the compilation address to n.
//
// Comments:
//
// Comments are placed between parentheses, i.e. '(' and ')'. The body of the
// comment must be separated from the enclosing parentheses by a space. That is:
//
//	( this is a valid comment )
//	(this is not)
package asm
