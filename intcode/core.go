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

// result tells the driver what to do after an instruction has executed.
type result int

const (
	advance result = iota // move IP past the instruction
	jumped                // IP already set by the instruction
	yield                 // input starved, IP unchanged
	halt
)

func (i *Instance) fault(kind FaultKind, ins Instruction, n int, addr Cell) *Fault {
	return &Fault{
		Kind:    kind,
		Opcode:  i.mem.At(Cell(i.ip)),
		IP:      i.ip,
		Address: addr,
		Mode:    ins.Modes[n-1],
		Operand: n,
	}
}

// load returns the value of operand n (1-based) of the instruction at IP.
func (i *Instance) load(ins Instruction, n int) (Cell, error) {
	raw := i.mem.At(Cell(i.ip + n))
	var addr Cell
	switch ins.Modes[n-1] {
	case Immediate:
		return raw, nil
	case Position:
		addr = raw
	case Relative:
		addr = raw + i.rb
	default:
		return 0, i.fault(MalformedProgram, ins, n, 0)
	}
	if addr < 0 {
		return 0, i.fault(ReadOutOfRange, ins, n, addr)
	}
	return i.mem.At(addr), nil
}

// store writes v to the location designated by operand n of the instruction
// at IP.
func (i *Instance) store(ins Instruction, n int, v Cell) error {
	raw := i.mem.At(Cell(i.ip + n))
	var addr Cell
	switch ins.Modes[n-1] {
	case Immediate:
		return i.fault(InvalidWriteMode, ins, n, raw)
	case Position:
		addr = raw
	case Relative:
		addr = raw + i.rb
	default:
		return i.fault(MalformedProgram, ins, n, 0)
	}
	if addr < 0 || addr >= Cell(i.maxMem) {
		return i.fault(WriteOutOfRange, ins, n, addr)
	}
	i.mem.Set(addr, v)
	return nil
}

func bool2Cell(b bool) Cell {
	if b {
		return 1
	}
	return 0
}

// binop executes the three operand instructions: dst = f(a, b).
func (i *Instance) binop(ins Instruction, f func(a, b Cell) Cell) (result, error) {
	a, err := i.load(ins, 1)
	if err != nil {
		return 0, err
	}
	b, err := i.load(ins, 2)
	if err != nil {
		return 0, err
	}
	if err = i.store(ins, 3, f(a, b)); err != nil {
		return 0, err
	}
	return advance, nil
}

// jump executes jt and jf.
func (i *Instance) jump(ins Instruction, when bool) (result, error) {
	c, err := i.load(ins, 1)
	if err != nil {
		return 0, err
	}
	if (c != 0) != when {
		return advance, nil
	}
	target, err := i.load(ins, 2)
	if err != nil {
		return 0, err
	}
	if target < 0 {
		// IP must always address a valid cell.
		return 0, i.fault(ReadOutOfRange, ins, 2, target)
	}
	i.ip = int(target)
	return jumped, nil
}

func add(a, b Cell) Cell  { return a + b }
func mul(a, b Cell) Cell  { return a * b }
func less(a, b Cell) Cell { return bool2Cell(a < b) }
func eq(a, b Cell) Cell   { return bool2Cell(a == b) }

// exec executes a single decoded instruction. Operands are resolved at the
// time they are used.
func (i *Instance) exec(ins Instruction) (result, error) {
	switch ins.Op {
	case OpAdd:
		return i.binop(ins, add)
	case OpMul:
		return i.binop(ins, mul)
	case OpIn:
		if i.inPos >= len(i.input) {
			return yield, nil
		}
		if err := i.store(ins, 1, i.input[i.inPos]); err != nil {
			return 0, err
		}
		i.inPos++
		return advance, nil
	case OpOut:
		v, err := i.load(ins, 1)
		if err != nil {
			return 0, err
		}
		i.output = append(i.output, v)
		return advance, nil
	case OpJt:
		return i.jump(ins, true)
	case OpJf:
		return i.jump(ins, false)
	case OpLt:
		return i.binop(ins, less)
	case OpEq:
		return i.binop(ins, eq)
	case OpArb:
		v, err := i.load(ins, 1)
		if err != nil {
			return 0, err
		}
		i.rb += v
		return advance, nil
	case OpHalt:
		return halt, nil
	}
	return 0, &Fault{Kind: MalformedProgram, Opcode: i.mem.At(Cell(i.ip)), IP: i.ip}
}
