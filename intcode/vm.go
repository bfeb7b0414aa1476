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
	"io"
	"log/slog"
	"strconv"

	"github.com/db47h/intcode/internal/iox"
	"github.com/pkg/errors"
)

// Instance represents an Intcode VM instance.
type Instance struct {
	mem      Memory
	ip       int
	rb       Cell
	input    []Cell
	inPos    int
	output   []Cell
	state    State
	err      error
	insCount int64
	maxMem   int
	log      *slog.Logger
}

// DefaultMaxMemory is the default memory limit of an Instance, in cells.
const DefaultMaxMemory = 1 << 24

// Option interface
type Option func(*Instance) error

// Input appends the given values to the input queue.
func Input(values ...Cell) Option {
	return func(i *Instance) error { i.AppendInput(values...); return nil }
}

// Logger sets the logger used to trace execution. Instructions are traced at
// debug level. The default is no logging.
func Logger(l *slog.Logger) Option {
	return func(i *Instance) error { i.log = l; return nil }
}

// MemorySize grows memory to at least size cells before execution starts. It
// has no observable effect on programs since unwritten cells read as 0, but
// saves reallocations for programs known to use a large tape. size may not
// exceed the memory limit; see MaxMemory.
func MemorySize(size int) Option {
	return func(i *Instance) error {
		if size < 0 || size > i.maxMem {
			return errors.Errorf("invalid memory size %d (limit %d)", size, i.maxMem)
		}
		i.mem.Grow(size)
		return nil
	}
}

// MaxMemory sets the memory limit in cells. A write at or beyond the limit
// faults with WriteOutOfRange. The default is DefaultMaxMemory. It returns an
// error if the program or a previous MemorySize option already exceeds size.
func MaxMemory(size int) Option {
	return func(i *Instance) error {
		if size <= 0 || size < len(i.mem) {
			return errors.Errorf("invalid memory limit %d (memory size %d)", size, len(i.mem))
		}
		i.maxMem = size
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode Virtual Machine instance running the given
// program. The program is copied: the caller's slice is never modified.
//
// Options will be set by calling SetOptions.
func New(program []Cell, opts ...Option) (*Instance, error) {
	i := &Instance{
		mem:    Memory(program).Clone(),
		maxMem: DefaultMaxMemory,
	}
	if len(i.mem) > i.maxMem {
		i.maxMem = len(i.mem)
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// NewFromString creates a new instance from program text. See Parse.
func NewFromString(text string, opts ...Option) (*Instance, error) {
	prog, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return New(prog, opts...)
}

// Fork returns an independent deep copy of the instance, including memory,
// registers, pending and consumed input, output and execution state. The
// logger, if any, is shared.
func (i *Instance) Fork() *Instance {
	f := *i
	f.mem = i.mem.Clone()
	f.input = append([]Cell(nil), i.input...)
	f.output = append([]Cell(nil), i.output...)
	return &f
}

// AppendInput appends values to the input queue. It may be called at any
// time, typically after Run returned Yielded.
func (i *Instance) AppendInput(values ...Cell) {
	i.input = append(i.input, values...)
}

// InputPending returns the number of input values not yet consumed.
func (i *Instance) InputPending() int {
	return len(i.input) - i.inPos
}

// Output returns a copy of the output log.
func (i *Instance) Output() []Cell {
	return append([]Cell(nil), i.output...)
}

// OutputSince returns a copy of the output log starting at index n. It is
// useful to collect the values produced by the last call to Run.
func (i *Instance) OutputSince(n int) []Cell {
	if n < 0 {
		n = 0
	}
	if n >= len(i.output) {
		return nil
	}
	return append([]Cell(nil), i.output[n:]...)
}

// OutputLen returns the length of the output log.
func (i *Instance) OutputLen() int {
	return len(i.output)
}

// LastOutput returns the last output value, if any.
func (i *Instance) LastOutput() (Cell, bool) {
	if len(i.output) == 0 {
		return 0, false
	}
	return i.output[len(i.output)-1], true
}

// Peek returns the value stored at address addr. Addresses outside memory read
// as 0.
func (i *Instance) Peek(addr Cell) Cell {
	return i.mem.At(addr)
}

// Poke stores v at address addr, growing memory as needed. It is intended for
// patching a program before running it. A negative address, or one beyond the
// memory limit, returns a WriteOutOfRange fault; the instance state is not
// affected.
func (i *Instance) Poke(addr, v Cell) error {
	if addr < 0 || addr >= Cell(i.maxMem) {
		return &Fault{Kind: WriteOutOfRange, Opcode: i.mem.At(Cell(i.ip)), IP: i.ip, Address: addr, Mode: Position}
	}
	i.mem.Set(addr, v)
	return nil
}

// Memory returns a copy of the memory tape.
func (i *Instance) Memory() []Cell {
	return i.mem.Clone()
}

// IP returns the instruction pointer.
func (i *Instance) IP() int {
	return i.ip
}

// RelativeBase returns the relative base register.
func (i *Instance) RelativeBase() Cell {
	return i.rb
}

// State returns the state reported by the last call to Run. A fresh instance
// is in the Running state.
func (i *Instance) State() State {
	return i.state
}

// Err returns the error that faulted the instance, if any.
func (i *Instance) Err() error {
	return i.err
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

func cells(a []Cell) []int64 {
	r := make([]int64, len(a))
	for k, v := range a {
		r[k] = int64(v)
	}
	return r
}

// Dump writes the registers, memory and output log of the instance to the
// specified io.Writer, one item per line.
func (i *Instance) Dump(w io.Writer) error {
	ew := iox.NewErrWriter(w)
	ew.WriteString("state: " + i.state.String())
	ew.WriteString("\nip: " + strconv.Itoa(i.ip))
	ew.WriteString("\nrb: " + strconv.FormatInt(int64(i.rb), 10))
	ew.WriteString("\ninput: ")
	ew.WriteInts(cells(i.input[i.inPos:]), ",")
	ew.WriteString("\noutput: ")
	ew.WriteInts(cells(i.output), ",")
	ew.WriteString("\nmemory: ")
	ew.WriteInts(cells(i.mem), ",")
	return ew.WriteString("\n")
}
