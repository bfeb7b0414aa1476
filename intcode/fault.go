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
	"fmt"
	"strings"
)

// FaultKind classifies a Fault.
type FaultKind int

// Fault kinds. MalformedProgram denotes an invalid program rather than a bad
// memory access.
const (
	MalformedProgram FaultKind = iota + 1
	ReadOutOfRange
	WriteOutOfRange
	InvalidWriteMode
)

func (k FaultKind) String() string {
	switch k {
	case MalformedProgram:
		return "malformed program"
	case ReadOutOfRange:
		return "read out of range"
	case WriteOutOfRange:
		return "write out of range"
	case InvalidWriteMode:
		return "invalid write mode"
	}
	return fmt.Sprintf("FaultKind(%d)", int(k))
}

// Fault is the error returned by Run when execution stops in the Faulted
// state. Once faulted, an Instance returns the same Fault from every
// subsequent call to Run.
type Fault struct {
	Kind    FaultKind
	Opcode  Cell // instruction word at IP
	IP      int
	Address Cell // effective address for out of range faults
	Mode    Mode
	Operand int // 1-based operand index, 0 when not operand related
}

func (f *Fault) Error() string {
	var b strings.Builder
	b.WriteString(f.Kind.String())
	switch f.Kind {
	case MalformedProgram:
		if f.Operand > 0 {
			fmt.Fprintf(&b, ": invalid addressing mode %d for operand %d", int(f.Mode), f.Operand)
		} else {
			fmt.Fprintf(&b, ": unknown opcode %d", f.Opcode)
		}
	case ReadOutOfRange, WriteOutOfRange:
		fmt.Fprintf(&b, ": address %d (%v mode)", f.Address, f.Mode)
	case InvalidWriteMode:
		fmt.Fprintf(&b, ": operand %d in %v mode", f.Operand, f.Mode)
	}
	fmt.Fprintf(&b, " @ip=%d, opcode %d", f.IP, f.Opcode)
	return b.String()
}

// State is the execution state of an Instance as reported by Run.
type State int

// Execution states. Running is only observed while Run is executing.
const (
	Running State = iota
	Yielded
	Halted
	Faulted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Yielded:
		return "yielded"
	case Halted:
		return "halted"
	case Faulted:
		return "faulted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}
