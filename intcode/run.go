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
	"context"
	"log/slog"

	"github.com/pkg/errors"
)

func (i *Instance) traceEnabled() bool {
	return i.log != nil && i.log.Enabled(context.Background(), slog.LevelDebug)
}

func (i *Instance) fail(err error) (State, error) {
	if f, ok := err.(*Fault); ok && f.IP < 0 {
		f.IP = i.ip
	}
	i.state, i.err = Faulted, err
	return i.state, i.err
}

// Run starts or resumes execution of the VM until it halts, needs more input
// or faults.
//
// Run returns Yielded when an input instruction finds no pending input. The
// instruction is left unconsumed and IP still points at it; append input with
// AppendInput and call Run again to resume. Calling Run again without new
// input yields again without any other effect.
//
// Once the VM has Halted, Run returns Halted immediately. Once it has
// Faulted, Run returns Faulted and the same error. In both cases nothing is
// executed. The error for a Faulted state is usually a *Fault, including for
// writes beyond the memory limit set with MaxMemory. Runtime errors that
// escape the limit, such as an allocation size overflow under a raised limit,
// are wrapped with the IP at which they occurred. An allocation that merely
// exhausts the host's memory is fatal to the process and cannot be recovered;
// keep the limit within what the host can allocate.
func (i *Instance) Run() (state State, err error) {
	switch i.state {
	case Halted:
		return Halted, nil
	case Faulted:
		return Faulted, i.err
	}
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				state, err = i.fail(errors.Wrapf(e, "recovered error @ip=%d/%d", i.ip, len(i.mem)))
			default:
				panic(e)
			}
		}
	}()
	i.state = Running
	trace := i.traceEnabled()
	for {
		ins, err := Decode(i.mem.At(Cell(i.ip)))
		if err != nil {
			return i.fail(err)
		}
		if trace {
			i.log.Debug("exec", "ip", i.ip, "ins", ins.String(), "rb", i.rb)
		}
		r, err := i.exec(ins)
		if err != nil {
			return i.fail(err)
		}
		switch r {
		case advance:
			i.ip += ins.Len()
		case jumped:
		case yield:
			if trace {
				i.log.Debug("input starved", "ip", i.ip, "output", len(i.output))
			}
			i.state = Yielded
			return i.state, nil
		case halt:
			i.insCount++
			i.state = Halted
			return i.state, nil
		}
		i.insCount++
	}
}
