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

// Package sched drives cooperating Intcode machines.
//
// A RoundRobin runs a fixed list of units in rotation: each unit runs until it
// suspends (needs input) or halts, then a forwarding step hands its new output
// over to other units. The rotation goes on until every unit has halted.
package sched

import (
	"context"
	"log/slog"

	"github.com/db47h/intcode/intcode"
	"github.com/pkg/errors"
)

// ErrDeadlock is returned by RoundRobin.Run when a full rotation completes
// without any unit halting or handing over a value while some units are still
// waiting for input.
var ErrDeadlock = errors.New("deadlock: all running units are waiting for input")

// Runner is a unit that runs until it suspends. *intcode.Instance implements
// Runner.
type Runner interface {
	Run() (intcode.State, error)
}

// ForwardFunc is called after unit n returned from Run. It returns the number
// of values it handed over to other units.
type ForwardFunc func(n int) (int, error)

// RoundRobin runs units in rotation until all of them halt.
type RoundRobin struct {
	Units   []Runner
	Forward ForwardFunc
	Logger  *slog.Logger // optional

	rotations int
}

// Rotations returns the number of complete rotations of the last call to Run.
func (rr *RoundRobin) Rotations() int {
	return rr.rotations
}

// Run runs the units in order, starting with the first one, until all of them
// have halted. If a unit faults, Run returns its error wrapped with the unit
// index. The context is checked before each unit is run; cancelling it makes
// Run return the context error, leaving units in their current state.
func (rr *RoundRobin) Run(ctx context.Context) error {
	halted := make([]bool, len(rr.Units))
	live := len(rr.Units)
	rr.rotations = 0
	for live > 0 {
		progress := false
		for n, u := range rr.Units {
			if halted[n] {
				continue
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			st, err := u.Run()
			if err != nil {
				return errors.Wrapf(err, "unit %d", n)
			}
			if rr.Logger != nil {
				rr.Logger.Debug("unit suspended", "unit", n, "state", st.String())
			}
			if st == intcode.Halted {
				halted[n] = true
				live--
				progress = true
			}
			if rr.Forward != nil {
				c, err := rr.Forward(n)
				if err != nil {
					return errors.Wrapf(err, "forward from unit %d", n)
				}
				if c > 0 {
					progress = true
				}
			}
		}
		rr.rotations++
		if live > 0 && !progress {
			return ErrDeadlock
		}
	}
	return nil
}

// Ring returns a RoundRobin over the given machines where any new output of
// machine n is appended to the input of machine n+1, and the output of the
// last machine goes to the first one.
func Ring(vms ...*intcode.Instance) *RoundRobin {
	units := make([]Runner, len(vms))
	seen := make([]int, len(vms))
	for n, vm := range vms {
		units[n] = vm
	}
	return &RoundRobin{
		Units: units,
		Forward: func(n int) (int, error) {
			out := vms[n].OutputSince(seen[n])
			seen[n] += len(out)
			vms[(n+1)%len(vms)].AppendInput(out...)
			return len(out), nil
		},
	}
}
