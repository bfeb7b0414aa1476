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

// Package amp implements amplifier chains of Intcode machines.
//
// Every amplifier runs a fork of the same program. It first reads its phase
// setting, then an input signal, and outputs an amplified signal. In series
// mode, the signal flows once through the chain, starting from 0. In feedback
// mode, the output of the last amplifier loops back into the first one until
// all amplifiers halt.
package amp

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/db47h/intcode/intcode"
	"github.com/db47h/intcode/sched"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Chain runs the amplifiers in series, one per phase setting, and returns the
// final output signal. Each amplifier is a fork of prog.
func Chain(prog *intcode.Instance, phases []intcode.Cell) (intcode.Cell, error) {
	var signal intcode.Cell
	for n, p := range phases {
		a := prog.Fork()
		a.AppendInput(p, signal)
		st, err := a.Run()
		if err != nil {
			return 0, errors.Wrapf(err, "amplifier %d", n)
		}
		out, ok := a.LastOutput()
		if !ok {
			return 0, errors.Errorf("amplifier %d: no output (%v)", n, st)
		}
		signal = out
	}
	return signal, nil
}

// Feedback runs the amplifiers in a feedback loop until all of them halt and
// returns the last signal output by the last amplifier.
func Feedback(ctx context.Context, prog *intcode.Instance, phases []intcode.Cell) (intcode.Cell, error) {
	if len(phases) == 0 {
		return 0, nil
	}
	amps := make([]*intcode.Instance, len(phases))
	for n, p := range phases {
		amps[n] = prog.Fork()
		amps[n].AppendInput(p)
	}
	amps[0].AppendInput(0)
	if err := sched.Ring(amps...).Run(ctx); err != nil {
		return 0, err
	}
	out, ok := amps[len(amps)-1].LastOutput()
	if !ok {
		return 0, errors.Errorf("amplifier %d: no output", len(amps)-1)
	}
	return out, nil
}

// Result is the outcome of a phase setting search.
type Result struct {
	Signal intcode.Cell
	Phases []intcode.Cell
}

// SearchAll evaluates every permutation of phases, concurrently, and returns
// the results in Permutations order. Any error aborts the search.
func SearchAll(ctx context.Context, prog *intcode.Instance, phases []intcode.Cell, feedback bool, log *slog.Logger) ([]Result, error) {
	perms := Permutations(phases)
	res := make([]Result, len(perms))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for n, p := range perms {
		g.Go(func() error {
			var (
				s   intcode.Cell
				err error
			)
			if feedback {
				s, err = Feedback(ctx, prog, p)
			} else {
				s, err = Chain(prog, p)
			}
			if err != nil {
				return errors.Wrapf(err, "phases %v", p)
			}
			if log != nil {
				log.Debug("amplifiers done", "phases", p, "signal", s)
			}
			res[n] = Result{Signal: s, Phases: p}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// Search tries every permutation of phases and returns the one yielding the
// highest signal. When several of them produce the same signal, the first one
// in Permutations order wins.
func Search(ctx context.Context, prog *intcode.Instance, phases []intcode.Cell, feedback bool, log *slog.Logger) (Result, error) {
	res, err := SearchAll(ctx, prog, phases, feedback, log)
	if err != nil {
		return Result{}, err
	}
	return Best(res), nil
}

// Best returns the result with the highest signal, the first one on ties.
func Best(res []Result) Result {
	var best Result
	for n, r := range res {
		if n == 0 || r.Signal > best.Signal {
			best = r
		}
	}
	return best
}

// Permutations returns all permutations of values, generated with Heap's
// algorithm. The first permutation is values itself. values is not modified.
func Permutations[T any](values []T) [][]T {
	a := append([]T(nil), values...)
	res := [][]T{append([]T(nil), a...)}
	c := make([]int, len(a))
	for i := 1; i < len(a); {
		if c[i] < i {
			if i%2 == 0 {
				a[0], a[i] = a[i], a[0]
			} else {
				a[c[i]], a[i] = a[i], a[c[i]]
			}
			res = append(res, append([]T(nil), a...))
			c[i]++
			i = 1
		} else {
			c[i] = 0
			i++
		}
	}
	return res
}
