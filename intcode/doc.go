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

// Package intcode implements an Intcode virtual machine.
//
// An Intcode program is a sequence of signed integers that is both code and
// data. The machine decodes the word at the instruction pointer into an
// operation and one addressing mode per operand, executes it and moves on,
// until it reaches a halt instruction, runs out of input or faults.
//
// Memory grows on demand: reading past the end of the tape yields 0, writing
// past the end extends it with zeros up to and including the target address.
// A negative effective address is always a fault.
//
// Input is an append-only queue consumed through a cursor. When an input
// instruction finds the queue exhausted, Run returns Yielded without
// consuming the instruction; append more input and call Run again to resume
// exactly where the machine stopped. Output accumulates across calls to Run
// and is never reset by the machine.
//
// Instances share no state with each other. Use Fork to obtain an
// independent copy of a machine, for example to explore many inputs from a
// common starting point. Coordinating several machines (see package sched)
// is left to the caller: the VM never schedules itself.
//
// The machine is not safe for concurrent use. Distinct instances, including
// forks, may run concurrently.
package intcode
