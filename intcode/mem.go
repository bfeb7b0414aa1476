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

// Memory is the tape of an Intcode machine. It only ever grows.
type Memory []Cell

// At returns the value stored at address addr. Addresses outside the tape,
// including negative ones, read as 0. At never grows the tape.
func (m Memory) At(addr Cell) Cell {
	if addr < 0 || addr >= Cell(len(m)) {
		return 0
	}
	return m[addr]
}

// Set stores v at address addr, which must not be negative. If addr is
// beyond the end of the tape, the tape is first extended with zeros up to and
// including addr. Set does not enforce any limit; callers bound addr first.
func (m *Memory) Set(addr, v Cell) {
	if addr >= Cell(len(*m)) {
		m.Grow(int(addr) + 1)
	}
	(*m)[addr] = v
}

// Grow extends the tape with zeros so that it holds at least n cells.
func (m *Memory) Grow(n int) {
	if l := len(*m); n > l {
		*m = append(*m, make([]Cell, n-l)...)
	}
}

// Clone returns a copy of m that shares no storage with it.
func (m Memory) Clone() Memory {
	c := make(Memory, len(m))
	copy(c, m)
	return c
}
