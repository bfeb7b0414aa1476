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

package main

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/chzyer/readline"
	"github.com/db47h/intcode/intcode"
	"github.com/db47h/intcode/lang/ascii"
)

// lineValues converts an input line to input values. In numeric mode, values
// are separated by commas or blanks, and an empty line yields no values.
func lineValues(line string, text bool) ([]intcode.Cell, error) {
	if text {
		return ascii.Encode(line), nil
	}
	f := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
	if len(f) == 0 {
		return nil, nil
	}
	return intcode.Parse(strings.Join(f, ","))
}

// lineInput reads input one line at a time.
type lineInput struct {
	r     *bufio.Reader
	ascii bool
}

func (l *lineInput) next() ([]intcode.Cell, error) {
	line, err := l.r.ReadString('\n')
	if line == "" && err != nil {
		return nil, err
	}
	return lineValues(line, l.ascii)
}

// termInput reads lines from a terminal, with line editing and history.
type termInput struct {
	rl    *readline.Instance
	ascii bool
}

func newTermInput(text bool) (*termInput, error) {
	prompt := "? "
	if text {
		prompt = ""
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "^D",
	})
	if err != nil {
		return nil, err
	}
	return &termInput{rl: rl, ascii: text}, nil
}

func (t *termInput) next() ([]intcode.Cell, error) {
	line, err := t.rl.Readline()
	if err == readline.ErrInterrupt {
		return nil, io.EOF
	}
	if err != nil {
		return nil, err
	}
	return lineValues(line, t.ascii)
}

func (t *termInput) Close() error {
	return t.rl.Close()
}

// keyInput reads single key strokes from a terminal in raw mode. Keys are
// echoed, and echo is flushed right away if it is buffered.
type keyInput struct {
	r    io.Reader
	echo io.Writer
}

const (
	keyEOT = 4 // CTRL-D
	keyDEL = 127
)

func (k *keyInput) next() ([]intcode.Cell, error) {
	var b [1]byte
	if _, err := io.ReadFull(k.r, b[:]); err != nil {
		return nil, err
	}
	c := b[0]
	switch c {
	case keyEOT:
		return nil, io.EOF
	case '\r':
		c = '\n'
	case keyDEL:
		// The terminal sends DEL for backspace. Erase the char under the
		// cursor and hand the program a plain '\b' so that it can drop the
		// last character of its line buffer.
		io.WriteString(k.echo, "\b \b")
		return []intcode.Cell{'\b'}, k.flush()
	}
	k.echo.Write([]byte{c})
	return []intcode.Cell{intcode.Cell(c)}, k.flush()
}

func (k *keyInput) flush() error {
	if f, ok := k.echo.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}
