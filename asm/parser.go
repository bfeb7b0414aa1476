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

package asm

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/db47h/intcode/intcode"
)

const maxErrors = 10

// ErrAsm is the error type returned by Assemble. It holds up to 10 errors
// with their position in the source.
type ErrAsm []struct {
	Pos scanner.Position
	Msg string
}

func (e ErrAsm) Error() string {
	var b strings.Builder
	for k, err := range e {
		if k > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Pos.String())
		b.WriteString(": ")
		b.WriteString(err.Msg)
	}
	return b.String()
}

func isIdentRune(ch rune, i int) bool {
	if ch == ',' {
		return false
	}
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

type parser struct {
	i      []intcode.Cell
	pc     int
	end    int
	s      scanner.Scanner
	labels map[string]*label
	errs   ErrAsm

	// instruction being assembled
	ins     intcode.Instruction
	insPC   int
	insPos  scanner.Position
	argc    int
	pending int
	dat     bool
}

func newParser() *parser {
	p := new(parser)
	p.labels = make(map[string]*label)
	return p
}

func (p *parser) error(pos scanner.Position, msg string) {
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, struct {
			Pos scanner.Position
			Msg string
		}{pos, msg})
	}
}

func (p *parser) write(v intcode.Cell) {
	for p.pc >= len(p.i) {
		p.i = append(p.i, make([]intcode.Cell, 256)...)
	}
	p.i[p.pc] = v
	p.pc++
	if p.pc > p.end {
		p.end = p.pc
	}
}

func (p *parser) useLabel(name string) {
	lbl := p.labels[name]
	if lbl == nil {
		lbl = &label{
			// use current position as valid temp position
			labelSite{p.s.Position, -1},
			nil,
		}
		p.labels[name] = lbl
	}
	lbl.uses = append(lbl.uses, labelSite{p.s.Position, p.pc})
	p.write(0)
}

// number converts s to a Cell. s may be an integer in any base accepted by
// strconv.ParseInt or a quoted character.
func number(s string) (intcode.Cell, bool, error) {
	n, err := strconv.ParseInt(s, 0, 64)
	if err == nil {
		return intcode.Cell(n), true, nil
	}
	if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		r, _, tail, err := strconv.UnquoteChar(s[1:len(s)-1], '\'')
		if err != nil {
			return 0, false, err
		}
		if tail != "" {
			return 0, false, fmt.Errorf("invalid character literal %s", s)
		}
		return intcode.Cell(r), true, nil
	}
	return 0, false, nil
}

// value writes a literal or a label address.
func (p *parser) value(s string) {
	if s == "" {
		p.error(p.s.Position, "missing value")
		return
	}
	v, ok, err := number(s)
	switch {
	case err != nil:
		p.error(p.s.Position, err.Error())
	case ok:
		p.write(v)
	case s[0] == ':' || s[0] == '.' || s[0] == '#' || s[0] == '~':
		p.error(p.s.Position, "Invalid label name "+s)
	default:
		p.useLabel(s)
	}
}

// operand assembles one instruction operand.
func (p *parser) operand(s string) {
	mode := intcode.Position
	switch s[0] {
	case '#':
		mode, s = intcode.Immediate, s[1:]
	case '~':
		mode, s = intcode.Relative, s[1:]
	}
	p.ins.Modes[p.argc] = mode
	p.argc++
	p.pending--
	p.value(s)
	if p.pending == 0 {
		p.finish()
	}
}

// finish writes the instruction word once all operands are known.
func (p *parser) finish() {
	if p.ins.Modes[len(p.ins.Modes)-1] == intcode.Immediate && p.ins.Op.Args() == 3 ||
		(p.ins.Op == intcode.OpIn && p.ins.Modes[0] == intcode.Immediate) {
		p.error(p.insPos, "Immediate mode used as write target for "+p.ins.Op.String())
	}
	p.i[p.insPC] = p.ins.Encode()
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) ([]intcode.Cell, error) {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		pos := s.Position
		if !pos.IsValid() {
			pos = s.Pos()
		}
		p.error(pos, msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for tok := p.s.Scan(); tok != scanner.EOF && len(p.errs) < maxErrors; tok = p.s.Scan() {
		if tok == ',' {
			continue
		}
		if tok != scanner.Ident {
			p.error(p.s.Position, "Unexpected character "+strconv.QuoteRune(tok))
			continue
		}
		s := p.s.TokenText()

		if s == "(" {
			// skip comments
			for ; tok != scanner.EOF && (tok != scanner.Ident || p.s.TokenText() != ")"); tok = p.s.Scan() {
			}
			continue
		}

		if p.dat {
			p.dat = false
			p.value(s)
			continue
		}
		if p.pending > 0 {
			if op, ok := intcode.LookupOpcode(s); ok {
				p.error(p.s.Position, "Missing operand for "+p.ins.Op.String()+" before "+op.String())
				p.pending = 0
			} else if s[0] == ':' || s[0] == '.' {
				p.error(p.s.Position, "Missing operand for "+p.ins.Op.String()+" before "+s)
				p.pending = 0
			} else {
				p.operand(s)
				continue
			}
		}

		switch s[0] {
		case ':':
			n := s[1:]
			if len(n) == 0 {
				p.error(p.s.Position, "Empty label name")
				continue
			}
			if l, ok := p.labels[n]; ok {
				if l.address != -1 {
					p.error(p.s.Position, "Label redefinition: "+n+", previous definition here: "+l.pos.String())
				}
				l.address = p.pc
				l.pos = p.s.Position
			} else {
				p.labels[n] = &label{labelSite{p.s.Position, p.pc}, nil}
			}
		case '.':
			switch s {
			case ".dat":
				p.dat = true
			case ".org":
				tok = p.s.Scan()
				v, ok, _ := number(p.s.TokenText())
				if tok != scanner.Ident || !ok || v < 0 {
					p.error(p.s.Position, ".org: expected address, got "+p.s.TokenText())
					continue
				}
				p.pc = int(v)
			default:
				p.error(p.s.Position, "Unknown dot directive: "+s)
			}
		default:
			op, ok := intcode.LookupOpcode(s)
			if !ok {
				p.error(p.s.Position, "Unknown instruction "+s)
				continue
			}
			p.ins = intcode.Instruction{Op: op}
			p.insPC, p.insPos = p.pc, p.s.Position
			p.argc, p.pending = 0, op.Args()
			p.write(0)
			if p.pending == 0 {
				p.finish()
			}
		}
	}
	if p.pending > 0 {
		p.error(p.s.Pos(), "Missing operand for "+p.ins.Op.String()+" at end of input")
	}
	if p.dat {
		p.error(p.s.Pos(), ".dat: missing value at end of input")
	}

	// write labels
	for n, l := range p.labels {
		if l.address == -1 {
			p.error(l.uses[0].pos, "Undefined label "+n)
			continue
		}
		for _, u := range l.uses {
			p.i[u.address] = intcode.Cell(l.address)
		}
	}

	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return p.i[:p.end], nil
}
