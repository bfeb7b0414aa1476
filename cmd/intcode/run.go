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
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/db47h/intcode/intcode"
	"github.com/db47h/intcode/internal/iox"
	"github.com/db47h/intcode/lang/ascii"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type runFlags struct {
	input       []int64
	lines       []string
	set         []string
	size        int
	maxMem      int
	ascii       bool
	interactive bool
	noRaw       bool
	dump        bool
}

func (a *app) runCmd() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Run a program until it halts",
		Long: `Run loads a comma separated Intcode program from FILE and runs it until
it halts. Output values are printed one per line, or as text with --ascii.

If the program needs more input than provided with --input and --line, run
exits with status 2, unless --interactive is set, in which case input is read
from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args[0], &f)
		},
	}
	fl := cmd.Flags()
	fl.Int64SliceVarP(&f.input, "input", "i", nil, "comma separated input `values`")
	fl.StringArrayVarP(&f.lines, "line", "l", nil, "ASCII input `line` (can be specified multiple times)")
	fl.StringArrayVar(&f.set, "set", nil, "patch memory before running, as `addr=value` (can be specified multiple times)")
	fl.IntVar(&f.size, "size", 0, "initial memory size in `cells`")
	fl.IntVar(&f.maxMem, "max-memory", intcode.DefaultMaxMemory, "memory limit in `cells`")
	fl.BoolVarP(&f.ascii, "ascii", "a", false, "print output as text and read interactive input as text")
	fl.BoolVar(&f.interactive, "interactive", false, "read input from stdin when the program needs it")
	fl.BoolVar(&f.noRaw, "noraw", false, "disable raw terminal IO in interactive ASCII mode")
	fl.BoolVar(&f.dump, "dump", false, "dump VM state upon exit")
	return cmd
}

// parseSet parses an addr=value memory patch.
func parseSet(s string) (addr, v intcode.Cell, err error) {
	k, val, ok := strings.Cut(s, "=")
	if !ok {
		return 0, 0, errors.Errorf("invalid patch %q: expected addr=value", s)
	}
	a, err := strconv.ParseInt(strings.TrimSpace(k), 0, 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid patch %q", s)
	}
	b, err := strconv.ParseInt(strings.TrimSpace(val), 0, 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid patch %q", s)
	}
	return intcode.Cell(a), intcode.Cell(b), nil
}

func toCells(v []int64) []intcode.Cell {
	r := make([]intcode.Cell, len(v))
	for k := range v {
		r[k] = intcode.Cell(v[k])
	}
	return r
}

func (a *app) newVM(fileName string, f *runFlags) (*intcode.Instance, error) {
	prog, err := intcode.Load(fileName)
	if err != nil {
		return nil, err
	}
	i, err := intcode.New(prog,
		intcode.Logger(a.log.Logger),
		intcode.MaxMemory(f.maxMem),
		intcode.MemorySize(f.size),
		intcode.Input(toCells(f.input)...),
		intcode.Input(ascii.EncodeLines(f.lines...)...))
	if err != nil {
		return nil, err
	}
	for _, s := range f.set {
		addr, v, err := parseSet(s)
		if err != nil {
			return nil, err
		}
		if err = i.Poke(addr, v); err != nil {
			return nil, errors.Wrapf(err, "--set %s", s)
		}
	}
	return i, nil
}

// inputSource provides more input when the VM yields.
type inputSource interface {
	next() ([]intcode.Cell, error)
}

func (a *app) run(cmd *cobra.Command, fileName string, f *runFlags) (err error) {
	i, err := a.newVM(fileName, f)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	defer func() {
		if f.dump {
			if e := i.Dump(out); err == nil {
				err = e
			}
		}
		if e := out.Flush(); err == nil && e != nil {
			err = errors.Wrap(e, "flush")
		}
	}()

	var in inputSource
	if f.interactive {
		stdin := cmd.InOrStdin()
		tty := stdin == os.Stdin && readline.IsTerminal(int(os.Stdin.Fd()))
		switch {
		case tty && f.ascii && !f.noRaw:
			if restore, err := setRawIO(); err == nil {
				defer restore()
				in = &keyInput{r: stdin, echo: out}
			}
		case tty:
			if t, err := newTermInput(f.ascii); err == nil {
				defer t.Close()
				in = t
			}
		}
		if in == nil {
			in = &lineInput{r: bufio.NewReader(stdin), ascii: f.ascii}
		}
	}

	seen := 0
	for {
		st, err := i.Run()
		if e := a.emit(out, i.OutputSince(seen), f.ascii); e != nil {
			return e
		}
		seen = i.OutputLen()
		if err != nil {
			a.log.Error("program fault", "ip", i.IP(), "err", err)
			return err
		}
		if st == intcode.Halted {
			a.log.Info("program halted", "instructions", i.InstructionCount(), "output", seen)
			return nil
		}
		a.log.Debug("waiting for input", "ip", i.IP())
		if in == nil {
			return &exitError{2, fmt.Sprintf("program waiting for input @ip=%d", i.IP())}
		}
		if err = out.Flush(); err != nil {
			return errors.Wrap(err, "flush")
		}
		v, err := in.next()
		if err != nil {
			if err == io.EOF {
				return &exitError{2, fmt.Sprintf("end of input while program waiting for input @ip=%d", i.IP())}
			}
			return err
		}
		i.AppendInput(v...)
	}
}

func (a *app) emit(w io.Writer, v []intcode.Cell, text bool) error {
	if len(v) == 0 {
		return nil
	}
	if text {
		return ascii.Render(w, v)
	}
	ew := iox.NewErrWriter(w)
	for _, c := range v {
		ew.WriteString(strconv.FormatInt(int64(c), 10) + "\n")
	}
	return ew.Err
}
