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
	"os"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/intcode"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (a *app) disasmCmd() *cobra.Command {
	var base int
	cmd := &cobra.Command{
		Use:   "disasm FILE",
		Short: "Print a mnemonic listing of a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mem, err := intcode.Load(args[0])
			if err != nil {
				return err
			}
			if base < 0 || base > len(mem) {
				return errors.Errorf("base address %d out of range", base)
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			if err = asm.DisassembleAll(mem[base:], base, w); err != nil {
				return err
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&base, "base", 0, "start address of the listing")
	return cmd
}

func (a *app) asmCmd() *cobra.Command {
	var outFile string
	cmd := &cobra.Command{
		Use:   "asm FILE",
		Short: "Assemble a program from its mnemonic source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "asm")
			}
			defer f.Close()
			prog, err := asm.Assemble(args[0], f)
			if err != nil {
				return err
			}
			a.log.Debug("assembled", "file", args[0], "cells", len(prog))
			if outFile != "" {
				return intcode.Save(outFile, prog)
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			w.WriteString(intcode.Format(prog))
			w.WriteByte('\n')
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "write program to `filename` instead of stdout")
	return cmd
}
