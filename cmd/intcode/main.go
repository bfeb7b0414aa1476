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
	"fmt"
	"io"
	"os"

	"github.com/db47h/intcode/internal/logs"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// exitError terminates the command with a specific exit code.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

type app struct {
	logLevel string
	logFile  string
	debug    bool
	log      *logs.Logger
}

func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:           "intcode",
		Short:         "Run, inspect and combine Intcode programs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl := a.logLevel
			if lvl == "" && a.debug {
				lvl = "debug"
			}
			l, err := logs.New(cmd.ErrOrStderr(), logs.Config{Level: lvl, File: a.logFile})
			if err != nil {
				return err
			}
			a.log = l
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "", "log `level`: debug, info, warn or error (default warn)")
	pf.StringVar(&a.logFile, "log-file", "", "also write JSON log records to `filename`")
	pf.BoolVar(&a.debug, "debug", false, "enable debug diagnostics")

	root.AddCommand(a.runCmd(), a.disasmCmd(), a.asmCmd(), a.ampCmd())
	return root
}

func (a *app) close() {
	if a.log != nil {
		a.log.Close()
	}
}

// report prints err to w and returns the process exit code.
func (a *app) report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		fmt.Fprintln(w, ee.msg)
		return ee.code
	}
	if a.debug {
		fmt.Fprintf(w, "%+v\n", err)
	} else {
		fmt.Fprintf(w, "%v\n", err)
	}
	return 1
}

func main() {
	a := new(app)
	err := a.command().Execute()
	a.close()
	os.Exit(a.report(os.Stderr, err))
}
