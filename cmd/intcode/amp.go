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

	"github.com/db47h/intcode/amp"
	"github.com/db47h/intcode/intcode"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"
)

// resultTree writes all results grouped by the phase setting of the first
// amplifier.
func resultTree(w io.Writer, res []amp.Result) error {
	tree := treeprint.New()
	tree.SetValue("phases")
	branches := make(map[intcode.Cell]treeprint.Tree)
	for _, r := range res {
		if len(r.Phases) == 0 {
			continue
		}
		b, ok := branches[r.Phases[0]]
		if !ok {
			b = tree.AddBranch(r.Phases[0])
			branches[r.Phases[0]] = b
		}
		b.AddNode(fmt.Sprintf("%s: %d", intcode.Format(r.Phases), r.Signal))
	}
	_, err := io.WriteString(w, tree.String())
	return err
}

func (a *app) ampCmd() *cobra.Command {
	var (
		phases   []int64
		feedback bool
		all      bool
	)
	cmd := &cobra.Command{
		Use:   "amp FILE",
		Short: "Find the phase settings producing the highest amplifier signal",
		Long: `Amp runs one copy of the program per phase setting, chained in series, and
tries every permutation of the phase settings. With --feedback, the output of
the last amplifier is fed back into the first one until they all halt.

The default phase settings are 0,1,2,3,4, or 5,6,7,8,9 in feedback mode.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := intcode.Load(args[0])
			if err != nil {
				return err
			}
			vm, err := intcode.New(prog)
			if err != nil {
				return err
			}
			p := toCells(phases)
			if len(p) == 0 {
				p = []intcode.Cell{0, 1, 2, 3, 4}
				if feedback {
					p = []intcode.Cell{5, 6, 7, 8, 9}
				}
			}
			res, err := amp.SearchAll(cmd.Context(), vm, p, feedback, a.log.Logger)
			if err != nil {
				return err
			}
			if all {
				if err = resultTree(cmd.OutOrStdout(), res); err != nil {
					return err
				}
			}
			r := amp.Best(res)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d (%s)\n", r.Signal, intcode.Format(r.Phases))
			return err
		},
	}
	cmd.Flags().Int64SliceVarP(&phases, "phases", "p", nil, "comma separated phase `settings`")
	cmd.Flags().BoolVarP(&feedback, "feedback", "f", false, "feedback loop mode")
	cmd.Flags().BoolVar(&all, "tree", false, "print the signal of every permutation as a tree")
	return cmd
}
