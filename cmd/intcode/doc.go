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

// The intcode command runs, assembles and disassembles Intcode programs, and
// searches amplifier phase settings.
//
// Usage:
//
//	intcode [--log-level level] [--log-file filename] [--debug] command
//
// Commands:
//
//	run FILE      run a program until it halts
//	disasm FILE   print a mnemonic listing of a program
//	asm FILE      assemble a program from its mnemonic source
//	amp FILE      find the best amplifier phase settings
//
// Programs are text files of comma separated integers. See the asm package
// for the assembler syntax.
//
// run reads its input from the --input (numbers) and --line (ASCII text)
// flags. When the program needs more input than provided, run exits with
// status 2, unless --interactive is set, in which case more input is read
// from stdin one line at a time. With --ascii, output values are printed as
// text, and if stdin is a terminal, it is switched to raw mode so that key
// strokes are sent to the program as soon as they are typed (unless --noraw is
// set). CTRL-D ends the input.
//
// --set addr=value patches memory before the program starts, e.g. to insert
// quarters in cell 0:
//
//	intcode run --set 0=2 game.txt
//
// Programs may not write beyond --max-memory cells (16777216 by default); such
// a write stops the program with a "write out of range" fault.
//
// --debug sets the log level to debug unless --log-level is given, and prints
// a full stacktrace should the VM crash.
package main
