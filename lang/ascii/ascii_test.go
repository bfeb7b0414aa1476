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

package ascii_test

import (
	"bytes"
	"testing"

	"github.com/db47h/intcode/intcode"
	"github.com/db47h/intcode/lang/ascii"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type C = []intcode.Cell

func TestEncode(t *testing.T) {
	assert.Equal(t, C{'N', 'O', 'T', ' ', 'A', ' ', 'J', '\n'}, ascii.Encode("NOT A J"))
	assert.Equal(t, C{'W', 'A', 'L', 'K', '\n'}, ascii.Encode("WALK\n"))
	assert.Equal(t, C{'\n'}, ascii.Encode(""))
	assert.Equal(t, C{'a', '\n', 'b', '\n'}, ascii.EncodeLines("a", "b\n"))
	assert.Nil(t, ascii.EncodeLines())
}

func TestDecode(t *testing.T) {
	s, rest := ascii.Decode(C{'h', 'i', '\n'})
	assert.Equal(t, "hi\n", s)
	assert.Nil(t, rest)

	s, rest = ascii.Decode(C{'o', 'k', 19348914, '!'})
	assert.Equal(t, "ok", s)
	assert.Equal(t, C{19348914, '!'}, rest)

	s, rest = ascii.Decode(C{-1})
	assert.Equal(t, "", s)
	assert.Equal(t, C{-1}, rest)
}

var renderTests = []struct {
	name string
	out  C
	exp  string
}{
	{"empty", nil, ""},
	{"text", ascii.Encode("..#\n#.."), "..#\n#..\n"},
	{"number after newline", append(ascii.Encode("Done"), 1141), "Done\n1141\n"},
	{"number mid line", C{'>', 128, 'x'}, ">\n128\nx"},
	{"numbers", C{-5, 200}, "-5\n200\n"},
}

func TestRender(t *testing.T) {
	for _, test := range renderTests {
		t.Run(test.name, func(t *testing.T) {
			var b bytes.Buffer
			require.NoError(t, ascii.Render(&b, test.out))
			assert.Equal(t, test.exp, b.String())
		})
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestRender_error(t *testing.T) {
	err := ascii.Render(failWriter{}, C{'a', 1000, 'b'})
	assert.EqualError(t, err, "write failed: disk full")
}

func TestRun(t *testing.T) {
	// echo the first line in upper case
	const prog = "3,100,1008,100,10,101,1005,101,25,1007,100,97,101,1005,101,20,1001,100,-32,100,4,100,1105,1,0,99"
	i, err := intcode.NewFromString(prog, intcode.Input(ascii.Encode("Hi there")...))
	require.NoError(t, err)
	st, err := i.Run()
	require.NoError(t, err)
	require.Equal(t, intcode.Halted, st)
	var b bytes.Buffer
	require.NoError(t, ascii.Render(&b, i.Output()))
	assert.Equal(t, "HI THERE", b.String())
}
