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

package iox_test

import (
	"bytes"
	"testing"

	"github.com/db47h/intcode/internal/iox"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failWriter struct{ n int }

func (f *failWriter) Write(p []byte) (int, error) {
	if f.n == 0 {
		return 0, errors.New("disk full")
	}
	f.n--
	return len(p), nil
}

func TestErrWriter(t *testing.T) {
	var b bytes.Buffer
	w := iox.NewErrWriter(&b)
	require.NoError(t, w.WriteInts([]int64{1, -2, 3}, ","))
	require.NoError(t, w.WriteString("\n"))
	assert.Equal(t, "1,-2,3\n", b.String())
	assert.Same(t, w, iox.NewErrWriter(w))
}

func TestErrWriter_sticky(t *testing.T) {
	w := iox.NewErrWriter(&failWriter{n: 1})
	require.NoError(t, w.WriteString("ok"))
	err := w.WriteString("fail")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	n, err2 := w.Write([]byte("again"))
	assert.Zero(t, n)
	assert.Equal(t, err, err2)
}
