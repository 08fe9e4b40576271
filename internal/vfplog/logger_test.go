// This file is part of armvfp.
//
// armvfp is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// armvfp is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with armvfp.  If not, see <https://www.gnu.org/licenses/>.

package vfplog_test

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jetsetilly/armvfp/internal/vfplog"
)

func TestLoggerTail(t *testing.T) {
	log := vfplog.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	require.Equal(t, "", w.String())

	log.Log(vfplog.Allow, "decode", "this is a test")
	log.Write(w)
	require.Equal(t, "decode: this is a test\n", w.String())

	w.Reset()

	log.Log(vfplog.Allow, "dispatch", "this is another test")
	log.Write(w)
	require.Equal(t, "decode: this is a test\ndispatch: this is another test\n", w.String())

	w.Reset()
	log.Tail(w, 100)
	require.Equal(t, "decode: this is a test\ndispatch: this is another test\n", w.String())

	w.Reset()
	log.Tail(w, 2)
	require.Equal(t, "decode: this is a test\ndispatch: this is another test\n", w.String())

	w.Reset()
	log.Tail(w, 1)
	require.Equal(t, "dispatch: this is another test\n", w.String())

	w.Reset()
	log.Tail(w, 0)
	require.Equal(t, "", w.String())
}

func TestLoggerWrapsAtCapacity(t *testing.T) {
	log := vfplog.NewLogger(2)
	w := &strings.Builder{}

	log.Log(vfplog.Allow, "a", "1")
	log.Log(vfplog.Allow, "b", "2")
	log.Log(vfplog.Allow, "c", "3")

	log.Write(w)
	require.Equal(t, "b: 2\nc: 3\n", w.String())
}

type prohibitLogging struct {
	allow int
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow > 50
}

func TestLoggerPermissions(t *testing.T) {
	log := vfplog.NewLogger(100)
	w := &strings.Builder{}

	var p prohibitLogging

	for i := 0; i < 100; i++ {
		p.allow = rand.Intn(100)
		log.Clear()
		w.Reset()
		log.Log(p, "tag", "detail")
		log.Write(w)
		if p.AllowLogging() {
			require.Equal(t, "tag: detail\n", w.String())
		} else {
			require.Equal(t, "", w.String())
		}
	}
}

func TestLoggerErrorLogging(t *testing.T) {
	log := vfplog.NewLogger(100)
	w := &strings.Builder{}

	err := errors.New("test error")

	log.Log(vfplog.Allow, "tag", err)
	log.Write(w)
	require.Equal(t, "tag: test error\n", w.String())

	log.Clear()
	w.Reset()

	log.Logf(vfplog.Allow, "tag", "wrapped: %v", err)
	log.Write(w)
	require.Equal(t, "tag: wrapped: test error\n", w.String())
}

type stringerTest struct{}

func (stringerTest) String() string {
	return "stringer test"
}

func TestLoggerStringerLogging(t *testing.T) {
	log := vfplog.NewLogger(100)
	w := &strings.Builder{}

	log.Log(vfplog.Allow, "tag", stringerTest{})
	log.Write(w)
	require.Equal(t, "tag: stringer test\n", w.String())
}

func TestLoggerIntLogging(t *testing.T) {
	log := vfplog.NewLogger(100)
	w := &strings.Builder{}

	log.Log(vfplog.Allow, "tag", 100)
	log.Write(w)
	require.Equal(t, "tag: 100\n", w.String())
}
