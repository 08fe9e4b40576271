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

// Command vfpdisasm reads a flat binary of little-endian 32-bit ARM words
// and decodes-then-steps each one through a standalone VFP instance,
// printing one trace line per word. It has no notion of a surrounding ARM
// integer core or address space beyond what it fabricates itself, so it is
// meant for fuzzing and differential-testing the decoder and dispatcher
// against a recorded trace, not for running real firmware.
package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/jetsetilly/armvfp/vfp"
)

func main() {
	optInput := getopt.StringLong("input", 'i', "", "flat binary file of little-endian 32-bit ARM words")
	optPrivileged := getopt.BoolLong("privileged", 'p', "report the harness core as running in a privileged mode")
	optDisable := getopt.BoolLong("disabled", 'd', "start with FPEXC.EN clear, as real hardware resets")
	optTail := getopt.IntLong("log-tail", 't', 0, "print the last N diagnostic log entries after stepping")
	optHelp := getopt.BoolLong("help", 'h', "show usage")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	if *optInput == "" {
		fmt.Fprintln(os.Stderr, "vfpdisasm: -i/--input is required")
		getopt.Usage()
		os.Exit(1)
	}

	words, err := readWords(*optInput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vfpdisasm: %v\n", err)
		os.Exit(1)
	}

	cfg := vfp.Default()
	cfg.EnableOnReset = !*optDisable
	cfg.EnforcePrivilege = true

	v := vfp.New(cfg)
	core := newHarnessCore(*optPrivileged)
	mmu := newHarnessMMU()

	for i, word := range words {
		e, ok := vfp.TryDecode(word)
		result := v.Step(word, core, mmu)

		addr := core.gpr[15]
		if !ok {
			fmt.Printf("%04d  %08x  ????????  %-10s\n", i, word, result)
			continue
		}
		fmt.Printf("%04d  %08x  %08x  %-10s %s\n", i, word, addr, e.Opcode, result)
	}

	if *optTail > 0 {
		vfp.Log.Tail(os.Stdout, *optTail)
	}
}

// readWords loads path as a flat sequence of little-endian uint32 words.
func readWords(path string) ([]uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var words []uint32
	for {
		var word uint32
		if err := binary.Read(r, binary.LittleEndian, &word); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		words = append(words, word)
	}
	return words, nil
}
