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

package vfp

// Opcode identifies a recognised VFP instruction.
type Opcode int

const (
	OpNone Opcode = iota
	VMLA
	VMLS
	VNMLA
	VNMLS
	VNMUL
	VMUL
	VADD
	VSUB
	VDIV
	VMOVI
	VMOVR
	VABS
	VNEG
	VSQRT
	VCMP
	VCMP2
	VCVTBDS
	VCVTBFF
	VCVTBFI
	VMOVBRS
	VMSR
	VMOVBRC
	VMRS
	VMOVBCR
	VMOVBRRSS
	VMOVBRRD
	VSTR
	VPUSH
	VSTM
	VPOP
	VLDR
	VLDM
)

var opcodeNames = map[Opcode]string{
	OpNone:     "none",
	VMLA:       "VMLA",
	VMLS:       "VMLS",
	VNMLA:      "VNMLA",
	VNMLS:      "VNMLS",
	VNMUL:      "VNMUL",
	VMUL:       "VMUL",
	VADD:       "VADD",
	VSUB:       "VSUB",
	VDIV:       "VDIV",
	VMOVI:      "VMOVI",
	VMOVR:      "VMOVR",
	VABS:       "VABS",
	VNEG:       "VNEG",
	VSQRT:      "VSQRT",
	VCMP:       "VCMP",
	VCMP2:      "VCMP2",
	VCVTBDS:    "VCVTBDS",
	VCVTBFF:    "VCVTBFF",
	VCVTBFI:    "VCVTBFI",
	VMOVBRS:    "VMOVBRS",
	VMSR:       "VMSR",
	VMOVBRC:    "VMOVBRC",
	VMRS:       "VMRS",
	VMOVBCR:    "VMOVBCR",
	VMOVBRRSS:  "VMOVBRRSS",
	VMOVBRRD:   "VMOVBRRD",
	VSTR:       "VSTR",
	VPUSH:      "VPUSH",
	VSTM:       "VSTM",
	VPOP:       "VPOP",
	VLDR:       "VLDR",
	VLDM:       "VLDM",
}

func (o Opcode) String() string {
	if s, ok := opcodeNames[o]; ok {
		return s
	}
	return "Opcode(?)"
}

// opcodeClass groups opcodes by how the dispatcher routes them (spec step
// 4.4.3: "arithmetic -> C1; move/transfer/status -> inline handler;
// memory -> C6").
type opcodeClass int

const (
	classArithmetic opcodeClass = iota
	classMoveTransfer
	classLoadStore
	classUnimplemented
)

func (o Opcode) class() opcodeClass {
	switch o {
	case VMLA, VMLS, VNMLA, VNMLS, VNMUL, VMUL, VADD, VSUB, VDIV,
		VABS, VNEG, VSQRT, VCMP, VCMP2, VCVTBDS, VCVTBFF, VCVTBFI:
		return classArithmetic
	case VMOVI, VMOVR, VMOVBRS, VMSR, VMRS, VMOVBRRD:
		return classMoveTransfer
	case VSTR, VPUSH, VSTM, VPOP, VLDR, VLDM:
		return classLoadStore
	case VMOVBRC, VMOVBCR, VMOVBRRSS:
		return classUnimplemented
	}
	return classUnimplemented
}

// bitField is one inclusion/exclusion constraint: bits [lo..hi] of the word
// (inclusive, lo <= hi <= 31) must equal expected.
type bitField struct {
	lo, hi   int
	expected uint32
}

func (b bitField) width() int {
	return b.hi - b.lo + 1
}

func (b bitField) mask() uint32 {
	return (uint32(1) << uint(b.width())) - 1
}

func (b bitField) matches(word uint32) bool {
	return (word>>uint(b.lo))&b.mask() == b.expected
}

// decodeRule is one row of the decode table: an opcode paired with its
// inclusion pattern and an optional exclusion pattern, per spec section
// 4.1. A word matches a rule when every inclusion field matches and no
// exclusion field matches.
type decodeRule struct {
	opcode  Opcode
	include []bitField
	exclude []bitField
}

func (r decodeRule) totalBits() int {
	n := 0
	for _, f := range r.include {
		n += f.width()
	}
	return n
}

func (r decodeRule) matches(word uint32) bool {
	for _, f := range r.include {
		if !f.matches(word) {
			return false
		}
	}
	for _, f := range r.exclude {
		if f.matches(word) {
			return false
		}
	}
	return true
}

// decodeTable is the VFP opcode table: bits 27-24 are 1110 for the
// coprocessor-10/11 data-processing and single register-transfer words,
// 1100 for VMOVBRRSS/VMOVBRRD (the MRRC/MCRR form), and 110x for the
// load/store words.
//
// Grounded directly on _examples/original_source's
// arch/arm/common/vfp/vfpinstr.c VFP_DECODE tables, which use the
// identical (lo_bit, hi_bit, expected_value) triple format reproduced
// here. Two entries correct bugs present in that source (see DESIGN.md
// "C3 -- decoder"): VNMLA/VNMLS's opc1
// constraint collided with VMLA/VMLS (both used bits 20-21 == 0x0, which
// cannot discriminate "0D00" from "0D01"), and VNEG's Vn-field constraint
// collided with VMOVR/VABS's (0x30 instead of 0x31, same bug class VSQRT's
// own entry avoids). Ties between rules that both match a word are broken
// by rule specificity (total constrained bit width), implementing the
// "narrower pattern wins" rule of spec section 4.1 generically instead of
// the legacy source's hand-written per-opcode exclusion lists.
var decodeTable = []decodeRule{
	// CDP arithmetic: cond 1110 <opc1> Vn Vd 101 sz N opc2 opc3 Vm
	{VMLA, []bitField{{23, 27, 0x1c}, {20, 21, 0x0}, {9, 11, 0x5}, {6, 6, 0}, {4, 4, 0}}, nil},
	{VMLS, []bitField{{23, 27, 0x1c}, {20, 21, 0x0}, {9, 11, 0x5}, {6, 6, 1}, {4, 4, 0}}, nil},
	{VNMLS, []bitField{{23, 27, 0x1c}, {20, 21, 0x1}, {9, 11, 0x5}, {6, 6, 0}, {4, 4, 0}}, nil},
	{VNMLA, []bitField{{23, 27, 0x1c}, {20, 21, 0x1}, {9, 11, 0x5}, {6, 6, 1}, {4, 4, 0}}, nil},
	{VMUL, []bitField{{23, 27, 0x1c}, {20, 21, 0x2}, {9, 11, 0x5}, {6, 6, 0}, {4, 4, 0}}, nil},
	{VNMUL, []bitField{{23, 27, 0x1c}, {20, 21, 0x2}, {9, 11, 0x5}, {6, 6, 1}, {4, 4, 0}}, nil},
	{VADD, []bitField{{23, 27, 0x1c}, {20, 21, 0x3}, {9, 11, 0x5}, {6, 6, 0}, {4, 4, 0}}, nil},
	{VSUB, []bitField{{23, 27, 0x1c}, {20, 21, 0x3}, {9, 11, 0x5}, {6, 6, 1}, {4, 4, 0}}, nil},
	{VDIV, []bitField{{23, 27, 0x1d}, {20, 21, 0x0}, {9, 11, 0x5}, {6, 6, 0}, {4, 4, 0}}, nil},

	// VMOVI: cond 1110 1D11 im4H Vd 101 sz 0000 im4L
	{VMOVI, []bitField{{23, 27, 0x1d}, {20, 21, 0x3}, {9, 11, 0x5}, {4, 7, 0x0}}, nil},

	// "Other data-processing" group: cond 1110 1D11 <opc2> Vd 101 sz <opc3> Vm
	{VMOVR, []bitField{{23, 27, 0x1d}, {16, 21, 0x30}, {9, 11, 0x5}, {6, 7, 0x1}, {4, 4, 0}}, nil},
	{VABS, []bitField{{23, 27, 0x1d}, {16, 21, 0x30}, {9, 11, 0x5}, {6, 7, 0x3}, {4, 4, 0}}, nil},
	{VNEG, []bitField{{23, 27, 0x1d}, {16, 21, 0x31}, {9, 11, 0x5}, {6, 7, 0x1}, {4, 4, 0}}, nil},
	{VSQRT, []bitField{{23, 27, 0x1d}, {16, 21, 0x31}, {9, 11, 0x5}, {6, 7, 0x3}, {4, 4, 0}}, nil},
	{VCMP, []bitField{{23, 27, 0x1d}, {16, 21, 0x34}, {9, 11, 0x5}, {6, 6, 1}}, nil},
	{VCMP2, []bitField{{23, 27, 0x1d}, {16, 21, 0x35}, {9, 11, 0x5}, {0, 6, 0x40}}, nil},
	{VCVTBDS, []bitField{{23, 27, 0x1d}, {16, 21, 0x37}, {9, 11, 0x5}, {6, 7, 0x3}, {4, 4, 0}}, nil},
	{VCVTBFF, []bitField{{23, 27, 0x1d}, {19, 21, 0x7}, {17, 17, 0x1}, {9, 11, 0x5}, {6, 6, 1}}, nil},
	{VCVTBFI, []bitField{{23, 27, 0x1d}, {19, 21, 0x7}, {9, 11, 0x5}, {6, 6, 1}, {4, 4, 0}}, []bitField{{17, 17, 0x1}}},

	// Core <-> VFP single-register transfers (MRC/MCR form)
	{VMOVBRS, []bitField{{21, 27, 0x70}, {8, 11, 0xa}, {0, 6, 0x10}}, nil},
	{VMSR, []bitField{{20, 27, 0xee}, {0, 11, 0xa10}}, nil},
	{VMOVBRC, []bitField{{23, 27, 0x1c}, {20, 20, 0x0}, {8, 11, 0xb}, {0, 4, 0x10}}, nil},
	{VMRS, []bitField{{20, 27, 0xef}, {0, 11, 0xa10}}, nil},
	{VMOVBCR, []bitField{{24, 27, 0xe}, {20, 20, 0x1}, {8, 11, 0xb}, {0, 4, 0x10}}, nil},

	// Core <-> VFP double-register transfers (MRRC/MCRR form, bits 27-24 1100)
	{VMOVBRRSS, []bitField{{21, 27, 0x62}, {8, 11, 0xa}, {4, 4, 0x1}}, nil},
	{VMOVBRRD, []bitField{{21, 27, 0x62}, {6, 11, 0x2c}, {4, 4, 0x1}}, nil},

	// Load/store (addressing mode 5)
	{VSTR, []bitField{{24, 27, 0xd}, {20, 21, 0x0}, {9, 11, 0x5}}, nil},
	{VPUSH, []bitField{{23, 27, 0x1a}, {16, 21, 0x2d}, {9, 11, 0x5}}, nil},
	{VSTM, []bitField{{25, 27, 0x6}, {20, 20, 0x0}, {9, 11, 0x5}}, nil},
	{VPOP, []bitField{{23, 27, 0x19}, {16, 21, 0x3d}, {9, 11, 0x5}}, nil},
	{VLDR, []bitField{{24, 27, 0xd}, {20, 21, 0x1}, {9, 11, 0x5}}, nil},
	{VLDM, []bitField{{25, 27, 0x6}, {20, 20, 0x1}, {9, 11, 0x5}}, nil},
}

// tryDecodeOpcode matches word against decodeTable and returns the most
// specific match (largest total constrained bit width), implementing the
// tie-break rule of spec section 4.1.
func tryDecodeOpcode(word uint32) (Opcode, bool) {
	best := OpNone
	bestBits := -1
	for _, rule := range decodeTable {
		if !rule.matches(word) {
			continue
		}
		if n := rule.totalBits(); n > bestBits {
			best = rule.opcode
			bestBits = n
		}
	}
	return best, bestBits >= 0
}
