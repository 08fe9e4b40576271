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

// DecodedEntry is the immutable result of decoding one VFP instruction
// word (C4). Callers are expected to decode once per unique raw_instr and
// reuse the entry across repeated execution (e.g. a loop body), per spec
// section 4.2 -- nothing in Execute mutates a DecodedEntry.
//
// Field population is opcode-class dependent, following spec 4.2's
// per-class operand projection exactly: CDP arithmetic entries carry only
// Raw and DP (the kernel re-extracts Vd/Vn/Vm itself, mirroring the cached
// {instr, dp_operation} pair original_source's vfpinstr.c builds for the
// same instruction group); move/transfer and load/store entries carry
// their fully projected fields so the dispatcher never has to re-examine
// Raw for those classes.
type DecodedEntry struct {
	Opcode Opcode
	Cond   uint8
	Raw    uint32

	// DP is true for double-precision arithmetic (sz==1), consulted by the
	// arithmetic dispatch path and by VMOVR/VABS/VNEG/VSQRT/VCMP/VCMP2.
	DP bool

	// Single/D/N/M are the projected register operands for move and
	// load/store instructions. For VMOVR, D and M are the Vd/Vm fields
	// already combined with their extension bits; the arithmetic opcodes
	// (VABS/VNEG/VSQRT/VCMP/VCMP2 included) leave them zero and are decoded
	// from Raw at execute time.
	Single bool
	D, N, M int

	// Imm is the raw 8-bit immediate field for VMOVI (im4H:im4L). The
	// dispatcher expands it through fpu.Kernel.VFPExpandImm at execute time.
	Imm uint64

	// ToArm distinguishes MRC-direction transfers (VMOVBRS, VMRS: true) from
	// MCR-direction ones (false). T/T2 are the ARM core register indices
	// involved; Reg is the VFP system register id for VMSR/VMRS.
	ToArm bool
	T, T2 int
	Reg   int

	// Imm32/Add/Wback/Regs describe load/store addressing per spec 4.6:
	// Imm32 is the scaled byte offset, Add selects addition vs subtraction
	// from the base, Wback requests base-register writeback, and Regs
	// (VSTM/VLDM/VPUSH/VPOP only) is the transfer length in registers.
	Imm32 uint32
	Add   bool
	Wback bool
	Regs  uint8
	// OddRegs flags the FSTMX/FLDMX encoding (odd register count for a
	// double-precision block, the legacy "short" variant).
	OddRegs bool
}

func bits(word uint32, lo, hi int) uint32 {
	width := hi - lo + 1
	mask := (uint32(1) << uint(width)) - 1
	return (word >> uint(lo)) & mask
}

func bit(word uint32, n int) uint32 {
	return (word >> uint(n)) & 1
}

// singleReg combines a 4-bit register field with its extension bit to form
// a single-precision register index 0..31, per the ARM encoding convention
// "Vx:x" (extension bit is the low-order bit of the full index).
func singleReg(field4, ext uint32) int {
	return int(field4<<1 | ext)
}

// doubleReg combines a 4-bit register field with its extension bit to form
// a double-precision register index 0..31, per "x:Vx" (extension bit is
// the high-order bit). The register bank holds D0..D15 only.
func doubleReg(field4, ext uint32) int {
	return int(ext<<4 | field4)
}
