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

// TryDecode matches word against the VFP opcode table and, on a match,
// projects its operands into a DecodedEntry per spec section 4.2. It
// returns ok==false when no table entry matches, which Step reports as an
// Undefined step.
//
// Dn register-range validity (spec section 3's "Dn must be 0..15"
// invariant) falls out of the field widths used here: doubleReg only ever
// combines a 4-bit field with a 1-bit extension, so it cannot produce a
// value outside 0..15.
func TryDecode(word uint32) (DecodedEntry, bool) {
	opcode, ok := tryDecodeOpcode(word)
	if !ok {
		return DecodedEntry{}, false
	}

	e := DecodedEntry{
		Opcode: opcode,
		Cond:   uint8(bits(word, 28, 31)),
		Raw:    word,
		DP:     bit(word, 8) == 1,
	}

	switch opcode {
	case VMLA, VMLS, VNMLA, VNMLS, VNMUL, VMUL, VADD, VSUB, VDIV,
		VABS, VNEG, VSQRT, VCMP, VCMP2, VCVTBDS, VCVTBFF, VCVTBFI:
		// Kernel-side handlers re-extract Vd/Vn/Vm themselves from Raw; no
		// further projection needed (see DecodedEntry's doc comment).

	case VMOVI:
		e.Single = !e.DP
		vd, d22 := bits(word, 12, 15), bit(word, 22)
		if e.Single {
			e.D = singleReg(vd, d22)
		} else {
			e.D = doubleReg(vd, d22)
		}
		// The raw 8-bit immediate, unexpanded: expansion needs a *fpu.Kernel
		// (VFPExpandImm is a Kernel method, since its width-dependent shape
		// mirrors the rest of the soft-float API), so the dispatcher expands
		// it at execute time.
		e.Imm = uint64(bits(word, 16, 19)<<4 | bits(word, 0, 3))

	case VMOVR:
		e.Single = !e.DP
		vd, d22 := bits(word, 12, 15), bit(word, 22)
		vm, m5 := bits(word, 0, 3), bit(word, 5)
		if e.Single {
			e.D = singleReg(vd, d22)
			e.M = singleReg(vm, m5)
		} else {
			e.D = doubleReg(vd, d22)
			e.M = doubleReg(vm, m5)
		}

	case VMOVBRS:
		e.ToArm = bit(word, 20) == 1
		e.T = int(bits(word, 12, 15))
		e.N = singleReg(bits(word, 16, 19), bit(word, 7))

	case VMSR:
		e.ToArm = false
		e.T = int(bits(word, 12, 15))
		e.Reg = int(bits(word, 16, 19))

	case VMRS:
		e.ToArm = true
		e.T = int(bits(word, 12, 15))
		e.Reg = int(bits(word, 16, 19))

	case VMOVBRRD:
		e.ToArm = bit(word, 20) == 1
		e.T = int(bits(word, 12, 15))
		e.T2 = int(bits(word, 16, 19))
		e.M = doubleReg(bits(word, 0, 3), bit(word, 5))

	case VSTR, VLDR:
		e.Single = !e.DP
		vd, d22 := bits(word, 12, 15), bit(word, 22)
		if e.Single {
			e.D = singleReg(vd, d22)
		} else {
			e.D = doubleReg(vd, d22)
		}
		e.N = int(bits(word, 16, 19))
		e.Imm32 = bits(word, 0, 7) << 2
		e.Add = bit(word, 23) == 1

	case VSTM, VLDM, VPUSH, VPOP:
		e.Single = !e.DP
		vd, d22 := bits(word, 12, 15), bit(word, 22)
		if e.Single {
			e.D = singleReg(vd, d22)
		} else {
			e.D = doubleReg(vd, d22)
		}
		e.N = int(bits(word, 16, 19))
		e.Add = bit(word, 23) == 1
		e.Wback = bit(word, 21) == 1
		imm8 := bits(word, 0, 7)
		e.Imm32 = imm8 << 2
		if e.Single {
			e.Regs = uint8(imm8)
		} else {
			e.Regs = uint8(imm8 / 2)
			e.OddRegs = imm8%2 == 1
		}
	}

	return e, true
}
