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

package fpu

// NZCV condition codes produced by a compare, matching the ARM
// architectural definition of FPCompare (not the VCMP entry in a table
// found elsewhere that collides GT and UN on the same encoding).
const (
	CompareUnordered uint8 = 0b0011
	CompareEqual     uint8 = 0b0110
	CompareLess      uint8 = 0b1000
	CompareGreater   uint8 = 0b0010
)

// FPCompare compares op1 against op2 and sets Status.NZCV accordingly.
// quietNaNexc requests that InvalidOp also be raised for a quiet NaN
// operand (the "signalling" VCMPE / encoding-2 form); a signalling NaN
// always raises InvalidOp regardless.
//
// "FPCompare()" of "ARMv7-M", page A2-52.
func (k *Kernel) FPCompare(op1, op2 uint64, N int, quietNaNexc bool, fpscrControlled bool) {
	var fpscr FPSCR
	if fpscrControlled {
		fpscr = k.Status
	} else {
		fpscr = k.StandardFPSCRValue()
	}

	typ1, _, value1 := k.FPUnpack(op1, N, fpscr)
	typ2, _, value2 := k.FPUnpack(op2, N, fpscr)

	if typ1 == FPType_SNaN || typ1 == FPType_QNaN || typ2 == FPType_SNaN || typ2 == FPType_QNaN {
		k.Status.SetNZCV(CompareUnordered)
		if typ1 == FPType_SNaN || typ2 == FPType_SNaN || quietNaNexc {
			k.FPProcessException(FPExc_InvalidOp, fpscr)
		}
		return
	}

	switch {
	case value1 == value2:
		k.Status.SetNZCV(CompareEqual)
	case value1 < value2:
		k.Status.SetNZCV(CompareLess)
	default:
		k.Status.SetNZCV(CompareGreater)
	}
}
