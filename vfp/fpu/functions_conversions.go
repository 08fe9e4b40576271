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

import "math"

// FixedToFP converts a fixed-point integer (optionally unsigned, with
// fractionBits fractional bits) to the N-bit floating-point format.
//
// "FixedToFP()" of "ARMv7-M", page A2-59.
func (k *Kernel) FixedToFP(operand uint64, fractionBits int, unsigned bool, nearest bool, N int, fpscrControlled bool) uint64 {
	if N != 32 && N != 64 {
		panic("unsupported number of bits in FixedToFP()")
	}

	var fpscr FPSCR
	if fpscrControlled {
		fpscr = k.Status
	} else {
		fpscr = k.StandardFPSCRValue()
	}

	if nearest {
		fpscr.SetRMode(FPRoundNearest)
	}

	var realOperand float64
	scale := math.Pow(2, float64(fractionBits))
	if unsigned {
		realOperand = float64(operand) / scale
	} else {
		realOperand = float64(int64(operand)) / scale
	}

	if realOperand == 0.0 {
		return k.FPZero(false, N)
	}
	return k.FPRound(realOperand, N, fpscr)
}

// FPToFixed converts an N-bit floating-point operand to a fixed-point
// integer (optionally unsigned, with fractionBits fractional bits), with
// rounding and exceptions (InvalidOp on a NaN operand, overflow saturates,
// Inexact when the conversion is not exact).
//
// "FPToFixed()" of "ARMv7-M", page A2-58.
func (k *Kernel) FPToFixed(operand uint64, fractionBits int, unsigned bool, roundTowardsZero bool, N int, fpscrControlled bool) uint64 {
	if N != 32 && N != 64 {
		panic("unsupported number of bits in FPToFixed()")
	}

	var fpscr FPSCR
	if fpscrControlled {
		fpscr = k.Status
	} else {
		fpscr = k.StandardFPSCRValue()
	}

	typ, sign, value := k.FPUnpack(operand, N, fpscr)

	if typ == FPType_SNaN || typ == FPType_QNaN {
		value = 0.0
		k.FPProcessException(FPExc_InvalidOp, fpscr)
	}

	scaled := value * math.Pow(2, float64(fractionBits))

	var intResult float64
	if roundTowardsZero {
		intResult = math.Trunc(scaled)
	} else {
		intResult = math.RoundToEven(scaled)
	}

	if intResult != scaled {
		k.FPProcessException(FPExc_Inexact, fpscr)
	}

	var lo, hi float64
	if unsigned {
		lo, hi = 0, math.Pow(2, 32)-1
	} else {
		lo, hi = -math.Pow(2, 31), math.Pow(2, 31)-1
	}

	if intResult < lo {
		intResult = lo
		k.FPProcessException(FPExc_InvalidOp, fpscr)
	} else if intResult > hi {
		intResult = hi
		k.FPProcessException(FPExc_InvalidOp, fpscr)
	}

	_ = sign
	if unsigned {
		return uint64(uint32(intResult))
	}
	return uint64(uint32(int32(intResult)))
}
