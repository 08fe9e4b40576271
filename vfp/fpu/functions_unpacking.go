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

import (
	"math"
	"math/bits"
)

type FPType int

const (
	FPType_Nonzero FPType = iota
	FPType_Zero
	FPType_Infinity
	FPType_QNaN
	FPType_SNaN
)

// FPUnpack decodes a raw bit pattern into its type, sign, and real-number
// value. Only single (N=32) and double (N=64) precision are supported; the
// VFP opcode set this kernel serves never produces a half-precision operand.
//
// "FPUnpack()" of "ARMv7-M", pages A2-47 to A2-49.
func (k *Kernel) FPUnpack(fpval uint64, N int, fpscr FPSCR) (FPType, bool, float64) {
	E, F := bitWidths(N)
	if N != 32 && N != 64 {
		panic("unsupported number of bits in FPUnpack()")
	}

	sign := fpval>>(N-1) == 1
	expMask := uint64((1 << E) - 1)
	exp := (fpval >> F) & expMask
	frac := fpval & ((uint64(1) << F) - 1)

	var typ FPType
	var value float64

	bias := (1 << (E - 1)) - 1

	switch {
	case bits.OnesCount64(exp) == 0:
		// "Produce zero if value is zero or flush-to-zero is selected"
		if bits.OnesCount64(frac) == 0 || fpscr.FZ() {
			typ = FPType_Zero
			value = 0.0
			if bits.OnesCount64(frac) != 0 {
				// "denormalised input flushed to zero"
				k.FPProcessException(FPExc_InputDenorm, fpscr)
			}
		} else {
			value = math.Pow(2, float64(1-bias)) * (float64(frac) * math.Pow(2, float64(-F)))
			typ = FPType_Nonzero
		}
	case bits.OnesCount64(exp) == E:
		if bits.OnesCount64(frac) == 0 {
			typ = FPType_Infinity
			value = math.Inf(1)
		} else {
			if frac>>(F-1) == 0x1 {
				typ = FPType_QNaN
			} else {
				typ = FPType_SNaN
			}
			value = 0.0
		}
	default:
		value = math.Pow(2, float64(int(exp)-bias)) * (1.0 + float64(frac)*math.Pow(2, float64(-F)))
		typ = FPType_Nonzero
	}

	if sign {
		value *= -1
	}

	return typ, sign, value
}
