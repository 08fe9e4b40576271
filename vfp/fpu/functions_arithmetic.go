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

func (k *Kernel) fpscrFor(fpscrControlled bool) FPSCR {
	if fpscrControlled {
		return k.Status
	}
	return k.StandardFPSCRValue()
}

// FPDiv computes op1 / op2.
//
// "FPDiv()" of "ARMv7-M", page A2-55.
func (k *Kernel) FPDiv(op1, op2 uint64, N int, fpscrControlled bool) uint64 {
	if N != 32 && N != 64 {
		panic("unsupported number of bits in FPDiv()")
	}

	fpscr := k.fpscrFor(fpscrControlled)

	typ1, sign1, value1 := k.FPUnpack(op1, N, fpscr)
	typ2, sign2, value2 := k.FPUnpack(op2, N, fpscr)
	done, result := k.FPProcessNaNs(typ1, typ2, N, op1, op2, fpscr)

	if !done {
		inf1 := typ1 == FPType_Infinity
		inf2 := typ2 == FPType_Infinity
		zero1 := typ1 == FPType_Zero
		zero2 := typ2 == FPType_Zero

		switch {
		case (inf1 && inf2) || (zero1 && zero2):
			result = k.FPDefaultNaN(N)
			k.FPProcessException(FPExc_InvalidOp, fpscr)
		case inf1 || zero2:
			resultSign := sign1 != sign2
			result = k.FPInfinity(resultSign, N)
			if !inf1 {
				k.FPProcessException(FPExc_DivideByZero, fpscr)
			}
		case zero1 || inf2:
			resultSign := sign1 != sign2
			result = k.FPZero(resultSign, N)
		default:
			result = k.FPRound(value1/value2, N, fpscr)
		}
	}

	return result
}

// FPAdd computes op1 + op2.
//
// "FPAdd()" of "ARMv7-M", page A2-54.
func (k *Kernel) FPAdd(op1, op2 uint64, N int, fpscrControlled bool) uint64 {
	if N != 32 && N != 64 {
		panic("unsupported number of bits in FPAdd()")
	}

	fpscr := k.fpscrFor(fpscrControlled)

	typ1, sign1, value1 := k.FPUnpack(op1, N, fpscr)
	typ2, sign2, value2 := k.FPUnpack(op2, N, fpscr)
	done, result := k.FPProcessNaNs(typ1, typ2, N, op1, op2, fpscr)

	if !done {
		inf1 := typ1 == FPType_Infinity
		inf2 := typ2 == FPType_Infinity
		zero1 := typ1 == FPType_Zero
		zero2 := typ2 == FPType_Zero

		switch {
		case inf1 && inf2 && sign1 != sign2:
			result = k.FPDefaultNaN(N)
			k.FPProcessException(FPExc_InvalidOp, fpscr)
		case (inf1 && !sign1) || (inf2 && !sign2):
			result = k.FPInfinity(false, N)
		case (inf1 && sign1) || (inf2 && sign2):
			result = k.FPInfinity(true, N)
		case zero1 && zero2 && sign1 == sign2:
			result = k.FPZero(sign1, N)
		default:
			resultValue := value1 + value2
			if resultValue == 0.0 {
				resultSign := fpscr.RMode() == FPRoundNegInf
				result = k.FPZero(resultSign, N)
			} else {
				result = k.FPRound(resultValue, N, fpscr)
			}
		}
	}

	return result
}

// FPSub computes op1 - op2.
//
// "FPSub()" of "ARMv7-M", page A2-54.
func (k *Kernel) FPSub(op1, op2 uint64, N int, fpscrControlled bool) uint64 {
	if N != 32 && N != 64 {
		panic("unsupported number of bits in FPSub()")
	}

	fpscr := k.fpscrFor(fpscrControlled)

	typ1, sign1, value1 := k.FPUnpack(op1, N, fpscr)
	typ2, sign2, value2 := k.FPUnpack(op2, N, fpscr)
	done, result := k.FPProcessNaNs(typ1, typ2, N, op1, op2, fpscr)

	if !done {
		inf1 := typ1 == FPType_Infinity
		inf2 := typ2 == FPType_Infinity
		zero1 := typ1 == FPType_Zero
		zero2 := typ2 == FPType_Zero

		switch {
		case inf1 && inf2 && sign1 == sign2:
			result = k.FPDefaultNaN(N)
			k.FPProcessException(FPExc_InvalidOp, fpscr)
		case (inf1 && !sign1) || (inf2 && sign2):
			result = k.FPInfinity(false, N)
		case (inf1 && sign1) || (inf2 && !sign2):
			result = k.FPInfinity(true, N)
		case zero1 && zero2 && sign1 != sign2:
			result = k.FPZero(sign1, N)
		default:
			resultValue := value1 - value2
			if resultValue == 0.0 {
				resultSign := fpscr.RMode() == FPRoundNegInf
				result = k.FPZero(resultSign, N)
			} else {
				result = k.FPRound(resultValue, N, fpscr)
			}
		}
	}

	return result
}

// FPMul computes op1 * op2.
//
// "FPMul()" of "ARMv7-M", pages A2-54 to A2-55.
func (k *Kernel) FPMul(op1, op2 uint64, N int, fpscrControlled bool) uint64 {
	if N != 32 && N != 64 {
		panic("unsupported number of bits in FPMul()")
	}

	fpscr := k.fpscrFor(fpscrControlled)

	typ1, sign1, value1 := k.FPUnpack(op1, N, fpscr)
	typ2, sign2, value2 := k.FPUnpack(op2, N, fpscr)
	done, result := k.FPProcessNaNs(typ1, typ2, N, op1, op2, fpscr)

	if !done {
		inf1 := typ1 == FPType_Infinity
		inf2 := typ2 == FPType_Infinity
		zero1 := typ1 == FPType_Zero
		zero2 := typ2 == FPType_Zero

		switch {
		case (inf1 && zero2) || (zero1 && inf2):
			result = k.FPDefaultNaN(N)
			k.FPProcessException(FPExc_InvalidOp, fpscr)
		case inf1 || inf2:
			resultSign := sign1 != sign2
			result = k.FPInfinity(resultSign, N)
		case zero1 || zero2:
			resultSign := sign1 != sign2
			result = k.FPZero(resultSign, N)
		default:
			result = k.FPRound(value1*value2, N, fpscr)
		}
	}

	return result
}

// FPSqrt computes the square root of op.
//
// "FPSqrt()" of "ARMv7-M", page A2-56.
func (k *Kernel) FPSqrt(op uint64, N int, fpscrControlled bool) uint64 {
	if N != 32 && N != 64 {
		panic("unsupported number of bits in FPSqrt()")
	}

	fpscr := k.fpscrFor(fpscrControlled)

	typ, sign, value := k.FPUnpack(op, N, fpscr)

	var result uint64
	switch {
	case typ == FPType_SNaN || typ == FPType_QNaN:
		result = k.FPProcessNaN(typ, N, op, fpscr)
	case typ == FPType_Zero:
		result = k.FPZero(sign, N)
	case typ == FPType_Infinity && !sign:
		result = k.FPInfinity(false, N)
	case sign:
		result = k.FPDefaultNaN(N)
		k.FPProcessException(FPExc_InvalidOp, fpscr)
	default:
		result = k.FPRound(math.Sqrt(value), N, fpscr)
	}

	return result
}

// FPMulAdd computes addend + (op1 * op2) with a single rounding step. The
// VNMLA/VNMLS/VNMUL sign-flip variants are built by the caller (package
// vfp's dispatcher) composing this with FPNeg, rather than threading a
// negate-which-operand flag through the kernel.

//
// "FPMulAdd()" of "ARMv7-M", pages A2-55 to A2-56.
func (k *Kernel) FPMulAdd(addend, op1, op2 uint64, N int, fpscrControlled bool) uint64 {
	if N != 32 && N != 64 {
		panic("unsupported number of bits in FPMulAdd()")
	}

	fpscr := k.fpscrFor(fpscrControlled)

	typA, signA, valueA := k.FPUnpack(addend, N, fpscr)
	typ1, sign1, value1 := k.FPUnpack(op1, N, fpscr)
	typ2, sign2, value2 := k.FPUnpack(op2, N, fpscr)

	inf1 := typ1 == FPType_Infinity
	inf2 := typ2 == FPType_Infinity
	zero1 := typ1 == FPType_Zero
	zero2 := typ2 == FPType_Zero

	done, result := k.FPProcessNaNs3(typA, typ1, typ2, N, addend, op1, op2, fpscr)

	if typA == FPType_QNaN && ((inf1 && zero2) || (zero1 && inf2)) {
		result = k.FPDefaultNaN(N)
		k.FPProcessException(FPExc_InvalidOp, fpscr)
		done = true
	}

	if !done {
		infA := typA == FPType_Infinity
		zeroA := typA == FPType_Zero

		// sign and type the product would have if it did not itself cause
		// an Invalid Operation
		signP := sign1 != sign2
		infP := inf1 || inf2
		zeroP := zero1 || zero2

		switch {
		case (inf1 && zero2) || (zero1 && inf2) || (infA && infP && signA != signP):
			result = k.FPDefaultNaN(N)
			k.FPProcessException(FPExc_InvalidOp, fpscr)
		case (infA && !signA) || (infP && !signP):
			result = k.FPInfinity(false, N)
		case (infA && signA) || (infP && signP):
			result = k.FPInfinity(true, N)
		case zeroA && zeroP && signA == signP:
			result = k.FPZero(signA, N)
		default:
			resultValue := value1*value2 + valueA
			if resultValue == 0.0 {
				resultSign := fpscr.RMode() == FPRoundNegInf
				result = k.FPZero(resultSign, N)
			} else {
				result = k.FPRound(resultValue, N, fpscr)
			}
		}
	}

	return result
}
