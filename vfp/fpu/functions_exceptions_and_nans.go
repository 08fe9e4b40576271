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

type FPException int

const (
	FPExc_InvalidOp FPException = iota
	FPExc_DivideByZero
	FPExc_Overflow
	FPExc_Underflow
	FPExc_Inexact
	FPExc_InputDenorm
)

// exceptionBit returns the bit index of the cumulative flag, and of its
// matching trap-enable bit, for an FPException. Five of the six are evenly
// spaced (enable = cumulative+8); IDC/IDE break the pattern (7 and 15).
func exceptionBit(exception FPException) (cumulative, enable uint) {
	if exception == FPExc_InputDenorm {
		return 7, 15
	}
	b := uint(exception)
	return b, b + 8
}

// FPProcessException sets the sticky cumulative bit for exception and, if
// the corresponding FPSCR enable bit is set, also sets Trapped.
//
// "FPProcessException()" of "ARMv7-M", page A2-49.
func (k *Kernel) FPProcessException(exception FPException, fpscr FPSCR) {
	cumulative, enable := exceptionBit(exception)
	k.Status.value |= 0x1 << cumulative
	if fpscr.value>>enable&0x1 == 0x1 {
		k.Trapped = true
	}
}

func (k *Kernel) FPProcessNaN(typ FPType, N int, op uint64, fpscr FPSCR) uint64 {
	// page A2-49 of "ARMv7-M"

	var topfrac int

	switch N {
	case 32:
		topfrac = 22
	case 64:
		topfrac = 51
	default:
		panic("unsupported number of bits in FPProcessNaN()")
	}

	result := op

	if typ == FPType_SNaN {
		result = result | (0x01 << topfrac)
		k.FPProcessException(FPExc_InvalidOp, fpscr)
	}

	if fpscr.DN() {
		result = k.FPDefaultNaN(N)
	}

	return result
}

func (k *Kernel) FPProcessNaNs(typ1 FPType, typ2 FPType, N int, op1 uint64, op2 uint64, fpscr FPSCR) (bool, uint64) {
	// page A2-49 to A2-50 of "ARMv7-M"

	var done bool
	var result uint64

	if typ1 == FPType_SNaN {
		done = true
		result = k.FPProcessNaN(typ1, N, op1, fpscr)
	} else if typ2 == FPType_SNaN {
		done = true
		result = k.FPProcessNaN(typ2, N, op2, fpscr)
	} else if typ1 == FPType_QNaN {
		done = true
		result = k.FPProcessNaN(typ1, N, op1, fpscr)
	} else if typ2 == FPType_QNaN {
		done = true
		result = k.FPProcessNaN(typ2, N, op2, fpscr)
	}

	return done, result
}

func (k *Kernel) FPProcessNaNs3(typ1 FPType, typ2 FPType, typ3 FPType, N int,
	op1 uint64, op2 uint64, op3 uint64, fpscr FPSCR,
) (bool, uint64) {
	// page A2-50 of "ARMv7-M"

	var done bool
	var result uint64

	if typ1 == FPType_SNaN {
		done = true
		result = k.FPProcessNaN(typ1, N, op1, fpscr)
	} else if typ2 == FPType_SNaN {
		done = true
		result = k.FPProcessNaN(typ2, N, op2, fpscr)
	} else if typ3 == FPType_SNaN {
		done = true
		result = k.FPProcessNaN(typ3, N, op3, fpscr)
	} else if typ1 == FPType_QNaN {
		done = true
		result = k.FPProcessNaN(typ1, N, op1, fpscr)
	} else if typ2 == FPType_QNaN {
		done = true
		result = k.FPProcessNaN(typ2, N, op2, fpscr)
	} else if typ3 == FPType_QNaN {
		done = true
		result = k.FPProcessNaN(typ3, N, op3, fpscr)
	}

	return done, result
}
