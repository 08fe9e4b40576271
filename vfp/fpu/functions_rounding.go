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

func powInt(a, b int) int {
	return int(math.Pow(float64(a), float64(b)))
}

// FPRound rounds and encodes a real-number result to the destination
// format, processing Overflow, Underflow and Inexact exceptions and
// flush-to-zero along the way.
//
// "FPRound()" of "ARMv7-M", pages A2-50 to A2-52.
func (k *Kernel) FPRound(value float64, N int, fpscr FPSCR) uint64 {
	if value == 0.0 {
		panic("FPRound() should never have been called with a value of 0.0")
	}

	E, F := bitWidths(N)
	minExp := 2 - powInt(2, E-1)

	sign := value < 0.0
	mantissa := value
	if sign {
		mantissa = -mantissa
	}

	exponent := 0
	for mantissa < 1.0 {
		mantissa *= 2.0
		exponent--
	}
	for mantissa >= 2.0 {
		mantissa /= 2.0
		exponent++
	}

	if fpscr.FZ() && exponent < minExp {
		k.Status.SetUFC(true)
		return k.FPZero(sign, N)
	}

	biasedExp := exponent - minExp + 1
	if biasedExp < 0 {
		biasedExp = 0
	}
	if biasedExp == 0 {
		mantissa /= math.Pow(2, float64(minExp-exponent))
	}

	p2F := powInt(2, F)

	intMant := int(mantissa * float64(p2F))
	roundingError := (mantissa * float64(p2F)) - float64(intMant)

	if biasedExp == 0 && roundingError != 0.0 {
		k.FPProcessException(FPExc_Underflow, fpscr)
	}

	var roundUp bool
	var overflowToInf bool
	switch fpscr.RMode() {
	case FPRoundNearest:
		roundUp = roundingError > 0.5 || (roundingError == 0.5 && intMant&0x01 == 0x01)
		overflowToInf = true
	case FPRoundPlusInf:
		roundUp = roundingError != 0.0 && !sign
		overflowToInf = !sign
	case FPRoundNegInf:
		roundUp = roundingError != 0.0 && sign
		overflowToInf = sign
	case FPRoundZero:
		roundUp = false
		overflowToInf = false
	}

	if roundUp {
		intMant++
		if intMant == p2F {
			// rounded up from denormalised to normalised
			biasedExp = 1
		}
		if intMant == powInt(2, F+1) {
			// rounded up to next exponent
			biasedExp++
			intMant /= 2
		}
	}

	var result uint64
	if biasedExp >= powInt(2, E)-1 {
		if overflowToInf {
			result = k.FPInfinity(sign, N)
		} else {
			result = k.FPMaxNormal(sign, N)
		}
		k.FPProcessException(FPExc_Overflow, fpscr)
		roundingError = 1.0 // ensure an inexact exception also occurs
	} else {
		result = signBit(sign, N) | uint64(biasedExp<<F) | uint64(intMant&(p2F-1))
	}

	if roundingError != 0.0 {
		k.FPProcessException(FPExc_Inexact, fpscr)
	}

	return result
}
