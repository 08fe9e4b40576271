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

// VFPExpandImm expands the 8-bit immediate used by VMOV (immediate) into
// its full N-bit encoding: NOT(imm8<6>):Replicate(imm8<6>,E-3):imm8<5:4> in
// the exponent field, imm8<3:0>:Zeros(F-4) in the fraction field.
//
// "VFPExpandImm()" of "ARMv7-M", page A6-166.
func (k *Kernel) VFPExpandImm(imm8 uint8, N int) uint64 {
	E, F := bitWidths(N)

	bit6 := uint64((imm8 >> 6) & 0x1)
	notBit6 := bit6 ^ 0x1

	exp := notBit6 << (E - 1)
	for i := 0; i < E-3; i++ {
		exp |= bit6 << (E - 2 - i)
	}
	exp |= uint64((imm8 & 0x30) >> 4)

	frac := uint64(imm8&0x0f) << (F - 4)

	sign := uint64((imm8 >> 7) & 0x1)
	return (sign << (N - 1)) | (exp << F) | frac
}
