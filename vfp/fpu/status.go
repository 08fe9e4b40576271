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

// FPSCR is the Floating-point Status and Control Register.
//
// "A2.5.3 Floating-point Status and Control Register, FPSCR" of "ARMv7-M",
// page A2-37.
type FPSCR struct {
	value uint32
}

// NewFPSCR builds an FPSCR from its raw 32-bit encoding, as read back via
// VMRS or restored from a snapshot.
func NewFPSCR(value uint32) FPSCR {
	return FPSCR{value: value}
}

// Value returns the raw 32-bit encoding, as written by VMSR or saved to a
// snapshot.
func (fpscr FPSCR) Value() uint32 {
	return fpscr.value
}

func (fpscr *FPSCR) SetValue(value uint32) {
	fpscr.value = value
}

// condition flags, bits 31:28

func (fpscr *FPSCR) N() bool { return fpscr.value&0x80000000 == 0x80000000 }
func (fpscr *FPSCR) Z() bool { return fpscr.value&0x40000000 == 0x40000000 }
func (fpscr *FPSCR) C() bool { return fpscr.value&0x20000000 == 0x20000000 }
func (fpscr *FPSCR) V() bool { return fpscr.value&0x10000000 == 0x10000000 }

// NZCV returns the four condition bits packed as the low nibble of a byte,
// in N:Z:C:V order (bit 3 = N).
func (fpscr *FPSCR) NZCV() uint8 {
	return uint8(fpscr.value >> 28)
}

// SetNZCV packs the low nibble of nzcv (N:Z:C:V) into bits 31:28.
func (fpscr *FPSCR) SetNZCV(nzcv uint8) {
	fpscr.value &= 0x0fffffff
	fpscr.value |= uint32(nzcv&0xf) << 28
}

func (fpscr *FPSCR) AHP() bool {
	// bit 26
	return fpscr.value&0x04000000 == 0x04000000
}

func (fpscr *FPSCR) SetAHP(set bool) {
	// bit 26
	fpscr.value &= 0xfbffffff
	if set {
		fpscr.value |= 0x04000000
	}
}

func (fpscr *FPSCR) DN() bool {
	// bit 25
	return fpscr.value&0x02000000 == 0x02000000
}

func (fpscr *FPSCR) SetDN(set bool) {
	// bit 25
	fpscr.value &= 0xfdffffff
	if set {
		fpscr.value |= 0x02000000
	}
}

func (fpscr *FPSCR) FZ() bool {
	// bit 24
	return fpscr.value&0x01000000 == 0x01000000
}

func (fpscr *FPSCR) SetFZ(set bool) {
	// bit 24
	fpscr.value &= 0xfeffffff
	if set {
		fpscr.value |= 0x01000000
	}
}

type FPRounding byte

// List of valid rounding methods for FPU
const (
	FPRoundNearest FPRounding = 0b00
	FPRoundPlusInf FPRounding = 0b01
	FPRoundNegInf  FPRounding = 0b10
	FPRoundZero    FPRounding = 0b11
)

func (fpscr *FPSCR) RMode() FPRounding {
	// bits 22-23
	return FPRounding((fpscr.value & 0x00c00000) >> 22)
}

func (fpscr *FPSCR) SetRMode(mode FPRounding) {
	// bits 22-23
	fpscr.value &= 0xff3fffff
	fpscr.value |= uint32(mode) << 22
}

// cumulative exception bits. IDC sits at bit 7 rather than bit 5 -- the
// cumulative/enable bits are not evenly spaced, unlike a naive reading of
// the FPException ordering would suggest (see exceptionBit in
// functions_exceptions_and_nans.go).
func (fpscr *FPSCR) IOC() bool { return fpscr.value&0x00000001 == 0x00000001 }
func (fpscr *FPSCR) DZC() bool { return fpscr.value&0x00000002 == 0x00000002 }
func (fpscr *FPSCR) OFC() bool { return fpscr.value&0x00000004 == 0x00000004 }
func (fpscr *FPSCR) UFC() bool { return fpscr.value&0x00000008 == 0x00000008 }
func (fpscr *FPSCR) IXC() bool { return fpscr.value&0x00000010 == 0x00000010 }
func (fpscr *FPSCR) IDC() bool { return fpscr.value&0x00000080 == 0x00000080 }

func (fpscr *FPSCR) SetUFC(set bool) {
	// bit 3
	fpscr.value &= 0xfffffff7
	if set {
		fpscr.value |= 0x00000008
	}
}

// Kernel.StandardFPSCRValue returns the control bits used by operations
// that are not themselves FPSCR-controlled (AHP excepted), per "A2.5.1
// The standard FPSCR value" of "ARMv7-M", page A2-53.
func (k *Kernel) StandardFPSCRValue() FPSCR {
	var fpscr FPSCR
	fpscr.SetDN(true)
	fpscr.SetFZ(true)
	fpscr.SetAHP(k.Status.AHP())
	return fpscr
}
