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

// sysreg identifiers for VMRS/VMSR, per the raw "reg" field of the
// instruction word.
const (
	SysregFPSID = 0
	SysregFPSCR = 1
	SysregMVFR1 = 6
	SysregMVFR0 = 7
	SysregFPEXC = 8
)

// FPEXC is the Floating-point Exception register. Only the EN bit (30) is
// modelled; the subarchitecture-defined exception-summary bits (IDF, IXF,
// ...) are carried as opaque storage since nothing in this emulator's scope
// produces them.
type FPEXC struct {
	value uint32
}

func NewFPEXC(value uint32) FPEXC { return FPEXC{value: value} }

func (e FPEXC) Value() uint32     { return e.value }
func (e *FPEXC) SetValue(v uint32) { e.value = v }

func (e FPEXC) EN() bool { return e.value&0x40000000 == 0x40000000 }

func (e *FPEXC) SetEN(set bool) {
	e.value &= 0xbfffffff
	if set {
		e.value |= 0x40000000
	}
}

// Registers is the 32-entry, 32-bit extension register bank (C2). Single
// and double precision are two views over the same storage: Sn is entry n;
// Dn occupies entries 2n (low word) and 2n+1 (high word), matching the
// architecturally defined endianness regardless of host byte order.
//
// Grounded on JetSetIlly-Gopher2600's hardware/memory/cartridge/arm/fpu.FPU,
// which keeps the identical [32]uint32 layout and the same d = Registers[2n]
// / Registers[2n+1] pairing convention seen throughout thumb2_fpu.go -- the
// difference here is that the register file is its own component (C2),
// addressed only by index, rather than bundled with the soft-float kernel.
type Registers struct {
	bank [32]uint32
}

// ReadS returns the 32-bit value held in Sn.
func (r *Registers) ReadS(n int) uint32 {
	return r.bank[n]
}

// WriteS stores value into Sn.
func (r *Registers) WriteS(n int, value uint32) {
	r.bank[n] = value
}

// ReadD returns the 64-bit value held in Dn, with the low word at S(2n) and
// the high word at S(2n+1).
func (r *Registers) ReadD(n int) uint64 {
	lo := uint64(r.bank[2*n])
	hi := uint64(r.bank[2*n+1])
	return lo | (hi << 32)
}

// WriteD stores value into Dn, splitting it across S(2n) (low) and S(2n+1)
// (high).
func (r *Registers) WriteD(n int, value uint64) {
	r.bank[2*n] = uint32(value)
	r.bank[2*n+1] = uint32(value >> 32)
}

// Reset clears every extension register to zero.
func (r *Registers) Reset() {
	r.bank = [32]uint32{}
}

// Snapshot returns a copy of the register bank for save-state purposes.
func (r *Registers) Snapshot() [32]uint32 {
	return r.bank
}

// RestoreSnapshot replaces the register bank wholesale.
func (r *Registers) RestoreSnapshot(bank [32]uint32) {
	r.bank = bank
}
