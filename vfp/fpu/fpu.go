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

// Package fpu implements the IEEE-754 soft-float kernel that underlies the
// VFP arithmetic instructions: rounding, operand unpacking, NaN handling and
// the arithmetic operations themselves. The functions in this package are a
// direct implementation of the ARMv7-M "FP*" pseudocode functions (ARMv7-M
// Architecture Reference Manual, section A2.5) and operate on raw bit
// patterns (uint64, holding either a 32-bit or a 64-bit encoded value)
// rather than on Go's native float32/float64 types, because the rounding
// and exception behaviour required is not what the host FPU does.
//
// Kernel does not own a register file. The register file, and the
// single/double aliasing it provides, belongs to the caller (package vfp).
package fpu

// Kernel is the soft-float execution unit. It carries only the floating-point
// status and control state (FPSCR); all operands and results pass through
// function arguments and return values as raw bit patterns.
type Kernel struct {
	Status FPSCR

	// Trapped latches true when the most recent operation raised an
	// exception whose FPSCR enable bit was set. The ARMv7-M pseudocode
	// treats this case as IMPLEMENTATION DEFINED trap handling; this
	// emulator's dispatcher polls Trapped after each operation and reports
	// StepResult VfpTrap instead, so callers get a usable result rather than
	// an unhandled panic. Callers that invoke Kernel methods directly should
	// clear it first (ClearTrapped).
	Trapped bool
}

// New returns a Kernel with FPSCR reset to zero (round-to-nearest, no
// exceptions flagged, flush-to-zero and default-NaN off).
func New() *Kernel {
	return &Kernel{}
}

// Reset clears the kernel's status register.
func (k *Kernel) Reset() {
	k.Status = FPSCR{}
	k.Trapped = false
}

// ClearTrapped resets the latch read by Trapped, ahead of the next
// operation.
func (k *Kernel) ClearTrapped() {
	k.Trapped = false
}
