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

// Package vfp implements a VFP (Vector Floating Point) co-processor,
// decoding and executing VFPv2/VFPv3 instructions on behalf of a host ARM
// core. The host core and its memory system are external collaborators,
// reached only through the narrow interfaces in this file -- this package
// never fetches instructions, evaluates ARM condition flags itself, or
// walks page tables.
package vfp

// ARMCore is the subset of the surrounding ARM integer core that the VFP
// unit depends on: condition evaluation, instruction size, general
// register access for the core<->VFP transfer instructions, and the
// undefined-instruction trap.
//
// Grounded on JetSetIlly-Gopher2600's arm.state, whose gprs and condition
// flags thumb2_fpu.go reaches into directly; here that coupling becomes an
// explicit interface so this package never imports the ARM core package.
type ARMCore interface {
	// CondPassed evaluates a 4-bit ARM condition code against the core's
	// current NZCV flags.
	CondPassed(cond uint8) bool

	// InstructionSize reports the size in bytes of the instruction that was
	// just decoded (4 for ARM, 2 for Thumb), used to advance the PC.
	InstructionSize() int

	// GPR reads general-purpose register n (0..15). n==15 returns the raw
	// PC, the address of the current instruction; the vfp package adds the
	// ARM-state read-ahead of 8 itself where it needs it.
	GPR(n int) uint32

	// SetGPR writes general-purpose register n (0..15).
	SetGPR(n int, value uint32)

	// Privileged reports whether the core is currently in a privileged
	// execution mode, consulted for the FPSID/FPEXC access carve-out.
	Privileged() bool

	// RaiseUndefinedInstruction signals an undefined-instruction exception
	// to the core.
	RaiseUndefinedInstruction()
}

// MMU is the subset of the simulator's memory system that the load/store
// unit (C6) depends on.
type MMU interface {
	// CheckAddressValidity translates virt and reports whether the access
	// is permitted. ok is false on a fault (alignment, permission, or
	// unmapped); phys is meaningless in that case.
	CheckAddressValidity(virt uint32, isLoad bool) (phys uint32, ok bool)

	// ReadMemory32 reads the 32-bit word at the given virtual/physical
	// address pair, as resolved by a prior CheckAddressValidity call.
	ReadMemory32(virt, phys uint32) uint32

	// WriteMemory32 writes the 32-bit word at the given virtual/physical
	// address pair.
	WriteMemory32(virt, phys, value uint32)
}
