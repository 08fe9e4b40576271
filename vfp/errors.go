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

import "fmt"

// StepResult reports the outcome of Execute.
type StepResult int

const (
	// Completed means the instruction ran to completion (or was skipped by
	// a failed condition check) and the PC should advance normally.
	Completed StepResult = iota

	// Undefined means the instruction was reported to the ARM core as an
	// undefined instruction: FPEXC.EN was clear, the encoding had no
	// decoder match, or a register combination was UNPREDICTABLE.
	Undefined

	// DataAbort means a load/store instruction faulted partway through;
	// any registers already transferred remain visible, base writeback
	// was suppressed, and the PC was not advanced. The fault is reported
	// only through this result; no ARMCore method is called for it.
	DataAbort

	// VfpTrap means the instruction completed but raised an IEEE exception
	// whose FPSCR trap-enable bit is set; the ARM core should treat this as
	// a synchronous exception at the next boundary.
	VfpTrap

	// Unimplemented means the decoded opcode is one of the VFP lane-move
	// instructions this emulator deliberately does not implement
	// (VMOVBRC, VMOVBCR, VMOVBRRSS). Callers that want to keep stepping a
	// test program can treat this the same as Undefined; it is reported
	// distinctly so tests can assert on it without conflating the two.
	Unimplemented
)

func (r StepResult) String() string {
	switch r {
	case Completed:
		return "Completed"
	case Undefined:
		return "Undefined"
	case DataAbort:
		return "DataAbort"
	case VfpTrap:
		return "VfpTrap"
	case Unimplemented:
		return "Unimplemented"
	}
	return fmt.Sprintf("StepResult(%d)", int(r))
}

// UnimplementedOpcodeError names the specific opcode behind an
// Unimplemented StepResult.
type UnimplementedOpcodeError struct {
	Opcode Opcode
}

func (e UnimplementedOpcodeError) Error() string {
	return fmt.Sprintf("vfp: %s is recognised but not implemented", e.Opcode)
}
