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

// Config carries the construction-time choices for a VFP instance. These
// are not architectural state (they never change after New) and so are
// kept apart from Status/Registers, which do get reset and snapshotted.
type Config struct {
	// FPSID is the read-only identification value reported by VMRS FPSID.
	// The default, 0x41023000, has implementer 0x41 (ARM) and
	// subarchitecture field 0x02 (per original_source's sub-architecture
	// identifiers, see SPEC_FULL.md section 12).
	FPSID uint32

	// EnableOnReset seeds FPEXC.EN so a freshly constructed unit is usable
	// without requiring the host core to perform its own enable sequence
	// first. Real hardware resets with EN clear; tests that want to
	// exercise the FPEXC.EN=0 -> Undefined path should set this false.
	EnableOnReset bool

	// EnforcePrivilege gates FPSID/FPEXC access (via VMSR/VMRS) by the
	// ARMCore's reported privilege level, per spec step 4.4(2). Disabling
	// this is useful for standalone disassembler/test harnesses that have
	// no notion of privilege level and always report privileged.
	EnforcePrivilege bool
}

// Default returns the configuration used when none is supplied: a VFPv3
// FPSID, the unit enabled at reset (so callers can start issuing VFP
// instructions immediately), and privilege enforcement on.
func Default() Config {
	return Config{
		FPSID:            0x41023000,
		EnableOnReset:    true,
		EnforcePrivilege: true,
	}
}
