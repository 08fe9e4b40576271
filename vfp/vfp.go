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

import (
	"github.com/jetsetilly/armvfp/internal/vfplog"
	"github.com/jetsetilly/armvfp/vfp/fpu"
)

// Log is the package-wide diagnostic sink for decode failures and
// unimplemented-opcode hits. It is a package variable, not a per-instance
// field, because a decode failure is detected before a VFP instance is
// necessarily known to the caller (see Step).
var Log = vfplog.NewLogger(1024)

// VFP is a single VFP co-processor instance: the soft-float kernel (C1),
// the extension register bank (C2), the decode table (C3, stateless), the
// execution dispatcher (C5) and load/store unit (C6) all hang off this
// type. One instance models one core's VFP state, per spec section 5.
type VFP struct {
	Kernel *fpu.Kernel
	Regs   Registers
	FPEXC  FPEXC

	// LastFault names the reason behind the most recent Unimplemented
	// StepResult (always an UnimplementedOpcodeError). Execute resets it to
	// nil once an instruction passes its condition and enable checks; a
	// failed condition, a disabled unit or a decode miss in Step leaves it
	// unchanged.
	LastFault error

	cfg Config
}

// New constructs a VFP instance with the given configuration.
func New(cfg Config) *VFP {
	v := &VFP{
		Kernel: fpu.New(),
		cfg:    cfg,
	}
	v.Reset()
	return v
}

// Reset returns the unit to its power-on state: registers cleared, FPSCR
// cleared, and FPEXC.EN seeded from Config.
func (v *VFP) Reset() {
	v.Regs.Reset()
	v.Kernel.Reset()
	v.FPEXC = NewFPEXC(0)
	v.FPEXC.SetEN(v.cfg.EnableOnReset)
}

// Step decodes word and executes it in a single call, logging the decode
// failure case (no ARMCore involvement yet, so there is nothing for
// Execute itself to report) to Log before reporting it to the caller as
// Undefined.
func (v *VFP) Step(word uint32, core ARMCore, mmu MMU) StepResult {
	e, ok := TryDecode(word)
	if !ok {
		Log.Logf(vfplog.Allow, "decode", "no match for instruction word %#08x", word)
		core.RaiseUndefinedInstruction()
		return Undefined
	}
	return v.Execute(e, core, mmu)
}

// snapshot is the save-state representation of a VFP instance.
type snapshot struct {
	Bank  [32]uint32
	FPSCR uint32
	FPEXC uint32
}

// Snapshot captures the unit's mutable architectural state (registers,
// FPSCR, FPEXC) for save-state purposes. Config is deliberately excluded:
// it is construction-time policy, not architectural state.
func (v *VFP) Snapshot() interface{} {
	return snapshot{
		Bank:  v.Regs.Snapshot(),
		FPSCR: v.Kernel.Status.Value(),
		FPEXC: v.FPEXC.Value(),
	}
}

// RestoreSnapshot restores state captured by Snapshot.
func (v *VFP) RestoreSnapshot(s interface{}) {
	snap := s.(snapshot)
	v.Regs.RestoreSnapshot(snap.Bank)
	v.Kernel.Status.SetValue(snap.FPSCR)
	v.FPEXC.SetValue(snap.FPEXC)
}

// readSysreg implements VMRS's register read for the five system registers
// that do not require an ARMCore (FPSID, FPSCR, MVFR0, MVFR1, FPEXC). The
// dispatcher handles the privilege carve-out before calling this.
func (v *VFP) readSysreg(reg int) uint32 {
	switch reg {
	case SysregFPSID:
		return v.cfg.FPSID
	case SysregFPSCR:
		return v.Kernel.Status.Value()
	case SysregMVFR0:
		return 0x11110222
	case SysregMVFR1:
		return 0x00000011
	case SysregFPEXC:
		return v.FPEXC.Value()
	}
	return 0
}

// writeSysreg implements VMSR's register write. Only FPSCR and FPEXC are
// writable; FPSID/MVFR0/MVFR1 silently ignore writes, matching real
// hardware's read-only identification registers.
func (v *VFP) writeSysreg(reg int, value uint32) {
	switch reg {
	case SysregFPSCR:
		v.Kernel.Status.SetValue(value)
	case SysregFPEXC:
		v.FPEXC.SetValue(value)
	}
}
