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

// baseAddress resolves Rn per spec section 4.6: PC reads as (PC & ~3) + 8
// when Rn is r15, otherwise the raw GPR value.
func baseAddress(core ARMCore, n int) uint32 {
	if n == 15 {
		return (core.GPR(15) & ^uint32(3)) + 8
	}
	return core.GPR(n)
}

// execVSTR implements VSTR: a single 32- or 64-bit store to
// base +/- imm32, per spec section 4.6.
func (v *VFP) execVSTR(e DecodedEntry, core ARMCore, mmu MMU) StepResult {
	addr := effectiveAddress(core, e)
	if e.Single {
		return v.storeWord(mmu, addr, v.Regs.ReadS(e.D))
	}
	val := v.Regs.ReadD(e.D)
	if r := v.storeWord(mmu, addr, uint32(val)); r != Completed {
		return r
	}
	return v.storeWord(mmu, addr+4, uint32(val>>32))
}

// execVLDR implements VLDR, the load counterpart of execVSTR.
func (v *VFP) execVLDR(e DecodedEntry, core ARMCore, mmu MMU) StepResult {
	addr := effectiveAddress(core, e)
	if e.Single {
		word, r := v.loadWord(mmu, addr)
		if r != Completed {
			return r
		}
		v.Regs.WriteS(e.D, word)
		return Completed
	}
	lo, r := v.loadWord(mmu, addr)
	if r != Completed {
		return r
	}
	hi, r := v.loadWord(mmu, addr+4)
	if r != Completed {
		return r
	}
	v.Regs.WriteD(e.D, uint64(lo)|uint64(hi)<<32)
	return Completed
}

func effectiveAddress(core ARMCore, e DecodedEntry) uint32 {
	base := baseAddress(core, e.N)
	if e.Add {
		return base + e.Imm32
	}
	return base - e.Imm32
}

// execVSTM implements VSTM/VPUSH: a contiguous block store starting at Vd,
// with the per-register increment fixed at 4 (single) or 8 (double) bytes
// regardless of the U bit, per spec section 4.6. Base writeback, when
// requested, is deferred until every register has transferred -- a partial
// transfer that data-aborts midway leaves the base register unmodified.
func (v *VFP) execVSTM(e DecodedEntry, core ARMCore, mmu MMU) StepResult {
	base := baseAddress(core, e.N)
	start := base
	if !e.Add {
		start = base - e.Imm32
	}
	step := uint32(4)
	if !e.Single {
		step = 8
	}
	addr := start
	for i := uint8(0); i < e.Regs; i++ {
		if e.Single {
			if r := v.storeWord(mmu, addr, v.Regs.ReadS(e.D+int(i))); r != Completed {
				return r
			}
		} else {
			val := v.Regs.ReadD(e.D + int(i))
			if r := v.storeWord(mmu, addr, uint32(val)); r != Completed {
				return r
			}
			if r := v.storeWord(mmu, addr+4, uint32(val>>32)); r != Completed {
				return r
			}
		}
		addr += step
	}
	if e.OddRegs {
		// FSTMX: the legacy short form transfers one extra word holding the
		// low half of the following D register.
		lo := uint32(v.Regs.ReadD(e.D + int(e.Regs)))
		if r := v.storeWord(mmu, addr, lo); r != Completed {
			return r
		}
	}
	if e.Wback {
		if e.Add {
			core.SetGPR(e.N, base+e.Imm32)
		} else {
			core.SetGPR(e.N, base-e.Imm32)
		}
	}
	return Completed
}

// execVLDM implements VLDM/VPOP, the load counterpart of execVSTM.
func (v *VFP) execVLDM(e DecodedEntry, core ARMCore, mmu MMU) StepResult {
	base := baseAddress(core, e.N)
	start := base
	if !e.Add {
		start = base - e.Imm32
	}
	step := uint32(4)
	if !e.Single {
		step = 8
	}
	addr := start
	for i := uint8(0); i < e.Regs; i++ {
		if e.Single {
			word, r := v.loadWord(mmu, addr)
			if r != Completed {
				return r
			}
			v.Regs.WriteS(e.D+int(i), word)
		} else {
			lo, r := v.loadWord(mmu, addr)
			if r != Completed {
				return r
			}
			hi, r := v.loadWord(mmu, addr+4)
			if r != Completed {
				return r
			}
			v.Regs.WriteD(e.D+int(i), uint64(lo)|uint64(hi)<<32)
		}
		addr += step
	}
	if e.OddRegs {
		lo, r := v.loadWord(mmu, addr)
		if r != Completed {
			return r
		}
		hi := uint32(v.Regs.ReadD(e.D + int(e.Regs)) >> 32)
		v.Regs.WriteD(e.D+int(e.Regs), uint64(lo)|uint64(hi)<<32)
	}
	if e.Wback {
		if e.Add {
			core.SetGPR(e.N, base+e.Imm32)
		} else {
			core.SetGPR(e.N, base-e.Imm32)
		}
	}
	return Completed
}

func (v *VFP) loadWord(mmu MMU, virt uint32) (uint32, StepResult) {
	phys, ok := mmu.CheckAddressValidity(virt, true)
	if !ok {
		return 0, DataAbort
	}
	return mmu.ReadMemory32(virt, phys), Completed
}

func (v *VFP) storeWord(mmu MMU, virt, value uint32) StepResult {
	phys, ok := mmu.CheckAddressValidity(virt, false)
	if !ok {
		return DataAbort
	}
	mmu.WriteMemory32(virt, phys, value)
	return Completed
}
