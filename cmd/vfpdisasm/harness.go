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

package main

// harnessStackInit is the value newHarnessCore seeds r13 with, so a traced
// VPUSH/VPOP doesn't immediately fault against address zero.
const harnessStackInit = 0x10000

// harnessCore is a minimal ARMCore sufficient to drive the vfp package in
// isolation: every condition code except 0xf (NV) passes (the trace already
// records the instruction's own Cond field for inspection), PC starts at
// zero and is advanced by four bytes a step by the vfp package's own PC
// update (Undefined and DataAbort steps leave it in place), and the
// sixteen general
// registers are a flat array, with r13 seeded to harnessStackInit by
// newHarnessCore.
type harnessCore struct {
	privileged bool
	gpr        [16]uint32
}

func newHarnessCore(privileged bool) *harnessCore {
	c := &harnessCore{privileged: privileged}
	c.gpr[13] = harnessStackInit
	return c
}

func (c *harnessCore) CondPassed(cond uint8) bool {
	// 0xf (NV) is the one ARM condition code that never passes; everything
	// else is accepted unconditionally since this harness has no flags
	// register to evaluate against.
	return cond != 0xf
}

func (c *harnessCore) InstructionSize() int {
	return 4
}

func (c *harnessCore) GPR(n int) uint32 {
	return c.gpr[n]
}

func (c *harnessCore) SetGPR(n int, value uint32) {
	c.gpr[n] = value
}

func (c *harnessCore) Privileged() bool {
	return c.privileged
}

func (c *harnessCore) RaiseUndefinedInstruction() {
}

// harnessMMU backs the load/store unit with a flat byte-addressable
// memory big enough for any VSTM/VLDM block this harness is likely to
// trace; addresses outside it fault rather than panic, so a malformed
// fuzzed word produces a DataAbort trace line instead of crashing the
// whole run.
type harnessMMU struct {
	mem [1 << 20]byte
}

func newHarnessMMU() *harnessMMU {
	return &harnessMMU{}
}

func (m *harnessMMU) CheckAddressValidity(virt uint32, isLoad bool) (uint32, bool) {
	if virt%4 != 0 {
		return 0, false
	}
	if uint64(virt)+4 > uint64(len(m.mem)) {
		return 0, false
	}
	return virt, true
}

func (m *harnessMMU) ReadMemory32(virt, phys uint32) uint32 {
	return uint32(m.mem[phys]) | uint32(m.mem[phys+1])<<8 | uint32(m.mem[phys+2])<<16 | uint32(m.mem[phys+3])<<24
}

func (m *harnessMMU) WriteMemory32(virt, phys, value uint32) {
	m.mem[phys] = byte(value)
	m.mem[phys+1] = byte(value >> 8)
	m.mem[phys+2] = byte(value >> 16)
	m.mem[phys+3] = byte(value >> 24)
}
