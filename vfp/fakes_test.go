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

// fakeCore is a minimal ARMCore for exercising the dispatcher without a
// real ARM integer core attached.
type fakeCore struct {
	gpr          [16]uint32
	privileged   bool
	condResult   bool
	undefinedHit bool
	instrSize    int
}

func newFakeCore() *fakeCore {
	return &fakeCore{privileged: true, condResult: true, instrSize: 4}
}

func (c *fakeCore) CondPassed(cond uint8) bool { return c.condResult }
func (c *fakeCore) InstructionSize() int       { return c.instrSize }
func (c *fakeCore) GPR(n int) uint32           { return c.gpr[n] }
func (c *fakeCore) SetGPR(n int, value uint32) { c.gpr[n] = value }
func (c *fakeCore) Privileged() bool           { return c.privileged }
func (c *fakeCore) RaiseUndefinedInstruction() { c.undefinedHit = true }

// fakeMMU is a flat word-addressed memory with no translation and optional
// injected faults.
type fakeMMU struct {
	mem        map[uint32]uint32
	faultAddrs map[uint32]bool
}

func newFakeMMU() *fakeMMU {
	return &fakeMMU{mem: map[uint32]uint32{}, faultAddrs: map[uint32]bool{}}
}

func (m *fakeMMU) CheckAddressValidity(virt uint32, isLoad bool) (uint32, bool) {
	if m.faultAddrs[virt] {
		return 0, false
	}
	return virt, true
}

func (m *fakeMMU) ReadMemory32(virt, phys uint32) uint32 {
	return m.mem[phys]
}

func (m *fakeMMU) WriteMemory32(virt, phys, value uint32) {
	m.mem[phys] = value
}
