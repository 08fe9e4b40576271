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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVSTRSingle(t *testing.T) {
	v := New(Default())
	core := newFakeCore()
	mmu := newFakeMMU()
	core.gpr[3] = 0x1000

	e, ok := TryDecode(0xED831A10) // VSTR Sd=2, Rn=3, U=1, imm8=0x10 (offset 0x40)
	require.True(t, ok)

	v.Regs.WriteS(2, 0xdeadbeef)
	result := v.execVSTR(e, core, mmu)

	require.Equal(t, Completed, result)
	require.Equal(t, uint32(0xdeadbeef), mmu.mem[0x1040])
}

func TestVLDRDouble(t *testing.T) {
	v := New(Default())
	core := newFakeCore()
	mmu := newFakeMMU()
	core.gpr[4] = 0x2000

	e, ok := TryDecode(0xED141B08) // VLDR Dd=1, Rn=4, U=0, imm8=0x08 (offset 0x20)
	require.True(t, ok)

	addr := uint32(0x2000 - 0x20)
	mmu.mem[addr] = 0x11111111
	mmu.mem[addr+4] = 0x22222222

	result := v.execVLDR(e, core, mmu)

	require.Equal(t, Completed, result)
	require.Equal(t, uint64(0x22222222<<32|0x11111111), v.Regs.ReadD(1))
}

func TestVLDRDataAbort(t *testing.T) {
	v := New(Default())
	core := newFakeCore()
	mmu := newFakeMMU()
	core.gpr[3] = 0x1000

	e, ok := TryDecode(0xED931A10)
	require.True(t, ok)
	// VLDR S2, [R3, #0x40]: fault the source address.
	mmu.faultAddrs[0x1040] = true

	result := v.execVLDR(e, core, mmu)
	require.Equal(t, DataAbort, result)
}

func TestVPushSingleBlock(t *testing.T) {
	v := New(Default())
	core := newFakeCore()
	mmu := newFakeMMU()
	core.gpr[13] = 0x2000 // sp

	e, ok := TryDecode(0xED6D0A02) // VPUSH Sd=1, 2 registers, sp-relative
	require.True(t, ok)
	require.Equal(t, VPUSH, e.Opcode)

	v.Regs.WriteS(1, 0xaaaaaaaa)
	v.Regs.WriteS(2, 0xbbbbbbbb)

	result := v.execVSTM(e, core, mmu)

	require.Equal(t, Completed, result)
	require.Equal(t, uint32(0xaaaaaaaa), mmu.mem[0x1ff8])
	require.Equal(t, uint32(0xbbbbbbbb), mmu.mem[0x1ffc])
	require.Equal(t, uint32(0x1ff8), core.gpr[13])
}

func TestVSTMDataAbortSuppressesWriteback(t *testing.T) {
	v := New(Default())
	core := newFakeCore()
	mmu := newFakeMMU()
	core.gpr[13] = 0x2000

	e, ok := TryDecode(0xED6D0A02)
	require.True(t, ok)

	mmu.faultAddrs[0x1ffc] = true // second register's address faults

	result := v.execVSTM(e, core, mmu)

	require.Equal(t, DataAbort, result)
	require.Equal(t, uint32(0x2000), core.gpr[13]) // writeback must not have happened
	_, wrote := mmu.mem[0x1ffc]
	require.False(t, wrote)
}

func TestVSTMDoubleOddRegsFSTMX(t *testing.T) {
	v := New(Default())
	core := newFakeCore()
	mmu := newFakeMMU()
	core.gpr[13] = 0x3000

	e := DecodedEntry{
		Opcode: VSTM, Single: false, D: 0, N: 13,
		Add: true, Wback: true, Regs: 1, OddRegs: true, Imm32: 0xc,
	}

	v.Regs.WriteD(0, 0x1111111122222222)
	v.Regs.WriteD(1, 0x33333333)

	result := v.execVSTM(e, core, mmu)

	require.Equal(t, Completed, result)
	require.Equal(t, uint32(0x22222222), mmu.mem[0x3000])
	require.Equal(t, uint32(0x11111111), mmu.mem[0x3004])
	require.Equal(t, uint32(0x33333333), mmu.mem[0x3008])
}

func TestVLDMSingleBlockWithWriteback(t *testing.T) {
	v := New(Default())
	core := newFakeCore()
	mmu := newFakeMMU()
	core.gpr[0] = 0x4000

	e := DecodedEntry{
		Opcode: VLDM, Single: true, D: 5, N: 0,
		Add: true, Wback: true, Regs: 3, Imm32: 0xc,
	}

	mmu.mem[0x4000] = 1
	mmu.mem[0x4004] = 2
	mmu.mem[0x4008] = 3

	result := v.execVLDM(e, core, mmu)

	require.Equal(t, Completed, result)
	require.Equal(t, uint32(1), v.Regs.ReadS(5))
	require.Equal(t, uint32(2), v.Regs.ReadS(6))
	require.Equal(t, uint32(3), v.Regs.ReadS(7))
	require.Equal(t, uint32(0x400c), core.gpr[0])
}

func TestBaseAddressPCSpecialCase(t *testing.T) {
	core := newFakeCore()
	core.gpr[15] = 0x1003
	require.Equal(t, uint32(0x1000+8), baseAddress(core, 15))

	core.gpr[2] = 0x500
	require.Equal(t, uint32(0x500), baseAddress(core, 2))
}
