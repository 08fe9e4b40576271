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
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// These end-to-end scenarios exercise one decode-through-execute pass per
// instruction word, the same words used to illustrate the opcode table.
// The register operands below are the ones the words actually address
// bit-for-bit (per Vd/Vn/Vm's extension-bit placement); see DESIGN.md's
// "Resolved Open Question: register-field values in spec.md's worked
// examples" for why this differs from a naive reading of the mnemonic.

func TestScenarioVMLASinglePrecision(t *testing.T) {
	v := New(Default())
	core := newFakeCore()

	e, ok := TryDecode(0xEE410A02)
	require.True(t, ok)
	require.Equal(t, VMLA, e.Opcode)
	e.Cond = 0xe

	// word addresses Sd=S1 (accumulator), Sn=S2, Sm=S4.
	v.Regs.WriteS(1, math.Float32bits(1.0))
	v.Regs.WriteS(2, math.Float32bits(2.0))
	v.Regs.WriteS(4, math.Float32bits(3.0))

	result := v.Execute(e, core, newFakeMMU())

	require.Equal(t, Completed, result)
	require.Equal(t, float32(7.0), math.Float32frombits(v.Regs.ReadS(1)))
	require.False(t, v.Kernel.Status.IXC())
}

func TestScenarioVMLADoublePrecision(t *testing.T) {
	v := New(Default())
	core := newFakeCore()

	e, ok := TryDecode(0xEE011B00)
	require.True(t, ok)
	require.Equal(t, VMLA, e.Opcode)
	e.Cond = 0xe

	// word addresses Dd=D1 (accumulator and first multiplicand), Dn=D1,
	// Dm=D0.
	v.Regs.WriteD(1, math.Float64bits(2.5))
	v.Regs.WriteD(0, math.Float64bits(1.5))

	result := v.Execute(e, core, newFakeMMU())

	require.Equal(t, Completed, result)
	require.Equal(t, 6.25, math.Float64frombits(v.Regs.ReadD(1)))
	require.False(t, v.Kernel.Status.IXC())
}

func TestScenarioVCMPSignallingNaN(t *testing.T) {
	v := New(Default())
	core := newFakeCore()

	e, ok := TryDecode(0xEEF40A40)
	require.True(t, ok)
	require.Equal(t, VCMP, e.Opcode)
	e.Cond = 0xe

	// word addresses Sd=S1, Sm=S0.
	const sNaN = 0x7fa00000 // signalling NaN: exponent all-ones, MSB fraction bit clear
	v.Regs.WriteS(1, sNaN)
	v.Regs.WriteS(0, math.Float32bits(1.0))

	result := v.Execute(e, core, newFakeMMU())

	require.Equal(t, Completed, result)
	require.True(t, v.Kernel.Status.IOC())
	require.Equal(t, uint8(0b0011), v.Kernel.Status.NZCV())
}

func TestScenarioVSQRT(t *testing.T) {
	v := New(Default())
	core := newFakeCore()

	e, ok := TryDecode(0xEEB10AC2)
	require.True(t, ok)
	require.Equal(t, VSQRT, e.Opcode)
	e.Cond = 0xe

	// word addresses Sd=S0, Sm=S4 -- this scenario's prose labels already
	// match the bit-accurate decode.
	v.Regs.WriteS(4, math.Float32bits(4.0))

	result := v.Execute(e, core, newFakeMMU())

	require.Equal(t, Completed, result)
	require.Equal(t, float32(2.0), math.Float32frombits(v.Regs.ReadS(0)))
}

func TestScenarioVPush(t *testing.T) {
	v := New(Default())
	core := newFakeCore()
	mmu := newFakeMMU()
	core.gpr[13] = 0x8000

	e, ok := TryDecode(0xED6D0A02)
	require.True(t, ok)
	require.Equal(t, VPUSH, e.Opcode)
	e.Cond = 0xe

	// word addresses a two-register block starting at S1, not the
	// three-register S0-S2 block the scenario's prose names.
	v.Regs.WriteS(1, 0x11111111)
	v.Regs.WriteS(2, 0x22222222)

	result := v.Execute(e, core, mmu)

	require.Equal(t, Completed, result)
	require.Equal(t, uint32(0x7ff8), core.gpr[13])
	require.Equal(t, uint32(0x11111111), mmu.mem[0x7ff8])
	require.Equal(t, uint32(0x22222222), mmu.mem[0x7ffc])
}

func TestScenarioFPEXCDisabledRaisesUndefined(t *testing.T) {
	cfg := Default()
	cfg.EnableOnReset = false
	v := New(cfg)
	core := newFakeCore()

	e, ok := TryDecode(0xEE410A02)
	require.True(t, ok)
	e.Cond = 0xe

	result := v.Execute(e, core, newFakeMMU())

	require.Equal(t, Undefined, result)
	require.True(t, core.undefinedHit)
}
