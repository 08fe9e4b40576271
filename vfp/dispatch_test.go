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

func TestExecuteConditionFailAdvancesPCOnly(t *testing.T) {
	v := New(Default())
	core := newFakeCore()
	core.condResult = false
	core.gpr[15] = 0x100

	e := DecodedEntry{Opcode: VADD, Cond: 0x1, Raw: 0xEE300A81}
	result := v.Execute(e, core, newFakeMMU())

	require.Equal(t, Completed, result)
	require.Equal(t, uint32(0x104), core.gpr[15])
	require.Zero(t, v.Regs.ReadS(0))
}

func TestExecuteDisabledRaisesUndefined(t *testing.T) {
	cfg := Default()
	cfg.EnableOnReset = false
	v := New(cfg)
	core := newFakeCore()
	core.gpr[15] = 0x100

	e := DecodedEntry{Opcode: VADD, Cond: 0xe, Raw: 0xEE300A81}
	result := v.Execute(e, core, newFakeMMU())

	require.Equal(t, Undefined, result)
	require.True(t, core.undefinedHit)
	require.Equal(t, uint32(0x100), core.gpr[15])
}

func TestExecuteVMSRFPEXCWorksWhileDisabled(t *testing.T) {
	cfg := Default()
	cfg.EnableOnReset = false
	v := New(cfg)
	core := newFakeCore()
	core.gpr[0] = 0x40000000 // EN bit

	e := DecodedEntry{Opcode: VMSR, Cond: 0xe, Reg: SysregFPEXC, T: 0}
	result := v.Execute(e, core, newFakeMMU())

	require.Equal(t, Completed, result)
	require.True(t, v.FPEXC.EN())
}

func TestExecuteVMSRFPEXCDeniedWhenUnprivileged(t *testing.T) {
	cfg := Default()
	cfg.EnableOnReset = false
	v := New(cfg)
	core := newFakeCore()
	core.privileged = false
	core.gpr[0] = 0x40000000

	e := DecodedEntry{Opcode: VMSR, Cond: 0xe, Reg: SysregFPEXC, T: 0}
	result := v.Execute(e, core, newFakeMMU())

	require.Equal(t, Undefined, result)
	require.True(t, core.undefinedHit)
}

func TestExecuteArithmeticVADD(t *testing.T) {
	v := New(Default())
	core := newFakeCore()

	e, ok := TryDecode(0xEE300A81)
	require.True(t, ok)
	require.Equal(t, VADD, e.Opcode)
	e.Cond = 0xe

	v.Regs.WriteS(1, math.Float32bits(1.5))
	v.Regs.WriteS(2, math.Float32bits(2.25))

	result := v.Execute(e, core, newFakeMMU())

	require.Equal(t, Completed, result)
	require.Equal(t, float32(3.75), math.Float32frombits(v.Regs.ReadS(0)))
}

func TestExecuteVDivByZeroTrapsWhenEnabled(t *testing.T) {
	v := New(Default())
	core := newFakeCore()
	v.Kernel.Status.SetValue(1 << 9) // DZE

	e, ok := TryDecode(0xEE800A81)
	require.True(t, ok)
	require.Equal(t, VDIV, e.Opcode)
	e.Cond = 0xe

	v.Regs.WriteS(1, math.Float32bits(1.0))
	v.Regs.WriteS(2, 0)

	result := v.Execute(e, core, newFakeMMU())

	require.Equal(t, VfpTrap, result)
	require.True(t, v.Kernel.Status.DZC())
	require.Equal(t, math.Float32bits(float32(math.Inf(1))), v.Regs.ReadS(0))
}

func TestExecuteVDivByZeroCompletesWhenDisabled(t *testing.T) {
	v := New(Default())
	core := newFakeCore()

	e, ok := TryDecode(0xEE800A81)
	require.True(t, ok)
	e.Cond = 0xe

	v.Regs.WriteS(1, math.Float32bits(1.0))
	v.Regs.WriteS(2, 0)

	result := v.Execute(e, core, newFakeMMU())

	require.Equal(t, Completed, result)
	require.True(t, v.Kernel.Status.DZC())
}

func TestExecuteUnimplementedOpcode(t *testing.T) {
	v := New(Default())
	core := newFakeCore()
	core.gpr[15] = 0x200

	e := DecodedEntry{Opcode: VMOVBRC, Cond: 0xe}
	result := v.Execute(e, core, newFakeMMU())

	require.Equal(t, Unimplemented, result)
	require.Equal(t, UnimplementedOpcodeError{Opcode: VMOVBRC}, v.LastFault)
	require.Equal(t, uint32(0x204), core.gpr[15])
}

// TestExecuteVCVTFixedDoublePrecisionUsesLowWordOfD is a regression test
// for a bug where the fixed-point side of VCVT(bff)/VCVT(bfi) was read
// and written through Vd's D-register index reinterpreted as an S-register
// index, landing on the wrong physical register whenever Vd differed from
// its doubled S-register number. The fixed-point integer must be read from
// and written to the low word of Dd (S(2*d)), never the S register that
// happens to share Dd's index.
func TestExecuteVCVTFixedDoublePrecisionUsesLowWordOfD(t *testing.T) {
	v := New(Default())
	core := newFakeCore()

	// VCVT(bff), dp=1, sx=1 (32-bit fixed), unsigned, fracBits=32, Vd=1,
	// D=0 so d = doubleReg(1, 0) = 1: the fixed result must land in S2
	// (D1's low word), not S1.
	e, ok := TryDecode(0xEEBA1BC0)
	require.True(t, ok)
	require.Equal(t, VCVTBFF, e.Opcode)
	e.Cond = 0xe

	v.Regs.WriteS(1, 0xdeadbeef) // wrong register; must be left alone
	v.Regs.WriteD(1, math.Float64bits(0.5))
	highBefore := v.Regs.ReadS(3)

	result := v.Execute(e, core, newFakeMMU())

	require.Equal(t, Completed, result)
	require.Equal(t, uint32(0xdeadbeef), v.Regs.ReadS(1))
	require.Equal(t, uint32(0x80000000), v.Regs.ReadS(2))
	require.Equal(t, highBefore, v.Regs.ReadS(3))
}
