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

// Execute runs one decoded instruction to completion, implementing the
// five-step dispatch of spec section 4.4: condition check, enable check,
// dispatch by opcode class, exception folding, and PC advance.
func (v *VFP) Execute(e DecodedEntry, core ARMCore, mmu MMU) StepResult {
	always := e.Cond == 0xe
	if !always && !core.CondPassed(e.Cond) {
		v.advancePC(core)
		return Completed
	}

	if !v.enabled(e, core) {
		core.RaiseUndefinedInstruction()
		return Undefined
	}

	v.Kernel.ClearTrapped()
	v.LastFault = nil

	var result StepResult
	switch e.Opcode.class() {
	case classArithmetic:
		result = v.dispatchArithmetic(e)
	case classMoveTransfer:
		result = v.dispatchMoveTransfer(e, core)
	case classLoadStore:
		result = v.dispatchLoadStore(e, core, mmu)
	default:
		result = Unimplemented
		v.LastFault = UnimplementedOpcodeError{Opcode: e.Opcode}
		Log.Log(vfplog.Allow, "dispatch", v.LastFault)
	}

	if result == DataAbort {
		return result
	}

	if result == Completed && v.Kernel.Trapped {
		result = VfpTrap
	}

	v.advancePC(core)
	return result
}

// enabled implements spec 4.4 step 2: FPEXC.EN gates every VFP instruction
// except VMSR/VMRS targeting FPSID or FPEXC itself, which must work with the
// unit disabled so software can enable it in the first place. Those two
// registers are further gated by the core's privilege level when
// EnforcePrivilege is set.
func (v *VFP) enabled(e DecodedEntry, core ARMCore) bool {
	if (e.Opcode == VMSR || e.Opcode == VMRS) && (e.Reg == SysregFPEXC || e.Reg == SysregFPSID) {
		if v.cfg.EnforcePrivilege && !core.Privileged() {
			return false
		}
		return true
	}
	return v.FPEXC.EN()
}

func (v *VFP) advancePC(core ARMCore) {
	core.SetGPR(15, core.GPR(15)+uint32(core.InstructionSize()))
}

// dispatchArithmetic implements the CDP arithmetic and "other
// data-processing" groups (spec section 4.3's sp_cpdo/dp_cpdo), re-reading
// Vd/Vn/Vm from the raw instruction word exactly as
// original_source/arch/arm/common/vfp/vfpinstr.c's cached {instr,
// dp_operation} pair does at execute time.
func (v *VFP) dispatchArithmetic(e DecodedEntry) StepResult {
	n := 32
	if e.DP {
		n = 64
	}

	word := e.Raw
	vd, d22 := bits(word, 12, 15), bit(word, 22)
	vn, n7 := bits(word, 16, 19), bit(word, 7)
	vm, m5 := bits(word, 0, 3), bit(word, 5)

	var d, nn, m int
	if e.DP {
		d, nn, m = doubleReg(vd, d22), doubleReg(vn, n7), doubleReg(vm, m5)
	} else {
		d, nn, m = singleReg(vd, d22), singleReg(vn, n7), singleReg(vm, m5)
	}

	// read64/write64 abstract the single/double register views so the rest
	// of this function is precision-agnostic.
	read64 := func(i int) uint64 {
		if e.DP {
			return v.Regs.ReadD(i)
		}
		return uint64(v.Regs.ReadS(i))
	}
	write64 := func(i int, val uint64) {
		if e.DP {
			v.Regs.WriteD(i, val)
			return
		}
		v.Regs.WriteS(i, uint32(val))
	}

	switch e.Opcode {
	case VMLA:
		write64(d, v.Kernel.FPMulAdd(read64(d), read64(nn), read64(m), n, true))
	case VMLS:
		write64(d, v.Kernel.FPMulAdd(read64(d), v.Kernel.FPNeg(read64(nn), n), read64(m), n, true))
	case VNMLA:
		write64(d, v.Kernel.FPNeg(v.Kernel.FPMulAdd(read64(d), read64(nn), read64(m), n, true), n))
	case VNMLS:
		write64(d, v.Kernel.FPMulAdd(v.Kernel.FPNeg(read64(d), n), read64(nn), read64(m), n, true))
	case VMUL:
		write64(d, v.Kernel.FPMul(read64(nn), read64(m), n, true))
	case VNMUL:
		write64(d, v.Kernel.FPNeg(v.Kernel.FPMul(read64(nn), read64(m), n, true), n))
	case VADD:
		write64(d, v.Kernel.FPAdd(read64(nn), read64(m), n, true))
	case VSUB:
		write64(d, v.Kernel.FPSub(read64(nn), read64(m), n, true))
	case VDIV:
		write64(d, v.Kernel.FPDiv(read64(nn), read64(m), n, true))
	case VABS:
		write64(d, v.Kernel.FPAbs(read64(m), n))
	case VNEG:
		write64(d, v.Kernel.FPNeg(read64(m), n))
	case VSQRT:
		write64(d, v.Kernel.FPSqrt(read64(m), n, true))
	case VCMP:
		v.Kernel.FPCompare(read64(d), read64(m), n, false, true)
	case VCMP2:
		v.Kernel.FPCompare(read64(d), v.Kernel.FPZero(false, n), n, false, true)
	case VCVTBDS:
		v.execVCVTBDS(word, d22, vd)
	case VCVTBFF:
		v.execVCVTFixed(word, e.DP, true)
	case VCVTBFI:
		v.execVCVTFixed(word, e.DP, false)
	}

	return Completed
}

// execVCVTBDS implements VCVT.F64.F32 / VCVT.F32.F64, the only arithmetic
// opcode that changes precision between its operand and result -- Vd and Vm
// are therefore decoded at their own, independent widths rather than the
// shared d/nn/m computed by the caller.
func (v *VFP) execVCVTBDS(word uint32, d22, vd uint32) {
	toDouble := bit(word, 8) == 0
	vm, m5 := bits(word, 0, 3), bit(word, 5)
	if toDouble {
		src := v.Regs.ReadS(singleReg(vm, m5))
		dst := doubleReg(vd, d22)
		typ, sign, value := v.Kernel.FPUnpack(uint64(src), 32, v.Kernel.Status)
		v.Regs.WriteD(dst, v.convertUnpacked(typ, sign, value, uint64(src), 32, 64))
	} else {
		src := v.Regs.ReadD(doubleReg(vm, m5))
		dst := singleReg(vd, d22)
		typ, sign, value := v.Kernel.FPUnpack(src, 64, v.Kernel.Status)
		v.Regs.WriteS(dst, uint32(v.convertUnpacked(typ, sign, value, src, 64, 32)))
	}
}

// convertUnpacked re-rounds an already-unpacked operand at a new width,
// preserving NaN and infinity per the FPConvert pseudocode (ARMv7-M page
// A2-53): quiet NaNs, default-NaN substitution and invalid-operand
// signalling behave the same as any other FPProcessNaN consumer.
func (v *VFP) convertUnpacked(typ fpu.FPType, sign bool, value float64, raw uint64, fromN, toN int) uint64 {
	switch typ {
	case fpu.FPType_SNaN, fpu.FPType_QNaN:
		return v.Kernel.FPProcessNaN(typ, toN, widenNaN(raw, fromN, toN), v.Kernel.Status)
	case fpu.FPType_Infinity:
		return v.Kernel.FPInfinity(sign, toN)
	case fpu.FPType_Zero:
		return v.Kernel.FPZero(sign, toN)
	default:
		return v.Kernel.FPRound(value, toN, v.Kernel.Status)
	}
}

// execVCVTFixed implements VCVT between floating-point and fixed-point on
// register Vd in place, per spec 4.3's VCVT(bff)/VCVT(bfi) entries:
// toFixed==true converts Vd's floating-point value to fixed-point,
// toFixed==false converts Vd's fixed-point value to floating-point. Both
// directions read the operands the same way: bit16 selects signed or
// unsigned, bit7 selects a 16- or 32-bit fixed-point size, and bits 0-3
// plus bit5 (imm4:i) give the fraction bit count as that size minus imm4:i.
func (v *VFP) execVCVTFixed(word uint32, dp, toFixed bool) {
	n := 32
	if dp {
		n = 64
	}
	vd, d22 := bits(word, 12, 15), bit(word, 22)
	unsigned := bit(word, 16) == 0
	sx := bit(word, 7) == 1
	imm4 := bits(word, 0, 3)
	i := bit(word, 5)
	size := 16
	if sx {
		size = 32
	}
	fracBits := size - int(imm4<<1|i)

	var d int
	if dp {
		d = doubleReg(vd, d22)
	} else {
		d = singleReg(vd, d22)
	}

	// The fixed-point side of this instruction is always a 16- or 32-bit
	// integer, never a 64-bit one, even when the floating-point side is
	// double precision. When dp is true, d is a D-register index, and the
	// integer occupies the low word of that register (S(2d)), the same
	// word Regs.ReadD/WriteD treat as Dd's low half.
	fixedS := d
	if dp {
		fixedS = 2 * d
	}

	if toFixed {
		operand := v.readWidth(d, dp)
		result := v.Kernel.FPToFixed(operand, fracBits, unsigned, true, n, true)
		v.writeFixedResult(fixedS, sx, result)
	} else {
		raw := v.readFixedOperand(fixedS, sx)
		result := v.Kernel.FixedToFP(raw, fracBits, unsigned, true, n, true)
		v.writeWidth(d, dp, result)
	}
}

func (v *VFP) readWidth(d int, dp bool) uint64 {
	if dp {
		return v.Regs.ReadD(d)
	}
	return uint64(v.Regs.ReadS(d))
}

func (v *VFP) writeWidth(d int, dp bool, val uint64) {
	if dp {
		v.Regs.WriteD(d, val)
	} else {
		v.Regs.WriteS(d, uint32(val))
	}
}

func (v *VFP) readFixedOperand(d int, sx bool) uint64 {
	word := v.Regs.ReadS(d)
	if sx {
		return uint64(word)
	}
	return uint64(uint16(word))
}

func (v *VFP) writeFixedResult(d int, sx bool, result uint64) {
	if sx {
		v.Regs.WriteS(d, uint32(result))
	} else {
		v.Regs.WriteS(d, uint32(uint16(result)))
	}
}

// widenNaN shifts a NaN's fraction bits up when converting to a wider
// format, preserving the signalling/quiet distinction and the leading
// fraction bits, per FPConvert's NaN handling.
func widenNaN(raw uint64, fromN, toN int) uint64 {
	if fromN == toN {
		return raw
	}
	if fromN == 32 && toN == 64 {
		sign := (raw >> 31) & 1
		frac := raw & 0x7fffff
		return sign<<63 | 0x7ff<<52 | frac<<29
	}
	sign := (raw >> 63) & 1
	frac := (raw >> 29) & 0x7fffff
	return sign<<31 | 0xff<<23 | frac
}

func (v *VFP) dispatchMoveTransfer(e DecodedEntry, core ARMCore) StepResult {
	switch e.Opcode {
	case VMOVI:
		n := 32
		if e.DP {
			n = 64
		}
		v.writeWidth(e.D, e.DP, v.Kernel.VFPExpandImm(uint8(e.Imm), n))
	case VMOVR:
		if e.Single {
			v.Regs.WriteS(e.D, v.Regs.ReadS(e.M))
		} else {
			v.Regs.WriteD(e.D, v.Regs.ReadD(e.M))
		}
	case VMOVBRS:
		if e.ToArm {
			core.SetGPR(e.T, v.Regs.ReadS(e.N))
		} else {
			v.Regs.WriteS(e.N, core.GPR(e.T))
		}
	case VMSR:
		v.writeSysreg(e.Reg, core.GPR(e.T))
	case VMRS:
		core.SetGPR(e.T, v.readSysreg(e.Reg))
	case VMOVBRRD:
		if e.ToArm {
			val := v.Regs.ReadD(e.M)
			core.SetGPR(e.T, uint32(val))
			core.SetGPR(e.T2, uint32(val>>32))
		} else {
			lo := uint64(core.GPR(e.T))
			hi := uint64(core.GPR(e.T2))
			v.Regs.WriteD(e.M, lo|hi<<32)
		}
	}
	return Completed
}

func (v *VFP) dispatchLoadStore(e DecodedEntry, core ARMCore, mmu MMU) StepResult {
	switch e.Opcode {
	case VSTR:
		return v.execVSTR(e, core, mmu)
	case VLDR:
		return v.execVLDR(e, core, mmu)
	case VSTM, VPUSH:
		return v.execVSTM(e, core, mmu)
	case VLDM, VPOP:
		return v.execVLDM(e, core, mmu)
	}
	return Undefined
}
