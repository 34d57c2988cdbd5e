package disasm

import "math/bits"

// AArch64 system instruction field extraction. Everything here works on the
// raw 32-bit encoding so that annotation does not depend on disassembly text.

// SysRegMove holds the fields of an AArch64 MRS or MSR (register) encoding.
type SysRegMove struct {
	Op0, Op1, CRn, CRm, Op2 uint8
	Rt                      int
	Read                    bool // MRS
}

// DecodeSysRegMove matches MRS Xt, <sysreg> and MSR <sysreg>, Xt.
//
// Encoding: 1101 0101 00 L 1 o0 op1 CRn CRm op2 Rt
// Mask: 0xFFD00000, Value: 0xD5100000 (L free)
func DecodeSysRegMove(raw uint32) (SysRegMove, bool) {
	if raw&0xFFD00000 != 0xD5100000 {
		return SysRegMove{}, false
	}
	return SysRegMove{
		Op0:  uint8(2 + (raw>>19)&1),
		Op1:  uint8((raw >> 16) & 0x7),
		CRn:  uint8((raw >> 12) & 0xF),
		CRm:  uint8((raw >> 8) & 0xF),
		Op2:  uint8((raw >> 5) & 0x7),
		Rt:   int(raw & 0x1F),
		Read: raw&(1<<21) != 0,
	}, true
}

// PStateWrite holds the fields of an AArch64 MSR (immediate) encoding,
// writing SPSel, DAIFSet or DAIFClr.
type PStateWrite struct {
	Op1 uint8
	Imm uint8 // CRm field
	Op2 uint8
}

// DecodePStateWrite matches MSR <pstatefield>, #imm.
//
// Encoding: 1101 0101 0000 0 op1 0100 CRm op2 11111
// Mask: 0xFFF8F01F, Value: 0xD500401F
func DecodePStateWrite(raw uint32) (PStateWrite, bool) {
	if raw&0xFFF8F01F != 0xD500401F {
		return PStateWrite{}, false
	}
	return PStateWrite{
		Op1: uint8((raw >> 16) & 0x7),
		Imm: uint8((raw >> 8) & 0xF),
		Op2: uint8((raw >> 5) & 0x7),
	}, true
}

// SysOp holds the fields of an AArch64 SYS or SYSL encoding, the space the
// IC, DC, AT and TLBI aliases live in.
type SysOp struct {
	Op1, CRn, CRm, Op2 uint8
	Rt                 int
	Read               bool // SYSL
}

// DecodeSysOp matches SYS #op1, Cn, Cm, #op2[, Xt] and SYSL.
//
// Encoding: 1101 0101 00 L 01 op1 CRn CRm op2 Rt
// Mask: 0xFFD80000, Value: 0xD5080000 (L free)
func DecodeSysOp(raw uint32) (SysOp, bool) {
	if raw&0xFFD80000 != 0xD5080000 {
		return SysOp{}, false
	}
	return SysOp{
		Op1:  uint8((raw >> 16) & 0x7),
		CRn:  uint8((raw >> 12) & 0xF),
		CRm:  uint8((raw >> 8) & 0xF),
		Op2:  uint8((raw >> 5) & 0x7),
		Rt:   int(raw & 0x1F),
		Read: raw&(1<<21) != 0,
	}, true
}

// DecodeMOVZ matches MOVZ Rd, #imm16{, LSL #shift} (the MOV #imm alias).
// Returns the effective value.
//
// Encoding: sf 10 100101 hw imm16 Rd
// Mask: 0x7F800000, Value: 0x52800000
func DecodeMOVZ(raw uint32) (rd int, value uint64, ok bool) {
	if raw&0x7F800000 != 0x52800000 {
		return 0, 0, false
	}
	hw := (raw >> 21) & 0x3
	imm16 := uint64((raw >> 5) & 0xFFFF)
	return int(raw & 0x1F), imm16 << (16 * hw), true
}

// Logical immediate class: sf opc 100100 N immr imms Rn Rd.
// opc selects AND (00), ORR (01), EOR (10), ANDS (11).
func decodeLogicalImm(raw, opc uint32) (rd, rn int, value uint64, ok bool) {
	if (raw>>23)&0x3F != 0b100100 || (raw>>29)&0x3 != opc {
		return 0, 0, 0, false
	}
	sf := raw>>31 == 1
	n := (raw >> 22) & 1
	immr := (raw >> 16) & 0x3F
	imms := (raw >> 10) & 0x3F
	if !sf && n == 1 {
		return 0, 0, 0, false
	}
	value, ok = decodeBitMasks(n, imms, immr, sf)
	if !ok {
		return 0, 0, 0, false
	}
	return int(raw & 0x1F), int((raw >> 5) & 0x1F), value, true
}

// DecodeORRImm matches ORR Rd, Rn, #imm; with Rn=31 this is the MOV #bimm
// alias.
func DecodeORRImm(raw uint32) (rd, rn int, value uint64, ok bool) {
	return decodeLogicalImm(raw, 0b01)
}

// DecodeANDImm matches AND Rd, Rn, #imm.
func DecodeANDImm(raw uint32) (rd, rn int, value uint64, ok bool) {
	return decodeLogicalImm(raw, 0b00)
}

// DecodeANDSImm matches ANDS Rd, Rn, #imm; with Rd=31 this is TST Rn, #imm.
func DecodeANDSImm(raw uint32) (rd, rn int, value uint64, ok bool) {
	return decodeLogicalImm(raw, 0b11)
}

// DecodeTestBranch matches TBZ/TBNZ Rt, #bit, <label>.
//
// Encoding: b5 011011 op b40 imm14 Rt
// Mask: 0x7E000000, Value: 0x36000000
func DecodeTestBranch(raw uint32) (rt, bit int, ok bool) {
	if raw&0x7E000000 != 0x36000000 {
		return 0, 0, false
	}
	bit = int(raw>>31)<<5 | int((raw>>19)&0x1F)
	return int(raw & 0x1F), bit, true
}

// DecodeLDRLiteral matches LDR Xt, <label> and LDR Wt, <label>. Returns the
// byte offset of the literal relative to the instruction.
//
// Encoding: 0x 011 0 00 imm19 Rt
// Mask: 0xBF000000, Value: 0x18000000
func DecodeLDRLiteral(raw uint32) (rt int, offset int64, ok bool) {
	if raw&0xBF000000 != 0x18000000 {
		return 0, 0, false
	}
	imm19 := int64(int32(raw<<8) >> 13) // sign-extend bits 23-5
	return int(raw & 0x1F), imm19 * 4, true
}

// decodeBitMasks expands the (N, imms, immr) form used by logical immediate
// instructions into the wmask value.
func decodeBitMasks(n, imms, immr uint32, sf bool) (uint64, bool) {
	length := 31 - bits.LeadingZeros32(n<<6|(^imms&0x3F))
	if length < 1 {
		return 0, false
	}
	size := uint32(1) << length
	levels := size - 1
	s := imms & levels
	r := immr & levels
	if s == levels {
		return 0, false
	}
	welem := uint64(1)<<(s+1) - 1
	// Rotate right within the element, then replicate.
	w := welem
	if r != 0 {
		w = welem>>r | welem<<(size-r)
		if size < 64 {
			w &= uint64(1)<<size - 1
		}
	}
	for size < 64 {
		w |= w << size
		size *= 2
	}
	if !sf {
		w &= 0xFFFFFFFF
	}
	return w, true
}
