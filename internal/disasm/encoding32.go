package disasm

import "math/bits"

// AArch32 system instruction field extraction. A 32-bit Thumb instruction
// combined as hw1<<16|hw2 has the same coprocessor field layout as ARM with
// the condition bits fixed to 1110 (or 1111 for the MRC2/MCR2 forms), so the
// coprocessor decoders below serve both instruction sets.

// CoprocMove holds the fields of an MCR/MRC (or MCR2/MRC2) encoding.
type CoprocMove struct {
	CP, Opc1, CRn, CRm, Opc2 uint8
	Rt                       int
	Read                     bool // MRC
}

// DecodeCoprocMove matches MRC/MCR p<cp>, #opc1, Rt, Cn, Cm, #opc2.
//
// Encoding: cond 1110 opc1 L CRn Rt cp opc2 1 CRm
// Mask: 0x0F000010, Value: 0x0E000010
func DecodeCoprocMove(raw uint32) (CoprocMove, bool) {
	if raw&0x0F000010 != 0x0E000010 {
		return CoprocMove{}, false
	}
	return CoprocMove{
		CP:   uint8((raw >> 8) & 0xF),
		Opc1: uint8((raw >> 21) & 0x7),
		CRn:  uint8((raw >> 16) & 0xF),
		CRm:  uint8(raw & 0xF),
		Opc2: uint8((raw >> 5) & 0x7),
		Rt:   int((raw >> 12) & 0xF),
		Read: raw&(1<<20) != 0,
	}, true
}

// CoprocMove64 holds the fields of an MCRR/MRRC (or MCRR2/MRRC2) encoding.
type CoprocMove64 struct {
	CP, Opc1, CRm uint8
	Rt, Rt2       int
	Read          bool // MRRC
}

// DecodeCoprocMove64 matches MRRC/MCRR p<cp>, #opc1, Rt, Rt2, Cm.
//
// Encoding: cond 1100 010 L Rt2 Rt cp opc1 CRm
// Mask: 0x0FE00000, Value: 0x0C400000
func DecodeCoprocMove64(raw uint32) (CoprocMove64, bool) {
	if raw&0x0FE00000 != 0x0C400000 {
		return CoprocMove64{}, false
	}
	return CoprocMove64{
		CP:   uint8((raw >> 8) & 0xF),
		Opc1: uint8((raw >> 4) & 0xF),
		CRm:  uint8(raw & 0xF),
		Rt:   int((raw >> 12) & 0xF),
		Rt2:  int((raw >> 16) & 0xF),
		Read: raw&(1<<20) != 0,
	}, true
}

// PSRWrite holds the fields of an ARM MSR (immediate) encoding.
type PSRWrite struct {
	SPSR bool
	Mask uint8 // <fields> bits, c=1 x=2 s=4 f=8
	Imm  uint32
}

// DecodePSRWriteImm matches MSR CPSR_<fields>, #imm and the SPSR form.
// The mask field must be non-zero; the all-zero space holds hints.
//
// Encoding: cond 0011 0R10 mask 1111 imm12
// Mask: 0x0FB0F000, Value: 0x0320F000
func DecodePSRWriteImm(raw uint32) (PSRWrite, bool) {
	if raw&0x0FB0F000 != 0x0320F000 || raw>>28 == 0xF {
		return PSRWrite{}, false
	}
	mask := uint8((raw >> 16) & 0xF)
	if mask == 0 {
		return PSRWrite{}, false
	}
	return PSRWrite{
		SPSR: raw&(1<<22) != 0,
		Mask: mask,
		Imm:  expandImmA32(raw & 0xFFF),
	}, true
}

// IsPSRWriteReg matches MSR CPSR_<fields>, Rn and the SPSR form. Only the
// immediate form gets a comment, the register form is just counted.
//
// Encoding: cond 0001 0R10 mask 1111 0000 0000 Rn
// Mask: 0x0FB0FFF0, Value: 0x0120F000
func IsPSRWriteReg(raw uint32) bool {
	return raw&0x0FB0FFF0 == 0x0120F000 && raw>>28 != 0xF
}

// IsPSRRead matches MRS Rd, CPSR and the SPSR form.
//
// Encoding: cond 0001 0R00 1111 Rd 0000 0000 0000
// Mask: 0x0FBF0FFF, Value: 0x010F0000
func IsPSRRead(raw uint32) bool {
	return raw&0x0FBF0FFF == 0x010F0000 && raw>>28 != 0xF
}

// A32 data-processing immediate: cond 001 opcode S Rn Rd imm12.
func decodeA32DPImm(raw, opcode, s uint32) (rd, rn int, value uint32, ok bool) {
	if raw>>28 == 0xF {
		return 0, 0, 0, false
	}
	if (raw>>26)&0x3 != 0 || (raw>>25)&1 != 1 {
		return 0, 0, 0, false
	}
	if (raw>>21)&0xF != opcode || (raw>>20)&1 != s {
		return 0, 0, 0, false
	}
	return int((raw >> 12) & 0xF), int((raw >> 16) & 0xF), expandImmA32(raw & 0xFFF), true
}

// DecodeA32MOVImm matches MOV Rd, #imm.
func DecodeA32MOVImm(raw uint32) (rd int, value uint32, ok bool) {
	rd, _, value, ok = decodeA32DPImm(raw, 0b1101, raw>>20&1)
	return rd, value, ok
}

// DecodeA32ORRImm matches ORR Rd, Rn, #imm.
func DecodeA32ORRImm(raw uint32) (rd, rn int, value uint32, ok bool) {
	return decodeA32DPImm(raw, 0b1100, raw>>20&1)
}

// DecodeA32BICImm matches BIC Rd, Rn, #imm.
func DecodeA32BICImm(raw uint32) (rd, rn int, value uint32, ok bool) {
	return decodeA32DPImm(raw, 0b1110, raw>>20&1)
}

// DecodeA32ANDImm matches AND Rd, Rn, #imm.
func DecodeA32ANDImm(raw uint32) (rd, rn int, value uint32, ok bool) {
	return decodeA32DPImm(raw, 0b0000, raw>>20&1)
}

// DecodeA32TSTImm matches TST Rn, #imm.
func DecodeA32TSTImm(raw uint32) (rn int, value uint32, ok bool) {
	_, rn, value, ok = decodeA32DPImm(raw, 0b1000, 1)
	return rn, value, ok
}

// DecodeA32TEQImm matches TEQ Rn, #imm.
func DecodeA32TEQImm(raw uint32) (rn int, value uint32, ok bool) {
	_, rn, value, ok = decodeA32DPImm(raw, 0b1001, 1)
	return rn, value, ok
}

// DecodeA32LDRLiteral matches LDR Rt, [PC, #±imm]. Returns the signed byte
// offset from the instruction's PC read value (address + 8).
//
// Encoding: cond 0101 U001 1111 Rt imm12
// Mask: 0x0F7F0000, Value: 0x051F0000
func DecodeA32LDRLiteral(raw uint32) (rt int, offset int32, ok bool) {
	if raw&0x0F7F0000 != 0x051F0000 || raw>>28 == 0xF {
		return 0, 0, false
	}
	offset = int32(raw & 0xFFF)
	if raw&(1<<23) == 0 {
		offset = -offset
	}
	return int((raw >> 12) & 0xF), offset, true
}

// expandImmA32 expands an A32 modified immediate, imm8 rotated right by
// twice the rotation field.
func expandImmA32(imm12 uint32) uint32 {
	imm8 := imm12 & 0xFF
	rot := (imm12 >> 8) & 0xF
	return bits.RotateLeft32(imm8, -int(2*rot))
}

// T32 data-processing modified immediate, on the combined word:
// 11110 i 0 opc S Rn 0 imm3 Rd imm8.
func decodeT32DPImm(raw, opcode, s uint32) (rd, rn int, value uint32, ok bool) {
	if raw>>27 != 0b11110 || (raw>>25)&1 != 0 || (raw>>15)&1 != 0 {
		return 0, 0, 0, false
	}
	if (raw>>21)&0xF != opcode || (raw>>20)&1 != s {
		return 0, 0, 0, false
	}
	imm12 := (raw>>26&1)<<11 | (raw>>12&0x7)<<8 | raw&0xFF
	return int((raw >> 8) & 0xF), int((raw >> 16) & 0xF), expandImmT32(imm12), true
}

// DecodeT32MOVImm matches the T32 MOV Rd, #imm (ORR with Rn=PC excluded;
// MOV is opcode 0010 with Rn=1111).
func DecodeT32MOVImm(raw uint32) (rd int, value uint32, ok bool) {
	rd, rn, value, ok := decodeT32DPImm(raw, 0b0010, raw>>20&1)
	if !ok || rn != 15 {
		return 0, 0, false
	}
	return rd, value, true
}

// DecodeT32ORRImm matches T32 ORR Rd, Rn, #imm (Rn != PC).
func DecodeT32ORRImm(raw uint32) (rd, rn int, value uint32, ok bool) {
	rd, rn, value, ok = decodeT32DPImm(raw, 0b0010, raw>>20&1)
	if !ok || rn == 15 {
		return 0, 0, 0, false
	}
	return rd, rn, value, true
}

// DecodeT32BICImm matches T32 BIC Rd, Rn, #imm.
func DecodeT32BICImm(raw uint32) (rd, rn int, value uint32, ok bool) {
	return decodeT32DPImm(raw, 0b0001, raw>>20&1)
}

// DecodeT32TSTImm matches T32 TST Rn, #imm (AND with S=1, Rd=1111).
func DecodeT32TSTImm(raw uint32) (rn int, value uint32, ok bool) {
	rd, rn, value, ok := decodeT32DPImm(raw, 0b0000, 1)
	if !ok || rd != 15 {
		return 0, 0, false
	}
	return rn, value, true
}

// DecodeT32ANDImm matches T32 AND Rd, Rn, #imm (Rd != PC).
func DecodeT32ANDImm(raw uint32) (rd, rn int, value uint32, ok bool) {
	rd, rn, value, ok = decodeT32DPImm(raw, 0b0000, raw>>20&1)
	if !ok || rd == 15 {
		return 0, 0, 0, false
	}
	return rd, rn, value, true
}

// expandImmT32 expands a T32 modified immediate.
func expandImmT32(imm12 uint32) uint32 {
	imm8 := imm12 & 0xFF
	switch (imm12 >> 8) & 0xF {
	case 0, 1, 2, 3:
		switch (imm12 >> 8) & 0x3 {
		case 0b00:
			return imm8
		case 0b01:
			return imm8<<16 | imm8
		case 0b10:
			return imm8<<24 | imm8<<8
		default:
			return imm8 * 0x01010101
		}
	}
	unrotated := 0x80 | imm8&0x7F
	return bits.RotateLeft32(unrotated, -int(imm12>>7))
}
