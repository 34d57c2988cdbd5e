package disasm

import "testing"

func TestDecodeSysRegMove(t *testing.T) {
	tests := []struct {
		name   string
		raw    uint32
		want   SysRegMove
		wantOK bool
	}{
		// MRS X0, SCTLR_EL1 → op0=3, op1=0, CRn=1, CRm=0, op2=0
		{"MRS_SCTLR_EL1", 0xD5381000, SysRegMove{3, 0, 1, 0, 0, 0, true}, true},
		// MSR SCTLR_EL1, X0
		{"MSR_SCTLR_EL1", 0xD5181000, SysRegMove{3, 0, 1, 0, 0, 0, false}, true},
		// MRS X3, CNTVCT_EL0 → op0=3, op1=3, CRn=14, CRm=0, op2=2
		{"MRS_CNTVCT_EL0", 0xD53BE043, SysRegMove{3, 3, 14, 0, 2, 3, true}, true},
		// NOP
		{"NOP", 0xD503201F, SysRegMove{}, false},
		// ADD X0, X0, #1
		{"ADD", 0x91000400, SysRegMove{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DecodeSysRegMove(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecodePStateWrite(t *testing.T) {
	// MSR DAIFSet, #2 → op1=3, op2=6, CRm=2
	got, ok := DecodePStateWrite(0xD50342DF)
	if !ok {
		t.Fatal("MSR DAIFSet not matched")
	}
	if got != (PStateWrite{Op1: 3, Imm: 2, Op2: 6}) {
		t.Errorf("got %+v", got)
	}
	// MSR SPSel, #1 → op1=0, op2=5, CRm=1
	got, ok = DecodePStateWrite(0xD50041BF)
	if !ok {
		t.Fatal("MSR SPSel not matched")
	}
	if got != (PStateWrite{Op1: 0, Imm: 1, Op2: 5}) {
		t.Errorf("got %+v", got)
	}
	// MRS is not a PSTATE write.
	if _, ok := DecodePStateWrite(0xD5381000); ok {
		t.Error("MRS matched as PSTATE write")
	}
}

func TestDecodeSysOp(t *testing.T) {
	// DC CIVAC, X0 = SYS #3, C7, C14, #1, X0
	got, ok := DecodeSysOp(0xD50B7E20)
	if !ok {
		t.Fatal("DC CIVAC not matched")
	}
	want := SysOp{Op1: 3, CRn: 7, CRm: 14, Op2: 1, Rt: 0, Read: false}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
	// MRS lives in the same top byte but op0=1x.
	if _, ok := DecodeSysOp(0xD5381000); ok {
		t.Error("MRS matched as SYS")
	}
}

func TestDecodeMOVZ(t *testing.T) {
	// MOV X1, #0x1000
	rd, val, ok := DecodeMOVZ(0xD2820001)
	if !ok || rd != 1 || val != 0x1000 {
		t.Errorf("rd=%d val=%#x ok=%v", rd, val, ok)
	}
	// MOV W2, #0x50000 → hw=1, imm16=5
	rd, val, ok = DecodeMOVZ(0x52A000A2)
	if !ok || rd != 2 || val != 0x50000 {
		t.Errorf("rd=%d val=%#x ok=%v", rd, val, ok)
	}
	// MOVN is not MOVZ.
	if _, _, ok := DecodeMOVZ(0x12800001); ok {
		t.Error("MOVN matched as MOVZ")
	}
}

func TestDecodeLogicalImm(t *testing.T) {
	// ORR X0, X1, #1 → N=1, immr=0, imms=0
	rd, rn, val, ok := DecodeORRImm(0xB2400020)
	if !ok || rd != 0 || rn != 1 || val != 1 {
		t.Errorf("ORR: rd=%d rn=%d val=%#x ok=%v", rd, rn, val, ok)
	}
	// TST W0, #4 = ANDS WZR, W0, #4 → size=32, s=0, r=30
	rd, rn, val, ok = DecodeANDSImm(0x721E001F)
	if !ok || rd != 31 || rn != 0 || val != 4 {
		t.Errorf("TST: rd=%d rn=%d val=%#x ok=%v", rd, rn, val, ok)
	}
	// AND X2, X3, #0xFF → size=64? 0xFF is esize 64 with s=7, r=0, N=1
	rd, rn, val, ok = DecodeANDImm(0x92401C62)
	if !ok || rd != 2 || rn != 3 || val != 0xFF {
		t.Errorf("AND: rd=%d rn=%d val=%#x ok=%v", rd, rn, val, ok)
	}
	// MOVZ is not a logical immediate.
	if _, _, _, ok := DecodeORRImm(0xD2820001); ok {
		t.Error("MOVZ matched as ORR")
	}
	// All-ones imms is reserved.
	if _, _, _, ok := DecodeANDImm(0x1200FC62); ok {
		t.Error("reserved immediate accepted")
	}
}

func TestDecodeTestBranch(t *testing.T) {
	// TBZ W3, #5, .
	rt, bit, ok := DecodeTestBranch(0x36280003)
	if !ok || rt != 3 || bit != 5 {
		t.Errorf("TBZ: rt=%d bit=%d ok=%v", rt, bit, ok)
	}
	// TBNZ X3, #35, . → b5=1, b40=3
	rt, bit, ok = DecodeTestBranch(0xB7180003)
	if !ok || rt != 3 || bit != 35 {
		t.Errorf("TBNZ: rt=%d bit=%d ok=%v", rt, bit, ok)
	}
	if _, _, ok := DecodeTestBranch(0xD503201F); ok {
		t.Error("NOP matched as TBZ")
	}
}

func TestDecodeLDRLiteral(t *testing.T) {
	// LDR X5, .+0x100 → imm19=0x40
	rt, off, ok := DecodeLDRLiteral(0x58000805)
	if !ok || rt != 5 || off != 0x100 {
		t.Errorf("rt=%d off=%#x ok=%v", rt, off, ok)
	}
	// Negative offset: imm19 = -4 → .-16
	rt, off, ok = DecodeLDRLiteral(0x58000000 | (0x7FFFC << 5) | 9)
	if !ok || rt != 9 || off != -16 {
		t.Errorf("rt=%d off=%d ok=%v", rt, off, ok)
	}
}

func TestDecodeCoprocMove(t *testing.T) {
	tests := []struct {
		name   string
		raw    uint32
		want   CoprocMove
		wantOK bool
	}{
		// MRC p15, 0, r0, c1, c0, 0 (SCTLR read)
		{"MRC_SCTLR", 0xEE110F10, CoprocMove{15, 0, 1, 0, 0, 0, true}, true},
		// MCR p15, 0, r0, c1, c0, 0
		{"MCR_SCTLR", 0xEE010F10, CoprocMove{15, 0, 1, 0, 0, 0, false}, true},
		// MRC p15, 0, r1, c0, c0, 5 (MPIDR read)
		{"MRC_MPIDR", 0xEE101FB0, CoprocMove{15, 0, 0, 0, 5, 1, true}, true},
		// CDP has bit 4 clear.
		{"CDP", 0xEE000F00, CoprocMove{}, false},
		// Data-processing.
		{"MOV_imm", 0xE3A00001, CoprocMove{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DecodeCoprocMove(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecodeCoprocMove64(t *testing.T) {
	// MRRC p15, 0, r0, r1, c2 (TTBR0 read)
	got, ok := DecodeCoprocMove64(0xEC510F02)
	if !ok {
		t.Fatal("MRRC not matched")
	}
	want := CoprocMove64{CP: 15, Opc1: 0, CRm: 2, Rt: 0, Rt2: 1, Read: true}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
	// MCRR p15, 2, r2, r3, c14 (CNTP_CVAL write)
	got, ok = DecodeCoprocMove64(0xEC432F2E)
	if !ok {
		t.Fatal("MCRR not matched")
	}
	want = CoprocMove64{CP: 15, Opc1: 2, CRm: 14, Rt: 2, Rt2: 3, Read: false}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
	// MRC is not MRRC.
	if _, ok := DecodeCoprocMove64(0xEE110F10); ok {
		t.Error("MRC matched as MRRC")
	}
}

func TestDecodePSRWriteImm(t *testing.T) {
	// MSR CPSR_c, #0xD3 (Supervisor, IRQ/FIQ masked)
	got, ok := DecodePSRWriteImm(0xE321F0D3)
	if !ok {
		t.Fatal("MSR CPSR not matched")
	}
	if got.SPSR || got.Mask != 1 || got.Imm != 0xD3 {
		t.Errorf("got %+v", got)
	}
	// Mask 0 is the hint space (NOP etc).
	if _, ok := DecodePSRWriteImm(0xE320F000); ok {
		t.Error("NOP matched as MSR")
	}
}

func TestDecodeA32DataProcessing(t *testing.T) {
	// MOV R0, #0x5000 → imm8=0x50 ror 24
	rd, val, ok := DecodeA32MOVImm(0xE3A00C50)
	if !ok || rd != 0 || val != 0x5000 {
		t.Errorf("MOV: rd=%d val=%#x ok=%v", rd, val, ok)
	}
	// ORR R0, R0, #1
	rd, rn, val32, ok := DecodeA32ORRImm(0xE3800001)
	if !ok || rd != 0 || rn != 0 || val32 != 1 {
		t.Errorf("ORR: rd=%d rn=%d val=%#x ok=%v", rd, rn, val32, ok)
	}
	// BIC R1, R1, #4
	rd, rn, val32, ok = DecodeA32BICImm(0xE3C11004)
	if !ok || rd != 1 || rn != 1 || val32 != 4 {
		t.Errorf("BIC: rd=%d rn=%d val=%#x ok=%v", rd, rn, val32, ok)
	}
	// TST R0, #1
	rn, val32, ok = DecodeA32TSTImm(0xE3100001)
	if !ok || rn != 0 || val32 != 1 {
		t.Errorf("TST: rn=%d val=%#x ok=%v", rn, val32, ok)
	}
	// MSR immediate must not match any of these.
	if _, _, ok := DecodeA32MOVImm(0xE321F0D3); ok {
		t.Error("MSR matched as MOV")
	}
	if _, _, ok := DecodeA32TSTImm(0xE321F0D3); ok {
		t.Error("MSR matched as TST")
	}
}

func TestDecodeA32LDRLiteral(t *testing.T) {
	// LDR R0, [PC, #0x30]
	rt, off, ok := DecodeA32LDRLiteral(0xE59F0030)
	if !ok || rt != 0 || off != 0x30 {
		t.Errorf("rt=%d off=%#x ok=%v", rt, off, ok)
	}
	// LDR R2, [PC, #-8]
	rt, off, ok = DecodeA32LDRLiteral(0xE51F2008)
	if !ok || rt != 2 || off != -8 {
		t.Errorf("rt=%d off=%d ok=%v", rt, off, ok)
	}
	// Register offset form must not match.
	if _, _, ok := DecodeA32LDRLiteral(0xE79F0000); ok {
		t.Error("register offset matched as literal")
	}
}

func TestDecodeT32DataProcessing(t *testing.T) {
	// MOV.W R0, #0x10001 → imm12 pattern 01, imm8=1:
	// hw1 = 11110 i=0 0 0010 S=0 1111, hw2 = 0 001 0000 00000001
	raw := uint32(0xF04F)<<16 | 0x1001
	rd, val, ok := DecodeT32MOVImm(raw)
	if !ok || rd != 0 || val != 0x10001 {
		t.Errorf("MOV.W: rd=%d val=%#x ok=%v", rd, val, ok)
	}
	// ORR R1, R1, #0x7F800000 → rotated form:
	// imm12 = 0x4FF → unrotated 0xFF ror 9
	raw = uint32(0xF041)<<16 | 0x4000 | 0x1FF
	rd, rn, val, ok := DecodeT32ORRImm(raw)
	if !ok || rd != 1 || rn != 1 || val != 0x7F800000 {
		t.Errorf("ORR.W: rd=%d rn=%d val=%#x ok=%v", rd, rn, val, ok)
	}
	// TST R0, #1 → hw1 = 11110 0 0 0000 1 0000, hw2 = 0 000 1111 00000001
	raw = uint32(0xF010)<<16 | 0x0F01
	rn, val, ok = DecodeT32TSTImm(raw)
	if !ok || rn != 0 || val != 1 {
		t.Errorf("TST.W: rn=%d val=%#x ok=%v", rn, val, ok)
	}
}

func TestExpandImmT32(t *testing.T) {
	tests := []struct {
		imm12 uint32
		want  uint32
	}{
		{0x042, 0x42},
		{0x142, 0x420042},
		{0x242, 0x42004200},
		{0x342, 0x42424242},
		{0x4FF, 0x7F800000},
	}
	for _, tt := range tests {
		if got := expandImmT32(tt.imm12); got != tt.want {
			t.Errorf("expandImmT32(%#x) = %#x, want %#x", tt.imm12, got, tt.want)
		}
	}
}
