package annotate

import (
	"encoding/binary"
	"strings"
	"testing"

	"sysmark/internal/diag"
	"sysmark/internal/disasm"
)

func words(ws ...uint32) []byte {
	data := make([]byte, 4*len(ws))
	for i, w := range ws {
		binary.LittleEndian.PutUint32(data[i*4:], w)
	}
	return data
}

// inst builds an instruction directly, for encodings the library decoders
// may render in surprising ways. Annotation reads the raw word anyway.
func inst(addr uint64, raw uint32, text string) disasm.Inst {
	mnemonic, _, _ := strings.Cut(text, " ")
	return disasm.Inst{Addr: addr, Raw: raw, Size: 4, Mnemonic: mnemonic, Text: text}
}

func TestAnnotateSysRegRead(t *testing.T) {
	// MRS X0, SCTLR_EL1; TST X0, #1
	insts := disasm.Disassemble(words(0xD5381000, 0xF240001F), disasm.ARM64, disasm.Options{BaseAddr: 0x1000})
	p := New(disasm.ARM64, diag.Options{})
	if err := p.Run(insts); err != nil {
		t.Fatal(err)
	}

	a, ok := p.At(0x1000)
	if !ok {
		t.Fatal("no annotation on MRS")
	}
	if a.Comment != "[<] SCTLR_EL1 (System Control Register (EL1))" {
		t.Errorf("comment = %q", a.Comment)
	}
	if a.Kind != KindSysRegRead || a.Register != "SCTLR_EL1" || a.Access != "<" {
		t.Errorf("annotation = %+v", a)
	}

	// The TST that follows the read gets a field comment.
	a, ok = p.At(0x1004)
	if !ok {
		t.Fatal("no annotation on TST")
	}
	if a.Comment != "Test bit MMU Enable" {
		t.Errorf("comment = %q", a.Comment)
	}
	if a.Kind != KindTracked {
		t.Errorf("kind = %q", a.Kind)
	}
}

func TestAnnotateSysRegWriteBacktrack(t *testing.T) {
	// MOV X0, #0x1005; MSR SCTLR_EL1, X0
	insts := disasm.Disassemble(words(0xD28200A0, 0xD5181000), disasm.ARM64, disasm.Options{BaseAddr: 0x1000})
	p := New(disasm.ARM64, diag.Options{})
	if err := p.Run(insts); err != nil {
		t.Fatal(err)
	}

	a, ok := p.At(0x1004)
	if !ok || a.Access != ">" || a.Kind != KindSysRegWrite {
		t.Fatalf("MSR annotation = %+v, ok = %v", a, ok)
	}
	a, ok = p.At(0x1000)
	if !ok {
		t.Fatal("no annotation on MOV")
	}
	if a.Comment != "Set bits M, C, I" {
		t.Errorf("comment = %q", a.Comment)
	}
}

func TestAnnotateUnknownRegister(t *testing.T) {
	// An implementation-defined encoding missing from the tables.
	insts := []disasm.Inst{inst(0x40, 0xD53BFFE0, "mrs x0, s3_3_c15_c15_7")}
	p := New(disasm.ARM64, diag.Options{Mode: diag.ModeStrict})
	if err := p.Run(insts); err != nil {
		t.Fatalf("unknown register must not be fatal: %v", err)
	}
	a, ok := p.At(0x40)
	if !ok {
		t.Fatal("no annotation")
	}
	if a.Comment != "[<] Unknown system register." {
		t.Errorf("comment = %q", a.Comment)
	}
	if p.Diags.Len() != 1 || p.Diags.Items()[0].Kind != diag.KindUnknownReg {
		t.Errorf("diags = %+v", p.Diags.Items())
	}
}

func TestAnnotatePStateWrites(t *testing.T) {
	tests := []struct {
		name string
		raw  uint32
		want string
	}{
		{"DAIFSet", 0xD50342DF, "Set PSTATE.DAIF [--I-]"},
		{"DAIFClr", 0xD5034FFF, "Clr PSTATE.DAIF [DAIF]"},
		{"SPSel_1", 0xD50041BF, "Select PSTATE.SP = SP_ELx"},
		{"SPSel_0", 0xD50040BF, "Select PSTATE.SP = SP_EL0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(disasm.ARM64, diag.Options{})
			if err := p.Run([]disasm.Inst{inst(0, tt.raw, "msr pstate, #imm")}); err != nil {
				t.Fatal(err)
			}
			a, ok := p.At(0)
			if !ok {
				t.Fatal("no annotation")
			}
			if a.Comment != tt.want {
				t.Errorf("comment = %q, want %q", a.Comment, tt.want)
			}
		})
	}
}

func TestAnnotateSysOp(t *testing.T) {
	// DC CIVAC, X0
	p := New(disasm.ARM64, diag.Options{})
	if err := p.Run([]disasm.Inst{inst(0, 0xD50B7E20, "dc civac, x0")}); err != nil {
		t.Fatal(err)
	}
	a, ok := p.At(0)
	if !ok {
		t.Fatal("no annotation")
	}
	if a.Comment != "[>] DC CIVAC (Data Cache Clean and Invalidate by VA to PoC)" {
		t.Errorf("comment = %q", a.Comment)
	}
	if a.Kind != KindSysOp {
		t.Errorf("kind = %q", a.Kind)
	}
}

func TestAnnotateCoprocRead(t *testing.T) {
	// MRC p15, 0, r0, c1, c0, 0; TST r0, #1
	insts := disasm.Disassemble(words(0xEE110F10, 0xE3100001), disasm.ARM, disasm.Options{BaseAddr: 0x8000})
	p := New(disasm.ARM, diag.Options{})
	if err := p.Run(insts); err != nil {
		t.Fatal(err)
	}
	a, ok := p.At(0x8000)
	if !ok {
		t.Fatal("no annotation on MRC")
	}
	if a.Comment != "[<] SCTLR (System Control Register)" {
		t.Errorf("comment = %q", a.Comment)
	}
	a, ok = p.At(0x8004)
	if !ok || a.Comment != "Test bit MMU Enable" {
		t.Errorf("TST annotation = %+v, ok = %v", a, ok)
	}
}

func TestAnnotateCoprocWriteBacktrack(t *testing.T) {
	// MOV r0, #1; MCR p15, 0, r0, c1, c0, 0
	insts := disasm.Disassemble(words(0xE3A00001, 0xEE010F10), disasm.ARM, disasm.Options{BaseAddr: 0x8000})
	p := New(disasm.ARM, diag.Options{})
	if err := p.Run(insts); err != nil {
		t.Fatal(err)
	}
	a, ok := p.At(0x8000)
	if !ok || a.Comment != "Set bits M" {
		t.Errorf("MOV annotation = %+v, ok = %v", a, ok)
	}
}

func TestAnnotateCoproc64Alias(t *testing.T) {
	// MRRC p15, 2, r0, r1, c14 reads a banked register.
	p := New(disasm.ARM, diag.Options{})
	if err := p.Run([]disasm.Inst{inst(0, 0xEC510F2E, "mrrc p15, 2, r0, r1, c14")}); err != nil {
		t.Fatal(err)
	}
	a, ok := p.At(0)
	if !ok {
		t.Fatal("no annotation")
	}
	if !strings.Contains(a.Comment, "CNTP_CVAL") || !strings.Contains(a.Comment, " or CNTHP_CVAL") {
		t.Errorf("comment = %q", a.Comment)
	}
}

func TestAnnotatePSRImmediate(t *testing.T) {
	// MSR CPSR_c, #0xD3: Supervisor mode, IRQ and FIQ masked.
	p := New(disasm.ARM, diag.Options{})
	if err := p.Run([]disasm.Inst{inst(0, 0xE321F0D3, "msr cpsr_c, #0xd3")}); err != nil {
		t.Fatal(err)
	}
	a, ok := p.At(0)
	if !ok {
		t.Fatal("no annotation")
	}
	if a.Comment != "Set CPSR [--IF-], Mode: Supervisor" {
		t.Errorf("comment = %q", a.Comment)
	}
}

func TestAnnotateThumbCoproc(t *testing.T) {
	// 16-bit NOP, then MRC p15, 0, r0, c1, c0, 0 as a wide encoding.
	data := make([]byte, 6)
	binary.LittleEndian.PutUint16(data[0:2], 0xBF00)
	binary.LittleEndian.PutUint16(data[2:4], 0xEE11)
	binary.LittleEndian.PutUint16(data[4:6], 0x0F10)
	insts := disasm.Disassemble(data, disasm.Thumb, disasm.Options{BaseAddr: 0x8000})

	p := New(disasm.Thumb, diag.Options{Mode: diag.ModeStrict})
	if err := p.Run(insts); err != nil {
		t.Fatal(err)
	}
	a, ok := p.At(0x8002)
	if !ok {
		t.Fatal("no annotation on Thumb MRC")
	}
	if a.Comment != "[<] SCTLR (System Control Register)" {
		t.Errorf("comment = %q", a.Comment)
	}
}

func TestAnnotateIdempotent(t *testing.T) {
	insts := disasm.Disassemble(words(0xD5381000, 0xF240001F), disasm.ARM64, disasm.Options{BaseAddr: 0x1000})
	p := New(disasm.ARM64, diag.Options{})
	if err := p.Run(insts); err != nil {
		t.Fatal(err)
	}
	first := p.Annotations()
	if err := p.Run(insts); err != nil {
		t.Fatal(err)
	}
	second := p.Annotations()
	if len(first) != len(second) {
		t.Fatalf("annotation count changed: %d then %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("annotation %d changed: %+v then %+v", i, first[i], second[i])
		}
	}
}

func TestAnnotateCounts(t *testing.T) {
	// DSB SY; WFI; ERET; MRS X0, SCTLR_EL1
	insts := disasm.Disassemble(words(0xD5033F9F, 0xD503207F, 0xD69F03E0, 0xD5381000),
		disasm.ARM64, disasm.Options{})
	p := New(disasm.ARM64, diag.Options{})
	if err := p.Run(insts); err != nil {
		t.Fatal(err)
	}
	counts := p.Counts()
	if counts[KindBarrier] != 1 || counts[KindHint] != 1 ||
		counts[KindExceptReturn] != 1 || counts[KindSysRegRead] != 1 {
		t.Errorf("counts = %+v", counts)
	}
}

func TestAnnotateStrictUndecodable(t *testing.T) {
	insts := []disasm.Inst{inst(0, 0, ".word 0x00000000")}
	p := New(disasm.ARM64, diag.Options{Mode: diag.ModeStrict})
	if err := p.Run(insts); err == nil {
		t.Fatal("strict mode accepted an undecodable word")
	}

	p = New(disasm.ARM64, diag.Options{})
	if err := p.Run(insts); err != nil {
		t.Fatal(err)
	}
	if p.Diags.Len() != 1 || p.Diags.Items()[0].Kind != diag.KindUndecodable {
		t.Errorf("diags = %+v", p.Diags.Items())
	}
}
