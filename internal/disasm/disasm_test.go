package disasm

import (
	"encoding/binary"
	"strings"
	"testing"
)

func TestDisassembleARM64(t *testing.T) {
	// NOP; MRS X0, SCTLR_EL1
	data := make([]byte, 8)
	binary.LittleEndian.PutUint32(data[0:4], 0xD503201F)
	binary.LittleEndian.PutUint32(data[4:8], 0xD5381000)

	insts := Disassemble(data, ARM64, Options{BaseAddr: 0x1000})
	if len(insts) != 2 {
		t.Fatalf("got %d instructions, want 2", len(insts))
	}
	if insts[0].Addr != 0x1000 || insts[1].Addr != 0x1004 {
		t.Errorf("addrs = 0x%x, 0x%x", insts[0].Addr, insts[1].Addr)
	}
	if !strings.Contains(strings.ToLower(insts[0].Text), "nop") {
		t.Errorf("expected NOP, got: %s", insts[0].Text)
	}
	if insts[1].Raw != 0xD5381000 || insts[1].Size != 4 {
		t.Errorf("inst[1] = %+v", insts[1])
	}
}

func TestDisassembleARM(t *testing.T) {
	// MRC p15, 0, r0, c1, c0, 0; MOV r0, #0
	data := make([]byte, 8)
	binary.LittleEndian.PutUint32(data[0:4], 0xEE110F10)
	binary.LittleEndian.PutUint32(data[4:8], 0xE3A00000)

	insts := Disassemble(data, ARM, Options{BaseAddr: 0x8000})
	if len(insts) != 2 {
		t.Fatalf("got %d instructions, want 2", len(insts))
	}
	if !strings.Contains(strings.ToLower(insts[0].Text), "mrc") {
		t.Errorf("expected MRC, got: %s", insts[0].Text)
	}
	if !strings.Contains(strings.ToLower(insts[1].Text), "mov") {
		t.Errorf("expected MOV, got: %s", insts[1].Text)
	}
}

func TestDisassembleThumbPairsWideInsns(t *testing.T) {
	// 16-bit NOP (0xBF00), then MRC p15, 0, r0, c1, c0, 0 as Thumb-2
	// (halfwords 0xEE11, 0x0F10).
	data := make([]byte, 6)
	binary.LittleEndian.PutUint16(data[0:2], 0xBF00)
	binary.LittleEndian.PutUint16(data[2:4], 0xEE11)
	binary.LittleEndian.PutUint16(data[4:6], 0x0F10)

	insts := Disassemble(data, Thumb, Options{BaseAddr: 0x8000})
	if len(insts) != 2 {
		t.Fatalf("got %d instructions, want 2", len(insts))
	}
	if insts[0].Size != 2 || insts[0].Addr != 0x8000 {
		t.Errorf("inst[0] = %+v", insts[0])
	}
	if insts[1].Size != 4 || insts[1].Addr != 0x8002 {
		t.Errorf("inst[1] = %+v", insts[1])
	}
	if insts[1].Raw != 0xEE110F10 {
		t.Errorf("combined raw = %#x, want 0xEE110F10", insts[1].Raw)
	}
	if !strings.Contains(strings.ToLower(insts[1].Text), "mrc") {
		t.Errorf("expected MRC, got: %s", insts[1].Text)
	}
}

func TestDisassembleMaxSteps(t *testing.T) {
	data := make([]byte, 400)
	for i := 0; i < 100; i++ {
		binary.LittleEndian.PutUint32(data[i*4:], 0xD503201F)
	}
	insts := Disassemble(data, ARM64, Options{MaxSteps: 10})
	if len(insts) != 10 {
		t.Fatalf("got %d instructions, want 10", len(insts))
	}
}

func TestDisassembleEmpty(t *testing.T) {
	if insts := Disassemble(nil, ARM64, Options{}); len(insts) != 0 {
		t.Fatalf("got %d instructions for nil data", len(insts))
	}
	if insts := Disassemble([]byte{0x01, 0x02}, ARM, Options{}); len(insts) != 0 {
		t.Fatalf("got %d instructions for 2 bytes", len(insts))
	}
}

func TestFormat(t *testing.T) {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint32(data[0:4], 0xD503201F)
	binary.LittleEndian.PutUint32(data[4:8], 0xD5381000)
	insts := Disassemble(data, ARM64, Options{BaseAddr: 0x1000})

	ann := func(inst Inst) string {
		if _, ok := DecodeSysRegMove(inst.Raw); ok {
			return "sysreg access"
		}
		return ""
	}
	text := Format(insts, MapLookup(map[uint64]string{0x1000: "reset"}), ann)
	if !strings.Contains(text, "0x00001000") {
		t.Errorf("missing address in output: %s", text)
	}
	if !strings.Contains(text, "<reset>") {
		t.Errorf("missing symbol in output: %s", text)
	}
	if !strings.Contains(text, "; sysreg access") {
		t.Errorf("missing annotation in output: %s", text)
	}

	if out2 := Format(insts, MapLookup(map[uint64]string{0x1000: "reset"}), ann); out2 != text {
		t.Error("output not deterministic")
	}
}
