package elfx

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// writeMinimalELF64 writes a headers-only ARM64 ET_EXEC with one R+X
// PT_LOAD segment at 0x1000 holding the given code.
func writeMinimalELF64(t *testing.T, code []byte) string {
	t.Helper()
	const (
		ehSize = 64
		phSize = 56
	)
	buf := make([]byte, ehSize+phSize+len(code))
	le := binary.LittleEndian

	copy(buf, "\x7fELF")
	buf[4] = 2                  // ELFCLASS64
	buf[5] = 1                  // little endian
	buf[6] = 1                  // EV_CURRENT
	le.PutUint16(buf[16:], 2)   // ET_EXEC
	le.PutUint16(buf[18:], 183) // EM_AARCH64
	le.PutUint32(buf[20:], 1)
	le.PutUint64(buf[24:], 0x1000) // entry
	le.PutUint64(buf[32:], ehSize) // phoff
	le.PutUint16(buf[52:], ehSize) // ehsize
	le.PutUint16(buf[54:], phSize) // phentsize
	le.PutUint16(buf[56:], 1)      // phnum

	ph := buf[ehSize:]
	le.PutUint32(ph[0:], 1)                  // PT_LOAD
	le.PutUint32(ph[4:], 5)                  // R+X
	le.PutUint64(ph[8:], ehSize+phSize)      // offset
	le.PutUint64(ph[16:], 0x1000)            // vaddr
	le.PutUint64(ph[24:], 0x1000)            // paddr
	le.PutUint64(ph[32:], uint64(len(code))) // filesz
	le.PutUint64(ph[40:], uint64(len(code))) // memsz
	le.PutUint64(ph[48:], 4)                 // align

	copy(buf[ehSize+phSize:], code)

	path := filepath.Join(t.TempDir(), "min.elf")
	if err := os.WriteFile(path, buf, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpenMinimalARM64(t *testing.T) {
	code := make([]byte, 8)
	binary.LittleEndian.PutUint32(code[0:4], 0xD503201F) // NOP
	binary.LittleEndian.PutUint32(code[4:8], 0xD5381000) // MRS X0, SCTLR_EL1

	f, err := Open(writeMinimalELF64(t, code))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if f.Machine != MachineARM64 {
		t.Errorf("machine = %v", f.Machine)
	}

	regions, err := f.ExecRegions()
	if err != nil {
		t.Fatal(err)
	}
	if len(regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(regions))
	}
	if regions[0].Addr != 0x1000 || len(regions[0].Data) != 8 {
		t.Errorf("region = %s addr=0x%x len=%d", regions[0].Name, regions[0].Addr, len(regions[0].Data))
	}
	if got := binary.LittleEndian.Uint32(regions[0].Data[4:]); got != 0xD5381000 {
		t.Errorf("code word = %#x", got)
	}
}

func TestVAToFileOffset(t *testing.T) {
	f, err := Open(writeMinimalELF64(t, make([]byte, 16)))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	off, err := f.VAToFileOffset(0x1004)
	if err != nil {
		t.Fatal(err)
	}
	if off != 64+56+4 {
		t.Errorf("offset = %d", off)
	}
	if _, err := f.VAToFileOffset(0x9000); err == nil {
		t.Error("unmapped VA accepted")
	}
}

func TestOpenRejectsNonELF(t *testing.T) {
	tmp := filepath.Join(t.TempDir(), "notelf")
	if err := os.WriteFile(tmp, []byte("not an ELF file at all"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(tmp); err == nil {
		t.Fatal("expected error for non-ELF file")
	}
}

func TestSymbolTable(t *testing.T) {
	table := NewSymbolTable([]Symbol{
		{Name: "reset", Addr: 0x1000, Size: 0x20},
		{Name: "enable_mmu", Addr: 0x1040, Size: 0},
		{Name: "park_cpu", Addr: 0x1080, Size: 0x10},
	})

	if name, ok := table.Lookup(0x1040); !ok || name != "enable_mmu" {
		t.Errorf("Lookup(0x1040) = %q, %v", name, ok)
	}
	if _, ok := table.Lookup(0x1044); ok {
		t.Error("Lookup matched a mid-function address")
	}

	tests := []struct {
		addr uint64
		want string
		ok   bool
	}{
		{0x1000, "reset", true},
		{0x101C, "reset", true},
		{0x1020, "", false},          // past reset's sized range
		{0x1044, "enable_mmu", true}, // zero size extends to next symbol
		{0x1088, "park_cpu", true},
		{0x1090, "", false},
		{0x0FFF, "", false},
	}
	for _, tt := range tests {
		s, ok := table.Enclosing(tt.addr)
		if ok != tt.ok || (ok && s.Name != tt.want) {
			t.Errorf("Enclosing(%#x) = %q, %v; want %q, %v", tt.addr, s.Name, ok, tt.want, tt.ok)
		}
	}
}
