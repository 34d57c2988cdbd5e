// Package elfx provides ELF loading helpers for ARM and ARM64 binaries.
package elfx

import (
	"debug/elf"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

var (
	ErrNotELF    = errors.New("elfx: not an ELF file")
	ErrNotARM    = errors.New("elfx: not an ARM or ARM64 binary")
	ErrBadType   = errors.New("elfx: not an executable or shared object")
	ErrNoSegment = errors.New("elfx: no PT_LOAD segment covers address")
	ErrNoText    = errors.New("elfx: no executable section or segment")
)

// Machine is the validated target of an opened file.
type Machine int

const (
	MachineARM64 Machine = iota // 64-bit EM_AARCH64
	MachineARM                  // 32-bit EM_ARM
)

func (m Machine) String() string {
	if m == MachineARM {
		return "arm"
	}
	return "arm64"
}

// File wraps a debug/elf.File with convenience methods for instruction
// scanning.
type File struct {
	ELF     *elf.File
	Machine Machine
	raw     io.ReaderAt
	size    int64
}

// Open opens an ELF file and validates it is an ARM or ARM64 executable or
// shared object.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("elfx: open: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("elfx: stat: %w", err)
	}

	ef, err := elf.NewFile(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %v", ErrNotELF, err)
	}

	var machine Machine
	switch {
	case ef.Class == elf.ELFCLASS64 && ef.Machine == elf.EM_AARCH64:
		machine = MachineARM64
	case ef.Class == elf.ELFCLASS32 && ef.Machine == elf.EM_ARM:
		machine = MachineARM
	default:
		ef.Close()
		return nil, fmt.Errorf("%w: class=%v machine=%v", ErrNotARM, ef.Class, ef.Machine)
	}
	if ef.Type != elf.ET_EXEC && ef.Type != elf.ET_DYN {
		ef.Close()
		return nil, fmt.Errorf("%w: type=%v", ErrBadType, ef.Type)
	}

	return &File{ELF: ef, Machine: machine, raw: f, size: info.Size()}, nil
}

// Close releases resources.
func (f *File) Close() error {
	return f.ELF.Close()
}

// FileSize returns the size of the underlying file.
func (f *File) FileSize() int64 { return f.size }

// ExecRegion is a chunk of executable bytes with its load address.
type ExecRegion struct {
	Name string
	Addr uint64
	Data []byte
}

// ExecRegions returns the executable sections of the file. Stripped files
// without a section table fall back to the executable PT_LOAD segments.
func (f *File) ExecRegions() ([]ExecRegion, error) {
	var regions []ExecRegion
	for _, s := range f.ELF.Sections {
		if s.Flags&elf.SHF_EXECINSTR == 0 || s.Type == elf.SHT_NOBITS || s.Size == 0 {
			continue
		}
		data, err := s.Data()
		if err != nil {
			return nil, fmt.Errorf("elfx: section %s: %w", s.Name, err)
		}
		regions = append(regions, ExecRegion{Name: s.Name, Addr: s.Addr, Data: data})
	}
	if len(regions) > 0 {
		return regions, nil
	}

	for i, p := range f.ELF.Progs {
		if p.Type != elf.PT_LOAD || p.Flags&elf.PF_X == 0 || p.Filesz == 0 {
			continue
		}
		data := make([]byte, p.Filesz)
		if _, err := f.raw.ReadAt(data, int64(p.Off)); err != nil {
			return nil, fmt.Errorf("elfx: segment %d: %w", i, err)
		}
		regions = append(regions, ExecRegion{
			Name: fmt.Sprintf("load%d", i),
			Addr: p.Vaddr,
			Data: data,
		})
	}
	if len(regions) == 0 {
		return nil, ErrNoText
	}
	return regions, nil
}

// Symbol is a function symbol with its load address and size.
type Symbol struct {
	Name  string
	Addr  uint64
	Size  uint64
	Thumb bool // ARM symbol with the low address bit set
}

// FunctionSymbols returns the STT_FUNC symbols from the symbol and dynamic
// symbol tables, sorted by address. For EM_ARM the Thumb address bit is
// folded into the Thumb flag.
func (f *File) FunctionSymbols() []Symbol {
	var out []Symbol
	seen := make(map[uint64]bool)

	add := func(syms []elf.Symbol) {
		for _, s := range syms {
			if elf.ST_TYPE(s.Info) != elf.STT_FUNC || s.Name == "" {
				continue
			}
			addr := s.Value
			thumb := false
			if f.Machine == MachineARM && addr&1 == 1 {
				addr &^= 1
				thumb = true
			}
			if seen[addr] {
				continue
			}
			seen[addr] = true
			out = append(out, Symbol{Name: s.Name, Addr: addr, Size: s.Size, Thumb: thumb})
		}
	}

	if syms, err := f.ELF.Symbols(); err == nil {
		add(syms)
	}
	if syms, err := f.ELF.DynamicSymbols(); err == nil {
		add(syms)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Addr < out[j].Addr })
	return out
}

// SymbolTable resolves addresses against a sorted function symbol list.
type SymbolTable struct {
	syms []Symbol
}

// NewSymbolTable sorts the symbols by address.
func NewSymbolTable(syms []Symbol) *SymbolTable {
	sorted := make([]Symbol, len(syms))
	copy(sorted, syms)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Addr < sorted[j].Addr })
	return &SymbolTable{syms: sorted}
}

// Lookup returns the symbol name starting exactly at addr.
func (t *SymbolTable) Lookup(addr uint64) (string, bool) {
	i := sort.Search(len(t.syms), func(i int) bool { return t.syms[i].Addr >= addr })
	if i < len(t.syms) && t.syms[i].Addr == addr {
		return t.syms[i].Name, true
	}
	return "", false
}

// Enclosing returns the symbol whose range contains addr. A zero-size
// symbol extends to the next symbol's address.
func (t *SymbolTable) Enclosing(addr uint64) (Symbol, bool) {
	i := sort.Search(len(t.syms), func(i int) bool { return t.syms[i].Addr > addr })
	if i == 0 {
		return Symbol{}, false
	}
	s := t.syms[i-1]
	end := s.Addr + s.Size
	if s.Size == 0 {
		if i < len(t.syms) {
			end = t.syms[i].Addr
		} else {
			end = ^uint64(0)
		}
	}
	if addr < end {
		return s, true
	}
	return Symbol{}, false
}

// SegmentInfo describes a PT_LOAD segment.
type SegmentInfo struct {
	Vaddr  uint64
	Memsz  uint64
	Filesz uint64
	Offset uint64
	Flags  elf.ProgFlag
}

// LoadSegments returns all PT_LOAD segments.
func (f *File) LoadSegments() []SegmentInfo {
	var segs []SegmentInfo
	for _, p := range f.ELF.Progs {
		if p.Type != elf.PT_LOAD {
			continue
		}
		segs = append(segs, SegmentInfo{
			Vaddr:  p.Vaddr,
			Memsz:  p.Memsz,
			Filesz: p.Filesz,
			Offset: p.Off,
			Flags:  p.Flags,
		})
	}
	return segs
}

// VAToFileOffset converts a virtual address to a file offset using PT_LOAD segments.
func (f *File) VAToFileOffset(va uint64) (uint64, error) {
	for _, p := range f.ELF.Progs {
		if p.Type != elf.PT_LOAD {
			continue
		}
		if va >= p.Vaddr && va < p.Vaddr+p.Memsz {
			offset := va - p.Vaddr + p.Off
			if offset >= uint64(f.size) {
				return 0, fmt.Errorf("elfx: VA 0x%x maps to offset 0x%x beyond file size 0x%x", va, offset, f.size)
			}
			return offset, nil
		}
	}
	return 0, fmt.Errorf("%w: VA 0x%x", ErrNoSegment, va)
}

// ReadBytesAtVA reads up to n bytes starting at the given virtual address,
// clamped to the end of the file.
func (f *File) ReadBytesAtVA(va uint64, n int) ([]byte, error) {
	off, err := f.VAToFileOffset(va)
	if err != nil {
		return nil, err
	}
	avail := f.size - int64(off)
	if avail <= 0 {
		return nil, fmt.Errorf("elfx: offset 0x%x at or past end of file", off)
	}
	if int64(n) > avail {
		n = int(avail)
	}
	buf := make([]byte, n)
	if _, err := f.raw.ReadAt(buf, int64(off)); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("elfx: read at 0x%x: %w", off, err)
	}
	return buf, nil
}

// ByteOrder returns the ELF byte order.
func (f *File) ByteOrder() binary.ByteOrder {
	return f.ELF.ByteOrder
}

// FindRegion returns the region a name refers to, matching with or
// without a leading dot.
func FindRegion(regions []ExecRegion, name string) (ExecRegion, bool) {
	for _, r := range regions {
		if r.Name == name || strings.TrimPrefix(r.Name, ".") == strings.TrimPrefix(name, ".") {
			return r, true
		}
	}
	return ExecRegion{}, false
}
