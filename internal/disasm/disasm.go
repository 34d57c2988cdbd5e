// Package disasm decodes ARM and ARM64 instruction streams and extracts
// the operand fields of system instructions from their raw encodings.
package disasm

import (
	"encoding/binary"
	"fmt"
	"strings"

	"golang.org/x/arch/arm/armasm"
	"golang.org/x/arch/arm64/arm64asm"
)

// Arch selects the instruction set to decode.
type Arch int

const (
	ARM64 Arch = iota // AArch64, fixed 4-byte
	ARM               // AArch32 ARM, fixed 4-byte
	Thumb             // AArch32 Thumb, 2- or 4-byte
)

func (a Arch) String() string {
	switch a {
	case ARM64:
		return "arm64"
	case ARM:
		return "arm"
	case Thumb:
		return "thumb"
	}
	return "unknown"
}

// Inst is a decoded instruction with address and raw encoding. For 32-bit
// Thumb instructions Raw holds hw1<<16|hw2 so that field positions match
// the ARM encoding of the same instruction.
type Inst struct {
	Addr     uint64
	Raw      uint32
	Size     int  // 4, or 2 for a 16-bit Thumb instruction
	Thumb    bool // halfword byte order in listings
	Mnemonic string
	Operands string
	Text     string // full disassembly line
}

// SymbolLookup resolves an address to a symbolic name. Returns ("", false) if unknown.
type SymbolLookup func(addr uint64) (name string, ok bool)

// Annotator returns an optional inline comment for an instruction.
// Empty string means no annotation.
type Annotator func(inst Inst) string

// Options controls disassembly behavior.
type Options struct {
	BaseAddr uint64       // VA of the first byte in Data
	MaxSteps int          // maximum instructions to decode; 0 = 10M
	Symbols  SymbolLookup // optional symbol resolver
}

const defaultMaxSteps = 10_000_000

func (o Options) effectiveMax() int {
	if o.MaxSteps > 0 {
		return o.MaxSteps
	}
	return defaultMaxSteps
}

// Disassemble decodes instructions from a byte region. Undecodable words
// render as .word/.short data and are kept in the stream so that addresses
// stay continuous.
func Disassemble(data []byte, arch Arch, opts Options) []Inst {
	switch arch {
	case ARM64:
		return disassemble32Stream(data, opts, decodeARM64)
	case ARM:
		return disassemble32Stream(data, opts, decodeARM)
	case Thumb:
		return disassembleThumb(data, opts)
	}
	return nil
}

// disassemble32Stream walks fixed 4-byte instructions.
func disassemble32Stream(data []byte, opts Options, decode func(buf []byte, raw uint32) string) []Inst {
	maxSteps := opts.effectiveMax()
	n := len(data) / 4
	if n > maxSteps {
		n = maxSteps
	}

	result := make([]Inst, 0, n)
	for i := 0; i < n; i++ {
		off := i * 4
		raw := binary.LittleEndian.Uint32(data[off : off+4])
		addr := opts.BaseAddr + uint64(off)

		text := decode(data[off:off+4], raw)
		mnemonic, operands := splitText(text)

		result = append(result, Inst{
			Addr:     addr,
			Raw:      raw,
			Size:     4,
			Mnemonic: mnemonic,
			Operands: operands,
			Text:     text,
		})
	}
	return result
}

func decodeARM64(buf []byte, raw uint32) string {
	inst, err := arm64asm.Decode(buf)
	if err != nil {
		return fmt.Sprintf(".word 0x%08x", raw)
	}
	return inst.String()
}

func decodeARM(buf []byte, raw uint32) string {
	inst, err := armasm.Decode(buf, armasm.ModeARM)
	if err != nil {
		if text, ok := systemText(raw); ok {
			return text
		}
		return fmt.Sprintf(".word 0x%08x", raw)
	}
	return armasm.GNUSyntax(inst)
}

// disassembleThumb walks 2-byte halfwords, pairing 32-bit encodings.
func disassembleThumb(data []byte, opts Options) []Inst {
	maxSteps := opts.effectiveMax()

	var result []Inst
	for off := 0; off+2 <= len(data) && len(result) < maxSteps; {
		hw1 := binary.LittleEndian.Uint16(data[off : off+2])
		addr := opts.BaseAddr + uint64(off)

		size := 2
		raw := uint32(hw1)
		if thumb32Prefix(hw1) && off+4 <= len(data) {
			hw2 := binary.LittleEndian.Uint16(data[off+2 : off+4])
			raw = uint32(hw1)<<16 | uint32(hw2)
			size = 4
		}

		text := decodeThumb(data[off:off+size], raw, size)
		mnemonic, operands := splitText(text)

		result = append(result, Inst{
			Addr:     addr,
			Raw:      raw,
			Size:     size,
			Thumb:    true,
			Mnemonic: mnemonic,
			Operands: operands,
			Text:     text,
		})
		off += size
	}
	return result
}

// thumb32Prefix reports whether a halfword starts a 32-bit Thumb encoding.
func thumb32Prefix(hw uint16) bool {
	return hw>>11 == 0b11101 || hw>>11 == 0b11110 || hw>>11 == 0b11111
}

func decodeThumb(buf []byte, raw uint32, size int) string {
	if inst, err := armasm.Decode(buf, armasm.ModeThumb); err == nil {
		return armasm.GNUSyntax(inst)
	}
	if size == 4 {
		if text, ok := systemText(raw); ok {
			return text
		}
		return fmt.Sprintf(".word 0x%08x", raw)
	}
	return fmt.Sprintf(".short 0x%04x", raw)
}

// systemText renders the AArch32 system instructions we care about when the
// library decoder cannot. The field layout of a combined Thumb word matches
// the ARM one, so both paths land here.
func systemText(raw uint32) (string, bool) {
	if cp, ok := DecodeCoprocMove(raw); ok {
		mnem := "mcr"
		if cp.Read {
			mnem = "mrc"
		}
		if raw>>28 == 0xF {
			mnem += "2"
		}
		return fmt.Sprintf("%s p%d, %d, r%d, c%d, c%d, %d", mnem, cp.CP, cp.Opc1, cp.Rt, cp.CRn, cp.CRm, cp.Opc2), true
	}
	if cp, ok := DecodeCoprocMove64(raw); ok {
		mnem := "mcrr"
		if cp.Read {
			mnem = "mrrc"
		}
		if raw>>28 == 0xF {
			mnem += "2"
		}
		return fmt.Sprintf("%s p%d, %d, r%d, r%d, c%d", mnem, cp.CP, cp.Opc1, cp.Rt, cp.Rt2, cp.CRm), true
	}
	return "", false
}

func splitText(text string) (mnemonic, operands string) {
	parts := strings.SplitN(text, " ", 2)
	mnemonic = parts[0]
	if len(parts) > 1 {
		operands = parts[1]
	}
	return mnemonic, operands
}

// MapLookup returns a SymbolLookup backed by a map of known addresses.
func MapLookup(symbols map[uint64]string) SymbolLookup {
	return func(addr uint64) (string, bool) {
		name, ok := symbols[addr]
		return name, ok
	}
}

// Format renders a slice of instructions as stable text output.
// Each line: <addr>  <hex bytes>  <disasm>  ; <comments>
// Annotators are checked in order; first non-empty result is used.
func Format(insts []Inst, lookup SymbolLookup, annotators ...Annotator) string {
	var b strings.Builder
	for _, inst := range insts {
		fmt.Fprintf(&b, "0x%08x  ", inst.Addr)
		// Raw bytes in memory order.
		if inst.Size == 2 {
			fmt.Fprintf(&b, "%02x %02x        ", byte(inst.Raw), byte(inst.Raw>>8))
		} else if inst.Thumb {
			fmt.Fprintf(&b, "%02x %02x %02x %02x  ",
				byte(inst.Raw>>16), byte(inst.Raw>>24), byte(inst.Raw), byte(inst.Raw>>8))
		} else {
			fmt.Fprintf(&b, "%02x %02x %02x %02x  ",
				byte(inst.Raw), byte(inst.Raw>>8), byte(inst.Raw>>16), byte(inst.Raw>>24))
		}
		b.WriteString(inst.Text)
		if lookup != nil {
			if name, ok := lookup(inst.Addr); ok {
				fmt.Fprintf(&b, "  ; <%s>", name)
			}
		}
		for _, ann := range annotators {
			if s := ann(inst); s != "" {
				fmt.Fprintf(&b, "  ; %s", s)
				break
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
