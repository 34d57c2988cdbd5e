package annotate

import (
	"encoding/binary"
	"sort"
	"strings"

	"sysmark/internal/disasm"
	"sysmark/internal/sysreg"
)

// Value tracking. A write to a register with a known bitfield table walks
// backward over the instructions that built the source GPR; a read walks
// forward over the instructions that test it. Both stop at the first
// instruction that does not match the expected patterns.

func (p *Pass) setTracked(inst disasm.Inst, comment string) {
	p.set(inst, KindTracked, "", "", "", comment)
}

// backtrackFields comments the MOV/ORR/BIC/AND/LDR chain that built the
// value written to a system register.
func (p *Pass) backtrackFields(insts []disasm.Inst, i, gpr int, bitmap map[int]sysreg.Desc) {
	for j := i - 1; j >= 0; j-- {
		inst := insts[j]
		if p.Arch == disasm.ARM64 {
			if !p.backtrackARM64(inst, gpr, bitmap) {
				return
			}
		} else {
			if !p.backtrackARM32(inst, gpr, bitmap) {
				return
			}
		}
	}
}

// backtrackARM64 handles one step; returns true to keep walking.
func (p *Pass) backtrackARM64(inst disasm.Inst, gpr int, bitmap map[int]sysreg.Desc) bool {
	raw := inst.Raw
	if rd, val, ok := disasm.DecodeMOVZ(raw); ok && rd == gpr {
		p.commentBits(inst, "Set bits", abbrevs(extractBits(bitmap, val)))
		return false
	}
	if rt, off, ok := disasm.DecodeLDRLiteral(raw); ok && rt == gpr {
		if val, ok := p.literal32(inst.Addr + uint64(off)); ok {
			p.commentBits(inst, "Set bits", abbrevs(extractBits(bitmap, uint64(val))))
		}
		return false
	}
	if rd, rn, val, ok := disasm.DecodeORRImm(raw); ok && rd == gpr {
		if rn == 31 { // MOV Rd, #bimm alias
			p.commentBits(inst, "Set bits", abbrevs(extractBits(bitmap, val)))
			return false
		}
		p.commentBits(inst, "Set bit", names(extractBits(bitmap, val)))
		return true
	}
	// AND with an inverted mask is how A64 clears bits.
	if rd, _, val, ok := disasm.DecodeANDImm(raw); ok && rd == gpr {
		p.commentBits(inst, "Clear bit", names(extractBits(bitmap, ^val)))
		return true
	}
	return false
}

func (p *Pass) backtrackARM32(inst disasm.Inst, gpr int, bitmap map[int]sysreg.Desc) bool {
	raw := inst.Raw
	if inst.Thumb {
		return p.backtrackT32(inst, gpr, bitmap)
	}
	if rd, val, ok := disasm.DecodeA32MOVImm(raw); ok && rd == gpr {
		p.commentBits(inst, "Set bits", abbrevs(extractBits(bitmap, uint64(val))))
		return false
	}
	if rt, off, ok := disasm.DecodeA32LDRLiteral(raw); ok && rt == gpr {
		// ARM PC reads as the instruction address plus 8.
		if val, ok := p.literal32(inst.Addr + 8 + uint64(int64(off))); ok {
			p.commentBits(inst, "Set bits", abbrevs(extractBits(bitmap, uint64(val))))
		}
		return false
	}
	if rd, _, val, ok := disasm.DecodeA32ORRImm(raw); ok && rd == gpr {
		p.commentBits(inst, "Set bit", names(extractBits(bitmap, uint64(val))))
		return true
	}
	if rd, _, val, ok := disasm.DecodeA32BICImm(raw); ok && rd == gpr {
		p.commentBits(inst, "Clear bit", names(extractBits(bitmap, uint64(val))))
		return true
	}
	return false
}

func (p *Pass) backtrackT32(inst disasm.Inst, gpr int, bitmap map[int]sysreg.Desc) bool {
	raw := inst.Raw
	if inst.Size == 2 {
		// T16 MOVS Rd, #imm8.
		if raw>>11 == 0b00100 && int((raw>>8)&0x7) == gpr {
			p.commentBits(inst, "Set bits", abbrevs(extractBits(bitmap, uint64(raw&0xFF))))
			return false
		}
		return false
	}
	if rd, val, ok := disasm.DecodeT32MOVImm(raw); ok && rd == gpr {
		p.commentBits(inst, "Set bits", abbrevs(extractBits(bitmap, uint64(val))))
		return false
	}
	if rd, _, val, ok := disasm.DecodeT32ORRImm(raw); ok && rd == gpr {
		p.commentBits(inst, "Set bit", names(extractBits(bitmap, uint64(val))))
		return true
	}
	if rd, _, val, ok := disasm.DecodeT32BICImm(raw); ok && rd == gpr {
		p.commentBits(inst, "Clear bit", names(extractBits(bitmap, uint64(val))))
		return true
	}
	return false
}

// trackFields comments the TST/AND/TBZ chain that tests the value read
// from a system register.
func (p *Pass) trackFields(insts []disasm.Inst, i, gpr int, bitmap map[int]sysreg.Desc) {
	for j := i + 1; j < len(insts); j++ {
		inst := insts[j]
		var keep bool
		if p.Arch == disasm.ARM64 {
			keep = p.trackARM64(inst, gpr, bitmap)
		} else {
			keep = p.trackARM32(inst, gpr, bitmap)
		}
		if !keep {
			return
		}
	}
}

func (p *Pass) trackARM64(inst disasm.Inst, gpr int, bitmap map[int]sysreg.Desc) bool {
	raw := inst.Raw
	if rd, rn, val, ok := disasm.DecodeANDSImm(raw); ok && rd == 31 && rn == gpr {
		p.commentBits(inst, "Test bit", names(extractBits(bitmap, val)))
		return true
	}
	if _, rn, val, ok := disasm.DecodeANDImm(raw); ok && rn == gpr {
		p.commentBits(inst, "Test bit", names(extractBits(bitmap, val)))
		return true
	}
	if rt, bit, ok := disasm.DecodeTestBranch(raw); ok && rt == gpr {
		p.commentBits(inst, "Test bit", names(extractBits(bitmap, uint64(1)<<uint(bit))))
		return true
	}
	return false
}

func (p *Pass) trackARM32(inst disasm.Inst, gpr int, bitmap map[int]sysreg.Desc) bool {
	raw := inst.Raw
	if inst.Thumb {
		if inst.Size != 4 {
			return false
		}
		if rn, val, ok := disasm.DecodeT32TSTImm(raw); ok && rn == gpr {
			p.commentBits(inst, "Test bit", names(extractBits(bitmap, uint64(val))))
			return true
		}
		if _, rn, val, ok := disasm.DecodeT32ANDImm(raw); ok && rn == gpr {
			p.commentBits(inst, "Test bit", names(extractBits(bitmap, uint64(val))))
			return true
		}
		return false
	}
	if rn, val, ok := disasm.DecodeA32TSTImm(raw); ok && rn == gpr {
		p.commentBits(inst, "Test bit", names(extractBits(bitmap, uint64(val))))
		return true
	}
	if rn, val, ok := disasm.DecodeA32TEQImm(raw); ok && rn == gpr {
		p.commentBits(inst, "Test bit", names(extractBits(bitmap, uint64(val))))
		return true
	}
	if _, rn, val, ok := disasm.DecodeA32ANDImm(raw); ok && rn == gpr {
		p.commentBits(inst, "Test bit", names(extractBits(bitmap, uint64(val))))
		return true
	}
	return false
}

// commentBits attaches a tracking comment unless no table bit matched.
func (p *Pass) commentBits(inst disasm.Inst, verb string, list string) {
	if list == "" {
		return
	}
	p.setTracked(inst, verb+" "+list)
}

// extractBits returns the table entries whose bit is set in value,
// in ascending bit order.
func extractBits(bitmap map[int]sysreg.Desc, value uint64) []sysreg.Desc {
	var set []int
	for b := range bitmap {
		if b < 64 && value&(uint64(1)<<uint(b)) != 0 {
			set = append(set, b)
		}
	}
	sort.Ints(set)
	out := make([]sysreg.Desc, len(set))
	for i, b := range set {
		out[i] = bitmap[b]
	}
	return out
}

func abbrevs(descs []sysreg.Desc) string {
	parts := make([]string, len(descs))
	for i, d := range descs {
		parts[i] = d.Name
	}
	return strings.Join(parts, ", ")
}

func names(descs []sysreg.Desc) string {
	parts := make([]string, len(descs))
	for i, d := range descs {
		parts[i] = d.Doc
	}
	return strings.Join(parts, ", ")
}

// literal32 reads a 32-bit literal pool entry at a virtual address.
func (p *Pass) literal32(addr uint64) (uint32, bool) {
	if p.Data == nil || addr < p.Base {
		return 0, false
	}
	off := addr - p.Base
	if off+4 > uint64(len(p.Data)) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(p.Data[off : off+4]), true
}
