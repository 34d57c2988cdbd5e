// Package annotate finds system instructions in a decoded stream and
// attaches comments naming the registers and operations they touch.
package annotate

import (
	"fmt"
	"sort"
	"strings"

	"sysmark/internal/diag"
	"sysmark/internal/disasm"
	"sysmark/internal/sysreg"
)

// Kind classifies a system instruction.
type Kind string

const (
	KindSysRegRead   Kind = "sysreg_read"
	KindSysRegWrite  Kind = "sysreg_write"
	KindPStateWrite  Kind = "pstate_write"
	KindPSRWrite     Kind = "psr_write"
	KindPSRRead      Kind = "psr_read"
	KindSysOp        Kind = "sys_op"
	KindCoprocRead   Kind = "coproc_read"
	KindCoprocWrite  Kind = "coproc_write"
	KindCoprocOther  Kind = "coproc_other" // LDC/STC/CDP
	KindBarrier      Kind = "barrier"
	KindHint         Kind = "hint"
	KindException    Kind = "exception"
	KindExceptReturn Kind = "exception_return"
	KindPAuth        Kind = "pauth"
	KindMisc         Kind = "misc"
	KindTracked      Kind = "tracked" // value build/test near a register access
)

// Annotation is one comment attached to an address.
type Annotation struct {
	Addr     uint64 `json:"addr"`
	Kind     Kind   `json:"kind"`
	Access   string `json:"access,omitempty"` // "<" read, ">" write
	Register string `json:"register,omitempty"`
	Desc     string `json:"desc,omitempty"`
	Comment  string `json:"comment"`
	Mnemonic string `json:"mnemonic"`
	Text     string `json:"text"`
}

// Pass scans an instruction stream and accumulates annotations keyed by
// address, so running it again over the same stream cannot duplicate
// comments.
type Pass struct {
	Arch  disasm.Arch
	Opts  diag.Options
	Diags diag.Diags

	// Data and Base give access to the raw section bytes for resolving
	// LDR literal pools during value tracking. Optional.
	Data []byte
	Base uint64

	anns   map[uint64]Annotation
	counts map[Kind]int
}

// New returns a pass for the given instruction set.
func New(arch disasm.Arch, opts diag.Options) *Pass {
	return &Pass{
		Arch:   arch,
		Opts:   opts,
		anns:   make(map[uint64]Annotation),
		counts: make(map[Kind]int),
	}
}

// Run walks the stream and annotates every system instruction. In strict
// mode an undecodable word is an error; unknown register encodings never
// are, they get marked and recorded as diagnostics.
func (p *Pass) Run(insts []disasm.Inst) error {
	maxSteps := p.Opts.EffectiveMaxSteps()
	for i, inst := range insts {
		if i >= maxSteps {
			break
		}
		if strings.HasPrefix(inst.Text, ".word") || strings.HasPrefix(inst.Text, ".short") {
			// Thumb only gets a pattern decoder, undecoded halfwords are
			// the normal case there.
			if p.Arch != disasm.Thumb {
				p.Diags.Addf(inst.Addr, diag.KindUndecodable, "cannot decode %#x", inst.Raw)
				if p.Opts.Mode == diag.ModeStrict {
					return fmt.Errorf("annotate: undecodable word %#x at %#x", inst.Raw, inst.Addr)
				}
			}
			continue
		}
		if p.Arch == disasm.ARM64 {
			p.markARM64(insts, i)
		} else {
			p.markARM32(insts, i)
		}
	}
	return nil
}

// Annotations returns all annotations sorted by address.
func (p *Pass) Annotations() []Annotation {
	out := make([]Annotation, 0, len(p.anns))
	for _, a := range p.anns {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Addr < out[j].Addr })
	return out
}

// At returns the annotation attached to an address.
func (p *Pass) At(addr uint64) (Annotation, bool) {
	a, ok := p.anns[addr]
	return a, ok
}

// Counts returns the number of system instructions seen per kind.
func (p *Pass) Counts() map[Kind]int {
	out := make(map[Kind]int, len(p.counts))
	for k, v := range p.counts {
		out[k] = v
	}
	return out
}

// Annotator adapts the pass result for listing output.
func (p *Pass) Annotator() disasm.Annotator {
	return func(inst disasm.Inst) string {
		if a, ok := p.anns[inst.Addr]; ok {
			return a.Comment
		}
		return ""
	}
}

// set records an annotation, overwriting any previous one at the address.
func (p *Pass) set(inst disasm.Inst, kind Kind, access, register, desc, comment string) {
	p.anns[inst.Addr] = Annotation{
		Addr:     inst.Addr,
		Kind:     kind,
		Access:   access,
		Register: register,
		Desc:     desc,
		Comment:  comment,
		Mnemonic: inst.Mnemonic,
		Text:     inst.Text,
	}
}

func (p *Pass) count(kind Kind) { p.counts[kind]++ }

// markARM64 classifies one AArch64 instruction.
func (p *Pass) markARM64(insts []disasm.Inst, i int) {
	inst := insts[i]
	raw := inst.Raw

	if mv, ok := disasm.DecodeSysRegMove(raw); ok {
		kind, access := KindSysRegWrite, ">"
		if mv.Read {
			kind, access = KindSysRegRead, "<"
		}
		p.count(kind)
		key := sysreg.Key{Op0: mv.Op0, Op1: mv.Op1, CRn: mv.CRn, CRm: mv.CRm, Op2: mv.Op2}
		descs, found := sysreg.Lookup(key)
		p.identify(insts, i, kind, access, key.String(), descs, found, mv.Rt, sysreg.Fields)
		return
	}
	if ps, ok := disasm.DecodePStateWrite(raw); ok {
		p.count(KindPStateWrite)
		p.markPState(inst, ps)
		return
	}
	if op, ok := disasm.DecodeSysOp(raw); ok {
		kind, access := KindSysOp, ">"
		if op.Read {
			access = "<"
		}
		p.count(kind)
		key := sysreg.SysOpKey{Op1: op.Op1, CRn: op.CRn, CRm: op.CRm, Op2: op.Op2}
		descs, found := sysreg.LookupSysOp(key)
		if !found {
			p.Diags.Addf(inst.Addr, diag.KindUnknownOp, "unknown SYS operation %s", key)
			p.set(inst, kind, access, "", "", fmt.Sprintf("[%s] Unknown system operation.", access))
			return
		}
		p.set(inst, kind, access, descs[0].Name, descs[0].Doc,
			fmt.Sprintf("[%s] %s", access, joinDescs(descs)))
		return
	}
	if kind, ok := mnemonicKind(inst.Mnemonic); ok {
		p.count(kind)
	}
}

// markPState comments MSR <pstatefield>, #imm.
func (p *Pass) markPState(inst disasm.Inst, ps disasm.PStateWrite) {
	op := sysreg.PStateOp(ps.Op2)
	switch {
	case op == "SPSel":
		sp := "SP_EL0"
		if ps.Imm&1 != 0 {
			sp = "SP_ELx"
		}
		p.set(inst, KindPStateWrite, ">", "PSTATE.SP", "", "Select PSTATE.SP = "+sp)
	case strings.HasPrefix(op, "DAIF"):
		d := flag(ps.Imm&(1<<3) != 0, 'D')
		a := flag(ps.Imm&(1<<2) != 0, 'A')
		i := flag(ps.Imm&(1<<1) != 0, 'I')
		f := flag(ps.Imm&(1<<0) != 0, 'F')
		p.set(inst, KindPStateWrite, ">", "PSTATE.DAIF", "",
			fmt.Sprintf("%s PSTATE.DAIF [%c%c%c%c]", op[4:], d, a, i, f))
	default:
		p.Diags.Addf(inst.Addr, diag.KindUnknownOp, "unknown PSTATE op1=%d op2=%d", ps.Op1, ps.Op2)
	}
}

// markARM32 classifies one AArch32 instruction (ARM or Thumb).
func (p *Pass) markARM32(insts []disasm.Inst, i int) {
	inst := insts[i]
	raw := inst.Raw
	if inst.Size == 2 {
		if kind, ok := mnemonicKind(inst.Mnemonic); ok {
			p.count(kind)
		}
		return
	}

	if mv, ok := disasm.DecodeCoprocMove(raw); ok {
		if mv.CP == 10 || mv.CP == 11 {
			p.count(KindMisc) // FP/SIMD transfer, not a system access
			return
		}
		kind, access := KindCoprocWrite, ">"
		if mv.Read {
			kind, access = KindCoprocRead, "<"
		}
		p.count(kind)
		key := sysreg.CoprocKey{CP: mv.CP, CRn: mv.CRn, Opc1: mv.Opc1, CRm: mv.CRm, Opc2: mv.Opc2}
		descs, found := sysreg.LookupCoproc(key)
		p.identify(insts, i, kind, access, key.String(), descs, found, mv.Rt, sysreg.CoprocFields)
		return
	}
	if mv, ok := disasm.DecodeCoprocMove64(raw); ok {
		if mv.CP == 10 || mv.CP == 11 {
			p.count(KindMisc)
			return
		}
		kind, access := KindCoprocWrite, ">"
		if mv.Read {
			kind, access = KindCoprocRead, "<"
		}
		p.count(kind)
		key := sysreg.Coproc64Key{CP: mv.CP, Opc1: mv.Opc1, CRm: mv.CRm}
		descs, found := sysreg.LookupCoproc64(key)
		// 64-bit transfers have no tracked bitfields.
		p.identify(insts, i, kind, access, key.String(), descs, found, -1, nil)
		return
	}
	if inst.Thumb {
		if kind, ok := mnemonicKind(inst.Mnemonic); ok {
			p.count(kind)
		}
		return
	}
	if ps, ok := disasm.DecodePSRWriteImm(raw); ok {
		p.count(KindPSRWrite)
		p.markPSR(inst, ps)
		return
	}
	if disasm.IsPSRWriteReg(raw) {
		p.count(KindPSRWrite)
		return
	}
	if disasm.IsPSRRead(raw) {
		p.count(KindPSRRead)
		return
	}
	if isExceptionReturn32(inst.Mnemonic, inst.Operands) {
		p.count(KindExceptReturn)
		return
	}
	if kind, ok := mnemonicKind(inst.Mnemonic); ok {
		p.count(kind)
	}
}

// markPSR comments MSR CPSR_<fields>, #imm with the mode and mask bits.
func (p *Pass) markPSR(inst disasm.Inst, ps disasm.PSRWrite) {
	if ps.SPSR {
		return
	}
	mode := sysreg.Mode(uint8(ps.Imm & 0x1F))
	e := flag(ps.Imm&(1<<9) != 0, 'E')
	a := flag(ps.Imm&(1<<8) != 0, 'A')
	i := flag(ps.Imm&(1<<7) != 0, 'I')
	f := flag(ps.Imm&(1<<6) != 0, 'F')
	t := flag(ps.Imm&(1<<5) != 0, 'T')
	p.set(inst, KindPSRWrite, ">", "CPSR", "",
		fmt.Sprintf("Set CPSR [%c%c%c%c%c], Mode: %s", e, a, i, f, t, mode))
}

// identify attaches the register comment and, for a single known register
// with a bitfield table, tracks how the transferred value is built or
// tested nearby.
func (p *Pass) identify(insts []disasm.Inst, i int, kind Kind, access, enc string,
	descs []sysreg.Desc, found bool, gpr int, fields func(string) (map[int]sysreg.Desc, bool)) {

	inst := insts[i]
	if !found {
		p.Diags.Addf(inst.Addr, diag.KindUnknownReg, "unknown system register %s", enc)
		p.set(inst, kind, access, "", "", fmt.Sprintf("[%s] Unknown system register.", access))
		return
	}
	p.set(inst, kind, access, descs[0].Name, descs[0].Doc,
		fmt.Sprintf("[%s] %s", access, joinDescs(descs)))

	if fields == nil || len(descs) != 1 || gpr < 0 {
		return
	}
	bitmap, ok := fields(descs[0].Name)
	if !ok {
		return
	}
	if access == ">" {
		p.backtrackFields(insts, i, gpr, bitmap)
	} else {
		p.trackFields(insts, i, gpr, bitmap)
	}
}

// joinDescs renders "NAME (Description)", with banked aliases joined by
// " or ".
func joinDescs(descs []sysreg.Desc) string {
	parts := make([]string, len(descs))
	for i, d := range descs {
		parts[i] = fmt.Sprintf("%s (%s)", d.Name, d.Doc)
	}
	return strings.Join(parts, " or ")
}

func flag(set bool, c byte) byte {
	if set {
		return c
	}
	return '-'
}
