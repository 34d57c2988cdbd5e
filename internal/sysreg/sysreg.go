// Package sysreg maps ARM system-register operand encodings to register
// names and descriptions. The tables cover AArch32 co-processor accesses
// (MCR/MRC and the 64-bit MCRR/MRRC forms) and AArch64 MSR/MRS encodings,
// plus per-register bit assignments for the value-tracking pass.
package sysreg

import (
	"fmt"
	"strconv"
	"strings"
)

// Desc is one reading of an encoding: a register (or operation) name and its
// long description from the reference manual. Entries named "N/A" have no
// architectural mnemonic; only the description is meaningful.
type Desc struct {
	Name string
	Doc  string
}

// Key identifies an AArch64 system register in MSR/MRS encoding space.
type Key struct {
	Op0 uint8 // 2 or 3
	Op1 uint8
	CRn uint8
	CRm uint8
	Op2 uint8
}

// String renders the key in the S<op0>_<op1>_<Cn>_<Cm>_<op2> form used by
// assemblers for unnamed registers.
func (k Key) String() string {
	return fmt.Sprintf("S%d_%d_C%d_C%d_%d", k.Op0, k.Op1, k.CRn, k.CRm, k.Op2)
}

// CoprocKey identifies an AArch32 system register in MCR/MRC encoding space.
// Field order follows the manual's register index (coproc, CRn, opc1, CRm, opc2).
type CoprocKey struct {
	CP   uint8 // coprocessor number, 14 or 15
	CRn  uint8
	Opc1 uint8
	CRm  uint8
	Opc2 uint8
}

func (k CoprocKey) String() string {
	return fmt.Sprintf("p%d, %d, c%d, c%d, %d", k.CP, k.Opc1, k.CRn, k.CRm, k.Opc2)
}

// Coproc64Key identifies a 64-bit register accessible from AArch32 via
// MCRR/MRRC.
type Coproc64Key struct {
	CP   uint8
	Opc1 uint8
	CRm  uint8
}

func (k Coproc64Key) String() string {
	return fmt.Sprintf("p%d, %d, c%d", k.CP, k.Opc1, k.CRm)
}

// Lookup resolves an AArch64 MSR/MRS encoding. The second return is false
// when the encoding is not in the table.
func Lookup(k Key) ([]Desc, bool) {
	d, ok := systemRegisters[k]
	return d, ok
}

// LookupCoproc resolves an AArch32 MCR/MRC encoding.
func LookupCoproc(k CoprocKey) ([]Desc, bool) {
	d, ok := coprocRegisters[k]
	return d, ok
}

// LookupCoproc64 resolves an AArch32 MCRR/MRRC encoding.
func LookupCoproc64(k Coproc64Key) ([]Desc, bool) {
	d, ok := coprocRegisters64[k]
	return d, ok
}

// Fields returns the bit assignment table for an AArch64 register name.
func Fields(name string) (map[int]Desc, bool) {
	f, ok := sysregFields[name]
	return f, ok
}

// CoprocFields returns the bit assignment table for an AArch32 register name.
func CoprocFields(name string) (map[int]Desc, bool) {
	f, ok := coprocFields[name]
	return f, ok
}

// Match is a table entry found by name; Enc is the printable encoding key.
type Match struct {
	Arch  string // "arm64", "arm", "arm64-sysop"
	Enc   string
	Descs []Desc
}

// FindByName returns every table entry whose name matches (case-insensitive).
// Used by the lookup command; order is not stable across calls.
func FindByName(name string) []Match {
	var out []Match
	match := func(descs []Desc) bool {
		for _, d := range descs {
			if strings.EqualFold(d.Name, name) {
				return true
			}
		}
		return false
	}
	for k, d := range systemRegisters {
		if match(d) {
			out = append(out, Match{Arch: "arm64", Enc: k.String(), Descs: d})
		}
	}
	for k, d := range sysOps {
		if match(d) {
			out = append(out, Match{Arch: "arm64-sysop", Enc: k.String(), Descs: d})
		}
	}
	for k, d := range coprocRegisters {
		if match(d) {
			out = append(out, Match{Arch: "arm", Enc: k.String(), Descs: d})
		}
	}
	for k, d := range coprocRegisters64 {
		if match(d) {
			out = append(out, Match{Arch: "arm", Enc: k.String(), Descs: d})
		}
	}
	return out
}

// ParseKey parses an AArch64 encoding written as "s3_0_c1_c0_0" (assembler
// syntax for unnamed registers, case-insensitive).
func ParseKey(s string) (Key, error) {
	parts := strings.Split(strings.ToLower(s), "_")
	if len(parts) != 5 || !strings.HasPrefix(parts[0], "s") {
		return Key{}, fmt.Errorf("sysreg: malformed encoding %q", s)
	}
	fields := []string{parts[0][1:], parts[1], strings.TrimPrefix(parts[2], "c"), strings.TrimPrefix(parts[3], "c"), parts[4]}
	var vals [5]uint8
	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return Key{}, fmt.Errorf("sysreg: malformed encoding %q: %v", s, err)
		}
		vals[i] = uint8(n)
	}
	return Key{Op0: vals[0], Op1: vals[1], CRn: vals[2], CRm: vals[3], Op2: vals[4]}, nil
}

// ParseCoprocKey parses an AArch32 encoding written as "p15,0,c1,c0,0"
// (MCR operand order: coproc, opc1, CRn, CRm, opc2).
func ParseCoprocKey(s string) (CoprocKey, error) {
	parts := strings.Split(strings.ToLower(strings.ReplaceAll(s, " ", "")), ",")
	if len(parts) != 5 || !strings.HasPrefix(parts[0], "p") {
		return CoprocKey{}, fmt.Errorf("sysreg: malformed encoding %q", s)
	}
	fields := []string{parts[0][1:], parts[1], strings.TrimPrefix(parts[2], "c"), strings.TrimPrefix(parts[3], "c"), parts[4]}
	var vals [5]uint8
	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return CoprocKey{}, fmt.Errorf("sysreg: malformed encoding %q: %v", s, err)
		}
		vals[i] = uint8(n)
	}
	return CoprocKey{CP: vals[0], Opc1: vals[1], CRn: vals[2], CRm: vals[3], Opc2: vals[4]}, nil
}
