package sysreg

import "fmt"

// SysOpKey identifies an AArch64 SYS/SYSL operation (op0 is 1 by
// construction of the SYS encoding).
type SysOpKey struct {
	Op1 uint8
	CRn uint8
	CRm uint8
	Op2 uint8
}

// String renders the key in SYS operand order.
func (k SysOpKey) String() string {
	return fmt.Sprintf("#%d, c%d, c%d, #%d", k.Op1, k.CRn, k.CRm, k.Op2)
}

// LookupSysOp resolves an AArch64 SYS encoding to its IC/DC/AT/TLBI alias.
func LookupSysOp(k SysOpKey) ([]Desc, bool) {
	d, ok := sysOps[k]
	return d, ok
}

// sysOps maps SYS operand encodings to cache, address translation and TLB
// maintenance operation aliases.
var sysOps = map[SysOpKey][]Desc{
	// Instruction cache maintenance
	{0, 7, 1, 0}: {{"IC IALLUIS", "Instruction Cache Invalidate All, Inner Shareable"}},
	{0, 7, 5, 0}: {{"IC IALLU", "Instruction Cache Invalidate All"}},
	{3, 7, 5, 1}: {{"IC IVAU", "Instruction Cache Invalidate by VA to PoU"}},

	// Data cache maintenance
	{0, 7, 6, 1}:  {{"DC IVAC", "Data Cache Invalidate by VA to PoC"}},
	{0, 7, 6, 2}:  {{"DC ISW", "Data Cache Invalidate by Set/Way"}},
	{0, 7, 10, 2}: {{"DC CSW", "Data Cache Clean by Set/Way"}},
	{0, 7, 14, 2}: {{"DC CISW", "Data Cache Clean and Invalidate by Set/Way"}},
	{3, 7, 4, 1}:  {{"DC ZVA", "Data Cache Zero by VA"}},
	{3, 7, 10, 1}: {{"DC CVAC", "Data Cache Clean by VA to PoC"}},
	{3, 7, 11, 1}: {{"DC CVAU", "Data Cache Clean by VA to PoU"}},
	{3, 7, 12, 1}: {{"DC CVAP", "Data Cache Clean by VA to PoP"}},
	{3, 7, 14, 1}: {{"DC CIVAC", "Data Cache Clean and Invalidate by VA to PoC"}},

	// Address translation
	{0, 7, 8, 0}: {{"AT S1E1R", "Address Translate Stage 1 EL1 Read"}},
	{0, 7, 8, 1}: {{"AT S1E1W", "Address Translate Stage 1 EL1 Write"}},
	{0, 7, 8, 2}: {{"AT S1E0R", "Address Translate Stage 1 EL0 Read"}},
	{0, 7, 8, 3}: {{"AT S1E0W", "Address Translate Stage 1 EL0 Write"}},
	{4, 7, 8, 0}: {{"AT S1E2R", "Address Translate Stage 1 EL2 Read"}},
	{4, 7, 8, 1}: {{"AT S1E2W", "Address Translate Stage 1 EL2 Write"}},
	{4, 7, 8, 4}: {{"AT S12E1R", "Address Translate Stages 1 and 2 EL1 Read"}},
	{4, 7, 8, 5}: {{"AT S12E1W", "Address Translate Stages 1 and 2 EL1 Write"}},
	{4, 7, 8, 6}: {{"AT S12E0R", "Address Translate Stages 1 and 2 EL0 Read"}},
	{4, 7, 8, 7}: {{"AT S12E0W", "Address Translate Stages 1 and 2 EL0 Write"}},
	{6, 7, 8, 0}: {{"AT S1E3R", "Address Translate Stage 1 EL3 Read"}},
	{6, 7, 8, 1}: {{"AT S1E3W", "Address Translate Stage 1 EL3 Write"}},

	// TLB maintenance
	{0, 8, 3, 0}: {{"TLBI VMALLE1IS", "TLB Invalidate by VMID, All at Stage 1, EL1, Inner Shareable"}},
	{0, 8, 3, 1}: {{"TLBI VAE1IS", "TLB Invalidate by VA, EL1, Inner Shareable"}},
	{0, 8, 3, 2}: {{"TLBI ASIDE1IS", "TLB Invalidate by ASID, EL1, Inner Shareable"}},
	{0, 8, 3, 3}: {{"TLBI VAAE1IS", "TLB Invalidate by VA, All ASID, EL1, Inner Shareable"}},
	{0, 8, 3, 5}: {{"TLBI VALE1IS", "TLB Invalidate by VA, Last level, EL1, Inner Shareable"}},
	{0, 8, 3, 7}: {{"TLBI VAALE1IS", "TLB Invalidate by VA, All ASID, Last level, EL1, Inner Shareable"}},
	{0, 8, 7, 0}: {{"TLBI VMALLE1", "TLB Invalidate by VMID, All at Stage 1, EL1"}},
	{0, 8, 7, 1}: {{"TLBI VAE1", "TLB Invalidate by VA, EL1"}},
	{0, 8, 7, 2}: {{"TLBI ASIDE1", "TLB Invalidate by ASID, EL1"}},
	{0, 8, 7, 3}: {{"TLBI VAAE1", "TLB Invalidate by VA, All ASID, EL1"}},
	{0, 8, 7, 5}: {{"TLBI VALE1", "TLB Invalidate by VA, Last level, EL1"}},
	{0, 8, 7, 7}: {{"TLBI VAALE1", "TLB Invalidate by VA, All ASID, Last level, EL1"}},
	{4, 8, 0, 1}: {{"TLBI IPAS2E1IS", "TLB Invalidate by IPA, Stage 2, EL1, Inner Shareable"}},
	{4, 8, 0, 5}: {{"TLBI IPAS2LE1IS", "TLB Invalidate by IPA, Stage 2, Last level, EL1, Inner Shareable"}},
	{4, 8, 3, 0}: {{"TLBI ALLE2IS", "TLB Invalidate All, EL2, Inner Shareable"}},
	{4, 8, 3, 1}: {{"TLBI VAE2IS", "TLB Invalidate by VA, EL2, Inner Shareable"}},
	{4, 8, 3, 4}: {{"TLBI ALLE1IS", "TLB Invalidate All, EL1, Inner Shareable"}},
	{4, 8, 3, 5}: {{"TLBI VALE2IS", "TLB Invalidate by VA, Last level, EL2, Inner Shareable"}},
	{4, 8, 3, 6}: {{"TLBI VMALLS12E1IS", "TLB Invalidate by VMID, All at Stage 1 and 2, EL1, Inner Shareable"}},
	{4, 8, 4, 1}: {{"TLBI IPAS2E1", "TLB Invalidate by IPA, Stage 2, EL1"}},
	{4, 8, 4, 5}: {{"TLBI IPAS2LE1", "TLB Invalidate by IPA, Stage 2, Last level, EL1"}},
	{4, 8, 7, 0}: {{"TLBI ALLE2", "TLB Invalidate All, EL2"}},
	{4, 8, 7, 1}: {{"TLBI VAE2", "TLB Invalidate by VA, EL2"}},
	{4, 8, 7, 4}: {{"TLBI ALLE1", "TLB Invalidate All, EL1"}},
	{4, 8, 7, 5}: {{"TLBI VALE2", "TLB Invalidate by VA, Last level, EL2"}},
	{4, 8, 7, 6}: {{"TLBI VMALLS12E1", "TLB Invalidate by VMID, All at Stage 1 and 2, EL1"}},
	{6, 8, 3, 0}: {{"TLBI ALLE3IS", "TLB Invalidate All, EL3, Inner Shareable"}},
	{6, 8, 3, 1}: {{"TLBI VAE3IS", "TLB Invalidate by VA, EL3, Inner Shareable"}},
	{6, 8, 3, 5}: {{"TLBI VALE3IS", "TLB Invalidate by VA, Last level, EL3, Inner Shareable"}},
	{6, 8, 7, 0}: {{"TLBI ALLE3", "TLB Invalidate All, EL3"}},
	{6, 8, 7, 1}: {{"TLBI VAE3", "TLB Invalidate by VA, EL3"}},
	{6, 8, 7, 5}: {{"TLBI VALE3", "TLB Invalidate by VA, Last level, EL3"}},
}
