// Register encoding tables extracted from the ARMv8.3 00bet4 XML
// specifications and older ARM reference manuals.

package sysreg

// coprocRegisters maps AArch32 MCR/MRC operand encodings to register
// descriptions. Keys with two descriptions are banked or remapped registers
// whose identity depends on the security state or translation regime.
var coprocRegisters = map[CoprocKey][]Desc{
	{15, 0, 0, 0, 0}: {{"MIDR", "Main ID Register"}},
	{15, 0, 0, 0, 1}: {{"CTR", "Cache Type Register"}},
	{15, 0, 0, 0, 2}: {{"TCMTR", "TCM Type Register"}},
	{15, 0, 0, 0, 3}: {{"TLBTR", "TLB Type Register"}},
	{15, 0, 0, 0, 5}: {{"MPIDR", "Multiprocessor Affinity Register"}},
	{15, 0, 0, 0, 6}: {{"REVIDR", "Revision ID Register"}},

	// Aliases
	{15, 0, 0, 0, 4}: {{"MIDR", "Main ID Register"}},
	{15, 0, 0, 0, 7}: {{"MIDR", "Main ID Register"}},

	// CPUID registers
	{15, 0, 0, 1, 0}: {{"ID_PFR0", "Processor Feature Register 0"}},
	{15, 0, 0, 1, 1}: {{"ID_PFR1", "Processor Feature Register 1"}},
	{15, 0, 0, 1, 2}: {{"ID_DFR0", "Debug Feature Register 0"}},
	{15, 0, 0, 1, 3}: {{"ID_AFR0", "Auxiliary Feature Register 0"}},
	{15, 0, 0, 1, 4}: {{"ID_MMFR0", "Memory Model Feature Register 0"}},
	{15, 0, 0, 1, 5}: {{"ID_MMFR1", "Memory Model Feature Register 1"}},
	{15, 0, 0, 1, 6}: {{"ID_MMFR2", "Memory Model Feature Register 2"}},
	{15, 0, 0, 1, 7}: {{"ID_MMFR3", "Memory Model Feature Register 3"}},
	{15, 0, 0, 2, 6}: {{"ID_MMFR4", "Memory Model Feature Register 4"}},
	{15, 0, 0, 2, 0}: {{"ID_ISAR0", "Instruction Set Attribute Register 0"}},
	{15, 0, 0, 2, 1}: {{"ID_ISAR1", "Instruction Set Attribute Register 1"}},
	{15, 0, 0, 2, 2}: {{"ID_ISAR2", "Instruction Set Attribute Register 2"}},
	{15, 0, 0, 2, 3}: {{"ID_ISAR3", "Instruction Set Attribute Register 3"}},
	{15, 0, 0, 2, 4}: {{"ID_ISAR4", "Instruction Set Attribute Register 4"}},
	{15, 0, 0, 2, 5}: {{"ID_ISAR5", "Instruction Set Attribute Register 5"}},
	{15, 0, 0, 2, 7}: {{"ID_ISAR6", "Instruction Set Attribute Register 6"}},

	{15, 0, 1, 0, 0}: {{"CCSIDR", "Current Cache Size ID Register"}},
	{15, 0, 1, 0, 2}: {{"CCSIDR2", "Current Cache Size ID Register 2"}},
	{15, 0, 1, 0, 1}: {{"CLIDR", "Cache Level ID Register"}},
	{15, 0, 1, 0, 7}: {{"AIDR", "Auxiliary ID Register"}},
	{15, 0, 2, 0, 0}: {{"CSSELR", "Cache Size Selection Register"}},
	{15, 0, 4, 0, 0}: {{"VPIDR", "Virtualization Processor ID Register"}},
	{15, 0, 4, 0, 5}: {{"VMPIDR", "Virtualization Multiprocessor ID Register"}},

	// System control registers
	{15, 1, 0, 0, 0}: {{"SCTLR", "System Control Register"}},
	{15, 1, 0, 0, 1}: {{"ACTLR", "Auxiliary Control Register"}},
	{15, 1, 0, 0, 3}: {{"ACTLR2", "Auxiliary Control Register 2"}},
	{15, 1, 0, 0, 2}: {{"CPACR", "Architectural Feature Access Control Register"}},
	{15, 1, 0, 1, 0}: {{"SCR", "Secure Configuration Register"}},
	{15, 1, 0, 1, 1}: {{"SDER", "Secure Debug Enable Register"}},
	{15, 1, 0, 3, 1}: {{"SDCR", "Secure Debug Control Register"}},
	{15, 1, 0, 1, 2}: {{"NSACR", "Non-Secure Access Control Register"}},
	{15, 1, 4, 0, 0}: {{"HSCTLR", "Hyp System Control Register"}},
	{15, 1, 4, 0, 1}: {{"HACTLR", "Hyp Auxiliary Control Register"}},
	{15, 1, 4, 0, 3}: {{"HACTLR2", "Hyp Auxiliary Control Register 2"}},
	{15, 1, 4, 1, 0}: {{"HCR", "Hyp Configuration Register"}},
	{15, 1, 4, 1, 4}: {{"HCR2", "Hyp Configuration Register 2"}},
	{15, 1, 4, 1, 1}: {{"HDCR", "Hyp Debug Control Register"}},
	{15, 1, 4, 1, 2}: {{"HCPTR", "Hyp Architectural Feature Trap Register"}},
	{15, 1, 4, 1, 3}: {{"HSTR", "Hyp System Trap Register"}},
	{15, 1, 4, 1, 7}: {{"HACR", "Hyp Auxiliary Configuration Register"}},

	// Translation Table Base Registers
	{15, 2, 0, 0, 0}: {{"TTBR0", "Translation Table Base Register 0"}},
	{15, 2, 0, 0, 1}: {{"TTBR1", "Translation Table Base Register 1"}},
	{15, 2, 4, 0, 2}: {{"HTCR", "Hyp Translation Control Register"}},
	{15, 2, 4, 1, 2}: {{"VTCR", "Virtualization Translation Control Register"}},
	{15, 2, 0, 0, 2}: {{"TTBCR", "Translation Table Base Control Register"}},
	{15, 2, 0, 0, 3}: {{"TTBCR2", "Translation Table Base Control Register 2"}},

	// Domain Access Control registers
	{15, 3, 0, 0, 0}: {{"DACR", "Domain Access Control Register"}},

	// Fault Status registers
	{15, 5, 0, 0, 0}: {{"DFSR", "Data Fault Status Register"}},
	{15, 5, 0, 0, 1}: {{"IFSR", "Instruction Fault Status Register"}},
	{15, 5, 0, 1, 0}: {{"ADFSR", "Auxiliary Data Fault Status Register"}},
	{15, 5, 0, 1, 1}: {{"AIFSR", "Auxiliary Instruction Fault Status Register"}},
	{15, 5, 4, 1, 0}: {{"HADFSR", "Hyp Auxiliary Data Fault Status Register"}},
	{15, 5, 4, 1, 1}: {{"HAIFSR", "Hyp Auxiliary Instruction Fault Status Register"}},
	{15, 5, 4, 2, 0}: {{"HSR", "Hyp Syndrome Register"}},

	// Fault Address registers
	{15, 6, 0, 0, 0}: {{"DFAR", "Data Fault Address Register"}},
	{15, 6, 0, 0, 1}: {{"N/A", "Watchpoint Fault Address"}}, // ARM11
	{15, 6, 0, 0, 2}: {{"IFAR", "Instruction Fault Address Register"}},
	{15, 6, 4, 0, 0}: {{"HDFAR", "Hyp Data Fault Address Register"}},
	{15, 6, 4, 0, 2}: {{"HIFAR", "Hyp Instruction Fault Address Register"}},
	{15, 6, 4, 0, 4}: {{"HPFAR", "Hyp IPA Fault Address Register"}},

	// Cache maintenance registers
	{15, 7, 0, 0, 4}:  {{"NOP", "No Operation / Wait For Interrupt"}},
	{15, 7, 0, 1, 0}:  {{"ICIALLUIS", "Instruction Cache Invalidate All to PoU, Inner Shareable"}},
	{15, 7, 0, 1, 6}:  {{"BPIALLIS", "Branch Predictor Invalidate All, Inner Shareable"}},
	{15, 7, 0, 4, 0}:  {{"PAR", "Physical Address Register"}},
	{15, 7, 0, 5, 0}:  {{"ICIALLU", "Instruction Cache Invalidate All to PoU"}},
	{15, 7, 0, 5, 1}:  {{"ICIMVAU", "Instruction Cache line Invalidate by VA to PoU"}},
	{15, 7, 0, 5, 2}:  {{"N/A", "Invalidate all instruction caches by set/way"}}, // ARM11
	{15, 7, 0, 5, 4}:  {{"CP15ISB", "Instruction Synchronization Barrier System instruction"}},
	{15, 7, 0, 5, 6}:  {{"BPIALL", "Branch Predictor Invalidate All"}},
	{15, 7, 0, 5, 7}:  {{"BPIMVA", "Branch Predictor Invalidate by VA"}},
	{15, 7, 0, 6, 0}:  {{"N/A", "Invalidate entire data cache"}},
	{15, 7, 0, 6, 1}:  {{"DCIMVAC", "Data Cache line Invalidate by VA to PoC"}},
	{15, 7, 0, 6, 2}:  {{"DCISW", "Data Cache line Invalidate by Set/Way"}},
	{15, 7, 0, 7, 0}:  {{"N/A", "Invalidate instruction cache and data cache"}}, // ARM11
	{15, 7, 0, 8, 0}:  {{"ATS1CPR", "Address Translate Stage 1 Current state PL1 Read"}},
	{15, 7, 0, 8, 1}:  {{"ATS1CPW", "Address Translate Stage 1 Current state PL1 Write"}},
	{15, 7, 0, 8, 2}:  {{"ATS1CUR", "Address Translate Stage 1 Current state Unprivileged Read"}},
	{15, 7, 0, 8, 3}:  {{"ATS1CUW", "Address Translate Stage 1 Current state Unprivileged Write"}},
	{15, 7, 0, 8, 4}:  {{"ATS12NSOPR", "Address Translate Stages 1 and 2 Non-secure Only PL1 Read"}},
	{15, 7, 0, 8, 5}:  {{"ATS12NSOPW", "Address Translate Stages 1 and 2 Non-secure Only PL1 Write"}},
	{15, 7, 0, 8, 6}:  {{"ATS12NSOUR", "Address Translate Stages 1 and 2 Non-secure Only Unprivileged Read"}},
	{15, 7, 0, 8, 7}:  {{"ATS12NSOUW", "Address Translate Stages 1 and 2 Non-secure Only Unprivileged Write"}},
	{15, 7, 0, 9, 0}:  {{"ATS1CPRP", "Address Translate Stage 1 Current state PL1 Read PAN"}},
	{15, 7, 0, 9, 1}:  {{"ATS1CPWP", "Address Translate Stage 1 Current state PL1 Write PAN"}},
	{15, 7, 0, 10, 0}: {{"N/A", "Clean entire data cache"}}, // ARM11
	{15, 7, 0, 10, 1}: {{"DCCMVAC", "Data Cache line Clean by VA to PoC"}},
	{15, 7, 0, 10, 2}: {{"DCCSW", "Data Cache line Clean by Set/Way"}},
	{15, 7, 0, 10, 3}: {{"N/A", "Test and clean data cache"}}, // ARM9
	{15, 7, 0, 10, 4}: {{"CP15DSB", "Data Synchronization Barrier System instruction"}},
	{15, 7, 0, 10, 5}: {{"CP15DMB", "Data Memory Barrier System instruction"}},
	{15, 7, 0, 10, 6}: {{"N/A", "Read Cache Dirty Status Register"}}, // ARM11
	{15, 7, 0, 11, 1}: {{"DCCMVAU", "Data Cache line Clean by VA to PoU"}},
	{15, 7, 0, 12, 4}: {{"N/A", "Read Block Transfer Status Register"}}, // ARM11
	{15, 7, 0, 12, 5}: {{"N/A", "Stop Prefetch Range"}},                 // ARM11
	{15, 7, 0, 13, 1}: {{"NOP", "No Operation / Prefetch Instruction Cache Line"}},
	{15, 7, 0, 14, 0}: {{"N/A", "Clean and invalidate entire data cache"}}, // ARM11
	{15, 7, 0, 14, 1}: {{"DCCIMVAC", "Data Cache line Clean and Invalidate by VA to PoC"}},
	{15, 7, 0, 14, 2}: {{"DCCISW", "Data Cache line Clean and Invalidate by Set/Way"}},
	{15, 7, 0, 14, 3}: {{"N/A", "Test, clean, and invalidate data cache"}}, // ARM9
	{15, 7, 4, 8, 0}:  {{"ATS1HR", "Address Translate Stage 1 Hyp mode Read"}},
	{15, 7, 4, 8, 1}:  {{"ATS1HW", "Stage 1 Hyp mode write"}},

	// TLB maintenance operations
	{15, 8, 0, 3, 0}: {{"TLBIALLIS", "TLB Invalidate All, Inner Shareable"}},
	{15, 8, 0, 3, 1}: {{"TLBIMVAIS", "TLB Invalidate by VA, Inner Shareable"}},
	{15, 8, 0, 3, 2}: {{"TLBIASIDIS", "TLB Invalidate by ASID match, Inner Shareable"}},
	{15, 8, 0, 3, 3}: {{"TLBIMVAAIS", "TLB Invalidate by VA, All ASID, Inner Shareable"}},
	{15, 8, 0, 3, 5}: {{"TLBIMVALIS", "TLB Invalidate by VA, Last level, Inner Shareable"}},
	{15, 8, 0, 3, 7}: {{"TLBIMVAALIS", "TLB Invalidate by VA, All ASID, Last level, Inner Shareable"}},
	{15, 8, 0, 5, 0}: {{"ITLBIALL", "Instruction TLB Invalidate All"}},
	{15, 8, 0, 5, 1}: {{"ITLBIMVA", "Instruction TLB Invalidate by VA"}},
	{15, 8, 0, 5, 2}: {{"ITLBIASID", "Instruction TLB Invalidate by ASID match"}},
	{15, 8, 0, 6, 0}: {{"DTLBIALL", "Data TLB Invalidate All"}},
	{15, 8, 0, 6, 1}: {{"DTLBIMVA", "Data TLB Invalidate by VA"}},
	{15, 8, 0, 6, 2}: {{"DTLBIASID", "Data TLB Invalidate by ASID match"}},
	{15, 8, 0, 7, 0}: {{"TLBIALL", "TLB Invalidate All"}},
	{15, 8, 0, 7, 1}: {{"TLBIMVA", "TLB Invalidate by VA"}},
	{15, 8, 0, 7, 2}: {{"TLBIASID", "TLB Invalidate by ASID match"}},
	{15, 8, 0, 7, 3}: {{"TLBIMVAA", "TLB Invalidate by VA, All ASID"}},
	{15, 8, 0, 7, 5}: {{"TLBIMVAL", "TLB Invalidate by VA, Last level"}},
	{15, 8, 0, 7, 7}: {{"TLBIMVAAL", "TLB Invalidate by VA, All ASID, Last level"}},
	{15, 8, 4, 0, 1}: {{"TLBIIPAS2IS", "TLB Invalidate by Intermediate Physical Address, Stage 2, Inner Shareable"}},
	{15, 8, 4, 0, 5}: {{"TLBIIPAS2LIS", "TLB Invalidate by Intermediate Physical Address, Stage 2, Last level, Inner Shareable"}},
	{15, 8, 4, 3, 0}: {{"TLBIALLHIS", "TLB Invalidate All, Hyp mode, Inner Shareable"}},
	{15, 8, 4, 3, 1}: {{"TLBIMVAHIS", "TLB Invalidate by VA, Hyp mode, Inner Shareable"}},
	{15, 8, 4, 3, 4}: {{"TLBIALLNSNHIS", "TLB Invalidate All, Non-Secure Non-Hyp, Inner Shareable"}},
	{15, 8, 4, 3, 5}: {{"TLBIMVALHIS", "TLB Invalidate by VA, Last level, Hyp mode, Inner Shareable"}},
	{15, 8, 4, 4, 1}: {{"TLBIIPAS2", "TLB Invalidate by Intermediate Physical Address, Stage 2"}},
	{15, 8, 4, 4, 5}: {{"TLBIIPAS2L", "TLB Invalidate by Intermediate Physical Address, Stage 2, Last level"}},
	{15, 8, 4, 7, 0}: {{"TLBIALLH", "TLB Invalidate All, Hyp mode"}},
	{15, 8, 4, 7, 1}: {{"TLBIMVAH", "TLB Invalidate by VA, Hyp mode"}},
	{15, 8, 4, 7, 4}: {{"TLBIALLNSNH", "TLB Invalidate All, Non-Secure Non-Hyp"}},
	{15, 8, 4, 7, 5}: {{"TLBIMVALH", "TLB Invalidate by VA, Last level, Hyp mode"}},

	{15, 9, 0, 0, 0}: {{"N/A", "Data Cache Lockdown"}},        // ARM11
	{15, 9, 0, 0, 1}: {{"N/A", "Instruction Cache Lockdown"}}, // ARM11
	{15, 9, 0, 1, 0}: {{"N/A", "Data TCM Region"}},            // ARM11
	{15, 9, 0, 1, 1}: {{"N/A", "Instruction TCM Region"}},     // ARM11
	{15, 9, 1, 0, 2}: {{"L2CTLR", "L2 Control Register"}},
	{15, 9, 1, 0, 3}: {{"L2ECTLR", "L2 Extended Control Register"}},

	// Performance monitor registers
	{15, 9, 0, 12, 0}:  {{"PMCR", "Performance Monitors Control Register"}},
	{15, 9, 0, 12, 1}:  {{"PMCNTENSET", "Performance Monitor Count Enable Set Register"}},
	{15, 9, 0, 12, 2}:  {{"PMCNTENCLR", "Performance Monitor Control Enable Clear Register"}},
	{15, 9, 0, 12, 3}:  {{"PMOVSR", "Performance Monitors Overflow Flag Status Register"}},
	{15, 9, 0, 12, 4}:  {{"PMSWINC", "Performance Monitors Software Increment register"}},
	{15, 9, 0, 12, 5}:  {{"PMSELR", "Performance Monitors Event Counter Selection Register"}},
	{15, 9, 0, 12, 6}:  {{"PMCEID0", "Performance Monitors Common Event Identification register 0"}},
	{15, 9, 0, 12, 7}:  {{"PMCEID1", "Performance Monitors Common Event Identification register 1"}},
	{15, 9, 0, 13, 0}:  {{"PMCCNTR", "Performance Monitors Cycle Count Register"}},
	{15, 9, 0, 13, 1}:  {{"PMXEVTYPER", "Performance Monitors Selected Event Type Register"}},
	{15, 9, 0, 13, 2}:  {{"PMXEVCNTR", "Performance Monitors Selected Event Count Register"}},
	{15, 9, 0, 14, 0}:  {{"PMUSERENR", "Performance Monitors User Enable Register"}},
	{15, 9, 0, 14, 1}:  {{"PMINTENSET", "Performance Monitors Interrupt Enable Set register"}},
	{15, 9, 0, 14, 2}:  {{"PMINTENCLR", "Performance Monitors Interrupt Enable Clear register"}},
	{15, 9, 0, 14, 3}:  {{"PMOVSSET", "Performance Monitors Overflow Flag Status Set register"}},
	{15, 9, 0, 14, 4}:  {{"PMCEID2", "Performance Monitors Common Event Identification register 2"}},
	{15, 9, 0, 14, 5}:  {{"PMCEID3", "Performance Monitors Common Event Identification register 3"}},
	{15, 14, 0, 8, 0}:  {{"PMEVCNTR0", "Performance Monitors Event Count Register 0"}},
	{15, 14, 0, 8, 1}:  {{"PMEVCNTR1", "Performance Monitors Event Count Register 1"}},
	{15, 14, 0, 8, 2}:  {{"PMEVCNTR2", "Performance Monitors Event Count Register 2"}},
	{15, 14, 0, 8, 3}:  {{"PMEVCNTR3", "Performance Monitors Event Count Register 3"}},
	{15, 14, 0, 8, 4}:  {{"PMEVCNTR4", "Performance Monitors Event Count Register 4"}},
	{15, 14, 0, 8, 5}:  {{"PMEVCNTR5", "Performance Monitors Event Count Register 5"}},
	{15, 14, 0, 8, 6}:  {{"PMEVCNTR6", "Performance Monitors Event Count Register 6"}},
	{15, 14, 0, 8, 7}:  {{"PMEVCNTR7", "Performance Monitors Event Count Register 7"}},
	{15, 14, 0, 9, 0}:  {{"PMEVCNTR8", "Performance Monitors Event Count Register 8"}},
	{15, 14, 0, 9, 1}:  {{"PMEVCNTR9", "Performance Monitors Event Count Register 9"}},
	{15, 14, 0, 9, 2}:  {{"PMEVCNTR10", "Performance Monitors Event Count Register 10"}},
	{15, 14, 0, 9, 3}:  {{"PMEVCNTR11", "Performance Monitors Event Count Register 11"}},
	{15, 14, 0, 9, 4}:  {{"PMEVCNTR12", "Performance Monitors Event Count Register 12"}},
	{15, 14, 0, 9, 5}:  {{"PMEVCNTR13", "Performance Monitors Event Count Register 13"}},
	{15, 14, 0, 9, 6}:  {{"PMEVCNTR14", "Performance Monitors Event Count Register 14"}},
	{15, 14, 0, 9, 7}:  {{"PMEVCNTR15", "Performance Monitors Event Count Register 15"}},
	{15, 14, 0, 10, 0}: {{"PMEVCNTR16", "Performance Monitors Event Count Register 16"}},
	{15, 14, 0, 10, 1}: {{"PMEVCNTR17", "Performance Monitors Event Count Register 17"}},
	{15, 14, 0, 10, 2}: {{"PMEVCNTR18", "Performance Monitors Event Count Register 18"}},
	{15, 14, 0, 10, 3}: {{"PMEVCNTR19", "Performance Monitors Event Count Register 19"}},
	{15, 14, 0, 10, 4}: {{"PMEVCNTR20", "Performance Monitors Event Count Register 20"}},
	{15, 14, 0, 10, 5}: {{"PMEVCNTR21", "Performance Monitors Event Count Register 21"}},
	{15, 14, 0, 10, 6}: {{"PMEVCNTR22", "Performance Monitors Event Count Register 22"}},
	{15, 14, 0, 10, 7}: {{"PMEVCNTR23", "Performance Monitors Event Count Register 23"}},
	{15, 14, 0, 11, 0}: {{"PMEVCNTR24", "Performance Monitors Event Count Register 24"}},
	{15, 14, 0, 11, 1}: {{"PMEVCNTR25", "Performance Monitors Event Count Register 25"}},
	{15, 14, 0, 11, 2}: {{"PMEVCNTR26", "Performance Monitors Event Count Register 26"}},
	{15, 14, 0, 11, 3}: {{"PMEVCNTR27", "Performance Monitors Event Count Register 27"}},
	{15, 14, 0, 11, 4}: {{"PMEVCNTR28", "Performance Monitors Event Count Register 28"}},
	{15, 14, 0, 11, 5}: {{"PMEVCNTR29", "Performance Monitors Event Count Register 29"}},
	{15, 14, 0, 11, 6}: {{"PMEVCNTR30", "Performance Monitors Event Count Register 30"}},
	{15, 14, 0, 12, 0}: {{"PMEVTYPER0", "Performance Monitors Event Type Register 0"}},
	{15, 14, 0, 12, 1}: {{"PMEVTYPER1", "Performance Monitors Event Type Register 1"}},
	{15, 14, 0, 12, 2}: {{"PMEVTYPER2", "Performance Monitors Event Type Register 2"}},
	{15, 14, 0, 12, 3}: {{"PMEVTYPER3", "Performance Monitors Event Type Register 3"}},
	{15, 14, 0, 12, 4}: {{"PMEVTYPER4", "Performance Monitors Event Type Register 4"}},
	{15, 14, 0, 12, 5}: {{"PMEVTYPER5", "Performance Monitors Event Type Register 5"}},
	{15, 14, 0, 12, 6}: {{"PMEVTYPER6", "Performance Monitors Event Type Register 6"}},
	{15, 14, 0, 12, 7}: {{"PMEVTYPER7", "Performance Monitors Event Type Register 7"}},
	{15, 14, 0, 13, 0}: {{"PMEVTYPER8", "Performance Monitors Event Type Register 8"}},
	{15, 14, 0, 13, 1}: {{"PMEVTYPER9", "Performance Monitors Event Type Register 9"}},
	{15, 14, 0, 13, 2}: {{"PMEVTYPER10", "Performance Monitors Event Type Register 10"}},
	{15, 14, 0, 13, 3}: {{"PMEVTYPER11", "Performance Monitors Event Type Register 11"}},
	{15, 14, 0, 13, 4}: {{"PMEVTYPER12", "Performance Monitors Event Type Register 12"}},
	{15, 14, 0, 13, 5}: {{"PMEVTYPER13", "Performance Monitors Event Type Register 13"}},
	{15, 14, 0, 13, 6}: {{"PMEVTYPER14", "Performance Monitors Event Type Register 14"}},
	{15, 14, 0, 13, 7}: {{"PMEVTYPER15", "Performance Monitors Event Type Register 15"}},
	{15, 14, 0, 14, 0}: {{"PMEVTYPER16", "Performance Monitors Event Type Register 16"}},
	{15, 14, 0, 14, 1}: {{"PMEVTYPER17", "Performance Monitors Event Type Register 17"}},
	{15, 14, 0, 14, 2}: {{"PMEVTYPER18", "Performance Monitors Event Type Register 18"}},
	{15, 14, 0, 14, 3}: {{"PMEVTYPER19", "Performance Monitors Event Type Register 19"}},
	{15, 14, 0, 14, 4}: {{"PMEVTYPER20", "Performance Monitors Event Type Register 20"}},
	{15, 14, 0, 14, 5}: {{"PMEVTYPER21", "Performance Monitors Event Type Register 21"}},
	{15, 14, 0, 14, 6}: {{"PMEVTYPER22", "Performance Monitors Event Type Register 22"}},
	{15, 14, 0, 14, 7}: {{"PMEVTYPER23", "Performance Monitors Event Type Register 23"}},
	{15, 14, 0, 15, 0}: {{"PMEVTYPER24", "Performance Monitors Event Type Register 24"}},
	{15, 14, 0, 15, 1}: {{"PMEVTYPER25", "Performance Monitors Event Type Register 25"}},
	{15, 14, 0, 15, 2}: {{"PMEVTYPER26", "Performance Monitors Event Type Register 26"}},
	{15, 14, 0, 15, 3}: {{"PMEVTYPER27", "Performance Monitors Event Type Register 27"}},
	{15, 14, 0, 15, 4}: {{"PMEVTYPER28", "Performance Monitors Event Type Register 28"}},
	{15, 14, 0, 15, 5}: {{"PMEVTYPER29", "Performance Monitors Event Type Register 29"}},
	{15, 14, 0, 15, 6}: {{"PMEVTYPER30", "Performance Monitors Event Type Register 30"}},
	{15, 14, 0, 15, 7}: {{"PMCCFILTR", "Performance Monitors Cycle Count Filter Register"}},

	// Memory attribute registers
	{15, 10, 0, 0, 0}: {{"N/A", "TLB Lockdown"}}, // ARM11
	{15, 10, 0, 2, 0}: {{"MAIR0", "Memory Attribute Indirection Register 0"}, {"PRRR", "Primary Region Remap Register"}},
	{15, 10, 0, 2, 1}: {{"MAIR1", "Memory Attribute Indirection Register 1"}, {"NMRR", "Normal Memory Remap Register"}},
	{15, 10, 0, 3, 0}: {{"AMAIR0", "Auxiliary Memory Attribute Indirection Register 0"}},
	{15, 10, 0, 3, 1}: {{"AMAIR1", "Auxiliary Memory Attribute Indirection Register 1"}},
	{15, 10, 4, 2, 0}: {{"HMAIR0", "Hyp Memory Attribute Indirection Register 0"}},
	{15, 10, 4, 2, 1}: {{"HMAIR1", "Hyp Memory Attribute Indirection Register 1"}},
	{15, 10, 4, 3, 0}: {{"HAMAIR0", "Hyp Auxiliary Memory Attribute Indirection Register 0"}},
	{15, 10, 4, 3, 1}: {{"HAMAIR1", "Hyp Auxiliary Memory Attribute Indirection Register 1"}},

	// DMA registers (ARM11)
	{15, 11, 0, 0, 1}:  {{"N/A", "DMA Identification and Status (Queued)"}},
	{15, 11, 0, 0, 3}:  {{"N/A", "DMA Identification and Status (Interrupting)"}},
	{15, 11, 0, 2, 0}:  {{"N/A", "DMA Channel Number"}},
	{15, 11, 0, 4, 0}:  {{"N/A", "DMA Control"}},
	{15, 11, 0, 5, 0}:  {{"N/A", "DMA Internal Start Address"}},
	{15, 11, 0, 6, 0}:  {{"N/A", "DMA External Start Address"}},
	{15, 11, 0, 7, 0}:  {{"N/A", "DMA Internal End Address"}},
	{15, 11, 0, 8, 0}:  {{"N/A", "DMA Channel Status"}},
	{15, 11, 0, 15, 0}: {{"N/A", "DMA Context ID"}},

	// Reset management registers.
	{15, 12, 0, 0, 0}: {{"VBAR", "Vector Base Address Register"}},
	{15, 12, 0, 0, 1}: {{"RVBAR", "Reset Vector Base Address Register"}, {"MVBAR", "Monitor Vector Base Address Register"}},
	{15, 12, 0, 0, 2}: {{"RMR", "Reset Management Register"}},
	{15, 12, 4, 0, 2}: {{"HRMR", "Hyp Reset Management Register"}},

	{15, 12, 0, 1, 0}: {{"ISR", "Interrupt Status Register"}},
	{15, 12, 4, 0, 0}: {{"HVBAR", "Hyp Vector Base Address Register"}},

	{15, 13, 0, 0, 0}: {{"FCSEIDR", "FCSE Process ID register"}},
	{15, 13, 0, 0, 1}: {{"CONTEXTIDR", "Context ID Register"}},
	{15, 13, 0, 0, 2}: {{"TPIDRURW", "PL0 Read/Write Software Thread ID Register"}},
	{15, 13, 0, 0, 3}: {{"TPIDRURO", "PL0 Read-Only Software Thread ID Register"}},
	{15, 13, 0, 0, 4}: {{"TPIDRPRW", "PL1 Software Thread ID Register"}},
	{15, 13, 4, 0, 2}: {{"HTPIDR", "Hyp Software Thread ID Register"}},

	// Generic timer registers.
	{15, 14, 0, 0, 0}: {{"CNTFRQ", "Counter-timer Frequency register"}},
	{15, 14, 0, 1, 0}: {{"CNTKCTL", "Counter-timer Kernel Control register"}},
	{15, 14, 0, 2, 0}: {{"CNTP_TVAL", "Counter-timer Physical Timer TimerValue register"}, {"CNTHP_TVAL", "Counter-timer Hyp Physical Timer TimerValue register"}},
	{15, 14, 0, 2, 1}: {{"CNTP_CTL", "Counter-timer Physical Timer Control register"}, {"CNTHP_CTL", "Counter-timer Hyp Physical Timer Control register"}},
	{15, 14, 0, 3, 0}: {{"CNTV_TVAL", "Counter-timer Virtual Timer TimerValue register"}, {"CNTHV_TVAL", "Counter-timer Virtual Timer TimerValue register (EL2)"}},
	{15, 14, 0, 3, 1}: {{"CNTV_CTL", "Counter-timer Virtual Timer Control register"}, {"CNTHV_CTL", "Counter-timer Virtual Timer Control register (EL2)"}},
	{15, 14, 4, 1, 0}: {{"CNTHCTL", "Counter-timer Hyp Control register"}},
	{15, 14, 4, 2, 0}: {{"CNTHP_TVAL", "Counter-timer Hyp Physical Timer TimerValue register"}},
	{15, 14, 4, 2, 1}: {{"CNTHP_CTL", "Counter-timer Hyp Physical Timer Control register"}},

	// Generic interrupt controller registers.
	{15, 4, 0, 6, 0}:   {{"ICC_PMR", "Interrupt Controller Interrupt Priority Mask Register"}, {"ICV_PMR", "Interrupt Controller Virtual Interrupt Priority Mask Register"}},
	{15, 12, 0, 8, 0}:  {{"ICC_IAR0", "Interrupt Controller Interrupt Acknowledge Register 0"}, {"ICV_IAR0", "Interrupt Controller Virtual Interrupt Acknowledge Register 0"}},
	{15, 12, 0, 8, 1}:  {{"ICC_EOIR0", "Interrupt Controller End Of Interrupt Register 0"}, {"ICV_EOIR0", "Interrupt Controller Virtual End Of Interrupt Register 0"}},
	{15, 12, 0, 8, 2}:  {{"ICC_HPPIR0", "Interrupt Controller Highest Priority Pending Interrupt Register 0"}, {"ICV_HPPIR0", "Interrupt Controller Virtual Highest Priority Pending Interrupt Register 0"}},
	{15, 12, 0, 8, 3}:  {{"ICC_BPR0", "Interrupt Controller Binary Point Register 0"}, {"ICV_BPR0", "Interrupt Controller Virtual Binary Point Register 0"}},
	{15, 12, 0, 8, 4}:  {{"ICC_AP0R0", "Interrupt Controller Active Priorities Group 0 Register 0"}, {"ICV_AP0R0", "Interrupt Controller Virtual Active Priorities Group 0 Register 0"}},
	{15, 12, 0, 8, 5}:  {{"ICC_AP0R1", "Interrupt Controller Active Priorities Group 0 Register 1"}, {"ICV_AP0R1", "Interrupt Controller Virtual Active Priorities Group 0 Register 1"}},
	{15, 12, 0, 8, 6}:  {{"ICC_AP0R2", "Interrupt Controller Active Priorities Group 0 Register 2"}, {"ICV_AP0R2", "Interrupt Controller Virtual Active Priorities Group 0 Register 2"}},
	{15, 12, 0, 8, 7}:  {{"ICC_AP0R3", "Interrupt Controller Active Priorities Group 0 Register 3"}, {"ICV_AP0R3", "Interrupt Controller Virtual Active Priorities Group 0 Register 3"}},
	{15, 12, 0, 9, 0}:  {{"ICC_AP1R0", "Interrupt Controller Active Priorities Group 1 Register 0"}, {"ICV_AP1R0", "Interrupt Controller Virtual Active Priorities Group 1 Register 0"}},
	{15, 12, 0, 9, 1}:  {{"ICC_AP1R1", "Interrupt Controller Active Priorities Group 1 Register 1"}, {"ICV_AP1R1", "Interrupt Controller Virtual Active Priorities Group 1 Register 1"}},
	{15, 12, 0, 9, 2}:  {{"ICC_AP1R2", "Interrupt Controller Active Priorities Group 1 Register 2"}, {"ICV_AP1R2", "Interrupt Controller Virtual Active Priorities Group 1 Register 2"}},
	{15, 12, 0, 9, 3}:  {{"ICC_AP1R3", "Interrupt Controller Active Priorities Group 1 Register 3"}, {"ICV_AP1R3", "Interrupt Controller Virtual Active Priorities Group 1 Register 3"}},
	{15, 12, 0, 11, 1}: {{"ICC_DIR", "Interrupt Controller Deactivate Interrupt Register"}, {"ICV_DIR", "Interrupt Controller Deactivate Virtual Interrupt Register"}},
	{15, 12, 0, 11, 3}: {{"ICC_RPR", "Interrupt Controller Running Priority Register"}, {"ICV_RPR", "Interrupt Controller Virtual Running Priority Register"}},
	{15, 12, 0, 12, 0}: {{"ICC_IAR1", "Interrupt Controller Interrupt Acknowledge Register 1"}, {"ICV_IAR1", "Interrupt Controller Virtual Interrupt Acknowledge Register 1"}},
	{15, 12, 0, 12, 1}: {{"ICC_EOIR1", "Interrupt Controller End Of Interrupt Register 1"}, {"ICV_EOIR1", "Interrupt Controller Virtual End Of Interrupt Register 1"}},
	{15, 12, 0, 12, 2}: {{"ICC_HPPIR1", "Interrupt Controller Highest Priority Pending Interrupt Register 1"}, {"ICV_HPPIR1", "Interrupt Controller Virtual Highest Priority Pending Interrupt Register 1"}},
	{15, 12, 0, 12, 3}: {{"ICC_BPR1", "Interrupt Controller Binary Point Register 1"}, {"ICV_BPR1", "Interrupt Controller Virtual Binary Point Register 1"}},
	{15, 12, 0, 12, 4}: {{"ICC_CTLR", "Interrupt Controller Control Register"}, {"ICV_CTLR", "Interrupt Controller Virtual Control Register"}},
	{15, 12, 0, 12, 5}: {{"ICC_SRE", "Interrupt Controller System Register Enable register"}},
	{15, 12, 0, 12, 6}: {{"ICC_IGRPEN0", "Interrupt Controller Interrupt Group 0 Enable register"}, {"ICV_IGRPEN0", "Interrupt Controller Virtual Interrupt Group 0 Enable register"}},
	{15, 12, 0, 12, 7}: {{"ICC_IGRPEN1", "Interrupt Controller Interrupt Group 1 Enable register"}, {"ICV_IGRPEN1", "Interrupt Controller Virtual Interrupt Group 1 Enable register"}},
	{15, 12, 4, 8, 0}:  {{"ICH_AP0R0", "Interrupt Controller Hyp Active Priorities Group 0 Register 0"}},
	{15, 12, 4, 8, 1}:  {{"ICH_AP0R1", "Interrupt Controller Hyp Active Priorities Group 0 Register 1"}},
	{15, 12, 4, 8, 2}:  {{"ICH_AP0R2", "Interrupt Controller Hyp Active Priorities Group 0 Register 2"}},
	{15, 12, 4, 8, 3}:  {{"ICH_AP0R3", "Interrupt Controller Hyp Active Priorities Group 0 Register 3"}},
	{15, 12, 4, 9, 0}:  {{"ICH_AP1R0", "Interrupt Controller Hyp Active Priorities Group 1 Register 0"}},
	{15, 12, 4, 9, 1}:  {{"ICH_AP1R1", "Interrupt Controller Hyp Active Priorities Group 1 Register 1"}},
	{15, 12, 4, 9, 2}:  {{"ICH_AP1R2", "Interrupt Controller Hyp Active Priorities Group 1 Register 2"}},
	{15, 12, 4, 9, 3}:  {{"ICH_AP1R3", "Interrupt Controller Hyp Active Priorities Group 1 Register 3"}},
	{15, 12, 4, 9, 5}:  {{"ICC_HSRE", "Interrupt Controller Hyp System Register Enable register"}},
	{15, 12, 4, 11, 0}: {{"ICH_HCR", "Interrupt Controller Hyp Control Register"}},
	{15, 12, 4, 11, 1}: {{"ICH_VTR", "Interrupt Controller VGIC Type Register"}},
	{15, 12, 4, 11, 2}: {{"ICH_MISR", "Interrupt Controller Maintenance Interrupt State Register"}},
	{15, 12, 4, 11, 3}: {{"ICH_EISR", "Interrupt Controller End of Interrupt Status Register"}},
	{15, 12, 4, 11, 5}: {{"ICH_ELRSR", "Interrupt Controller Empty List Register Status Register"}},
	{15, 12, 4, 11, 7}: {{"ICH_VMCR", "Interrupt Controller Virtual Machine Control Register"}},
	{15, 12, 4, 12, 0}: {{"ICH_LR0", "Interrupt Controller List Register 0"}},
	{15, 12, 4, 12, 1}: {{"ICH_LR1", "Interrupt Controller List Register 1"}},
	{15, 12, 4, 12, 2}: {{"ICH_LR2", "Interrupt Controller List Register 2"}},
	{15, 12, 4, 12, 3}: {{"ICH_LR3", "Interrupt Controller List Register 3"}},
	{15, 12, 4, 12, 4}: {{"ICH_LR4", "Interrupt Controller List Register 4"}},
	{15, 12, 4, 12, 5}: {{"ICH_LR5", "Interrupt Controller List Register 5"}},
	{15, 12, 4, 12, 6}: {{"ICH_LR6", "Interrupt Controller List Register 6"}},
	{15, 12, 4, 12, 7}: {{"ICH_LR7", "Interrupt Controller List Register 7"}},
	{15, 12, 4, 13, 0}: {{"ICH_LR8", "Interrupt Controller List Register 8"}},
	{15, 12, 4, 13, 1}: {{"ICH_LR9", "Interrupt Controller List Register 9"}},
	{15, 12, 4, 13, 2}: {{"ICH_LR10", "Interrupt Controller List Register 10"}},
	{15, 12, 4, 13, 3}: {{"ICH_LR11", "Interrupt Controller List Register 11"}},
	{15, 12, 4, 13, 4}: {{"ICH_LR12", "Interrupt Controller List Register 12"}},
	{15, 12, 4, 13, 5}: {{"ICH_LR13", "Interrupt Controller List Register 13"}},
	{15, 12, 4, 13, 6}: {{"ICH_LR14", "Interrupt Controller List Register 14"}},
	{15, 12, 4, 13, 7}: {{"ICH_LR15", "Interrupt Controller List Register 15"}},
	{15, 12, 4, 14, 0}: {{"ICH_LRC0", "Interrupt Controller List Register 0"}},
	{15, 12, 4, 14, 1}: {{"ICH_LRC1", "Interrupt Controller List Register 1"}},
	{15, 12, 4, 14, 2}: {{"ICH_LRC2", "Interrupt Controller List Register 2"}},
	{15, 12, 4, 14, 3}: {{"ICH_LRC3", "Interrupt Controller List Register 3"}},
	{15, 12, 4, 14, 4}: {{"ICH_LRC4", "Interrupt Controller List Register 4"}},
	{15, 12, 4, 14, 5}: {{"ICH_LRC5", "Interrupt Controller List Register 5"}},
	{15, 12, 4, 14, 6}: {{"ICH_LRC6", "Interrupt Controller List Register 6"}},
	{15, 12, 4, 14, 7}: {{"ICH_LRC7", "Interrupt Controller List Register 7"}},
	{15, 12, 4, 15, 0}: {{"ICH_LRC8", "Interrupt Controller List Register 8"}},
	{15, 12, 4, 15, 1}: {{"ICH_LRC9", "Interrupt Controller List Register 9"}},
	{15, 12, 4, 15, 2}: {{"ICH_LRC10", "Interrupt Controller List Register 10"}},
	{15, 12, 4, 15, 3}: {{"ICH_LRC11", "Interrupt Controller List Register 11"}},
	{15, 12, 4, 15, 4}: {{"ICH_LRC12", "Interrupt Controller List Register 12"}},
	{15, 12, 4, 15, 5}: {{"ICH_LRC13", "Interrupt Controller List Register 13"}},
	{15, 12, 4, 15, 6}: {{"ICH_LRC14", "Interrupt Controller List Register 14"}},
	{15, 12, 4, 15, 7}: {{"ICH_LRC15", "Interrupt Controller List Register 15"}},
	{15, 12, 6, 12, 4}: {{"ICC_MCTLR", "Interrupt Controller Monitor Control Register"}},
	{15, 12, 6, 12, 5}: {{"ICC_MSRE", "Interrupt Controller Monitor System Register Enable register"}},
	{15, 12, 6, 12, 7}: {{"ICC_MGRPEN1", "Interrupt Controller Monitor Interrupt Group 1 Enable register"}},

	{15, 15, 0, 0, 0}:  {{"IL1Data0", "Instruction L1 Data n Register"}},
	{15, 15, 0, 0, 1}:  {{"IL1Data1", "Instruction L1 Data n Register"}},
	{15, 15, 0, 0, 2}:  {{"IL1Data2", "Instruction L1 Data n Register"}},
	{15, 15, 0, 1, 0}:  {{"DL1Data0", "Data L1 Data n Register"}},
	{15, 15, 0, 1, 1}:  {{"DL1Data1", "Data L1 Data n Register"}},
	{15, 15, 0, 1, 2}:  {{"DL1Data2", "Data L1 Data n Register"}},
	{15, 15, 0, 2, 0}:  {{"N/A", "Data Memory Remap"}},            // ARM11
	{15, 15, 0, 2, 1}:  {{"N/A", "Instruction Memory Remap"}},     // ARM11
	{15, 15, 0, 2, 2}:  {{"N/A", "DMA Memory Remap"}},             // ARM11
	{15, 15, 0, 2, 3}:  {{"N/A", "Peripheral Port Memory Remap"}}, // ARM11
	{15, 15, 0, 4, 0}:  {{"RAMINDEX", "RAM Index Register"}},
	{15, 15, 0, 12, 0}: {{"N/A", "Performance Monitor Control"}}, // ARM11
	{15, 15, 0, 12, 1}: {{"CCNT", "Cycle Counter"}},              // ARM11
	{15, 15, 0, 12, 2}: {{"PMN0", "Count 0"}},                    // ARM11
	{15, 15, 0, 12, 3}: {{"PMN1", "Count 1"}},                    // ARM11
	{15, 15, 1, 0, 0}:  {{"L2ACTLR", "L2 Auxiliary Control Register"}},
	{15, 15, 1, 0, 3}:  {{"L2FPR", "L2 Prefetch Control Register"}},
	{15, 15, 3, 0, 0}:  {{"N/A", "Data Debug Cache"}},                   // ARM11
	{15, 15, 3, 0, 1}:  {{"N/A", "Instruction Debug Cache"}},            // ARM11
	{15, 15, 3, 2, 0}:  {{"N/A", "Data Tag RAM Read Operation"}},        // ARM11
	{15, 15, 3, 2, 1}:  {{"N/A", "Instruction Tag RAM Read Operation"}}, // ARM11
	{15, 15, 4, 0, 0}:  {{"CBAR", "Configuration Base Address Register"}},
	{15, 15, 5, 4, 0}:  {{"N/A", "Data MicroTLB Index"}},            // ARM11
	{15, 15, 5, 4, 1}:  {{"N/A", "Instruction MicroTLB Index"}},     // ARM11
	{15, 15, 5, 4, 2}:  {{"N/A", "Read Main TLB Entry"}},            // ARM11
	{15, 15, 5, 4, 4}:  {{"N/A", "Write Main TLB Entry"}},           // ARM11
	{15, 15, 5, 5, 0}:  {{"N/A", "Data MicroTLB VA"}},               // ARM11
	{15, 15, 5, 5, 1}:  {{"N/A", "Instruction MicroTLB VA"}},        // ARM11
	{15, 15, 5, 5, 2}:  {{"N/A", "Main TLB VA"}},                    // ARM11
	{15, 15, 5, 7, 0}:  {{"N/A", "Data MicroTLB Attribute"}},        // ARM11
	{15, 15, 5, 7, 1}:  {{"N/A", "Instruction MicroTLB Attribute"}}, // ARM11
	{15, 15, 5, 7, 2}:  {{"N/A", "Main TLB Attribute"}},             // ARM11
	{15, 15, 7, 0, 0}:  {{"N/A", "Cache Debug Control"}},            // ARM11
	{15, 15, 7, 1, 0}:  {{"N/A", "TLB Debug Control"}},              // ARM11

	// Preload Engine control registers
	{15, 11, 0, 0, 0}: {{"PLEIDR", "Preload Engine ID Register"}},
	{15, 11, 0, 0, 2}: {{"PLEASR", "Preload Engine Activity Status Register"}},
	{15, 11, 0, 0, 4}: {{"PLEFSR", "Preload Engine FIFO Status Register"}},
	{15, 11, 0, 1, 0}: {{"PLEUAR", "Preload Engine User Accessibility Register"}},
	{15, 11, 0, 1, 1}: {{"PLEPCR", "Preload Engine Parameters Control Register"}},

	// Preload Engine operations
	{15, 11, 0, 2, 1}: {{"PLEFF", "Preload Engine FIFO flush operation"}},
	{15, 11, 0, 3, 0}: {{"PLEPC", "Preload Engine pause channel operation"}},
	{15, 11, 0, 3, 1}: {{"PLERC", "Preload Engine resume channel operation"}},
	{15, 11, 0, 3, 2}: {{"PLEKC", "Preload Engine kill channel operation"}},

	// Jazelle registers
	{14, 0, 7, 0, 0}: {{"JIDR", "Jazelle ID Register"}},
	{14, 1, 7, 0, 0}: {{"JOSCR", "Jazelle OS Control Register"}},
	{14, 2, 7, 0, 0}: {{"JMCR", "Jazelle Main Configuration Register"}},

	// Debug registers
	{15, 4, 3, 5, 0}:  {{"DSPSR", "Debug Saved Program Status Register"}},
	{15, 4, 3, 5, 1}:  {{"DLR", "Debug Link Register"}},
	{14, 0, 0, 0, 0}:  {{"DBGDIDR", "Debug ID Register"}},
	{14, 0, 0, 6, 0}:  {{"DBGWFAR", "Debug Watchpoint Fault Address Register"}},
	{14, 0, 0, 6, 2}:  {{"DBGOSECCR", "Debug OS Lock Exception Catch Control Register"}},
	{14, 0, 0, 7, 0}:  {{"DBGVCR", "Debug Vector Catch Register"}},
	{14, 0, 0, 0, 2}:  {{"DBGDTRRXext", "Debug OS Lock Data Transfer Register, Receive, External View"}},
	{14, 0, 0, 2, 0}:  {{"DBGDCCINT", "DCC Interrupt Enable Register"}},
	{14, 0, 0, 2, 2}:  {{"DBGDSCRext", "Debug Status and Control Register, External View"}},
	{14, 0, 0, 3, 2}:  {{"DBGDTRTXext", "Debug OS Lock Data Transfer Register, Transmit"}},
	{14, 0, 0, 0, 4}:  {{"DBGBVR0", "Debug Breakpoint Value Register 0"}},
	{14, 0, 0, 1, 4}:  {{"DBGBVR1", "Debug Breakpoint Value Register 1"}},
	{14, 0, 0, 2, 4}:  {{"DBGBVR2", "Debug Breakpoint Value Register 2"}},
	{14, 0, 0, 3, 4}:  {{"DBGBVR3", "Debug Breakpoint Value Register 3"}},
	{14, 0, 0, 4, 4}:  {{"DBGBVR4", "Debug Breakpoint Value Register 4"}},
	{14, 0, 0, 5, 4}:  {{"DBGBVR5", "Debug Breakpoint Value Register 5"}},
	{14, 0, 0, 6, 4}:  {{"DBGBVR6", "Debug Breakpoint Value Register 6"}},
	{14, 0, 0, 7, 4}:  {{"DBGBVR7", "Debug Breakpoint Value Register 7"}},
	{14, 0, 0, 8, 4}:  {{"DBGBVR8", "Debug Breakpoint Value Register 8"}},
	{14, 0, 0, 9, 4}:  {{"DBGBVR9", "Debug Breakpoint Value Register 9"}},
	{14, 0, 0, 10, 4}: {{"DBGBVR10", "Debug Breakpoint Value Register 10"}},
	{14, 0, 0, 11, 4}: {{"DBGBVR11", "Debug Breakpoint Value Register 11"}},
	{14, 0, 0, 12, 4}: {{"DBGBVR12", "Debug Breakpoint Value Register 12"}},
	{14, 0, 0, 13, 4}: {{"DBGBVR13", "Debug Breakpoint Value Register 13"}},
	{14, 0, 0, 14, 4}: {{"DBGBVR14", "Debug Breakpoint Value Register 14"}},
	{14, 0, 0, 15, 4}: {{"DBGBVR15", "Debug Breakpoint Value Register 15"}},
	{14, 0, 0, 0, 5}:  {{"DBGBCR0", "Debug Breakpoint Control Register 0"}},
	{14, 0, 0, 1, 5}:  {{"DBGBCR1", "Debug Breakpoint Control Register 1"}},
	{14, 0, 0, 2, 5}:  {{"DBGBCR2", "Debug Breakpoint Control Register 2"}},
	{14, 0, 0, 3, 5}:  {{"DBGBCR3", "Debug Breakpoint Control Register 3"}},
	{14, 0, 0, 4, 5}:  {{"DBGBCR4", "Debug Breakpoint Control Register 4"}},
	{14, 0, 0, 5, 5}:  {{"DBGBCR5", "Debug Breakpoint Control Register 5"}},
	{14, 0, 0, 6, 5}:  {{"DBGBCR6", "Debug Breakpoint Control Register 6"}},
	{14, 0, 0, 7, 5}:  {{"DBGBCR7", "Debug Breakpoint Control Register 7"}},
	{14, 0, 0, 8, 5}:  {{"DBGBCR8", "Debug Breakpoint Control Register 8"}},
	{14, 0, 0, 9, 5}:  {{"DBGBCR9", "Debug Breakpoint Control Register 9"}},
	{14, 0, 0, 10, 5}: {{"DBGBCR10", "Debug Breakpoint Control Register 10"}},
	{14, 0, 0, 11, 5}: {{"DBGBCR11", "Debug Breakpoint Control Register 11"}},
	{14, 0, 0, 12, 5}: {{"DBGBCR12", "Debug Breakpoint Control Register 12"}},
	{14, 0, 0, 13, 5}: {{"DBGBCR13", "Debug Breakpoint Control Register 13"}},
	{14, 0, 0, 14, 5}: {{"DBGBCR14", "Debug Breakpoint Control Register 14"}},
	{14, 0, 0, 15, 5}: {{"DBGBCR15", "Debug Breakpoint Control Register 15"}},
	{14, 0, 0, 0, 6}:  {{"DBGWVR0", "Debug Watchpoint Value Register 0"}},
	{14, 0, 0, 1, 6}:  {{"DBGWVR1", "Debug Watchpoint Value Register 1"}},
	{14, 0, 0, 2, 6}:  {{"DBGWVR2", "Debug Watchpoint Value Register 2"}},
	{14, 0, 0, 3, 6}:  {{"DBGWVR3", "Debug Watchpoint Value Register 3"}},
	{14, 0, 0, 4, 6}:  {{"DBGWVR4", "Debug Watchpoint Value Register 4"}},
	{14, 0, 0, 5, 6}:  {{"DBGWVR5", "Debug Watchpoint Value Register 5"}},
	{14, 0, 0, 6, 6}:  {{"DBGWVR6", "Debug Watchpoint Value Register 6"}},
	{14, 0, 0, 7, 6}:  {{"DBGWVR7", "Debug Watchpoint Value Register 7"}},
	{14, 0, 0, 8, 6}:  {{"DBGWVR8", "Debug Watchpoint Value Register 8"}},
	{14, 0, 0, 9, 6}:  {{"DBGWVR9", "Debug Watchpoint Value Register 9"}},
	{14, 0, 0, 10, 6}: {{"DBGWVR10", "Debug Watchpoint Value Register 10"}},
	{14, 0, 0, 11, 6}: {{"DBGWVR11", "Debug Watchpoint Value Register 11"}},
	{14, 0, 0, 12, 6}: {{"DBGWVR12", "Debug Watchpoint Value Register 12"}},
	{14, 0, 0, 13, 6}: {{"DBGWVR13", "Debug Watchpoint Value Register 13"}},
	{14, 0, 0, 14, 6}: {{"DBGWVR14", "Debug Watchpoint Value Register 14"}},
	{14, 0, 0, 15, 6}: {{"DBGWVR15", "Debug Watchpoint Value Register 15"}},
	{14, 0, 0, 0, 7}:  {{"DBGWCR0", "Debug Watchpoint Control Register 0"}},
	{14, 0, 0, 1, 7}:  {{"DBGWCR1", "Debug Watchpoint Control Register 1"}},
	{14, 0, 0, 2, 7}:  {{"DBGWCR2", "Debug Watchpoint Control Register 2"}},
	{14, 0, 0, 3, 7}:  {{"DBGWCR3", "Debug Watchpoint Control Register 3"}},
	{14, 0, 0, 4, 7}:  {{"DBGWCR4", "Debug Watchpoint Control Register 4"}},
	{14, 0, 0, 5, 7}:  {{"DBGWCR5", "Debug Watchpoint Control Register 5"}},
	{14, 0, 0, 6, 7}:  {{"DBGWCR6", "Debug Watchpoint Control Register 6"}},
	{14, 0, 0, 7, 7}:  {{"DBGWCR7", "Debug Watchpoint Control Register 7"}},
	{14, 0, 0, 8, 7}:  {{"DBGWCR8", "Debug Watchpoint Control Register 8"}},
	{14, 0, 0, 9, 7}:  {{"DBGWCR9", "Debug Watchpoint Control Register 9"}},
	{14, 0, 0, 10, 7}: {{"DBGWCR10", "Debug Watchpoint Control Register 10"}},
	{14, 0, 0, 11, 7}: {{"DBGWCR11", "Debug Watchpoint Control Register 11"}},
	{14, 0, 0, 12, 7}: {{"DBGWCR12", "Debug Watchpoint Control Register 12"}},
	{14, 0, 0, 13, 7}: {{"DBGWCR13", "Debug Watchpoint Control Register 13"}},
	{14, 0, 0, 14, 7}: {{"DBGWCR14", "Debug Watchpoint Control Register 14"}},
	{14, 0, 0, 15, 7}: {{"DBGWCR15", "Debug Watchpoint Control Register 15"}},
	{14, 1, 0, 0, 1}:  {{"DBGBXVR0", "Debug Breakpoint Extended Value Register 0"}},
	{14, 1, 0, 1, 1}:  {{"DBGBXVR1", "Debug Breakpoint Extended Value Register 1"}},
	{14, 1, 0, 2, 1}:  {{"DBGBXVR2", "Debug Breakpoint Extended Value Register 2"}},
	{14, 1, 0, 3, 1}:  {{"DBGBXVR3", "Debug Breakpoint Extended Value Register 3"}},
	{14, 1, 0, 4, 1}:  {{"DBGBXVR4", "Debug Breakpoint Extended Value Register 4"}},
	{14, 1, 0, 5, 1}:  {{"DBGBXVR5", "Debug Breakpoint Extended Value Register 5"}},
	{14, 1, 0, 6, 1}:  {{"DBGBXVR6", "Debug Breakpoint Extended Value Register 6"}},
	{14, 1, 0, 7, 1}:  {{"DBGBXVR7", "Debug Breakpoint Extended Value Register 7"}},
	{14, 1, 0, 8, 1}:  {{"DBGBXVR8", "Debug Breakpoint Extended Value Register 8"}},
	{14, 1, 0, 9, 1}:  {{"DBGBXVR9", "Debug Breakpoint Extended Value Register 9"}},
	{14, 1, 0, 10, 1}: {{"DBGBXVR10", "Debug Breakpoint Extended Value Register 10"}},
	{14, 1, 0, 11, 1}: {{"DBGBXVR11", "Debug Breakpoint Extended Value Register 11"}},
	{14, 1, 0, 12, 1}: {{"DBGBXVR12", "Debug Breakpoint Extended Value Register 12"}},
	{14, 1, 0, 13, 1}: {{"DBGBXVR13", "Debug Breakpoint Extended Value Register 13"}},
	{14, 1, 0, 14, 1}: {{"DBGBXVR14", "Debug Breakpoint Extended Value Register 14"}},
	{14, 1, 0, 15, 1}: {{"DBGBXVR15", "Debug Breakpoint Extended Value Register 15"}},
	{14, 1, 0, 0, 4}:  {{"DBGOSLAR", "Debug OS Lock Access Register"}},
	{14, 1, 0, 1, 4}:  {{"DBGOSLSR", "Debug OS Lock Status Register"}},
	{14, 1, 0, 4, 4}:  {{"DBGPRCR", "Debug Power Control Register"}},
	{14, 7, 0, 14, 6}: {{"DBGAUTHSTATUS", "Debug Authentication Status register"}},
	{14, 7, 0, 0, 7}:  {{"DBGDEVID2", "Debug Device ID register 2"}},
	{14, 7, 0, 1, 7}:  {{"DBGDEVID1", "Debug Device ID register 1"}},
	{14, 7, 0, 2, 7}:  {{"DBGDEVID", "Debug Device ID register 0"}},
	{14, 7, 0, 8, 6}:  {{"DBGCLAIMSET", "Debug Claim Tag Set register"}},
	{14, 7, 0, 9, 6}:  {{"DBGCLAIMCLR", "Debug Claim Tag Clear register"}},
	{14, 0, 0, 1, 0}:  {{"DBGDSCRint", "Debug Status and Control Register, Internal View"}},
	{14, 0, 0, 5, 0}:  {{"DBGDTRRXint", "Debug Data Transfer Register, Receive"}, {"DBGDTRTXint", "Debug Data Transfer Register, Transmit"}},
	{14, 1, 0, 0, 0}:  {{"DBGDRAR", "Debug ROM Address Register"}},
	{14, 1, 0, 3, 4}:  {{"DBGOSDLR", "Debug OS Double Lock Register"}},
	{14, 2, 0, 0, 0}:  {{"DBGDSAR", "Debug Self Address Register"}},
}
