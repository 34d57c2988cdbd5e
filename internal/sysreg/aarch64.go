// Register encoding tables extracted from the ARMv8.3 00bet4 XML
// specifications and older ARM reference manuals.

package sysreg

// systemRegisters maps AArch64 MSR/MRS operand encodings to register
// descriptions.
var systemRegisters = map[Key][]Desc{
	// Special purpose registers.
	{3, 0, 4, 2, 2}: {{"CurrentEL", "Current Exception Level"}},
	{3, 3, 4, 2, 1}: {{"DAIF", "Interrupt Mask Bits"}},
	{3, 0, 4, 0, 1}: {{"ELR_EL1", "Exception Link Register (EL1)"}},
	{3, 4, 4, 0, 1}: {{"ELR_EL2", "Exception Link Register (EL2)"}},
	{3, 5, 4, 0, 1}: {{"ELR_EL12", "Exception Link Register (EL1)"}},
	{3, 6, 4, 0, 1}: {{"ELR_EL3", "Exception Link Register (EL3)"}},
	{3, 3, 4, 4, 1}: {{"FPSR", "Floating-point Status Register"}},
	{3, 3, 4, 4, 0}: {{"FPCR", "Floating-point Control Register"}},
	{3, 3, 4, 2, 0}: {{"NZCV", "Condition Flags"}},
	{3, 0, 4, 1, 0}: {{"SP_EL0", "Stack Pointer (EL0)"}},
	{3, 4, 4, 1, 0}: {{"SP_EL1", "Stack Pointer (EL1)"}},
	{3, 6, 4, 1, 0}: {{"SP_EL2", "Stack Pointer (EL2)"}},
	{3, 0, 4, 2, 0}: {{"SPSel", "Stack Pointer Select"}},
	{3, 4, 4, 3, 1}: {{"SPSR_abt", "Saved Program Status Register (Abort mode)"}},
	{3, 0, 4, 0, 0}: {{"SPSR_EL1", "Saved Program Status Register (EL1)"}},
	{3, 4, 4, 0, 0}: {{"SPSR_EL2", "Saved Program Status Register (EL2)"}},
	{3, 5, 4, 0, 0}: {{"SPSR_EL12", "Saved Program Status Register (EL1)"}},
	{3, 6, 4, 0, 0}: {{"SPSR_EL3", "Saved Program Status Register (EL3)"}},
	{3, 4, 4, 3, 3}: {{"SPSR_fiq", "Saved Program Status Register (FIQ mode)"}},
	{3, 4, 4, 3, 0}: {{"SPSR_irq", "Saved Program Status Register (IRQ mode)"}},
	{3, 4, 4, 3, 2}: {{"SPSR_und", "Saved Program Status Register (Undefined mode)"}},

	// General system control registers.
	{3, 0, 1, 0, 1}:  {{"ACTLR_EL1", "Auxiliary Control Register (EL1)"}},
	{3, 4, 1, 0, 1}:  {{"ACTLR_EL2", "Auxiliary Control Register (EL2)"}},
	{3, 6, 1, 0, 1}:  {{"ACTLR_EL3", "Auxiliary Control Register (EL3)"}},
	{3, 0, 4, 2, 3}:  {{"PAN", "Privileged Access Never"}},
	{3, 0, 4, 2, 4}:  {{"UAO", "User Access Override"}},
	{3, 0, 5, 1, 0}:  {{"AFSR0_EL1", "Auxiliary Fault Status Register 0 (EL1)"}},
	{3, 4, 5, 1, 0}:  {{"AFSR0_EL2", "Auxiliary Fault Status Register 0 (EL2)"}},
	{3, 5, 5, 1, 0}:  {{"AFSR0_EL12", "Auxiliary Fault Status Register 0 (EL1)"}},
	{3, 6, 5, 1, 0}:  {{"AFSR0_EL3", "Auxiliary Fault Status Register 0 (EL3)"}},
	{3, 0, 5, 1, 1}:  {{"AFSR1_EL1", "Auxiliary Fault Status Register 1 (EL1)"}},
	{3, 4, 5, 1, 1}:  {{"AFSR1_EL2", "Auxiliary Fault Status Register 1 (EL2)"}},
	{3, 5, 5, 1, 1}:  {{"AFSR1_EL12", "Auxiliary Fault Status Register 1 (EL1)"}},
	{3, 6, 5, 1, 1}:  {{"AFSR1_EL3", "Auxiliary Fault Status Register 1 (EL3)"}},
	{3, 1, 0, 0, 7}:  {{"AIDR_EL1", "Auxiliary ID Register"}},
	{3, 0, 10, 3, 0}: {{"AMAIR_EL1", "Auxiliary Memory Attribute Indirection Register (EL1)"}},
	{3, 4, 10, 3, 0}: {{"AMAIR_EL2", "Auxiliary Memory Attribute Indirection Register (EL2)"}},
	{3, 5, 10, 3, 0}: {{"AMAIR_EL12", "Auxiliary Memory Attribute Indirection Register (EL1)"}},
	{3, 6, 10, 3, 0}: {{"AMAIR_EL3", "Auxiliary Memory Attribute Indirection Register (EL3)"}},
	{3, 1, 0, 0, 0}:  {{"CCSIDR_EL1", "Current Cache Size ID Register"}},
	{3, 1, 0, 0, 2}:  {{"CCSIDR2_EL1", "Current Cache Size ID Register 2"}},
	{3, 1, 0, 0, 1}:  {{"CLIDR_EL1", "Cache Level ID Register"}},
	{3, 0, 13, 0, 1}: {{"CONTEXTIDR_EL1", "Context ID Register (EL1)"}},
	{3, 4, 13, 0, 1}: {{"CONTEXTIDR_EL2", "Context ID Register (EL2)"}},
	{3, 5, 13, 0, 1}: {{"CONTEXTIDR_EL12", "Context ID Register (EL1)"}},
	{3, 0, 1, 0, 2}:  {{"CPACR_EL1", "Architectural Feature Access Control Register (EL1)"}},
	{3, 5, 1, 0, 2}:  {{"CPACR_EL12", "Architectural Feature Access Control Register (EL1)"}},
	{3, 4, 1, 1, 2}:  {{"CPTR_EL2", "Architectural Feature Trap Register (EL2)"}},
	{3, 6, 1, 1, 2}:  {{"CPTR_EL3", "Architectural Feature Trap Register (EL3)"}},
	{3, 2, 0, 0, 0}:  {{"CSSELR_EL1", "Cache Size Selection Register"}},
	{3, 3, 0, 0, 1}:  {{"CTR_EL0", "Cache Type Register"}},
	{3, 4, 3, 0, 0}:  {{"DACR32_EL2", "Domain Access Control Register"}},
	{3, 3, 0, 0, 7}:  {{"DCZID_EL0", "Data Cache Zero ID register"}},
	{3, 0, 5, 2, 0}:  {{"ESR_EL1", "Exception Syndrome Register (EL1)"}},
	{3, 4, 5, 2, 0}:  {{"ESR_EL2", "Exception Syndrome Register (EL2)"}},
	{3, 5, 5, 2, 0}:  {{"ESR_EL12", "Exception Syndrome Register (EL1)"}},
	{3, 6, 5, 2, 0}:  {{"ESR_EL3", "Exception Syndrome Register (EL3)"}},
	{3, 0, 6, 0, 0}:  {{"FAR_EL1", "Fault Address Register (EL1)"}},
	{3, 4, 6, 0, 0}:  {{"FAR_EL2", "Fault Address Register (EL2)"}},
	{3, 5, 6, 0, 0}:  {{"FAR_EL12", "Fault Address Register (EL1)"}},
	{3, 6, 6, 0, 0}:  {{"FAR_EL3", "Fault Address Register (EL3)"}},
	{3, 4, 5, 3, 0}:  {{"FPEXC32_EL2", "Floating-Point Exception Control register"}},
	{3, 4, 1, 1, 7}:  {{"HACR_EL2", "Hypervisor Auxiliary Control Register"}},
	{3, 4, 1, 1, 0}:  {{"HCR_EL2", "Hypervisor Configuration Register"}},
	{3, 4, 6, 0, 4}:  {{"HPFAR_EL2", "Hypervisor IPA Fault Address Register"}},
	{3, 4, 1, 1, 3}:  {{"HSTR_EL2", "Hypervisor System Trap Register"}},
	{3, 0, 0, 5, 4}:  {{"ID_AA64AFR0_EL1", "AArch64 Auxiliary Feature Register 0"}},
	{3, 0, 0, 5, 5}:  {{"ID_AA64AFR1_EL1", "AArch64 Auxiliary Feature Register 1"}},
	{3, 0, 0, 5, 0}:  {{"ID_AA64DFR0_EL1", "AArch64 Debug Feature Register 0"}},
	{3, 0, 0, 5, 1}:  {{"ID_AA64DFR1_EL1", "AArch64 Debug Feature Register 1"}},
	{3, 0, 0, 6, 0}:  {{"ID_AA64ISAR0_EL1", "AArch64 Instruction Set Attribute Register 0"}},
	{3, 0, 0, 6, 1}:  {{"ID_AA64ISAR1_EL1", "AArch64 Instruction Set Attribute Register 1"}},
	{3, 0, 0, 7, 0}:  {{"ID_AA64MMFR0_EL1", "AArch64 Memory Model Feature Register 0"}},
	{3, 0, 0, 7, 1}:  {{"ID_AA64MMFR1_EL1", "AArch64 Memory Model Feature Register 1"}},
	{3, 0, 0, 7, 2}:  {{"ID_AA64MMFR2_EL1", "AArch64 Memory Model Feature Register 2"}},
	{3, 0, 0, 4, 0}:  {{"ID_AA64PFR0_EL1", "AArch64 Processor Feature Register 0"}},
	{3, 0, 0, 4, 1}:  {{"ID_AA64PFR1_EL1", "AArch64 Processor Feature Register 1"}},
	{3, 0, 0, 1, 3}:  {{"ID_AFR0_EL1", "AArch32 Auxiliary Feature Register 0"}},
	{3, 0, 0, 1, 2}:  {{"ID_DFR0_EL1", "AArch32 Debug Feature Register 0"}},
	{3, 0, 0, 2, 0}:  {{"ID_ISAR0_EL1", "AArch32 Instruction Set Attribute Register 0"}},
	{3, 0, 0, 2, 1}:  {{"ID_ISAR1_EL1", "AArch32 Instruction Set Attribute Register 1"}},
	{3, 0, 0, 2, 2}:  {{"ID_ISAR2_EL1", "AArch32 Instruction Set Attribute Register 2"}},
	{3, 0, 0, 2, 3}:  {{"ID_ISAR3_EL1", "AArch32 Instruction Set Attribute Register 3"}},
	{3, 0, 0, 2, 4}:  {{"ID_ISAR4_EL1", "AArch32 Instruction Set Attribute Register 4"}},
	{3, 0, 0, 2, 5}:  {{"ID_ISAR5_EL1", "AArch32 Instruction Set Attribute Register 5"}},
	{3, 0, 0, 2, 7}:  {{"ID_ISAR6_EL1", "AArch32 Instruction Set Attribute Register 6"}},
	{3, 0, 0, 1, 4}:  {{"ID_MMFR0_EL1", "AArch32 Memory Model Feature Register 0"}},
	{3, 0, 0, 1, 5}:  {{"ID_MMFR1_EL1", "AArch32 Memory Model Feature Register 1"}},
	{3, 0, 0, 1, 6}:  {{"ID_MMFR2_EL1", "AArch32 Memory Model Feature Register 2"}},
	{3, 0, 0, 1, 7}:  {{"ID_MMFR3_EL1", "AArch32 Memory Model Feature Register 3"}},
	{3, 0, 0, 2, 6}:  {{"ID_MMFR4_EL1", "AArch32 Memory Model Feature Register 4"}},
	{3, 0, 0, 1, 0}:  {{"ID_PFR0_EL1", "AArch32 Processor Feature Register 0"}},
	{3, 0, 0, 1, 1}:  {{"ID_PFR1_EL1", "AArch32 Processor Feature Register 1"}},
	{3, 4, 5, 0, 1}:  {{"IFSR32_EL2", "Instruction Fault Status Register (EL2)"}},
	{3, 0, 12, 1, 0}: {{"ISR_EL1", "Interrupt Status Register"}},
	{3, 0, 10, 2, 0}: {{"MAIR_EL1", "Memory Attribute Indirection Register (EL1)"}},
	{3, 4, 10, 2, 0}: {{"MAIR_EL2", "Memory Attribute Indirection Register (EL2)"}},
	{3, 5, 10, 2, 0}: {{"MAIR_EL12", "Memory Attribute Indirection Register (EL1)"}},
	{3, 6, 10, 2, 0}: {{"MAIR_EL3", "Memory Attribute Indirection Register (EL3)"}},
	{3, 0, 0, 0, 0}:  {{"MIDR_EL1", "Main ID Register"}},
	{3, 0, 0, 0, 5}:  {{"MPIDR_EL1", "Multiprocessor Affinity Register"}},
	{3, 0, 0, 3, 0}:  {{"MVFR0_EL1", "AArch32 Media and VFP Feature Register 0"}},
	{3, 0, 0, 3, 1}:  {{"MVFR1_EL1", "AArch32 Media and VFP Feature Register 1"}},
	{3, 0, 0, 3, 2}:  {{"MVFR2_EL1", "AArch32 Media and VFP Feature Register 2"}},
	{3, 0, 7, 4, 0}:  {{"PAR_EL1", "Physical Address Register"}},
	{3, 0, 0, 0, 6}:  {{"REVIDR_EL1", "Revision ID Register"}},
	{3, 0, 12, 0, 2}: {{"RMR_EL1", "Reset Management Register (EL1)"}},
	{3, 4, 12, 0, 2}: {{"RMR_EL2", "Reset Management Register (EL2)"}},
	{3, 6, 12, 0, 2}: {{"RMR_EL3", "Reset Management Register (EL3)"}},
	{3, 0, 12, 0, 1}: {{"RVBAR_EL1", "Reset Vector Base Address Register (if EL2 and EL3 not implemented)"}},
	{3, 4, 12, 0, 1}: {{"RVBAR_EL2", "Reset Vector Base Address Register (if EL3 not implemented)"}},
	{3, 6, 12, 0, 1}: {{"RVBAR_EL3", "Reset Vector Base Address Register (if EL3 implemented)"}},
	{3, 6, 1, 1, 0}:  {{"SCR_EL3", "Secure Configuration Register"}},
	{3, 6, 1, 1, 1}:  {{"SDER_EL3", "AArch32 Secure Debug Enable Register"}},
	{3, 0, 1, 0, 0}:  {{"SCTLR_EL1", "System Control Register (EL1)"}},
	{3, 4, 1, 0, 0}:  {{"SCTLR_EL2", "System Control Register (EL2)"}},
	{3, 5, 1, 0, 0}:  {{"SCTLR_EL12", "System Control Register (EL1)"}},
	{3, 6, 1, 0, 0}:  {{"SCTLR_EL3", "System Control Register (EL3)"}},
	{3, 0, 2, 0, 2}:  {{"TCR_EL1", "Translation Control Register (EL1)"}},
	{3, 4, 2, 0, 2}:  {{"TCR_EL2", "Translation Control Register (EL2)"}},
	{3, 5, 2, 0, 2}:  {{"TCR_EL12", "Translation Control Register (EL1)"}},
	{3, 6, 2, 0, 2}:  {{"TCR_EL3", "Translation Control Register (EL3)"}},
	{3, 2, 1, 0, 0}:  {{"TEEHBR32_EL1", "T32EE Handler Base Register"}}, // Not defined in 8.2 specifications.
	{3, 3, 13, 0, 2}: {{"TPIDR_EL0", "EL0 Read/Write Software Thread ID Register"}},
	{3, 0, 13, 0, 4}: {{"TPIDR_EL1", "EL1 Software Thread ID Register"}},
	{3, 4, 13, 0, 2}: {{"TPIDR_EL2", "EL2 Software Thread ID Register"}},
	{3, 6, 13, 0, 2}: {{"TPIDR_EL3", "EL3 Software Thread ID Register"}},
	{3, 3, 13, 0, 3}: {{"TPIDRRO_EL0", "EL0 Read-Only Software Thread ID Register"}},
	{3, 0, 2, 0, 0}:  {{"TTBR0_EL1", "Translation Table Base Register 0 (EL1)"}},
	{3, 4, 2, 0, 0}:  {{"TTBR0_EL2", "Translation Table Base Register 0 (EL2)"}},
	{3, 5, 2, 0, 0}:  {{"TTBR0_EL12", "Translation Table Base Register 0 (EL1)"}},
	{3, 6, 2, 0, 0}:  {{"TTBR0_EL3", "Translation Table Base Register 0 (EL3)"}},
	{3, 0, 2, 0, 1}:  {{"TTBR1_EL1", "Translation Table Base Register 1 (EL1)"}},
	{3, 4, 2, 0, 1}:  {{"TTBR1_EL2", "Translation Table Base Register 1 (EL2)"}},
	{3, 5, 2, 0, 1}:  {{"TTBR1_EL12", "Translation Table Base Register 1 (EL1)"}},
	{3, 0, 12, 0, 0}: {{"VBAR_EL1", "Vector Base Address Register (EL1)"}},
	{3, 4, 12, 0, 0}: {{"VBAR_EL2", "Vector Base Address Register (EL2)"}},
	{3, 5, 12, 0, 0}: {{"VBAR_EL12", "Vector Base Address Register (EL1)"}},
	{3, 6, 12, 0, 0}: {{"VBAR_EL3", "Vector Base Address Register (EL3)"}},
	{3, 4, 0, 0, 5}:  {{"VMPIDR_EL2", "Virtualization Multiprocessor ID Register"}},
	{3, 4, 0, 0, 0}:  {{"VPIDR_EL2", "Virtualization Processor ID Register"}},
	{3, 4, 2, 1, 2}:  {{"VTCR_EL2", "Virtualization Translation Control Register"}},
	{3, 4, 2, 1, 0}:  {{"VTTBR_EL2", "Virtualization Translation Table Base Register"}},
	{3, 1, 15, 2, 0}: {{"CPUACTLR_EL1", "CPU Auxiliary Control Register (EL1)"}},
	{3, 1, 15, 2, 1}: {{"CPUECTLR_EL1", "CPU Extended Control Register (EL1)"}},
	{3, 1, 15, 2, 2}: {{"CPUMERRSR_EL1", "CPU Memory Error Syndrome Register"}},
	{3, 1, 15, 2, 3}: {{"L2MERRSR_EL1", "L2 Memory Error Syndrome Register"}},

	// Pointer authentication keys.
	{3, 0, 2, 1, 0}: {{"APIAKeyLo_EL1", "Pointer Authentication Key A for Instruction (bits[63:0]) "}},
	{3, 0, 2, 1, 1}: {{"APIAKeyHi_EL1", "Pointer Authentication Key A for Instruction (bits[127:64]) "}},
	{3, 0, 2, 1, 2}: {{"APIBKeyLo_EL1", "Pointer Authentication Key B for Instruction (bits[63:0]) "}},
	{3, 0, 2, 1, 3}: {{"APIBKeyHi_EL1", "Pointer Authentication Key B for Instruction (bits[127:64]) "}},
	{3, 0, 2, 2, 0}: {{"APDAKeyLo_EL1", "Pointer Authentication Key A for Data (bits[63:0]) "}},
	{3, 0, 2, 2, 1}: {{"APDAKeyHi_EL1", "Pointer Authentication Key A for Data (bits[127:64]) "}},
	{3, 0, 2, 2, 2}: {{"APDBKeyLo_EL1", "Pointer Authentication Key B for Data (bits[63:0]) "}},
	{3, 0, 2, 2, 3}: {{"APDBKeyHi_EL1", "Pointer Authentication Key B for Data (bits[127:64]) "}},
	{3, 0, 2, 3, 0}: {{"APGAKeyLo_EL1", "Pointer Authentication Key A for Code  (bits[63:0]) "}},
	{3, 0, 2, 3, 1}: {{"APGAKeyHi_EL1", "Pointer Authentication Key A for Code (bits[127:64]) "}},

	// Debug registers.
	{3, 4, 1, 1, 1}:  {{"MDCR_EL2", "Monitor Debug Configuration Register (EL2)"}},
	{3, 6, 1, 3, 1}:  {{"MDCR_EL3", "Monitor Debug Configuration Register (EL3)"}},
	{3, 3, 4, 5, 0}:  {{"DSPSR_EL0", "Debug Saved Program Status Register"}},
	{3, 3, 4, 5, 1}:  {{"DLR_EL0", "Debug Link Register"}},
	{2, 0, 0, 0, 2}:  {{"OSDTRRX_EL1", "OS Lock Data Transfer Register, Receive"}},
	{2, 0, 0, 3, 2}:  {{"OSDTRTX_EL1", "OS Lock Data Transfer Register, Transmit"}},
	{2, 0, 0, 6, 2}:  {{"OSECCR_EL1", "OS Lock Exception Catch Control Register"}},
	{2, 3, 0, 4, 0}:  {{"DBGDTR_EL0", "Debug Data Transfer Register, half-duplex"}},
	{2, 3, 0, 5, 0}:  {{"DBGDTRTX_EL0", "Debug Data Transfer Register, Transmit"}, {"DBGDTRRX_EL0", "Debug Data Transfer Register, Receive"}},
	{2, 4, 0, 7, 0}:  {{"DBGVCR32_EL2", "Debug Vector Catch Register"}},
	{2, 0, 0, 0, 4}:  {{"DBGBVR0_EL1", "Debug Breakpoint Value Register 0"}},
	{2, 0, 0, 1, 4}:  {{"DBGBVR1_EL1", "Debug Breakpoint Value Register 1"}},
	{2, 0, 0, 2, 4}:  {{"DBGBVR2_EL1", "Debug Breakpoint Value Register 2"}},
	{2, 0, 0, 3, 4}:  {{"DBGBVR3_EL1", "Debug Breakpoint Value Register 3"}},
	{2, 0, 0, 4, 4}:  {{"DBGBVR4_EL1", "Debug Breakpoint Value Register 4"}},
	{2, 0, 0, 5, 4}:  {{"DBGBVR5_EL1", "Debug Breakpoint Value Register 5"}},
	{2, 0, 0, 6, 4}:  {{"DBGBVR6_EL1", "Debug Breakpoint Value Register 6"}},
	{2, 0, 0, 7, 4}:  {{"DBGBVR7_EL1", "Debug Breakpoint Value Register 7"}},
	{2, 0, 0, 8, 4}:  {{"DBGBVR8_EL1", "Debug Breakpoint Value Register 8"}},
	{2, 0, 0, 9, 4}:  {{"DBGBVR9_EL1", "Debug Breakpoint Value Register 9"}},
	{2, 0, 0, 10, 4}: {{"DBGBVR10_EL1", "Debug Breakpoint Value Registers 10"}},
	{2, 0, 0, 11, 4}: {{"DBGBVR11_EL1", "Debug Breakpoint Value Registers 11"}},
	{2, 0, 0, 12, 4}: {{"DBGBVR12_EL1", "Debug Breakpoint Value Registers 12"}},
	{2, 0, 0, 13, 4}: {{"DBGBVR13_EL1", "Debug Breakpoint Value Registers 13"}},
	{2, 0, 0, 14, 4}: {{"DBGBVR14_EL1", "Debug Breakpoint Value Registers 14"}},
	{2, 0, 0, 15, 4}: {{"DBGBVR15_EL1", "Debug Breakpoint Value Registers 15"}},
	{2, 0, 0, 0, 5}:  {{"DBGBCR0_EL1", "Debug Breakpoint Control Register 0"}},
	{2, 0, 0, 1, 5}:  {{"DBGBCR1_EL1", "Debug Breakpoint Control Register 1"}},
	{2, 0, 0, 2, 5}:  {{"DBGBCR2_EL1", "Debug Breakpoint Control Register 2"}},
	{2, 0, 0, 3, 5}:  {{"DBGBCR3_EL1", "Debug Breakpoint Control Register 3"}},
	{2, 0, 0, 4, 5}:  {{"DBGBCR4_EL1", "Debug Breakpoint Control Register 4"}},
	{2, 0, 0, 5, 5}:  {{"DBGBCR5_EL1", "Debug Breakpoint Control Register 5"}},
	{2, 0, 0, 6, 5}:  {{"DBGBCR6_EL1", "Debug Breakpoint Control Register 6"}},
	{2, 0, 0, 7, 5}:  {{"DBGBCR7_EL1", "Debug Breakpoint Control Register 7"}},
	{2, 0, 0, 8, 5}:  {{"DBGBCR8_EL1", "Debug Breakpoint Control Register 8"}},
	{2, 0, 0, 9, 5}:  {{"DBGBCR9_EL1", "Debug Breakpoint Control Register 9"}},
	{2, 0, 0, 10, 5}: {{"DBGBCR10_EL1", "Debug Breakpoint Control Register 10"}},
	{2, 0, 0, 11, 5}: {{"DBGBCR11_EL1", "Debug Breakpoint Control Register 11"}},
	{2, 0, 0, 12, 5}: {{"DBGBCR12_EL1", "Debug Breakpoint Control Register 12"}},
	{2, 0, 0, 13, 5}: {{"DBGBCR13_EL1", "Debug Breakpoint Control Register 13"}},
	{2, 0, 0, 14, 5}: {{"DBGBCR14_EL1", "Debug Breakpoint Control Register 14"}},
	{2, 0, 0, 15, 5}: {{"DBGBCR15_EL1", "Debug Breakpoint Control Register 15"}},
	{2, 0, 0, 0, 6}:  {{"DBGWVR0_EL1", "Debug Watchpoint Value Register 0"}},
	{2, 0, 0, 1, 6}:  {{"DBGWVR1_EL1", "Debug Watchpoint Value Register 1"}},
	{2, 0, 0, 2, 6}:  {{"DBGWVR2_EL1", "Debug Watchpoint Value Register 2"}},
	{2, 0, 0, 3, 6}:  {{"DBGWVR3_EL1", "Debug Watchpoint Value Register 3"}},
	{2, 0, 0, 4, 6}:  {{"DBGWVR4_EL1", "Debug Watchpoint Value Register 4"}},
	{2, 0, 0, 5, 6}:  {{"DBGWVR5_EL1", "Debug Watchpoint Value Register 5"}},
	{2, 0, 0, 6, 6}:  {{"DBGWVR6_EL1", "Debug Watchpoint Value Register 6"}},
	{2, 0, 0, 7, 6}:  {{"DBGWVR7_EL1", "Debug Watchpoint Value Register 7"}},
	{2, 0, 0, 8, 6}:  {{"DBGWVR8_EL1", "Debug Watchpoint Value Register 8"}},
	{2, 0, 0, 9, 6}:  {{"DBGWVR9_EL1", "Debug Watchpoint Value Register 9"}},
	{2, 0, 0, 10, 6}: {{"DBGWVR10_EL1", "Debug Watchpoint Value Register 10"}},
	{2, 0, 0, 11, 6}: {{"DBGWVR11_EL1", "Debug Watchpoint Value Register 11"}},
	{2, 0, 0, 12, 6}: {{"DBGWVR12_EL1", "Debug Watchpoint Value Register 12"}},
	{2, 0, 0, 13, 6}: {{"DBGWVR13_EL1", "Debug Watchpoint Value Register 13"}},
	{2, 0, 0, 14, 6}: {{"DBGWVR14_EL1", "Debug Watchpoint Value Register 14"}},
	{2, 0, 0, 15, 6}: {{"DBGWVR15_EL1", "Debug Watchpoint Value Register 15"}},
	{2, 0, 0, 0, 7}:  {{"DBGWCR0_EL1", "Debug Watchpoint Control Register 0"}},
	{2, 0, 0, 1, 7}:  {{"DBGWCR1_EL1", "Debug Watchpoint Control Register 1"}},
	{2, 0, 0, 2, 7}:  {{"DBGWCR2_EL1", "Debug Watchpoint Control Register 2"}},
	{2, 0, 0, 3, 7}:  {{"DBGWCR3_EL1", "Debug Watchpoint Control Register 3"}},
	{2, 0, 0, 4, 7}:  {{"DBGWCR4_EL1", "Debug Watchpoint Control Register 4"}},
	{2, 0, 0, 5, 7}:  {{"DBGWCR5_EL1", "Debug Watchpoint Control Register 5"}},
	{2, 0, 0, 6, 7}:  {{"DBGWCR6_EL1", "Debug Watchpoint Control Register 6"}},
	{2, 0, 0, 7, 7}:  {{"DBGWCR7_EL1", "Debug Watchpoint Control Register 7"}},
	{2, 0, 0, 8, 7}:  {{"DBGWCR8_EL1", "Debug Watchpoint Control Register 8"}},
	{2, 0, 0, 9, 7}:  {{"DBGWCR9_EL1", "Debug Watchpoint Control Register 9"}},
	{2, 0, 0, 10, 7}: {{"DBGWCR10_EL1", "Debug Watchpoint Control Register 10"}},
	{2, 0, 0, 11, 7}: {{"DBGWCR11_EL1", "Debug Watchpoint Control Register 11"}},
	{2, 0, 0, 12, 7}: {{"DBGWCR12_EL1", "Debug Watchpoint Control Register 12"}},
	{2, 0, 0, 13, 7}: {{"DBGWCR13_EL1", "Debug Watchpoint Control Register 13"}},
	{2, 0, 0, 14, 7}: {{"DBGWCR14_EL1", "Debug Watchpoint Control Register 14"}},
	{2, 0, 0, 15, 7}: {{"DBGWCR15_EL1", "Debug Watchpoint Control Register 15"}},
	{2, 3, 0, 1, 0}:  {{"MDCCSR_EL0", "Monitor DCC Status Register"}},
	{2, 0, 0, 2, 0}:  {{"MDCCINT_EL1", "Monitor DCC Interrupt Enable Register"}},
	{2, 0, 0, 2, 2}:  {{"MDSCR_EL1", "Monitor Debug System Control Register"}},
	{2, 0, 1, 0, 0}:  {{"MDRAR_EL1", "Monitor Debug ROM Address Register"}},
	{2, 0, 1, 0, 4}:  {{"OSLAR_EL1", "OS Lock Access Register"}},
	{2, 0, 1, 1, 4}:  {{"OSLSR_EL1", "OS Lock Status Register"}},
	{2, 0, 1, 3, 4}:  {{"OSDLR_EL1", "OS Double Lock Register"}},
	{2, 0, 1, 4, 4}:  {{"DBGPRCR_EL1", "Debug Power Control Register"}},
	{2, 0, 7, 8, 6}:  {{"DBGCLAIMSET_EL1", "Debug Claim Tag Set register"}},
	{2, 0, 7, 9, 6}:  {{"DBGCLAIMCLR_EL1", "Debug Claim Tag Clear register"}},
	{2, 0, 7, 14, 6}: {{"DBGAUTHSTATUS_EL1", "Debug Authentication Status register"}},

	// Limited ordering regions.
	{3, 0, 10, 4, 3}: {{"LORC_EL1", "LORegion Control (EL1)"}},
	{3, 0, 10, 4, 0}: {{"LORSA_EL1", "LORegion Start Address (EL1)"}},
	{3, 0, 10, 4, 1}: {{"LOREA_EL1", "LORegion End Address (EL1)"}},
	{3, 0, 10, 4, 2}: {{"LORN_EL1", "LORegion Number (EL1)"}},
	{3, 0, 10, 4, 7}: {{"LORID_EL1", "LORegionID (EL1)"}},

	// Performance monitor registers.
	{3, 3, 14, 15, 7}: {{"PMCCFILTR_EL0", "Performance Monitors Cycle Count Filter Register"}},
	{3, 3, 9, 13, 0}:  {{"PMCCNTR_EL0", "Performance Monitors Cycle Count Register"}},
	{3, 3, 9, 12, 6}:  {{"PMCEID0_EL0", "Performance Monitors Common Event Identification register 0"}},
	{3, 3, 9, 12, 7}:  {{"PMCEID1_EL0", "Performance Monitors Common Event Identification register 1"}},
	{3, 3, 9, 12, 2}:  {{"PMCNTENCLR_EL0", "Performance Monitors Count Enable Clear register"}},
	{3, 3, 9, 12, 1}:  {{"PMCNTENSET_EL0", "Performance Monitors Count Enable Set register"}},
	{3, 3, 9, 12, 0}:  {{"PMCR_EL0", "Performance Monitors Control Register"}},
	{3, 3, 14, 8, 0}:  {{"PMEVCNTR0_EL0", "Performance Monitors Event Count Register 0"}},
	{3, 3, 14, 8, 1}:  {{"PMEVCNTR1_EL0", "Performance Monitors Event Count Register 1"}},
	{3, 3, 14, 8, 2}:  {{"PMEVCNTR2_EL0", "Performance Monitors Event Count Register 2"}},
	{3, 3, 14, 8, 3}:  {{"PMEVCNTR3_EL0", "Performance Monitors Event Count Register 3"}},
	{3, 3, 14, 8, 4}:  {{"PMEVCNTR4_EL0", "Performance Monitors Event Count Register 4"}},
	{3, 3, 14, 8, 5}:  {{"PMEVCNTR5_EL0", "Performance Monitors Event Count Register 5"}},
	{3, 3, 14, 8, 6}:  {{"PMEVCNTR6_EL0", "Performance Monitors Event Count Register 6"}},
	{3, 3, 14, 8, 7}:  {{"PMEVCNTR7_EL0", "Performance Monitors Event Count Register 7"}},
	{3, 3, 14, 9, 0}:  {{"PMEVCNTR8_EL0", "Performance Monitors Event Count Register 8"}},
	{3, 3, 14, 9, 1}:  {{"PMEVCNTR9_EL0", "Performance Monitors Event Count Register 9"}},
	{3, 3, 14, 9, 2}:  {{"PMEVCNTR10_EL0", "Performance Monitors Event Count Register 10"}},
	{3, 3, 14, 9, 3}:  {{"PMEVCNTR11_EL0", "Performance Monitors Event Count Register 11"}},
	{3, 3, 14, 9, 4}:  {{"PMEVCNTR12_EL0", "Performance Monitors Event Count Register 12"}},
	{3, 3, 14, 9, 5}:  {{"PMEVCNTR13_EL0", "Performance Monitors Event Count Register 13"}},
	{3, 3, 14, 9, 6}:  {{"PMEVCNTR14_EL0", "Performance Monitors Event Count Register 14"}},
	{3, 3, 14, 9, 7}:  {{"PMEVCNTR15_EL0", "Performance Monitors Event Count Register 15"}},
	{3, 3, 14, 10, 0}: {{"PMEVCNTR16_EL0", "Performance Monitors Event Count Register 16"}},
	{3, 3, 14, 10, 1}: {{"PMEVCNTR17_EL0", "Performance Monitors Event Count Register 17"}},
	{3, 3, 14, 10, 2}: {{"PMEVCNTR18_EL0", "Performance Monitors Event Count Register 18"}},
	{3, 3, 14, 10, 3}: {{"PMEVCNTR19_EL0", "Performance Monitors Event Count Register 19"}},
	{3, 3, 14, 10, 4}: {{"PMEVCNTR20_EL0", "Performance Monitors Event Count Register 20"}},
	{3, 3, 14, 10, 5}: {{"PMEVCNTR21_EL0", "Performance Monitors Event Count Register 21"}},
	{3, 3, 14, 10, 6}: {{"PMEVCNTR22_EL0", "Performance Monitors Event Count Register 22"}},
	{3, 3, 14, 10, 7}: {{"PMEVCNTR23_EL0", "Performance Monitors Event Count Register 23"}},
	{3, 3, 14, 11, 0}: {{"PMEVCNTR24_EL0", "Performance Monitors Event Count Register 24"}},
	{3, 3, 14, 11, 1}: {{"PMEVCNTR25_EL0", "Performance Monitors Event Count Register 25"}},
	{3, 3, 14, 11, 2}: {{"PMEVCNTR26_EL0", "Performance Monitors Event Count Register 26"}},
	{3, 3, 14, 11, 3}: {{"PMEVCNTR27_EL0", "Performance Monitors Event Count Register 27"}},
	{3, 3, 14, 11, 4}: {{"PMEVCNTR28_EL0", "Performance Monitors Event Count Register 28"}},
	{3, 3, 14, 11, 5}: {{"PMEVCNTR29_EL0", "Performance Monitors Event Count Register 29"}},
	{3, 3, 14, 11, 6}: {{"PMEVCNTR30_EL0", "Performance Monitors Event Count Register 30"}},
	{3, 3, 14, 12, 0}: {{"PMEVTYPER0_EL0", "Performance Monitors Event Type Register 0"}},
	{3, 3, 14, 12, 1}: {{"PMEVTYPER1_EL0", "Performance Monitors Event Type Register 1"}},
	{3, 3, 14, 12, 2}: {{"PMEVTYPER2_EL0", "Performance Monitors Event Type Register 2"}},
	{3, 3, 14, 12, 3}: {{"PMEVTYPER3_EL0", "Performance Monitors Event Type Register 3"}},
	{3, 3, 14, 12, 4}: {{"PMEVTYPER4_EL0", "Performance Monitors Event Type Register 4"}},
	{3, 3, 14, 12, 5}: {{"PMEVTYPER5_EL0", "Performance Monitors Event Type Register 5"}},
	{3, 3, 14, 12, 6}: {{"PMEVTYPER6_EL0", "Performance Monitors Event Type Register 6"}},
	{3, 3, 14, 12, 7}: {{"PMEVTYPER7_EL0", "Performance Monitors Event Type Register 7"}},
	{3, 3, 14, 13, 0}: {{"PMEVTYPER8_EL0", "Performance Monitors Event Type Register 8"}},
	{3, 3, 14, 13, 1}: {{"PMEVTYPER9_EL0", "Performance Monitors Event Type Register 9"}},
	{3, 3, 14, 13, 2}: {{"PMEVTYPER10_EL0", "Performance Monitors Event Type Register 10"}},
	{3, 3, 14, 13, 3}: {{"PMEVTYPER11_EL0", "Performance Monitors Event Type Register 11"}},
	{3, 3, 14, 13, 4}: {{"PMEVTYPER12_EL0", "Performance Monitors Event Type Register 12"}},
	{3, 3, 14, 13, 5}: {{"PMEVTYPER13_EL0", "Performance Monitors Event Type Register 13"}},
	{3, 3, 14, 13, 6}: {{"PMEVTYPER14_EL0", "Performance Monitors Event Type Register 14"}},
	{3, 3, 14, 13, 7}: {{"PMEVTYPER15_EL0", "Performance Monitors Event Type Register 15"}},
	{3, 3, 14, 14, 0}: {{"PMEVTYPER16_EL0", "Performance Monitors Event Type Register 16"}},
	{3, 3, 14, 14, 1}: {{"PMEVTYPER17_EL0", "Performance Monitors Event Type Register 17"}},
	{3, 3, 14, 14, 2}: {{"PMEVTYPER18_EL0", "Performance Monitors Event Type Register 18"}},
	{3, 3, 14, 14, 3}: {{"PMEVTYPER19_EL0", "Performance Monitors Event Type Register 19"}},
	{3, 3, 14, 14, 4}: {{"PMEVTYPER20_EL0", "Performance Monitors Event Type Register 20"}},
	{3, 3, 14, 14, 5}: {{"PMEVTYPER21_EL0", "Performance Monitors Event Type Register 21"}},
	{3, 3, 14, 14, 6}: {{"PMEVTYPER22_EL0", "Performance Monitors Event Type Register 22"}},
	{3, 3, 14, 14, 7}: {{"PMEVTYPER23_EL0", "Performance Monitors Event Type Register 23"}},
	{3, 3, 14, 15, 0}: {{"PMEVTYPER24_EL0", "Performance Monitors Event Type Register 24"}},
	{3, 3, 14, 15, 1}: {{"PMEVTYPER25_EL0", "Performance Monitors Event Type Register 25"}},
	{3, 3, 14, 15, 2}: {{"PMEVTYPER26_EL0", "Performance Monitors Event Type Register 26"}},
	{3, 3, 14, 15, 3}: {{"PMEVTYPER27_EL0", "Performance Monitors Event Type Register 27"}},
	{3, 3, 14, 15, 4}: {{"PMEVTYPER28_EL0", "Performance Monitors Event Type Register 28"}},
	{3, 3, 14, 15, 5}: {{"PMEVTYPER29_EL0", "Performance Monitors Event Type Register 29"}},
	{3, 3, 14, 15, 6}: {{"PMEVTYPER30_EL0", "Performance Monitors Event Type Register 30"}},
	{3, 0, 9, 14, 2}:  {{"PMINTENCLR_EL1", "Performance Monitors Interrupt Enable Clear register"}},
	{3, 0, 9, 14, 1}:  {{"PMINTENSET_EL1", "Performance Monitors Interrupt Enable Set register"}},
	{3, 3, 9, 12, 3}:  {{"PMOVSCLR_EL0", "Performance Monitors Overflow Flag Status Clear Register"}},
	{3, 3, 9, 14, 3}:  {{"PMOVSSET_EL0", "Performance Monitors Overflow Flag Status Set register"}},
	{3, 3, 9, 12, 5}:  {{"PMSELR_EL0", "Performance Monitors Event Counter Selection Register"}},
	{3, 3, 9, 12, 4}:  {{"PMSWINC_EL0", "Performance Monitors Software Increment register"}},
	{3, 3, 9, 14, 0}:  {{"PMUSERENR_EL0", "Performance Monitors User Enable Register"}},
	{3, 3, 9, 13, 2}:  {{"PMXEVCNTR_EL0", "Performance Monitors Selected Event Count Register"}},
	{3, 3, 9, 13, 1}:  {{"PMXEVTYPER_EL0", "Performance Monitors Selected Event Type Register"}},

	// Generic Timer registers.
	{3, 3, 14, 0, 0}: {{"CNTFRQ_EL0", "Counter-timer Frequency register"}},
	{3, 4, 14, 1, 0}: {{"CNTHCTL_EL2", "Counter-timer Hypervisor Control register"}},
	{3, 4, 14, 2, 1}: {{"CNTHP_CTL_EL2", "Counter-timer Hypervisor Physical Timer Control register"}},
	{3, 4, 14, 2, 2}: {{"CNTHP_CVAL_EL2", "Counter-timer Hypervisor Physical Timer CompareValue register"}},
	{3, 4, 14, 2, 0}: {{"CNTHP_TVAL_EL2", "Counter-timer Hypervisor Physical Timer TimerValue register"}},
	{3, 4, 14, 3, 0}: {{"CNTHV_TVAL_EL2", "Counter-timer Virtual Timer TimerValue register (EL2)"}},
	{3, 4, 14, 3, 1}: {{"CNTHV_CTL_EL2", "Counter-timer Virtual Timer Control register (EL2)"}},
	{3, 4, 14, 3, 2}: {{"CNTHV_CVAL_EL2", "Counter-timer Virtual Timer CompareValue register (EL2)"}},
	{3, 0, 14, 1, 0}: {{"CNTKCTL_EL1", "Counter-timer Hypervisor Control register"}},
	{3, 5, 14, 1, 0}: {{"CNTKCTL_EL12", "Counter-timer Kernel Control register"}},
	{3, 3, 14, 2, 1}: {{"CNTP_CTL_EL0", "Counter-timer Hypervisor Physical Timer Control register"}},
	{3, 5, 14, 2, 1}: {{"CNTP_CTL_EL02", "Counter-timer Physical Timer Control register"}},
	{3, 3, 14, 2, 2}: {{"CNTP_CVAL_EL0", "Counter-timer Physical Timer CompareValue register"}},
	{3, 5, 14, 2, 2}: {{"CNTP_CVAL_EL02", "Counter-timer Physical Timer CompareValue register"}},
	{3, 3, 14, 2, 0}: {{"CNTP_TVAL_EL0", "Counter-timer Physical Timer TimerValue register"}},
	{3, 5, 14, 2, 0}: {{"CNTP_TVAL_EL02", "Counter-timer Physical Timer TimerValue register"}},
	{3, 3, 14, 0, 1}: {{"CNTPCT_EL0", "Counter-timer Physical Count register"}},
	{3, 7, 14, 2, 1}: {{"CNTPS_CTL_EL1", "Counter-timer Physical Secure Timer Control register"}},
	{3, 7, 14, 2, 2}: {{"CNTPS_CVAL_EL1", "Counter-timer Physical Secure Timer CompareValue register"}},
	{3, 7, 14, 2, 0}: {{"CNTPS_TVAL_EL1", "Counter-timer Physical Secure Timer TimerValue register"}},
	{3, 3, 14, 3, 1}: {{"CNTV_CTL_EL0", "Counter-timer Virtual Timer Control register (EL2)"}},
	{3, 5, 14, 3, 1}: {{"CNTV_CTL_EL02", "Counter-timer Virtual Timer Control register"}},
	{3, 3, 14, 3, 2}: {{"CNTV_CVAL_EL0", "Counter-timer Virtual Timer CompareValue register"}},
	{3, 5, 14, 3, 2}: {{"CNTV_CVAL_EL02", "Counter-timer Virtual Timer CompareValue register"}},
	{3, 3, 14, 3, 0}: {{"CNTV_TVAL_EL0", "Counter-timer Virtual Timer TimerValue register"}},
	{3, 5, 14, 3, 0}: {{"CNTV_TVAL_EL02", "Counter-timer Virtual Timer TimerValue register"}},
	{3, 3, 14, 0, 2}: {{"CNTVCT_EL0", "Counter-timer Virtual Count register"}},
	{3, 4, 14, 0, 3}: {{"CNTVOFF_EL2", "Counter-timer Virtual Offset register"}},

	// Generic Interrupt Controller CPU interface registers.
	{3, 0, 12, 8, 4}:  {{"ICC_AP0R0_EL1", "Interrupt Controller Active Priorities Group 0 Register 0"}},
	{3, 0, 12, 8, 5}:  {{"ICC_AP0R1_EL1", "Interrupt Controller Active Priorities Group 0 Register 1"}},
	{3, 0, 12, 8, 6}:  {{"ICC_AP0R2_EL1", "Interrupt Controller Active Priorities Group 0 Register 2"}},
	{3, 0, 12, 8, 7}:  {{"ICC_AP0R3_EL1", "Interrupt Controller Active Priorities Group 0 Register 3"}},
	{3, 0, 12, 9, 0}:  {{"ICC_AP1R0_EL1", "Interrupt Controller Active Priorities Group 1 Register 0"}},
	{3, 0, 12, 9, 1}:  {{"ICC_AP1R1_EL1", "Interrupt Controller Active Priorities Group 1 Register 1"}},
	{3, 0, 12, 9, 2}:  {{"ICC_AP1R2_EL1", "Interrupt Controller Active Priorities Group 1 Register 2"}},
	{3, 0, 12, 9, 3}:  {{"ICC_AP1R3_EL1", "Interrupt Controller Active Priorities Group 1 Register 3"}},
	{3, 0, 12, 11, 6}: {{"ICC_ASGI1R_EL1", "Interrupt Controller Alias Software Generated Interrupt Group 1 Register"}},
	{3, 0, 12, 8, 3}:  {{"ICC_BPR0_EL1", "Interrupt Controller Binary Point Register 0"}},
	{3, 0, 12, 12, 3}: {{"ICC_BPR1_EL1", "Interrupt Controller Binary Point Register 1"}},
	{3, 0, 12, 12, 4}: {{"ICC_CTLR_EL1", "Interrupt Controller Virtual Control Register"}},
	{3, 6, 12, 12, 4}: {{"ICC_CTLR_EL3", "Interrupt Controller Control Register (EL3)"}},
	{3, 0, 12, 11, 1}: {{"ICC_DIR_EL1", "Interrupt Controller Deactivate Virtual Interrupt Register"}},
	{3, 0, 12, 8, 1}:  {{"ICC_EOIR0_EL1", "Interrupt Controller End Of Interrupt Register 0"}},
	{3, 0, 12, 12, 1}: {{"ICC_EOIR1_EL1", "Interrupt Controller End Of Interrupt Register 1"}},
	{3, 0, 12, 8, 2}:  {{"ICC_HPPIR0_EL1", "Interrupt Controller Virtual Highest Priority Pending Interrupt Register 0"}},
	{3, 0, 12, 12, 2}: {{"ICC_HPPIR1_EL1", "Interrupt Controller Virtual Highest Priority Pending Interrupt Register 1"}},
	{3, 0, 12, 8, 0}:  {{"ICC_IAR0_EL1", "Interrupt Controller Virtual Interrupt Acknowledge Register 0"}},
	{3, 0, 12, 12, 0}: {{"ICC_IAR1_EL1", "Interrupt Controller Interrupt Acknowledge Register 1"}},
	{3, 0, 12, 12, 6}: {{"ICC_IGRPEN0_EL1", "Interrupt Controller Virtual Interrupt Group 0 Enable register"}},
	{3, 0, 12, 12, 7}: {{"ICC_IGRPEN1_EL1", "Interrupt Controller Interrupt Group 1 Enable register"}},
	{3, 6, 12, 12, 7}: {{"ICC_IGRPEN1_EL3", "Interrupt Controller Interrupt Group 1 Enable register (EL3)"}},
	{3, 0, 4, 6, 0}:   {{"ICC_PMR_EL1", "Interrupt Controller Interrupt Priority Mask Register"}},
	{3, 0, 12, 11, 3}: {{"ICC_RPR_EL1", "Interrupt Controller Running Priority Register"}}, // Not defined in 8.2 specifications.
	{3, 0, 12, 11, 0}: {{"ICC_SEIEN_EL1", "Interrupt Controller System Error Interrupt Enable Register"}},
	{3, 0, 12, 11, 7}: {{"ICC_SGI0R_EL1", "Interrupt Controller Software Generated Interrupt Group 0 Register"}},
	{3, 0, 12, 11, 5}: {{"ICC_SGI1R_EL1", "Interrupt Controller Software Generated Interrupt Group 1 Register"}},
	{3, 0, 12, 12, 5}: {{"ICC_SRE_EL1", "Interrupt Controller System Register Enable register (EL1)"}},
	{3, 4, 12, 9, 5}:  {{"ICC_SRE_EL2", "Interrupt Controller System Register Enable register (EL2)"}},
	{3, 6, 12, 12, 5}: {{"ICC_SRE_EL3", "Interrupt Controller System Register Enable register (EL3)"}},
	{3, 4, 12, 8, 0}:  {{"ICH_AP0R0_EL2", "Interrupt Controller Hyp Active Priorities Group 0 Register 0"}},
	{3, 4, 12, 8, 1}:  {{"ICH_AP0R1_EL2", "Interrupt Controller Hyp Active Priorities Group 0 Register 1"}},
	{3, 4, 12, 8, 2}:  {{"ICH_AP0R2_EL2", "Interrupt Controller Hyp Active Priorities Group 0 Register 2"}},
	{3, 4, 12, 8, 3}:  {{"ICH_AP0R3_EL2", "Interrupt Controller Hyp Active Priorities Group 0 Register 3"}},
	{3, 4, 12, 9, 0}:  {{"ICH_AP1R0_EL2", "Interrupt Controller Hyp Active Priorities Group 1 Register 0"}},
	{3, 4, 12, 9, 1}:  {{"ICH_AP1R1_EL2", "Interrupt Controller Hyp Active Priorities Group 1 Register 1"}},
	{3, 4, 12, 9, 2}:  {{"ICH_AP1R2_EL2", "Interrupt Controller Hyp Active Priorities Group 1 Register 2"}},
	{3, 4, 12, 9, 3}:  {{"ICH_AP1R3_EL2", "Interrupt Controller Hyp Active Priorities Group 1 Register 3"}},
	{3, 4, 12, 11, 3}: {{"ICH_EISR_EL2", "Interrupt Controller End of Interrupt Status Register"}},
	{3, 4, 12, 11, 5}: {{"ICH_ELSR_EL2", "Interrupt Controller Empty List Register Status Register"}}, // Named ICH_ELRSR_EL2 in 8.2 specifications.
	{3, 4, 12, 11, 0}: {{"ICH_HCR_EL2", "Interrupt Controller Hyp Control Register"}},
	{3, 4, 12, 12, 0}: {{"ICH_LR0_EL2", "Interrupt Controller List Register 0"}},
	{3, 4, 12, 12, 1}: {{"ICH_LR1_EL2", "Interrupt Controller List Register 1"}},
	{3, 4, 12, 12, 2}: {{"ICH_LR2_EL2", "Interrupt Controller List Register 2"}},
	{3, 4, 12, 12, 3}: {{"ICH_LR3_EL2", "Interrupt Controller List Register 3"}},
	{3, 4, 12, 12, 4}: {{"ICH_LR4_EL2", "Interrupt Controller List Register 4"}},
	{3, 4, 12, 12, 5}: {{"ICH_LR5_EL2", "Interrupt Controller List Register 5"}},
	{3, 4, 12, 12, 6}: {{"ICH_LR6_EL2", "Interrupt Controller List Register 6"}},
	{3, 4, 12, 12, 7}: {{"ICH_LR7_EL2", "Interrupt Controller List Register 7"}},
	{3, 4, 12, 13, 0}: {{"ICH_LR8_EL2", "Interrupt Controller List Register 8"}},
	{3, 4, 12, 13, 1}: {{"ICH_LR9_EL2", "Interrupt Controller List Register 9"}},
	{3, 4, 12, 13, 2}: {{"ICH_LR10_EL2", "Interrupt Controller List Register 10"}},
	{3, 4, 12, 13, 3}: {{"ICH_LR11_EL2", "Interrupt Controller List Register 11"}},
	{3, 4, 12, 13, 4}: {{"ICH_LR12_EL2", "Interrupt Controller List Register 12"}},
	{3, 4, 12, 13, 5}: {{"ICH_LR13_EL2", "Interrupt Controller List Register 13"}},
	{3, 4, 12, 13, 6}: {{"ICH_LR14_EL2", "Interrupt Controller List Register 14"}},
	{3, 4, 12, 13, 7}: {{"ICH_LR15_EL2", "Interrupt Controller List Register 15"}},
	{3, 4, 12, 11, 2}: {{"ICH_MISR_EL2", "Interrupt Controller Maintenance Interrupt State Register"}},
	{3, 4, 12, 11, 7}: {{"ICH_VMCR_EL2", "Interrupt Controller Virtual Machine Control Register"}},
	{3, 4, 12, 9, 4}:  {{"ICH_VSEIR_EL2", "Interrupt Controller Virtual System Error Interrupt Register"}}, // Not defined in 8.2 specifications.
	{3, 4, 12, 11, 1}: {{"ICH_VTR_EL2", "Interrupt Controller VGIC Type Register"}},
}
