// Register encoding tables extracted from the ARMv8.3 00bet4 XML
// specifications and older ARM reference manuals.

package sysreg

// coprocRegisters64 maps AArch32 MCRR/MRRC operand encodings to the 64-bit
// registers accessible from AArch32.
var coprocRegisters64 = map[Coproc64Key][]Desc{
	// MMU registers
	{15, 0, 2}: {{"TTBR0", "Translation Table Base Register 0"}},
	{15, 1, 2}: {{"TTBR1", "Translation Table Base Register 1"}},
	{15, 6, 2}: {{"VTTBR", "Virtualization Translation Table Base Register"}},
	{15, 4, 2}: {{"HTTBR", "Hyp Translation Table Base Register"}},
	{15, 0, 7}: {{"PAR", "Physical Address Register"}},

	// Counters
	{15, 0, 9}:  {{"PMCCNTR", "Performance Monitors Cycle Count Register"}},
	{15, 0, 14}: {{"CNTPCT", "Counter-timer Physical Count register"}},
	{15, 1, 14}: {{"CNTVCT", "Counter-timer Virtual Count register"}},
	{15, 2, 14}: {{"CNTP_CVAL", "Counter-timer Physical Timer CompareValue register"}, {"CNTHP_CVAL", "Counter-timer Hyp Physical CompareValue register"}},
	{15, 3, 14}: {{"CNTV_CVAL", "Counter-timer Virtual Timer CompareValue register"}, {"CNTHV_CVAL", "Counter-timer Virtual Timer CompareValue register (EL2)"}},
	{15, 4, 14}: {{"CNTVOFF", "Counter-timer Virtual Offset register"}},
	{15, 6, 14}: {{"CNTHP_CVAL", "Counter-timer Hyp Physical CompareValue register"}},

	// CPU control/status registers.
	{15, 0, 15}: {{"CPUACTLR", "CPU Auxiliary Control Register"}},
	{15, 1, 15}: {{"CPUECTLR", "CPU Extended Control Register"}},
	{15, 2, 15}: {{"CPUMERRSR", "CPU Memory Error Syndrome Register"}},
	{15, 3, 15}: {{"L2MERRSR", "L2 Memory Error Syndrome Register"}},

	// Interrupts
	{15, 0, 12}: {{"ICC_SGI1R", "Interrupt Controller Software Generated Interrupt Group 1 Register"}},
	{15, 1, 12}: {{"ICC_ASGI1R", "Interrupt Controller Alias Software Generated Interrupt Group 1 Register"}},
	{15, 2, 12}: {{"ICC_SGI0R", "Interrupt Controller Software Generated Interrupt Group 0 Register"}},

	// Preload Engine operations
	{15, 0, 11}: {{"N/A", "Preload Engine Program New Channel operation"}},

	// Debug registers
	{14, 0, 1}: {{"DBGDRAR", "Debug ROM Address Register"}},
	{14, 0, 2}: {{"DBGDSAR", "Debug Self Address Register"}},
}
