// Register encoding tables extracted from the ARMv8.3 00bet4 XML
// specifications and older ARM reference manuals.

package sysreg

// coprocFields maps AArch32 register names to their bit assignments.
var coprocFields = map[string]map[int]Desc{
	"FPSCR": {
		0:  {"IOC", "Invalid Operation exception"},
		1:  {"DZC", "Division by Zero exception"},
		2:  {"OFC", "Overflow exception"},
		3:  {"UFC", "Underflow exception"},
		4:  {"IXC", "Inexact exception"},
		7:  {"IDC", "Input Denormal exception"},
		19: {"FZ16", "Flush-to-zero mode on half-precision instructions"},
		24: {"FZ", "Flush-to-zero mode"},
		25: {"DN", "Default NaN mode"},
		26: {"AHP", "Alternative Half-Precision"},
		27: {"QC", "Saturation"},
		28: {"V", "Overflow flag"},
		29: {"C", "Carry flag"},
		30: {"Z", "Zero flag"},
		31: {"N", "Negative flag"},
	},
	"HCR": {
		0:  {"VM", "Virtualization MMU enable"},
		1:  {"SWIO", "Set/Way Invalidation Override"},
		2:  {"PTW", "Protected Table Walk"},
		3:  {"FMO", "FIQ Mask Override"},
		4:  {"IMO", "IRQ Mask Override"},
		5:  {"AMO", "Asynchronous Abort Mask Override"},
		6:  {"VE", "Virtual FIQ exception"},
		7:  {"VI", "Virtual IRQ exception"},
		8:  {"VA", "Virtual Asynchronous Abort exception"},
		9:  {"FB", "Force Broadcast"},
		10: {"BSU_0", "Barrier Shareability Upgrade"},
		11: {"BSU_1", "Barrier Shareability Upgrade"},
		12: {"DC", "Default cacheable"},
		13: {"TWI", "Trap WFI"},
		14: {"TWE", "Trap WFE"},
		15: {"TID0", "Trap ID Group 0"},
		16: {"TID1", "Trap ID Group 1"},
		17: {"TID2", "Trap ID Group 2"},
		18: {"TID3", "Trap ID Group 3"},
		19: {"TSC", "Trap SMC instruction"},
		20: {"TIDCP", "Trap Implementation Dependent functionality"},
		21: {"TAC", "Trap ACTLR accesses"},
		22: {"TSW", "Trap Data/Unified Cache maintenance operations by Set/Way"},
		23: {"TPC", "Trap Data/Unified Cache maintenance operations to Point of Coherency"},
		24: {"TPU", "Trap Cache maintenance instructions to Point of Unification"},
		25: {"TTLB", "Trap TLB maintenance instructions"},
		26: {"TVM", "Trap Virtual Memory controls"},
		27: {"TGE", "Trap General Exceptions"},
		29: {"HCD", "Hypervisor Call Disable"},
		30: {"TRVM", "Trap Read of Virtual Memory controls"},
	},
	"HCR2": {
		0: {"CD", "Stage 2 Data cache disable"},
		1: {"ID", "Stage 2 Instruction cache disable"},
		4: {"TERR", "Trap Error record accesses"},
		5: {"TEA", "Route synchronous External Abort exceptions to EL2"},
		6: {"MIOCNCE", "Mismatched Inner/Outer Cacheable Non-Coherency Enable"},
	},
	"SCR": {
		0:  {"NS", "Non-secure"},
		1:  {"IRQ", "IRQ handler"},
		2:  {"FIQ", "FIQ handler"},
		3:  {"EA", "External Abort handler"},
		4:  {"FW", "Can mask Non-secure FIQ"},
		5:  {"AW", "Can mask Non-secure external aborts"},
		6:  {"nET", "Not Early Termination"},
		7:  {"SCD", "Secure Monitor Call disable"},
		8:  {"HCE", "Hypervisor Call instruction enable"},
		9:  {"SIF", "Secure instruction fetch"},
		12: {"TWI", "Traps WFI instructions to Monitor mode"},
		13: {"TWE", "Traps WFE instructions to Monitor mode"},
		15: {"TERR", "Trap Error record accesses"},
	},
	"SCTLR": {
		0:  {"M", "MMU Enable"},
		1:  {"A", "Alignment"},
		2:  {"C", "Cache Enable"},
		3:  {"nTLSMD", "No Trap Load Multiple and Store Multiple to Device-nGRE/Device-nGnRE/Device-nGnRnE memory"},
		4:  {"LSMAOE", "Load Multiple and Store Multiple Atomicity and Ordering Enable"},
		5:  {"CP15BEN", "System instruction memory barrier enable"},
		7:  {"ITD", "IT Disable"},
		8:  {"SETEND", "SETEND instruction disable"},
		10: {"SW", "SWP/SWPB Enable"},
		11: {"Z", "Branch Prediction Enable"},
		12: {"I", "Instruction cache Enable"},
		13: {"V", "High exception vectors"},
		14: {"RR", "Round-robin cache"},
		16: {"nTWI", "Traps EL0 execution of WFI instructions to Undefined mode"},
		17: {"HA", "Hardware Access Enable"},
		18: {"nTWE", "Traps EL0 execution of WFE instructions to Undefined mode"},
		19: {"WXN", "Write permission implies XN"},
		20: {"UWXN", "Unprivileged write permission implies PL1 XN"},
		21: {"FI", "Fast Interrupts configuration"},
		23: {"SPAN", "Set Privileged Access Never"},
		24: {"VE", "Interrupt Vectors Enable"},
		25: {"EE", "Exception Endianness"},
		27: {"NMFI", "Non-maskable Fast Interrupts"},
		28: {"TRE", "TEX Remap Enable"},
		29: {"AFE", "Access Flag Enable"},
		30: {"TE", "Thumb Exception Enable"},
	},
	"HSCTLR": {
		0:  {"M", "MMU Enable"},
		1:  {"A", "Alignment"},
		2:  {"C", "Cache Enable"},
		3:  {"SA", "Stack alignment check"},
		12: {"I", "Instruction cache Enable"},
		19: {"WXN", "Write permission implies XN"},
		25: {"EE", "Exception Endianness"},
		30: {"TE", "Thumb Exception Enable"},
	},
	"NSACR": {
		10: {"CP10", "CP10 access in the NS state"},
		11: {"CP11", "CP11 access in the NS state"},
		14: {"NSD32DIS", "Disable the NS use of D16-D31 of the VFP register file"},
		15: {"NSASEDIS", "Disable NS Advanced SIMD Extension functionality"},
		16: {"PLE", "NS access to the Preload Engine resources"},
		17: {"TL", "Lockable TLB entries can be allocated in NS state"},
		18: {"NS_SMP", "SMP bit of the Auxiliary Control Register is writable in NS state"},
	},
}

// sysregFields maps AArch64 register names to their bit assignments.
var sysregFields = map[string]map[int]Desc{
	"DAIF": {
		6: {"F", "FIQ mask"},
		7: {"I", "IRQ mask"},
		8: {"A", "SError interrupt mask"},
		9: {"D", "Process state D mask"},
	},
	"FPCR": {
		8:  {"IOE", "Invalid Operation exception trap enable"},
		9:  {"DZE", "Division by Zero exception trap enable"},
		10: {"OFE", "Overflow exception trap enable"},
		11: {"UFE", "Underflow exception trap enable"},
		12: {"IXE", "Inexact exception trap enable"},
		15: {"IDE", "Input Denormal exception trap enable"},
		19: {"FZ16", "Flush-to-zero mode on half-precision instructions"},
		24: {"FZ", "Flush-to-zero-mode"},
		25: {"DN", "Default NaN mode"},
		26: {"AHP", "Alternative Half-Precision"},
	},
	"FPSR": {
		0:  {"IOC", "Invalid Operation exception"},
		1:  {"DZC", "Division by Zero exception"},
		2:  {"OFC", "Overflow exception"},
		3:  {"UFC", "Underflow exception"},
		4:  {"IXC", "Inexact exception"},
		7:  {"IDC", "Input Denormal exception"},
		27: {"QC", "Saturation"},
		28: {"V", "Overflow flag"},
		29: {"C", "Carry flag"},
		30: {"Z", "Zero flag"},
		31: {"N", "Negative flag"},
	},
	"HCR_EL2": {
		0:  {"VM", "Virtualization MMU enable"},
		1:  {"SWIO", "Set/Way Invalidation Override"},
		2:  {"PTW", "Protected Table Walk"},
		3:  {"FMO", "FIQ Mask Override"},
		4:  {"IMO", "IRQ Mask Override"},
		5:  {"AMO", "Asynchronous Abort Mask Override"},
		6:  {"VE", "Virtual FIQ exception"},
		7:  {"VI", "Virtual IRQ exception"},
		8:  {"VA", "Virtual Asynchronous Abort exception"},
		9:  {"FB", "Force Broadcast"},
		10: {"BSU_0", "Barrier Shareability Upgrade"},
		11: {"BSU_1", "Barrier Shareability Upgrade"},
		12: {"DC", "Default cacheable"},
		13: {"TWI", "Trap WFI"},
		14: {"TWE", "Trap WFE"},
		15: {"TID0", "Trap ID Group 0"},
		16: {"TID1", "Trap ID Group 1"},
		17: {"TID2", "Trap ID Group 2"},
		18: {"TID3", "Trap ID Group 3"},
		19: {"TSC", "Trap SMC instruction"},
		20: {"TIDCP", "Trap Implementation Dependent functionality"},
		21: {"TAC", "Trap ACTLR accesses"},
		22: {"TSW", "Trap Data/Unified Cache maintenance operations by Set/Way"},
		23: {"TPC", "Trap Data/Unified Cache maintenance operations to Point of Coherency"},
		24: {"TPU", "Trap Cache maintenance instructions to Point of Unification"},
		25: {"TTLB", "Trap TLB maintenance instructions"},
		26: {"TVM", "Trap Virtual Memory controls"},
		27: {"TGE", "Trap General Exceptions"},
		29: {"HCD", "Hypervisor Call Disable"},
		30: {"TRVM", "Trap Read of Virtual Memory controls"},
		31: {"RW", "Lower level is AArch64"},
		32: {"CD", "Stage 2 Data cache disable"},
		33: {"ID", "Stage 2 Instruction cache disable"},
		34: {"E2H", "EL2 Host"},
		35: {"TLOR", "Trap LOR registers"},
		36: {"TERR", "Trap Error record accesses"},
		37: {"TEA", "Route synchronous External Abort exceptions to EL2"},
		38: {"MIOCNCE", "Mismatched Inner/Outer Cacheable Non-Coherency Enable"},
	},
	"SCR_EL3": {
		0:  {"NS", "Non-secure"},
		1:  {"IRQ", "IRQ handler"},
		2:  {"FIQ", "FIQ handler"},
		3:  {"EA", "External Abort handler"},
		7:  {"SMD", "Secure Monitor Call disable"},
		8:  {"HCE", "Hypervisor Call instruction enable"},
		9:  {"SIF", "Secure instruction fetch"},
		10: {"RW", "Lower level is AArch64"},
		11: {"ST", "Traps Secure EL1 accesses to the Counter-timer Physical Secure timer registers to EL3, from AArch64 state only."},
		12: {"TWI", "Traps WFI instructions to Monitor mode"},
		13: {"TWE", "Traps WFE instructions to Monitor mode"},
		14: {"TLOR", "Traps LOR registers"},
		15: {"TERR", "Trap Error record accesses"},
	},
	"SCTLR_EL1": {
		0:  {"M", "MMU Enable"},
		1:  {"A", "Alignment"},
		2:  {"C", "Cache Enable"},
		3:  {"SA", "Stack alignment check"},
		4:  {"SA0", "Stack alignment check for EL0"},
		5:  {"CP15BEN", "System instruction memory barrier enable"},
		6:  {"THEE", "T32EE enable"},
		7:  {"ITD", "IT Disable"},
		8:  {"SED", "SETEND instruction disable"},
		9:  {"UMA", "User Mask Access"},
		12: {"I", "Instruction cache Enable"},
		14: {"DZE", "Access to DC ZVA instruction at EL0"},
		15: {"UCT", "Access to CTR_EL0 to EL0"},
		16: {"nTWI", "Traps EL0 execution of WFI instructions to Undefined mode"},
		18: {"nTWE", "Traps EL0 execution of WFE instructions to Undefined mode"},
		19: {"WXN", "Write permission implies XN"},
		24: {"E0E", "Endianess of explicit data accesses at EL0"},
		25: {"EE", "Exception Endianness"},
		26: {"UCI", "Enable EL0 access to DC CVAU, DC CIVAC, DC CVAC and DC IVAU instructions"},
	},
	"SCTLR_EL2": {
		0:  {"M", "MMU Enable"},
		1:  {"A", "Alignment"},
		2:  {"C", "Cache Enable"},
		3:  {"SA", "Stack alignment check"},
		12: {"I", "Instruction cache Enable"},
		19: {"WXN", "Write permission implies XN"},
		25: {"EE", "Exception Endianness"},
	},
	"SCTLR_EL3": {
		0:  {"M", "MMU Enable"},
		1:  {"A", "Alignment"},
		2:  {"C", "Cache Enable"},
		3:  {"SA", "Stack alignment check"},
		12: {"I", "Instruction cache Enable"},
		19: {"WXN", "Write permission implies XN"},
		25: {"EE", "Exception Endianness"},
	},
}
