package sysreg

// armModes maps the CPSR.M mode field to its name.
var armModes = map[uint8]string{
	0b10000: "User",
	0b10001: "FIQ",
	0b10010: "IRQ",
	0b10011: "Supervisor",
	0b10110: "Monitor",
	0b10111: "Abort",
	0b11011: "Undefined",
	0b11111: "System",
}

// pstateOps maps the op2 field of the MSR (immediate) encoding to the
// PSTATE field it writes.
var pstateOps = map[uint8]string{
	0b101: "SPSel",
	0b110: "DAIFSet",
	0b111: "DAIFClr",
}

// Mode returns the name of a CPSR.M mode value, or "Unknown".
func Mode(m uint8) string {
	if s, ok := armModes[m&0b11111]; ok {
		return s
	}
	return "Unknown"
}

// PStateOp returns the PSTATE field written by an MSR (immediate) op2
// value, or "Unknown".
func PStateOp(op2 uint8) string {
	if s, ok := pstateOps[op2]; ok {
		return s
	}
	return "Unknown"
}
