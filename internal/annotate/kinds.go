package annotate

import "strings"

// Mnemonic classification for the system instructions that carry no
// register operand worth resolving. Register transfers are classified from
// their raw encodings before this table is consulted.
var mnemonicKinds = map[string]Kind{
	"DSB":   KindBarrier,
	"DMB":   KindBarrier,
	"ISB":   KindBarrier,
	"CLREX": KindBarrier,

	"YIELD": KindHint,
	"WFE":   KindHint,
	"WFI":   KindHint,
	"SEV":   KindHint,
	"SEVL":  KindHint,
	"HINT":  KindHint,
	"DBG":   KindHint,

	"BKPT":  KindException,
	"BRK":   KindException,
	"SVC":   KindException,
	"SWI":   KindException,
	"SMC":   KindException,
	"SMI":   KindException,
	"HVC":   KindException,
	"DCPS1": KindException,
	"DCPS2": KindException,
	"DCPS3": KindException,

	"ERET": KindExceptReturn,
	"RFE":  KindExceptReturn,
	"DRPS": KindExceptReturn,
	"SRS":  KindExceptReturn,

	"CPS":   KindPSRWrite,
	"CPSIE": KindPSRWrite,
	"CPSID": KindPSRWrite,

	"LDC":  KindCoprocOther,
	"LDC2": KindCoprocOther,
	"STC":  KindCoprocOther,
	"STC2": KindCoprocOther,
	"CDP":  KindCoprocOther,
	"CDP2": KindCoprocOther,

	"VMRS": KindMisc,
	"VMSR": KindMisc,
	"BXJ":  KindMisc,
}

var condCodes = map[string]bool{
	"EQ": true, "NE": true, "CS": true, "CC": true, "MI": true, "PL": true,
	"VS": true, "VC": true, "HI": true, "LS": true, "GE": true, "LT": true,
	"GT": true, "LE": true, "AL": true, "HS": true, "LO": true,
}

// mnemonicKind classifies a mnemonic, tolerating GNU lowercase, .W width
// suffixes and ARM condition suffixes.
func mnemonicKind(mnemonic string) (Kind, bool) {
	m := strings.ToUpper(mnemonic)
	m = strings.TrimSuffix(m, ".W")
	if k, ok := mnemonicKinds[m]; ok {
		return k, true
	}
	if strings.HasPrefix(m, "PAC") || strings.HasPrefix(m, "AUT") || strings.HasPrefix(m, "XPAC") {
		return KindPAuth, true
	}
	if len(m) > 2 && condCodes[m[len(m)-2:]] {
		if k, ok := mnemonicKinds[m[:len(m)-2]]; ok {
			return k, true
		}
	}
	return "", false
}

// isExceptionReturn32 spots the AArch32 returns that hide behind ordinary
// mnemonics: LDM with user-mode banking (^) and SUBS/MOVS PC, LR.
func isExceptionReturn32(mnemonic, operands string) bool {
	m := strings.ToUpper(mnemonic)
	ops := strings.ToUpper(strings.TrimSpace(operands))
	if strings.HasPrefix(m, "LDM") && strings.HasSuffix(ops, "^") {
		return true
	}
	if (strings.HasPrefix(m, "SUBS") || strings.HasPrefix(m, "MOVS")) &&
		strings.HasPrefix(ops, "PC, LR") {
		return true
	}
	return false
}
