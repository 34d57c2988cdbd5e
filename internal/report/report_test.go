package report

import (
	"strings"
	"testing"

	"sysmark/internal/annotate"
	"sysmark/internal/elfx"
)

func TestBuildAccessGraph(t *testing.T) {
	table := elfx.NewSymbolTable([]elfx.Symbol{
		{Name: "enable_mmu", Addr: 0x1000, Size: 0x40},
		{Name: "mask_irqs", Addr: 0x1040, Size: 0x20},
	})
	anns := []annotate.Annotation{
		{Addr: 0x1004, Register: "SCTLR_EL1", Access: ">"},
		{Addr: 0x1010, Register: "SCTLR_EL1", Access: "<"},
		{Addr: 0x1044, Register: "PSTATE.DAIF", Access: ">"},
		{Addr: 0x1048, Comment: "Set bits M"}, // tracked, no register
		{Addr: 0x9000, Register: "MIDR_EL1", Access: "<"},
	}

	g := BuildAccessGraph(table, anns)

	wantEdges := map[[2]string]bool{
		{"enable_mmu", "SCTLR_EL1"}:  false,
		{"mask_irqs", "PSTATE.DAIF"}: false,
		{"loc_9000", "MIDR_EL1"}:     false,
	}
	for _, e := range g.Edges {
		key := [2]string{e.Caller, e.Callee}
		if _, ok := wantEdges[key]; !ok {
			t.Errorf("unexpected edge %v", key)
			continue
		}
		if wantEdges[key] {
			t.Errorf("duplicate edge %v survived Dedup", key)
		}
		wantEdges[key] = true
	}
	for key, found := range wantEdges {
		if !found {
			t.Errorf("missing edge %v", key)
		}
	}

	dot := DOT(g, "access")
	if !strings.Contains(dot, "SCTLR_EL1") || !strings.Contains(dot, "enable_mmu") {
		t.Errorf("DOT output missing nodes:\n%s", dot)
	}
}
