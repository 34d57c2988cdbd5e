package sysreg

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		key      Key
		wantName string
		wantOK   bool
	}{
		{"SCTLR_EL1", Key{3, 0, 1, 0, 0}, "SCTLR_EL1", true},
		{"MIDR_EL1", Key{3, 0, 0, 0, 0}, "MIDR_EL1", true},
		{"CSSELR_EL1", Key{3, 2, 0, 0, 0}, "CSSELR_EL1", true},
		{"unknown", Key{3, 7, 15, 15, 7}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			descs, ok := Lookup(tt.key)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if descs[0].Name != tt.wantName {
				t.Errorf("name = %q, want %q", descs[0].Name, tt.wantName)
			}
		})
	}
}

func TestLookupCoproc(t *testing.T) {
	// MRC p15, 0, r0, c1, c0, 0 reads SCTLR.
	descs, ok := LookupCoproc(CoprocKey{CP: 15, CRn: 1, Opc1: 0, CRm: 0, Opc2: 0})
	if !ok {
		t.Fatal("SCTLR encoding not found")
	}
	if descs[0].Name != "SCTLR" {
		t.Errorf("name = %q, want SCTLR", descs[0].Name)
	}
	if _, ok := LookupCoproc(CoprocKey{CP: 15, CRn: 15, Opc1: 7, CRm: 15, Opc2: 7}); ok {
		t.Error("bogus encoding resolved")
	}
}

func TestLookupCoproc64Alias(t *testing.T) {
	// MRRC p15, 2, r0, r1, c14 reads CNTP_CVAL, banked as CNTHP_CVAL.
	descs, ok := LookupCoproc64(Coproc64Key{CP: 15, Opc1: 2, CRm: 14})
	if !ok {
		t.Fatal("CNTP_CVAL encoding not found")
	}
	if len(descs) != 2 {
		t.Fatalf("len(descs) = %d, want 2", len(descs))
	}
	if descs[0].Name != "CNTP_CVAL" || descs[1].Name != "CNTHP_CVAL" {
		t.Errorf("aliases = %q, %q", descs[0].Name, descs[1].Name)
	}
}

func TestLookupSysOp(t *testing.T) {
	descs, ok := LookupSysOp(SysOpKey{Op1: 3, CRn: 7, CRm: 14, Op2: 1})
	if !ok {
		t.Fatal("DC CIVAC encoding not found")
	}
	if descs[0].Name != "DC CIVAC" {
		t.Errorf("name = %q, want DC CIVAC", descs[0].Name)
	}
}

func TestKeyString(t *testing.T) {
	if got := (Key{3, 0, 1, 0, 0}).String(); got != "S3_0_C1_C0_0" {
		t.Errorf("String() = %q", got)
	}
	if got := (CoprocKey{CP: 15, CRn: 2, Opc1: 0, CRm: 0, Opc2: 1}).String(); got != "p15, 0, c2, c0, 1" {
		t.Errorf("String() = %q", got)
	}
	if got := (SysOpKey{3, 7, 14, 1}).String(); got != "#3, c7, c14, #1" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey("s3_0_c1_c0_0")
	if err != nil {
		t.Fatal(err)
	}
	if k != (Key{3, 0, 1, 0, 0}) {
		t.Errorf("key = %+v", k)
	}
	if _, err := ParseKey("s3_0_c1_c0"); err == nil {
		t.Error("short encoding accepted")
	}
	if _, err := ParseKey("x3_0_c1_c0_0"); err == nil {
		t.Error("bad prefix accepted")
	}
}

func TestParseCoprocKey(t *testing.T) {
	k, err := ParseCoprocKey("p15, 0, c2, c0, 1")
	if err != nil {
		t.Fatal(err)
	}
	if k != (CoprocKey{CP: 15, CRn: 2, Opc1: 0, CRm: 0, Opc2: 1}) {
		t.Errorf("key = %+v", k)
	}
	if _, err := ParseCoprocKey("15,0,c2,c0,1"); err == nil {
		t.Error("missing coproc prefix accepted")
	}
}

func TestFindByName(t *testing.T) {
	matches := FindByName("sctlr_el1")
	if len(matches) == 0 {
		t.Fatal("no match for SCTLR_EL1")
	}
	found := false
	for _, m := range matches {
		if m.Arch == "arm64" && m.Enc == "S3_0_C1_C0_0" {
			found = true
		}
	}
	if !found {
		t.Errorf("matches = %+v", matches)
	}
	if got := FindByName("NOT_A_REGISTER"); len(got) != 0 {
		t.Errorf("unexpected matches: %+v", got)
	}
}

func TestFields(t *testing.T) {
	f, ok := Fields("SCTLR_EL1")
	if !ok {
		t.Fatal("no field table for SCTLR_EL1")
	}
	if f[0].Name != "M" {
		t.Errorf("bit 0 = %+v, want M", f[0])
	}
	cf, ok := CoprocFields("SCTLR")
	if !ok {
		t.Fatal("no field table for SCTLR")
	}
	if cf[0].Name != "M" {
		t.Errorf("bit 0 = %+v, want M", cf[0])
	}
	if _, ok := Fields("MIDR_EL1"); ok {
		t.Error("MIDR_EL1 should have no field table")
	}
}

func TestTableIntegrity(t *testing.T) {
	for k, descs := range systemRegisters {
		checkDescs(t, k.String(), descs)
	}
	for k, descs := range coprocRegisters {
		checkDescs(t, k.String(), descs)
	}
	for k, descs := range coprocRegisters64 {
		checkDescs(t, k.String(), descs)
	}
	for k, descs := range sysOps {
		checkDescs(t, k.String(), descs)
	}
}

func checkDescs(t *testing.T, key string, descs []Desc) {
	t.Helper()
	if len(descs) == 0 || len(descs) > 2 {
		t.Errorf("%s: %d descriptions", key, len(descs))
	}
	for _, d := range descs {
		if d.Name == "" || d.Doc == "" {
			t.Errorf("%s: incomplete entry %+v", key, d)
		}
	}
}

func TestModeAndPStateOp(t *testing.T) {
	if got := Mode(0b10011); got != "Supervisor" {
		t.Errorf("Mode(0b10011) = %q", got)
	}
	if got := Mode(0b00000); got != "Unknown" {
		t.Errorf("Mode(0) = %q", got)
	}
	if got := PStateOp(0b110); got != "DAIFSet" {
		t.Errorf("PStateOp(0b110) = %q", got)
	}
	if got := PStateOp(0b000); got != "Unknown" {
		t.Errorf("PStateOp(0) = %q", got)
	}
}
