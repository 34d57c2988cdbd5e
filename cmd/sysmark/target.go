package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"sysmark/internal/annotate"
	"sysmark/internal/diag"
	"sysmark/internal/disasm"
	"sysmark/internal/elfx"
)

// target is a loaded binary ready for scanning.
type target struct {
	path    string
	arch    disasm.Arch
	regions []elfx.ExecRegion
	table   *elfx.SymbolTable
}

// loadTarget opens an ELF binary, or falls back to a raw image when the
// file has no ELF header and an explicit arch was given.
func loadTarget(path, archFlag string, thumb bool, baseFlag string) (*target, error) {
	if path == "" {
		return nil, fmt.Errorf("--bin is required")
	}

	ef, err := elfx.Open(path)
	if errors.Is(err, elfx.ErrNotELF) {
		return loadRaw(path, archFlag, baseFlag)
	}
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer ef.Close()

	arch := disasm.ARM64
	if ef.Machine == elfx.MachineARM {
		arch = disasm.ARM
		if thumb {
			arch = disasm.Thumb
		}
	}
	if archFlag != "" && archFlag != "auto" {
		if arch, err = parseArch(archFlag); err != nil {
			return nil, err
		}
	}

	regions, err := ef.ExecRegions()
	if err != nil {
		return nil, fmt.Errorf("exec regions: %w", err)
	}
	fmt.Fprintf(os.Stderr, "ELF: %s, %d bytes, %d executable region(s)\n",
		ef.Machine, ef.FileSize(), len(regions))

	return &target{
		path:    path,
		arch:    arch,
		regions: regions,
		table:   elfx.NewSymbolTable(ef.FunctionSymbols()),
	}, nil
}

// loadRaw maps a headerless image at the given base address.
func loadRaw(path, archFlag, baseFlag string) (*target, error) {
	if archFlag == "" || archFlag == "auto" {
		return nil, fmt.Errorf("raw image: --arch is required")
	}
	arch, err := parseArch(archFlag)
	if err != nil {
		return nil, err
	}
	var base uint64
	if baseFlag != "" {
		if base, err = strconv.ParseUint(baseFlag, 0, 64); err != nil {
			return nil, fmt.Errorf("bad --base %q: %v", baseFlag, err)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read raw image: %w", err)
	}
	fmt.Fprintf(os.Stderr, "raw image: %s, %d bytes at 0x%x\n", arch, len(data), base)

	return &target{
		path:    path,
		arch:    arch,
		regions: []elfx.ExecRegion{{Name: "image", Addr: base, Data: data}},
		table:   elfx.NewSymbolTable(nil),
	}, nil
}

func parseArch(s string) (disasm.Arch, error) {
	switch s {
	case "arm64":
		return disasm.ARM64, nil
	case "arm":
		return disasm.ARM, nil
	case "thumb":
		return disasm.Thumb, nil
	}
	return 0, fmt.Errorf("unknown arch %q", s)
}

// scanResult holds the outcome of annotating every region of a target.
type scanResult struct {
	insns  int
	passes []*annotate.Pass
	insts  [][]disasm.Inst
	anns   []annotate.Annotation
	counts map[annotate.Kind]int
	diags  []diag.Diag
}

// runPasses disassembles and annotates each executable region.
func runPasses(t *target, opts diag.Options) (*scanResult, error) {
	res := &scanResult{counts: make(map[annotate.Kind]int)}
	for _, r := range t.regions {
		insts := disasm.Disassemble(r.Data, t.arch, disasm.Options{
			BaseAddr: r.Addr,
			MaxSteps: opts.MaxSteps,
		})
		p := annotate.New(t.arch, opts)
		p.Data = r.Data
		p.Base = r.Addr
		if err := p.Run(insts); err != nil {
			return nil, fmt.Errorf("region %s: %w", r.Name, err)
		}
		res.insns += len(insts)
		res.passes = append(res.passes, p)
		res.insts = append(res.insts, insts)
		res.anns = append(res.anns, p.Annotations()...)
		for k, v := range p.Counts() {
			res.counts[k] += v
		}
		res.diags = append(res.diags, p.Diags.Items()...)
	}
	return res, nil
}
