package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"sysmark/internal/annotate"
	"sysmark/internal/diag"
	"sysmark/internal/disasm"
)

func cmdScan(args []string) error {
	fs := flag.NewFlagSet("scan", flag.ExitOnError)
	bin := fs.String("bin", "", "path to binary")
	archFlag := fs.String("arch", "auto", "auto|arm64|arm|thumb")
	baseFlag := fs.String("base", "", "load address for raw images")
	thumb := fs.Bool("thumb", false, "treat ARM code as Thumb")
	strict := fs.Bool("strict", false, "fail on undecodable words")
	maxSteps := fs.Int("max-steps", 0, "global loop cap")
	all := fs.Bool("all", false, "list every instruction, not just annotated ones")

	if err := fs.Parse(args); err != nil {
		return err
	}

	t, err := loadTarget(*bin, *archFlag, *thumb, *baseFlag)
	if err != nil {
		return err
	}

	opts := diag.Options{Mode: diag.ModeBestEffort, MaxSteps: *maxSteps}
	if *strict {
		opts.Mode = diag.ModeStrict
	}

	res, err := runPasses(t, opts)
	if err != nil {
		return err
	}

	for i, insts := range res.insts {
		p := res.passes[i]
		fmt.Printf("; region %s\n", t.regions[i].Name)
		if *all {
			fmt.Print(disasm.Format(insts, t.table.Lookup, p.Annotator()))
			continue
		}
		// Only the instructions that picked up a comment.
		var marked []disasm.Inst
		for _, inst := range insts {
			if _, ok := p.At(inst.Addr); ok {
				marked = append(marked, inst)
			}
		}
		fmt.Print(disasm.Format(marked, t.table.Lookup, p.Annotator()))
	}

	printCounts(res)
	for _, d := range res.diags {
		fmt.Fprintf(os.Stderr, "%s\n", d)
	}
	return nil
}

func printCounts(res *scanResult) {
	fmt.Fprintf(os.Stderr, "%d instructions, %d annotated\n", res.insns, len(res.anns))
	kinds := make([]annotate.Kind, 0, len(res.counts))
	for k := range res.counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		fmt.Fprintf(os.Stderr, "  %-18s %d\n", k, res.counts[k])
	}
}
