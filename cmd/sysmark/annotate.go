package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sysmark/internal/diag"
	"sysmark/internal/output"
)

func cmdAnnotate(args []string) error {
	fs := flag.NewFlagSet("annotate", flag.ExitOnError)
	bin := fs.String("bin", "", "path to binary")
	out := fs.String("out", "", "output directory")
	archFlag := fs.String("arch", "auto", "auto|arm64|arm|thumb")
	baseFlag := fs.String("base", "", "load address for raw images")
	thumb := fs.Bool("thumb", false, "treat ARM code as Thumb")
	strict := fs.Bool("strict", false, "fail on undecodable words")
	maxSteps := fs.Int("max-steps", 0, "global loop cap")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return fmt.Errorf("--out is required")
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

	if err := os.MkdirAll(*out, 0755); err != nil {
		return fmt.Errorf("mkdir %s: %w", *out, err)
	}

	for i, insts := range res.insts {
		name := strings.TrimPrefix(t.regions[i].Name, ".")
		err := output.WriteListing(*out, name, insts, t.table.Lookup, res.passes[i].Annotator())
		if err != nil {
			return err
		}
	}
	if err := output.WriteAnnotationsJSONL(*out, res.anns); err != nil {
		return err
	}

	s := output.BuildSummary(filepath.Base(t.path), t.arch.String(), res.insns,
		res.counts, res.anns, res.diags)
	if err := output.WriteSummaryJSON(*out, s); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "wrote %d annotation(s) to %s\n", len(res.anns), *out)
	return nil
}
