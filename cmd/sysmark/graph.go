package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"sysmark/internal/diag"
	"sysmark/internal/report"
)

func cmdGraph(args []string) error {
	fs := flag.NewFlagSet("graph", flag.ExitOnError)
	bin := fs.String("bin", "", "path to binary")
	out := fs.String("out", "", "output DOT file")
	archFlag := fs.String("arch", "auto", "auto|arm64|arm|thumb")
	baseFlag := fs.String("base", "", "load address for raw images")
	thumb := fs.Bool("thumb", false, "treat ARM code as Thumb")
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

	res, err := runPasses(t, diag.Options{MaxSteps: *maxSteps})
	if err != nil {
		return err
	}

	g := report.BuildAccessGraph(t.table, res.anns)
	title := filepath.Base(t.path)
	if err := os.WriteFile(*out, []byte(report.DOT(g, title)), 0644); err != nil {
		return fmt.Errorf("write %s: %w", *out, err)
	}

	fmt.Fprintf(os.Stderr, "graph: %d node(s), %d edge(s) to %s\n",
		len(g.Nodes), len(g.Edges), *out)
	return nil
}
