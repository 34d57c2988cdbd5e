package main

import (
	"fmt"
	"strings"

	"sysmark/internal/sysreg"
)

func cmdLookup(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: sysmark lookup <name-or-encoding>")
	}
	q := args[0]

	var matches []sysreg.Match
	switch {
	case strings.HasPrefix(strings.ToLower(q), "s") && strings.Contains(q, "_"):
		key, err := sysreg.ParseKey(q)
		if err != nil {
			return err
		}
		if descs, ok := sysreg.Lookup(key); ok {
			matches = append(matches, sysreg.Match{Arch: "arm64", Enc: key.String(), Descs: descs})
		}
	case strings.HasPrefix(strings.ToLower(q), "p") && strings.Contains(q, ","):
		key, err := sysreg.ParseCoprocKey(q)
		if err != nil {
			return err
		}
		if descs, ok := sysreg.LookupCoproc(key); ok {
			matches = append(matches, sysreg.Match{Arch: "arm", Enc: key.String(), Descs: descs})
		}
	default:
		matches = sysreg.FindByName(q)
	}

	if len(matches) == 0 {
		return fmt.Errorf("no match for %q", q)
	}
	for _, m := range matches {
		for _, d := range m.Descs {
			fmt.Printf("%-12s %-24s %-20s %s\n", m.Arch, m.Enc, d.Name, d.Doc)
		}
	}
	return nil
}
