// Package output writes sysmark analysis results to files.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"sysmark/internal/annotate"
	"sysmark/internal/diag"
	"sysmark/internal/disasm"
)

// WriteListing writes an annotated listing to asm/<name>.txt.
func WriteListing(dir, name string, insts []disasm.Inst, lookup disasm.SymbolLookup, annotators ...disasm.Annotator) error {
	path := filepath.Join(dir, "asm", name+".txt")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("output: mkdir asm: %w", err)
	}
	text := disasm.Format(insts, lookup, annotators...)
	return os.WriteFile(path, []byte(text), 0644)
}

// WriteAnnotationsJSONL writes one JSON record per annotation to
// annotations.jsonl.
func WriteAnnotationsJSONL(dir string, anns []annotate.Annotation) error {
	path := filepath.Join(dir, "annotations.jsonl")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	for _, a := range anns {
		if err := enc.Encode(a); err != nil {
			return fmt.Errorf("output: encode %s: %w", path, err)
		}
	}
	return nil
}

// Summary aggregates a scan for summary.json.
type Summary struct {
	File      string         `json:"file"`
	Arch      string         `json:"arch"`
	Insns     int            `json:"instructions"`
	Kinds     map[string]int `json:"kinds"`
	Registers map[string]int `json:"registers"`
	Diags     []diag.Diag    `json:"diags,omitempty"`
}

// BuildSummary counts register accesses per name across the annotations.
func BuildSummary(file, arch string, insns int, counts map[annotate.Kind]int, anns []annotate.Annotation, diags []diag.Diag) *Summary {
	s := &Summary{
		File:      file,
		Arch:      arch,
		Insns:     insns,
		Kinds:     make(map[string]int, len(counts)),
		Registers: make(map[string]int),
		Diags:     diags,
	}
	for k, v := range counts {
		s.Kinds[string(k)] = v
	}
	for _, a := range anns {
		if a.Register != "" {
			s.Registers[a.Register]++
		}
	}
	return s
}

// WriteSummaryJSON writes the scan summary to summary.json.
func WriteSummaryJSON(dir string, s *Summary) error {
	return writeJSON(filepath.Join(dir, "summary.json"), s)
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("output: encode %s: %w", path, err)
	}
	return nil
}
