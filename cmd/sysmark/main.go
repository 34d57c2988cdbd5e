package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "scan":
		err = cmdScan(os.Args[2:])
	case "annotate":
		err = cmdAnnotate(os.Args[2:])
	case "graph":
		err = cmdGraph(os.Args[2:])
	case "lookup":
		err = cmdLookup(os.Args[2:])
	case "help", "-h", "--help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `sysmark: ARM system instruction annotator

Usage:
  sysmark scan     --bin <path>               Annotated listing to stdout, counts to stderr
  sysmark annotate --bin <path> --out <dir>    Listings, annotations.jsonl and summary.json
  sysmark graph    --bin <path> --out <file>   Function to register access graph (DOT)
  sysmark lookup   <name-or-encoding>          Query the register tables

Flags:
  --bin <path>       ELF binary or raw image
  --out <dir|file>      Output directory or file
  --arch <a>            auto|arm64|arm|thumb (raw images require an explicit arch)
  --base <addr>         Load address for raw images
  --thumb               Treat an ARM ELF's code as Thumb
  --strict              Fail on undecodable words
  --max-steps <n>       Global loop cap

Encodings for lookup: s3_0_c1_c0_0 (AArch64) or p15,0,c1,c0,0 (AArch32).
`)
}
