// Package main provides the flexdump CLI for computing layouts from tree
// files.
//
// Usage:
//
//	flexdump compute <file.toml>    Compute and print the layout tree
//	flexdump check <file.toml>      Validate a tree file without computing
//	flexdump help                   Show help
package main

import (
	"flag"
	"fmt"
	"os"

	flexbox "github.com/ineffably/moxijs-sub006"
	"github.com/ineffably/moxijs-sub006/treefile"
)

const version = "0.1.0"

const usage = `flexdump - compute flexbox layouts from TOML tree files

Usage:
  flexdump <command> [options] <file.toml>

Commands:
  compute     Compute the layout and print each node's geometry
  check       Validate a tree file without computing
  version     Print version information
  help        Show this help message

Options (compute):
  -width      Available width in pixels (default 800)
  -height     Available height in pixels (default 600)

Examples:
  flexdump compute dashboard.toml
  flexdump compute -width 1280 -height 720 dashboard.toml
  flexdump check dashboard.toml
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "compute":
		if err := runCompute(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "check":
		if err := runCheck(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("flexdump version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}

func runCompute(args []string) error {
	fs := flag.NewFlagSet("compute", flag.ExitOnError)
	width := fs.Float64("width", 800, "available width in pixels")
	height := fs.Float64("height", 600, "available height in pixels")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("compute expects exactly one tree file")
	}

	root, err := treefile.Load(fs.Arg(0))
	if err != nil {
		return err
	}

	flexbox.Compute(root, *width, *height)
	flexbox.Dump(os.Stdout, root)
	return nil
}

func runCheck(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("check expects exactly one tree file")
	}
	if _, err := treefile.Load(args[0]); err != nil {
		return err
	}
	fmt.Printf("%s: ok\n", args[0])
	return nil
}
