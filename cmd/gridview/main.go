// Package main provides a small tool for exploring grid scenarios.
//
// Usage:
//
//	gridview view <scenario.toml>                 Scroll a scenario interactively
//	gridview dump <scenario.toml> [-steps n] [-delta d]
//	gridview help                                 Show help
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `gridview - explore lazygrid scenarios

Usage:
  gridview <command> [options] <scenario.toml>

Commands:
  view        Scroll a scenario interactively
  dump        Print the placements of a few scroll steps
  version     Print version information
  help        Show this help message

Options (dump):
  -steps n    Number of scroll steps after the first pass (default 3)
  -delta d    Scroll delta applied before each step (default: one viewport)

Keys (view):
  j/k         Scroll by one cell
  J/K         Scroll by one viewport
  g           Grow the items of the first visible line
  s           Toggle the first visible item between one slot and a full line
  d           Toggle dragging
  p           Pin the first visible item, P releases the latest pin
  q           Quit

Set LAZYGRID_DEBUG=<path> to write engine debug logs to a file.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "view":
		if err := runView(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "dump":
		if err := runDump(os.Stdout, args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("gridview version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
