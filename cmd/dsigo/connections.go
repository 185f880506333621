package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"dsigo.dev/dsigo/opml"
)

func cmdConnections(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printConnectionsUsage(errOut)
		return 2
	}
	switch args[0] {
	case "feed":
		return cmdConnectionsFeed(args[1:], out, errOut)
	case "help", "-h", "--help":
		printConnectionsUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown connections subcommand: %s\n\n", args[0])
		printConnectionsUsage(errOut)
		return 2
	}
}

func printConnectionsUsage(w io.Writer) {
	fmt.Fprintln(w, "dsigo connections: work with collected identity records")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  dsigo connections feed [--out <file.opml>] <dir>")
}

func cmdConnectionsFeed(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("connections feed", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var outPath string
	fs.StringVar(&outPath, "out", "", "Output OPML file (default stdout)")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: dsigo connections feed [--out <file.opml>] <dir>")
		return 2
	}

	doc, err := opml.FromDirectory(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "build opml: %v\n", err)
		return 1
	}
	if outPath == "" {
		_, _ = out.Write(doc)
		return 0
	}
	if err := os.WriteFile(outPath, doc, 0o644); err != nil {
		fmt.Fprintf(errOut, "write %s: %v\n", outPath, err)
		return 1
	}
	fmt.Fprintln(out, outPath)
	return 0
}
