package main

import (
	"fmt"
	"io"
	"os"
)

const usagestr = `iconinspect: usage: [ file ]
`

// defaultPath is inspected when no file is given.
const defaultPath = "icon.png"

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	path := defaultPath
	switch len(args) {
	case 0, 1:
	case 2:
		path = args[1]
	default:
		fmt.Fprint(stderr, usagestr)
		return 1
	}

	img, err := Open(path)
	if err != nil {
		return fatal(stdout, err)
	}
	if err := Report(stdout, img); err != nil {
		fmt.Fprintf(stderr, "iconinspect: %v\n", err)
		return 1
	}
	return 0
}

// fatal reports err as the only line of output.
func fatal(w io.Writer, err error) int {
	fmt.Fprintf(w, "Error: %v\n", err)
	return 1
}
