package main

import (
	"bufio"
	"fmt"
	"io"
)

// Report writes the full diagnostic for m to w.
func Report(w io.Writer, m *Image) error {
	bw := bufio.NewWriter(w)

	width, height := m.Size()
	fmt.Fprintf(bw, "Format: %s\n", m.Format)
	fmt.Fprintf(bw, "Size: (%d, %d)\n", width, height)
	fmt.Fprintf(bw, "Mode: %s\n", m.Mode)

	fmt.Fprintf(bw, "\nSample Pixels (R, G, B, A):\n")
	for _, pt := range SamplePoints(width, height) {
		p, err := m.At(pt.X, pt.Y)
		if err != nil {
			fmt.Fprintf(bw, "(%d, %d): Error %v\n", pt.X, pt.Y, err)
			continue
		}
		fmt.Fprintf(bw, "(%d, %d): %v\n", pt.X, pt.Y, p)
	}

	fmt.Fprintf(bw, "\nChecking for yellow pixels (R>200, G>200, B<100)...\n")
	res := ScanYellow(m)
	for _, match := range res.First {
		fmt.Fprintf(bw, "Yellow found at %d,%d: %v\n", match.X, match.Y, match.Pixel)
	}
	fmt.Fprintf(bw, "Total yellow pixels found: %d\n", res.Count)

	return bw.Flush()
}
