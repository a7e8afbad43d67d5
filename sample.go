package main

import "image"

// SamplePoints returns the corners, edge midpoints and center of a w x h
// image, row by row from the top-left.
func SamplePoints(w, h int) []image.Point {
	return []image.Point{
		{0, 0}, {w / 2, 0}, {w - 1, 0},
		{0, h / 2}, {w / 2, h / 2}, {w - 1, h / 2},
		{0, h - 1}, {w / 2, h - 1}, {w - 1, h - 1},
	}
}
