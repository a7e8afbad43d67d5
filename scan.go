package main

// previewLimit is how many matches a scan keeps for printing.
const previewLimit = 4

// Match is a pixel that satisfied IsYellow.
type Match struct {
	X, Y  int
	Pixel Pixel
}

// ScanResult is the outcome of ScanYellow.
type ScanResult struct {
	Count int
	First []Match
}

// IsYellow reports whether p is bright in red and green, dark in blue and
// not fully transparent.
func IsYellow(p Pixel) bool {
	r, g, b, a := p.RGBA()
	return r > 200 && g > 200 && b < 100 && a > 0
}

// ScanYellow counts every yellow pixel of m, walking rows top to bottom and
// each row left to right, and keeps the first previewLimit matches.
func ScanYellow(m *Image) ScanResult {
	var res ScanResult
	w, h := m.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p, err := m.At(x, y)
			if err != nil || !IsYellow(p) {
				continue
			}
			res.Count++
			if res.Count <= previewLimit {
				res.First = append(res.First, Match{X: x, Y: y, Pixel: p})
			}
		}
	}
	return res
}
