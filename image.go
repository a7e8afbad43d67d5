package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// ErrIndexOutOfRange is returned by Image.At for coordinates outside the image.
var ErrIndexOutOfRange = errors.New("image index out of range")

var formatNames = map[string]string{
	"png":  "PNG",
	"jpeg": "JPEG",
	"gif":  "GIF",
	"bmp":  "BMP",
	"tiff": "TIFF",
	"webp": "WEBP",
}

// Image is a decoded raster along with the metadata printed about it.
type Image struct {
	Format string
	Mode   string

	img      image.Image
	channels int
}

// Open decodes the image at path.
func Open(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return decode(f, path)
}

func decode(r io.ReadSeeker, name string) (*Image, error) {
	var (
		img    image.Image
		format string
		err    error
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg":
		fallthrough
	case ".jpeg":
		img, err = jpeg.Decode(r)
		format = "jpeg"
	case ".png":
		img, err = png.Decode(r)
		format = "png"
	case ".gif":
		img, err = gif.Decode(r)
		format = "gif"
	case ".bmp":
		img, err = bmp.Decode(r)
		format = "bmp"
	case ".tif":
		fallthrough
	case ".tiff":
		img, err = tiff.Decode(r)
		format = "tiff"
	case ".webp":
		img, err = webp.Decode(r)
		format = "webp"
	}
	if img == nil || err != nil {
		// slow path, the extension lied or there was none
		if _, err := r.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		img, format, err = image.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("cannot identify image file %q: %w", name, err)
		}
	}
	return newImage(img, format), nil
}

func newImage(img image.Image, format string) *Image {
	name, ok := formatNames[format]
	if !ok {
		name = strings.ToUpper(format)
	}
	mode, channels := layout(img)
	return &Image{Format: name, Mode: mode, img: img, channels: channels}
}

// layout names the channel layout of img and how many channels a Pixel
// read from it carries.
func layout(img image.Image) (mode string, channels int) {
	switch m := img.(type) {
	case *image.NRGBA, *image.NRGBA64, *image.NYCbCrA:
		return "RGBA", 4
	case *image.RGBA:
		if m.Opaque() {
			return "RGB", 3
		}
		return "RGBA", 4
	case *image.RGBA64:
		if m.Opaque() {
			return "RGB", 3
		}
		return "RGBA", 4
	case *image.YCbCr:
		return "RGB", 3
	case *image.Gray:
		return "L", 3
	case *image.Gray16:
		return "I;16", 3
	case *image.Paletted:
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return "P", 4
			}
		}
		return "P", 3
	case *image.CMYK:
		return "CMYK", 3
	case *image.Alpha, *image.Alpha16:
		return "A", 4
	}
	return "RGBA", 4
}

// Size returns the image dimensions.
func (m *Image) Size() (width, height int) {
	b := m.img.Bounds()
	return b.Dx(), b.Dy()
}

// At returns the pixel at (x, y), counted from the top-left corner of the
// image regardless of where its bounds start.
func (m *Image) At(x, y int) (Pixel, error) {
	w, h := m.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return nil, ErrIndexOutOfRange
	}
	o := m.img.Bounds().Min
	c := color.NRGBAModel.Convert(m.img.At(o.X+x, o.Y+y)).(color.NRGBA)
	if m.channels == 3 {
		return Pixel{c.R, c.G, c.B}, nil
	}
	return Pixel{c.R, c.G, c.B, c.A}, nil
}

// Pixel holds 8-bit intensities in R, G, B[, A] order.
type Pixel []uint8

// RGBA returns the channels of p; a pixel without alpha is fully opaque.
func (p Pixel) RGBA() (r, g, b, a uint8) {
	a = 255
	if len(p) == 4 {
		a = p[3]
	}
	return p[0], p[1], p[2], a
}

func (p Pixel) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = fmt.Sprint(v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
