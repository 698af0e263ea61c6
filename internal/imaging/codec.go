package imaging

import (
	"image"
	"image/color"
	"math"
)

// Dimensions returns the carrier grid size for a payload of n bytes:
// width = ceil(sqrt(n)), height = ceil(n / width), one byte per pixel.
//
// An empty payload maps to a 1×1 image holding a single padding pixel,
// so that encoding always yields a well-formed image.
func Dimensions(n int) (width, height int) {
	if n == 0 {
		return 1, 1
	}

	width = int(math.Ceil(math.Sqrt(float64(n))))
	height = (n + width - 1) / width
	return width, height
}

// Encode maps a byte payload onto a fresh NRGBA pixel grid.
//
// Byte i lands in the red channel of pixel i in row-major order, with the
// alpha channel forced to full opacity. Green and blue stay zero. Pixels
// past the payload (the grid rarely divides evenly) are left entirely
// zero, which is what Decode later treats as end-of-data.
func Encode(payload []byte) *image.NRGBA {
	width, height := Dimensions(len(payload))
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	for i, b := range payload {
		off := img.PixOffset(i%width, i/width)
		img.Pix[off] = b
		img.Pix[off+3] = 0xFF
	}

	return img
}

// Decode scans pixels in row-major order and collects the red channel of
// each pixel until it reads a zero value or runs out of pixels. The zero
// acts as an end-of-data sentinel and is not appended to the output.
//
// Known limitation: ciphertext bytes are pseudo-random, so a legitimate
// payload byte of value 0 ends the scan early and silently truncates the
// payload. The truncated result then fails authentication downstream.
// This sentinel behavior is part of the image format and is kept as-is
// for compatibility.
func Decode(img image.Image) []byte {
	bounds := img.Bounds()
	out := make([]byte, 0, bounds.Dx()*bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.R == 0 {
				return out
			}
			out = append(out, c.R)
		}
	}

	return out
}

// Info describes a carrier image without decrypting anything.
type Info struct {
	Width    int
	Height   int
	Capacity int // total carrier slots (width * height)
	Apparent int // bytes before the first zero sentinel
}

// Inspect reports the carrier geometry and apparent payload length of an
// image. Apparent is a lower bound on the true payload length whenever
// the payload happens to contain a zero byte.
func Inspect(img image.Image) Info {
	bounds := img.Bounds()
	return Info{
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Capacity: bounds.Dx() * bounds.Dy(),
		Apparent: len(Decode(img)),
	}
}
