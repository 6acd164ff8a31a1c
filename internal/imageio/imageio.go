// Package imageio converts between image files and the flat RGBA pixel
// buffers consumed by the image kernels.
package imageio

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Image is a tightly packed RGBA buffer with its dimensions.
type Image struct {
	Pixels []uint8
	Width  int
	Height int
}

// FromImage copies img into a packed, non-premultiplied RGBA buffer.
func FromImage(img image.Image) Image {
	nrgba := imaging.Clone(img)
	b := nrgba.Bounds()
	return Image{
		Pixels: nrgba.Pix,
		Width:  b.Dx(),
		Height: b.Dy(),
	}
}

// ToImage wraps the buffer as an *image.NRGBA without copying.
func (im Image) ToImage() *image.NRGBA {
	return &image.NRGBA{
		Pix:    im.Pixels,
		Stride: im.Width * 4,
		Rect:   image.Rect(0, 0, im.Width, im.Height),
	}
}

// Load decodes the image at path, optionally resizing it so that its width
// is at most maxWidth (0 keeps the original size).
func Load(path string, maxWidth int) (Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return Image{}, fmt.Errorf("imageio: open %s: %w", path, err)
	}
	if maxWidth > 0 && img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}
	return FromImage(img), nil
}

// Save encodes the buffer to path; the format follows the file extension.
func Save(path string, im Image) error {
	if len(im.Pixels) != im.Width*im.Height*4 {
		return fmt.Errorf("imageio: buffer holds %d bytes, want %d for %dx%d",
			len(im.Pixels), im.Width*im.Height*4, im.Width, im.Height)
	}
	if err := imaging.Save(im.ToImage(), path); err != nil {
		return fmt.Errorf("imageio: save %s: %w", path, err)
	}
	return nil
}

// Synthetic returns a deterministic test card: a diagonal colour gradient
// with a checkerboard in the red channel, fully opaque.
func Synthetic(width, height int) Image {
	pix := make([]uint8, width*height*4)
	for y := range height {
		for x := range width {
			o := (y*width + x) * 4
			r := uint8(x * 255 / max(width-1, 1))
			if (x/8+y/8)%2 == 0 {
				r = 255 - r
			}
			pix[o] = r
			pix[o+1] = uint8(y * 255 / max(height-1, 1))
			pix[o+2] = uint8((x + y) * 255 / max(width+height-2, 1))
			pix[o+3] = 255
		}
	}
	return Image{Pixels: pix, Width: width, Height: height}
}

// FromGray expands a single-channel buffer into an opaque RGBA image.
func FromGray(gray []uint8, width, height int) (Image, error) {
	if len(gray) != width*height {
		return Image{}, fmt.Errorf("imageio: gray buffer holds %d bytes, want %d for %dx%d",
			len(gray), width*height, width, height)
	}
	pix := make([]uint8, len(gray)*4)
	for i, v := range gray {
		pix[4*i] = v
		pix[4*i+1] = v
		pix[4*i+2] = v
		pix[4*i+3] = 255
	}
	return Image{Pixels: pix, Width: width, Height: height}, nil
}
