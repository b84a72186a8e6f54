package qoi

import (
	"image"
	"image/color"

	"github.com/deepteams/qoi/internal/header"
)

// colorModelFor returns the color.Model a decoded image of desc will
// use: NRGBA always, since QOI carries non-premultiplied alpha (or no
// alpha at all, in which case every pixel's alpha is opaque).
func colorModelFor(desc header.Descriptor) color.Model {
	return color.NRGBAModel
}

// toNRGBA packs a tightly packed QOI pixel buffer into an
// *image.NRGBA, filling alpha to 255 when desc declares RGB channels.
func toNRGBA(desc header.Descriptor, pix []byte) *image.NRGBA {
	w, h := int(desc.Width), int(desc.Height)
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	channels := int(desc.Channels)
	for y := 0; y < h; y++ {
		srcRow := y * w * channels
		dstRow := y * out.Stride
		for x := 0; x < w; x++ {
			si := srcRow + x*channels
			di := dstRow + x*4
			out.Pix[di+0] = pix[si+0]
			out.Pix[di+1] = pix[si+1]
			out.Pix[di+2] = pix[si+2]
			if channels == header.ChannelsRGBA {
				out.Pix[di+3] = pix[si+3]
			} else {
				out.Pix[di+3] = 255
			}
		}
	}
	return out
}

// fromImage flattens an arbitrary image.Image into a tightly packed,
// non-premultiplied pixel buffer in the layout channels implies. The
// fast path handles *image.NRGBA directly; anything else goes through
// image.Image.At, which performs whatever color conversion is needed.
func fromImage(img image.Image, channels uint8) []byte {
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Rect.Min == (image.Point{}) {
		return flattenNRGBA(nrgba, channels)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := make([]byte, w*h*int(channels))
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			out[i] = c.R
			out[i+1] = c.G
			out[i+2] = c.B
			if channels == header.ChannelsRGBA {
				out[i+3] = c.A
			}
			i += int(channels)
		}
	}
	return out
}

// flattenNRGBA is the zero-conversion fast path for an already-NRGBA
// source image anchored at the origin.
func flattenNRGBA(img *image.NRGBA, channels uint8) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	out := make([]byte, w*h*int(channels))
	for y := 0; y < h; y++ {
		srcRow := y * img.Stride
		dstRow := y * w * int(channels)
		for x := 0; x < w; x++ {
			si := srcRow + x*4
			di := dstRow + x*int(channels)
			out[di+0] = img.Pix[si+0]
			out[di+1] = img.Pix[si+1]
			out[di+2] = img.Pix[si+2]
			if channels == header.ChannelsRGBA {
				out[di+3] = img.Pix[si+3]
			}
		}
	}
	return out
}
