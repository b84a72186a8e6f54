package codec

import (
	"github.com/deepteams/qoi/internal/header"
)

// Image is a decoded QOI image: its descriptor plus a tightly packed
// pixel buffer in the layout desc.Channels implies.
type Image struct {
	Descriptor header.Descriptor
	Pix        []byte
}

// Decode parses a QOI bytestream — a 14-byte header, an opcode
// stream, and the 8-byte epilogue — into an Image. The header is
// validated per the header package's rules; InvalidEncoding is
// reserved for a structurally impossible opcode tag, which cannot
// occur given the exhaustive dispatch below but remains part of the
// declared error taxonomy.
func Decode(data []byte) (Image, error) {
	desc, err := header.Parse(data)
	if err != nil {
		return Image{}, err
	}

	channels := int(desc.Channels)
	n := int(desc.PixelCount())
	pix := make([]byte, n*channels)

	idx := newRunningIndex()
	prev := DefaultPixel()
	run := 0

	cursor := header.Size
	lastTagCursor := len(data) - epilogueSize

	for i := 0; i < n; i++ {
		if run > 0 {
			run--
		} else if cursor < lastTagCursor {
			tag := data[cursor]
			isRun := false
			switch {
			case tag == tagRGB:
				prev = prev.withRGB(data[cursor+1], data[cursor+2], data[cursor+3])
				cursor += 4
			case tag == tagRGBA:
				prev = Pixel{R: data[cursor+1], G: data[cursor+2], B: data[cursor+3], A: data[cursor+4]}
				cursor += 5
			default:
				switch tag & tagMask2 {
				case tagIndex:
					prev = idx.at(tag)
					cursor++
				case tagDiff:
					prev = Pixel{
						R: prev.R + ((tag>>4)&0x03) - 2,
						G: prev.G + ((tag>>2)&0x03) - 2,
						B: prev.B + (tag&0x03) - 2,
						A: prev.A,
					}
					cursor++
				case tagLuma:
					b := data[cursor+1]
					dg := (tag & 0x3F) - 32
					prev = Pixel{
						R: prev.R + dg - 8 + ((b >> 4) & 0x0F),
						G: prev.G + dg,
						B: prev.B + dg - 8 + (b & 0x0F),
						A: prev.A,
					}
					cursor += 2
				case tagRun:
					run = int(tag & 0x3F)
					cursor++
					isRun = true
				}
			}
			// RUN opcodes replicate the existing previous pixel and
			// must not perturb the index, matching the encoder's
			// symmetric rule.
			if !isRun {
				idx.observe(prev)
			}
		}

		off := i * channels
		pix[off] = prev.R
		pix[off+1] = prev.G
		pix[off+2] = prev.B
		if channels == header.ChannelsRGBA {
			pix[off+3] = prev.A
		}
	}

	return Image{Descriptor: desc, Pix: pix}, nil
}
