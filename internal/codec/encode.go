package codec

import (
	"fmt"

	"github.com/deepteams/qoi/internal/bufpool"
	"github.com/deepteams/qoi/internal/header"
)

// opcode tag bytes and masks. RGB and RGBA are full-byte tags; the
// other four use their high bits as the tag and the low bits as an
// inline payload.
const (
	tagIndex byte = 0b00_000000
	tagDiff  byte = 0b01_000000
	tagLuma  byte = 0b10_000000
	tagRun   byte = 0b11_000000
	tagRGB   byte = 0xFE
	tagRGBA  byte = 0xFF

	tagMask2 byte = 0b11_000000

	maxRun = 62 // RUN payloads encode 1..62; 63 and 64 are reserved.
)

// epilogue is the fixed 8-byte terminator appended to every encoded
// bytestream.
var epilogue = [8]byte{0, 0, 0, 0, 0, 0, 0, 1}

// epilogueSize is the length of epilogue in bytes.
const epilogueSize = len(epilogue)

// Encode encodes pixels (a tightly packed width*height*channels byte
// buffer, top-to-bottom left-to-right, RGB or RGBA per desc.Channels)
// into a QOI bytestream. The returned slice is independently owned by
// the caller.
func Encode(pixels []byte, desc header.Descriptor) ([]byte, error) {
	if len(pixels) == 0 {
		return nil, ErrEmptyPixelBuffer
	}
	pixelCount := desc.PixelCount()
	if pixelCount == 0 {
		return nil, ErrZeroPixelCount
	}
	if pixelCount > header.MaxPixels {
		return nil, header.ErrImageTooLarge
	}
	channels := int(desc.Channels)
	if channels != header.ChannelsRGB && channels != header.ChannelsRGBA {
		return nil, header.ErrInvalidChannel
	}
	wantLen := int(desc.Width) * int(desc.Height) * channels
	if len(pixels) != wantLen {
		return nil, fmt.Errorf("qoi: encode: pixel buffer is %d bytes, want %d for %dx%d at %d channels",
			len(pixels), wantLen, desc.Width, desc.Height, channels)
	}

	// Pre-size at ~32% of the raw pixel bytes (or a 512-byte floor),
	// per the format's typical compression ratio on photographic and
	// graphical content; Grow handles the worst case.
	initial := len(pixels) * 32 / 100
	out := bufpool.Get(initial)
	out = header.Append(out, desc)

	idx := newRunningIndex()
	prev := DefaultPixel()
	run := 0

	n := int(pixelCount)
	for i := 0; i < n; i++ {
		off := i * channels
		var curr Pixel
		if channels == header.ChannelsRGBA {
			curr = Pixel{R: pixels[off], G: pixels[off+1], B: pixels[off+2], A: pixels[off+3]}
		} else {
			curr = Pixel{R: pixels[off], G: pixels[off+1], B: pixels[off+2], A: prev.A}
		}

		if curr == prev {
			run++
			if run == maxRun || i == n-1 {
				out = bufpool.Grow(out, 1)
				out = append(out, tagRun|byte(run-1))
				run = 0
			}
			continue
		}

		if run > 0 {
			out = bufpool.Grow(out, 1)
			out = append(out, tagRun|byte(run-1))
			run = 0
		}

		if idx.matches(curr) {
			out = bufpool.Grow(out, 1)
			out = append(out, tagIndex|curr.Hash())
			prev = curr
			continue
		}
		idx.observe(curr)

		dr := curr.R - prev.R
		dg := curr.G - prev.G
		db := curr.B - prev.B

		switch {
		case curr.A != prev.A:
			out = bufpool.Grow(out, 5)
			out = append(out, tagRGBA, curr.R, curr.G, curr.B, curr.A)
		case inDiffRange(dr) && inDiffRange(dg) && inDiffRange(db):
			out = bufpool.Grow(out, 1)
			out = append(out, tagDiff|(dr+2)<<4|(dg+2)<<2|(db+2))
		case inLumaRange(dg, dr-dg, db-dg):
			out = bufpool.Grow(out, 2)
			out = append(out, tagLuma|(dg+32), (dr-dg+8)<<4|(db-dg+8))
		default:
			out = bufpool.Grow(out, 4)
			out = append(out, tagRGB, curr.R, curr.G, curr.B)
		}

		prev = curr
	}

	out = bufpool.Grow(out, epilogueSize)
	out = append(out, epilogue[:]...)

	return bufpool.Trim(out, len(out)), nil
}

// inDiffRange reports whether an 8-bit wrap-around delta d represents
// a signed value in [-2, 1], tested via its unsigned representatives
// {254,255,0,1} — correct only because d is already an 8-bit value.
func inDiffRange(d uint8) bool {
	return d+2 <= 3
}

// inLumaRange reports whether the green delta dg and the two
// green-relative deltas drg, dbg fall within LUMA's ranges: dg in
// [-32,31], drg and dbg in [-8,7]. All three are 8-bit wrap-around
// deltas, tested via their unsigned representatives.
func inLumaRange(dg, drg, dbg uint8) bool {
	return dg+32 <= 63 && drg+8 <= 15 && dbg+8 <= 15
}
