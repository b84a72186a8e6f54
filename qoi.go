// Package qoi registers the codec with the standard library's image
// package and exposes the byte-buffer and io.Reader/Writer entry
// points. See doc.go for format background.
package qoi

import (
	"fmt"
	"image"
	"io"

	"github.com/deepteams/qoi/internal/codec"
	"github.com/deepteams/qoi/internal/header"
)

func init() {
	image.RegisterFormat("qoi", "qoif", Decode, DecodeConfig)
}

// Re-exported error sentinels, so callers never need to import the
// internal header/codec packages directly.
var (
	ErrTooSmall          = header.ErrTooSmall
	ErrMissingSignature  = header.ErrMissingSignature
	ErrZeroDimension     = header.ErrZeroDimension
	ErrInvalidChannel    = header.ErrInvalidChannel
	ErrInvalidColorspace = header.ErrInvalidColorspace
	ErrImageTooLarge     = header.ErrImageTooLarge

	ErrEmptyPixelBuffer = codec.ErrEmptyPixelBuffer
	ErrZeroPixelCount   = codec.ErrZeroPixelCount
	ErrOutOfMemory      = codec.ErrOutOfMemory
	ErrInvalidEncoding  = codec.ErrInvalidEncoding
	ErrWriteFailed      = codec.ErrWriteFailed
)

// Channel layouts a QOI image can declare.
const (
	ChannelsRGB  = header.ChannelsRGB
	ChannelsRGBA = header.ChannelsRGBA
)

// Colorspace tags a QOI image can declare. Neither changes how pixels
// are encoded or decoded.
const (
	ColorspaceSRGB   = header.ColorspaceSRGB
	ColorspaceLinear = header.ColorspaceLinear
)

// Descriptor is the parsed form of a QOI file's 14-byte header.
type Descriptor = header.Descriptor

// IsQOI reports whether data plausibly holds a QOI image: a
// structural quick-check that parses the header without decoding the
// opcode stream.
func IsQOI(data []byte) bool {
	return header.IsQOI(data)
}

// ParseDescriptor parses the 14-byte descriptor at the start of data.
func ParseDescriptor(data []byte) (Descriptor, error) {
	return header.Parse(data)
}

// EncodePixels encodes a tightly packed pixel buffer (width*height*channels
// bytes, top-to-bottom left-to-right) into a complete QOI bytestream.
func EncodePixels(pixels []byte, desc Descriptor) ([]byte, error) {
	return codec.Encode(pixels, desc)
}

// DecodePixels decodes a complete QOI bytestream into its descriptor
// and tightly packed pixel buffer.
func DecodePixels(data []byte) (Descriptor, []byte, error) {
	img, err := codec.Decode(data)
	if err != nil {
		return Descriptor{}, nil, err
	}
	return img.Descriptor, img.Pix, nil
}

// readAll reads all data from r. If r implements Len() int (e.g.
// *bytes.Reader), a single exact-sized allocation is used instead of
// the repeated doublings that io.ReadAll performs.
func readAll(r io.Reader) ([]byte, error) {
	if lr, ok := r.(interface{ Len() int }); ok {
		n := lr.Len()
		if n > 0 {
			data := make([]byte, n)
			_, err := io.ReadFull(r, data)
			return data, err
		}
	}
	return io.ReadAll(r)
}

// Decode reads a QOI image from r and returns it as an *image.NRGBA,
// regardless of whether the source declared RGB or RGBA channels, so
// callers get a consistent, alpha-aware type.
func Decode(r io.Reader) (image.Image, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, fmt.Errorf("qoi: reading data: %w", err)
	}
	desc, pix, err := DecodePixels(data)
	if err != nil {
		return nil, fmt.Errorf("qoi: decoding: %w", err)
	}
	return toNRGBA(desc, pix), nil
}

// DecodeConfig returns the color model and dimensions of a QOI image
// without decoding the pixel data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	data, err := readAll(r)
	if err != nil {
		return image.Config{}, fmt.Errorf("qoi: reading data: %w", err)
	}
	desc, err := header.Parse(data)
	if err != nil {
		return image.Config{}, fmt.Errorf("qoi: parsing header: %w", err)
	}
	return image.Config{
		ColorModel: colorModelFor(desc),
		Width:      int(desc.Width),
		Height:     int(desc.Height),
	}, nil
}

// EncoderOptions controls QOI encoding parameters.
type EncoderOptions struct {
	// Channels selects RGB (3) or RGBA (4) output. Zero defaults to
	// RGBA, which preserves an alpha channel should the source image
	// carry one.
	Channels uint8

	// Colorspace is written into the header as metadata; it is never
	// interpreted by the encoder or decoder.
	Colorspace uint8
}

func (o *EncoderOptions) channels() uint8 {
	if o == nil || o.Channels == 0 {
		return header.ChannelsRGBA
	}
	return o.Channels
}

func (o *EncoderOptions) colorspace() uint8 {
	if o == nil {
		return header.ColorspaceSRGB
	}
	return o.Colorspace
}

// Encode writes img to w as a complete QOI bytestream. A nil opts
// defaults to RGBA output in the sRGB colorspace.
func Encode(w io.Writer, img image.Image, opts *EncoderOptions) error {
	channels := opts.channels()
	if channels != header.ChannelsRGB && channels != header.ChannelsRGBA {
		return header.ErrInvalidChannel
	}

	b := img.Bounds()
	desc := Descriptor{
		Width:      uint32(b.Dx()),
		Height:     uint32(b.Dy()),
		Channels:   channels,
		Colorspace: opts.colorspace(),
	}

	pixels := fromImage(img, channels)
	return EncodeTo(w, pixels, desc)
}

// EncodeTo encodes a tightly packed pixel buffer and writes the
// resulting bytestream to w, wrapping any write failure in
// ErrWriteFailed.
func EncodeTo(w io.Writer, pixels []byte, desc Descriptor) error {
	out, err := codec.Encode(pixels, desc)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}
