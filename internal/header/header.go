// Package header implements the 14-byte QOI file descriptor: parsing,
// encoding, and a cheap structural quick-check that does not touch the
// opcode stream.
package header

import (
	"encoding/binary"
	"errors"
)

// Size is the fixed length, in bytes, of an encoded QOI descriptor.
const Size = 14

// MaxPixels bounds width*height to guard against overflow and resource
// abuse during allocation. It matches the reference decoder's guard.
const MaxPixels = 400_000_000

// Magic is the four-byte signature every QOI file begins with.
const Magic = "qoif"

var magicBytes = [4]byte{'q', 'o', 'i', 'f'}

// Channels enumerates the two pixel layouts a QOI file can declare.
const (
	ChannelsRGB  = 3
	ChannelsRGBA = 4
)

// Colorspace enumerates the two colorspace tags a QOI file can declare.
// Neither value changes how pixels are encoded or decoded; it is
// metadata the core does not interpret.
const (
	ColorspaceSRGB   = 0
	ColorspaceLinear = 1
)

// Framing errors, disjoint so a caller can tell malformed framing from
// a malformed opcode body (internal/codec.ErrInvalidEncoding).
var (
	ErrTooSmall          = errors.New("qoi: header: fewer than 14 bytes available")
	ErrMissingSignature  = errors.New("qoi: header: missing \"qoif\" signature")
	ErrZeroDimension     = errors.New("qoi: header: width or height is zero")
	ErrInvalidChannel    = errors.New("qoi: header: channels must be 3 or 4")
	ErrInvalidColorspace = errors.New("qoi: header: colorspace must be 0 or 1")
	ErrImageTooLarge     = errors.New("qoi: header: width*height exceeds the maximum pixel count")
)

// Descriptor is the parsed form of a QOI file's 14-byte header.
type Descriptor struct {
	Width      uint32
	Height     uint32
	Channels   uint8
	Colorspace uint8
}

// PixelCount returns Width*Height as a uint64, wide enough to hold the
// product without overflow for any valid Descriptor.
func (d Descriptor) PixelCount() uint64 {
	return uint64(d.Width) * uint64(d.Height)
}

// Validate checks Descriptor fields in isolation, without the
// too-large-for-a-given-buffer check that requires a byte count.
func (d Descriptor) Validate() error {
	if d.Width == 0 || d.Height == 0 {
		return ErrZeroDimension
	}
	if d.Channels != ChannelsRGB && d.Channels != ChannelsRGBA {
		return ErrInvalidChannel
	}
	if d.Colorspace != ColorspaceSRGB && d.Colorspace != ColorspaceLinear {
		return ErrInvalidColorspace
	}
	if d.PixelCount() > MaxPixels {
		return ErrImageTooLarge
	}
	return nil
}

// Parse reads and validates the 14-byte descriptor at the start of
// data. It does not look at anything past byte 14.
func Parse(data []byte) (Descriptor, error) {
	if len(data) < Size {
		return Descriptor{}, ErrTooSmall
	}
	if [4]byte(data[0:4]) != magicBytes {
		return Descriptor{}, ErrMissingSignature
	}

	d := Descriptor{
		Width:      binary.BigEndian.Uint32(data[4:8]),
		Height:     binary.BigEndian.Uint32(data[8:12]),
		Channels:   data[12],
		Colorspace: data[13],
	}
	if err := d.Validate(); err != nil {
		return Descriptor{}, err
	}
	return d, nil
}

// Append encodes d as a 14-byte descriptor and appends it to dst,
// returning the grown slice.
func Append(dst []byte, d Descriptor) []byte {
	var buf [Size]byte
	copy(buf[0:4], magicBytes[:])
	binary.BigEndian.PutUint32(buf[4:8], d.Width)
	binary.BigEndian.PutUint32(buf[8:12], d.Height)
	buf[12] = d.Channels
	buf[13] = d.Colorspace
	return append(dst, buf[:]...)
}

// minBody is the smallest possible opcode stream: a single one-byte
// opcode (e.g. a RUN of one pixel).
const minBody = 1

// epilogueSize is the length of the 8-byte terminator every encoded
// QOI bytestream ends with.
const epilogueSize = 8

// IsQOI reports whether data plausibly holds a QOI image: long enough
// for a header, at least one opcode byte, and the epilogue, and its
// header parses without error. It never inspects the opcode stream.
func IsQOI(data []byte) bool {
	if len(data) < Size+minBody+epilogueSize {
		return false
	}
	_, err := Parse(data)
	return err == nil
}
