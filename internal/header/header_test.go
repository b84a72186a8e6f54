package header

import (
	"errors"
	"testing"
)

func validBytes() []byte {
	return Append(nil, Descriptor{Width: 4, Height: 2, Channels: ChannelsRGBA, Colorspace: ColorspaceSRGB})
}

func TestParseRoundTrip(t *testing.T) {
	d := Descriptor{Width: 1920, Height: 1080, Channels: ChannelsRGB, Colorspace: ColorspaceLinear}
	got, err := Parse(Append(nil, d))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got != d {
		t.Errorf("round-trip = %+v, want %+v", got, d)
	}
}

func TestParseTooSmall(t *testing.T) {
	_, err := Parse(make([]byte, 13))
	if !errors.Is(err, ErrTooSmall) {
		t.Errorf("err = %v, want ErrTooSmall", err)
	}
}

func TestParseMissingSignature(t *testing.T) {
	data := validBytes()
	data[0] = 'x'
	_, err := Parse(data)
	if !errors.Is(err, ErrMissingSignature) {
		t.Errorf("err = %v, want ErrMissingSignature", err)
	}
}

func TestParseZeroDimension(t *testing.T) {
	data := Append(nil, Descriptor{Width: 0, Height: 1, Channels: ChannelsRGBA})
	_, err := Parse(data)
	if !errors.Is(err, ErrZeroDimension) {
		t.Errorf("err = %v, want ErrZeroDimension", err)
	}
}

func TestParseInvalidChannel(t *testing.T) {
	data := Append(nil, Descriptor{Width: 1, Height: 1, Channels: 2})
	_, err := Parse(data)
	if !errors.Is(err, ErrInvalidChannel) {
		t.Errorf("err = %v, want ErrInvalidChannel", err)
	}
}

func TestParseInvalidColorspace(t *testing.T) {
	data := Append(nil, Descriptor{Width: 1, Height: 1, Channels: ChannelsRGB, Colorspace: 7})
	_, err := Parse(data)
	if !errors.Is(err, ErrInvalidColorspace) {
		t.Errorf("err = %v, want ErrInvalidColorspace", err)
	}
}

func TestParseImageTooLarge(t *testing.T) {
	data := Append(nil, Descriptor{Width: 20000, Height: 20001, Channels: ChannelsRGBA})
	_, err := Parse(data)
	if !errors.Is(err, ErrImageTooLarge) {
		t.Errorf("err = %v, want ErrImageTooLarge", err)
	}
}

func TestIsQOI(t *testing.T) {
	good := Append(nil, Descriptor{Width: 1, Height: 1, Channels: ChannelsRGBA})
	good = append(good, 0xC0)             // one RUN opcode byte
	good = append(good, make([]byte, 8)...) // epilogue-shaped tail

	if !IsQOI(good) {
		t.Error("IsQOI(good) = false, want true")
	}
	if IsQOI(good[:Size]) {
		t.Error("IsQOI(header-only) = true, want false")
	}
	if IsQOI([]byte("not a qoi file at all")) {
		t.Error("IsQOI(garbage) = true, want false")
	}
}

func TestPixelCount(t *testing.T) {
	d := Descriptor{Width: 20000, Height: 20000}
	if got, want := d.PixelCount(), uint64(400_000_000); got != want {
		t.Errorf("PixelCount() = %d, want %d", got, want)
	}
}
