package qoi_test

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/deepteams/qoi"
)

func ExampleEncode() {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 60), G: uint8(y * 60), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	err := qoi.Encode(&buf, img, &qoi.EncoderOptions{Channels: qoi.ChannelsRGBA})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("magic ok: %v\n", qoi.IsQOI(buf.Bytes()))
	// Output:
	// magic ok: true
}

func ExampleDecode() {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{A: 255})

	var buf bytes.Buffer
	if err := qoi.Encode(&buf, img, &qoi.EncoderOptions{Channels: qoi.ChannelsRGBA}); err != nil {
		fmt.Println(err)
		return
	}

	decoded, err := qoi.Decode(&buf)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("bounds: %v\n", decoded.Bounds())
	// Output:
	// bounds: (0,0)-(2,2)
}

func ExampleEncodePixels_roundtrip() {
	pixels := []byte{
		10, 20, 30, 255,
		10, 20, 30, 255,
		200, 0, 0, 128,
		200, 0, 0, 128,
	}
	desc := qoi.Descriptor{Width: 2, Height: 2, Channels: qoi.ChannelsRGBA}

	out, err := qoi.EncodePixels(pixels, desc)
	if err != nil {
		fmt.Println(err)
		return
	}

	gotDesc, gotPixels, err := qoi.DecodePixels(out)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%dx%d match=%v\n", gotDesc.Width, gotDesc.Height, bytes.Equal(pixels, gotPixels))
	// Output:
	// 2x2 match=true
}

func ExampleParseDescriptor() {
	desc := qoi.Descriptor{Width: 8, Height: 4, Channels: qoi.ChannelsRGB, Colorspace: qoi.ColorspaceSRGB}
	pixels := make([]byte, 8*4*3)

	out, err := qoi.EncodePixels(pixels, desc)
	if err != nil {
		fmt.Println(err)
		return
	}

	got, err := qoi.ParseDescriptor(out)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%dx%d channels=%d\n", got.Width, got.Height, got.Channels)
	// Output:
	// 8x4 channels=3
}
