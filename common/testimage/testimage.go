// Package testimage writes small image fixtures for tests, optionally with an
// EXIF DateTimeOriginal tag, so that no binary assets need to be checked in.
package testimage

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	tagExifIFDPointer   = 0x8769
	tagDateTimeOriginal = 0x9003
	typeAscii           = 2
	typeLong            = 4
)

func newImage(width int, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 255 / width), G: uint8(y * 255 / height), B: 128, A: 255})
		}
	}
	return img
}

// WriteJpeg writes a width x height JPEG into dir. If captureTime is not empty
// it is stored as EXIF DateTimeOriginal.
func WriteJpeg(t *testing.T, dir string, name string, width int, height int, captureTime string) string {
	r := require.New(t)

	buf := &bytes.Buffer{}
	r.Nil(jpeg.Encode(buf, newImage(width, height), nil))
	data := buf.Bytes()

	if captureTime != "" {
		data = insertApp1(data, exifSegment(captureTime))
	}

	path := filepath.Join(dir, name)
	r.Nil(os.WriteFile(path, data, 0644))
	return path
}

func WritePng(t *testing.T, dir string, name string, width int, height int) string {
	r := require.New(t)

	buf := &bytes.Buffer{}
	r.Nil(png.Encode(buf, newImage(width, height)))

	path := filepath.Join(dir, name)
	r.Nil(os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

// insertApp1 places the APP1 segment right after the SOI marker.
func insertApp1(jpegData []byte, payload []byte) []byte {
	segment := &bytes.Buffer{}
	segment.Write([]byte{0xFF, 0xE1})
	_ = binary.Write(segment, binary.BigEndian, uint16(len(payload)+2))
	segment.Write(payload)

	out := make([]byte, 0, len(jpegData)+segment.Len())
	out = append(out, jpegData[:2]...)
	out = append(out, segment.Bytes()...)
	return append(out, jpegData[2:]...)
}

// exifSegment builds "Exif\0\0" followed by a little endian TIFF structure:
// IFD0 with a pointer to an Exif IFD holding only DateTimeOriginal.
func exifSegment(captureTime string) []byte {
	value := append([]byte(captureTime), 0)

	const ifd0Offset = 8
	const ifdSize = 2 + 12 + 4
	const exifIfdOffset = ifd0Offset + ifdSize
	const valueOffset = exifIfdOffset + ifdSize

	le := binary.LittleEndian
	buf := &bytes.Buffer{}
	buf.WriteString("Exif\x00\x00")

	buf.WriteString("II")
	_ = binary.Write(buf, le, uint16(42))
	_ = binary.Write(buf, le, uint32(ifd0Offset))

	writeIfd(buf, tagExifIFDPointer, typeLong, 1, exifIfdOffset)
	writeIfd(buf, tagDateTimeOriginal, typeAscii, uint32(len(value)), valueOffset)

	buf.Write(value)
	return buf.Bytes()
}

func writeIfd(buf *bytes.Buffer, tag uint16, dataType uint16, count uint32, value uint32) {
	le := binary.LittleEndian
	_ = binary.Write(buf, le, uint16(1))
	_ = binary.Write(buf, le, tag)
	_ = binary.Write(buf, le, dataType)
	_ = binary.Write(buf, le, count)
	_ = binary.Write(buf, le, value)
	_ = binary.Write(buf, le, uint32(0))
}
