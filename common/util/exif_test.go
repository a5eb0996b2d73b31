package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"vincit.fi/photo-report/common/testimage"
)

func TestLoadCaptureTime(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()

	t.Run("JPEG with capture time", func(t *testing.T) {
		path := testimage.WriteJpeg(t, dir, "exif.jpg", 16, 12, "2019:09:29 17:12:17")

		value, err := LoadCaptureTime(path)
		if a.Nil(err) {
			a.Equal("2019:09:29 17:12:17", value)
		}
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadCaptureTime(filepath.Join(dir, "missing.jpg"))
		a.NotNil(err)
	})

	t.Run("JPEG without EXIF", func(t *testing.T) {
		_, err := LoadCaptureTime(testimage.WriteJpeg(t, dir, "plain.jpg", 8, 6, ""))
		a.NotNil(err)
	})

	t.Run("Not an image", func(t *testing.T) {
		path := filepath.Join(dir, "notes.txt")
		a.Nil(os.WriteFile(path, []byte("not an image"), 0644))

		_, err := LoadCaptureTime(path)
		a.NotNil(err)
	})
}

func TestLoadExifTags(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()

	t.Run("Tags sorted by name", func(t *testing.T) {
		tags, err := LoadExifTags(testimage.WriteJpeg(t, dir, "exif.jpg", 16, 12, "2019:09:29 17:12:17"))

		if a.Nil(err) {
			a.Contains(tags, ExifTag{Name: "DateTimeOriginal", Value: "2019:09:29 17:12:17"})
			for i := 1; i < len(tags); i++ {
				a.True(tags[i-1].Name < tags[i].Name)
			}
		}
	})

	t.Run("JPEG without EXIF", func(t *testing.T) {
		_, err := LoadExifTags(testimage.WriteJpeg(t, dir, "plain.jpg", 8, 6, ""))
		a.NotNil(err)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadExifTags(filepath.Join(dir, "missing.jpg"))
		a.NotNil(err)
	})
}
