package util

import (
	"fmt"
	"os"

	"github.com/rwcarlsen/goexif/exif"
	"vincit.fi/photo-report/common/logger"
)

// LoadCaptureTime reads the raw EXIF DateTimeOriginal value of the image at
// path. Any missing file, missing EXIF block or missing tag is an error, and
// so is a decoder panic on corrupt data.
func LoadCaptureTime(path string) (value string, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn.Printf("Exif decoder failed on '%s': %v", path, r)
			value, err = "", fmt.Errorf("corrupt exif data in '%s': %v", path, r)
		}
	}()

	fileForExif, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer fileForExif.Close()

	if decodedExif, err := exif.Decode(fileForExif); err != nil {
		logger.Debug.Printf("Could not decode Exif data of '%s': %s", path, err)
		return "", err
	} else if tag, err := decodedExif.Get(exif.DateTimeOriginal); err != nil {
		logger.Debug.Printf("No capture time in '%s': %s", path, err)
		return "", err
	} else {
		return tag.StringVal()
	}
}
