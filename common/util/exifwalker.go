package util

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
	"vincit.fi/photo-report/common/logger"
)

type ExifTag struct {
	Name  string
	Value string
}

type MapExifWalker struct {
	values map[string]string

	exif.Walker
}

func NewMapExifWalker() *MapExifWalker {
	return &MapExifWalker{
		values: map[string]string{},
	}
}

func (s *MapExifWalker) Walk(name exif.FieldName, tag *tiff.Tag) error {
	if tagValue := strings.Trim(tag.String(), " \t\"\x00"); tagValue != "" {
		s.values[string(name)] = tagValue
	}
	return nil
}

// Tags returns the walked tags sorted by name.
func (s *MapExifWalker) Tags() []ExifTag {
	tags := make([]ExifTag, 0, len(s.values))
	for name, value := range s.values {
		tags = append(tags, ExifTag{Name: name, Value: value})
	}
	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Name < tags[j].Name
	})
	return tags
}

// LoadExifTags reads every non-empty EXIF tag of the image at path.
func LoadExifTags(path string) (tags []ExifTag, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn.Printf("Exif decoder failed on '%s': %v", path, r)
			tags, err = nil, fmt.Errorf("corrupt exif data in '%s': %v", path, r)
		}
	}()

	fileForExif, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fileForExif.Close()

	decodedExif, err := exif.Decode(fileForExif)
	if err != nil {
		logger.Debug.Printf("Could not decode Exif data of '%s': %s", path, err)
		return nil, err
	}

	walker := NewMapExifWalker()
	if err := decodedExif.Walk(walker); err != nil {
		return nil, err
	}
	return walker.Tags(), nil
}
