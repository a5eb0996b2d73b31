// Package preview scales record images for on-screen display.
package preview

import (
	"fmt"
	"image"
	"time"

	"github.com/disintegration/imaging"
	"vincit.fi/photo-report/api"
	"vincit.fi/photo-report/api/apitype"
	"vincit.fi/photo-report/common/logger"
)

type Loader struct {
	api.ImageLoader
}

func NewLoader() *Loader {
	return &Loader{}
}

func (s *Loader) LoadImage(path string) (image.Image, error) {
	startTime := time.Now()
	if img, err := imaging.Open(path); err != nil {
		logger.Warn.Printf("Could not open image '%s': %s", path, err)
		return nil, fmt.Errorf("%w: opening image '%s': %s", apitype.ErrIO, path, err)
	} else {
		logger.Trace.Printf("'%s': Full loaded in %s", path, time.Since(startTime))
		return img, nil
	}
}

func (s *Loader) LoadImageScaled(path string, box apitype.Size) (image.Image, error) {
	full, err := s.LoadImage(path)
	if err != nil {
		return nil, err
	}

	fullSize := apitype.SizeFromRectangle(full.Bounds())
	newSize := apitype.ScaleDownToFit(fullSize, box)
	if newSize == fullSize {
		logger.Trace.Printf("'%s': %s fits in %s", path, fullSize, box)
		return full, nil
	}

	logger.Debug.Printf("'%s': Scaling %s to %s", path, fullSize, newSize)
	return imaging.Resize(full, newSize.Width(), newSize.Height(), imaging.Linear), nil
}

// SaveScaled writes the scaled image to out. The format follows the extension
// of out.
func (s *Loader) SaveScaled(path string, box apitype.Size, out string) (apitype.Size, error) {
	scaled, err := s.LoadImageScaled(path, box)
	if err != nil {
		return apitype.Size{}, err
	}

	if err := imaging.Save(scaled, out); err != nil {
		logger.Error.Printf("Could not save preview '%s': %s", out, err)
		return apitype.Size{}, fmt.Errorf("%w: saving preview '%s': %s", apitype.ErrIO, out, err)
	}
	return apitype.SizeFromRectangle(scaled.Bounds()), nil
}
