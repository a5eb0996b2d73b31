package api

import (
	"image"

	"vincit.fi/photo-report/api/apitype"
)

type ImageLoader interface {
	LoadImage(path string) (image.Image, error)
	// LoadImageScaled fits the image inside box without upscaling.
	LoadImageScaled(path string, box apitype.Size) (image.Image, error)
	SaveScaled(path string, box apitype.Size, out string) (apitype.Size, error)
}
