package api

import "vincit.fi/photo-report/api/apitype"

// CaptureTimeReader returns the raw EXIF DateTimeOriginal value of an image.
type CaptureTimeReader interface {
	ReadCaptureTime(path string) (string, error)
}

type TimestampResolver interface {
	// Resolve never fails. Unreadable metadata yields the fallback text.
	Resolve(record *apitype.ImageRecord) string
}
