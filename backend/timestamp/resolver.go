package timestamp

import (
	"errors"
	"fmt"
	"strconv"

	"vincit.fi/photo-report/api"
	"vincit.fi/photo-report/api/apitype"
	"vincit.fi/photo-report/common/logger"
	"vincit.fi/photo-report/common/util"
)

// Fallback is rendered when the capture time of an image cannot be used.
const Fallback = "年月日時分秒"

// rocEpochOffset converts a Gregorian year into a Minguo (ROC) year.
const rocEpochOffset = 1911

var errMetadataUnavailable = errors.New("metadata unavailable")

// resolution is the outcome of reading image metadata: either a value or the
// fallback together with the reason.
type resolution struct {
	value    string
	fallback bool
	cause    error
}

func resolved(value string) resolution {
	return resolution{value: value}
}

func fallback(cause error) resolution {
	return resolution{value: Fallback, fallback: true, cause: cause}
}

type ExifCaptureTimeReader struct {
	api.CaptureTimeReader
}

func (s *ExifCaptureTimeReader) ReadCaptureTime(path string) (string, error) {
	return util.LoadCaptureTime(path)
}

type Resolver struct {
	reader api.CaptureTimeReader

	api.TimestampResolver
}

func NewResolver(reader api.CaptureTimeReader) *Resolver {
	return &Resolver{
		reader: reader,
	}
}

func NewExifResolver() *Resolver {
	return NewResolver(&ExifCaptureTimeReader{})
}

// Resolve returns the display text of the record's timestamp, e.g.
// 108年09月29日17時12分17秒.
func (s *Resolver) Resolve(record *apitype.ImageRecord) string {
	if record == nil {
		return Fallback
	}

	if !record.UseImageTime() {
		return Format(record.Time())
	}

	result := s.fromCaptureTime(record.Path())
	if result.fallback {
		logger.Debug.Printf("Using fallback time for '%s': %s", record.Path(), result.cause)
	}
	return result.value
}

func (s *Resolver) fromCaptureTime(path string) resolution {
	if s.reader == nil {
		return fallback(errMetadataUnavailable)
	}

	if value, err := s.reader.ReadCaptureTime(path); err != nil {
		return fallback(fmt.Errorf("%w: %s", errMetadataUnavailable, err))
	} else if captureTime, err := apitype.ParseCaptureTime(value); err != nil {
		return fallback(fmt.Errorf("%w: %s", errMetadataUnavailable, err))
	} else {
		return resolved(FormatCaptureTime(captureTime))
	}
}

// Format renders the user entered values verbatim.
func Format(values apitype.TimeValues) string {
	return values.Year + "年" + values.Month + "月" + values.Day + "日" +
		values.Hour + "時" + values.Minute + "分" + values.Second + "秒"
}

func FormatCaptureTime(captureTime *apitype.CaptureTime) string {
	return Format(apitype.TimeValues{
		Year:   strconv.Itoa(captureTime.Year() - rocEpochOffset),
		Month:  captureTime.Month(),
		Day:    captureTime.Day(),
		Hour:   captureTime.Hour(),
		Minute: captureTime.Minute(),
		Second: captureTime.Second(),
	})
}
