package apitype

import (
	"fmt"
	"strings"
)

// RecordId identifies an image record. It is the image's file path.
type RecordId string

type TimeField string

const (
	Year   TimeField = "year"
	Month  TimeField = "month"
	Day    TimeField = "day"
	Hour   TimeField = "hour"
	Minute TimeField = "minute"
	Second TimeField = "second"
)

var timeFields = []TimeField{Year, Month, Day, Hour, Minute, Second}

func TimeFields() []TimeField {
	fields := make([]TimeField, len(timeFields))
	copy(fields, timeFields)
	return fields
}

func ParseTimeField(name string) (TimeField, error) {
	for _, field := range timeFields {
		if string(field) == name {
			return field, nil
		}
	}
	return "", fmt.Errorf("%w: '%s' is not one of %s", ErrInvalidField, name, joinTimeFields())
}

func joinTimeFields() string {
	names := make([]string, len(timeFields))
	for i, field := range timeFields {
		names[i] = string(field)
	}
	return strings.Join(names, ", ")
}

// TimeValues holds the user entered timestamp. Values are free-form and are
// never validated or padded.
type TimeValues struct {
	Year   string `json:"year"`
	Month  string `json:"month"`
	Day    string `json:"day"`
	Hour   string `json:"hour"`
	Minute string `json:"minute"`
	Second string `json:"second"`
}

func (s TimeValues) Get(field TimeField) string {
	switch field {
	case Year:
		return s.Year
	case Month:
		return s.Month
	case Day:
		return s.Day
	case Hour:
		return s.Hour
	case Minute:
		return s.Minute
	case Second:
		return s.Second
	}
	return ""
}

func (s *TimeValues) Set(field TimeField, value string) error {
	switch field {
	case Year:
		s.Year = value
	case Month:
		s.Month = value
	case Day:
		s.Day = value
	case Hour:
		s.Hour = value
	case Minute:
		s.Minute = value
	case Second:
		s.Second = value
	default:
		return fmt.Errorf("%w: '%s'", ErrInvalidField, field)
	}
	return nil
}

type ImageRecord struct {
	id           RecordId
	time         TimeValues
	useImageTime bool
	rotateImage  bool
}

func NewImageRecord(id RecordId) *ImageRecord {
	return &ImageRecord{id: id}
}

func NewImageRecordWithValues(id RecordId, time TimeValues, useImageTime bool, rotateImage bool) *ImageRecord {
	return &ImageRecord{
		id:           id,
		time:         time,
		useImageTime: useImageTime,
		rotateImage:  rotateImage,
	}
}

func (s *ImageRecord) Id() RecordId {
	return s.id
}

func (s *ImageRecord) Path() string {
	return string(s.id)
}

func (s *ImageRecord) Time() TimeValues {
	return s.time
}

func (s *ImageRecord) UseImageTime() bool {
	return s.useImageTime
}

// RotateImage is stored and exported but not applied when rendering.
func (s *ImageRecord) RotateImage() bool {
	return s.rotateImage
}

func (s *ImageRecord) SetTime(field TimeField, value string) error {
	return s.time.Set(field, value)
}

func (s *ImageRecord) SetUseImageTime(value bool) {
	s.useImageTime = value
}

func (s *ImageRecord) SetRotateImage(value bool) {
	s.rotateImage = value
}

func (s *ImageRecord) Copy() *ImageRecord {
	if s == nil {
		return nil
	}
	copied := *s
	return &copied
}

func (s *ImageRecord) String() string {
	if s == nil {
		return "ImageRecord<nil>"
	}
	return "ImageRecord{" + string(s.id) + "}"
}
