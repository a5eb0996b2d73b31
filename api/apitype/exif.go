package apitype

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedCaptureTime = errors.New("malformed capture time")

// CaptureTime is the camera-recorded acquisition time split into its parts.
// Only the year is numeric; the other parts are kept exactly as they appear
// in the tag.
type CaptureTime struct {
	year   int
	month  string
	day    string
	hour   string
	minute string
	second string
}

// ParseCaptureTime parses a "YYYY:MM:DD HH:MM:SS" value. Parts beyond the
// expected ones are ignored.
func ParseCaptureTime(value string) (*CaptureTime, error) {
	value = strings.Trim(value, "\x00 ")
	dateAndTime := strings.Split(value, " ")
	if len(dateAndTime) < 2 {
		return nil, fmt.Errorf("%w: '%s' has no time part", ErrMalformedCaptureTime, value)
	}

	date := strings.Split(dateAndTime[0], ":")
	clock := strings.Split(dateAndTime[1], ":")
	if len(date) < 3 || len(clock) < 3 {
		return nil, fmt.Errorf("%w: '%s'", ErrMalformedCaptureTime, value)
	}

	if year, err := strconv.Atoi(date[0]); err != nil {
		return nil, fmt.Errorf("%w: invalid year '%s'", ErrMalformedCaptureTime, date[0])
	} else {
		return &CaptureTime{
			year:   year,
			month:  date[1],
			day:    date[2],
			hour:   clock[0],
			minute: clock[1],
			second: clock[2],
		}, nil
	}
}

func (s *CaptureTime) Year() int {
	return s.year
}

func (s *CaptureTime) Month() string {
	return s.month
}

func (s *CaptureTime) Day() string {
	return s.day
}

func (s *CaptureTime) Hour() string {
	return s.hour
}

func (s *CaptureTime) Minute() string {
	return s.minute
}

func (s *CaptureTime) Second() string {
	return s.second
}
