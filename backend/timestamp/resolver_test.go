package timestamp

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"vincit.fi/photo-report/api/apitype"
	"vincit.fi/photo-report/common/testimage"
)

type StubCaptureTimeReader struct {
	values map[string]string
	calls  int
}

func (s *StubCaptureTimeReader) ReadCaptureTime(path string) (string, error) {
	s.calls++
	if value, ok := s.values[path]; ok {
		return value, nil
	}
	return "", errors.New("no tag")
}

func TestResolver_Resolve_UserFields(t *testing.T) {
	a := assert.New(t)

	reader := &StubCaptureTimeReader{values: map[string]string{"a.jpg": "2000:01:01 00:00:00"}}
	sut := NewResolver(reader)

	t.Run("Fields verbatim", func(t *testing.T) {
		record := apitype.NewImageRecordWithValues("a.jpg", apitype.TimeValues{
			Year: "108", Month: "09", Day: "29", Hour: "17", Minute: "12", Second: "17",
		}, false, false)

		a.Equal("108年09月29日17時12分17秒", sut.Resolve(record))
	})

	t.Run("No padding or validation", func(t *testing.T) {
		record := apitype.NewImageRecordWithValues("a.jpg", apitype.TimeValues{
			Year: "2019", Month: "9", Day: "abc", Hour: "", Minute: "7", Second: "",
		}, false, false)

		a.Equal("2019年9月abc日時7分秒", sut.Resolve(record))
	})

	t.Run("Empty fields", func(t *testing.T) {
		a.Equal("年月日時分秒", sut.Resolve(apitype.NewImageRecord("a.jpg")))
	})

	a.Equal(0, reader.calls)
}

func TestResolver_Resolve_ImageTime(t *testing.T) {
	a := assert.New(t)

	reader := &StubCaptureTimeReader{values: map[string]string{
		"good.jpg":      "2019:09:29 17:12:17",
		"early.jpg":     "1911:01:01 00:00:00",
		"malformed.jpg": "2019-09-29T17:12:17",
		"blank.jpg":     "    :  :     :  :  ",
	}}
	sut := NewResolver(reader)

	tests := []struct {
		path string
		want string
	}{
		{"good.jpg", "108年09月29日17時12分17秒"},
		{"early.jpg", "0年01月01日00時00分00秒"},
		{"malformed.jpg", Fallback},
		{"blank.jpg", Fallback},
		{"missing.jpg", Fallback},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			record := apitype.NewImageRecordWithValues(apitype.RecordId(tt.path), apitype.TimeValues{Year: "1"}, true, false)
			a.Equal(tt.want, sut.Resolve(record))
		})
	}
}

func TestResolver_Resolve_Total(t *testing.T) {
	a := assert.New(t)

	t.Run("Nil record", func(t *testing.T) {
		a.Equal(Fallback, NewExifResolver().Resolve(nil))
	})
	t.Run("Nil reader", func(t *testing.T) {
		a.Equal(Fallback, NewResolver(nil).Resolve(apitype.NewImageRecordWithValues("a.jpg", apitype.TimeValues{}, true, false)))
	})
}

func TestExifResolver(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()
	sut := NewExifResolver()

	t.Run("Capture time tag", func(t *testing.T) {
		path := testimage.WriteJpeg(t, dir, "exif.jpg", 32, 24, "2019:09:29 17:12:17")
		record := apitype.NewImageRecordWithValues(apitype.RecordId(path), apitype.TimeValues{}, true, false)

		a.Equal("108年09月29日17時12分17秒", sut.Resolve(record))
	})

	t.Run("No capture time tag", func(t *testing.T) {
		path := testimage.WriteJpeg(t, dir, "plain.jpg", 32, 24, "")
		record := apitype.NewImageRecordWithValues(apitype.RecordId(path), apitype.TimeValues{}, true, false)

		a.Equal("年月日時分秒", sut.Resolve(record))
	})

	t.Run("PNG", func(t *testing.T) {
		path := testimage.WritePng(t, dir, "image.png", 32, 24)
		record := apitype.NewImageRecordWithValues(apitype.RecordId(path), apitype.TimeValues{}, true, false)

		a.Equal(Fallback, sut.Resolve(record))
	})

	t.Run("Missing image", func(t *testing.T) {
		record := apitype.NewImageRecordWithValues(apitype.RecordId(filepath.Join(dir, "none.jpg")), apitype.TimeValues{}, true, false)

		a.Equal(Fallback, sut.Resolve(record))
	})
}

func TestFormatCaptureTime(t *testing.T) {
	a := assert.New(t)

	captureTime, err := apitype.ParseCaptureTime("2024:02:29 08:05:09")
	if a.Nil(err) {
		a.Equal("113年02月29日08時05分09秒", FormatCaptureTime(captureTime))
	}
}
