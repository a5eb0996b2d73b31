package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"vincit.fi/photo-report/api/apitype"
)

func initSUT(paths ...string) *Store {
	sut := NewStore()
	sut.Add(paths)
	return sut
}

func TestStore_Add(t *testing.T) {
	a := assert.New(t)

	t.Run("Defaults", func(t *testing.T) {
		sut := initSUT("a.jpg", "b.jpg")

		a.Equal(2, sut.Len())
		a.Equal([]apitype.RecordId{"a.jpg", "b.jpg"}, sut.Order())

		record, err := sut.Get("a.jpg")
		if a.Nil(err) {
			a.Equal(apitype.RecordId("a.jpg"), record.Id())
			a.Equal(apitype.TimeValues{}, record.Time())
			a.False(record.UseImageTime())
			a.False(record.RotateImage())
		}
	})

	t.Run("Re-adding resets values and keeps position", func(t *testing.T) {
		sut := initSUT("a.jpg", "b.jpg")
		a.Nil(sut.UpdateTimestampField("a.jpg", "year", "108"))
		a.Nil(sut.UpdateUseImageTime("a.jpg", true))

		sut.Add([]string{"c.jpg", "a.jpg"})

		a.Equal([]apitype.RecordId{"a.jpg", "b.jpg", "c.jpg"}, sut.Order())
		record, err := sut.Get("a.jpg")
		if a.Nil(err) {
			a.Equal("", record.Time().Year)
			a.False(record.UseImageTime())
		}
	})

	t.Run("Nothing", func(t *testing.T) {
		sut := initSUT()
		sut.Add(nil)
		a.Equal(0, sut.Len())
		a.Empty(sut.Order())
	})
}

func TestStore_Remove(t *testing.T) {
	a := assert.New(t)

	sut := initSUT("a.jpg", "b.jpg", "c.jpg")

	t.Run("Existing", func(t *testing.T) {
		a.Nil(sut.Remove("b.jpg"))
		a.Equal([]apitype.RecordId{"a.jpg", "c.jpg"}, sut.Order())
		a.Equal(2, sut.Len())
	})

	t.Run("Get after remove", func(t *testing.T) {
		_, err := sut.Get("b.jpg")
		a.ErrorIs(err, apitype.ErrKeyNotFound)
	})

	t.Run("Missing", func(t *testing.T) {
		a.ErrorIs(sut.Remove("b.jpg"), apitype.ErrKeyNotFound)
		a.Equal(2, sut.Len())
	})
}

func TestStore_Get_ReturnsCopy(t *testing.T) {
	a := assert.New(t)

	sut := initSUT("a.jpg")

	record, err := sut.Get("a.jpg")
	require.Nil(t, err)
	a.Nil(record.SetTime(apitype.Year, "999"))
	record.SetRotateImage(true)

	stored, err := sut.Get("a.jpg")
	require.Nil(t, err)
	a.Equal("", stored.Time().Year)
	a.False(stored.RotateImage())
}

func TestStore_UpdateTimestampField(t *testing.T) {
	a := assert.New(t)

	sut := initSUT("a.jpg")

	t.Run("All fields", func(t *testing.T) {
		values := map[string]string{
			"year": "108", "month": "09", "day": "29", "hour": "17", "minute": "12", "second": "17",
		}
		for field, value := range values {
			a.Nil(sut.UpdateTimestampField("a.jpg", field, value))
		}

		record, err := sut.Get("a.jpg")
		if a.Nil(err) {
			a.Equal(apitype.TimeValues{Year: "108", Month: "09", Day: "29", Hour: "17", Minute: "12", Second: "17"}, record.Time())
		}
	})

	t.Run("Value is stored verbatim", func(t *testing.T) {
		a.Nil(sut.UpdateTimestampField("a.jpg", "minute", " 5x"))
		record, _ := sut.Get("a.jpg")
		a.Equal(" 5x", record.Time().Minute)
	})

	t.Run("Invalid field", func(t *testing.T) {
		a.ErrorIs(sut.UpdateTimestampField("a.jpg", "week", "1"), apitype.ErrInvalidField)
	})

	t.Run("Missing id is reported before invalid field", func(t *testing.T) {
		a.ErrorIs(sut.UpdateTimestampField("x.jpg", "week", "1"), apitype.ErrKeyNotFound)
	})
}

func TestStore_FlagSetters(t *testing.T) {
	a := assert.New(t)

	sut := initSUT("a.jpg")

	a.Nil(sut.UpdateUseImageTime("a.jpg", true))
	a.Nil(sut.UpdateRotateImage("a.jpg", true))

	record, err := sut.Get("a.jpg")
	if a.Nil(err) {
		a.True(record.UseImageTime())
		a.True(record.RotateImage())
	}

	a.Nil(sut.UpdateUseImageTime("a.jpg", false))
	record, _ = sut.Get("a.jpg")
	a.False(record.UseImageTime())
	a.True(record.RotateImage())

	a.ErrorIs(sut.UpdateUseImageTime("x.jpg", true), apitype.ErrKeyNotFound)
	a.ErrorIs(sut.UpdateRotateImage("x.jpg", true), apitype.ErrKeyNotFound)
}

func TestStore_ReportTitle(t *testing.T) {
	a := assert.New(t)

	sut := initSUT()
	a.Equal("", sut.ReportTitle())

	sut.SetReportTitle("工程照片")
	a.Equal("工程照片", sut.ReportTitle())
}

func TestStore_Move(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		name string
		from int
		to   int
		want []apitype.RecordId
	}{
		{name: "Down", from: 0, to: 2, want: []apitype.RecordId{"b", "c", "a", "d"}},
		{name: "Up", from: 3, to: 1, want: []apitype.RecordId{"a", "d", "b", "c"}},
		{name: "Neighbour", from: 1, to: 2, want: []apitype.RecordId{"a", "c", "b", "d"}},
		{name: "Same", from: 2, to: 2, want: []apitype.RecordId{"a", "b", "c", "d"}},
		{name: "Last to first", from: 3, to: 0, want: []apitype.RecordId{"d", "a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sut := initSUT("a", "b", "c", "d")
			a.Nil(sut.Move(tt.from, tt.to))
			a.Equal(tt.want, sut.Order())
			a.Equal(4, sut.Len())
		})
	}

	t.Run("Out of range", func(t *testing.T) {
		sut := initSUT("a", "b")
		a.ErrorIs(sut.Move(0, 2), apitype.ErrOutOfRange)
		a.ErrorIs(sut.Move(-1, 0), apitype.ErrOutOfRange)
		a.Equal([]apitype.RecordId{"a", "b"}, sut.Order())
	})
}

func TestStore_ExportOrdered(t *testing.T) {
	a := assert.New(t)

	sut := initSUT("a.jpg", "b.jpg", "c.jpg")

	t.Run("Given order", func(t *testing.T) {
		records, err := sut.ExportOrdered([]apitype.RecordId{"c.jpg", "a.jpg"})
		if a.Nil(err) && a.Equal(2, len(records)) {
			a.Equal(apitype.RecordId("c.jpg"), records[0].Id())
			a.Equal(apitype.RecordId("a.jpg"), records[1].Id())
		}
	})

	t.Run("Unknown id", func(t *testing.T) {
		records, err := sut.ExportOrdered([]apitype.RecordId{"a.jpg", "x.jpg"})
		a.ErrorIs(err, apitype.ErrKeyNotFound)
		a.Nil(records)
	})

	t.Run("Empty", func(t *testing.T) {
		records, err := sut.ExportOrdered(nil)
		a.Nil(err)
		a.Empty(records)
	})
}

func TestStore_ImportOrdered(t *testing.T) {
	a := assert.New(t)

	sut := initSUT("old.jpg")
	sut.SetReportTitle("Title")

	sut.ImportOrdered([]*apitype.ImageRecord{
		apitype.NewImageRecordWithValues("b.jpg", apitype.TimeValues{Year: "110"}, true, false),
		apitype.NewImageRecord("a.jpg"),
	})

	a.Equal([]apitype.RecordId{"b.jpg", "a.jpg"}, sut.Order())
	a.Equal(2, sut.Len())
	a.Equal("Title", sut.ReportTitle())

	_, err := sut.Get("old.jpg")
	a.ErrorIs(err, apitype.ErrKeyNotFound)

	record, err := sut.Get("b.jpg")
	if a.Nil(err) {
		a.Equal("110", record.Time().Year)
		a.True(record.UseImageTime())
	}
}

func TestStore_ImportOrdered_SkipsNil(t *testing.T) {
	a := assert.New(t)

	sut := initSUT("old.jpg")

	a.NotPanics(func() {
		sut.ImportOrdered([]*apitype.ImageRecord{nil, apitype.NewImageRecord("a.jpg"), nil})
	})
	a.Equal([]apitype.RecordId{"a.jpg"}, sut.Order())
	a.Equal(1, sut.Len())
}
