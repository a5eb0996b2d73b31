package api

import "vincit.fi/photo-report/api/apitype"

type RecordStore interface {
	Add(paths []string)
	Remove(id apitype.RecordId) error
	Get(id apitype.RecordId) (*apitype.ImageRecord, error)
	Len() int

	UpdateTimestampField(id apitype.RecordId, field string, value string) error
	UpdateUseImageTime(id apitype.RecordId, value bool) error
	UpdateRotateImage(id apitype.RecordId, value bool) error

	SetReportTitle(title string)
	ReportTitle() string

	// Order is the user's list order. It decides the page order of reports.
	Order() []apitype.RecordId
	Move(from int, to int) error

	ExportOrdered(ids []apitype.RecordId) ([]*apitype.ImageRecord, error)
	ImportOrdered(records []*apitype.ImageRecord)

	ExportSnapshot(ids []apitype.RecordId) ([]byte, error)
	// ImportSnapshot replaces the store from JSON. On malformed input the
	// store is left empty.
	ImportSnapshot(data []byte) error
}
