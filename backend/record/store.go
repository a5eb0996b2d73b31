package record

import (
	"fmt"

	"vincit.fi/photo-report/api"
	"vincit.fi/photo-report/api/apitype"
	"vincit.fi/photo-report/common/logger"
)

// Store owns the image records of one session together with the list order
// and the report title. It is not safe for concurrent use.
type Store struct {
	records     map[apitype.RecordId]*apitype.ImageRecord
	order       []apitype.RecordId
	reportTitle string

	api.RecordStore
}

func NewStore() *Store {
	return &Store{
		records: map[apitype.RecordId]*apitype.ImageRecord{},
	}
}

// Add always (re)initializes the records. A path that is already loaded keeps
// its list position but loses its values.
func (s *Store) Add(paths []string) {
	for _, path := range paths {
		id := apitype.RecordId(path)
		if _, ok := s.records[id]; ok {
			logger.Debug.Printf("Reinitializing image '%s'", path)
		} else {
			s.order = append(s.order, id)
		}
		s.records[id] = apitype.NewImageRecord(id)
	}
	logger.Debug.Printf("Added %d images, %d in total", len(paths), len(s.records))
}

func (s *Store) Remove(id apitype.RecordId) error {
	if _, err := s.find(id); err != nil {
		return err
	}

	delete(s.records, id)
	for i, orderId := range s.order {
		if orderId == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	logger.Debug.Printf("Removed image '%s'", id)
	return nil
}

func (s *Store) Get(id apitype.RecordId) (*apitype.ImageRecord, error) {
	if record, err := s.find(id); err != nil {
		return nil, err
	} else {
		return record.Copy(), nil
	}
}

func (s *Store) Len() int {
	return len(s.records)
}

func (s *Store) UpdateTimestampField(id apitype.RecordId, field string, value string) error {
	if record, err := s.find(id); err != nil {
		return err
	} else if timeField, err := apitype.ParseTimeField(field); err != nil {
		return err
	} else {
		logger.Trace.Printf("Set %s of '%s' to '%s'", field, id, value)
		return record.SetTime(timeField, value)
	}
}

func (s *Store) UpdateUseImageTime(id apitype.RecordId, value bool) error {
	if record, err := s.find(id); err != nil {
		return err
	} else {
		record.SetUseImageTime(value)
		return nil
	}
}

func (s *Store) UpdateRotateImage(id apitype.RecordId, value bool) error {
	if record, err := s.find(id); err != nil {
		return err
	} else {
		record.SetRotateImage(value)
		return nil
	}
}

func (s *Store) SetReportTitle(title string) {
	s.reportTitle = title
}

func (s *Store) ReportTitle() string {
	return s.reportTitle
}

func (s *Store) Order() []apitype.RecordId {
	order := make([]apitype.RecordId, len(s.order))
	copy(order, s.order)
	return order
}

// Move takes the entry at index from and inserts it at index to, shifting the
// entries in between.
func (s *Store) Move(from int, to int) error {
	if from < 0 || from >= len(s.order) || to < 0 || to >= len(s.order) {
		return fmt.Errorf("%w: cannot move %d to %d in a list of %d", apitype.ErrOutOfRange, from, to, len(s.order))
	}
	if from == to {
		return nil
	}

	id := s.order[from]
	s.order = append(s.order[:from], s.order[from+1:]...)
	s.order = append(s.order[:to], append([]apitype.RecordId{id}, s.order[to:]...)...)
	logger.Trace.Printf("Moved '%s' from %d to %d", id, from, to)
	return nil
}

// ExportOrdered returns copies of the records in the order of ids. Nothing is
// returned if any of the ids is unknown.
func (s *Store) ExportOrdered(ids []apitype.RecordId) ([]*apitype.ImageRecord, error) {
	records := make([]*apitype.ImageRecord, 0, len(ids))
	for _, id := range ids {
		if record, err := s.find(id); err != nil {
			return nil, err
		} else {
			records = append(records, record.Copy())
		}
	}
	return records, nil
}

// ImportOrdered replaces all records and the list order. The report title is
// kept. Nil records are skipped.
func (s *Store) ImportOrdered(records []*apitype.ImageRecord) {
	s.records = map[apitype.RecordId]*apitype.ImageRecord{}
	s.order = nil
	for _, record := range records {
		if record == nil {
			continue
		} else if _, ok := s.records[record.Id()]; !ok {
			s.order = append(s.order, record.Id())
		}
		s.records[record.Id()] = record.Copy()
	}
	logger.Debug.Printf("Imported %d images", len(s.records))
}

func (s *Store) find(id apitype.RecordId) (*apitype.ImageRecord, error) {
	if record, ok := s.records[id]; ok {
		return record, nil
	}
	return nil, fmt.Errorf("%w: '%s'", apitype.ErrKeyNotFound, id)
}
