package record

import (
	"bytes"
	"encoding/json"
	"fmt"

	"vincit.fi/photo-report/api/apitype"
	"vincit.fi/photo-report/common/logger"
)

const (
	keyFilePath     = "file_path"
	keyTime         = "time"
	keyUseImageTime = "use_image_time"
	keyRotateImage  = "rotate_image"
)

type snapshotEntry struct {
	FilePath     string             `json:"file_path"`
	Time         apitype.TimeValues `json:"time"`
	UseImageTime bool               `json:"use_image_time"`
	RotateImage  bool               `json:"rotate_image"`
}

func toSnapshotEntry(record *apitype.ImageRecord) snapshotEntry {
	return snapshotEntry{
		FilePath:     record.Path(),
		Time:         record.Time(),
		UseImageTime: record.UseImageTime(),
		RotateImage:  record.RotateImage(),
	}
}

// ExportSnapshot encodes the records of ids, in that order, as an indented
// JSON array.
func (s *Store) ExportSnapshot(ids []apitype.RecordId) ([]byte, error) {
	records, err := s.ExportOrdered(ids)
	if err != nil {
		return nil, err
	}

	entries := make([]snapshotEntry, len(records))
	for i, record := range records {
		entries[i] = toSnapshotEntry(record)
	}

	logger.Debug.Printf("Exporting %d images", len(entries))
	return json.MarshalIndent(entries, "", "    ")
}

// ImportSnapshot replaces the whole store with the records in data. Only the
// recognized keys of each entry are read. Any format error rejects the whole
// snapshot and leaves the store empty.
func (s *Store) ImportSnapshot(data []byte) error {
	records, err := decodeSnapshot(data)
	if err != nil {
		logger.Warn.Printf("Import data format error: %s", err)
		s.ImportOrdered(nil)
		return err
	}

	s.ImportOrdered(records)
	return nil
}

func decodeSnapshot(data []byte) ([]*apitype.ImageRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: snapshot is not a JSON array", apitype.ErrImportFormat)
	}

	var entries []map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s", apitype.ErrImportFormat, err)
	}

	records := make([]*apitype.ImageRecord, 0, len(entries))
	for i, entry := range entries {
		if record, err := decodeEntry(entry); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %s", apitype.ErrImportFormat, i, err)
		} else {
			records = append(records, record)
		}
	}
	return records, nil
}

func decodeEntry(entry map[string]json.RawMessage) (*apitype.ImageRecord, error) {
	var filePath string
	var timeValues apitype.TimeValues
	var useImageTime, rotateImage bool

	rawPath, ok := entry[keyFilePath]
	if !ok || string(bytes.TrimSpace(rawPath)) == "null" {
		return nil, fmt.Errorf("missing '%s'", keyFilePath)
	}
	if err := json.Unmarshal(rawPath, &filePath); err != nil {
		return nil, fmt.Errorf("'%s': %s", keyFilePath, err)
	}

	if err := decodeTime(entry, &timeValues); err != nil {
		return nil, err
	} else if err := decodeOptional(entry, keyUseImageTime, &useImageTime); err != nil {
		return nil, err
	} else if err := decodeOptional(entry, keyRotateImage, &rotateImage); err != nil {
		return nil, err
	}

	return apitype.NewImageRecordWithValues(apitype.RecordId(filePath), timeValues, useImageTime, rotateImage), nil
}

func decodeOptional(entry map[string]json.RawMessage, key string, target interface{}) error {
	if raw, ok := entry[key]; !ok {
		return nil
	} else if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("'%s': %s", key, err)
	}
	return nil
}

// decodeTime reads the time object. Numbers and booleans are kept as their
// JSON text and null as an empty value. Nested objects and arrays are errors.
func decodeTime(entry map[string]json.RawMessage, target *apitype.TimeValues) error {
	var fields map[string]json.RawMessage
	if err := decodeOptional(entry, keyTime, &fields); err != nil {
		return err
	}

	for _, field := range apitype.TimeFields() {
		raw, ok := fields[string(field)]
		if !ok {
			continue
		}
		if value, err := scalarText(raw); err != nil {
			return fmt.Errorf("'%s.%s': %s", keyTime, field, err)
		} else {
			_ = target.Set(field, value)
		}
	}
	return nil
}

func scalarText(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "", nil
	}
	switch trimmed[0] {
	case '"':
		var value string
		err := json.Unmarshal(trimmed, &value)
		return value, err
	case '{', '[':
		return "", fmt.Errorf("expected a string, got %s", trimmed)
	case 'n':
		return "", nil
	}
	return string(trimmed), nil
}
