package backend

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"vincit.fi/photo-report/api"
	"vincit.fi/photo-report/api/apitype"
	"vincit.fi/photo-report/backend/preview"
	"vincit.fi/photo-report/backend/record"
	"vincit.fi/photo-report/backend/report"
	"vincit.fi/photo-report/backend/report/docx"
	"vincit.fi/photo-report/backend/timestamp"
	"vincit.fi/photo-report/common/logger"
	"vincit.fi/photo-report/common/util"
)

type Services struct {
	RecordStore       api.RecordStore
	TimestampResolver api.TimestampResolver
	ReportGenerator   api.ReportGenerator
	ImageLoader       api.ImageLoader
}

func InitializeServices(params *util.Params) *Services {
	logger.Debug.Printf("Initialize services...")
	resolver := timestamp.NewExifResolver()
	services := &Services{
		RecordStore:       record.NewStore(),
		TimestampResolver: resolver,
		ReportGenerator:   report.NewGenerator(resolver, docx.NewRenderer(), report.DefaultGeometry(params.FontName())),
		ImageLoader:       preview.NewLoader(),
	}
	services.RecordStore.SetReportTitle(params.ReportTitle())
	logger.Debug.Printf("Services initialized")
	return services
}

// Session is the state of one editing session. It is persisted as a JSON
// snapshot in the session file between commands.
type Session struct {
	params *util.Params

	*Services
}

func NewSession(params *util.Params) *Session {
	return NewSessionWithServices(params, InitializeServices(params))
}

func NewSessionWithServices(params *util.Params, services *Services) *Session {
	return &Session{
		params:   params,
		Services: services,
	}
}

func (s *Session) File() string {
	return s.params.SessionFile()
}

// Load reads the session file. A missing file starts an empty session.
func (s *Session) Load() error {
	data, err := os.ReadFile(s.File())
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info.Printf("No session in '%s', starting a new one", s.File())
		return nil
	} else if err != nil {
		return fmt.Errorf("%w: reading session '%s': %s", apitype.ErrIO, s.File(), err)
	}

	if err := s.RecordStore.ImportSnapshot(data); err != nil {
		logger.Error.Printf("Invalid session '%s': %s", s.File(), err)
		return err
	}
	logger.Debug.Printf("Loaded %d records from '%s'", s.RecordStore.Len(), s.File())
	return nil
}

func (s *Session) Save() error {
	logger.Debug.Printf("Saving %d records to '%s'", s.RecordStore.Len(), s.File())
	return s.Export(s.File())
}

// Export writes the records in list order as a JSON snapshot.
func (s *Session) Export(path string) error {
	if data, err := s.RecordStore.ExportSnapshot(s.RecordStore.Order()); err != nil {
		return err
	} else {
		return util.WriteFileAtomic(path, data)
	}
}

// Import replaces all records with the snapshot in path. Malformed data leaves
// the session empty.
func (s *Session) Import(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: reading '%s': %s", apitype.ErrIO, path, err)
	}
	return s.RecordStore.ImportSnapshot(data)
}

// Job snapshots the records in list order.
func (s *Session) Job() (*apitype.ReportJob, error) {
	records, err := s.RecordStore.ExportOrdered(s.RecordStore.Order())
	if err != nil {
		return nil, err
	}
	return apitype.NewReportJob(s.RecordStore.ReportTitle(), records), nil
}

// Report writes the document of the current job and returns its page count.
func (s *Session) Report(path string) (int, error) {
	job, err := s.Job()
	if err != nil {
		return 0, err
	}
	if err := s.ReportGenerator.Generate(job, path); err != nil {
		return 0, err
	}
	return report.PageCount(job.Len()), nil
}

func (s *Session) Resolve(id apitype.RecordId) (string, error) {
	if imageRecord, err := s.RecordStore.Get(id); err != nil {
		return "", err
	} else {
		return s.TimestampResolver.Resolve(imageRecord), nil
	}
}

// Preview writes the image of the record scaled into box.
func (s *Session) Preview(id apitype.RecordId, box apitype.Size, out string) (apitype.Size, error) {
	if imageRecord, err := s.RecordStore.Get(id); err != nil {
		return apitype.Size{}, err
	} else {
		return s.ImageLoader.SaveScaled(imageRecord.Path(), box, out)
	}
}
