package util

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"vincit.fi/photo-report/api/apitype"
)

const (
	DefaultSessionFile   = "photo-report.json"
	DefaultLogLevel      = "INFO"
	DefaultFontName      = "標楷體"
	DefaultPreviewWidth  = 800
	DefaultPreviewHeight = 560

	EnvLogLevel    = "PHOTO_REPORT_LOG_LEVEL"
	EnvSessionFile = "PHOTO_REPORT_SESSION"
)

type Params struct {
	sessionFile   string
	logLevel      string
	reportTitle   string
	fontName      string
	previewWidth  int
	previewHeight int
}

type fileParams struct {
	Session  string `yaml:"session"`
	LogLevel string `yaml:"logLevel"`
	Title    string `yaml:"title"`
	Font     string `yaml:"font"`
	Preview  struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"preview"`
}

func NewParams() *Params {
	return &Params{
		sessionFile:   DefaultSessionFile,
		logLevel:      DefaultLogLevel,
		fontName:      DefaultFontName,
		previewWidth:  DefaultPreviewWidth,
		previewHeight: DefaultPreviewHeight,
	}
}

// LoadFile overlays values set in a YAML file. Keys missing from the file keep
// their current value.
func (s *Params) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: reading config '%s': %s", apitype.ErrIO, path, err)
	}
	return s.LoadYaml(data)
}

func (s *Params) LoadYaml(data []byte) error {
	var values fileParams
	if err := yaml.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if values.Session != "" {
		s.sessionFile = values.Session
	}
	if values.LogLevel != "" {
		s.logLevel = values.LogLevel
	}
	if values.Title != "" {
		s.reportTitle = values.Title
	}
	if values.Font != "" {
		s.fontName = values.Font
	}
	if values.Preview.Width > 0 {
		s.previewWidth = values.Preview.Width
	}
	if values.Preview.Height > 0 {
		s.previewHeight = values.Preview.Height
	}
	return nil
}

// ApplyEnvironment overlays the values found with lookup, usually os.LookupEnv.
func (s *Params) ApplyEnvironment(lookup func(string) (string, bool)) {
	if value, ok := lookup(EnvLogLevel); ok && value != "" {
		s.logLevel = value
	}
	if value, ok := lookup(EnvSessionFile); ok && value != "" {
		s.sessionFile = value
	}
}

func (s *Params) SetSessionFile(value string) {
	s.sessionFile = value
}

func (s *Params) SetLogLevel(value string) {
	s.logLevel = value
}

func (s *Params) SetReportTitle(value string) {
	s.reportTitle = value
}

func (s *Params) SessionFile() string {
	return s.sessionFile
}

func (s *Params) LogLevel() string {
	return s.logLevel
}

func (s *Params) ReportTitle() string {
	return s.reportTitle
}

func (s *Params) FontName() string {
	return s.fontName
}

func (s *Params) PreviewSize() apitype.Size {
	return apitype.SizeOf(s.previewWidth, s.previewHeight)
}
