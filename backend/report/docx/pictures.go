package docx

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	"vincit.fi/photo-report/api/apitype"
	"vincit.fi/photo-report/common/logger"
	"vincit.fi/photo-report/common/util"
)

var contentTypes = map[string]string{
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"tiff": "image/tiff",
}

type picture struct {
	relationId string
	partName   string
	extension  string
	data       []byte
	width      int
	height     int
}

// extent returns the drawing size in EMU for the given height. Aspect ratio
// is kept.
func (s *picture) extent(heightCm float64) (cx int64, cy int64) {
	cy = emu(heightCm)
	cx = int64(math.Round(float64(cy) * float64(s.width) / float64(s.height)))
	return
}

type pictures struct {
	byPath map[string]*picture
	order  []*picture
}

// collectPictures loads every picture the plan refers to. A path used more
// than once is loaded and embedded once.
func collectPictures(plan *apitype.ReportPlan) (*pictures, error) {
	collected := &pictures{byPath: map[string]*picture{}}
	for _, page := range plan.Pages {
		for _, slot := range page.Slots {
			if _, ok := collected.byPath[slot.ImagePath]; ok {
				continue
			}
			loaded, err := loadPicture(slot.ImagePath, len(collected.order)+1)
			if err != nil {
				return nil, err
			}
			collected.byPath[slot.ImagePath] = loaded
			collected.order = append(collected.order, loaded)
		}
	}
	return collected, nil
}

func (s *pictures) get(path string) *picture {
	return s.byPath[path]
}

func (s *pictures) extensions() []string {
	extensions := util.NewSet[string]()
	for _, p := range s.order {
		extensions.Add(p.extension)
	}
	return extensions.Values()
}

func loadPicture(path string, index int) (*picture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading picture '%s': %s", apitype.ErrIO, path, err)
	}

	config, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: decoding picture '%s': %s", apitype.ErrIO, path, err)
	} else if _, ok := contentTypes[format]; !ok {
		return nil, fmt.Errorf("%w: unsupported picture format '%s' in '%s'", apitype.ErrIO, format, path)
	} else if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("%w: picture '%s' has no size", apitype.ErrIO, path)
	}

	logger.Trace.Printf("Embedding '%s' (%s, %dx%d)", path, format, config.Width, config.Height)
	return &picture{
		relationId: fmt.Sprintf("rIdImage%d", index),
		partName:   fmt.Sprintf("image%d.%s", index, format),
		extension:  format,
		data:       data,
		width:      config.Width,
		height:     config.Height,
	}, nil
}
