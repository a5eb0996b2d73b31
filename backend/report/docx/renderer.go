// Package docx writes a report plan as an Office Open XML word processing
// document.
package docx

import (
	"archive/zip"
	"fmt"
	"io"

	"vincit.fi/photo-report/api"
	"vincit.fi/photo-report/api/apitype"
	"vincit.fi/photo-report/common/logger"
	"vincit.fi/photo-report/common/util"
)

type part struct {
	name string
	data []byte
}

type Renderer struct {
	api.ReportRenderer
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes the document to w. Every picture of the plan is read before
// anything is written.
func (s *Renderer) Render(plan *apitype.ReportPlan, w io.Writer) error {
	if plan == nil {
		plan = &apitype.ReportPlan{}
	}

	collected, err := collectPictures(plan)
	if err != nil {
		logger.Error.Printf("Could not load pictures: %s", err)
		return err
	}

	archive := zip.NewWriter(w)
	parts := []part{
		{partContentTypes, contentTypesXml(collected)},
		{partPackageRels, packageRelsXml()},
		{partDocument, documentXml(plan, collected)},
		{partDocumentRels, documentRelsXml(collected)},
		{partStyles, stylesXml(plan.Geometry)},
	}
	for _, p := range collected.order {
		parts = append(parts, part{partMediaDirectory + p.partName, p.data})
	}

	for _, documentPart := range parts {
		logger.Trace.Printf("Writing part '%s' (%d bytes)", documentPart.name, len(documentPart.data))
		if partWriter, err := archive.Create(documentPart.name); err != nil {
			return fmt.Errorf("%w: creating part '%s': %s", apitype.ErrIO, documentPart.name, err)
		} else if _, err := partWriter.Write(documentPart.data); err != nil {
			return fmt.Errorf("%w: writing part '%s': %s", apitype.ErrIO, documentPart.name, err)
		}
	}

	if err := archive.Close(); err != nil {
		return fmt.Errorf("%w: finishing document: %s", apitype.ErrIO, err)
	}
	return nil
}

// Save renders into a temporary file next to path and renames it over path.
func (s *Renderer) Save(plan *apitype.ReportPlan, path string) error {
	logger.Debug.Printf("Rendering %d pages into '%s'", plan.PageCount(), path)
	return util.WriteAtomic(path, func(w io.Writer) error {
		return s.Render(plan, w)
	})
}
