package api

import (
	"io"

	"vincit.fi/photo-report/api/apitype"
)

type ReportRenderer interface {
	Render(plan *apitype.ReportPlan, w io.Writer) error
	// Save never leaves a partially written document at path.
	Save(plan *apitype.ReportPlan, path string) error
}

type ReportGenerator interface {
	Plan(job *apitype.ReportJob) *apitype.ReportPlan
	Generate(job *apitype.ReportJob, path string) error
}
