package report

import (
	"time"

	"vincit.fi/photo-report/api"
	"vincit.fi/photo-report/api/apitype"
	"vincit.fi/photo-report/common/logger"
)

type Generator struct {
	resolver api.TimestampResolver
	renderer api.ReportRenderer
	geometry apitype.Geometry

	api.ReportGenerator
}

func NewGenerator(resolver api.TimestampResolver, renderer api.ReportRenderer, geometry apitype.Geometry) *Generator {
	return &Generator{
		resolver: resolver,
		renderer: renderer,
		geometry: geometry,
	}
}

// Resolve resolves the timestamp of every job record, keeping the job order.
func Resolve(job *apitype.ReportJob, resolver api.TimestampResolver) []apitype.ResolvedRecord {
	resolvedRecords := make([]apitype.ResolvedRecord, job.Len())
	for i, record := range job.Records() {
		resolvedRecords[i] = apitype.ResolvedRecord{
			ImagePath: record.Path(),
			Timestamp: resolver.Resolve(record),
			Position:  i,
		}
	}
	return resolvedRecords
}

func (s *Generator) Plan(job *apitype.ReportJob) *apitype.ReportPlan {
	return Layout(Resolve(job, s.resolver), job.Title(), s.geometry)
}

func (s *Generator) Generate(job *apitype.ReportJob, path string) error {
	startTime := time.Now()
	logger.Info.Printf("Generating report of %d images to '%s'", job.Len(), path)

	plan := s.Plan(job)
	logger.Debug.Printf("Laid out %d pages", plan.PageCount())

	if err := s.renderer.Save(plan, path); err != nil {
		logger.Error.Printf("Could not save report '%s': %s", path, err)
		return err
	}

	logger.Info.Printf("Report '%s' finished in %s", path, time.Since(startTime))
	return nil
}
