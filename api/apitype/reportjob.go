package apitype

// ReportJob is an ordered snapshot of records taken when a report is
// generated. The order of the records is the page order.
type ReportJob struct {
	title   string
	records []*ImageRecord
}

func NewReportJob(title string, records []*ImageRecord) *ReportJob {
	return &ReportJob{
		title:   title,
		records: records,
	}
}

func (s *ReportJob) Title() string {
	if s == nil {
		return ""
	}
	return s.title
}

func (s *ReportJob) Records() []*ImageRecord {
	if s == nil {
		return nil
	}
	return s.records
}

func (s *ReportJob) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}
