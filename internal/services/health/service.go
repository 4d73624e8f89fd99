package health

import "resume-matcher/internal/matching/taxonomy"

// TaxonomyInfo identifies the taxonomy the process is serving.
type TaxonomyInfo struct {
	Source   string `json:"source"`
	Checksum string `json:"checksum"`
	Terms    int    `json:"terms"`
}

// Status is the health payload.
type Status struct {
	OK       bool         `json:"ok"`
	Taxonomy TaxonomyInfo `json:"taxonomy"`
}

// Service encapsulates health-related checks.
type Service struct {
	info TaxonomyInfo
}

// NewService constructs a new health service. The checksum is computed once
// since the taxonomy never changes after startup.
func NewService(source string, tax *taxonomy.Taxonomy) *Service {
	s := &Service{info: TaxonomyInfo{Source: source}}
	if tax != nil {
		s.info.Checksum = tax.Checksum()
		s.info.Terms = tax.Len()
	}
	return s
}

// Status returns the health payload.
func (s *Service) Status() Status {
	return Status{OK: s.info.Terms > 0, Taxonomy: s.info}
}
