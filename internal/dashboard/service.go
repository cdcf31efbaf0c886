package dashboard

import (
	"time"

	"ecotrack/audit-portal/audit-portal-backend/internal/audit"
)

// HistoryLister supplies a user's audits, newest first.
type HistoryLister interface {
	ListFor(userID string) ([]*audit.AuditResult, error)
}

// MonthlyEmissions is one bar of the six-month trend chart.
type MonthlyEmissions struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// Summary aggregates a user's history for the dashboard view.
type Summary struct {
	TotalAudits        int                `json:"totalAudits"`
	LatestScore        float64            `json:"latestScore"`
	LatestBenchmark    float64            `json:"latestBenchmark"`
	CertificationLevel string             `json:"certificationLevel"`
	Trend              string             `json:"trend"`
	MonthlySeries      []MonthlyEmissions `json:"monthlySeries"`
}

// Service computes dashboard aggregates from the audit history.
type Service struct {
	history HistoryLister
	now     func() time.Time
}

func NewService(history HistoryLister) *Service {
	return &Service{history: history, now: time.Now}
}

// Summarize builds the dashboard summary for a user. Months with no
// audits contribute zero to the series.
func (s *Service) Summarize(userID string) (*Summary, error) {
	audits, err := s.history.ListFor(userID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalAudits:   len(audits),
		MonthlySeries: s.buildSeries(audits),
	}

	if len(audits) > 0 {
		latest := audits[0]
		summary.LatestScore = latest.EstimatedCarbonScore
		summary.LatestBenchmark = latest.IndustryBenchmark
		summary.CertificationLevel = string(latest.CertificationLevel)
		summary.Trend = string(latest.Trend)
	}

	return summary, nil
}

// buildSeries produces the six calendar months ending with the current
// one, summing the scores of audits dated in each month.
func (s *Service) buildSeries(audits []*audit.AuditResult) []MonthlyEmissions {
	now := s.now().UTC()
	// Anchor on the first of the month so stepping back never skips a
	// short month.
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	series := make([]MonthlyEmissions, 0, 6)

	for i := 5; i >= 0; i-- {
		month := anchor.AddDate(0, -i, 0)
		var total float64
		for _, a := range audits {
			d := a.AuditDate.UTC()
			if d.Year() == month.Year() && d.Month() == month.Month() {
				total += a.EstimatedCarbonScore
			}
		}
		series = append(series, MonthlyEmissions{
			Month: month.Format("Jan"),
			Value: total,
		})
	}

	return series
}
