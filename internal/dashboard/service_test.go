package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ecotrack/audit-portal/audit-portal-backend/internal/audit"
)

// MockHistory is a mock implementation of the HistoryLister interface
type MockHistory struct {
	mock.Mock
}

func (m *MockHistory) ListFor(userID string) ([]*audit.AuditResult, error) {
	args := m.Called(userID)
	return args.Get(0).([]*audit.AuditResult), args.Error(1)
}

func fixedNow() time.Time {
	return time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
}

func TestSummarizeEmptyHistory(t *testing.T) {
	mockHistory := new(MockHistory)
	mockHistory.On("ListFor", "u1").Return([]*audit.AuditResult{}, nil)

	service := NewService(mockHistory)
	service.now = fixedNow

	summary, err := service.Summarize("u1")
	assert.NoError(t, err)
	assert.Equal(t, 0, summary.TotalAudits)
	assert.Len(t, summary.MonthlySeries, 6)
	for _, m := range summary.MonthlySeries {
		assert.Zero(t, m.Value)
	}
	assert.Equal(t, "Jan", summary.MonthlySeries[0].Month)
	assert.Equal(t, "Jun", summary.MonthlySeries[5].Month)
}

func TestSummarizeUsesLatestAudit(t *testing.T) {
	audits := []*audit.AuditResult{
		{
			ID:                   "a2",
			EstimatedCarbonScore: 120,
			IndustryBenchmark:    40,
			CertificationLevel:   audit.CertSilver,
			Trend:                audit.TrendDown,
			AuditDate:            time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:                   "a1",
			EstimatedCarbonScore: 200,
			IndustryBenchmark:    70,
			CertificationLevel:   audit.CertBronze,
			Trend:                audit.TrendUp,
			AuditDate:            time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC),
		},
	}
	mockHistory := new(MockHistory)
	mockHistory.On("ListFor", "u1").Return(audits, nil)

	service := NewService(mockHistory)
	service.now = fixedNow

	summary, err := service.Summarize("u1")
	assert.NoError(t, err)
	assert.Equal(t, 2, summary.TotalAudits)
	assert.Equal(t, 120.0, summary.LatestScore)
	assert.Equal(t, 40.0, summary.LatestBenchmark)
	assert.Equal(t, "Silver", summary.CertificationLevel)
	assert.Equal(t, "down", summary.Trend)
}

func TestSeriesSumsByCalendarMonth(t *testing.T) {
	audits := []*audit.AuditResult{
		{EstimatedCarbonScore: 100, AuditDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)},
		{EstimatedCarbonScore: 50, AuditDate: time.Date(2026, 6, 28, 0, 0, 0, 0, time.UTC)},
		{EstimatedCarbonScore: 30, AuditDate: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)},
		// Outside the six-month window
		{EstimatedCarbonScore: 999, AuditDate: time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)},
	}
	mockHistory := new(MockHistory)
	mockHistory.On("ListFor", "u1").Return(audits, nil)

	service := NewService(mockHistory)
	service.now = fixedNow

	summary, err := service.Summarize("u1")
	assert.NoError(t, err)

	// Jan Feb Mar Apr May Jun
	assert.Equal(t, 0.0, summary.MonthlySeries[0].Value)
	assert.Equal(t, 30.0, summary.MonthlySeries[1].Value)
	assert.Equal(t, 150.0, summary.MonthlySeries[5].Value)
}
