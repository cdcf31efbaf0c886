package audit

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Analyzer extracts a raw sustainability report from an uploaded
// document. Implementations own the transport and prompt details.
type Analyzer interface {
	Analyze(ctx context.Context, doc Document, loc *Location) (*RawReport, error)
}

// allowedMimeTypes is the upload allow-list. CSV files are additionally
// accepted by filename extension because browsers report inconsistent
// MIME types for them.
var allowedMimeTypes = map[string]bool{
	"application/pdf": true,
	"text/csv":        true,
	"image/png":       true,
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/webp":      true,
}

// SubmitRequest carries one uploaded document through the pipeline.
type SubmitRequest struct {
	FileName string
	MimeType string
	Data     []byte
	OwnerID  string
	Location *Location
}

// Service runs the audit assembly pipeline: validate the upload, hand it
// to the analyzer, and normalize the weakly-typed response into a
// canonical report. Persisting the report is the caller's concern.
type Service struct {
	analyzer Analyzer
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(analyzer Analyzer, logger *zap.Logger) *Service {
	return &Service{
		analyzer: analyzer,
		logger:   logger,
		now:      time.Now,
	}
}

// Submit processes an uploaded document into an AuditResult. Unsupported
// formats are rejected before any analyzer call.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*AuditResult, error) {
	isCSV := strings.HasSuffix(strings.ToLower(req.FileName), ".csv")
	if !isCSV && !allowedMimeTypes[strings.ToLower(req.MimeType)] {
		return nil, ErrUnsupportedFormat
	}

	doc := Document{MimeType: req.MimeType}
	if isCSV || strings.EqualFold(req.MimeType, "text/csv") {
		// CSV content travels as raw text so the model reads the rows
		// directly instead of an opaque attachment.
		doc.Text = string(req.Data)
		doc.MimeType = "text/csv"
	} else {
		doc.Data = req.Data
	}

	raw, err := s.analyzer.Analyze(ctx, doc, req.Location)
	if err != nil {
		s.logger.Error("Document analysis failed",
			zap.String("file", req.FileName),
			zap.Error(err))
		return nil, &AnalysisError{Cause: err}
	}

	result := s.assemble(raw, req.OwnerID)

	s.logger.Info("Audit completed",
		zap.String("audit_id", result.ID),
		zap.String("user_id", req.OwnerID),
		zap.Float64("score", result.EstimatedCarbonScore))

	return result, nil
}

// assemble turns a raw analysis response into the canonical report,
// filling defaults for absent fields and deriving computed ones.
func (s *Service) assemble(raw *RawReport, ownerID string) *AuditResult {
	result := &AuditResult{
		ID:                 uuid.NewString(),
		UserID:             ownerID,
		BusinessName:       raw.BusinessName,
		Industry:           raw.Industry,
		AuditDate:          s.now().UTC(),
		CertificationLevel: CertificationLevel(raw.CertificationLevel),
		DataPoints:         raw.DataPoints,
		QuickWins:          raw.QuickWins,
		Suppliers:          raw.Suppliers,
		Summary:            raw.Summary,
		SolarROI:           raw.SolarROI,
	}

	if result.BusinessName == "" {
		result.BusinessName = "Unknown Business"
	}
	if result.Industry == "" {
		result.Industry = "General SME"
	}
	if raw.EstimatedCarbonScore != nil {
		result.EstimatedCarbonScore = *raw.EstimatedCarbonScore
	}
	result.IndustryBenchmark = 50
	if raw.IndustryBenchmark != nil {
		result.IndustryBenchmark = *raw.IndustryBenchmark
	}
	switch result.CertificationLevel {
	case CertBronze, CertSilver, CertGold, CertPlatinum:
	default:
		result.CertificationLevel = CertBronze
	}
	if result.Summary == "" {
		result.Summary = "Analysis complete."
	}
	if result.DataPoints == nil {
		result.DataPoints = []DataPoint{}
	}
	if result.QuickWins == nil {
		result.QuickWins = []QuickWin{}
	}
	if result.Suppliers == nil {
		result.Suppliers = []Supplier{}
	}

	result.Trend = deriveTrend(result.IndustryBenchmark)
	result.ScopeBreakdown = breakdownFromDataPoints(result.DataPoints, result.EstimatedCarbonScore)

	return result
}

// deriveTrend reads the benchmark position: below the median peer the
// footprint trends down, above it up.
func deriveTrend(benchmark float64) Trend {
	switch {
	case benchmark < 50:
		return TrendDown
	case benchmark > 50:
		return TrendUp
	default:
		return TrendNeutral
	}
}

// breakdownFromDataPoints sums data point values per scope. A scope with
// no data points at all gets a proportional share of the overall score
// (20/50/30 for scopes 1/2/3) so the chart never renders empty.
func breakdownFromDataPoints(points []DataPoint, score float64) ScopeBreakdown {
	var b ScopeBreakdown
	var n1, n2, n3 int
	for _, p := range points {
		switch p.Scope {
		case Scope1:
			b.Scope1 += p.Value
			n1++
		case Scope2:
			b.Scope2 += p.Value
			n2++
		case Scope3:
			b.Scope3 += p.Value
			n3++
		}
	}
	if n1 == 0 {
		b.Scope1 = score * 0.2
	}
	if n2 == 0 {
		b.Scope2 = score * 0.5
	}
	if n3 == 0 {
		b.Scope3 = score * 0.3
	}
	return b
}
