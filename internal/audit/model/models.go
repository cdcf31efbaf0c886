package model

import (
	"errors"
	"fmt"
	"time"
)

// CarbonScope follows the GHG Protocol categories. The string values are
// part of the analysis wire contract and must not change.
type CarbonScope string

const (
	Scope1 CarbonScope = "Scope 1"
	Scope2 CarbonScope = "Scope 2"
	Scope3 CarbonScope = "Scope 3"
)

// CertificationLevel is the peer-comparison rank assigned to a report.
type CertificationLevel string

const (
	CertBronze   CertificationLevel = "Bronze"
	CertSilver   CertificationLevel = "Silver"
	CertGold     CertificationLevel = "Gold"
	CertPlatinum CertificationLevel = "Platinum"
)

// Trend indicates the direction of a business's footprint.
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// DataPoint is a single extracted emission metric.
type DataPoint struct {
	Source      string      `json:"source"`
	Value       float64     `json:"value"`
	Unit        string      `json:"unit"`
	Description string      `json:"description"`
	Scope       CarbonScope `json:"scope"`
}

// QuickWin is a recommended low-effort reduction action with an
// associated financial-savings estimate.
type QuickWin struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Impact        string `json:"impact"`     // High | Medium | Low
	Difficulty    string `json:"difficulty"` // Easy | Moderate | Challenging
	Category      string `json:"category"`   // Energy | Logistics | Waste | Procurement
	FinancialSave string `json:"financialSave"`
	TaxBenefit    string `json:"taxBenefit,omitempty"`
}

// Supplier carries a drafted carbon-report request email.
type Supplier struct {
	Name       string `json:"name"`
	EmailDraft string `json:"emailDraft"`
}

// ScopeBreakdown holds per-scope emission subtotals in kg CO2e.
type ScopeBreakdown struct {
	Scope1 float64 `json:"scope1"`
	Scope2 float64 `json:"scope2"`
	Scope3 float64 `json:"scope3"`
}

// SolarROI is the optional solar payback projection.
type SolarROI struct {
	PaybackMonths  float64 `json:"paybackMonths"`
	EstimatedCost  float64 `json:"estimatedCost"`
	MonthlySaving  float64 `json:"monthlySaving"`
	SolarPotential string  `json:"solarPotential"` // High | Medium | Low
}

// AuditResult is the canonical report. Created exactly once by the
// assembly pipeline and immutable thereafter except for deletion.
type AuditResult struct {
	ID                   string             `json:"id"`
	UserID               string             `json:"userId"`
	BusinessName         string             `json:"businessName"`
	Industry             string             `json:"industry"`
	AuditDate            time.Time          `json:"auditDate"`
	EstimatedCarbonScore float64            `json:"estimatedCarbonScore"`
	IndustryBenchmark    float64            `json:"industryBenchmark"`
	CertificationLevel   CertificationLevel `json:"certificationLevel"`
	Trend                Trend              `json:"trend"`
	DataPoints           []DataPoint        `json:"dataPoints"`
	QuickWins            []QuickWin         `json:"quickWins"`
	Suppliers            []Supplier         `json:"suppliers"`
	Summary              string             `json:"summary"`
	ScopeBreakdown       ScopeBreakdown     `json:"scopeBreakdown"`
	SolarROI             *SolarROI          `json:"solarROI,omitempty"`
}

// Location is an optional lat/lng context for solar and benchmark hints.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Document is the payload handed to the analyzer. Exactly one of Text or
// Data is set: textual CSV content travels as raw text, binary content
// (PDF/image) as bytes for the transport layer to encode.
type Document struct {
	Text     string
	Data     []byte
	MimeType string
}

// RawReport is the weakly-typed shape of the external analysis response.
// Optional fields are pointers so that an explicit zero survives while an
// absent field is defaulted at the boundary. This shape never leaks past
// the assembly step.
type RawReport struct {
	BusinessName         string      `json:"businessName"`
	Industry             string      `json:"industry"`
	EstimatedCarbonScore *float64    `json:"estimatedCarbonScore"`
	IndustryBenchmark    *float64    `json:"industryBenchmark"`
	CertificationLevel   string      `json:"certificationLevel"`
	DataPoints           []DataPoint `json:"dataPoints"`
	QuickWins            []QuickWin  `json:"quickWins"`
	Suppliers            []Supplier  `json:"suppliers"`
	SolarROI             *SolarROI   `json:"solarROI"`
	Summary              string      `json:"summary"`
}

// ErrUnsupportedFormat rejects uploads outside the allow-list before any
// network call is made.
var ErrUnsupportedFormat = errors.New("unsupported document format: upload a PDF, CSV, or image")

// AnalysisError wraps any failure of the external call or of parsing its
// response into the expected schema.
type AnalysisError struct {
	Cause error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("document analysis failed: %v", e.Cause)
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}
