package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	audit "ecotrack/audit-portal/audit-portal-backend/internal/audit/model"
	"ecotrack/audit-portal/audit-portal-backend/internal/branding"
)

func sampleAudit() *audit.AuditResult {
	return &audit.AuditResult{
		ID:                   "a1",
		UserID:               "u1",
		BusinessName:         "Acme Bakery",
		Industry:             "Food Production",
		AuditDate:            time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		EstimatedCarbonScore: 420.5,
		IndustryBenchmark:    38,
		CertificationLevel:   audit.CertSilver,
		Trend:                audit.TrendDown,
		DataPoints: []audit.DataPoint{
			{Source: "Electricity", Value: 500, Unit: "kWh", Scope: audit.Scope2, Description: "Grid usage"},
			{Source: "Delivery van", Value: 120, Unit: "litres", Scope: audit.Scope1, Description: "Diesel"},
		},
		QuickWins: []audit.QuickWin{
			{
				Title:         "Switch to LED lighting",
				Description:   "Replace halogen spots in the shop floor.",
				Impact:        "Medium",
				Difficulty:    "Easy",
				Category:      "Energy",
				FinancialSave: "£40/month",
			},
		},
		Summary:        "Solid baseline with clear wins in lighting.",
		ScopeBreakdown: audit.ScopeBreakdown{Scope1: 120, Scope2: 500, Scope3: 126.15},
	}
}

func TestWriteCSVIncludesMetadataAndRows(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, sampleAudit())
	assert.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Business,Acme Bakery")
	assert.Contains(t, out, "Certification,Silver")
	assert.Contains(t, out, "Electricity,500.00,kWh,Scope 2,Grid usage")
	assert.Contains(t, out, "Delivery van,120.00,litres,Scope 1,Diesel")
}

func TestExcelExportProducesWorkbook(t *testing.T) {
	exporter := NewExcelExporter()
	defer exporter.Close()

	assert.NoError(t, exporter.Render(sampleAudit()))

	var buf bytes.Buffer
	assert.NoError(t, exporter.WriteTo(&buf))
	// xlsx files are zip archives
	assert.True(t, strings.HasPrefix(buf.String(), "PK"))
}

func TestPDFUsesBrandingDefaultsWhenNil(t *testing.T) {
	gen := NewPDFGenerator(nil)
	assert.NoError(t, gen.Render(sampleAudit()))

	var buf bytes.Buffer
	assert.NoError(t, gen.WriteTo(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF"))
}

func TestPDFRendersWithCustomBrand(t *testing.T) {
	gen := NewPDFGenerator(&branding.WhiteLabelConfig{
		CompanyName:    "GreenPath Advisory",
		PrimaryColor:   "#1d4ed8",
		AccentColor:    "#60a5fa",
		ConsultantName: "Jamie Park",
	})
	assert.NoError(t, gen.Render(sampleAudit()))

	var buf bytes.Buffer
	assert.NoError(t, gen.WriteTo(&buf))
	assert.NotZero(t, buf.Len())
}

func TestHexToRGB(t *testing.T) {
	r, g, b := hexToRGB("#1d4ed8")
	assert.Equal(t, 29, r)
	assert.Equal(t, 78, g)
	assert.Equal(t, 216, b)

	// Malformed values fall back to the stock green
	r, g, b = hexToRGB("teal")
	assert.Equal(t, 5, r)
	assert.Equal(t, 150, g)
	assert.Equal(t, 105, b)
}
