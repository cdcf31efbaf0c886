package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	audit "ecotrack/audit-portal/audit-portal-backend/internal/audit/model"
	"ecotrack/audit-portal/audit-portal-backend/internal/branding"
)

// PDFGenerator renders an audit as a branded one-pager. The white-label
// configuration drives the accent colors and the consultant byline.
type PDFGenerator struct {
	pdf   *gofpdf.Fpdf
	brand *branding.WhiteLabelConfig
}

func NewPDFGenerator(brand *branding.WhiteLabelConfig) *PDFGenerator {
	if brand == nil {
		brand = branding.Defaults()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 20, 15)
	pdf.SetAutoPageBreak(true, 20)

	return &PDFGenerator{pdf: pdf, brand: brand}
}

// Render lays out the full report.
func (g *PDFGenerator) Render(result *audit.AuditResult) error {
	g.pdf.AddPage()

	r, gr, b := hexToRGB(g.brand.PrimaryColor)

	g.pdf.SetFont("Arial", "B", 18)
	g.pdf.SetTextColor(r, gr, b)
	g.pdf.CellFormat(0, 10, fmt.Sprintf("%s Sustainability Audit", g.brand.CompanyName), "", 1, "L", false, 0, "")

	g.pdf.SetFont("Arial", "", 10)
	g.pdf.SetTextColor(100, 100, 100)
	g.pdf.CellFormat(0, 6, fmt.Sprintf("Prepared by %s on %s", g.brand.ConsultantName, result.AuditDate.Format("2 January 2006")), "", 1, "L", false, 0, "")
	g.pdf.Ln(4)

	g.addScoreBlock(result)
	g.addSummary(result)
	g.addScopeTable(result)
	g.addDataPoints(result)
	g.addQuickWins(result)
	if result.SolarROI != nil {
		g.addSolarROI(result.SolarROI)
	}

	return nil
}

func (g *PDFGenerator) addScoreBlock(result *audit.AuditResult) {
	g.pdf.SetFont("Arial", "B", 12)
	g.pdf.SetTextColor(0, 0, 0)

	items := []struct {
		label string
		value string
	}{
		{"Business", result.BusinessName},
		{"Industry", result.Industry},
		{"Carbon Score", strconv.FormatFloat(result.EstimatedCarbonScore, 'f', 1, 64) + " kg CO2e"},
		{"Benchmark", strconv.FormatFloat(result.IndustryBenchmark, 'f', 0, 64) + " / 100"},
		{"Certification", string(result.CertificationLevel)},
	}
	for _, item := range items {
		g.pdf.SetFont("Arial", "B", 10)
		g.pdf.CellFormat(45, 7, item.label, "", 0, "L", false, 0, "")
		g.pdf.SetFont("Arial", "", 10)
		g.pdf.CellFormat(0, 7, item.value, "", 1, "L", false, 0, "")
	}
	g.pdf.Ln(4)
}

func (g *PDFGenerator) addSummary(result *audit.AuditResult) {
	g.sectionTitle("Executive Summary")
	g.pdf.SetFont("Arial", "", 10)
	g.pdf.SetTextColor(0, 0, 0)
	g.pdf.MultiCell(0, 5, result.Summary, "", "L", false)
	g.pdf.Ln(4)
}

func (g *PDFGenerator) addScopeTable(result *audit.AuditResult) {
	g.sectionTitle("Emissions by Scope")

	r, gr, b := hexToRGB(g.brand.AccentColor)
	g.pdf.SetFont("Arial", "B", 10)
	g.pdf.SetFillColor(r, gr, b)
	g.pdf.SetTextColor(255, 255, 255)
	for _, h := range []string{"Scope 1", "Scope 2", "Scope 3"} {
		g.pdf.CellFormat(60, 8, h, "1", 0, "C", true, 0, "")
	}
	g.pdf.Ln(-1)

	g.pdf.SetFont("Arial", "", 10)
	g.pdf.SetTextColor(0, 0, 0)
	for _, v := range []float64{result.ScopeBreakdown.Scope1, result.ScopeBreakdown.Scope2, result.ScopeBreakdown.Scope3} {
		g.pdf.CellFormat(60, 8, strconv.FormatFloat(v, 'f', 1, 64), "1", 0, "C", false, 0, "")
	}
	g.pdf.Ln(-1)
	g.pdf.Ln(4)
}

func (g *PDFGenerator) addDataPoints(result *audit.AuditResult) {
	if len(result.DataPoints) == 0 {
		return
	}
	g.sectionTitle("Extracted Data Points")

	r, gr, b := hexToRGB(g.brand.AccentColor)
	widths := []float64{50, 25, 20, 25, 60}
	g.pdf.SetFont("Arial", "B", 9)
	g.pdf.SetFillColor(r, gr, b)
	g.pdf.SetTextColor(255, 255, 255)
	for i, h := range []string{"Source", "Value", "Unit", "Scope", "Description"} {
		g.pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	g.pdf.Ln(-1)

	g.pdf.SetFont("Arial", "", 9)
	g.pdf.SetTextColor(0, 0, 0)
	for _, p := range result.DataPoints {
		cells := []string{
			p.Source,
			strconv.FormatFloat(p.Value, 'f', 1, 64),
			p.Unit,
			string(p.Scope),
			p.Description,
		}
		for i, c := range cells {
			maxChars := int(widths[i] / 2)
			if len(c) > maxChars && maxChars > 3 {
				c = c[:maxChars-3] + "..."
			}
			g.pdf.CellFormat(widths[i], 6, c, "1", 0, "L", false, 0, "")
		}
		g.pdf.Ln(-1)
	}
	g.pdf.Ln(4)
}

func (g *PDFGenerator) addQuickWins(result *audit.AuditResult) {
	if len(result.QuickWins) == 0 {
		return
	}
	g.sectionTitle("Quick Wins")

	for i, w := range result.QuickWins {
		g.pdf.SetFont("Arial", "B", 10)
		g.pdf.SetTextColor(0, 0, 0)
		g.pdf.CellFormat(0, 6, fmt.Sprintf("%d. %s (%s, %s)", i+1, w.Title, w.Impact, w.Difficulty), "", 1, "L", false, 0, "")
		g.pdf.SetFont("Arial", "", 9)
		g.pdf.MultiCell(0, 5, w.Description, "", "L", false)
		g.pdf.SetFont("Arial", "I", 9)
		saving := "Saves " + w.FinancialSave
		if w.TaxBenefit != "" {
			saving += ". " + w.TaxBenefit
		}
		g.pdf.MultiCell(0, 5, saving, "", "L", false)
		g.pdf.Ln(2)
	}
}

func (g *PDFGenerator) addSolarROI(roi *audit.SolarROI) {
	g.sectionTitle("Solar ROI Projection")
	g.pdf.SetFont("Arial", "", 10)
	g.pdf.SetTextColor(0, 0, 0)
	lines := []string{
		fmt.Sprintf("Potential: %s", roi.SolarPotential),
		fmt.Sprintf("Estimated cost: %.0f", roi.EstimatedCost),
		fmt.Sprintf("Monthly saving: %.0f", roi.MonthlySaving),
		fmt.Sprintf("Payback: %.0f months", roi.PaybackMonths),
	}
	for _, l := range lines {
		g.pdf.CellFormat(0, 6, l, "", 1, "L", false, 0, "")
	}
}

func (g *PDFGenerator) sectionTitle(title string) {
	r, gr, b := hexToRGB(g.brand.PrimaryColor)
	g.pdf.SetFont("Arial", "B", 12)
	g.pdf.SetTextColor(r, gr, b)
	g.pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	g.pdf.Ln(1)
}

// WriteTo writes the PDF to w.
func (g *PDFGenerator) WriteTo(w io.Writer) error {
	return g.pdf.Output(w)
}

// hexToRGB parses a #rrggbb color, falling back to the stock green when
// the value is malformed.
func hexToRGB(hex string) (int, int, int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 5, 150, 105
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 5, 150, 105
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}
