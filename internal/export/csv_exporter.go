package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	audit "ecotrack/audit-portal/audit-portal-backend/internal/audit/model"
)

// WriteCSV writes the audit's data points as CSV with a metadata
// preamble. Spreadsheet tools open the result directly.
func WriteCSV(w io.Writer, result *audit.AuditResult) error {
	cw := csv.NewWriter(w)

	preamble := [][]string{
		{"Business", result.BusinessName},
		{"Industry", result.Industry},
		{"Audit Date", result.AuditDate.Format(time.RFC3339)},
		{"Carbon Score", strconv.FormatFloat(result.EstimatedCarbonScore, 'f', 2, 64)},
		{"Industry Benchmark", strconv.FormatFloat(result.IndustryBenchmark, 'f', 2, 64)},
		{"Certification", string(result.CertificationLevel)},
		{},
		{"Source", "Value", "Unit", "Scope", "Description"},
	}
	for _, row := range preamble {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	for _, p := range result.DataPoints {
		row := []string{
			p.Source,
			strconv.FormatFloat(p.Value, 'f', 2, 64),
			p.Unit,
			string(p.Scope),
			p.Description,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
