package audit

import "ecotrack/audit-portal/audit-portal-backend/internal/audit/model"

// The report data model lives in the leaf package internal/audit/model so
// that export and history can share it without importing this package.
// Aliases keep the audit-qualified names and type identity unchanged.

type CarbonScope = model.CarbonScope

const (
	Scope1 = model.Scope1
	Scope2 = model.Scope2
	Scope3 = model.Scope3
)

type CertificationLevel = model.CertificationLevel

const (
	CertBronze   = model.CertBronze
	CertSilver   = model.CertSilver
	CertGold     = model.CertGold
	CertPlatinum = model.CertPlatinum
)

type Trend = model.Trend

const (
	TrendUp      = model.TrendUp
	TrendDown    = model.TrendDown
	TrendNeutral = model.TrendNeutral
)

type DataPoint = model.DataPoint

type QuickWin = model.QuickWin

type Supplier = model.Supplier

type ScopeBreakdown = model.ScopeBreakdown

type SolarROI = model.SolarROI

type AuditResult = model.AuditResult

type Location = model.Location

type Document = model.Document

type RawReport = model.RawReport

var ErrUnsupportedFormat = model.ErrUnsupportedFormat

type AnalysisError = model.AnalysisError
