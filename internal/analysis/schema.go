package analysis

import "google.golang.org/genai"

// auditResponseSchema constrains the model to the report wire shape.
// Enum values here must stay in sync with the audit package constants.
func auditResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"businessName": {Type: genai.TypeString},
			"industry":     {Type: genai.TypeString},
			"estimatedCarbonScore": {Type: genai.TypeNumber},
			"industryBenchmark": {
				Type:        genai.TypeNumber,
				Description: "0 for leader, 100 for high emitter compared to peers",
			},
			"dataPoints": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"source":      {Type: genai.TypeString},
						"value":       {Type: genai.TypeNumber},
						"unit":        {Type: genai.TypeString},
						"description": {Type: genai.TypeString},
						"scope": {
							Type: genai.TypeString,
							Enum: []string{"Scope 1", "Scope 2", "Scope 3"},
						},
					},
					Required: []string{"source", "value", "unit", "scope"},
				},
			},
			"quickWins": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title":       {Type: genai.TypeString},
						"description": {Type: genai.TypeString},
						"impact": {
							Type: genai.TypeString,
							Enum: []string{"High", "Medium", "Low"},
						},
						"difficulty": {
							Type: genai.TypeString,
							Enum: []string{"Easy", "Moderate", "Challenging"},
						},
						"category": {
							Type: genai.TypeString,
							Enum: []string{"Energy", "Logistics", "Waste", "Procurement"},
						},
						"financialSave": {Type: genai.TypeString},
						"taxBenefit":    {Type: genai.TypeString},
					},
					Required: []string{"title", "description", "impact", "difficulty", "category", "financialSave"},
				},
			},
			"suppliers": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name": {Type: genai.TypeString},
						"emailDraft": {
							Type:        genai.TypeString,
							Description: "Professional email asking for their ESG/carbon report",
						},
					},
				},
			},
			"certificationLevel": {
				Type: genai.TypeString,
				Enum: []string{"Bronze", "Silver", "Gold", "Platinum"},
			},
			"solarROI": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"paybackMonths": {Type: genai.TypeNumber},
					"estimatedCost": {Type: genai.TypeNumber},
					"monthlySaving": {Type: genai.TypeNumber},
					"solarPotential": {
						Type: genai.TypeString,
						Enum: []string{"High", "Medium", "Low"},
					},
				},
			},
			"summary": {Type: genai.TypeString},
		},
		Required: []string{
			"businessName", "industry", "estimatedCarbonScore",
			"industryBenchmark", "dataPoints", "quickWins", "suppliers", "summary",
		},
	}
}
