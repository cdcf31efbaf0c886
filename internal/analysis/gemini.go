package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"ecotrack/audit-portal/audit-portal-backend/internal/audit"
	"ecotrack/audit-portal/audit-portal-backend/internal/discovery"
)

const systemInstruction = `You are the "EcoTrack Strategic Consultant," a world-class expert in carbon accounting (GHG Protocol) and SME sustainability.
Your objective is to help small business owners move from "carbon confusion" to "carbon neutral."
Analyze utility bills, shipping logs, and waste data.
- Tone: Professional, encouraging, action-oriented, and jargon-free.
- Financial Link: Connect every green win to a financial saving.
- Accuracy: If data is missing or blurry, mention it in the summary.
- Solar ROI: Use current energy rates and weather patterns for the provided coordinates (or general region) to estimate solar payback.`

const discoveryPrompt = "Find recycling centers, waste management services, and solar energy consultants near this location."

// GeminiClient talks to the Gemini API for both document analysis and
// grounded resource discovery. It satisfies audit.Analyzer and
// discovery.Finder.
type GeminiClient struct {
	client         *genai.Client
	auditModel     string
	discoveryModel string
	timeout        time.Duration
	logger         *zap.Logger
}

// NewGeminiClient creates a client. The timeout is applied per request
// only when the caller's context carries no deadline of its own.
func NewGeminiClient(ctx context.Context, apiKey, auditModel, discoveryModel string, timeout time.Duration, logger *zap.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		client:         client,
		auditModel:     auditModel,
		discoveryModel: discoveryModel,
		timeout:        timeout,
		logger:         logger,
	}, nil
}

func (c *GeminiClient) withDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

// Analyze sends the document with the audit prompt and parses the
// schema-constrained JSON response.
func (c *GeminiClient) Analyze(ctx context.Context, doc audit.Document, loc *audit.Location) (*audit.RawReport, error) {
	ctx, cancel := c.withDeadline(ctx)
	defer cancel()

	prompt := "Analyze this document for an SME.\n"
	if loc != nil {
		prompt += fmt.Sprintf("Location Context: Lat %v, Lng %v.\n", loc.Lat, loc.Lng)
	}
	prompt += `1. Extract metrics and categorize by Scope 1, 2, 3.
2. Determine industry benchmark score (0-100).
3. Identify suppliers mentioned and draft carbon request emails for them.
4. Calculate Solar ROI if applicable to their energy usage.
5. Provide 3 Quick Wins with financial savings.`

	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	if doc.Text != "" {
		parts = append(parts, genai.NewPartFromText(doc.Text))
	} else {
		parts = append(parts, genai.NewPartFromBytes(doc.Data, doc.MimeType))
	}

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    auditResponseSchema(),
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}

	start := time.Now()
	resp, err := c.client.Models.GenerateContent(ctx, c.auditModel, contents, config)
	if err != nil {
		return nil, fmt.Errorf("generate content failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("empty analysis response")
	}

	var raw audit.RawReport
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse analysis response: %w", err)
	}

	c.logger.Debug("Analysis call completed",
		zap.String("model", c.auditModel),
		zap.Duration("elapsed", time.Since(start)))

	return &raw, nil
}

// Find runs a maps-grounded query for sustainability services near the
// coordinates and collects the grounding chunks into resources.
func (c *GeminiClient) Find(ctx context.Context, lat, lng float64) (*discovery.Result, error) {
	ctx, cancel := c.withDeadline(ctx)
	defer cancel()

	contents := []*genai.Content{
		genai.NewContentFromText(discoveryPrompt, genai.RoleUser),
	}

	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleMaps: &genai.GoogleMaps{}},
		},
		ToolConfig: &genai.ToolConfig{
			RetrievalConfig: &genai.RetrievalConfig{
				LatLng: &genai.LatLng{Latitude: genai.Ptr(lat), Longitude: genai.Ptr(lng)},
			},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.discoveryModel, contents, config)
	if err != nil {
		return nil, fmt.Errorf("maps grounding failed: %w", err)
	}

	result := &discovery.Result{Resources: []discovery.MapResource{}}
	if len(resp.Candidates) > 0 && resp.Candidates[0].GroundingMetadata != nil {
		result.Resources = resourcesFromChunks(resp.Candidates[0].GroundingMetadata.GroundingChunks)
	}

	result.Text = resp.Text()
	if result.Text == "" {
		result.Text = "Here are some sustainable resources near your business location."
	}

	return result, nil
}

// resourcesFromChunks keeps grounding chunks with a recognized sub-type.
// Map entries and web links each get a fixed type tag; anything else is
// dropped.
func resourcesFromChunks(chunks []*genai.GroundingChunk) []discovery.MapResource {
	resources := []discovery.MapResource{}
	for _, chunk := range chunks {
		switch {
		case chunk.Maps != nil:
			title := chunk.Maps.Title
			if title == "" {
				title = "Sustainable Resource"
			}
			resources = append(resources, discovery.MapResource{
				Title: title,
				URI:   chunk.Maps.URI,
				Type:  "Map Resource",
			})
		case chunk.Web != nil:
			resources = append(resources, discovery.MapResource{
				Title: chunk.Web.Title,
				URI:   chunk.Web.URI,
				Type:  "Web Resource",
			})
		}
	}
	return resources
}
