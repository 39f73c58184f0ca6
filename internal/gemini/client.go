// Package gemini provides a client for generating portfolio narratives
// through the Gemini text-generation API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/evhq/horizon/internal/model"
	"github.com/evhq/horizon/internal/pipeline"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	modelName      = "gemini-2.5-flash"
	requestTimeout = 30 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

var (
	// ErrUnauthorized indicates the API key was rejected.
	ErrUnauthorized = errors.New("gemini: unauthorized (API key rejected)")
	// ErrRateLimited indicates the API rate limit was hit.
	ErrRateLimited = errors.New("gemini: rate limited")
	// ErrEmptyResponse indicates the model returned no usable candidate.
	ErrEmptyResponse = errors.New("gemini: empty response")
)

// Client calls the Gemini generateContent endpoint. Failures surface to
// the caller as user-visible messages; there is no retry.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given API key.
// Returns nil if the key is empty.
func NewClient(apiKey, baseURL string) *Client {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// PortfolioInsight asks for a one-paragraph health read of the filtered
// portfolio: summary, biggest risk, and one recommendation.
func (c *Client) PortfolioInsight(ctx context.Context, data model.Dataset) (*PortfolioInsight, error) {
	type projectSummary struct {
		Name        string  `json:"name"`
		Status      string  `json:"status"`
		RevenueGap  float64 `json:"revenueGap"`
		SpeakerFill string  `json:"speakerFill"`
	}

	summaries := make([]projectSummary, 0, len(data.Projects))
	var pipelineValue float64
	for _, p := range data.Projects {
		fill := 0.0
		if p.SpeakersTarget > 0 {
			fill = float64(p.SpeakersConfirmed) / float64(p.SpeakersTarget) * 100
		}
		summaries = append(summaries, projectSummary{
			Name:        p.Name,
			Status:      string(p.Status),
			RevenueGap:  p.RevenueTarget - p.RevenueActual,
			SpeakerFill: fmt.Sprintf("%.0f%%", fill),
		})
	}
	for _, s := range data.Sponsors {
		pipelineValue += s.Value
	}

	contextData, err := json.Marshal(map[string]any{
		"projectSummary":         summaries,
		"totalPipelineValue":     pipelineValue,
		"recentDelegateActivity": len(data.Delegates),
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: encoding context: %w", err)
	}

	prompt := fmt.Sprintf(`You are a Data Analyst for an Events Management company.
Analyze the following dashboard data snapshot and provide a JSON response.

Data Context: %s

Provide:
1. A one-sentence summary of the current health.
2. The biggest risk identified (e.g., low speaker fill or revenue gap).
3. A specific strategic recommendation.`, contextData)

	var insight PortfolioInsight
	if err := c.generate(ctx, prompt, insightSchema, &insight); err != nil {
		return nil, err
	}
	return &insight, nil
}

// ProjectDeepDive asks for a status report on one project: assessment,
// three-step action plan, and a stakeholder email draft.
func (c *Client) ProjectDeepDive(ctx context.Context, p model.Project, data model.Dataset, now time.Time) (*DeepDive, error) {
	type sponsorLine struct {
		Name  string  `json:"name"`
		Stage string  `json:"stage"`
		Value float64 `json:"value"`
	}

	var sponsors []sponsorLine
	var weighted float64
	for _, s := range data.Sponsors {
		if s.ProjectID == p.ID {
			sponsors = append(sponsors, sponsorLine{Name: s.Name, Stage: string(s.Stage), Value: s.Value})
			weighted += s.Value * pipeline.StageWeight(s.Stage)
		}
	}
	delegateCount := 0
	for _, d := range data.Delegates {
		if d.ProjectID == p.ID {
			delegateCount += d.Count
		}
	}

	var marketing any = "No marketing data available"
	for _, m := range data.Marketing {
		if m.ProjectID != p.ID {
			continue
		}
		var campaigns []string
		for _, cp := range m.Campaigns {
			campaigns = append(campaigns, cp.Name+" ("+cp.Metric+")")
		}
		marketing = map[string]any{
			"emailOpenRate":   m.OpenRate,
			"adSpend":         m.AdSpend,
			"socialReach":     m.SocialImpressions,
			"recentCampaigns": campaigns,
		}
		break
	}

	contextData, err := json.Marshal(map[string]any{
		"project": map[string]any{
			"name":           p.Name,
			"date":           p.EventDate.Format("2006-01-02"),
			"status":         string(p.Status),
			"revenueTarget":  p.RevenueTarget,
			"revenueActual":  p.RevenueActual,
			"speakerTarget": p.SpeakersTarget,
			"speakerActual": p.SpeakersConfirmed,
			"weightedValue": weighted,
		},
		"sponsors":       sponsors,
		"delegateCount":  delegateCount,
		"marketing":      marketing,
		"daysUntilEvent": int(math.Ceil(p.EventDate.Sub(now).Hours() / 24)),
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: encoding context: %w", err)
	}

	prompt := fmt.Sprintf(`You are a Senior Project Manager & Marketing Strategist. Analyze this specific event project.
Consider the finances, speakers, AND marketing performance (email opens, ad spend, social reach) to provide a comprehensive status report in JSON format.

Data: %s

Requirements:
1. "statusAssessment": A professional assessment of the project status (Critical/On Track). If marketing is weak, mention it.
2. "actionPlan": A bulleted list (array of strings) of 3 immediate actions to take. Mix operational and marketing actions.
3. "emailDraft": A professional email draft to the stakeholders updating them on progress, highlighting wins (like signed sponsors) and flagging needs.`, contextData)

	var dive DeepDive
	if err := c.generate(ctx, prompt, deepDiveSchema, &dive); err != nil {
		return nil, err
	}
	return &dive, nil
}

// generate posts a prompt with a JSON response schema and decodes the
// first candidate into out.
func (c *Client) generate(ctx context.Context, prompt string, schema json.RawMessage, out any) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	reqBody, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   schema,
		},
	})
	if err != nil {
		return fmt.Errorf("gemini: encoding request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, modelName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return fmt.Errorf("gemini: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gemini: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("gemini: reading response: %w", err)
	}

	var gr generateResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return fmt.Errorf("gemini: parsing response: %w", err)
	}
	if gr.Error != nil {
		return fmt.Errorf("gemini: API error %d: %s", gr.Error.Code, gr.Error.Message)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("gemini: unexpected status %d", resp.StatusCode)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return ErrEmptyResponse
	}

	text := gr.Candidates[0].Content.Parts[0].Text
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("gemini: parsing model output: %w", err)
	}
	return nil
}
