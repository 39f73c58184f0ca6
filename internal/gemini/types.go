package gemini

import "encoding/json"

// PortfolioInsight is the portfolio-level narrative returned by the model.
type PortfolioInsight struct {
	Summary        string `json:"summary"`
	Risk           string `json:"risk"`
	Recommendation string `json:"recommendation"`
}

// DeepDive is the single-project status report returned by the model.
type DeepDive struct {
	StatusAssessment string   `json:"statusAssessment"`
	ActionPlan       []string `json:"actionPlan"`
	EmailDraft       string   `json:"emailDraft"`
}

// generateRequest is the generateContent request envelope.
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType"`
	ResponseSchema   json.RawMessage `json:"responseSchema"`
}

// generateResponse covers the slice of the response we consume.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Response schemas, mirroring what the model is asked to produce.
var (
	insightSchema = json.RawMessage(`{
		"type": "OBJECT",
		"properties": {
			"summary": {"type": "STRING"},
			"risk": {"type": "STRING"},
			"recommendation": {"type": "STRING"}
		},
		"required": ["summary", "risk", "recommendation"]
	}`)

	deepDiveSchema = json.RawMessage(`{
		"type": "OBJECT",
		"properties": {
			"statusAssessment": {"type": "STRING"},
			"actionPlan": {"type": "ARRAY", "items": {"type": "STRING"}},
			"emailDraft": {"type": "STRING"}
		},
		"required": ["statusAssessment", "actionPlan", "emailDraft"]
	}`)
)
