package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"contractor-service/internal/config"
	"contractor-service/internal/core/domain"
	ports "contractor-service/internal/core/ports/output"
)

// analysisClient talks to an OpenAI-compatible chat completions API and
// asks for a structured cost verdict on a set of line items.
type analysisClient struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	enabled bool
}

func NewAnalysisClient(cfg *config.AnalysisConfig) ports.AnalysisClient {
	if !cfg.Enabled {
		return &analysisClient{enabled: false}
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &analysisClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		enabled: true,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *analysisClient) IsAvailable() bool {
	return c.enabled
}

// Chat completions request/response structures (OpenAI wire format)
type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat *chatFormat   `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// verdict is the JSON shape the backend is instructed to return.
type verdict struct {
	SuggestedLowCents  int64   `json:"suggested_low_cents"`
	SuggestedHighCents int64   `json:"suggested_high_cents"`
	Confidence         float64 `json:"confidence"`
	Summary            string  `json:"summary"`
	Assessments        []struct {
		Description string `json:"description"`
		Verdict     string `json:"verdict"`
	} `json:"assessments"`
}

const analysisInstruction = "You are a construction cost estimator. " +
	"Given line items as JSON, reply with JSON: suggested_low_cents, " +
	"suggested_high_cents, confidence (0-1), summary, and assessments " +
	"([{description, verdict}])."

func (c *analysisClient) AnalyzeCost(ctx context.Context, req *domain.CostAnalysisRequest) (*domain.CostAnalysis, error) {
	if !c.enabled {
		return nil, domain.ErrAnalysisNotAvailable
	}

	itemsJSON, err := json.Marshal(req.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal analysis items: %w", err)
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: analysisInstruction},
			{Role: "user", Content: string(itemsJSON)},
		},
		ResponseFormat: &chatFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build analysis request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, domain.ErrAnalysisNotAvailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.ErrAnalysisNotAvailable
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("decode analysis response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return nil, domain.ErrAnalysisFailed
	}

	var v verdict
	if err := json.Unmarshal([]byte(chatResp.Choices[0].Message.Content), &v); err != nil {
		return nil, domain.ErrAnalysisFailed
	}

	analysis := &domain.CostAnalysis{
		SuggestedLowCents:  v.SuggestedLowCents,
		SuggestedHighCents: v.SuggestedHighCents,
		Confidence:         v.Confidence,
		Summary:            v.Summary,
	}
	for _, a := range v.Assessments {
		analysis.Assessments = append(analysis.Assessments, domain.ItemAssessment{
			Description: a.Description,
			Verdict:     a.Verdict,
		})
	}
	return analysis, nil
}
