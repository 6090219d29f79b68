// Package genai implements the concept and image generators against the
// provider's REST API.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lumira-inc/lumira/internal/application/studio/generation"
	"github.com/lumira-inc/lumira/internal/domain/studio"
	vo "github.com/lumira-inc/lumira/internal/domain/studio/valueobjects"
	"github.com/lumira-inc/lumira/internal/shared/config"
	"github.com/lumira-inc/lumira/internal/shared/logger"
)

// Client talks to the generative model API. It implements both
// generation.ConceptGenerator and generation.ImageGenerator.
type Client struct {
	baseURL    string
	apiKey     string
	textModel  string
	imageModel string
	http       *http.Client
	logger     logger.Interface
}

// NewClient creates a Client from configuration.
func NewClient(cfg config.StudioConfig, log logger.Interface) *Client {
	timeout := time.Duration(cfg.RequestTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.APIBaseURL, "/"),
		apiKey:     cfg.APIKey,
		textModel:  cfg.TextModel,
		imageModel: cfg.ImageModel,
		http:       &http.Client{Timeout: timeout},
		logger:     log,
	}
}

// request/response shapes for the generateContent endpoint.

type generatePart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents         []generateContent `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

// IdentifyCategory asks the text model to classify the product.
func (c *Client) IdentifyCategory(ctx context.Context, src generation.SourceImage) (vo.ProductCategory, error) {
	prompt := categoryPrompt()

	resp, err := c.generate(ctx, c.textModel, generateRequest{
		Contents: []generateContent{{Parts: []generatePart{
			{Text: prompt},
			{InlineData: &inlineData{MimeType: src.MimeType, Data: src.Data}},
		}}},
	})
	if err != nil {
		return "", err
	}

	answer := strings.TrimSpace(firstText(resp))
	if answer == "" {
		return "", fmt.Errorf("model returned no category")
	}
	return vo.NormalizeCategory(answer), nil
}

// ProposeConcept asks the text model for a themed shot list as JSON.
func (c *Client) ProposeConcept(ctx context.Context, req generation.ConceptRequest) (*generation.Concept, error) {
	prompt := conceptPrompt(req)

	resp, err := c.generate(ctx, c.textModel, generateRequest{
		Contents: []generateContent{{Parts: []generatePart{
			{Text: prompt},
			{InlineData: &inlineData{MimeType: req.Source.MimeType, Data: req.Source.Data}},
		}}},
		GenerationConfig: &generationConfig{ResponseMimeType: "application/json"},
	})
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(firstText(resp))
	text = stripCodeFence(text)

	var concept generation.Concept
	if err := json.Unmarshal([]byte(text), &concept); err != nil {
		return nil, fmt.Errorf("model returned malformed concept: %w", err)
	}
	if concept.Theme == "" || len(concept.Shots) == 0 {
		return nil, fmt.Errorf("model returned an empty concept")
	}
	return &concept, nil
}

// GenerateShot renders one shot against the image model.
func (c *Client) GenerateShot(ctx context.Context, req generation.ShotRequest) ([]studio.GeneratedImage, error) {
	prompt := shotPrompt(req)

	resp, err := c.generate(ctx, c.imageModel, generateRequest{
		Contents: []generateContent{{Parts: []generatePart{
			{Text: prompt},
			{InlineData: &inlineData{MimeType: req.Source.MimeType, Data: req.Source.Data}},
		}}},
	})
	if err != nil {
		return nil, err
	}

	var images []studio.GeneratedImage
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData == nil || part.InlineData.Data == "" {
				continue
			}
			images = append(images, studio.GeneratedImage{
				SRC: fmt.Sprintf("data:%s;base64,%s", part.InlineData.MimeType, part.InlineData.Data),
				Alt: req.Description,
			})
		}
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("model returned no image data")
	}
	return images, nil
}

func (c *Client) generate(ctx context.Context, model string, payload generateRequest) (*generateResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("model request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read model response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Warnw("model request rejected",
			"model", model, "status", resp.StatusCode, "elapsed", time.Since(start))
		return nil, fmt.Errorf("model returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode model response: %w", err)
	}
	if len(out.Candidates) == 0 {
		return nil, fmt.Errorf("model returned no candidates")
	}

	c.logger.Debugw("model request completed", "model", model, "elapsed", time.Since(start))
	return &out, nil
}

func firstText(resp *generateResponse) string {
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				return part.Text
			}
		}
	}
	return ""
}

// stripCodeFence unwraps ```json fences some models insist on adding.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
