package genai

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumira-inc/lumira/internal/application/studio/generation"
	vo "github.com/lumira-inc/lumira/internal/domain/studio/valueobjects"
	"github.com/lumira-inc/lumira/internal/shared/config"
	"github.com/lumira-inc/lumira/internal/shared/logger"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient(config.StudioConfig{
		APIBaseURL: srv.URL,
		APIKey:     "test-key",
		TextModel:  "text-model",
		ImageModel: "image-model",
	}, logger.NewLoggerWithSlog(slog.New(slog.DiscardHandler)))
	return c, srv
}

func textResponse(text string) generateResponse {
	return generateResponse{Candidates: []struct {
		Content generateContent `json:"content"`
	}{{Content: generateContent{Parts: []generatePart{{Text: text}}}}}}
}

func src() generation.SourceImage {
	return generation.SourceImage{Data: "aGVsbG8=", MimeType: "image/png"}
}

func TestIdentifyCategory(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "text-model:generateContent")
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		_ = json.NewEncoder(w).Encode(textResponse("Shoes & Footwear\n"))
	})
	defer srv.Close()

	cat, err := c.IdentifyCategory(context.Background(), src())
	require.NoError(t, err)
	assert.Equal(t, vo.ProductCategory("Shoes & Footwear"), cat)
}

func TestIdentifyCategory_UnknownAnswerFallsBack(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(textResponse("Spacecraft"))
	})
	defer srv.Close()

	cat, err := c.IdentifyCategory(context.Background(), src())
	require.NoError(t, err)
	assert.Equal(t, vo.CategoryOther, cat)
}

func TestProposeConcept(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		prompt := req.Contents[0].Parts[0].Text
		assert.Contains(t, prompt, "exactly 2 distinct shot descriptions")
		assert.Contains(t, prompt, "no people")

		_ = json.NewEncoder(w).Encode(textResponse("```json\n{\"theme\":\"Dawn\",\"shots\":[\"a\",\"b\"]}\n```"))
	})
	defer srv.Close()

	concept, err := c.ProposeConcept(context.Background(), generation.ConceptRequest{
		Source:    src(),
		Category:  "Shoes & Footwear",
		Style:     vo.StyleEcommerce,
		ShotCount: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Dawn", concept.Theme)
	assert.Equal(t, []string{"a", "b"}, concept.Shots)
}

func TestProposeConcept_MalformedJSON(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(textResponse("sure, here is a concept!"))
	})
	defer srv.Close()

	_, err := c.ProposeConcept(context.Background(), generation.ConceptRequest{
		Source: src(), Style: vo.StyleEcommerce, ShotCount: 2,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed concept")
}

func TestGenerateShot(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "image-model:generateContent")
		resp := generateResponse{Candidates: []struct {
			Content generateContent `json:"content"`
		}{{Content: generateContent{Parts: []generatePart{
			{Text: "here you go"},
			{InlineData: &inlineData{MimeType: "image/png", Data: "aW1n"}},
		}}}}}
		_ = json.NewEncoder(w).Encode(resp)
	})
	defer srv.Close()

	images, err := c.GenerateShot(context.Background(), generation.ShotRequest{
		Source:      src(),
		Description: "hero shot",
		Theme:       "Dawn",
		Style:       vo.StyleAdvertising,
	})
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.True(t, strings.HasPrefix(images[0].SRC, "data:image/png;base64,"))
	assert.Equal(t, "hero shot", images[0].Alt)
}

func TestGenerateShot_NoImageData(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(textResponse("cannot comply"))
	})
	defer srv.Close()

	_, err := c.GenerateShot(context.Background(), generation.ShotRequest{
		Source: src(), Description: "x", Style: vo.StyleEcommerce,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no image data")
}

func TestGenerate_UpstreamError(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})
	defer srv.Close()

	_, err := c.IdentifyCategory(context.Background(), src())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}
