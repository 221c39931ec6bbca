// Package ai wraps the Gemini API: it shapes analysis and chat requests,
// sends them, and decodes the structured responses.
package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ridhoarazzak/Clipper/internal/models"
	"github.com/ridhoarazzak/Clipper/shared/youtube"

	"google.golang.org/genai"
)

// ErrEmptyResponse signals that the model returned no text at all. This is
// distinct from returning text that fails to decode.
var ErrEmptyResponse = errors.New("model returned an empty response")

type Analyzer struct {
	client    *genai.Client
	model     string
	clipCount int
}

// NewAnalyzer creates a Gemini-backed analyzer. The credential is injected
// here and nowhere else; no call site reads it from ambient state.
func NewAnalyzer(ctx context.Context, apiKey, model string, clipCount int) (*Analyzer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Analyzer{
		client:    client,
		model:     model,
		clipCount: clipCount,
	}, nil
}

// AnalyzeFile uploads the full file content inline and requests a
// schema-constrained analysis.
func (a *Analyzer) AnalyzeFile(ctx context.Context, src *models.VideoSource) (*models.VideoAnalysis, error) {
	if src == nil || src.Kind != models.SourceFile {
		return nil, fmt.Errorf("a file source is required")
	}

	data, err := os.ReadFile(src.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read video file: %w", err)
	}

	parts := []*genai.Part{
		genai.NewPartFromText(buildFilePrompt(a.clipCount)),
		genai.NewPartFromBytes(data, src.MIMEType),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   analysisSchema(a.clipCount),
	}

	text, err := a.generate(ctx, contents, cfg)
	if err != nil {
		return nil, err
	}

	return decodeAnalysis(text)
}

// AnalyzeURL requests an analysis without transmitting any media. The
// model is told it cannot watch the video and must lean on search
// grounding; optional YouTube metadata sharpens the prompt. The Gemini API
// rejects response schemas combined with the search tool, so the JSON
// shape is spelled out in the prompt and enforced by the decoder instead.
func (a *Analyzer) AnalyzeURL(ctx context.Context, src *models.VideoSource, meta *youtube.Metadata) (*models.VideoAnalysis, error) {
	if src == nil || src.Kind != models.SourceYouTube {
		return nil, fmt.Errorf("a YouTube source is required")
	}

	parts := []*genai.Part{
		genai.NewPartFromText(buildURLPrompt(src, meta, a.clipCount)),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	cfg := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}

	text, err := a.generate(ctx, contents, cfg)
	if err != nil {
		return nil, err
	}

	return decodeAnalysis(text)
}

// Chat answers one user message in the context of the analyzed video. The
// whole turn history is replayed on every call; there is no server-side
// session. For file sources the original bytes are re-attached each turn,
// so long conversations about large files are expensive.
func (a *Analyzer) Chat(ctx context.Context, src *models.VideoSource, history []models.ChatTurn, message string) (string, error) {
	if src == nil {
		return "", fmt.Errorf("a video source is required")
	}

	var contents []*genai.Content
	var cfg *genai.GenerateContentConfig

	switch src.Kind {
	case models.SourceFile:
		data, err := os.ReadFile(src.Path)
		if err != nil {
			return "", fmt.Errorf("failed to re-read video file: %w", err)
		}
		contents = append(contents, genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(chatFilePreamble),
			genai.NewPartFromBytes(data, src.MIMEType),
		}, genai.RoleUser))
	case models.SourceYouTube:
		contents = append(contents, genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(buildChatURLPreamble(src)),
		}, genai.RoleUser))
		cfg = &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
		}
	default:
		return "", fmt.Errorf("unknown source kind %q", src.Kind)
	}

	for _, turn := range history {
		role := genai.Role(genai.RoleUser)
		if turn.Role == models.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(turn.Text),
		}, role))
	}

	contents = append(contents, genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromText(message),
	}, genai.RoleUser))

	return a.generate(ctx, contents, cfg)
}

// generate performs the single outbound call and the empty-response check.
func (a *Analyzer) generate(ctx context.Context, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	result, err := a.client.Models.GenerateContent(ctx, a.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("model request failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		log.Printf("Empty response from model %s. This could indicate content filtering, API issues, or video accessibility problems.", a.model)
		return "", ErrEmptyResponse
	}

	return text, nil
}
