package ai

import (
	"fmt"
	"strings"

	"github.com/ridhoarazzak/Clipper/internal/models"
	"github.com/ridhoarazzak/Clipper/shared/youtube"

	"google.golang.org/genai"
)

// jsonShape documents the expected output for prompts that cannot carry a
// response schema (the API rejects schemas alongside search grounding).
const jsonShape = `{
  "videoTitle": "string",
  "summary": "string",
  "category": "string",
  "suggestedClips": [
    {
      "title": "string",
      "startTime": "MM:SS",
      "endTime": "MM:SS",
      "description": "string",
      "viralScore": number (1-10),
      "hashtags": ["string"]
    }
  ]
}`

func buildFilePrompt(clipCount int) string {
	return fmt.Sprintf(`You are a short-form content expert. Watch the attached video and analyze it.

Provide:
1. A catchy title for the video
2. A 2-3 sentence summary of its content
3. A single category (e.g. Gaming, Education, Comedy, Music, Tech)
4. Exactly %d suggested clips with strong viral potential

For each clip give a punchy title, the start and end timestamps in MM:SS format, a short description of why the moment works as a standalone clip, a viral score from 1 (weak) to 10 (guaranteed hit), and 3-5 hashtags.

Order the clips by viral potential, strongest first.`, clipCount)
}

func buildURLPrompt(src *models.VideoSource, meta *youtube.Metadata, clipCount int) string {
	var b strings.Builder

	fmt.Fprintf(&b, `You are a short-form content expert analyzing the YouTube video at %s (video ID: %s).

You CANNOT watch this video directly. Use Google Search to find its transcript, description, reviews, comments and any timestamped breakdowns. Do NOT refuse because exact data is unavailable: when timestamps cannot be verified, estimate plausible ones from whatever you find.

`, src.WatchURL(), src.VideoID)

	if meta != nil {
		fmt.Fprintf(&b, `KNOWN METADATA:
Title: %s
Channel: %s
Duration: %d seconds
View count: %d
Description: %s

`, meta.Title, meta.ChannelTitle, meta.DurationSecs, meta.ViewCount, truncateString(meta.Description, 1000))
	}

	fmt.Fprintf(&b, `Provide a catchy title, a 2-3 sentence summary, a single category, and exactly %d suggested clips with viral potential. Each clip needs a title, start and end timestamps in MM:SS format, a description, a viral score from 1 to 10, and 3-5 hashtags. Order clips by viral potential, strongest first.

Respond ONLY with JSON matching this shape, with no surrounding prose:
%s`, clipCount, jsonShape)

	return b.String()
}

const chatFilePreamble = `You are a helpful assistant answering questions about the attached video. Base your answers on its actual content. Keep answers concise.`

func buildChatURLPreamble(src *models.VideoSource) string {
	return fmt.Sprintf(`You are a helpful assistant answering questions about the YouTube video at %s. You cannot watch it directly; use Google Search to find transcripts, descriptions and discussion when needed. Keep answers concise.`, src.WatchURL())
}

// analysisSchema mirrors the VideoAnalysis shape exactly, so the model is
// constrained to the fields the decoder expects.
func analysisSchema(clipCount int) *genai.Schema {
	clipSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":       {Type: genai.TypeString, Description: "Punchy clip title"},
			"startTime":   {Type: genai.TypeString, Description: "Clip start in MM:SS"},
			"endTime":     {Type: genai.TypeString, Description: "Clip end in MM:SS"},
			"description": {Type: genai.TypeString, Description: "Why this moment works as a standalone clip"},
			"viralScore":  {Type: genai.TypeInteger, Description: "Viral potential from 1 to 10"},
			"hashtags": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
		},
		Required: []string{"title", "startTime", "endTime", "description", "viralScore", "hashtags"},
	}

	count := int64(clipCount)
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"videoTitle": {Type: genai.TypeString},
			"summary":    {Type: genai.TypeString},
			"category":   {Type: genai.TypeString},
			"suggestedClips": {
				Type:     genai.TypeArray,
				Items:    clipSchema,
				MinItems: &count,
				MaxItems: &count,
			},
		},
		Required: []string{"videoTitle", "summary", "category", "suggestedClips"},
	}
}

func truncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength] + "..."
}
