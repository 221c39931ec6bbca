package ai

import (
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/ridhoarazzak/Clipper/internal/models"
)

// DecodeError carries the raw model output alongside the parse failure so
// diagnostics can show exactly what came back. The raw text is never
// surfaced to the user.
type DecodeError struct {
	Raw string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode analysis response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// stripCodeFences removes a surrounding ```json ... ``` wrapper that
// models sometimes add despite instructions.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	if idx := strings.Index(text, "\n"); idx != -1 {
		text = text[idx+1:]
	} else {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

var timestampPattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

// decodeAnalysis parses the model's text into a VideoAnalysis and runs a
// structural validation pass, so model unpredictability stops here rather
// than propagating into the UI.
func decodeAnalysis(text string) (*models.VideoAnalysis, error) {
	cleaned := stripCodeFences(text)

	var analysis models.VideoAnalysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		return nil, &DecodeError{Raw: text, Err: err}
	}

	if err := validateAnalysis(&analysis); err != nil {
		return nil, &DecodeError{Raw: text, Err: err}
	}

	return &analysis, nil
}

func validateAnalysis(a *models.VideoAnalysis) error {
	if a.VideoTitle == "" {
		return fmt.Errorf("analysis is missing a video title")
	}
	if a.Summary == "" {
		return fmt.Errorf("analysis is missing a summary")
	}
	if a.Category == "" {
		return fmt.Errorf("analysis is missing a category")
	}
	if len(a.SuggestedClips) == 0 {
		return fmt.Errorf("analysis contains no suggested clips")
	}

	valid := a.SuggestedClips[:0]
	for _, clip := range a.SuggestedClips {
		if !timestampPattern.MatchString(clip.StartTime) || !timestampPattern.MatchString(clip.EndTime) {
			log.Printf("Warning: dropping clip %q with malformed timestamps %q-%q", clip.Title, clip.StartTime, clip.EndTime)
			continue
		}
		if clip.ViralScore < 1 {
			clip.ViralScore = 1
		} else if clip.ViralScore > 10 {
			clip.ViralScore = 10
		}
		valid = append(valid, clip)
	}
	a.SuggestedClips = valid

	if len(a.SuggestedClips) == 0 {
		return fmt.Errorf("all suggested clips had malformed timestamps")
	}
	return nil
}
