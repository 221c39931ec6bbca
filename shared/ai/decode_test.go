package ai

import (
	"errors"
	"strings"
	"testing"
)

const wellFormedAnalysis = `{
  "videoTitle": "Epic Kitchen Fails",
  "summary": "A compilation of cooking attempts going sideways.",
  "category": "Comedy",
  "suggestedClips": [
    {
      "title": "The pancake flip",
      "startTime": "01:30",
      "endTime": "01:55",
      "description": "Pancake lands on the ceiling.",
      "viralScore": 9,
      "hashtags": ["#fail", "#cooking", "#funny"]
    },
    {
      "title": "Blender without a lid",
      "startTime": "04:02",
      "endTime": "04:20",
      "description": "Smoothie everywhere.",
      "viralScore": 7,
      "hashtags": ["#kitchen", "#oops"]
    }
  ]
}`

func TestDecodeAnalysis(t *testing.T) {
	t.Run("PlainJSON", func(t *testing.T) {
		analysis, err := decodeAnalysis(wellFormedAnalysis)
		if err != nil {
			t.Fatalf("decodeAnalysis() unexpected error: %v", err)
		}
		if analysis.VideoTitle != "Epic Kitchen Fails" {
			t.Errorf("VideoTitle = %q, want %q", analysis.VideoTitle, "Epic Kitchen Fails")
		}
		if analysis.Category != "Comedy" {
			t.Errorf("Category = %q, want %q", analysis.Category, "Comedy")
		}
		if len(analysis.SuggestedClips) != 2 {
			t.Fatalf("got %d clips, want 2", len(analysis.SuggestedClips))
		}
		clip := analysis.SuggestedClips[0]
		if clip.StartTime != "01:30" || clip.EndTime != "01:55" {
			t.Errorf("clip range = %s-%s, want 01:30-01:55", clip.StartTime, clip.EndTime)
		}
		if clip.ViralScore != 9 {
			t.Errorf("ViralScore = %d, want 9", clip.ViralScore)
		}
		if len(clip.Hashtags) != 3 {
			t.Errorf("got %d hashtags, want 3", len(clip.Hashtags))
		}
	})

	t.Run("FencedJSON", func(t *testing.T) {
		wrapped := "```json\n" + wellFormedAnalysis + "\n```"
		analysis, err := decodeAnalysis(wrapped)
		if err != nil {
			t.Fatalf("decodeAnalysis() unexpected error: %v", err)
		}
		if analysis.Summary != "A compilation of cooking attempts going sideways." {
			t.Errorf("Summary not preserved through fence stripping: %q", analysis.Summary)
		}
	})

	t.Run("BareFence", func(t *testing.T) {
		wrapped := "```\n" + wellFormedAnalysis + "\n```"
		if _, err := decodeAnalysis(wrapped); err != nil {
			t.Fatalf("decodeAnalysis() unexpected error: %v", err)
		}
	})

	t.Run("NotJSON", func(t *testing.T) {
		raw := "I'm sorry, I cannot analyze this video."
		_, err := decodeAnalysis(raw)
		if err == nil {
			t.Fatal("decodeAnalysis() expected an error for non-JSON input")
		}
		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) {
			t.Fatalf("error is %T, want *DecodeError", err)
		}
		if decodeErr.Raw != raw {
			t.Errorf("DecodeError.Raw = %q, want the original text", decodeErr.Raw)
		}
	})

	t.Run("ScoreClampedIntoRange", func(t *testing.T) {
		payload := strings.Replace(wellFormedAnalysis, `"viralScore": 9`, `"viralScore": 15`, 1)
		payload = strings.Replace(payload, `"viralScore": 7`, `"viralScore": 0`, 1)
		analysis, err := decodeAnalysis(payload)
		if err != nil {
			t.Fatalf("decodeAnalysis() unexpected error: %v", err)
		}
		for _, clip := range analysis.SuggestedClips {
			if clip.ViralScore < 1 || clip.ViralScore > 10 {
				t.Errorf("clip %q score %d outside [1,10]", clip.Title, clip.ViralScore)
			}
		}
	})

	t.Run("MalformedTimestampsDropped", func(t *testing.T) {
		payload := strings.Replace(wellFormedAnalysis, `"startTime": "04:02"`, `"startTime": "1:02:00"`, 1)
		analysis, err := decodeAnalysis(payload)
		if err != nil {
			t.Fatalf("decodeAnalysis() unexpected error: %v", err)
		}
		if len(analysis.SuggestedClips) != 1 {
			t.Errorf("got %d clips, want 1 after dropping the malformed one", len(analysis.SuggestedClips))
		}
	})

	t.Run("MissingFieldsRejected", func(t *testing.T) {
		cases := map[string]string{
			"NoTitle":    strings.Replace(wellFormedAnalysis, `"videoTitle": "Epic Kitchen Fails"`, `"videoTitle": ""`, 1),
			"NoSummary":  strings.Replace(wellFormedAnalysis, `"summary": "A compilation of cooking attempts going sideways."`, `"summary": ""`, 1),
			"NoCategory": strings.Replace(wellFormedAnalysis, `"category": "Comedy"`, `"category": ""`, 1),
			"NoClips":    `{"videoTitle": "t", "summary": "s", "category": "c", "suggestedClips": []}`,
		}
		for name, payload := range cases {
			t.Run(name, func(t *testing.T) {
				if _, err := decodeAnalysis(payload); err == nil {
					t.Error("decodeAnalysis() expected a validation error")
				}
			})
		}
	})
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "No fence", input: `{"a":1}`, expected: `{"a":1}`},
		{name: "JSON fence", input: "```json\n{\"a\":1}\n```", expected: `{"a":1}`},
		{name: "Bare fence", input: "```\n{\"a\":1}\n```", expected: `{"a":1}`},
		{name: "Leading whitespace", input: "  \n```json\n{\"a\":1}\n```\n", expected: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripCodeFences(tt.input); got != tt.expected {
				t.Errorf("stripCodeFences(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
