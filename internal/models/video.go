package models

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SourceKind distinguishes the two ways a video can reach the app.
type SourceKind string

const (
	SourceFile    SourceKind = "file"
	SourceYouTube SourceKind = "youtube"
)

// VideoSource identifies the video under analysis. It is immutable once
// created and replaced wholesale on reset.
type VideoSource struct {
	Kind     SourceKind `json:"kind"`
	Path     string     `json:"path,omitempty"`
	MIMEType string     `json:"mime_type,omitempty"`
	URL      string     `json:"url,omitempty"`
	VideoID  string     `json:"video_id,omitempty"`
}

// WatchURL returns the canonical watch page for a YouTube source.
func (s *VideoSource) WatchURL() string {
	if s.Kind != SourceYouTube {
		return ""
	}
	if s.VideoID != "" {
		return "https://www.youtube.com/watch?v=" + s.VideoID
	}
	return s.URL
}

var videoMIMETypes = map[string]string{
	".mp4":  "video/mp4",
	".m4v":  "video/mp4",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".mkv":  "video/x-matroska",
	".webm": "video/webm",
	".mpeg": "video/mpeg",
	".mpg":  "video/mpeg",
}

// NewFileSource builds a file-backed source, rejecting extensions the
// model cannot ingest.
func NewFileSource(path string) (*VideoSource, error) {
	ext := strings.ToLower(filepath.Ext(path))
	mime, ok := videoMIMETypes[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported video format %q", ext)
	}
	return &VideoSource{Kind: SourceFile, Path: path, MIMEType: mime}, nil
}

// NewYouTubeSource builds a URL-backed source from an already extracted
// 11-character video ID.
func NewYouTubeSource(url, videoID string) *VideoSource {
	return &VideoSource{Kind: SourceYouTube, URL: url, VideoID: videoID}
}

// SuggestedClip is one highlight the model proposes. Clips are metadata
// only: no media is ever cut. Clips may overlap and arrive in whatever
// order the model ranked them.
type SuggestedClip struct {
	Title       string   `json:"title"`
	StartTime   string   `json:"startTime"` // MM:SS
	EndTime     string   `json:"endTime"`   // MM:SS
	Description string   `json:"description"`
	ViralScore  int      `json:"viralScore"` // 1-10
	Hashtags    []string `json:"hashtags"`
}

// VideoAnalysis is the structured result produced once per analysis
// request. Immutable; replaced wholesale on reset or re-analysis.
type VideoAnalysis struct {
	VideoTitle     string          `json:"videoTitle"`
	Summary        string          `json:"summary"`
	Category       string          `json:"category"`
	SuggestedClips []SuggestedClip `json:"suggestedClips"`
}

// Role attributes a chat turn to one side of the exchange.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// ChatTurn is one message in the conversation about the current video.
type ChatTurn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}
