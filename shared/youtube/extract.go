package youtube

import (
	"fmt"
	"regexp"
	"strings"
)

// videoIDPattern covers the common URL shapes a user pastes: youtu.be/,
// /v/, /u/<char>/, /embed/ and the ?v= / &v= query forms. IDs are always
// 11 characters.
var videoIDPattern = regexp.MustCompile(`(?:youtu\.be/|/v/|/u/\w/|/embed/|[?&]v=)([A-Za-z0-9_-]{11})`)

// ExtractVideoID pulls the 11-character video ID out of a YouTube URL.
// Unrecognized URLs are rejected before any network call is made.
func ExtractVideoID(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", fmt.Errorf("empty URL")
	}

	matches := videoIDPattern.FindStringSubmatch(rawURL)
	if matches == nil {
		return "", fmt.Errorf("could not find a YouTube video ID in %q", rawURL)
	}
	return matches[1], nil
}
