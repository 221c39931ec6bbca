package youtube

import "testing"

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
		wantErr  bool
	}{
		{
			name:     "Watch URL",
			url:      "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "Short URL",
			url:      "https://youtu.be/dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "Embed URL",
			url:      "https://www.youtube.com/embed/dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "Legacy v path",
			url:      "https://www.youtube.com/v/dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "User page path",
			url:      "https://www.youtube.com/u/s/dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "v as later query parameter",
			url:      "https://www.youtube.com/watch?feature=shared&v=dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "Watch URL with timestamp",
			url:      "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:    "Not a video site",
			url:     "https://example.com/not-a-video",
			wantErr: true,
		},
		{
			name:    "YouTube homepage",
			url:     "https://www.youtube.com/",
			wantErr: true,
		},
		{
			name:    "ID too short",
			url:     "https://youtu.be/short",
			wantErr: true,
		},
		{
			name:    "Empty",
			url:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractVideoID(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ExtractVideoID(%q) expected an error, got %q", tt.url, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractVideoID(%q) unexpected error: %v", tt.url, err)
			}
			if got != tt.expected {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.url, got, tt.expected)
			}
			if len(got) != 11 {
				t.Errorf("ExtractVideoID(%q) returned an ID of length %d, want 11", tt.url, len(got))
			}
		})
	}
}
