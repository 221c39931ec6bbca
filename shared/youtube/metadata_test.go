package youtube

import "testing"

func TestParseDurationSeconds(t *testing.T) {
	tests := []struct {
		name     string
		duration string
		expected int
	}{
		{name: "Minutes and seconds", duration: "PT1M30S", expected: 90},
		{name: "Seconds only", duration: "PT45S", expected: 45},
		{name: "Hours minutes seconds", duration: "PT2H15M30S", expected: 8130},
		{name: "Hours only", duration: "PT1H", expected: 3600},
		{name: "Empty", duration: "", expected: 0},
		{name: "Garbage", duration: "not-a-duration", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseDurationSeconds(tt.duration); got != tt.expected {
				t.Errorf("parseDurationSeconds(%q) = %d, want %d", tt.duration, got, tt.expected)
			}
		})
	}
}
