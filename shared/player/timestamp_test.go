package player

import "testing"

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		wantErr  bool
	}{
		{name: "Minute and a half", input: "01:30", expected: 90},
		{name: "Seconds only", input: "00:05", expected: 5},
		{name: "Zero", input: "00:00", expected: 0},
		{name: "Max representable", input: "99:59", expected: 5999},
		{name: "Surrounding whitespace", input: " 02:10 ", expected: 130},
		{name: "Missing seconds", input: "01", wantErr: true},
		{name: "Hour component unsupported", input: "01:02:03", wantErr: true},
		{name: "Non-numeric", input: "aa:bb", wantErr: true},
		{name: "Seconds out of range", input: "01:75", wantErr: true},
		{name: "Negative minutes", input: "-1:30", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseTimestamp(%q) expected an error, got %d", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimestamp(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseTimestamp(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}
