package sanitize_test

import (
	"testing"

	"lifelink/internal/app/system/sanitize"
)

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "Need O+ blood at Dhaka Medical", "Need O+ blood at Dhaka Medical"},
		{"strips script", "urgent<script>alert('x')</script>", "urgent"},
		{"strips tags", "<b>please</b> help", "please help"},
		{"trims", "  hello  ", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitize.Text(tt.input); got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
