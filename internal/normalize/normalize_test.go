package normalize

import "testing"

func TestFold(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Coding", "coding"},
		{"  LEGO Robotics  ", "lego robotics"},
		{"Straße", "strasse"},
		{"a\x00b", "ab"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := Fold(tt.input)
			if result != tt.expected {
				t.Errorf("Fold(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestHaystack(t *testing.T) {
	got := Haystack("Camp Galileo", "STEM fun", "science outdoor", "Galileo")
	want := "camp galileo stem fun science outdoor galileo"
	if got != want {
		t.Errorf("Haystack() = %q, want %q", got, want)
	}
}
