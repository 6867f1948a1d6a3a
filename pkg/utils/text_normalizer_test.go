package utils

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercases and strips punctuation",
			input: "T-Shirt",
			want:  "tshirt",
		},
		{
			name:  "collapses long runs to two",
			input: "tshirttt",
			want:  "tshirtt",
		},
		{
			name:  "hoodie with stretched vowels",
			input: "Hoooodie",
			want:  "hoodie",
		},
		{
			name:  "plain hoodie unchanged",
			input: "Hoodie",
			want:  "hoodie",
		},
		{
			name:  "keeps digits",
			input: "Size 42!",
			want:  "size42",
		},
		{
			name:  "whitespace only",
			input: "  \t \n ",
			want:  "",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "double letters survive",
			input: "coffee",
			want:  "coffee",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"T-Shirt", "Hoooodie", "tshirttt", "", "Size 42!", "aaaaaabbbbbb"}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
