package slug

import "testing"

func TestGenerate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Summer Gala, 2026!", "summer-gala-2026"},
		{"Hello World", "hello-world"},
		{"  leading and trailing  ", "leading-and-trailing"},
		{"Already-Hyphenated", "already-hyphenated"},
		{"multiple   spaces", "multiple-spaces"},
		{"Special @#$ Characters", "special-characters"},
		{"---edges---", "edges"},
		{"", ""},
		{"!!!", ""},
		{"MiXeD CaSe", "mixed-case"},
	}

	for _, tt := range tests {
		if got := Generate(tt.in); got != tt.want {
			t.Errorf("Generate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
