package textkit

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		text string
		mode string
		want string
	}{
		{"BasicCollapsesSpaces", "  a   b  \n  c  ", "basic", "a b\nc"},
		{"BasicKeepsNewlines", "one  two\nthree   four", "basic", "one two\nthree four"},
		{"AggressiveFlattensWhitespace", "a \n\n b\t\tc", "aggressive", "a b c"},
		{"NormalizeLimitsBlankLines", "a\n\n\n\n\nb", "normalize", "a\n\nb"},
		{"NormalizeTrimsLines", "  a   b \n\n  c ", "normalize", "a b\n\nc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Clean(tt.text, tt.mode)
			if err != nil {
				t.Fatalf("Clean(%q, %q) failed: %v", tt.text, tt.mode, err)
			}
			if got != tt.want {
				t.Errorf("Clean(%q, %q) = %q, want %q", tt.text, tt.mode, got, tt.want)
			}
		})
	}
}

func TestClean_Errors(t *testing.T) {
	t.Run("EmptyText", func(t *testing.T) {
		_, err := Clean(" \t ", "basic")
		if !IsKind(err, KindEmptyInput) {
			t.Errorf("Expected empty input error, got %v", err)
		}
	})

	t.Run("UnknownMode", func(t *testing.T) {
		_, err := Clean("hello", "extreme")
		if !IsKind(err, KindUnknownSelector) {
			t.Errorf("Expected unknown selector error, got %v", err)
		}
	})

	t.Run("ModeIsCaseSensitive", func(t *testing.T) {
		_, err := Clean("hello", "BASIC")
		if !IsKind(err, KindUnknownSelector) {
			t.Errorf("Expected unknown selector error for uppercase mode, got %v", err)
		}
	})
}
