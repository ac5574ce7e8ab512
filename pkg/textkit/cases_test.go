package textkit

import "testing"

func TestConvertCase(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		caseType string
		want     string
	}{
		{"Upper", "hello world", "upper", "HELLO WORLD"},
		{"Lower", "HELLO World", "lower", "hello world"},
		{"Title", "hello world foo", "title", "Hello World Foo"},
		{"TitleAfterApostrophe", "it's a test", "title", "It'S A Test"},
		{"Sentence", "hello WORLD. more TEXT", "sentence", "Hello world. more text"},
		{"Camel", "hello world foo", "camel", "helloWorldFoo"},
		{"CamelStripsPunctuation", "hello, world!", "camel", "helloWorld"},
		{"Pascal", "hello world foo", "pascal", "HelloWorldFoo"},
		{"Snake", "Hello, World!", "snake", "hello_world"},
		{"SnakeCollapsesRuns", "a  -  b", "snake", "a_b"},
		{"Kebab", "Hello World", "kebab", "hello-world"},
		{"Alternating", "hello world", "alternating", "HeLlO WoRlD"},
		{"CaseTypeSelectorIsCaseInsensitive", "hello", "UPPER", "HELLO"},
		{"CamelWithoutAlnumKeepsText", "!!!", "camel", "!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertCase(tt.text, tt.caseType)
			if err != nil {
				t.Fatalf("ConvertCase(%q, %q) failed: %v", tt.text, tt.caseType, err)
			}
			if got != tt.want {
				t.Errorf("ConvertCase(%q, %q) = %q, want %q", tt.text, tt.caseType, got, tt.want)
			}
		})
	}
}

func TestConvertCase_Idempotence(t *testing.T) {
	for _, caseType := range []string{"upper", "lower", "snake", "kebab"} {
		t.Run(caseType, func(t *testing.T) {
			once, err := ConvertCase("Some Mixed Input-Text", caseType)
			if err != nil {
				t.Fatalf("first conversion failed: %v", err)
			}
			twice, err := ConvertCase(once, caseType)
			if err != nil {
				t.Fatalf("second conversion failed: %v", err)
			}
			if once != twice {
				t.Errorf("%s not idempotent: %q != %q", caseType, once, twice)
			}
		})
	}
}

func TestConvertCase_Errors(t *testing.T) {
	t.Run("EmptyText", func(t *testing.T) {
		_, err := ConvertCase("  ", "upper")
		if !IsKind(err, KindEmptyInput) {
			t.Errorf("Expected empty input error, got %v", err)
		}
	})

	t.Run("UnknownCaseType", func(t *testing.T) {
		_, err := ConvertCase("hello", "spongebob")
		if !IsKind(err, KindUnknownSelector) {
			t.Errorf("Expected unknown selector error, got %v", err)
		}
	})
}
