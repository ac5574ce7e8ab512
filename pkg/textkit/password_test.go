package textkit

import (
	"strings"
	"testing"
)

func TestGeneratePassword(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		password, err := GeneratePassword(DefaultPasswordOptions())
		if err != nil {
			t.Fatalf("GeneratePassword() failed: %v", err)
		}

		if len(password.Value) != 16 {
			t.Errorf("Expected 16 characters, got %d", len(password.Value))
		}
		if password.Strength == "" {
			t.Error("Expected a strength rating")
		}
		if len(password.Classes()) == 0 {
			t.Error("Expected at least one character class present")
		}
	})

	t.Run("LettersOnly", func(t *testing.T) {
		opts := DefaultPasswordOptions()
		opts.Length = 50
		opts.Numbers = false
		opts.Symbols = false

		password, err := GeneratePassword(opts)
		if err != nil {
			t.Fatalf("GeneratePassword() failed: %v", err)
		}

		if strings.ContainsAny(password.Value, digitChars) {
			t.Errorf("Password contains digits despite Numbers=false: %q", password.Value)
		}
		if strings.ContainsAny(password.Value, symbolChars) {
			t.Errorf("Password contains symbols despite Symbols=false: %q", password.Value)
		}
		if password.HasDigit || password.HasSymbol {
			t.Error("Analysis reports disabled classes as present")
		}
	})

	t.Run("ExcludeAmbiguous", func(t *testing.T) {
		opts := DefaultPasswordOptions()
		opts.Length = 50
		opts.ExcludeAmbiguous = true

		password, err := GeneratePassword(opts)
		if err != nil {
			t.Fatalf("GeneratePassword() failed: %v", err)
		}

		if strings.ContainsAny(password.Value, "lOI01") {
			t.Errorf("Password contains ambiguous characters: %q", password.Value)
		}
	})

	t.Run("StrengthScale", func(t *testing.T) {
		// Length 50 with all classes enabled virtually guarantees all four
		// are present, but the assertion only requires a valid level.
		password, err := GeneratePassword(PasswordOptions{
			Length: 50, Lowercase: true, Uppercase: true, Numbers: true, Symbols: true,
		})
		if err != nil {
			t.Fatalf("GeneratePassword() failed: %v", err)
		}

		valid := false
		for _, level := range strengthLevels {
			if password.Strength == level {
				valid = true
				break
			}
		}
		if !valid {
			t.Errorf("Unknown strength level %q", password.Strength)
		}
	})

	t.Run("TooShort", func(t *testing.T) {
		opts := DefaultPasswordOptions()
		opts.Length = 5
		_, err := GeneratePassword(opts)
		if !IsKind(err, KindOutOfRange) {
			t.Errorf("Expected out of range error, got %v", err)
		}
		if err.Error() != "Password length must be between 8 and 50 characters" {
			t.Errorf("Unexpected error message: %q", err.Error())
		}
	})

	t.Run("TooLong", func(t *testing.T) {
		opts := DefaultPasswordOptions()
		opts.Length = 51
		_, err := GeneratePassword(opts)
		if !IsKind(err, KindOutOfRange) {
			t.Errorf("Expected out of range error, got %v", err)
		}
	})

	t.Run("NoClassesEnabled", func(t *testing.T) {
		_, err := GeneratePassword(PasswordOptions{Length: 16})
		if !IsKind(err, KindEmptyInput) {
			t.Errorf("Expected empty pool error, got %v", err)
		}
		if err.Error() != "No characters available with current settings" {
			t.Errorf("Unexpected error message: %q", err.Error())
		}
	})

	t.Run("SuccessiveValuesDiffer", func(t *testing.T) {
		opts := DefaultPasswordOptions()
		first, err := GeneratePassword(opts)
		if err != nil {
			t.Fatalf("GeneratePassword() failed: %v", err)
		}
		second, err := GeneratePassword(opts)
		if err != nil {
			t.Fatalf("GeneratePassword() failed: %v", err)
		}
		// 62+ character pool over 16 positions; a collision means the
		// random source is broken
		if first.Value == second.Value {
			t.Error("Two generated passwords were identical")
		}
	})
}
