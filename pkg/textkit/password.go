package textkit

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// MinPasswordLength is the shortest password the generator will produce
	MinPasswordLength = 8

	// MaxPasswordLength is the longest password the generator will produce
	MaxPasswordLength = 50

	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// strengthLevels is the ordinal strength scale, indexed by the number of
// character classes present in the generated password (capped at 4)
var strengthLevels = []string{"Very Weak", "Weak", "Fair", "Good", "Strong"}

// PasswordOptions selects the character classes for password generation.
// Each class is toggled independently; ExcludeAmbiguous removes the
// visually confusable characters l, O, I, 0 and 1 from their classes.
type PasswordOptions struct {
	Length           int
	Lowercase        bool
	Uppercase        bool
	Numbers          bool
	Symbols          bool
	ExcludeAmbiguous bool
}

// DefaultPasswordOptions mirrors the tool's schema defaults
func DefaultPasswordOptions() PasswordOptions {
	return PasswordOptions{
		Length:    16,
		Lowercase: true,
		Uppercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Password is a generated password together with its composition analysis
type Password struct {
	Value     string
	Strength  string
	HasLower  bool
	HasUpper  bool
	HasDigit  bool
	HasSymbol bool
}

// Classes returns the names of the character classes present in the
// generated value, in a fixed order
func (p Password) Classes() []string {
	classes := make([]string, 0, 4)
	if p.HasLower {
		classes = append(classes, "lowercase")
	}
	if p.HasUpper {
		classes = append(classes, "uppercase")
	}
	if p.HasDigit {
		classes = append(classes, "numbers")
	}
	if p.HasSymbol {
		classes = append(classes, "symbols")
	}
	return classes
}

// GeneratePassword draws each character independently and uniformly from
// the combined pool using crypto/rand. This is the one operation in the
// package with a real security requirement: the random source must be
// cryptographically strong, never a general-purpose PRNG.
func GeneratePassword(opts PasswordOptions) (Password, error) {
	if opts.Length < MinPasswordLength || opts.Length > MaxPasswordLength {
		return Password{}, newError(KindOutOfRange,
			fmt.Sprintf("Password length must be between %d and %d characters",
				MinPasswordLength, MaxPasswordLength))
	}

	lowercase, uppercase, digits, symbols := characterClasses(opts)
	pool := lowercase + uppercase + digits + symbols
	if pool == "" {
		return Password{}, newError(KindEmptyInput,
			"No characters available with current settings")
	}

	chars := make([]byte, opts.Length)
	max := big.NewInt(int64(len(pool)))
	for i := range chars {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return Password{}, wrapError(KindInternal,
				"random source unavailable", err)
		}
		chars[i] = pool[n.Int64()]
	}
	value := string(chars)

	password := Password{
		Value:     value,
		HasLower:  strings.ContainsAny(value, lowercase),
		HasUpper:  strings.ContainsAny(value, uppercase),
		HasDigit:  strings.ContainsAny(value, digits),
		HasSymbol: strings.ContainsAny(value, symbols),
	}

	score := 0
	for _, present := range []bool{password.HasLower, password.HasUpper, password.HasDigit, password.HasSymbol} {
		if present {
			score++
		}
	}
	if score > 4 {
		score = 4
	}
	password.Strength = strengthLevels[score]

	return password, nil
}

// characterClasses builds the four class strings according to the options.
// Disabled classes come back empty so membership checks stay uniform.
func characterClasses(opts PasswordOptions) (lowercase, uppercase, digits, symbols string) {
	if opts.Lowercase {
		lowercase = lowercaseChars
	}
	if opts.Uppercase {
		uppercase = uppercaseChars
	}
	if opts.Numbers {
		digits = digitChars
	}
	if opts.Symbols {
		symbols = symbolChars
	}

	if opts.ExcludeAmbiguous {
		lowercase = strings.ReplaceAll(lowercase, "l", "")
		uppercase = strings.ReplaceAll(uppercase, "O", "")
		uppercase = strings.ReplaceAll(uppercase, "I", "")
		digits = strings.ReplaceAll(digits, "0", "")
		digits = strings.ReplaceAll(digits, "1", "")
	}

	return lowercase, uppercase, digits, symbols
}
