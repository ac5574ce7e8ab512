package textkit

import (
	"strings"
	"testing"
)

func TestEncodeBase64(t *testing.T) {
	if got := EncodeBase64("hello"); got != "aGVsbG8=" {
		t.Errorf("EncodeBase64(\"hello\") = %q, want %q", got, "aGVsbG8=")
	}
	if got := EncodeBase64(""); got != "" {
		t.Errorf("EncodeBase64(\"\") = %q, want empty string", got)
	}
}

func TestDecodeBase64(t *testing.T) {
	t.Run("ValidInput", func(t *testing.T) {
		got, err := DecodeBase64("aGVsbG8=")
		if err != nil {
			t.Fatalf("DecodeBase64() failed: %v", err)
		}
		if got != "hello" {
			t.Errorf("DecodeBase64(\"aGVsbG8=\") = %q, want %q", got, "hello")
		}
	})

	t.Run("MalformedInput", func(t *testing.T) {
		_, err := DecodeBase64("not valid base64!!!")
		if !IsKind(err, KindDecodeFailure) {
			t.Errorf("Expected decode failure, got %v", err)
		}
		if !strings.HasPrefix(err.Error(), "Error with Base64 operation:") {
			t.Errorf("Unexpected error message: %q", err.Error())
		}
	})

	t.Run("NonUTF8Payload", func(t *testing.T) {
		// "/w==" decodes to the single byte 0xFF
		_, err := DecodeBase64("/w==")
		if !IsKind(err, KindDecodeFailure) {
			t.Errorf("Expected decode failure for non-UTF-8 payload, got %v", err)
		}
	})
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"hello world",
		"unicode: héllo wörld 日本語",
		"symbols !@#$%^&*()",
		"multi\nline\ntext",
	}

	for _, input := range inputs {
		decoded, err := DecodeBase64(EncodeBase64(input))
		if err != nil {
			t.Errorf("round trip of %q failed: %v", input, err)
			continue
		}
		if decoded != input {
			t.Errorf("round trip of %q = %q", input, decoded)
		}
	}
}

func TestConvertBase64(t *testing.T) {
	t.Run("Encode", func(t *testing.T) {
		got, err := ConvertBase64("hello", "encode")
		if err != nil {
			t.Fatalf("ConvertBase64() failed: %v", err)
		}
		if got != "aGVsbG8=" {
			t.Errorf("ConvertBase64 encode = %q", got)
		}
	})

	t.Run("OperationIsCaseInsensitive", func(t *testing.T) {
		got, err := ConvertBase64("aGVsbG8=", "DECODE")
		if err != nil {
			t.Fatalf("ConvertBase64() failed: %v", err)
		}
		if got != "hello" {
			t.Errorf("ConvertBase64 decode = %q", got)
		}
	})

	t.Run("UnknownOperation", func(t *testing.T) {
		_, err := ConvertBase64("hello", "rot13")
		if !IsKind(err, KindUnknownSelector) {
			t.Errorf("Expected unknown selector error, got %v", err)
		}
	})
}
