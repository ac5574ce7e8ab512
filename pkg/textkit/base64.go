package textkit

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Base64Operations lists the supported Base64 operations in display order
var Base64Operations = []string{"encode", "decode"}

// ConvertBase64 applies the named Base64 operation to text. The operation
// selector is matched case-insensitively.
func ConvertBase64(text, operation string) (string, error) {
	switch strings.ToLower(operation) {
	case "encode":
		return EncodeBase64(text), nil
	case "decode":
		return DecodeBase64(text)
	default:
		return "", newError(KindUnknownSelector,
			"Invalid operation. Use 'encode' or 'decode'")
	}
}

// EncodeBase64 encodes the UTF-8 bytes of text using the standard Base64
// alphabet with padding
func EncodeBase64(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

// DecodeBase64 decodes standard Base64 text back into a UTF-8 string.
// Malformed input (bad alphabet or padding) and decoded bytes that are not
// valid UTF-8 are both decode failures.
func DecodeBase64(text string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return "", wrapError(KindDecodeFailure,
			fmt.Sprintf("Error with Base64 operation: %v", err), err)
	}
	if !utf8.Valid(decoded) {
		return "", newError(KindDecodeFailure,
			"Error with Base64 operation: decoded data is not valid UTF-8 text")
	}
	return string(decoded), nil
}
