package tools

// Argument accessors with defaulting. Required-field presence is checked
// inside each handler (a missing "text" surfaces as the empty-input error),
// not by a shared validator; these helpers keep that checking uniform.

// stringArg returns the string value for key, or def when absent or not a
// string
func stringArg(arguments map[string]interface{}, key, def string) string {
	if value, ok := arguments[key].(string); ok {
		return value
	}
	return def
}

// intArg returns the integer value for key, accepting the numeric types
// JSON decoding can produce, or def when absent or not numeric
func intArg(arguments map[string]interface{}, key string, def int) int {
	switch v := arguments[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return def
	}
}

// boolArg returns the boolean value for key, or def when absent or not a
// boolean
func boolArg(arguments map[string]interface{}, key string, def bool) bool {
	if value, ok := arguments[key].(bool); ok {
		return value
	}
	return def
}
