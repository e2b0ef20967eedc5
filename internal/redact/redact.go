// Package redact strips sensitive values from data before it is logged.
// Payloads are redacted by key name (password, token, and similar), free
// text by pattern (connection-string credentials, bearer tokens, JWTs).
package redact

import (
	"net/url"
	"regexp"
	"strings"
)

// Placeholder replaces redacted values.
const Placeholder = "[REDACTED]"

// sensitiveKeys are matched against lower-cased keys with "-" and "_"
// removed, so "api_key", "Api-Key", and "apiKey" all match.
var sensitiveKeys = []string{
	"password", "passwd", "pwd", "secret", "token", "authorization",
	"apikey", "accesskey", "privatekey", "credential", "cookie", "session",
	"ssn", "creditcard", "cardnumber", "cvv",
}

var (
	dbConnRegex   = regexp.MustCompile(`(?i)\b([a-z][a-z0-9+.-]*://)[^/@\s]+@`)
	bearerRegex   = regexp.MustCompile(`(?i)\b(bearer|basic)\s+[A-Za-z0-9_\-.~+/=]{8,}`)
	jwtTokenRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)
	passwordRegex = regexp.MustCompile(`(?i)\b(password|passwd|pwd|secret|token)(\s*[=:]\s*)['"]?[^'"&\s,]{3,}`)
)

// IsSensitiveKey reports whether values stored under key should be hidden.
func IsSensitiveKey(key string) bool {
	k := strings.ToLower(key)
	k = strings.NewReplacer("-", "", "_", "").Replace(k)
	for _, s := range sensitiveKeys {
		if strings.Contains(k, s) {
			return true
		}
	}
	return false
}

// Payload returns a copy of m with sensitive keys masked.  Nested objects
// and arrays are walked; free-text string values go through String.
func Payload(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = Value(k, v)
	}
	return out
}

// Query returns a copy of q with sensitive parameters masked.
func Query(q url.Values) map[string]any {
	if q == nil {
		return nil
	}
	out := make(map[string]any, len(q))
	for k, vals := range q {
		switch {
		case IsSensitiveKey(k):
			out[k] = Placeholder
		case len(vals) == 1:
			out[k] = String(vals[0])
		default:
			list := make([]string, len(vals))
			for i, s := range vals {
				list[i] = String(s)
			}
			out[k] = list
		}
	}
	return out
}

// Value redacts v as found under key.
func Value(key string, v any) any {
	if v != nil && IsSensitiveKey(key) {
		return Placeholder
	}
	switch x := v.(type) {
	case string:
		return String(x)
	case map[string]any:
		return Payload(x)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = Value(key, e)
		}
		return out
	}
	return v
}

// String masks credentials embedded in free text.
func String(s string) string {
	if s == "" {
		return s
	}
	s = dbConnRegex.ReplaceAllString(s, "${1}"+Placeholder+"@")
	s = jwtTokenRegex.ReplaceAllString(s, Placeholder)
	s = bearerRegex.ReplaceAllString(s, "${1} "+Placeholder)
	s = passwordRegex.ReplaceAllString(s, "${1}${2}"+Placeholder)
	return s
}

// Error returns err's message with credentials masked.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

