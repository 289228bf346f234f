package logger

import (
	"log/slog"
	"strings"
)

// Sensitive key patterns that should be masked. Contact records carry
// personal data, so phone numbers and email addresses never reach the
// logs in full.
var sensitiveKeyPatterns = []string{
	"phone",
	"email",
	"password",
	"secret",
	"token",
	"credential",
}

// redactedValue is the placeholder for fully redacted data.
const redactedValue = "***REDACTED***"

// redactSensitive checks if an attribute contains sensitive data
// and masks it if necessary.
func redactSensitive(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindString {
		strVal := a.Value.String()
		if strVal == "" {
			return a
		}

		keyLower := strings.ToLower(a.Key)
		switch {
		case strings.Contains(keyLower, "phone"):
			return slog.String(a.Key, MaskPhone(strVal))
		case strings.Contains(keyLower, "email"):
			return slog.String(a.Key, MaskEmail(strVal))
		}

		for _, pattern := range sensitiveKeyPatterns {
			if strings.Contains(keyLower, pattern) {
				return slog.String(a.Key, redactedValue)
			}
		}
	}

	// Handle nested groups recursively
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}

	return a
}

// MaskPhone masks a phone number, keeping only the last two digits.
func MaskPhone(value string) string {
	if len(value) <= 2 {
		return "***"
	}
	return strings.Repeat("*", len(value)-2) + value[len(value)-2:]
}

// MaskEmail masks the local part of an email address, keeping the first
// character and the domain. Values without an @ are fully redacted.
func MaskEmail(value string) string {
	local, domain, ok := strings.Cut(value, "@")
	if !ok || local == "" {
		return redactedValue
	}
	return local[:1] + "***@" + domain
}

// IsSensitiveKey checks if a key name suggests sensitive content.
func IsSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}
