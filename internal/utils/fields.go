// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "strings"

// Field is one labelled value extracted from a card's decrypted data tree.
type Field struct {
	Label     string
	Value     string
	Sensitive bool
}

// sensitiveLabels marks field labels whose values should be masked in any
// interactive display.
var sensitiveLabels = []string{"password", "pin", "cvc", "cvv", "secret", "totp"}

// ExtractFields walks a card's schema-free data tree and pulls out the
// Enpass field list: a top-level "fields" array of {label, value, sensitive}
// objects. Cards without such a list (free-form notes, unknown templates)
// yield no fields; the raw tree remains available to the caller.
func ExtractFields(data any) []Field {
	root, ok := data.(map[string]any)
	if !ok {
		return nil
	}

	rawFields, ok := root["fields"].([]any)
	if !ok {
		return nil
	}

	fields := make([]Field, 0, len(rawFields))
	for _, raw := range rawFields {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		field := Field{}
		if label, ok := entry["label"].(string); ok {
			field.Label = label
		}
		if value, ok := entry["value"].(string); ok {
			field.Value = value
		}
		if sensitive, ok := entry["sensitive"].(bool); ok {
			field.Sensitive = sensitive
		}
		if !field.Sensitive {
			field.Sensitive = isSensitiveLabel(field.Label)
		}

		fields = append(fields, field)
	}

	return fields
}

// FindPassword returns the value of the first password-like field.
func FindPassword(fields []Field) (string, bool) {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field.Label), "password") {
			return field.Value, true
		}
	}
	// Fall back to any sensitive field (PIN-only cards and the like).
	for _, field := range fields {
		if field.Sensitive {
			return field.Value, true
		}
	}
	return "", false
}

func isSensitiveLabel(label string) bool {
	lower := strings.ToLower(label)
	for _, marker := range sensitiveLabels {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
