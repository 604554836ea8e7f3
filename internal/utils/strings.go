package utils

import (
	"regexp"
	"strings"
)

// FallbackSurname is used when a customer supplies a single-token name and
// no separate surname. The aggregator rejects empty surname fields.
const FallbackSurname = "GoMonto"

// SplitFullName derives first name and surname for the payment provider.
// If a surname is supplied separately it wins; otherwise the last
// whitespace-delimited token becomes the surname and the remainder the
// first name. A single-token name keeps the token as first name and falls
// back to a fixed placeholder surname. This is a heuristic, not a legal
// name split.
func SplitFullName(fullName, surname string) (string, string) {
	fullName = strings.TrimSpace(fullName)
	if surname != "" {
		return fullName, surname
	}

	tokens := strings.Fields(fullName)
	switch len(tokens) {
	case 0:
		return "", FallbackSurname
	case 1:
		return tokens[0], FallbackSurname
	default:
		return strings.Join(tokens[:len(tokens)-1], " "), tokens[len(tokens)-1]
	}
}

// IsValidEmail checks if a string is a valid email address
func IsValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9_%+\-]([a-zA-Z0-9._%+\-]*[a-zA-Z0-9_%+\-])?@[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?)*\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// MaskPhoneNumber masks a phone number, keeping only the last 4 digits visible
func MaskPhoneNumber(phone string) string {
	cleanPhone := regexp.MustCompile(`[^0-9]`).ReplaceAllString(phone, "")
	if len(cleanPhone) <= 4 {
		return cleanPhone
	}

	return strings.Repeat("*", len(cleanPhone)-4) + cleanPhone[len(cleanPhone)-4:]
}
