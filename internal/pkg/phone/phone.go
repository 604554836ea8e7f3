package phone

import (
	"sort"
	"strings"
)

// DefaultCountry is returned when no prefix matches. The resolver never
// fails; malformed input degrades to the platform's home market.
const DefaultCountry = "CI"

// DefaultProvince is the fallback region for Canadian numbers whose area
// code is missing from the province table.
const DefaultProvince = "Ontario"

// sortedPrefixes holds the dial-code prefixes ordered by descending
// length so that a longer, more specific prefix always matches before a
// shorter overlapping one. Computed once at package load.
var sortedPrefixes []string

func init() {
	sortedPrefixes = make([]string, 0, len(dialCodes))
	for prefix := range dialCodes {
		sortedPrefixes = append(sortedPrefixes, prefix)
	}
	sort.Slice(sortedPrefixes, func(i, j int) bool {
		if len(sortedPrefixes[i]) != len(sortedPrefixes[j]) {
			return len(sortedPrefixes[i]) > len(sortedPrefixes[j])
		}
		return sortedPrefixes[i] < sortedPrefixes[j]
	})
}

// Normalize strips formatting characters and the international call
// prefix ("+" or "00") from a raw phone string.
func Normalize(raw string) string {
	stripped := strings.ReplaceAll(raw, " ", "")
	stripped = strings.ReplaceAll(stripped, "-", "")
	stripped = strings.ReplaceAll(stripped, "(", "")
	stripped = strings.ReplaceAll(stripped, ")", "")

	if strings.HasPrefix(stripped, "+") {
		stripped = stripped[1:]
	} else if strings.HasPrefix(stripped, "00") {
		stripped = stripped[2:]
	}

	return stripped
}

// Country resolves a raw phone string to a best-effort ISO country code.
// North American numbers are disambiguated by area code; everything else
// goes through longest-prefix matching over the dial-code table. Unknown
// or malformed numbers resolve to DefaultCountry.
func Country(raw string) string {
	number := Normalize(raw)
	if number == "" {
		return DefaultCountry
	}

	if area, ok := NorthAmericanAreaCode(number); ok {
		if canadianAreaCodes[area] {
			return "CA"
		}
		return "US"
	}

	for _, prefix := range sortedPrefixes {
		if strings.HasPrefix(number, prefix) {
			return dialCodes[prefix]
		}
	}

	return DefaultCountry
}

// NorthAmericanAreaCode extracts the 3-digit area code from a normalized
// number in the North American Numbering Plan. The second return value is
// false when the number is not a NANP number or is too short to carry an
// area code.
func NorthAmericanAreaCode(number string) (string, bool) {
	if !strings.HasPrefix(number, "1") || len(number) < 4 {
		return "", false
	}
	return number[1:4], true
}

// CanadianProvince returns the province for a Canadian number's area
// code, re-extracting the same area code used for country resolution.
// Area codes absent from the province table fall back to
// DefaultProvince, never an empty region.
func CanadianProvince(raw string) string {
	area, ok := NorthAmericanAreaCode(Normalize(raw))
	if !ok {
		return DefaultProvince
	}
	if province, found := canadianProvinces[area]; found {
		return province
	}
	return DefaultProvince
}
