package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountry(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		expected string
	}{
		{
			name:     "Senegal with plus sign",
			phone:    "+221771234567",
			expected: "SN",
		},
		{
			name:     "Ivory Coast with spaces",
			phone:    "+225 07 12 34 56 78",
			expected: "CI",
		},
		{
			name:     "Mali with 00 prefix",
			phone:    "0022376123456",
			expected: "ML",
		},
		{
			name:     "Burkina Faso",
			phone:    "+22670123456",
			expected: "BF",
		},
		{
			name:     "France",
			phone:    "+33612345678",
			expected: "FR",
		},
		{
			name:     "United Kingdom",
			phone:    "+447911123456",
			expected: "GB",
		},
		{
			name:     "Nigeria",
			phone:    "+2348031234567",
			expected: "NG",
		},
		{
			name:     "Empty string degrades to default",
			phone:    "",
			expected: DefaultCountry,
		},
		{
			name:     "Garbage input degrades to default",
			phone:    "not-a-number",
			expected: DefaultCountry,
		},
		{
			name:     "Unmatched prefix degrades to default",
			phone:    "+999123456789",
			expected: DefaultCountry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Country(tt.phone))
		})
	}
}

func TestCountry_LongestPrefixWins(t *testing.T) {
	// "7" (Russia) and "77" (Kazakhstan) overlap; the longer prefix must
	// win regardless of map iteration order.
	assert.Equal(t, "KZ", Country("+77011234567"))
	assert.Equal(t, "KZ", Country("+77771234567"))
	assert.Equal(t, "RU", Country("+79161234567"))

	// "35" is not a prefix of its own; "351"/"352"/"353" are distinct entries.
	assert.Equal(t, "PT", Country("+351912345678"))
	assert.Equal(t, "LU", Country("+352621123456"))
	assert.Equal(t, "IE", Country("+353871234567"))
}

func TestCountry_NorthAmerica(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		expected string
	}{
		{
			name:     "Toronto area code is Canada",
			phone:    "+14165551234",
			expected: "CA",
		},
		{
			name:     "Montreal area code is Canada",
			phone:    "+15145551234",
			expected: "CA",
		},
		{
			name:     "Vancouver area code is Canada",
			phone:    "+16045551234",
			expected: "CA",
		},
		{
			name:     "New York area code is United States",
			phone:    "+12125551234",
			expected: "US",
		},
		{
			name:     "Los Angeles area code is United States",
			phone:    "+13105551234",
			expected: "US",
		},
		{
			name:     "Unknown NANP area code defaults to United States",
			phone:    "+19995551234",
			expected: "US",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Country(tt.phone))
		})
	}
}

func TestNorthAmericanAreaCode(t *testing.T) {
	area, ok := NorthAmericanAreaCode("14165551234")
	assert.True(t, ok)
	assert.Equal(t, "416", area)

	// Too short to carry an area code
	_, ok = NorthAmericanAreaCode("141")
	assert.False(t, ok)

	// Not a NANP number
	_, ok = NorthAmericanAreaCode("221771234567")
	assert.False(t, ok)
}

func TestCanadianProvince(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		expected string
	}{
		{
			name:     "Toronto resolves to Ontario",
			phone:    "+14165551234",
			expected: "Ontario",
		},
		{
			name:     "Montreal resolves to Quebec",
			phone:    "+15145551234",
			expected: "Quebec",
		},
		{
			name:     "Calgary resolves to Alberta",
			phone:    "+14035551234",
			expected: "Alberta",
		},
		{
			name:     "Area code outside province table falls back to default",
			phone:    "+13545551234",
			expected: DefaultProvince,
		},
		{
			name:     "Malformed number falls back to default",
			phone:    "abc",
			expected: DefaultProvince,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			province := CanadianProvince(tt.phone)
			assert.Equal(t, tt.expected, province)
			assert.NotEmpty(t, province, "province must never resolve empty")
		})
	}
}

func TestCanadianAreaCodeTables_Consistency(t *testing.T) {
	// Every province entry must also be a recognized Canadian area code,
	// otherwise country and region resolution would disagree.
	for area := range canadianProvinces {
		assert.True(t, canadianAreaCodes[area], "area code %s has a province but is not in the Canadian set", area)
	}
}

func BenchmarkCountry(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Country("+221771234567")
	}
}
