package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitFullName(t *testing.T) {
	tests := []struct {
		name          string
		fullName      string
		surname       string
		wantFirstName string
		wantSurname   string
	}{
		{
			name:          "explicit surname wins",
			fullName:      "Awa Diop",
			surname:       "Ndiaye",
			wantFirstName: "Awa Diop",
			wantSurname:   "Ndiaye",
		},
		{
			name:          "two tokens split on last",
			fullName:      "Awa Diop",
			wantFirstName: "Awa",
			wantSurname:   "Diop",
		},
		{
			name:          "three tokens keep middle in first name",
			fullName:      "Jean Marc Kouassi",
			wantFirstName: "Jean Marc",
			wantSurname:   "Kouassi",
		},
		{
			name:          "single token gets placeholder surname",
			fullName:      "Awa",
			wantFirstName: "Awa",
			wantSurname:   FallbackSurname,
		},
		{
			name:          "surrounding whitespace trimmed",
			fullName:      "  Moussa   Ba  ",
			wantFirstName: "Moussa",
			wantSurname:   "Ba",
		},
		{
			name:          "empty name gets placeholder surname",
			fullName:      "",
			wantFirstName: "",
			wantSurname:   FallbackSurname,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := SplitFullName(tt.fullName, tt.surname)
			assert.Equal(t, tt.wantFirstName, first)
			assert.Equal(t, tt.wantSurname, last)
		})
	}
}

func TestMaskPhoneNumber(t *testing.T) {
	assert.Equal(t, "********4567", MaskPhoneNumber("+221771234567"))
	assert.Equal(t, "123", MaskPhoneNumber("123"))
	assert.Equal(t, "", MaskPhoneNumber(""))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("client@gomonto.com"))
	assert.True(t, IsValidEmail("awa.diop+test@example.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("@gomonto.com"))
}
