package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gomonto/payments/internal/pkg/phone"
)

func TestChannels(t *testing.T) {
	tests := []struct {
		name     string
		country  string
		expected string
	}{
		{"Senegal gets all channels", "SN", ChannelsAll},
		{"Ivory Coast gets all channels", "CI", ChannelsAll},
		{"Mali gets all channels", "ML", ChannelsAll},
		{"Togo gets all channels", "TG", ChannelsAll},
		{"France is card-only", "FR", ChannelsCardOnly},
		{"Canada is card-only", "CA", ChannelsCardOnly},
		{"United States is card-only", "US", ChannelsCardOnly},
		{"Unknown country is card-only", "ZZ", ChannelsCardOnly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Channels(tt.country))
		})
	}
}

func TestSynthesize(t *testing.T) {
	t.Run("local country uses flat tables", func(t *testing.T) {
		state, city := Synthesize("SN", "+221771234567")
		assert.Equal(t, "Dakar", state)
		assert.Equal(t, "Dakar", city)
	})

	t.Run("Canada region comes from area code", func(t *testing.T) {
		state, city := Synthesize("CA", "+15145551234")
		assert.Equal(t, "Quebec", state)
		assert.Equal(t, "Toronto", city)
	})

	t.Run("Canadian area code outside province table falls back", func(t *testing.T) {
		state, _ := Synthesize("CA", "+13545551234")
		assert.Equal(t, phone.DefaultProvince, state)
		assert.NotEmpty(t, state)
	})

	t.Run("unknown country falls back to home market", func(t *testing.T) {
		state, city := Synthesize("ZZ", "")
		assert.Equal(t, FallbackRegion, state)
		assert.Equal(t, FallbackCity, city)
	})
}

func TestResolve_LocalCountry(t *testing.T) {
	profile := Resolve("SN", "+221771234567")

	assert.Equal(t, "SN", profile.Country)
	assert.Equal(t, "Dakar", profile.State)
	assert.Equal(t, "Dakar", profile.City)
	assert.Equal(t, ChannelsAll, profile.Channels)
}

func TestResolve_InternationalOverride(t *testing.T) {
	// The aggregator only accepts billing countries from its
	// locally-served set: international customers must never leak their
	// real country into the billing block.
	for _, country := range []string{"CA", "US", "FR", "GB", "JP", "ZZ"} {
		profile := Resolve(country, "+14165551234")

		assert.Equal(t, FallbackCountry, profile.Country, "country %s", country)
		assert.Equal(t, FallbackRegion, profile.State, "country %s", country)
		assert.Equal(t, FallbackCity, profile.City, "country %s", country)
		assert.Equal(t, ChannelsCardOnly, profile.Channels, "country %s", country)
	}
}

func TestResolve_EndToEndScenarios(t *testing.T) {
	t.Run("Senegal mobile money eligible", func(t *testing.T) {
		country := phone.Country("+221771234567")
		assert.Equal(t, "SN", country)

		profile := Resolve(country, "+221771234567")
		assert.Equal(t, ChannelsAll, profile.Channels)
		assert.Equal(t, "SN", profile.Country)
		assert.Equal(t, "Dakar", profile.City)
	})

	t.Run("Toronto card-only with jurisdiction override", func(t *testing.T) {
		country := phone.Country("+14165551234")
		assert.Equal(t, "CA", country)

		profile := Resolve(country, "+14165551234")
		assert.Equal(t, ChannelsCardOnly, profile.Channels)
		assert.Equal(t, "CI", profile.Country)
		assert.Equal(t, "Abidjan", profile.City)
	})
}

func TestTables_EveryLocalCountryHasDefaults(t *testing.T) {
	for country := range localCountries {
		_, hasCity := defaultCities[country]
		_, hasRegion := defaultRegions[country]
		assert.True(t, hasCity, "local country %s missing default city", country)
		assert.True(t, hasRegion, "local country %s missing default region", country)
	}
}
