// Package billing derives the billing fields and payment channels the
// CinetPay aggregator requires from a customer's resolved country. The
// aggregator mandates non-empty billing country/state/city and only
// accepts billing countries from its locally-served set, so international
// customers are mapped onto a fixed fallback jurisdiction. That override
// is a protocol constraint of the provider, not a policy choice.
package billing

import (
	"github.com/gomonto/payments/internal/pkg/phone"
)

// Payment channel sets understood by the aggregator.
const (
	ChannelsAll      = "ALL"
	ChannelsCardOnly = "CREDIT_CARD"
)

// Fallback jurisdiction for customers outside the locally-served set and
// for countries missing from the lookup tables.
const (
	FallbackCountry = "CI"
	FallbackCity    = "Abidjan"
	FallbackRegion  = "Abidjan"
)

// Profile is the complete billing block sent to the aggregator.
type Profile struct {
	Country  string
	State    string
	City     string
	Channels string
}

// IsLocal reports whether a country is in the locally-served set.
func IsLocal(country string) bool {
	return localCountries[country]
}

// Channels selects the payment rails offered for a resolved country:
// all channels for locally-served countries, card-only for the rest.
func Channels(country string) string {
	if IsLocal(country) {
		return ChannelsAll
	}
	return ChannelsCardOnly
}

// Synthesize derives default billing city and region for a resolved
// country. For Canada the region is looked up by area code from the raw
// phone number; everywhere else flat country tables apply. Unknown
// countries fall back to the home-market defaults.
func Synthesize(country, rawPhone string) (state, city string) {
	city, ok := defaultCities[country]
	if !ok {
		city = FallbackCity
	}

	if country == "CA" {
		return phone.CanadianProvince(rawPhone), city
	}

	state, ok = defaultRegions[country]
	if !ok {
		state = FallbackRegion
	}
	return state, city
}

// Resolve builds the full billing profile for a resolved country. For
// countries outside the locally-served set the billing country, state
// and city are all overridden to the fallback jurisdiction regardless of
// the customer's real country, and channels are restricted to cards.
func Resolve(country, rawPhone string) Profile {
	if !IsLocal(country) {
		return Profile{
			Country:  FallbackCountry,
			State:    FallbackRegion,
			City:     FallbackCity,
			Channels: ChannelsCardOnly,
		}
	}

	state, city := Synthesize(country, rawPhone)
	return Profile{
		Country:  country,
		State:    state,
		City:     city,
		Channels: ChannelsAll,
	}
}
