package billing

// localCountries is the set of countries the platform serves with the
// full payment rails (the XOF currency union). Everything outside it is
// treated as international and restricted to card channels.
var localCountries = map[string]bool{
	"BJ": true,
	"BF": true,
	"CI": true,
	"GW": true,
	"ML": true,
	"NE": true,
	"SN": true,
	"TG": true,
}

// defaultCities provides a non-empty billing city per country. The
// aggregator mandates these fields even though it does not use them.
var defaultCities = map[string]string{
	"BJ": "Cotonou",
	"BF": "Ouagadougou",
	"CI": "Abidjan",
	"GW": "Bissau",
	"ML": "Bamako",
	"NE": "Niamey",
	"SN": "Dakar",
	"TG": "Lome",
	"GN": "Conakry",
	"CM": "Douala",
	"CD": "Kinshasa",
	"CG": "Brazzaville",
	"GA": "Libreville",
	"GH": "Accra",
	"NG": "Lagos",
	"MA": "Casablanca",
	"TN": "Tunis",
	"FR": "Paris",
	"BE": "Brussels",
	"GB": "London",
	"DE": "Berlin",
	"ES": "Madrid",
	"IT": "Rome",
	"CH": "Geneva",
	"US": "New York",
	"CA": "Toronto",
}

// defaultRegions provides a non-empty billing state/province per country.
// Canada is special-cased in Synthesize: its region comes from the
// area-code table instead of this one.
var defaultRegions = map[string]string{
	"BJ": "Littoral",
	"BF": "Centre",
	"CI": "Abidjan",
	"GW": "Bissau",
	"ML": "Bamako",
	"NE": "Niamey",
	"SN": "Dakar",
	"TG": "Maritime",
	"GN": "Conakry",
	"CM": "Littoral",
	"CD": "Kinshasa",
	"CG": "Brazzaville",
	"GA": "Estuaire",
	"GH": "Greater Accra",
	"NG": "Lagos",
	"MA": "Casablanca-Settat",
	"TN": "Tunis",
	"FR": "Ile-de-France",
	"BE": "Brussels",
	"GB": "England",
	"DE": "Berlin",
	"ES": "Madrid",
	"IT": "Lazio",
	"CH": "Geneva",
	"US": "NY",
	"CA": "Ontario",
}
