package phone

// dialCodes maps international dialing prefixes to ISO 3166-1 alpha-2
// country codes. Plain string maps on purpose: membership and
// longest-prefix-match are the only operations the resolver needs.
// The North American Numbering Plan ("1") is handled separately because
// a single prefix covers both Canada and the United States.
var dialCodes = map[string]string{
	// West and Central Africa (primary markets)
	"220": "GM",
	"221": "SN",
	"222": "MR",
	"223": "ML",
	"224": "GN",
	"225": "CI",
	"226": "BF",
	"227": "NE",
	"228": "TG",
	"229": "BJ",
	"230": "MU",
	"231": "LR",
	"232": "SL",
	"233": "GH",
	"234": "NG",
	"235": "TD",
	"236": "CF",
	"237": "CM",
	"238": "CV",
	"240": "GQ",
	"241": "GA",
	"242": "CG",
	"243": "CD",
	"244": "AO",
	"245": "GW",
	"250": "RW",
	"251": "ET",
	"254": "KE",
	"255": "TZ",
	"256": "UG",
	"212": "MA",
	"213": "DZ",
	"216": "TN",
	"218": "LY",
	"20":  "EG",
	"27":  "ZA",

	// Europe
	"30":  "GR",
	"31":  "NL",
	"32":  "BE",
	"33":  "FR",
	"34":  "ES",
	"351": "PT",
	"352": "LU",
	"353": "IE",
	"358": "FI",
	"36":  "HU",
	"39":  "IT",
	"40":  "RO",
	"41":  "CH",
	"420": "CZ",
	"43":  "AT",
	"44":  "GB",
	"45":  "DK",
	"46":  "SE",
	"47":  "NO",
	"48":  "PL",
	"49":  "DE",
	"90":  "TR",

	// Rest of world
	"52":  "MX",
	"55":  "BR",
	"61":  "AU",
	"64":  "NZ",
	"7":   "RU",
	"76":  "KZ",
	"77":  "KZ",
	"81":  "JP",
	"82":  "KR",
	"84":  "VN",
	"86":  "CN",
	"91":  "IN",
	"965": "KW",
	"966": "SA",
	"971": "AE",
	"974": "QA",
}

// canadianAreaCodes disambiguates Canada from the United States inside
// the shared "1" calling prefix.
var canadianAreaCodes = map[string]bool{
	"204": true, "226": true, "236": true, "249": true, "250": true,
	"263": true, "289": true, "306": true, "343": true, "354": true,
	"365": true, "367": true, "368": true, "403": true, "416": true,
	"418": true, "431": true, "437": true, "438": true, "450": true,
	"468": true, "474": true, "506": true, "514": true, "519": true,
	"548": true, "579": true, "581": true, "584": true, "587": true,
	"604": true, "613": true, "639": true, "647": true, "672": true,
	"683": true, "705": true, "709": true, "742": true, "753": true,
	"778": true, "780": true, "782": true, "807": true, "819": true,
	"825": true, "867": true, "873": true, "902": true, "905": true,
}

// canadianProvinces maps a Canadian area code to its province. The set is
// intentionally coarser than canadianAreaCodes: an area code known to be
// Canadian but absent here falls back to DefaultProvince.
var canadianProvinces = map[string]string{
	"204": "Manitoba",
	"226": "Ontario",
	"236": "British Columbia",
	"249": "Ontario",
	"250": "British Columbia",
	"289": "Ontario",
	"306": "Saskatchewan",
	"343": "Ontario",
	"365": "Ontario",
	"403": "Alberta",
	"416": "Ontario",
	"418": "Quebec",
	"431": "Manitoba",
	"437": "Ontario",
	"438": "Quebec",
	"450": "Quebec",
	"506": "New Brunswick",
	"514": "Quebec",
	"519": "Ontario",
	"548": "Ontario",
	"579": "Quebec",
	"581": "Quebec",
	"587": "Alberta",
	"604": "British Columbia",
	"613": "Ontario",
	"639": "Saskatchewan",
	"647": "Ontario",
	"705": "Ontario",
	"709": "Newfoundland and Labrador",
	"778": "British Columbia",
	"780": "Alberta",
	"782": "Nova Scotia",
	"807": "Ontario",
	"819": "Quebec",
	"825": "Alberta",
	"867": "Northwest Territories",
	"873": "Quebec",
	"902": "Nova Scotia",
	"905": "Ontario",
}
