package common

// countryQueries maps ISO 3166 alpha-2 codes to the search term the
// keyword-based news providers expect.
var countryQueries = map[string]string{
	"us": "unitedstate",
	"th": "thailand",
	"jp": "japan",
	"kr": "korea",
	"cn": "china",
	"fr": "frances",
	"de": "germany",
	"es": "spain",
	"it": "italy",
	"ru": "russia",
	"br": "brazil",
	"au": "australia",
	"ca": "canada",
	"gb": "unitedkingdom",
	"mx": "mexico",
	"za": "southafrica",
	"ae": "unitedarabemirates",
	"ng": "nigeria",
	"id": "indonesia",
	"ph": "philippines",
	"sg": "singapore",
	"vn": "vietnam",
	"se": "sweden",
	"no": "norway",
	"fi": "finland",
	"dk": "denmark",
}

// MapCountryToQuery returns the provider search term for a lowercase
// country code. Unknown input is returned unchanged.
func MapCountryToQuery(country string) string {
	if query, ok := countryQueries[country]; ok {
		return query
	}
	return country
}
