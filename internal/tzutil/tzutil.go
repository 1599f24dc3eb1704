// Package tzutil guesses the default time zone a document's dates are
// written in, from locale signals such as a language tag or the origin
// host's country-code TLD.
package tzutil

import (
	"strings"
	"time"

	// Bundle the IANA database so zone lookups work on hosts without one.
	_ "time/tzdata"
)

// zoneByCountry maps ISO 3166-1 alpha-2 country codes (lowercase) to a
// representative IANA zone. Countries spanning several zones (us, ru, ca,
// au minus the populous east, ...) are deliberately absent; guessing one
// of their zones would be wrong more often than right, so those fall
// through to UTC.
var zoneByCountry = map[string]string{
	"ar": "America/Argentina/Buenos_Aires",
	"at": "Europe/Vienna",
	"be": "Europe/Brussels",
	"bg": "Europe/Sofia",
	"br": "America/Sao_Paulo",
	"ch": "Europe/Zurich",
	"cl": "America/Santiago",
	"cn": "Asia/Shanghai",
	"co": "America/Bogota",
	"cz": "Europe/Prague",
	"de": "Europe/Berlin",
	"dk": "Europe/Copenhagen",
	"ee": "Europe/Tallinn",
	"eg": "Africa/Cairo",
	"es": "Europe/Madrid",
	"fi": "Europe/Helsinki",
	"fr": "Europe/Paris",
	"gb": "Europe/London",
	"gr": "Europe/Athens",
	"hk": "Asia/Hong_Kong",
	"hu": "Europe/Budapest",
	"id": "Asia/Jakarta",
	"ie": "Europe/Dublin",
	"il": "Asia/Jerusalem",
	"in": "Asia/Kolkata",
	"is": "Atlantic/Reykjavik",
	"it": "Europe/Rome",
	"jp": "Asia/Tokyo",
	"ke": "Africa/Nairobi",
	"kr": "Asia/Seoul",
	"lt": "Europe/Vilnius",
	"lv": "Europe/Riga",
	"mx": "America/Mexico_City",
	"my": "Asia/Kuala_Lumpur",
	"ng": "Africa/Lagos",
	"nl": "Europe/Amsterdam",
	"no": "Europe/Oslo",
	"nz": "Pacific/Auckland",
	"pe": "America/Lima",
	"ph": "Asia/Manila",
	"pl": "Europe/Warsaw",
	"pt": "Europe/Lisbon",
	"ro": "Europe/Bucharest",
	"rs": "Europe/Belgrade",
	"sa": "Asia/Riyadh",
	"se": "Europe/Stockholm",
	"sg": "Asia/Singapore",
	"sk": "Europe/Bratislava",
	"th": "Asia/Bangkok",
	"tr": "Europe/Istanbul",
	"tw": "Asia/Taipei",
	"ua": "Europe/Kyiv",
	"uk": "Europe/London",
	"uy": "America/Montevideo",
	"ve": "America/Caracas",
	"vn": "Asia/Ho_Chi_Minh",
	"za": "Africa/Johannesburg",
}

// countryByLanguage maps bare language subtags to a country when the
// language is effectively spoken in one country only. Anything broader
// (en, es, pt, ...) needs an explicit region subtag.
var countryByLanguage = map[string]string{
	"ja": "jp",
	"ko": "kr",
}

// FromLanguage returns the zone implied by a language tag such as "ko-KR",
// "pt_BR", or "ja". The second return value is false when the tag carries
// no region that maps to a single zone.
func FromLanguage(lang string) (*time.Location, bool) {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return nil, false
	}
	parts := strings.FieldsFunc(lang, func(r rune) bool {
		return r == '-' || r == '_'
	})
	// A region subtag is exactly two letters; skip script subtags like
	// "Hant" in "zh-Hant-TW".
	for _, part := range parts[1:] {
		if len(part) == 2 && isAlpha(part) {
			return loadCountryZone(part)
		}
	}
	if country, ok := countryByLanguage[strings.ToLower(parts[0])]; ok {
		return loadCountryZone(country)
	}
	return nil, false
}

// FromHost returns the zone implied by a hostname's country-code TLD.
func FromHost(host string) (*time.Location, bool) {
	host = strings.TrimSuffix(strings.TrimSpace(host), ".")
	if host == "" {
		return nil, false
	}
	labels := strings.Split(host, ".")
	tld := labels[len(labels)-1]
	if len(tld) != 2 || !isAlpha(tld) {
		return nil, false
	}
	return loadCountryZone(tld)
}

// Guess returns the zone implied by a language tag, falling back to the
// origin host's ccTLD, falling back to UTC. It never fails.
func Guess(lang, host string) *time.Location {
	if loc, ok := FromLanguage(lang); ok {
		return loc
	}
	if loc, ok := FromHost(host); ok {
		return loc
	}
	return time.UTC
}

func loadCountryZone(country string) (*time.Location, bool) {
	name, ok := zoneByCountry[strings.ToLower(country)]
	if !ok {
		return nil, false
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, false
	}
	return loc, true
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
