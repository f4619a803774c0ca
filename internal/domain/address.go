package domain

import "strings"

// Address is the (possibly partial) result of a geocode lookup.
// CountryCode is normalized to 2-letter ISO form. A missing postal code is
// a valid partial result: it blocks cost submission but is harmless for
// display purposes.
type Address struct {
	CountryCode string
	PostalCode  string
	City        string
}

// Usable reports whether the address carries enough data for cost submission.
func (a Address) Usable() bool {
	return len(a.CountryCode) == 2 && a.PostalCode != ""
}

// Empty reports whether the lookup produced nothing at all.
func (a Address) Empty() bool {
	return a.CountryCode == "" && a.PostalCode == "" && a.City == ""
}

// alpha3to2 covers the jurisdictions the routing provider reports toll
// records for. Unknown codes pass through unchanged.
var alpha3to2 = map[string]string{
	"ALB": "AL", "AND": "AD", "AUT": "AT", "BEL": "BE", "BGR": "BG",
	"BIH": "BA", "BLR": "BY", "CHE": "CH", "CZE": "CZ", "DEU": "DE",
	"DNK": "DK", "ESP": "ES", "EST": "EE", "FIN": "FI", "FRA": "FR",
	"GBR": "GB", "GRC": "GR", "HRV": "HR", "HUN": "HU", "IRL": "IE",
	"ITA": "IT", "LTU": "LT", "LUX": "LU", "LVA": "LV", "MDA": "MD",
	"MKD": "MK", "MNE": "ME", "NLD": "NL", "NOR": "NO", "POL": "PL",
	"PRT": "PT", "ROU": "RO", "SRB": "RS", "SVK": "SK", "SVN": "SI",
	"SWE": "SE", "TUR": "TR", "UKR": "UA",
}

// NormalizeCountry maps 3-letter ISO country codes to their 2-letter form.
// 2-letter input is uppercased and returned as-is.
func NormalizeCountry(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return code
	}
	if two, ok := alpha3to2[code]; ok {
		return two
	}
	return code
}
