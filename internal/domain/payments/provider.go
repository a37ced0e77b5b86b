package payments

import "strings"

// Provider tags returned by the selection flow. "none" means the user's
// country is served by neither processor; checkout is unavailable for them.
const (
	ProviderStripe   = "stripe"
	ProviderPaystack = "paystack"
	ProviderNone     = "none"
)

// Countries where Stripe can settle for this platform. Deliberately not the
// full Stripe coverage list: markets we do not operate in classify as "none".
var stripeCountries = map[string]bool{
	"US": true, "CA": true, "GB": true, "IE": true,
	"DE": true, "FR": true, "ES": true, "IT": true, "PT": true,
	"NL": true, "BE": true, "LU": true, "AT": true, "CH": true,
	"DK": true, "SE": true, "NO": true, "FI": true,
	"PL": true, "CZ": true, "RO": true, "BG": true, "GR": true,
	"AU": true, "NZ": true, "JP": true, "SG": true, "HK": true,
	"AE": true, "MX": true,
}

// Paystack markets.
var paystackCountries = map[string]bool{
	"NG": true, "GH": true, "ZA": true, "KE": true,
	"CI": true, "EG": true, "RW": true,
}

// ClassifyCountry maps a two-letter country code to a provider tag. The code
// is upper-cased before lookup; unknown codes classify as ProviderNone.
func ClassifyCountry(code string) string {
	cc := strings.ToUpper(strings.TrimSpace(code))
	switch {
	case stripeCountries[cc]:
		return ProviderStripe
	case paystackCountries[cc]:
		return ProviderPaystack
	default:
		return ProviderNone
	}
}

func ValidProvider(p string) bool {
	return p == ProviderStripe || p == ProviderPaystack || p == ProviderNone
}
