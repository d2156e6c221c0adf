// Package locale backs the setup-time surface with localized strings.
// The host passes a BCP 47 locale; anything it sends that we do not
// carry falls back to English.
package locale

import "golang.org/x/text/language"

var supported = []language.Tag{
	language.English, // fallback
	language.French,
}

var matcher = language.NewMatcher(supported)

var tables = map[language.Tag]map[string]string{
	language.English: en,
	language.French:  fr,
}

// For returns a lookup over the message table best matching the
// requested locale. Unknown keys come back as the key itself so a
// missing translation never blanks a label.
func For(loc string) func(key string) string {
	_, idx := language.MatchStrings(matcher, loc)
	table := tables[supported[idx]]
	return func(key string) string {
		if s, ok := table[key]; ok {
			return s
		}
		if s, ok := en[key]; ok {
			return s
		}
		return key
	}
}

var en = map[string]string{
	"connector.name": "CardLink",

	"contract.merchant_name.label":       "Merchant name",
	"contract.merchant_name.description": "Name of the shop as shown to the buyer",

	"contract.merchant_id.label":       "Merchant ID",
	"contract.merchant_id.description": "Identifier issued by CardLink for this shop",

	"contract.authorization_key.label":       "Authorization key",
	"contract.authorization_key.description": "Secret API key used to authorize payments",

	"contract.settlement_key.label":       "Settlement key",
	"contract.settlement_key.description": "Optional secret key used for settlement reporting",

	"contract.min_age.label":       "Minimum age",
	"contract.min_age.description": "Reject buyers younger than this age",
	"contract.min_age.invalid":     "Minimum age must be a non-negative whole number",

	"contract.kyc_level.label":       "KYC level",
	"contract.kyc_level.description": "Buyer verification strictness required by the gateway",
	"contract.kyc_level.simple":      "Simple verification",
	"contract.kyc_level.full":        "Full verification",

	"contract.country_restriction.label":       "Country restriction",
	"contract.country_restriction.description": "Restrict buyers to one country (ISO 3166-1 alpha-2 code)",
	"contract.country_restriction.invalid":     "Country restriction must be a valid two-letter country code",
}

var fr = map[string]string{
	"connector.name": "CardLink",

	"contract.merchant_name.label":       "Nom du marchand",
	"contract.merchant_name.description": "Nom de la boutique affiché à l'acheteur",

	"contract.merchant_id.label":       "Identifiant marchand",
	"contract.merchant_id.description": "Identifiant attribué par CardLink à cette boutique",

	"contract.authorization_key.label":       "Clé d'autorisation",
	"contract.authorization_key.description": "Clé API secrète utilisée pour autoriser les paiements",

	"contract.settlement_key.label":       "Clé de règlement",
	"contract.settlement_key.description": "Clé secrète facultative utilisée pour les rapports de règlement",

	"contract.min_age.label":       "Âge minimum",
	"contract.min_age.description": "Refuser les acheteurs plus jeunes que cet âge",
	"contract.min_age.invalid":     "L'âge minimum doit être un nombre entier positif",

	"contract.kyc_level.label":       "Niveau KYC",
	"contract.kyc_level.description": "Niveau de vérification de l'acheteur exigé par la passerelle",
	"contract.kyc_level.simple":      "Vérification simple",
	"contract.kyc_level.full":        "Vérification complète",

	"contract.country_restriction.label":       "Restriction de pays",
	"contract.country_restriction.description": "Limiter les acheteurs à un pays (code ISO 3166-1 alpha-2)",
	"contract.country_restriction.invalid":     "La restriction de pays doit être un code pays à deux lettres",
}
