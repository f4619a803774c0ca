package services

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"toll-route-service/internal/config"
)

// ContractRule is one fixed-price contract override, compiled from config
// into a pure predicate. Rules are evaluated in configuration order; the
// first match wins.
type ContractRule struct {
	ID       string
	PriceEUR float64
	Note     string

	terms     []string
	countries map[string]struct{}
}

// ContractMatchContext is the normalized view of a line item that rules
// match against.
type ContractMatchContext struct {
	// Country is the toll record's ISO alpha-3 country code.
	Country string
	// Texts holds the fare name, toll-system name and all collection
	// location names.
	Texts []string
}

// Match reports whether the rule applies: the country must be on the rule's
// allow-list (an empty list allows any country) and at least one match term
// must occur in the normalized text.
func (r ContractRule) Match(mc ContractMatchContext) bool {
	if len(r.countries) > 0 {
		if _, ok := r.countries[strings.ToUpper(mc.Country)]; !ok {
			return false
		}
	}
	for _, text := range mc.Texts {
		folded := NormalizeMatchText(text)
		if folded == "" {
			continue
		}
		for _, term := range r.terms {
			if strings.Contains(folded, term) {
				return true
			}
		}
	}
	return false
}

// CompileContracts turns the configured rule list into predicates, keeping
// the configured priority order.
func CompileContracts(rules []config.ContractRuleConfig) []ContractRule {
	out := make([]ContractRule, 0, len(rules))
	for _, rc := range rules {
		r := ContractRule{
			ID:       rc.ID,
			PriceEUR: rc.PriceEUR,
			Note:     rc.Note,
		}
		for _, term := range rc.Match {
			if t := NormalizeMatchText(term); t != "" {
				r.terms = append(r.terms, t)
			}
		}
		if len(r.terms) == 0 {
			continue
		}
		if len(rc.Countries) > 0 {
			r.countries = make(map[string]struct{}, len(rc.Countries))
			for _, c := range rc.Countries {
				r.countries[strings.ToUpper(strings.TrimSpace(c))] = struct{}{}
			}
		}
		out = append(out, r)
	}
	return out
}

// FirstContractMatch returns the highest-priority rule matching the context.
func FirstContractMatch(rules []ContractRule, mc ContractMatchContext) (ContractRule, bool) {
	for _, r := range rules {
		if r.Match(mc) {
			return r, true
		}
	}
	return ContractRule{}, false
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeMatchText case-folds, strips accents and collapses whitespace so
// that vendor spellings ("Péage A7", "PEAGE  a7") compare equal.
func NormalizeMatchText(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)
	return strings.Join(strings.Fields(folded), " ")
}
