package analyzer

import (
	"sort"
	"strings"
)

// techSignatures maps a technology name to the literal markers that
// betray it anywhere in page markup.
var techSignatures = map[string][]string{
	"React":     {"react", "_reactRootContainer", "data-reactroot"},
	"Vue.js":    {"vue", "__vue__", "data-v-"},
	"Angular":   {"ng-", "angular", "_ngcontent"},
	"jQuery":    {"jquery", "jQuery"},
	"Bootstrap": {"bootstrap"},
	"Tailwind":  {"tailwind"},
	"WordPress": {"wp-content", "wp-includes"},
	"Shopify":   {"shopify", "cdn.shopify"},
	"Next.js":   {"_next", "__NEXT_DATA__"},
	"Gatsby":    {"gatsby"},
}

// DetectTechnologies scans raw markup for known signature substrings,
// case-insensitively. Each technology is reported at most once; the
// result is sorted so repeated runs over the same document are
// identical.
func DetectTechnologies(body []byte) []string {
	lower := strings.ToLower(string(body))

	var found []string
	for tech, sigs := range techSignatures {
		for _, sig := range sigs {
			if strings.Contains(lower, strings.ToLower(sig)) {
				found = append(found, tech)
				break
			}
		}
	}

	sort.Strings(found)
	return found
}
