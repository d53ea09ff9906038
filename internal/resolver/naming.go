package resolver

import (
	"regexp"
	"strings"
	"unicode"
)

// Namer derives the name forms entity resolution needs. Singularization and
// operationId stripping are string heuristics; irregular English and
// nonstandard operationId conventions can substitute their own implementation.
type Namer interface {
	Singularize(s string) string
	CamelCase(s string) string
	PascalCase(s string) string
	// CustomOperationName derives the callable name for a custom operation
	// from its operationId, given the owning entity's plural and singular
	// names. An empty result means no usable name could be derived.
	CustomOperationName(operationID, plural, singular string) string
}

// DefaultNamer handles regular English plurals and snake/kebab-case
// identifiers, plus the machine-appended operationId tails FastAPI-style
// frameworks generate.
type DefaultNamer struct{}

func (DefaultNamer) Singularize(s string) string {
	lower := strings.ToLower(s)
	switch {
	case strings.HasSuffix(lower, "ies") && len(s) > 3:
		return s[:len(s)-3] + "y"
	case hasESPluralSuffix(lower):
		return s[:len(s)-2]
	case strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss"):
		return s[:len(s)-1]
	}
	return s
}

func hasESPluralSuffix(lower string) bool {
	for _, suffix := range []string{"ses", "shes", "ches", "xes"} {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

func (DefaultNamer) CamelCase(s string) string {
	return joinWords(splitWords(s), false)
}

func (DefaultNamer) PascalCase(s string) string {
	return joinWords(splitWords(s), true)
}

// Matches machine-generated operationId tails such as
// "_api_v1_accounts__account_id__transition_post".
var operationIDTail = regexp.MustCompile(`(?i)_api_v\d+.*_(get|post|put|patch|delete|head|options)$`)

func (n DefaultNamer) CustomOperationName(operationID, plural, singular string) string {
	id := operationIDTail.ReplaceAllString(operationID, "")

	words := splitWords(id)
	words = stripWordSequence(words, splitWords(plural))
	words = stripWordSequence(words, splitWords(singular))
	return joinWords(words, false)
}

// stripWordSequence removes every occurrence of needle as a contiguous,
// case-insensitive word subsequence.
func stripWordSequence(words, needle []string) []string {
	if len(needle) == 0 || len(words) < len(needle) {
		return words
	}
	var result []string
	for i := 0; i < len(words); {
		if matchesAt(words, needle, i) {
			i += len(needle)
			continue
		}
		result = append(result, words[i])
		i++
	}
	return result
}

func matchesAt(words, needle []string, i int) bool {
	if i+len(needle) > len(words) {
		return false
	}
	for j, w := range needle {
		if !strings.EqualFold(words[i+j], w) {
			return false
		}
	}
	return true
}

func splitWords(s string) []string {
	var words []string
	for _, w := range strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-'
	}) {
		words = append(words, w)
	}
	return words
}

func joinWords(words []string, pascal bool) string {
	var result strings.Builder
	for i, word := range words {
		lower := strings.ToLower(word)
		if i == 0 && !pascal {
			result.WriteString(lower)
			continue
		}
		result.WriteString(capitalize(lower))
	}
	return result.String()
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
