package intent

import (
	"slices"
	"strings"
	"unicode"
)

// Fallback classifies text with ordered keyword checks. It never calls the
// model and never fails; identical input always yields an identical Intent.
func Fallback(text string, policy Policy) Intent {
	lower := strings.ToLower(text)
	tokens := tokenize(lower)
	params := Normalize(nil, text)

	hasTarget := params[ParamOwner] != "" && params[ParamRepo] != ""
	confidence := policy.LowConfidence
	if hasTarget {
		confidence = policy.HighConfidence
	}

	action := ActionUnknown
	switch {
	case containsToken(tokens, issueTokens):
		action = ActionListIssues
	case containsToken(tokens, branchTokens):
		action = ActionListBranches
	case containsToken(tokens, commitTokens):
		action = ActionListCommits
	case containsToken(tokens, prTokens) || containsPhrase(lower, prPhrases):
		action = ActionListPRs
	case hasTarget && containsToken(tokens, repoTokens):
		action = ActionGetRepo
	case containsToken(tokens, searchTokens):
		action = ActionSearchRepos
		if q := searchQuery(text); q != "" {
			params[ParamQuery] = q
		}
	case containsPhrase(lower, listMyPhrases):
		action = ActionListRepos
	}

	return Intent{
		Action:     action,
		Params:     params,
		Confidence: confidence,
	}
}

// tokenize splits on anything that is not a letter or digit.
func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func containsToken(tokens []string, words []string) bool {
	for _, w := range words {
		if slices.Contains(tokens, w) {
			return true
		}
	}
	return false
}

func containsPhrase(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// searchQuery returns the words after the first search keyword, minus
// leading filler such as "repositories about".
func searchQuery(text string) string {
	words := strings.Fields(text)
	start := -1
	for i, w := range words {
		if slices.Contains(searchTokens, cleanWord(w)) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return ""
	}

	rest := words[start:]
	for len(rest) > 0 && slices.Contains(searchFillers, cleanWord(rest[0])) {
		rest = rest[1:]
	}
	return strings.Trim(strings.Join(rest, " "), " .,;:!?\"'")
}

func cleanWord(w string) string {
	return strings.ToLower(strings.TrimFunc(w, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}))
}
