package skills

import (
	"sort"
	"strings"
	"unicode"
)

// Extract returns the vocabulary terms present in text, sorted. Matching is
// case-insensitive and containment-based: multi-word and slash-separated
// phrases like "problem solving" or "tcp/ip" are matched by substring
// presence, since token-equality matching would silently drop them.
// Single-word terms are matched against token boundaries so short terms such
// as "c" or "go" cannot fire inside unrelated words; both strategies agree
// wherever both apply. No stemming is applied.
func Extract(text string, vocab *Vocabulary) []string {
	if strings.TrimSpace(text) == "" || vocab == nil || vocab.Len() == 0 {
		return nil
	}

	lower := strings.ToLower(text)
	tokens := tokenSet(lower)

	var found []string
	for _, term := range vocab.Terms() {
		if isPhrase(term) {
			if strings.Contains(lower, term) {
				found = append(found, term)
			}
			continue
		}
		if _, ok := tokens[term]; ok {
			found = append(found, term)
		}
	}

	// Terms() is sorted, so found already is; keep the guarantee explicit.
	sort.Strings(found)
	return found
}

// isPhrase reports whether a term spans multiple tokens.
func isPhrase(term string) bool {
	return strings.ContainsAny(term, " /")
}

// tokenSet splits lower-cased text into tokens. '+', '#', '.' and '-' count
// as word characters so "c++", "c#", "node.js" and "scikit-learn" survive as
// single tokens; trailing dots are stripped.
func tokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	var word strings.Builder

	flush := func() {
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if w != "" {
			set[w] = struct{}{}
		}
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' || r == '-' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return set
}

// Intersect returns the sorted intersection of two skill slices.
func Intersect(a, b []string) []string {
	set := make(map[string]struct{}, len(b))
	for _, s := range b {
		set[s] = struct{}{}
	}

	var out []string
	seen := make(map[string]struct{}, len(a))
	for _, s := range a {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		if _, ok := set[s]; ok {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

// Difference returns the sorted elements of a that are not in b.
func Difference(a, b []string) []string {
	set := make(map[string]struct{}, len(b))
	for _, s := range b {
		set[s] = struct{}{}
	}

	var out []string
	seen := make(map[string]struct{}, len(a))
	for _, s := range a {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		if _, ok := set[s]; !ok {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
