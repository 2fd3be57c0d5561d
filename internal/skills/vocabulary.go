// Package skills extracts known skill terms from free text using a fixed
// vocabulary. The vocabulary includes multi-word phrases, so matching is
// containment-based rather than token-based.
package skills

import (
	"sort"
	"strings"
)

// Vocabulary is an immutable set of normalized (lower-case) skill terms.
// Build it once at startup and share it by reference; it is never mutated
// after construction and is safe for concurrent reads.
type Vocabulary struct {
	terms []string
	set   map[string]struct{}
}

// NewVocabulary builds a Vocabulary from raw terms. Terms are lower-cased,
// trimmed and deduplicated; the stored order is sorted.
func NewVocabulary(terms []string) *Vocabulary {
	set := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		set[t] = struct{}{}
	}

	sorted := make([]string, 0, len(set))
	for t := range set {
		sorted = append(sorted, t)
	}
	sort.Strings(sorted)

	return &Vocabulary{terms: sorted, set: set}
}

// Terms returns the vocabulary terms in sorted order. Callers must not
// modify the returned slice.
func (v *Vocabulary) Terms() []string {
	return v.terms
}

// Contains reports whether term is in the vocabulary (case-insensitive).
func (v *Vocabulary) Contains(term string) bool {
	_, ok := v.set[strings.ToLower(strings.TrimSpace(term))]
	return ok
}

// Len returns the number of vocabulary terms.
func (v *Vocabulary) Len() int {
	return len(v.terms)
}

// DefaultVocabulary returns the built-in skill vocabulary covering
// languages, frameworks, tooling, networking terms and soft skills.
func DefaultVocabulary() *Vocabulary {
	return NewVocabulary([]string{
		// Languages
		"python", "java", "c", "c++", "c#", "javascript", "typescript",
		"ruby", "go", "rust", "bash", "shell",
		// Data / ML
		"numpy", "pandas", "matplotlib", "scikit-learn", "tensorflow",
		"keras", "seaborn", "excel", "sql",
		// Web
		"html", "css", "tailwind css", "react", "angular", "vue",
		"express", "node.js", "next.js", "mongo", "mongodb", "django",
		"flask", "fastapi", "rest", "restful api", "graphql", "axios",
		"mongoose",
		// Tooling / infra
		"git", "github", "postman", "linux", "wsl", "docker",
		"kubernetes", "vim", "vs code", "firebase", "aws", "azure",
		// Networking
		"tcp/ip", "udp", "arp", "routing", "osi model", "bgp", "md5",
		"multicast", "http", "dns", "ip addressing",
		// Misc
		"socket.io", "cloudinary", "fuse.js", "jira", "figma",
		"power bi", "tableau",
		// Soft skills
		"communication", "leadership", "problem solving", "teamwork",
		"analytical thinking",
	})
}
