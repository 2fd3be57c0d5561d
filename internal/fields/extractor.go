// Package fields pulls structured eligibility fields (CGPA, experience,
// degree, branch) out of free text with pattern and phrase matching. The four
// extractions are independent; no cross-field validation happens here.
package fields

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

var (
	// A CGPA/GPA label followed by at most 5 non-digit characters and a
	// decimal number. First match wins.
	cgpaRe = regexp.MustCompile(`(?i)\b(?:cgpa|gpa)\b\D{0,5}(\d+(?:\.\d+)?)`)

	// "<n>(+) years/yrs (of) experience". First match wins.
	experienceRe = regexp.MustCompile(`(?i)\b(\d+)\s*\+?\s*(?:years?|yrs?)\s+(?:of\s+)?experience\b`)
)

// Known degree phrases, matched case-insensitively. The earliest occurrence
// in the text wins, regardless of phrase order here.
var degreeVocabulary = []string{
	"btech", "b.tech", "mtech", "m.tech", "bachelor", "master",
	"bsc", "msc", "bca", "mca", "phd",
}

// Known academic branch phrases.
var branchVocabulary = []string{
	"computer science", "information technology", "electronics",
	"electrical", "mechanical", "civil", "chemical",
}

// Extract scans text for all four eligibility fields. Fields absent from the
// text are left as their "unknown" representation (nil pointer or empty
// string), never defaulted to zero.
func Extract(text string) types.ExtractedFields {
	var out types.ExtractedFields
	if strings.TrimSpace(text) == "" {
		return out
	}

	lower := strings.ToLower(text)

	if m := cgpaRe.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			out.CGPA = &v
		}
	}

	if m := experienceRe.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil && v >= 0 {
			out.ExperienceYears = &v
		}
	}

	out.Degree = firstPhrase(lower, degreeVocabulary)
	out.Branch = firstPhrase(lower, branchVocabulary)

	return out
}

// firstPhrase returns the vocabulary phrase that occurs earliest in text, or
// "" when none occurs.
func firstPhrase(text string, vocabulary []string) string {
	best := ""
	bestIdx := -1
	for _, phrase := range vocabulary {
		idx := strings.Index(text, phrase)
		if idx < 0 {
			continue
		}
		if bestIdx < 0 || idx < bestIdx {
			best = phrase
			bestIdx = idx
		}
	}
	return best
}
