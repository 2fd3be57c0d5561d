package types

// ExtractedFields holds structured eligibility signals pulled from free text.
// Numeric fields use pointers so that "not found" stays distinguishable from a
// genuine zero value; string fields use "" for "not found".
type ExtractedFields struct {
	CGPA            *float64 `json:"cgpa,omitempty"`
	ExperienceYears *int     `json:"experienceYears,omitempty"`
	Degree          string   `json:"degree,omitempty"`
	Branch          string   `json:"branch,omitempty"`
}

// HasCGPA reports whether a CGPA value was found in the source text.
func (f *ExtractedFields) HasCGPA() bool {
	return f.CGPA != nil
}

// HasExperience reports whether an experience duration was found.
func (f *ExtractedFields) HasExperience() bool {
	return f.ExperienceYears != nil
}

// IsEmpty reports whether no field was extracted at all.
func (f ExtractedFields) IsEmpty() bool {
	return f.CGPA == nil && f.ExperienceYears == nil && f.Degree == "" && f.Branch == ""
}
