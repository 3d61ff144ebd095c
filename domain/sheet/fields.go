package sheet

import "strings"

// Canonical field names for the columns the pipeline treats as free text.
// Every other column is assumed to hold status-like values.
const (
	FieldSerialNumber = "SerialNumber"
	FieldJobDetails   = "JobDetails"
	FieldComments     = "Comments"
)

// CanonicalField maps a header label to its canonical field name using
// case-insensitive substring checks, first match wins. Labels that match no
// rule are used verbatim as the field name.
func CanonicalField(label string) string {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "s.no") || strings.Contains(l, "s no") || l == "s.no":
		return FieldSerialNumber
	case strings.Contains(l, "job") && strings.Contains(l, "detail"):
		return FieldJobDetails
	case strings.Contains(l, "comment"):
		return FieldComments
	default:
		return label
	}
}

// IsTextField reports whether a canonical field name carries plain text
// rather than a status bundle.
func IsTextField(name string) bool {
	return name == FieldSerialNumber || name == FieldJobDetails || name == FieldComments
}
