package registration

import (
	"regexp"
	"strings"
)

// BillCodeNotFound is stored for the document field when no supply code
// could be extracted from the attachment caption.
const BillCodeNotFound = "NOT_FOUND"

var (
	nationalIDPattern = regexp.MustCompile(`^\d{6,10}$`)
	billCodePattern   = regexp.MustCompile(`NIC[\s:-]*([A-Za-z0-9]{8})`)
)

func IsValidNationalID(id string) bool {
	return nationalIDPattern.MatchString(id)
}

// IsAffirmative reports whether text confirms the registration. Anything
// outside the affirmative set counts as a negative answer, not an error.
func IsAffirmative(text string) bool {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "si", "sí", "s":
		return true
	}

	return false
}

// ExtractBillCode pulls the NIC supply code out of a bill caption.
// Best effort: a caption without a recognizable code yields
// BillCodeNotFound and registration carries on.
func ExtractBillCode(caption string) string {
	match := billCodePattern.FindStringSubmatch(caption)
	if match == nil {
		return BillCodeNotFound
	}

	return strings.ToUpper(match[1])
}
