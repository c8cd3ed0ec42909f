package identity

import (
	"fmt"
	"regexp"
	"time"
)

// DocumentType enumerates the identity documents we accept.
type DocumentType string

const (
	// DocTypeResidentID is the mainland resident ID card (居民身份证).
	DocTypeResidentID DocumentType = "resident_id"
	// DocTypeHMTPermit is the HK/Macau/Taiwan residence permit (港澳台居民居住证).
	DocTypeHMTPermit DocumentType = "hmt_permit"
)

// ParseDocumentType accepts the canonical value or the Chinese label.
func ParseDocumentType(s string) (DocumentType, bool) {
	switch s {
	case string(DocTypeResidentID), "居民身份证":
		return DocTypeResidentID, true
	case string(DocTypeHMTPermit), "港澳台居民居住证":
		return DocTypeHMTPermit, true
	}
	return "", false
}

// InvalidFormatError reports a document number that does not match the
// format of its declared document type.
type InvalidFormatError struct {
	DocumentType DocumentType
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("identity: malformed %s number", e.DocumentType)
}

var (
	// 6-digit region (first digit non-zero), birth date, 3-digit sequence, check char.
	reResidentID = regexp.MustCompile(`^[1-9]\d{5}(18|19|20)\d{2}(0[1-9]|1[0-2])(0[1-9]|[12]\d|3[01])\d{3}[0-9Xx]$`)
	// Same shape, region prefix restricted to HK (810000), Macau (820000), Taiwan (830000).
	reHMTPermit = regexp.MustCompile(`^(810000|820000|830000)(18|19|20)\d{2}(0[1-9]|1[0-2])(0[1-9]|[12]\d|3[01])\d{3}[0-9Xx]$`)
)

// Validate checks number against the pattern for docType.
//
// The check character is matched for shape (digit or X) only; the GB 11643
// checksum is not verified.
func Validate(docType DocumentType, number string) error {
	var re *regexp.Regexp
	switch docType {
	case DocTypeResidentID:
		re = reResidentID
	case DocTypeHMTPermit:
		re = reHMTPermit
	default:
		return &InvalidFormatError{DocumentType: docType}
	}
	if !re.MatchString(number) {
		return &InvalidFormatError{DocumentType: docType}
	}
	// The regex bounds month/day digits; time.Parse rejects impossible
	// calendar dates such as 0230.
	if _, err := time.Parse("20060102", number[6:14]); err != nil {
		return &InvalidFormatError{DocumentType: docType}
	}
	return nil
}
