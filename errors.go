package animdata

import (
	"fmt"
)

// FormatError - Custom error to inform that the byte stream is structurally malformed,
// e.g. too short for a record or record count, or longer than the buckets account for.
// Offset is the position of the byte at which the problem was detected.
type FormatError struct {
	msg    string
	Offset int
}

// Error - Used to notify that the byte stream is structurally malformed
func (E FormatError) Error() string {
	return fmt.Sprintf("%s (offset %d)", E.msg, E.Offset)
}

// DataError - Custom error to inform that a structurally valid byte region decodes to a
// value violating a domain invariant, e.g. a record stored in the wrong bucket or a frame
// code outside the valid trigger code range.
// Offset is the position of the record at which the problem was detected.
type DataError struct {
	msg    string
	Offset int
}

// Error - Used to notify that decoded data violates a domain invariant
func (E DataError) Error() string {
	return fmt.Sprintf("%s (offset %d)", E.msg, E.Offset)
}

// ValidationError - Custom error to inform that a caller supplied value is outside its
// legal range or that a trigger set collides. CofName and Field identify the offending
// input where known; either may be empty.
type ValidationError struct {
	msg     string
	CofName string
	Field   string
}

// Error - Used to notify that a caller supplied value is invalid
func (E ValidationError) Error() string {
	switch {
	case E.CofName != "" && E.Field != "":
		return fmt.Sprintf("%s (cof name %q, field %s)", E.msg, E.CofName, E.Field)
	case E.Field != "":
		return fmt.Sprintf("%s (field %s)", E.msg, E.Field)
	default:
		return E.msg
	}
}
