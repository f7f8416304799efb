package errors

// MalformedDescriptorError reports a descriptor string that did not split
// into exactly three colon-separated fields. Parsing stops here; no
// fragments are rendered for a malformed descriptor.
type MalformedDescriptorError struct {
	*BaseError
	Input      string // the raw descriptor string as given
	FieldCount int    // number of fields the split produced
}

// NewMalformedDescriptorError creates a new malformed descriptor error
func NewMalformedDescriptorError(input string, fieldCount int) *MalformedDescriptorError {
	base := Newf(MalformedDescriptorCode,
		"malformed descriptor %q: expected 3 colon-separated fields, got %d", input, fieldCount)
	base.WithContext("input", input).
		WithContext("fieldCount", fieldCount).
		WithSuggestion("use the form <package>:<name>:<signature>, e.g. java/lang/Object:hashCode:()I")

	return &MalformedDescriptorError{
		BaseError:  base,
		Input:      input,
		FieldCount: fieldCount,
	}
}
