// Package descriptor parses native-method binding descriptors of the form
// "<package>:<name>:<signature>" and derives the identifiers the generated
// scaffolding is built from.
package descriptor

import (
	"strings"

	"github.com/vmkit/nativegen/internal/errors"
)

// Descriptor identifies one native-method binding: the JVM package that owns
// the method, the method name, and the JVM type signature. The signature is
// opaque to the generator and passes through to the output byte-for-byte.
type Descriptor struct {
	Package   string
	Name      string
	Signature string
}

// Parse splits a "<package>:<name>:<signature>" descriptor string into its
// three fields. Any other field count is a MalformedDescriptorError; empty
// fields are accepted and flow through to the output verbatim.
func Parse(input string) (*Descriptor, error) {
	parts := strings.Split(input, ":")
	if len(parts) != 3 {
		return nil, errors.NewMalformedDescriptorError(input, len(parts))
	}

	return &Descriptor{
		Package:   parts[0],
		Name:      parts[1],
		Signature: parts[2],
	}, nil
}

// Module derives the identifier of the module that will host the generated
// binding code: the package path with every '/' replaced by '_'.
func (d *Descriptor) Module() string {
	return strings.ReplaceAll(d.Package, "/", "_")
}

// StubName is the name of the generated stub function, "jvm_" + Name.
func (d *Descriptor) StubName() string {
	return "jvm_" + d.Name
}

// EmptyFields lists descriptor fields that are present but empty. Empty
// fields still render; callers surface them as warnings.
func (d *Descriptor) EmptyFields() []string {
	var fields []string
	if d.Package == "" {
		fields = append(fields, "package")
	}
	if d.Name == "" {
		fields = append(fields, "name")
	}
	if d.Signature == "" {
		fields = append(fields, "signature")
	}
	return fields
}
