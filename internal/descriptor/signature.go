package descriptor

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// SignatureInfo is a decoded JVM method signature with types spelled the
// Java way ("int", "byte[]", "java.lang.String"). It exists purely for
// diagnostics; the generator always emits the raw signature unmodified.
type SignatureInfo struct {
	Params []string
	Return string
}

// Summary renders the signature as a human-readable reading,
// e.g. "(int, java.lang.String) -> void".
func (s *SignatureInfo) Summary() string {
	return fmt.Sprintf("(%s) -> %s", strings.Join(s.Params, ", "), s.Return)
}

// methodSig is the grammar for JVM method descriptors such as
// "(ILjava/lang/String;)V": a parenthesized parameter list followed by a
// return type, where 'V' (void) is only legal as the return.
type methodSig struct {
	Params []*typeRef `parser:"'(' @@* ')'"`
	Return *returnRef `parser:"@@"`
}

type typeRef struct {
	Dims   []string `parser:"@Array*"`
	Base   *string  `parser:"( @Base"`
	Object *string  `parser:"| @Object )"`
}

type returnRef struct {
	Void *string  `parser:"@Void"`
	Type *typeRef `parser:"| @@"`
}

var sigLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Object", Pattern: `L[^;]+;`},
	{Name: "Base", Pattern: `[BCDFIJSZ]`},
	{Name: "Void", Pattern: `V`},
	{Name: "Array", Pattern: `\[`},
	{Name: "Paren", Pattern: `[()]`},
})

var sigParser = participle.MustBuild[methodSig](
	participle.Lexer(sigLexer),
	participle.UseLookahead(2),
)

// InspectSignature decodes a JVM method signature for diagnostic output.
// A failure here is never fatal: it means the signature is not a
// well-formed method descriptor, which the caller reports as a warning
// while rendering the raw value anyway.
func InspectSignature(signature string) (*SignatureInfo, error) {
	parsed, err := sigParser.ParseString("", signature)
	if err != nil {
		return nil, fmt.Errorf("not a well-formed JVM method signature: %w", err)
	}

	info := &SignatureInfo{}
	for _, param := range parsed.Params {
		info.Params = append(info.Params, param.javaName())
	}
	if parsed.Return.Void != nil {
		info.Return = "void"
	} else {
		info.Return = parsed.Return.Type.javaName()
	}
	return info, nil
}

var baseTypeNames = map[string]string{
	"B": "byte",
	"C": "char",
	"D": "double",
	"F": "float",
	"I": "int",
	"J": "long",
	"S": "short",
	"Z": "boolean",
}

// javaName converts a parsed type reference to its Java source spelling.
func (t *typeRef) javaName() string {
	var name string
	switch {
	case t.Base != nil:
		name = baseTypeNames[*t.Base]
	case t.Object != nil:
		class := strings.TrimSuffix(strings.TrimPrefix(*t.Object, "L"), ";")
		name = strings.ReplaceAll(class, "/", ".")
	}
	return name + strings.Repeat("[]", len(t.Dims))
}
