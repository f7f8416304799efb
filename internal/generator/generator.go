// Package generator renders all scaffolding fragments for one descriptor and
// writes them to an output stream.
package generator

import (
	"io"
	"strings"

	"github.com/vmkit/nativegen/internal/descriptor"
	"github.com/vmkit/nativegen/internal/templates"
)

// FragmentOrder is the fixed order fragments are emitted in. Every
// successful run emits all of them; there is no partial rendering.
var FragmentOrder = []string{
	templates.ModuleName,
	templates.ModuleDecl,
	templates.RegistryEntry,
	templates.FilePreamble,
	templates.MethodsFn,
	templates.MethodEntry,
	templates.StubFn,
}

// Fragment is one independently renderable block of generated text, meant to
// be spliced into its own location in the host VM's source tree.
type Fragment struct {
	Name    string
	Content string
}

// fragmentData carries the descriptor fields into the templates.
type fragmentData struct {
	Package   string
	Name      string
	Signature string
	Module    string
}

// Generator renders the scaffolding fragments for native-method descriptors
type Generator struct {
	registry *templates.TemplateRegistry
}

// NewGenerator creates a new scaffolding generator instance
func NewGenerator() *Generator {
	return &Generator{
		registry: templates.NewTemplateRegistry(),
	}
}

// Expand renders every fragment for the descriptor, in FragmentOrder.
func (g *Generator) Expand(desc *descriptor.Descriptor) ([]Fragment, error) {
	data := fragmentData{
		Package:   desc.Package,
		Name:      desc.Name,
		Signature: desc.Signature,
		Module:    desc.Module(),
	}

	fragments := make([]Fragment, 0, len(FragmentOrder))
	for _, name := range FragmentOrder {
		content, err := g.registry.Render(name, data)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, Fragment{Name: name, Content: content})
	}

	return fragments, nil
}

// Write renders all fragments and writes them to w, separated by exactly one
// blank line. Rendering completes in memory before the first byte is
// written, so a rendering failure produces no output at all.
func (g *Generator) Write(w io.Writer, desc *descriptor.Descriptor) error {
	fragments, err := g.Expand(desc)
	if err != nil {
		return err
	}

	parts := make([]string, len(fragments))
	for i, fragment := range fragments {
		parts[i] = fragment.Content
	}

	_, err = io.WriteString(w, strings.Join(parts, "\n\n")+"\n")
	return err
}
