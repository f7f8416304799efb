// Package templates holds the text templates for every scaffolding fragment
// the generator emits. The fragment bodies are Rust source text targeting the
// host VM crate; only the descriptor fields are substituted in.
package templates

import (
	"bytes"
	"text/template"

	"github.com/vmkit/nativegen/internal/errors"
)

// Fragment template names. The generator renders them in this order.
const (
	ModuleName    = "module-name"
	ModuleDecl    = "module-decl"
	RegistryEntry = "registry-entry"
	FilePreamble  = "file-preamble"
	MethodsFn     = "methods-fn"
	MethodEntry   = "method-entry"
	StubFn        = "stub-fn"
)

// TemplateRegistry provides a centralized way to access all fragment templates
type TemplateRegistry struct {
	templates map[string]string
}

// NewTemplateRegistry creates a new template registry with all templates
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: make(map[string]string),
	}

	registry.registerFragmentTemplates()

	return registry
}

// Get retrieves a template by name
func (tr *TemplateRegistry) Get(name string) (string, bool) {
	source, exists := tr.templates[name]
	return source, exists
}

// MustGet retrieves a template by name, panics if not found
func (tr *TemplateRegistry) MustGet(name string) string {
	source, exists := tr.templates[name]
	if !exists {
		panic("template not found: " + name)
	}
	return source
}

// Render executes the named template with the given data
func (tr *TemplateRegistry) Render(name string, data interface{}) (string, error) {
	source, exists := tr.templates[name]
	if !exists {
		return "", errors.Newf(errors.TemplateErrorCode, "template not found: %s", name)
	}

	tmpl, err := template.New(name).Parse(source)
	if err != nil {
		return "", errors.WrapTemplateError(name, "parse", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.WrapTemplateError(name, "execute", err)
	}

	return buf.String(), nil
}

// registerFragmentTemplates registers the seven scaffolding fragments.
// Bodies are tab-indented to match the host VM's generated-file layout.
func (tr *TemplateRegistry) registerFragmentTemplates() {
	// Bare identifier naming the module that hosts the binding code.
	tr.templates[ModuleName] = `{{.Module}}`

	// Declaration registering the module as a compilation unit of the crate.
	tr.templates[ModuleDecl] = `mod {{.Module}};`

	// Dispatch-table entry mapping the JVM package path to the module's
	// native-method list.
	tr.templates[RegistryEntry] = `("{{.Package}}", {{.Module}}::get_native_methods()),`

	// Fixed preamble of the generated stub file. The imports name the host
	// VM's core abstractions and do not depend on the descriptor.
	tr.templates[FilePreamble] = `#![allow(non_snake_case)]

use crate::native::{new_fn, JNIEnv, JNINativeMethod, JNIResult};
use crate::oop::{Oop, OopDesc};
use crate::runtime::JavaThread;
use crate::types::OopRef;
use crate::util;`

	// Empty method table for the author to populate.
	tr.templates[MethodsFn] = `pub fn get_native_methods() -> Vec<JNINativeMethod> {
	vec![

	]
}`

	// Table entry wiring the method name and signature to the stub.
	tr.templates[MethodEntry] = `new_fn("{{.Name}}", "{{.Signature}}", Box::new(jvm_{{.Name}})),`

	// Stub body that signals successful completion with no return value.
	tr.templates[StubFn] = `fn jvm_{{.Name}}(_jt: &mut JavaThread, _env: JNIEnv, _args: Vec<OopRef>) -> JNIResult {
	Ok(None)
}`
}
