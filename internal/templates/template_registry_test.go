package templates

import (
	"strings"
	"testing"
)

type testData struct {
	Package   string
	Name      string
	Signature string
	Module    string
}

var hashCode = testData{
	Package:   "java/lang/Object",
	Name:      "hashCode",
	Signature: "()I",
	Module:    "java_lang_Object",
}

func TestRenderFragments(t *testing.T) {
	registry := NewTemplateRegistry()

	tests := []struct {
		template string
		expected string
	}{
		{
			template: ModuleName,
			expected: "java_lang_Object",
		},
		{
			template: ModuleDecl,
			expected: "mod java_lang_Object;",
		},
		{
			template: RegistryEntry,
			expected: `("java/lang/Object", java_lang_Object::get_native_methods()),`,
		},
		{
			template: MethodEntry,
			expected: `new_fn("hashCode", "()I", Box::new(jvm_hashCode)),`,
		},
		{
			template: StubFn,
			expected: "fn jvm_hashCode(_jt: &mut JavaThread, _env: JNIEnv, _args: Vec<OopRef>) -> JNIResult {\n\tOk(None)\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			content, err := registry.Render(tt.template, hashCode)
			if err != nil {
				t.Fatalf("Render(%q) returned error: %v", tt.template, err)
			}
			if content != tt.expected {
				t.Errorf("Render(%q) = %q, want %q", tt.template, content, tt.expected)
			}
		})
	}
}

func TestFilePreambleIsStatic(t *testing.T) {
	registry := NewTemplateRegistry()

	first, err := registry.Render(FilePreamble, hashCode)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	second, err := registry.Render(FilePreamble, testData{Package: "a/b", Name: "foo", Signature: "(I)V", Module: "a_b"})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if first != second {
		t.Error("file preamble must not depend on the descriptor")
	}

	for _, line := range []string{
		"#![allow(non_snake_case)]",
		"use crate::native::{new_fn, JNIEnv, JNINativeMethod, JNIResult};",
		"use crate::oop::{Oop, OopDesc};",
		"use crate::runtime::JavaThread;",
		"use crate::types::OopRef;",
		"use crate::util;",
	} {
		if !strings.Contains(first, line) {
			t.Errorf("file preamble missing line %q", line)
		}
	}
}

func TestSignaturePassesThroughVerbatim(t *testing.T) {
	registry := NewTemplateRegistry()

	// Embedded type-descriptor syntax must survive untouched.
	data := testData{
		Package:   "java/lang/System",
		Name:      "arraycopy",
		Signature: "(Ljava/lang/Object;ILjava/lang/Object;II)V",
		Module:    "java_lang_System",
	}

	content, err := registry.Render(MethodEntry, data)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	expected := `new_fn("arraycopy", "(Ljava/lang/Object;ILjava/lang/Object;II)V", Box::new(jvm_arraycopy)),`
	if content != expected {
		t.Errorf("Render(MethodEntry) = %q, want %q", content, expected)
	}
}

func TestGet(t *testing.T) {
	registry := NewTemplateRegistry()

	if _, exists := registry.Get(ModuleDecl); !exists {
		t.Error("expected module-decl template to be registered")
	}
	if _, exists := registry.Get("no-such-template"); exists {
		t.Error("expected lookup of unknown template to fail")
	}
}

func TestMustGetPanicsOnUnknown(t *testing.T) {
	registry := NewTemplateRegistry()

	defer func() {
		if recover() == nil {
			t.Error("expected MustGet to panic for unknown template")
		}
	}()
	registry.MustGet("no-such-template")
}

func TestRenderUnknownTemplate(t *testing.T) {
	registry := NewTemplateRegistry()

	if _, err := registry.Render("no-such-template", hashCode); err == nil {
		t.Error("expected Render of unknown template to fail")
	}
}
