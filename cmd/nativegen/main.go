package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vmkit/nativegen/internal/descriptor"
	"github.com/vmkit/nativegen/internal/errors"
	"github.com/vmkit/nativegen/internal/generator"
	"github.com/vmkit/nativegen/internal/utils"
)

func main() {
	// Define command-line flags
	var (
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output with a parsed-signature summary")
		quietFlag   = flag.Bool("quiet", false, "Only show errors")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <package>:<name>:<signature>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Native Method Scaffolding Generator\n")
		fmt.Fprintf(os.Stderr, "Expands a native-method binding descriptor into the boilerplate fragments needed\n")
		fmt.Fprintf(os.Stderr, "to wire the method into the VM: module declaration, registry entry, stub file\n")
		fmt.Fprintf(os.Stderr, "preamble, empty method table, table entry, and stub function.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nArguments:\n")
		fmt.Fprintf(os.Stderr, "  descriptor    <package>:<name>:<signature> identifying the native method\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s java/lang/Object:hashCode:()I\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --verbose java/lang/Float:floatToRawIntBits:(F)I\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --quiet java/lang/System:arraycopy:(Ljava/lang/Object;ILjava/lang/Object;II)V\n", os.Args[0])
	}

	flag.Parse()

	// Show help if requested
	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	// Validate arguments
	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Error: Exactly one descriptor argument is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	// Create diagnostic system based on flags
	var diagnostics *utils.DiagnosticSystem
	if *quietFlag {
		diagnostics = utils.NewQuietDiagnostics()
	} else if *verboseFlag {
		diagnostics = utils.NewVerboseDiagnostics()
	} else {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}

	// Parse the descriptor before any output is produced
	desc, err := descriptor.Parse(args[0])
	if err != nil {
		diagnostics.Error("%v", err)
		if scaffoldErr, ok := err.(errors.ScaffoldError); ok {
			for _, hint := range scaffoldErr.Suggestions() {
				diagnostics.List("%s", hint)
			}
		}
		os.Exit(1)
	}

	// Permissive passthrough: empty fields and unreadable signatures still
	// render, but the looseness is surfaced on stderr.
	for _, field := range desc.EmptyFields() {
		diagnostics.Warn("descriptor field %q is empty; the generated code will need manual fixing", field)
	}

	if desc.Signature != "" {
		if info, inspectErr := descriptor.InspectSignature(desc.Signature); inspectErr != nil {
			diagnostics.Warn("signature %q: %v; emitting it verbatim", desc.Signature, inspectErr)
		} else if *verboseFlag {
			diagnostics.Header("expanding " + args[0])
			diagnostics.Verbose("package:   %s", desc.Package)
			diagnostics.Verbose("module:    %s", desc.Module())
			diagnostics.Verbose("stub:      %s", desc.StubName())
			diagnostics.Verbose("signature: %s", info.Summary())
		}
	}

	gen := generator.NewGenerator()
	if err := gen.Write(os.Stdout, desc); err != nil {
		diagnostics.Error("Generation failed: %v", err)
		os.Exit(1)
	}
}
