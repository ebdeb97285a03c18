package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/syssam/macrocosm/compiler/gen"
)

var (
	kindColor  = color.New(color.FgRed, color.Bold)
	posColor   = color.New(color.Bold)
	errorColor = color.New(color.FgRed)
	titleCaser = cases.Title(language.English)
)

// kindLabel turns a diagnostic code such as missing_response_type into
// "Missing Response Type".
func kindLabel(k gen.DiagnosticKind) string {
	return titleCaser.String(strings.ReplaceAll(k.String(), "_", " "))
}

// reportedError marks an error that was already printed by report.
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error { return e.error }

// report prints err to w. Joined errors are printed one per line, with
// diagnostics in their own format.
func report(w io.Writer, err error) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, inner := range joined.Unwrap() {
			report(w, inner)
		}
		return
	}
	diags := gen.Diagnostics(err)
	if len(diags) == 0 {
		errorColor.Fprintf(w, "error: %v\n", err)
		return
	}
	for _, d := range diags {
		if d.Pos != "" {
			posColor.Fprintf(w, "%s: ", d.Pos)
		}
		kindColor.Fprint(w, kindLabel(d.Kind))
		fmt.Fprintf(w, " %s\n", subject(d))
	}
}

func subject(d *gen.Diagnostic) string {
	var b strings.Builder
	if d.Type != "" {
		b.WriteString(d.Type)
		if d.Variant != "" {
			b.WriteString("::" + d.Variant)
		}
	}
	if d.Param != "" {
		fmt.Fprintf(&b, " (%s)", d.Param)
	}
	if d.Message != "" {
		if b.Len() > 0 {
			b.WriteString(": ")
		}
		b.WriteString(d.Message)
	}
	if d.Cause != nil {
		fmt.Fprintf(&b, ": %v", d.Cause)
	}
	return b.String()
}
