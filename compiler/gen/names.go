package gen

import (
	"strings"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// pathPrefix is the common prefix stripped from definition names when
// deriving output paths. "io.k8s.api.core.v1.Pod" lands in api/core/v1.
const pathPrefix = "io.k8s."

// Names bundles every identifier and path form derived from one dotted
// definition name. Derivation is a pure function of the name: the same input
// always yields the same bundle, and distinct inputs yield distinct type
// names because every segment contributes to the concatenation.
type Names struct {
	// ID is the dotted definition name the bundle was derived from.
	ID string

	// Type is the fully-qualified PascalCase type name, e.g.
	// IoK8sApiCoreV1Pod. Globally unique within a run.
	Type string

	// Descriptor is the name of the exported type-descriptor value.
	Descriptor string

	// Schema is the name of the schema document constant.
	Schema string

	// AddFunc is the name of the registration function.
	AddFunc string

	// Constructor is the name of the group/version/kind constructor.
	Constructor string

	// Short forms use only the final dotted segment, e.g. Pod.
	ShortType        string
	ShortDescriptor  string
	ShortSchema      string
	ShortAddFunc     string
	ShortConstructor string

	// Dir is the output directory relative to the target root, derived by
	// stripping the common prefix and treating the remaining segments as a
	// path hierarchy. Empty for single-segment names.
	Dir string

	// File is the output file name inside Dir.
	File string

	// Package is the Go package name of the output directory.
	Package string
}

var titler = cases.Title(language.Und, cases.NoLower)

// DeriveNames derives the full identifier bundle for a dotted definition
// name. Total over any non-empty input.
func DeriveNames(id string) Names {
	segments := splitSegments(id)
	full := pascal(segments)
	short := pascal(segments[len(segments)-1:])

	n := Names{
		ID:               id,
		Type:             full,
		Descriptor:       full + "Type",
		Schema:           full + "Schema",
		AddFunc:          "Add" + full + "ToSchema",
		Constructor:      "New" + full,
		ShortType:        short,
		ShortDescriptor:  short + "Type",
		ShortSchema:      short + "Schema",
		ShortAddFunc:     "Add" + short + "ToSchema",
		ShortConstructor: "New" + short,
	}

	path := strings.TrimPrefix(id, pathPrefix)
	parts := strings.Split(path, ".")
	dirs := parts[:len(parts)-1]
	for i, d := range dirs {
		dirs[i] = packageSegment(d)
	}
	n.Dir = strings.Join(dirs, "/")
	n.File = strings.ToLower(short) + ".go"
	if len(dirs) > 0 {
		n.Package = dirs[len(dirs)-1]
	}
	return n
}

// splitSegments splits a dotted name into its identifier segments, treating
// hyphens as segment separators as well.
func splitSegments(id string) []string {
	return strings.FieldsFunc(id, func(r rune) bool {
		return r == '.' || r == '-'
	})
}

// pascal capitalizes each segment and concatenates them. Existing interior
// capitalization is preserved, so IntOrString stays IntOrString.
func pascal(segments []string) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(titler.String(s))
	}
	return b.String()
}

// packageSegment normalizes one path segment into a valid Go package name.
// Hyphenated segments like "apiextensions-apiserver" become underscored.
func packageSegment(s string) string {
	return inflect.Underscore(strings.ToLower(s))
}
