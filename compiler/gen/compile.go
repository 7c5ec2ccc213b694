package gen

import (
	"path"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/kubeschema/typegen/schema"
)

// gvkExtension is the annotation identifying an object definition as an API
// resource with a fixed apiVersion and kind.
const gvkExtension = "x-kubernetes-group-version-kind"

// defaultHeader is written at the top of generated files unless the config
// overrides it.
const defaultHeader = "Code generated by typegen. DO NOT EDIT."

// Compiled is the output of compiling one definition.
type Compiled struct {
	Names Names
	Refs  []string
	File  *jen.File

	// HasConstructor reports whether the file carries an apiVersion/kind
	// constructor, so the index pass knows to re-export it.
	HasConstructor bool
}

// CompileDefinition compiles one named definition into its output file: the
// structural type, the type descriptor value, an apiVersion/kind constructor
// for annotated resources, the schema document constant, the registration
// function, and short-name aliases.
func CompileDefinition(cfg *Config, name string, raw map[string]any) (*Compiled, error) {
	names := DeriveNames(name)
	refs := CollectRefs(name, raw)

	doc, err := MarshalSchema(RewriteSchema(name, raw))
	if err != nil {
		return nil, NewDefinitionError(name, "marshal schema document", err)
	}

	f := jen.NewFilePathName(cfg.definitionPkg(names), filePackage(cfg, names))
	header := cfg.Header
	if header == "" {
		header = defaultHeader
	}
	f.HeaderComment(header)

	node := Classify(raw)
	gvk := groupVersionKind(raw)

	// Structural type.
	if node.Description != "" {
		for _, line := range strings.Split(node.Description, "\n") {
			if line != "" {
				f.Comment(line)
			}
		}
	} else {
		f.Commentf("%s is the %s API definition.", names.Type, name)
	}
	decl := f.Type().Id(names.Type)
	if node.Kind == KindReference || (node.Kind == KindString && node.Format == formatIntOrString) {
		// Aliases keep the marshal methods of the aliased type.
		decl.Op("=")
	}
	decl.Add(TypeExpr(cfg, raw))

	// Descriptor value tying the type back to its schema entry.
	f.Commentf("%s describes the schema entry backing %s values.", names.Descriptor, names.ShortType)
	f.Var().Id(names.Descriptor).Op("=").Qual(schemaPkg, "TypeDescriptor").Values(jen.DictFunc(func(d jen.Dict) {
		d[jen.Id("ID")] = jen.Lit(name)
		if gvk != nil {
			d[jen.Id("GroupVersionKind")] = jen.Op("&").Qual(schemaPkg, "GroupVersionKind").Values(jen.Dict{
				jen.Id("Group"):   jen.Lit(gvk.Group),
				jen.Id("Version"): jen.Lit(gvk.Version),
				jen.Id("Kind"):    jen.Lit(gvk.Kind),
			})
		}
		d[jen.Id("AddToSchema")] = jen.Id(names.AddFunc)
	}))

	// Constructor for annotated API resources.
	hasConstructor := gvk != nil && node.Kind == KindObject
	if hasConstructor {
		constructor(f, names, node, *gvk)
	}

	// Registry-safe schema document.
	f.Commentf("%s is the registry schema document for %s.", names.Schema, name)
	f.Const().Id(names.Schema).Op("=").Lit(string(doc))

	f.Add(registrationFunc(cfg, names, refs))

	aliases(f, names, hasConstructor)

	return &Compiled{Names: names, Refs: refs, File: f, HasConstructor: hasConstructor}, nil
}

// constructor emits NewX returning a value with apiVersion and kind
// prefilled from the definition's group/version/kind annotation. Callers
// merge their own data by ordinary field assignment on the returned value.
// The fields are only prefilled when the definition actually declares them.
func constructor(f *jen.File, names Names, node Node, gvk schema.GroupVersionKind) {
	f.Commentf("%s returns a %s with apiVersion and kind prefilled.", names.Constructor, names.ShortType)
	f.Func().Id(names.Constructor).Params().Op("*").Id(names.Type).BlockFunc(func(g *jen.Group) {
		g.Return(jen.Op("&").Id(names.Type).Values(jen.DictFunc(func(d jen.Dict) {
			for _, p := range node.Properties {
				var value string
				switch p.Name {
				case "apiVersion":
					value = gvk.APIVersion()
				case "kind":
					value = gvk.Kind
				default:
					continue
				}
				lit := jen.Lit(value)
				if !p.Required && pointerize(p.Raw) {
					d[jen.Id(fieldName(p.Name))] = jen.Qual(schemaPkg, "Ptr").Call(lit)
				} else {
					d[jen.Id(fieldName(p.Name))] = lit
				}
			}
		})))
	})
}

// aliases emits the short-name re-exports using the final dotted segment.
func aliases(f *jen.File, names Names, hasConstructor bool) {
	if names.ShortType == names.Type {
		return
	}
	f.Commentf("%s is a short alias for %s.", names.ShortType, names.Type)
	f.Type().Id(names.ShortType).Op("=").Id(names.Type)
	f.Var().Id(names.ShortDescriptor).Op("=").Id(names.Descriptor)
	f.Const().Id(names.ShortSchema).Op("=").Id(names.Schema)
	f.Var().Id(names.ShortAddFunc).Op("=").Id(names.AddFunc)
	if hasConstructor {
		f.Var().Id(names.ShortConstructor).Op("=").Id(names.Constructor)
	}
}

// groupVersionKind extracts the definition's group/version/kind annotation.
// Definitions listing zero or multiple entries get no constructor; the
// annotation only pins an apiVersion when it is unambiguous.
func groupVersionKind(raw map[string]any) *schema.GroupVersionKind {
	list, ok := raw[gvkExtension].([]any)
	if !ok || len(list) != 1 {
		return nil
	}
	entry, ok := list[0].(map[string]any)
	if !ok {
		return nil
	}
	gvk := &schema.GroupVersionKind{}
	gvk.Group, _ = entry["group"].(string)
	gvk.Version, _ = entry["version"].(string)
	gvk.Kind, _ = entry["kind"].(string)
	return gvk
}

// filePackage returns the Go package name for a definition's output file.
func filePackage(cfg *Config, names Names) string {
	if names.Package != "" {
		return names.Package
	}
	return path.Base(cfg.Package)
}
