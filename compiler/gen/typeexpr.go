package gen

import (
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"
)

// formatIntOrString is the format value marking string-or-number fields.
const formatIntOrString = "int-or-string"

// TypeExpr synthesizes the Go type expression for a schema node. The mapping
// is total: unrecognized shapes yield "any" rather than failing, so malformed
// definitions degrade to unconstrained types instead of aborting the run.
func TypeExpr(cfg *Config, raw map[string]any) jen.Code {
	n := Classify(raw)
	switch n.Kind {
	case KindReference:
		ref := DeriveNames(n.Ref)
		return jen.Qual(cfg.definitionPkg(ref), ref.Type)
	case KindObject:
		return objectExpr(cfg, n)
	case KindString:
		if n.Format == formatIntOrString {
			return jen.Qual(schemaPkg, "IntOrString")
		}
		return jen.String()
	case KindNumber:
		if typ, _ := n.Raw["type"].(string); typ == "integer" {
			return jen.Int64()
		}
		return jen.Float64()
	case KindBoolean:
		return jen.Bool()
	case KindArray:
		if n.Items == nil {
			return jen.Index().Any()
		}
		return jen.Index().Add(TypeExpr(cfg, n.Items))
	default:
		// KindNull and KindUnknown. Go has no null type.
		return jen.Any()
	}
}

// objectExpr builds the structural record for an object node. Declared
// properties become struct fields; an object without properties becomes a
// map keyed by its index-signature type. A struct cannot also carry an index
// signature, so when both are declared the properties win.
func objectExpr(cfg *Config, n Node) jen.Code {
	if len(n.Properties) == 0 {
		if n.AdditionalProperties != nil && len(n.AdditionalProperties) > 0 {
			return jen.Map(jen.String()).Add(TypeExpr(cfg, n.AdditionalProperties))
		}
		return jen.Map(jen.String()).Any()
	}
	return jen.StructFunc(func(g *jen.Group) {
		for _, p := range n.Properties {
			for _, line := range strings.Split(p.Description, "\n") {
				if line != "" {
					g.Comment(line)
				}
			}
			field := jen.Id(fieldName(p.Name))
			typ := TypeExpr(cfg, p.Raw)
			tag := p.Name
			if p.Required {
				field.Add(typ)
			} else {
				if pointerize(p.Raw) {
					field.Op("*")
				}
				field.Add(typ)
				tag += ",omitempty"
			}
			g.Add(field.Tag(map[string]string{"json": tag}))
		}
	})
}

// pointerize reports whether an optional field of the given schema should be
// a pointer. Slices, maps and unconstrained values already distinguish
// absence through their nil zero value.
func pointerize(raw map[string]any) bool {
	switch n := Classify(raw); n.Kind {
	case KindArray, KindNull, KindUnknown:
		return false
	case KindObject:
		return len(n.Properties) > 0
	default:
		return true
	}
}

// fieldName maps a property name onto an exported Go field name.
func fieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(parts) == 0 {
		return "Field"
	}
	s := pascal(parts)
	if unicode.IsDigit(rune(s[0])) {
		s = "Field" + s
	}
	return s
}
